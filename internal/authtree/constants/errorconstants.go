/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package constants

import (
	"errors"

	"github.com/asgardeo/authtree/internal/system/error/apierror"
	"github.com/asgardeo/authtree/internal/system/error/serviceerror"
)

// Tree and node configuration errors.
var (
	ErrTreeNotFound          = errors.New("tree not found")
	ErrNodeNotFound          = errors.New("node not found in tree")
	ErrUnknownNodeType       = errors.New("unknown node type")
	ErrInvalidNodeConfig     = errors.New("invalid node configuration")
	ErrInvalidTree           = errors.New("invalid tree")
	ErrEmptyPage             = errors.New("page node has no child nodes")
	ErrCompositeChild        = errors.New("page node cannot contain a composite node")
	ErrAmbiguousChildOutcome = errors.New("only the last node of a page can have more than one outcome")
)

// Node processing errors.
var (
	ErrNoOutcomeOnlyMetadata = errors.New("no outcome and only metadata callbacks found")
	ErrChildSuspended        = errors.New("node within a page cannot suspend the flow")
	ErrNoConnection          = errors.New("no connection for node outcome")
	ErrInvalidNodeAction     = errors.New("node returned an invalid action")
	ErrSessionLookup         = errors.New("failed to look up the existing session")
	ErrScriptResultNotMap    = errors.New("script must set configuration to a map")
	ErrUnsupportedScript     = errors.New("unsupported script language")
)

// Client errors of the flow execution service.

// APIErrorFlowRequestJSONDecodeError is returned when the request payload cannot be decoded.
var APIErrorFlowRequestJSONDecodeError = apierror.ErrorResponse{
	Code:        "ATE-60001",
	Message:     "Invalid request payload",
	Description: "Failed to decode request payload",
}

// ErrorInvalidFlowID is returned when the flow id does not refer to an active flow.
var ErrorInvalidFlowID = serviceerror.ServiceError{
	Code:             "ATE-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Invalid flow ID provided in the request",
}

// ErrorInvalidTree is returned when the requested tree is not configured for the realm.
var ErrorInvalidTree = serviceerror.ServiceError{
	Code:             "ATE-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "The requested authentication tree does not exist",
}

// ErrorInvalidResumeToken is returned when a resume token is malformed, expired or forged.
var ErrorInvalidResumeToken = serviceerror.ServiceError{
	Code:             "ATE-60004",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Invalid or expired resume token",
}

// ErrorFlowExpired is returned when a flow outlived its maximum duration.
var ErrorFlowExpired = serviceerror.ServiceError{
	Code:             "ATE-60005",
	Type:             serviceerror.ClientErrorType,
	Error:            "Flow expired",
	ErrorDescription: "The authentication flow has expired",
}

// ErrorFlowNotSuspended is returned when a resume token refers to a flow that is not suspended.
var ErrorFlowNotSuspended = serviceerror.ServiceError{
	Code:             "ATE-60006",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "The authentication flow is not waiting to be resumed",
}

// ErrorFlowSuspended is returned when a suspended flow is continued without its resume link.
var ErrorFlowSuspended = serviceerror.ServiceError{
	Code:             "ATE-60007",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "The authentication flow can only be continued through its resume link",
}

// ErrorMissingTreeName is returned when a new flow is requested without a tree name.
var ErrorMissingTreeName = serviceerror.ServiceError{
	Code:             "ATE-60008",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Tree name is required to start an authentication flow",
}

// Server errors of the flow execution service.

// ErrorFlowExecution is returned when the engine fails to evaluate a tree.
var ErrorFlowExecution = serviceerror.ServiceError{
	Code:             "ATE-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error occurred while executing the authentication flow",
}

// ErrorFlowPersistence is returned when the flow snapshot cannot be stored or loaded.
var ErrorFlowPersistence = serviceerror.ServiceError{
	Code:             "ATE-65002",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error occurred while persisting the authentication flow",
}

// ErrorSessionCreation is returned when the authenticated session cannot be created.
var ErrorSessionCreation = serviceerror.ServiceError{
	Code:             "ATE-65003",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error occurred while creating the authenticated session",
}

// ErrorResumeTokenIssue is returned when a resume token cannot be minted.
var ErrorResumeTokenIssue = serviceerror.ServiceError{
	Code:             "ATE-65004",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error occurred while issuing the resume link",
}
