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

package flowexec

import (
	"github.com/asgardeo/authtree/internal/authtree/model"
)

// FlowStatus is the status of a flow returned to the client.
type FlowStatus string

const (
	// FlowStatusIncomplete means the flow waits for the client to answer the callbacks.
	FlowStatusIncomplete FlowStatus = "INCOMPLETE"
	// FlowStatusSuspended means the flow waits to be resumed through a resume link.
	FlowStatusSuspended FlowStatus = "SUSPENDED"
	// FlowStatusComplete means the user is authenticated and a session was created.
	FlowStatusComplete FlowStatus = "COMPLETE"
	// FlowStatusFailed means the tree reached its failure terminal.
	FlowStatusFailed FlowStatus = "FAILED"
)

// FlowRequest is the client request to start or continue a flow.
type FlowRequest struct {
	FlowID    string           `json:"flowId,omitempty"`
	Realm     string           `json:"realm,omitempty"`
	TreeName  string           `json:"treeName,omitempty"`
	Callbacks []model.Callback `json:"callbacks,omitempty"`
}

// FlowStep is the outcome of a single flow execution request.
type FlowStep struct {
	FlowID        string
	Realm         string
	TreeName      string
	Status        FlowStatus
	Callbacks     []model.Callback
	Header        string
	Description   string
	Stage         string
	SessionID     string
	FailureReason string
}

// FlowResponse is the JSON body returned for a flow step.
type FlowResponse struct {
	FlowID        string           `json:"flowId,omitempty"`
	FlowStatus    string           `json:"flowStatus"`
	Callbacks     []model.Callback `json:"callbacks,omitempty"`
	Header        string           `json:"header,omitempty"`
	Description   string           `json:"description,omitempty"`
	Stage         string           `json:"stage,omitempty"`
	SessionID     string           `json:"sessionId,omitempty"`
	FailureReason string           `json:"failureReason,omitempty"`
}

func newFlowResponse(step *FlowStep) FlowResponse {
	return FlowResponse{
		FlowID:        step.FlowID,
		FlowStatus:    string(step.Status),
		Callbacks:     step.Callbacks,
		Header:        step.Header,
		Description:   step.Description,
		Stage:         step.Stage,
		SessionID:     step.SessionID,
		FailureReason: step.FailureReason,
	}
}
