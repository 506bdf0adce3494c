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

// Package constants defines the constants used by the authentication tree engine.
package constants

// Terminal node ids shared by every tree.
const (
	// SuccessNodeID is the id of the terminal node a tree reaches on success.
	SuccessNodeID = "70e691a5-1e33-4ac3-a356-e7b6d60d92e0"
	// FailureNodeID is the id of the terminal node a tree reaches on failure.
	FailureNodeID = "e301438c-0bd0-429c-ab0c-66126501069a"
)

// Node type names of the built-in nodes.
const (
	NodeTypePage               = "PageNode"
	NodeTypeInnerTreeEvaluator = "InnerTreeEvaluatorNode"
	NodeTypeConfigProvider     = "ConfigProviderNode"
	NodeTypeUsernameCollector  = "UsernameCollectorNode"
	NodeTypePasswordCollector  = "PasswordCollectorNode"
	NodeTypeSelectIdP          = "SelectIdPNode"
	NodeTypeEmailSuspend       = "EmailSuspendNode"
)

const (
	// DefaultRealm is the realm a flow runs in when the request names none.
	DefaultRealm = "root"
	// DefaultNodeVersion is the version assumed when a node definition omits it.
	DefaultNodeVersion = "1.0"
	// DefaultSuspendDurationMinutes is how long a suspended flow waits when no duration is configured.
	DefaultSuspendDurationMinutes = 5
)

// Outcome names shared by several node types.
const (
	OutcomeTrue                 = "true"
	OutcomeFalse                = "false"
	OutcomeError                = "error"
	OutcomeSuccess              = "success"
	OutcomeConfigurationFailed  = "CONFIGURATION_FAILED"
	OutcomeLocalAuthentication  = "localAuthentication"
	OutcomeSocialAuthentication = "socialAuthentication"
	OutcomeResumed              = "outcome"
)

// Shared state keys written by the engine and the composite nodes.
const (
	// PageNodeCallbacksKey holds the callback id to child index map of a page waiting for input.
	PageNodeCallbacksKey = "pageNodeCallbacks"
	// InnerTreeStateKeyPrefix prefixes the key holding the serialized state of a nested tree.
	InnerTreeStateKeyPrefix = "innerTreeState-"
	// ConfigProviderConfigKeyPrefix prefixes the key holding a computed node configuration.
	ConfigProviderConfigKeyPrefix = "configProviderConfig-"

	InnerTreeErrorNodeIDKey          = "innerTreeErrorNodeId"
	InnerTreeErrorNodeDisplayNameKey = "innerTreeErrorNodeDisplayName"
	InnerTreeErrorNodeTypeKey        = "innerTreeErrorNodeType"
	InnerTreeErrorMessageKey         = "innerTreeErrorMessage"

	UsernameKey     = "username"
	PasswordKey     = "password"
	SelectedIdPKey  = "selectedIdp"
	EmailAddressKey = "mail"
)

// Script binding names exposed to configuration scripts.
const (
	ScriptBindingConfig            = "config"
	ScriptBindingSharedState       = "sharedState"
	ScriptBindingTransientState    = "transientState"
	ScriptBindingRequestHeaders    = "requestHeaders"
	ScriptBindingRequestParameters = "requestParameters"
	ScriptBindingRealm             = "realm"
)
