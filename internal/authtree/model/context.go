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

package model

// RequestMetadata is the read-only view of the client request driving a flow evaluation.
type RequestMetadata struct {
	Headers           map[string][]string `json:"headers,omitempty"`
	Parameters        map[string][]string `json:"parameters,omitempty"`
	ClientID          string              `json:"clientId,omitempty"`
	Locale            string              `json:"locale,omitempty"`
	ExistingSessionID string              `json:"existingSessionId,omitempty"`
	SuspensionID      string              `json:"suspensionId,omitempty"`
}

// FlowContext is the state a node sees when it is processed. A FlowContext is never modified in
// place; the With methods and Apply return new contexts.
type FlowContext struct {
	Realm              string
	TreeName           string
	SharedState        *State
	TransientState     *State
	SecureState        *SecureState
	Callbacks          []Callback
	Request            RequestMetadata
	ResumedFromSuspend bool
}

// NewFlowContext creates a context with empty state partitions.
func NewFlowContext(realm, treeName string, request RequestMetadata) *FlowContext {
	return &FlowContext{
		Realm:          realm,
		TreeName:       treeName,
		SharedState:    NewState(),
		TransientState: NewState(),
		SecureState:    NewSecureState(),
		Request:        request,
	}
}

// HasCallbacks reports whether the client submitted any callbacks.
func (c *FlowContext) HasCallbacks() bool {
	return len(c.Callbacks) > 0
}

// WithCallbacks returns a copy of the context carrying the given callbacks.
func (c *FlowContext) WithCallbacks(callbacks []Callback) *FlowContext {
	cp := *c
	cp.Callbacks = append([]Callback(nil), callbacks...)
	return &cp
}

// WithSharedState returns a copy of the context with the shared state replaced.
func (c *FlowContext) WithSharedState(state *State) *FlowContext {
	cp := *c
	cp.SharedState = state
	return &cp
}

// WithTransientState returns a copy of the context with the transient state replaced.
func (c *FlowContext) WithTransientState(state *State) *FlowContext {
	cp := *c
	cp.TransientState = state
	return &cp
}

// WithResumedFromSuspend returns a copy of the context with the resumption flag set.
func (c *FlowContext) WithResumedFromSuspend(resumed bool) *FlowContext {
	cp := *c
	cp.ResumedFromSuspend = resumed
	return &cp
}

// Apply returns a copy of the context carrying the state contributions of the action.
func (c *FlowContext) Apply(action *Action) *FlowContext {
	cp := *c
	if action == nil {
		return &cp
	}
	if action.SharedState != nil {
		cp.SharedState = action.SharedState
	}
	if action.TransientState != nil {
		cp.TransientState = action.TransientState
	}
	if action.SecureState != nil {
		cp.SecureState = action.SecureState
	}
	return &cp
}
