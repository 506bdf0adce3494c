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

import "time"

// InputState is a state key a node reads.
type InputState struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// OutputState is a state key a node writes.
type OutputState struct {
	Name string `json:"name"`
}

// TreeExecutionState is the resumable position and state of a tree evaluation.
type TreeExecutionState struct {
	CurrentNodeID   string        `json:"currentNodeId,omitempty"`
	SharedState     *State        `json:"sharedState"`
	TransientState  *State        `json:"-"`
	SecureState     *SecureState  `json:"-"`
	Webhooks        []string      `json:"webhooks,omitempty"`
	MaxTreeDuration time.Duration `json:"maxTreeDuration,omitempty"`

	// Session side effects collected in earlier round trips.
	SessionProperties map[string]string `json:"sessionProperties,omitempty"`
	SessionHooks      []SessionHook     `json:"sessionHooks,omitempty"`
	MaxSessionTime    time.Duration     `json:"maxSessionTime,omitempty"`
	MaxIdleTime       time.Duration     `json:"maxIdleTime,omitempty"`
}

// NewTreeExecutionState creates an execution state positioned before the entry node.
func NewTreeExecutionState(shared, transient *State, secure *SecureState) *TreeExecutionState {
	if shared == nil {
		shared = NewState()
	}
	if transient == nil {
		transient = NewState()
	}
	if secure == nil {
		secure = NewSecureState()
	}
	return &TreeExecutionState{
		SharedState:    shared,
		TransientState: transient,
		SecureState:    secure,
	}
}

// TreeStatus is the status a tree evaluation ends with.
type TreeStatus string

const (
	// TreeStatusTrue means the tree reached its success terminal.
	TreeStatusTrue TreeStatus = "TRUE"
	// TreeStatusFalse means the tree reached its failure terminal.
	TreeStatusFalse TreeStatus = "FALSE"
	// TreeStatusNeedsInput means a node is waiting for callbacks.
	TreeStatusNeedsInput TreeStatus = "NEEDS_INPUT"
	// TreeStatusSuspended means a node suspended the tree.
	TreeStatusSuspended TreeStatus = "SUSPENDED"
)

// TreeResult is the result of evaluating a tree up to a terminal or a pause.
type TreeResult struct {
	Status     TreeStatus
	State      *TreeExecutionState
	Callbacks  []Callback
	Suspension *Suspension

	SessionProperties map[string]string
	SessionHooks      []SessionHook
	Header            string
	Description       string
	Stage             string
	MaxSessionTime    time.Duration
	MaxIdleTime       time.Duration
}

// IsComplete reports whether the tree reached a terminal node.
func (r *TreeResult) IsComplete() bool {
	return r.Status == TreeStatusTrue || r.Status == TreeStatusFalse
}
