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

import (
	"fmt"
	"time"
)

// ActionType identifies the kind of result a node produced.
type ActionType string

const (
	// ActionTypeOutcome moves the flow along the named outcome.
	ActionTypeOutcome ActionType = "OUTCOME"
	// ActionTypeRequestInput pauses the flow until the client answers the callbacks.
	ActionTypeRequestInput ActionType = "REQUEST_INPUT"
	// ActionTypeSuspend pauses the flow until an out-of-band event resumes it.
	ActionTypeSuspend ActionType = "SUSPEND"
)

// SuspensionHandler builds the callbacks shown to the user while a flow waits to be resumed
// through the given resume URI.
type SuspensionHandler func(resumeURI string) ([]Callback, error)

// Suspension describes how long a suspended flow waits and what the user sees meanwhile.
type Suspension struct {
	Duration time.Duration
	Handler  SuspensionHandler
}

// SessionHook is run by the host once a session is created. Config always carries the resolved
// node configuration, so the hook never needs to look up the originating node again.
type SessionHook struct {
	NodeID    string                 `json:"nodeId,omitempty"`
	NodeType  string                 `json:"nodeType"`
	HookClass string                 `json:"hookClass"`
	Config    map[string]interface{} `json:"config,omitempty"`
}

// Action is the result of processing a node. Non-nil state fields replace the corresponding
// partitions of the flow context.
type Action struct {
	Type       ActionType
	Outcome    string
	Callbacks  []Callback
	Suspension *Suspension

	SharedState    *State
	TransientState *State
	SecureState    *SecureState

	SessionProperties map[string]string
	SessionHooks      []SessionHook
	Webhooks          []string
	AuditDetail       map[string]interface{}

	Header      string
	Description string
	Stage       string

	MaxTreeDuration time.Duration
	MaxSessionTime  time.Duration
	MaxIdleTime     time.Duration
}

// NewOutcomeAction creates an action moving the flow along the given outcome.
func NewOutcomeAction(outcome string) *Action {
	return &Action{Type: ActionTypeOutcome, Outcome: outcome}
}

// NewRequestInputAction creates an action asking the client for the given callbacks.
func NewRequestInputAction(callbacks ...Callback) *Action {
	return &Action{Type: ActionTypeRequestInput, Callbacks: callbacks}
}

// NewSuspendAction creates an action suspending the flow.
func NewSuspendAction(suspension Suspension) *Action {
	return &Action{Type: ActionTypeSuspend, Suspension: &suspension}
}

// IsOutcome reports whether the action moves the flow along an outcome.
func (a *Action) IsOutcome() bool {
	return a.Type == ActionTypeOutcome
}

// IsRequestInput reports whether the action asks the client for input.
func (a *Action) IsRequestInput() bool {
	return a.Type == ActionTypeRequestInput
}

// IsSuspend reports whether the action suspends the flow.
func (a *Action) IsSuspend() bool {
	return a.Type == ActionTypeSuspend
}

// Validate checks that the action describes exactly one kind of result.
func (a *Action) Validate() error {
	switch a.Type {
	case ActionTypeOutcome:
		if a.Outcome == "" {
			return fmt.Errorf("%w: outcome action without an outcome", ErrInvalidAction)
		}
		if len(a.Callbacks) > 0 {
			return fmt.Errorf("%w: outcome action carries callbacks", ErrInvalidAction)
		}
	case ActionTypeRequestInput:
		if len(a.Callbacks) == 0 {
			return fmt.Errorf("%w: request input action without callbacks", ErrInvalidAction)
		}
		if a.Outcome != "" {
			return fmt.Errorf("%w: request input action carries an outcome", ErrInvalidAction)
		}
	case ActionTypeSuspend:
		if a.Suspension == nil || a.Suspension.Handler == nil {
			return fmt.Errorf("%w: suspend action without a suspension handler", ErrInvalidAction)
		}
	default:
		return fmt.Errorf("%w: unknown action type %q", ErrInvalidAction, a.Type)
	}
	return nil
}
