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

// CallbackType identifies the kind of prompt presented to the user.
type CallbackType string

const (
	// NameCallback prompts for a name.
	NameCallback CallbackType = "NameCallback"
	// PasswordCallback prompts for a secret.
	PasswordCallback CallbackType = "PasswordCallback"
	// ChoiceCallback prompts for a choice out of a list of options.
	ChoiceCallback CallbackType = "ChoiceCallback"
	// TextOutputCallback displays a message.
	TextOutputCallback CallbackType = "TextOutputCallback"
	// HiddenValueCallback carries a value the client submits without showing it.
	HiddenValueCallback CallbackType = "HiddenValueCallback"
	// SuspendedTextOutputCallback displays a message while a flow is suspended.
	SuspendedTextOutputCallback CallbackType = "SuspendedTextOutputCallback"
	// MetadataCallback carries data for the client that requires no answer.
	MetadataCallback CallbackType = "MetadataCallback"
)

// Callback is a single prompt sent to the client and returned with its answer. A callback with an
// ID is an identifiable prompt whose owner can be recovered when the answer comes back.
type Callback struct {
	Type     CallbackType           `json:"type"`
	Name     string                 `json:"name,omitempty"`
	Prompt   string                 `json:"prompt,omitempty"`
	Options  []string               `json:"options,omitempty"`
	Value    interface{}            `json:"value,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	ID       *int                   `json:"id,omitempty"`
}

// Identify returns a copy of the callback carrying the given id.
func (c Callback) Identify(id int) Callback {
	c.ID = &id
	return c
}

// Unidentified returns a copy of the callback without an id.
func (c Callback) Unidentified() Callback {
	c.ID = nil
	return c
}

// HasID reports whether the callback is an identifiable prompt.
func (c Callback) HasID() bool {
	return c.ID != nil
}

// IsMetadata reports whether the callback only carries data and needs no answer.
func (c Callback) IsMetadata() bool {
	return c.Type == MetadataCallback
}

// StringValue returns the answer of the callback as a string.
func (c Callback) StringValue() string {
	if v, ok := c.Value.(string); ok {
		return v
	}
	return ""
}

// FindCallback returns the first callback of the given type.
func FindCallback(callbacks []Callback, callbackType CallbackType) (Callback, bool) {
	for _, cb := range callbacks {
		if cb.Type == callbackType {
			return cb, true
		}
	}
	return Callback{}, false
}

// HasBlockingCallback reports whether any of the callbacks needs an answer from the user.
func HasBlockingCallback(callbacks []Callback) bool {
	for _, cb := range callbacks {
		if !cb.IsMetadata() {
			return true
		}
	}
	return false
}
