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
	"encoding/json"
	"fmt"
)

// SecureState holds confidential values. Each key can be written only once during a flow.
type SecureState struct {
	state *State
}

// NewSecureState creates an empty SecureState.
func NewSecureState() *SecureState {
	return &SecureState{state: NewState()}
}

// With returns a new SecureState with the key set. Writing an existing key fails.
func (s *SecureState) With(key string, value interface{}) (*SecureState, error) {
	if s.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrSecureStateKeyExists, key)
	}
	return &SecureState{state: s.inner().With(key, value)}, nil
}

// Get returns a copy of the value stored under the key.
func (s *SecureState) Get(key string) (interface{}, bool) {
	return s.inner().Get(key)
}

// Has reports whether the key is present.
func (s *SecureState) Has(key string) bool {
	return s.inner().Has(key)
}

// Keys returns the keys in insertion order.
func (s *SecureState) Keys() []string {
	return s.inner().Keys()
}

// Len returns the number of keys.
func (s *SecureState) Len() int {
	return s.inner().Len()
}

// MarshalJSON encodes the secure values. Callers must encrypt the result before storing it.
func (s *SecureState) MarshalJSON() ([]byte, error) {
	return s.inner().MarshalJSON()
}

// UnmarshalJSON decodes the secure values.
func (s *SecureState) UnmarshalJSON(data []byte) error {
	state := NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return err
	}
	s.state = state
	return nil
}

func (s *SecureState) inner() *State {
	if s == nil {
		return nil
	}
	return s.state
}
