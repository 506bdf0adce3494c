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

// Package model defines the data structures threaded through an authentication tree evaluation.
package model

import (
	"encoding/json"
	"sort"

	"github.com/mohae/deepcopy"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// State is an insertion ordered, copy-on-write key-value document. Values are deep copied on the
// way in and out, so a State is never modified once created.
type State struct {
	values *orderedmap.OrderedMap[string, interface{}]
}

// NewState creates an empty State.
func NewState() *State {
	return &State{values: orderedmap.New[string, interface{}]()}
}

// NewStateFromMap creates a State from a plain map. Keys are inserted in sorted order.
func NewStateFromMap(values map[string]interface{}) *State {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := NewState()
	for _, key := range keys {
		s.values.Set(key, deepcopy.Copy(values[key]))
	}
	return s
}

// Get returns a copy of the value stored under the key.
func (s *State) Get(key string) (interface{}, bool) {
	if s == nil || s.values == nil {
		return nil, false
	}
	value, ok := s.values.Get(key)
	if !ok {
		return nil, false
	}
	return deepcopy.Copy(value), true
}

// GetString returns the string value stored under the key, or an empty string.
func (s *State) GetString(key string) string {
	value, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}

// Has reports whether the key is present.
func (s *State) Has(key string) bool {
	if s == nil || s.values == nil {
		return false
	}
	_, ok := s.values.Get(key)
	return ok
}

// Len returns the number of keys.
func (s *State) Len() int {
	if s == nil || s.values == nil {
		return 0
	}
	return s.values.Len()
}

// Keys returns the keys in insertion order.
func (s *State) Keys() []string {
	keys := make([]string, 0, s.Len())
	if s.Len() == 0 {
		return keys
	}
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// With returns a new State with the key set to a copy of the value.
func (s *State) With(key string, value interface{}) *State {
	c := s.clone()
	c.values.Set(key, deepcopy.Copy(value))
	return c
}

// Without returns a new State without the given keys.
func (s *State) Without(keys ...string) *State {
	c := s.clone()
	for _, key := range keys {
		c.values.Delete(key)
	}
	return c
}

// Merge returns a new State holding the keys of both documents. Values of other win.
func (s *State) Merge(other *State) *State {
	c := s.clone()
	if other.Len() == 0 {
		return c
	}
	for pair := other.values.Oldest(); pair != nil; pair = pair.Next() {
		c.values.Set(pair.Key, pair.Value)
	}
	return c
}

// Filter returns a new State holding only the given keys.
func (s *State) Filter(keys []string) *State {
	c := NewState()
	for _, key := range keys {
		if s.Has(key) {
			value, _ := s.values.Get(key)
			c.values.Set(key, value)
		}
	}
	return c
}

// ToMap returns a deep copy of the document as a plain map.
func (s *State) ToMap() map[string]interface{} {
	result := make(map[string]interface{}, s.Len())
	if s.Len() == 0 {
		return result
	}
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		result[pair.Key] = deepcopy.Copy(pair.Value)
	}
	return result
}

// MarshalJSON encodes the document as a JSON object preserving key order.
func (s *State) MarshalJSON() ([]byte, error) {
	if s == nil || s.values == nil {
		return []byte("{}"), nil
	}
	return s.values.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object into the document.
func (s *State) UnmarshalJSON(data []byte) error {
	values := orderedmap.New[string, interface{}]()
	if string(data) == "null" {
		s.values = values
		return nil
	}
	if err := values.UnmarshalJSON(data); err != nil {
		return err
	}
	s.values = values
	return nil
}

// String returns the JSON form of the document.
func (s *State) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// clone returns a shallow copy. Stored values are never mutated, so sharing them is safe.
func (s *State) clone() *State {
	c := NewState()
	if s.Len() == 0 {
		return c
	}
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		c.values.Set(pair.Key, pair.Value)
	}
	return c
}
