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
	"errors"
	"fmt"
)

// ErrSecureStateKeyExists is returned when a secure state key is written twice.
var ErrSecureStateKeyExists = errors.New("secure state key already set")

// ErrInvalidAction is returned when an action does not describe exactly one result.
var ErrInvalidAction = errors.New("invalid action")

// NodeProcessError reports a failure of a node while processing a flow context.
type NodeProcessError struct {
	NodeID          string
	NodeDisplayName string
	NodeType        string
	Err             error
}

// Error returns the error message.
func (e *NodeProcessError) Error() string {
	return fmt.Sprintf("node %s (%s) of type %s failed: %v", e.NodeID, e.NodeDisplayName, e.NodeType, e.Err)
}

// Unwrap returns the underlying failure.
func (e *NodeProcessError) Unwrap() error {
	return e.Err
}

// Message returns the message of the underlying failure.
func (e *NodeProcessError) Message() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
