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

// Package tree provides the authentication tree definitions of each realm.
package tree

import (
	"time"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/node"
)

// NodeEntry is a node instance of a tree along with its outgoing connections.
type NodeEntry struct {
	node.Definition
	// Connections maps each outcome of the node to the id of the next node.
	Connections map[string]string
}

// Tree is an authentication tree: a directed graph of nodes connected by outcomes.
type Tree struct {
	Realm       string
	Name        string
	EntryNodeID string
	MaxDuration time.Duration
	Nodes       map[string]*NodeEntry
}

// GetNode returns the node entry with the given id.
func (t *Tree) GetNode(nodeID string) (*NodeEntry, bool) {
	entry, ok := t.Nodes[nodeID]
	return entry, ok
}

// NextNodeID returns the id of the node connected to the given outcome.
func (t *Tree) NextNodeID(nodeID, outcome string) (string, bool) {
	entry, ok := t.Nodes[nodeID]
	if !ok {
		return "", false
	}
	next, ok := entry.Connections[outcome]
	return next, ok
}

// IsTerminal reports whether the id refers to one of the terminal nodes.
func IsTerminal(nodeID string) bool {
	return nodeID == constants.SuccessNodeID || nodeID == constants.FailureNodeID
}
