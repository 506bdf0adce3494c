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

// Package node defines the decision unit contract and the registry that instantiates node types.
package node

import "github.com/asgardeo/authtree/internal/authtree/model"

// NodeInterface is a single decision unit of an authentication tree. Implementations hold no
// state between invocations.
type NodeInterface interface {
	Process(ctx *model.FlowContext) (*model.Action, error)
}

// AuditDetailProvider is implemented by nodes contributing details to their audit entry.
type AuditDetailProvider interface {
	GetAuditEntryDetail() map[string]interface{}
}

// InputDeclarer is implemented by nodes declaring the state keys they read.
type InputDeclarer interface {
	GetInputs() []model.InputState
}

// OutputDeclarer is implemented by nodes declaring the state keys they write.
type OutputDeclarer interface {
	GetOutputs() []model.OutputState
}

// Definition is the stored configuration of a node instance.
type Definition struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Version     string                 `json:"version"`
	DisplayName string                 `json:"displayName"`
	Config      map[string]interface{} `json:"config,omitempty"`
}

// Instance is a node definition bound to the realm and tree it runs in.
type Instance struct {
	Definition
	Realm string
	Tree  string
}

// ConfigStoreInterface resolves and stores node definitions.
type ConfigStoreInterface interface {
	GetNodeDefinition(realm, tree, nodeID string) (*Definition, error)
	PersistNodeDefinition(realm string, definition Definition) error
}

// FactoryInterface creates node instances.
type FactoryInterface interface {
	CreateNode(nodeType, version, nodeID, realm, tree string) (NodeInterface, error)
	CreateDynamicNode(nodeType, version string, config map[string]interface{}, realm, tree string,
		persistConfig bool, nodeID string) (NodeInterface, error)
	GetNodeType(nodeType, version string) (*NodeType, error)
}

// GetInputs returns the inputs declared by the node, if any.
func GetInputs(n NodeInterface) []model.InputState {
	if declarer, ok := n.(InputDeclarer); ok {
		return declarer.GetInputs()
	}
	return nil
}

// GetOutputs returns the outputs declared by the node, if any.
func GetOutputs(n NodeInterface) []model.OutputState {
	if declarer, ok := n.(OutputDeclarer); ok {
		return declarer.GetOutputs()
	}
	return nil
}

// GetAuditDetail returns the audit detail contributed by the node, if any.
func GetAuditDetail(n NodeInterface) map[string]interface{} {
	if provider, ok := n.(AuditDetailProvider); ok {
		return provider.GetAuditEntryDetail()
	}
	return nil
}
