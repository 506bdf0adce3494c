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

package node

// TypeResolverInterface resolves node types by name and version.
type TypeResolverInterface interface {
	GetNodeType(nodeType, version string) (*NodeType, error)
}

// DefinitionResolverInterface also resolves the definitions of the nodes of the tree whose
// configuration is being checked.
type DefinitionResolverInterface interface {
	TypeResolverInterface
	GetNodeDefinition(nodeID string) (*Definition, error)
}

// Constructor creates a node from its instance configuration.
type Constructor func(instance Instance) (NodeInterface, error)

// NodeType describes a kind of node and its capabilities.
type NodeType struct {
	Name    string
	Version string
	// Outcomes lists the fixed outcomes of the type. OutcomeProvider overrides it when the
	// outcomes depend on the node configuration.
	Outcomes        []string
	OutcomeProvider func(config map[string]interface{}, resolver TypeResolverInterface) ([]string, error)
	// Composite marks types that evaluate other nodes.
	Composite bool
	// Delegate returns the type a node of this type hands its processing to, if any.
	Delegate func(config map[string]interface{}, resolver TypeResolverInterface) (*NodeType, error)
	// SupportsLeadSelection marks types that pick the path of the nodes preceding them on a page.
	SupportsLeadSelection bool
	// ConfigSchema is an optional JSON schema the node configuration must satisfy.
	ConfigSchema string
	Validate     func(config map[string]interface{}, resolver TypeResolverInterface) error
	New          Constructor
}

// GetOutcomes returns the outcomes of a node of this type with the given configuration.
func (t *NodeType) GetOutcomes(config map[string]interface{}, resolver TypeResolverInterface) ([]string, error) {
	if t.OutcomeProvider != nil {
		return t.OutcomeProvider(config, resolver)
	}
	return t.Outcomes, nil
}
