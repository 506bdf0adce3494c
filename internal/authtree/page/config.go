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

// Package page provides the page node, which presents the prompts of several nodes as one step.
package page

import (
	"fmt"
	"slices"
	"strings"

	"github.com/asgardeo/authtree/internal/authtree/audit"
	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/node"
)

const configSchema = `{
	"type": "object",
	"required": ["nodes"],
	"properties": {
		"nodes": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "nodeType"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"nodeType": {"type": "string", "minLength": 1},
					"version": {"type": "string"},
					"displayName": {"type": "string"}
				}
			}
		},
		"pageHeader": {"type": "object", "additionalProperties": {"type": "string"}},
		"pageDescription": {"type": "object", "additionalProperties": {"type": "string"}},
		"stage": {"type": "string"}
	}
}`

// ChildConfig references a node shown on the page.
type ChildConfig struct {
	ID          string `mapstructure:"id"`
	NodeType    string `mapstructure:"nodeType"`
	Version     string `mapstructure:"version"`
	DisplayName string `mapstructure:"displayName"`
}

// Config is the configuration of a page node.
type Config struct {
	Nodes           []ChildConfig     `mapstructure:"nodes"`
	PageHeader      map[string]string `mapstructure:"pageHeader"`
	PageDescription map[string]string `mapstructure:"pageDescription"`
	Stage           string            `mapstructure:"stage"`
}

// NewNodeType returns the page node type. Child nodes are created through the factory.
func NewNodeType(factory node.FactoryInterface, auditLogger audit.LoggerInterface) node.NodeType {
	return node.NodeType{
		Name:            constants.NodeTypePage,
		Version:         constants.DefaultNodeVersion,
		Composite:       true,
		ConfigSchema:    configSchema,
		OutcomeProvider: getOutcomes,
		Validate: func(config map[string]interface{}, resolver node.TypeResolverInterface) error {
			_, _, err := decodeAndValidate(config, resolver)
			return err
		},
		New: func(instance node.Instance) (node.NodeInterface, error) {
			return newPageNode(instance, factory, auditLogger)
		},
	}
}

// getOutcomes returns the outcomes of the last child, which decides the outcome of the page. When
// the last child selects the path of the page, the outcome of the child preceding it is added.
func getOutcomes(config map[string]interface{}, resolver node.TypeResolverInterface) ([]string, error) {
	cfg, types, err := decodeAndValidate(config, resolver)
	if err != nil {
		return nil, err
	}
	last := len(cfg.Nodes) - 1
	outcomes, err := childOutcomes(cfg.Nodes[last], types[last], resolver)
	if err != nil {
		return nil, err
	}
	if !types[last].SupportsLeadSelection || last == 0 {
		return outcomes, nil
	}
	preceding, err := childOutcomes(cfg.Nodes[last-1], types[last-1], resolver)
	if err != nil {
		return nil, err
	}
	result := append([]string(nil), outcomes...)
	for _, outcome := range preceding {
		if !slices.Contains(result, outcome) {
			result = append(result, outcome)
		}
	}
	return result, nil
}

// decodePage decodes the page configuration and resolves the types of its children.
func decodePage(config map[string]interface{},
	resolver node.TypeResolverInterface) (*Config, []*node.NodeType, error) {
	var cfg Config
	if err := node.DecodeConfig(config, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode page configuration: %w", err)
	}
	if len(cfg.Nodes) == 0 {
		return nil, nil, constants.ErrEmptyPage
	}

	types := make([]*node.NodeType, len(cfg.Nodes))
	for i, child := range cfg.Nodes {
		childType, err := resolver.GetNodeType(child.NodeType, child.Version)
		if err != nil {
			return nil, nil, err
		}
		types[i] = childType
	}
	return &cfg, types, nil
}

// decodeAndValidate decodes the page configuration and checks its children. A page needs at
// least one child, cannot contain composite nodes or nodes delegating to one, and only its last
// child may have more than one outcome.
func decodeAndValidate(config map[string]interface{},
	resolver node.TypeResolverInterface) (*Config, []*node.NodeType, error) {
	cfg, types, err := decodePage(config, resolver)
	if err != nil {
		return nil, nil, err
	}

	for i, child := range cfg.Nodes {
		childType := types[i]
		if childType.Composite {
			return nil, nil, fmt.Errorf("%w: %s", constants.ErrCompositeChild, child.NodeType)
		}
		settings, err := childSettings(child, resolver)
		if err != nil {
			return nil, nil, err
		}
		if childType.Delegate != nil {
			delegateType, err := childType.Delegate(settings, resolver)
			if err != nil {
				return nil, nil, err
			}
			if delegateType.Composite {
				return nil, nil, fmt.Errorf("%w: %s delegates to %s", constants.ErrCompositeChild,
					child.NodeType, delegateType.Name)
			}
		}
		if i < len(cfg.Nodes)-1 {
			outcomes, err := childType.GetOutcomes(settings, resolver)
			if err != nil {
				return nil, nil, err
			}
			if len(outcomes) > 1 {
				return nil, nil, fmt.Errorf("%w: %s", constants.ErrAmbiguousChildOutcome, child.ID)
			}
		}
	}
	return cfg, types, nil
}

func childOutcomes(child ChildConfig, childType *node.NodeType,
	resolver node.TypeResolverInterface) ([]string, error) {
	settings, err := childSettings(child, resolver)
	if err != nil {
		return nil, err
	}
	return childType.GetOutcomes(settings, resolver)
}

// childSettings returns the stored configuration of a child. Children are checked without
// configuration when the resolver cannot look up definitions.
func childSettings(child ChildConfig, resolver node.TypeResolverInterface) (map[string]interface{}, error) {
	definitions, ok := resolver.(node.DefinitionResolverInterface)
	if !ok {
		return nil, nil
	}
	definition, err := definitions.GetNodeDefinition(child.ID)
	if err != nil {
		return nil, err
	}
	if definition.Type != child.NodeType {
		return nil, fmt.Errorf("%w: page child %s is of type %s, not %s", constants.ErrInvalidNodeConfig,
			child.ID, definition.Type, child.NodeType)
	}
	return definition.Config, nil
}

// localize picks the text of the requested locale, then of its base language, then the default.
func localize(texts map[string]string, locale string) string {
	if len(texts) == 0 {
		return ""
	}
	if locale != "" {
		if text, ok := texts[locale]; ok {
			return text
		}
		base := strings.SplitN(strings.ReplaceAll(locale, "_", "-"), "-", 2)[0]
		if text, ok := texts[base]; ok {
			return text
		}
	}
	return texts["default"]
}
