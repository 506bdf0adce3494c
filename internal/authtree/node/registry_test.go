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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
)

type memoryStore map[string]Definition

func (s memoryStore) GetNodeDefinition(realm, tree, nodeID string) (*Definition, error) {
	definition, ok := s[nodeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrNodeNotFound, nodeID)
	}
	return &definition, nil
}

func (s memoryStore) PersistNodeDefinition(realm string, definition Definition) error {
	s[definition.ID] = definition
	return nil
}

type configuredNode struct {
	instance Instance
}

func (n *configuredNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	return model.NewOutcomeAction("outcome"), nil
}

func (n *configuredNode) GetInputs() []model.InputState {
	return []model.InputState{{Name: "username", Required: true}}
}

func newConfiguredNode(instance Instance) (NodeInterface, error) {
	return &configuredNode{instance: instance}, nil
}

type RegistryTestSuite struct {
	suite.Suite
	store    memoryStore
	registry *Registry
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.store = memoryStore{}
	suite.registry = NewRegistry(suite.store)
	suite.Require().NoError(suite.registry.Register(NodeType{
		Name:         "MessageNode",
		Outcomes:     []string{"outcome"},
		ConfigSchema: `{"type": "object", "required": ["message"], "properties": {"message": {"type": "string"}}}`,
		New:          newConfiguredNode,
	}))
}

func (suite *RegistryTestSuite) TestRegisterDefaultsVersion() {
	t, err := suite.registry.GetNodeType("MessageNode", "")
	suite.Require().NoError(err)
	suite.Equal(constants.DefaultNodeVersion, t.Version)
}

func (suite *RegistryTestSuite) TestRegisterTwiceFails() {
	err := suite.registry.Register(NodeType{Name: "MessageNode", New: newConfiguredNode})
	suite.Error(err)
}

func (suite *RegistryTestSuite) TestRegisterRequiresConstructor() {
	suite.Error(suite.registry.Register(NodeType{Name: "BrokenNode"}))
}

func (suite *RegistryTestSuite) TestRegisterRejectsInvalidSchema() {
	err := suite.registry.Register(NodeType{Name: "BrokenNode", ConfigSchema: "{", New: newConfiguredNode})
	suite.Error(err)
}

func (suite *RegistryTestSuite) TestLatestVersion() {
	for _, version := range []string{"1.9", "1.10", "1.2"} {
		suite.Require().NoError(suite.registry.Register(NodeType{Name: "VersionedNode", Version: version,
			New: newConfiguredNode}))
	}

	t, err := suite.registry.GetNodeType("VersionedNode", "")
	suite.Require().NoError(err)
	suite.Equal("1.10", t.Version)

	t, err = suite.registry.GetNodeType("VersionedNode", "1.2")
	suite.Require().NoError(err)
	suite.Equal("1.2", t.Version)

	_, err = suite.registry.GetNodeType("VersionedNode", "2.0")
	suite.ErrorIs(err, constants.ErrUnknownNodeType)
	_, err = suite.registry.GetNodeType("MissingNode", "")
	suite.ErrorIs(err, constants.ErrUnknownNodeType)
}

func (suite *RegistryTestSuite) TestCreateNode() {
	suite.store["n1"] = Definition{ID: "n1", Type: "MessageNode", Version: "1.0",
		Config: map[string]interface{}{"message": "hello"}}

	n, err := suite.registry.CreateNode("MessageNode", "", "n1", "alpha", "login")
	suite.Require().NoError(err)
	created := n.(*configuredNode)
	suite.Equal("alpha", created.instance.Realm)
	suite.Equal("login", created.instance.Tree)
	suite.Equal("hello", created.instance.Config["message"])
	suite.Equal([]model.InputState{{Name: "username", Required: true}}, GetInputs(n))
	suite.Nil(GetOutputs(n))
	suite.Nil(GetAuditDetail(n))
}

func (suite *RegistryTestSuite) TestCreateNodeTypeMismatch() {
	suite.store["n1"] = Definition{ID: "n1", Type: "MessageNode", Version: "1.0",
		Config: map[string]interface{}{"message": "hello"}}

	_, err := suite.registry.CreateNode("OtherNode", "", "n1", "alpha", "login")
	suite.ErrorIs(err, constants.ErrInvalidNodeConfig)
}

func (suite *RegistryTestSuite) TestCreateNodeInvalidConfig() {
	suite.store["n1"] = Definition{ID: "n1", Type: "MessageNode", Version: "1.0",
		Config: map[string]interface{}{"message": 42}}

	_, err := suite.registry.CreateNode("MessageNode", "", "n1", "alpha", "login")
	suite.ErrorIs(err, constants.ErrInvalidNodeConfig)
}

func (suite *RegistryTestSuite) TestCreateNodeUnknownID() {
	_, err := suite.registry.CreateNode("MessageNode", "", "missing", "alpha", "login")
	suite.ErrorIs(err, constants.ErrNodeNotFound)
}

func (suite *RegistryTestSuite) TestCreateDynamicNode() {
	config := map[string]interface{}{"message": "hi"}

	n, err := suite.registry.CreateDynamicNode("MessageNode", "", config, "alpha", "login", false, "")
	suite.Require().NoError(err)
	suite.NotEmpty(n.(*configuredNode).instance.ID)
	suite.Empty(suite.store)

	_, err = suite.registry.CreateDynamicNode("MessageNode", "", config, "alpha", "login", true, "d1")
	suite.Require().NoError(err)
	suite.Equal("MessageNode", suite.store["d1"].Type)

	n, err = suite.registry.CreateNode("", "", "d1", "alpha", "login")
	suite.Require().NoError(err)
	suite.Equal("hi", n.(*configuredNode).instance.Config["message"])
}

func (suite *RegistryTestSuite) TestCustomValidation() {
	suite.Require().NoError(suite.registry.Register(NodeType{
		Name: "GuardedNode",
		Validate: func(config map[string]interface{}, resolver TypeResolverInterface) error {
			if _, err := resolver.GetNodeType("MessageNode", ""); err != nil {
				return err
			}
			if config["target"] == nil {
				return errors.New("target is required")
			}
			return nil
		},
		OutcomeProvider: func(config map[string]interface{}, resolver TypeResolverInterface) ([]string, error) {
			return []string{fmt.Sprint(config["target"]), "other"}, nil
		},
		New: newConfiguredNode,
	}))

	err := suite.registry.ValidateDefinition("alpha", "login", Definition{Type: "GuardedNode"})
	suite.ErrorIs(err, constants.ErrInvalidNodeConfig)

	definition := Definition{Type: "GuardedNode", Config: map[string]interface{}{"target": "next"}}
	suite.NoError(suite.registry.ValidateDefinition("alpha", "login", definition))
	outcomes, err := suite.registry.GetOutcomes("alpha", "login", definition)
	suite.Require().NoError(err)
	suite.Equal([]string{"next", "other"}, outcomes)
}

func (suite *RegistryTestSuite) TestDecodeConfig() {
	var cfg struct {
		Message string `mapstructure:"message"`
		Retries int    `mapstructure:"retries"`
	}

	suite.Require().NoError(DecodeConfig(map[string]interface{}{"message": "hi", "retries": "3"}, &cfg))
	suite.Equal("hi", cfg.Message)
	suite.Equal(3, cfg.Retries)
	suite.NoError(DecodeConfig(nil, &cfg))
}

func (suite *RegistryTestSuite) TestCompareVersions() {
	suite.Equal(1, compareVersions("1.10", "1.9"))
	suite.Equal(-1, compareVersions("1.0", "2.0"))
	suite.Equal(0, compareVersions("1.0", "1.0"))
}
