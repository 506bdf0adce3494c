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

package page

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authtree/internal/authtree/audit"
	"github.com/asgardeo/authtree/internal/authtree/configprovider"
	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/nodes/collector"
	"github.com/asgardeo/authtree/internal/authtree/nodes/idpselect"
)

const (
	testRealm = "alpha"
	testTree  = "login"

	scriptedNodeType  = "ScriptedNode"
	branchingNodeType = "BranchingNode"
	compositeNodeType = "CompositeNode"
)

type definitionStore map[string]node.Definition

func (s definitionStore) GetNodeDefinition(realm, tree, nodeID string) (*node.Definition, error) {
	definition, ok := s[nodeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrNodeNotFound, nodeID)
	}
	return &definition, nil
}

func (s definitionStore) PersistNodeDefinition(realm string, definition node.Definition) error {
	s[definition.ID] = definition
	return nil
}

type recordingAuditLogger struct {
	records []audit.Record
}

func (l *recordingAuditLogger) LogNodeResult(record audit.Record) {
	l.records = append(l.records, record)
}

type scriptedNode struct {
	id    string
	suite *PageNodeTestSuite
}

func (n *scriptedNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	n.suite.calls[n.id] = append(n.suite.calls[n.id], ctx.Callbacks)
	return n.suite.behaviors[n.id](ctx)
}

type PageNodeTestSuite struct {
	suite.Suite
	store     definitionStore
	registry  *node.Registry
	auditLog  *recordingAuditLogger
	behaviors map[string]func(ctx *model.FlowContext) (*model.Action, error)
	calls     map[string][][]model.Callback
}

func TestPageNodeTestSuite(t *testing.T) {
	suite.Run(t, new(PageNodeTestSuite))
}

func (suite *PageNodeTestSuite) SetupTest() {
	suite.store = definitionStore{}
	suite.registry = node.NewRegistry(suite.store)
	suite.auditLog = &recordingAuditLogger{}
	suite.behaviors = map[string]func(ctx *model.FlowContext) (*model.Action, error){}
	suite.calls = map[string][][]model.Callback{}

	newScripted := func(instance node.Instance) (node.NodeInterface, error) {
		return &scriptedNode{id: instance.ID, suite: suite}, nil
	}
	for _, t := range []node.NodeType{
		NewNodeType(suite.registry, suite.auditLog),
		collector.NewUsernameCollectorNodeType(),
		collector.NewPasswordCollectorNodeType(),
		idpselect.NewNodeType(),
		configprovider.NewNodeType(suite.registry, nil),
		{Name: scriptedNodeType, Outcomes: []string{"next"}, New: newScripted},
		{Name: branchingNodeType, Outcomes: []string{"a", "b"}, New: newScripted},
		{Name: compositeNodeType, Outcomes: []string{"next"}, Composite: true, New: newScripted},
	} {
		suite.Require().NoError(suite.registry.Register(t))
	}
}

// addChild stores the definition of a child node and returns its page reference.
func (suite *PageNodeTestSuite) addChild(id, nodeType string, config map[string]interface{}) map[string]interface{} {
	suite.store[id] = node.Definition{ID: id, Type: nodeType, Version: constants.DefaultNodeVersion,
		DisplayName: id, Config: config}
	return map[string]interface{}{"id": id, "nodeType": nodeType, "displayName": id}
}

func (suite *PageNodeTestSuite) newPage(children ...map[string]interface{}) node.NodeInterface {
	config := pageConfig(children...)
	suite.store["page"] = node.Definition{ID: "page", Type: constants.NodeTypePage,
		Version: constants.DefaultNodeVersion, Config: config}
	n, err := suite.registry.CreateNode(constants.NodeTypePage, "", "page", testRealm, testTree)
	suite.Require().NoError(err)
	return n
}

func pageConfig(children ...map[string]interface{}) map[string]interface{} {
	nodes := make([]interface{}, len(children))
	for i, child := range children {
		nodes[i] = child
	}
	return map[string]interface{}{"nodes": nodes}
}

func (suite *PageNodeTestSuite) newContext() *model.FlowContext {
	return model.NewFlowContext(testRealm, testTree, model.RequestMetadata{})
}

func promptsOf(name string, count int) func(ctx *model.FlowContext) (*model.Action, error) {
	return func(ctx *model.FlowContext) (*model.Action, error) {
		if len(ctx.Callbacks) > 0 {
			return model.NewOutcomeAction("next"), nil
		}
		callbacks := make([]model.Callback, count)
		for i := range callbacks {
			callbacks[i] = model.Callback{Type: model.NameCallback, Name: fmt.Sprintf("%s-%d", name, i)}
		}
		return model.NewRequestInputAction(callbacks...), nil
	}
}

func outcome(name string) func(ctx *model.FlowContext) (*model.Action, error) {
	return func(ctx *model.FlowContext) (*model.Action, error) {
		return model.NewOutcomeAction(name), nil
	}
}

func answer(id int, cbType model.CallbackType, value interface{}) model.Callback {
	return model.Callback{Type: cbType, Value: value}.Identify(id)
}

func (suite *PageNodeTestSuite) TestValidationRejectsEmptyPage() {
	err := suite.registry.ValidateDefinition(testRealm, testTree, node.Definition{Type: constants.NodeTypePage,
		Config: pageConfig()})
	suite.ErrorIs(err, constants.ErrEmptyPage)
}

func (suite *PageNodeTestSuite) TestValidationRejectsCompositeChild() {
	err := suite.registry.ValidateDefinition(testRealm, testTree, node.Definition{Type: constants.NodeTypePage,
		Config: pageConfig(suite.addChild("nested", compositeNodeType, nil))})
	suite.ErrorIs(err, constants.ErrCompositeChild)
}

func (suite *PageNodeTestSuite) TestValidationRejectsNonLastChildWithSeveralOutcomes() {
	definition := node.Definition{Type: constants.NodeTypePage, Config: pageConfig(
		suite.addChild("branch", branchingNodeType, nil),
		suite.addChild("last", scriptedNodeType, nil),
	)}
	err := suite.registry.ValidateDefinition(testRealm, testTree, definition)
	suite.ErrorIs(err, constants.ErrAmbiguousChildOutcome)
}

func (suite *PageNodeTestSuite) TestValidationAcceptsLastChildWithSeveralOutcomes() {
	definition := node.Definition{Type: constants.NodeTypePage, Config: pageConfig(
		suite.addChild("first", scriptedNodeType, nil),
		suite.addChild("branch", branchingNodeType, nil),
	)}
	suite.NoError(suite.registry.ValidateDefinition(testRealm, testTree, definition))

	outcomes, err := suite.registry.GetOutcomes(testRealm, testTree, definition)
	suite.Require().NoError(err)
	suite.Equal([]string{"a", "b"}, outcomes)
}

func (suite *PageNodeTestSuite) TestLeadSelectionPageOutcomes() {
	definition := node.Definition{Type: constants.NodeTypePage, Config: pageConfig(
		suite.addChild("username", constants.NodeTypeUsernameCollector, nil),
		suite.addChild("password", constants.NodeTypePasswordCollector, nil),
		suite.addChild("select", constants.NodeTypeSelectIdP, nil),
	)}
	outcomes, err := suite.registry.GetOutcomes(testRealm, testTree, definition)
	suite.Require().NoError(err)
	suite.Equal([]string{constants.OutcomeSocialAuthentication, constants.OutcomeLocalAuthentication,
		constants.OutcomeSuccess}, outcomes)
}

func (suite *PageNodeTestSuite) TestValidationUsesChildConfiguration() {
	definition := node.Definition{Type: constants.NodeTypePage, Config: pageConfig(
		suite.addChild("password", constants.NodeTypePasswordCollector, nil),
		suite.addChild("configured", constants.NodeTypeConfigProvider, map[string]interface{}{
			"nodeType": constants.NodeTypeUsernameCollector,
			"script":   map[string]interface{}{"source": "{}"},
		}),
	)}
	suite.NoError(suite.registry.ValidateDefinition(testRealm, testTree, definition))

	outcomes, err := suite.registry.GetOutcomes(testRealm, testTree, definition)
	suite.Require().NoError(err)
	suite.Equal([]string{constants.OutcomeSuccess, constants.OutcomeConfigurationFailed}, outcomes)
}

func (suite *PageNodeTestSuite) TestValidationRejectsConfiguredNonLastChildWithSeveralOutcomes() {
	err := suite.registry.ValidateDefinition(testRealm, testTree, node.Definition{Type: constants.NodeTypePage,
		Config: pageConfig(
			suite.addChild("configured", constants.NodeTypeConfigProvider, map[string]interface{}{
				"nodeType": constants.NodeTypeUsernameCollector,
				"script":   map[string]interface{}{"source": "{}"},
			}),
			suite.addChild("password", constants.NodeTypePasswordCollector, nil),
		)})
	suite.ErrorIs(err, constants.ErrAmbiguousChildOutcome)
	suite.NotErrorIs(err, constants.ErrUnknownNodeType)
}

func (suite *PageNodeTestSuite) TestValidationRejectsChildDelegatingToCompositeNode() {
	err := suite.registry.ValidateDefinition(testRealm, testTree, node.Definition{Type: constants.NodeTypePage,
		Config: pageConfig(suite.addChild("configured", constants.NodeTypeConfigProvider, map[string]interface{}{
			"nodeType": compositeNodeType,
			"script":   map[string]interface{}{"source": "{}"},
		}))})
	suite.ErrorIs(err, constants.ErrCompositeChild)
}

func (suite *PageNodeTestSuite) TestValidationRejectsChildWithoutDefinition() {
	err := suite.registry.ValidateDefinition(testRealm, testTree, node.Definition{Type: constants.NodeTypePage,
		Config: pageConfig(map[string]interface{}{"id": "missing", "nodeType": scriptedNodeType})})
	suite.ErrorIs(err, constants.ErrNodeNotFound)
}

func (suite *PageNodeTestSuite) TestFirstChildPromptsAreNumberedFromZero() {
	suite.behaviors["c1"] = promptsOf("c1", 3)
	suite.behaviors["c2"] = promptsOf("c2", 1)
	page := suite.newPage(suite.addChild("c1", scriptedNodeType, nil), suite.addChild("c2", scriptedNodeType, nil))

	action, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(action.IsRequestInput())
	suite.Require().Len(action.Callbacks, 4)
	for i, cb := range action.Callbacks {
		suite.Require().True(cb.HasID())
		suite.Equal(i, *cb.ID)
	}
	suite.Equal("c1-0", action.Callbacks[0].Name)
	suite.Equal("c2-0", action.Callbacks[3].Name)

	owners := readCallbackMap(action.SharedState)
	suite.Equal(callbackMap{0: 0, 1: 0, 2: 0, 3: 1}, owners)
}

func (suite *PageNodeTestSuite) TestAnswersAreRoutedOnlyToTheirOwner() {
	suite.behaviors["c1"] = outcome("next")
	suite.behaviors["c2"] = promptsOf("c2", 1)
	suite.behaviors["c3"] = promptsOf("c3", 1)
	page := suite.newPage(
		suite.addChild("c1", scriptedNodeType, nil),
		suite.addChild("c2", scriptedNodeType, nil),
		suite.addChild("c3", scriptedNodeType, nil),
	)

	first, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(first.IsRequestInput())
	suite.Equal(callbackMap{0: 1, 1: 2}, readCallbackMap(first.SharedState))

	ctx := suite.newContext().WithSharedState(first.SharedState).
		WithCallbacks([]model.Callback{answer(0, model.NameCallback, "c2 answer")})
	second, err := page.Process(ctx)
	suite.Require().NoError(err)

	suite.Len(suite.calls["c1"], 1)
	suite.Require().Len(suite.calls["c2"], 2)
	suite.Equal([]model.Callback{{Type: model.NameCallback, Value: "c2 answer"}}, suite.calls["c2"][1])
	suite.Require().Len(suite.calls["c3"], 2)
	suite.Empty(suite.calls["c3"][1])

	suite.Require().True(second.IsRequestInput())
	suite.Require().Len(second.Callbacks, 1)
	suite.Equal("c3-0", second.Callbacks[0].Name)
	suite.Equal(0, *second.Callbacks[0].ID)
	suite.Equal(callbackMap{0: 2}, readCallbackMap(second.SharedState))
}

func (suite *PageNodeTestSuite) TestUsernameAndPasswordPage() {
	page := suite.newPage(
		suite.addChild("username", constants.NodeTypeUsernameCollector, nil),
		suite.addChild("password", constants.NodeTypePasswordCollector, nil),
	)

	first, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(first.IsRequestInput())
	suite.Require().Len(first.Callbacks, 2)
	suite.Equal(model.NameCallback, first.Callbacks[0].Type)
	suite.Equal(0, *first.Callbacks[0].ID)
	suite.Equal(model.PasswordCallback, first.Callbacks[1].Type)
	suite.Equal(1, *first.Callbacks[1].ID)
	suite.Len(suite.auditLog.records, 2)

	ctx := suite.newContext().WithSharedState(first.SharedState).WithCallbacks([]model.Callback{
		answer(0, model.NameCallback, "alice"),
		answer(1, model.PasswordCallback, "secret"),
	})
	second, err := page.Process(ctx)
	suite.Require().NoError(err)
	suite.True(second.IsOutcome())
	suite.Equal(constants.OutcomeSuccess, second.Outcome)
	suite.False(second.SharedState.Has(constants.PageNodeCallbacksKey))
	suite.Equal("alice", second.SharedState.GetString(constants.UsernameKey))
	suite.Equal("secret", second.TransientState.GetString(constants.PasswordKey))
	suite.Len(suite.auditLog.records, 4)
}

func (suite *PageNodeTestSuite) TestLeadSelectionFallsThroughToLocalChildren() {
	page := suite.newPage(
		suite.addChild("username", constants.NodeTypeUsernameCollector, nil),
		suite.addChild("password", constants.NodeTypePasswordCollector, nil),
		suite.addChild("select", constants.NodeTypeSelectIdP, map[string]interface{}{
			"providers": []interface{}{"google"},
		}),
	)

	first, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(first.IsRequestInput())
	suite.Require().Len(first.Callbacks, 3)
	suite.Equal(model.NameCallback, first.Callbacks[0].Type)
	suite.Equal(model.PasswordCallback, first.Callbacks[1].Type)
	suite.Equal(model.ChoiceCallback, first.Callbacks[2].Type)
	suite.Equal(2, *first.Callbacks[2].ID)
	suite.Equal("select", suite.auditLog.records[0].NodeID)

	ctx := suite.newContext().WithSharedState(first.SharedState).WithCallbacks([]model.Callback{
		answer(0, model.NameCallback, "alice"),
		answer(1, model.PasswordCallback, "secret"),
		answer(2, model.ChoiceCallback, constants.OutcomeLocalAuthentication),
	})
	second, err := page.Process(ctx)
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeSuccess, second.Outcome)
	suite.Equal("alice", second.SharedState.GetString(constants.UsernameKey))
	suite.False(second.SharedState.Has(constants.PageNodeCallbacksKey))
}

func (suite *PageNodeTestSuite) TestLeadSelectionOutcomeSkipsLocalChildren() {
	page := suite.newPage(
		suite.addChild("username", constants.NodeTypeUsernameCollector, nil),
		suite.addChild("select", constants.NodeTypeSelectIdP, map[string]interface{}{
			"providers": []interface{}{"google"},
		}),
	)

	first, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(first.IsRequestInput())

	suite.auditLog.records = nil
	ctx := suite.newContext().WithSharedState(first.SharedState).WithCallbacks([]model.Callback{
		answer(1, model.ChoiceCallback, "google"),
	})
	second, err := page.Process(ctx)
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeSocialAuthentication, second.Outcome)
	suite.Equal("google", second.SharedState.GetString(constants.SelectedIdPKey))
	suite.Require().Len(suite.auditLog.records, 1)
	suite.Equal("select", suite.auditLog.records[0].NodeID)
}

func (suite *PageNodeTestSuite) TestLocalChildrenOutcomeWinsOverUnansweredSelection() {
	page := suite.newPage(
		suite.addChild("username", constants.NodeTypeUsernameCollector, nil),
		suite.addChild("select", constants.NodeTypeSelectIdP, map[string]interface{}{
			"providers": []interface{}{"google"},
		}),
	)

	first, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(first.IsRequestInput())
	suite.Require().Len(first.Callbacks, 2)

	ctx := suite.newContext().WithSharedState(first.SharedState).WithCallbacks([]model.Callback{
		answer(0, model.NameCallback, "alice"),
	})
	second, err := page.Process(ctx)
	suite.Require().NoError(err)
	suite.Require().True(second.IsOutcome())
	suite.Equal(constants.OutcomeSuccess, second.Outcome)
	suite.Equal("alice", second.SharedState.GetString(constants.UsernameKey))
	suite.False(second.SharedState.Has(constants.PageNodeCallbacksKey))
}

func (suite *PageNodeTestSuite) TestSelectionIsShownWhileLocalChildrenNeedInput() {
	page := suite.newPage(
		suite.addChild("username", constants.NodeTypeUsernameCollector, nil),
		suite.addChild("password", constants.NodeTypePasswordCollector, nil),
		suite.addChild("select", constants.NodeTypeSelectIdP, map[string]interface{}{
			"providers": []interface{}{"google"},
		}),
	)

	first, err := page.Process(suite.newContext())
	suite.Require().NoError(err)

	ctx := suite.newContext().WithSharedState(first.SharedState).WithCallbacks([]model.Callback{
		answer(0, model.NameCallback, "alice"),
	})
	second, err := page.Process(ctx)
	suite.Require().NoError(err)
	suite.Require().True(second.IsRequestInput())
	suite.Require().Len(second.Callbacks, 2)
	suite.Equal(model.PasswordCallback, second.Callbacks[0].Type)
	suite.Equal(model.ChoiceCallback, second.Callbacks[1].Type)
	suite.Equal(callbackMap{0: 1, 1: 2}, readCallbackMap(second.SharedState))
}

func (suite *PageNodeTestSuite) TestOnlyMetadataWithoutOutcomeFails() {
	suite.behaviors["meta"] = func(ctx *model.FlowContext) (*model.Action, error) {
		return model.NewRequestInputAction(model.Callback{Type: model.MetadataCallback}), nil
	}
	page := suite.newPage(suite.addChild("meta", scriptedNodeType, nil))

	_, err := page.Process(suite.newContext())
	suite.ErrorIs(err, constants.ErrNoOutcomeOnlyMetadata)
}

func (suite *PageNodeTestSuite) TestMetadataPromptDoesNotBlockOutcome() {
	suite.behaviors["meta"] = func(ctx *model.FlowContext) (*model.Action, error) {
		return model.NewRequestInputAction(model.Callback{Type: model.MetadataCallback}), nil
	}
	suite.behaviors["last"] = outcome("next")
	page := suite.newPage(suite.addChild("meta", scriptedNodeType, nil), suite.addChild("last", scriptedNodeType, nil))

	action, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Equal("next", action.Outcome)
	suite.Empty(action.Callbacks)
}

func (suite *PageNodeTestSuite) TestChildFailureCarriesChildIdentity() {
	suite.behaviors["broken"] = func(ctx *model.FlowContext) (*model.Action, error) {
		return nil, fmt.Errorf("backend unavailable")
	}
	page := suite.newPage(suite.addChild("broken", scriptedNodeType, nil))

	_, err := page.Process(suite.newContext())
	var nodeErr *model.NodeProcessError
	suite.Require().ErrorAs(err, &nodeErr)
	suite.Equal("broken", nodeErr.NodeID)
	suite.Equal(scriptedNodeType, nodeErr.NodeType)
	suite.Equal("backend unavailable", nodeErr.Message())
}

func (suite *PageNodeTestSuite) TestSuspendingChildIsRejected() {
	suite.behaviors["suspend"] = func(ctx *model.FlowContext) (*model.Action, error) {
		return model.NewSuspendAction(model.Suspension{Handler: func(string) ([]model.Callback, error) {
			return nil, nil
		}}), nil
	}
	page := suite.newPage(suite.addChild("suspend", scriptedNodeType, nil))

	_, err := page.Process(suite.newContext())
	suite.ErrorIs(err, constants.ErrChildSuspended)
}

func (suite *PageNodeTestSuite) TestSideEffectsAreAggregated() {
	suite.behaviors["c1"] = func(ctx *model.FlowContext) (*model.Action, error) {
		action := model.NewOutcomeAction("next")
		action.SessionProperties = map[string]string{"amr": "pwd", "step": "1"}
		action.Webhooks = []string{"notify"}
		return action, nil
	}
	suite.behaviors["c2"] = func(ctx *model.FlowContext) (*model.Action, error) {
		action := model.NewOutcomeAction("next")
		action.SessionProperties = map[string]string{"step": "2"}
		action.Webhooks = []string{"notify", "audit"}
		action.SessionHooks = []model.SessionHook{{NodeType: scriptedNodeType, HookClass: "hook"}}
		return action, nil
	}
	page := suite.newPage(suite.addChild("c1", scriptedNodeType, nil), suite.addChild("c2", scriptedNodeType, nil))

	action, err := page.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"amr": "pwd", "step": "2"}, action.SessionProperties)
	suite.Equal([]string{"notify", "audit"}, action.Webhooks)
	suite.Len(action.SessionHooks, 1)
}

func (suite *PageNodeTestSuite) TestPageTextIsLocalized() {
	suite.behaviors["c1"] = promptsOf("c1", 1)
	suite.store["c1"] = node.Definition{ID: "c1", Type: scriptedNodeType, Version: constants.DefaultNodeVersion}
	config := pageConfig(map[string]interface{}{"id": "c1", "nodeType": scriptedNodeType})
	config["pageHeader"] = map[string]interface{}{"default": "Sign in", "fr": "Connexion"}
	config["pageDescription"] = map[string]interface{}{"default": "Enter your details"}
	config["stage"] = "login"
	suite.store["page"] = node.Definition{ID: "page", Type: constants.NodeTypePage,
		Version: constants.DefaultNodeVersion, Config: config}
	page, err := suite.registry.CreateNode(constants.NodeTypePage, "", "page", testRealm, testTree)
	suite.Require().NoError(err)

	action, err := page.Process(model.NewFlowContext(testRealm, testTree, model.RequestMetadata{Locale: "fr-CA"}))
	suite.Require().NoError(err)
	suite.Equal("Connexion", action.Header)
	suite.Equal("Enter your details", action.Description)
	suite.Equal("login", action.Stage)
}
