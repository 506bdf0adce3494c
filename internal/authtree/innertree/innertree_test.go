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

package innertree

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/engine"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/nodes/collector"
	"github.com/asgardeo/authtree/internal/authtree/nodes/emailsuspend"
	"github.com/asgardeo/authtree/internal/authtree/session"
	"github.com/asgardeo/authtree/internal/authtree/tree"
	"github.com/asgardeo/authtree/tests/mocks/enginemock"
	"github.com/asgardeo/authtree/tests/mocks/sessionmock"
)

const (
	testRealm = "alpha"

	usernameNodeID  = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a01"
	passwordNodeID  = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a02"
	failingNodeID   = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a03"
	suspendNodeID   = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a04"
	innerNodeID     = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a05"
	optionalNodeID  = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a06"
	requiredNodeID  = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a07"
	branchingNodeID = "0d5e7c1e-8f7a-4a8b-9d35-1c3f6d2b8a08"

	failingNodeType   = "FailingNode"
	declaringNodeType = "DeclaringNode"
)

type failingNode struct{}

func (n *failingNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	return nil, errors.New("directory unavailable")
}

type declaringNode struct {
	inputs []model.InputState
}

func (n *declaringNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	return model.NewOutcomeAction("next"), nil
}

func (n *declaringNode) GetInputs() []model.InputState {
	return n.inputs
}

type InnerTreeTestSuite struct {
	suite.Suite
	trees    *tree.Provider
	registry *node.Registry
	sessions *sessionmock.ServiceInterfaceMock
}

func TestInnerTreeTestSuite(t *testing.T) {
	suite.Run(t, new(InnerTreeTestSuite))
}

func (suite *InnerTreeTestSuite) SetupTest() {
	suite.trees = tree.NewProvider(5 * time.Minute)
	suite.registry = node.NewRegistry(suite.trees)
	suite.sessions = sessionmock.NewServiceInterfaceMock(suite.T())
	evaluator := engine.NewTreeEvaluator(suite.trees, suite.registry, nil, nil)

	for _, t := range []node.NodeType{
		NewNodeType(Dependencies{Evaluator: evaluator, Trees: suite.trees, Factory: suite.registry,
			Sessions: suite.sessions}),
		collector.NewUsernameCollectorNodeType(),
		collector.NewPasswordCollectorNodeType(),
		emailsuspend.NewNodeType(),
		{Name: failingNodeType, Outcomes: []string{"next"}, New: func(node.Instance) (node.NodeInterface, error) {
			return &failingNode{}, nil
		}},
		{Name: declaringNodeType, Outcomes: []string{"next", "other"},
			New: func(instance node.Instance) (node.NodeInterface, error) {
				var inputs []model.InputState
				for name, required := range instance.Config {
					inputs = append(inputs, model.InputState{Name: name, Required: required.(bool)})
				}
				return &declaringNode{inputs: inputs}, nil
			}},
	} {
		suite.Require().NoError(suite.registry.Register(t))
	}

	suite.addTree("inner", usernameNodeID,
		entry(usernameNodeID, constants.NodeTypeUsernameCollector, nil,
			map[string]string{constants.OutcomeSuccess: passwordNodeID}),
		entry(passwordNodeID, constants.NodeTypePasswordCollector, nil,
			map[string]string{constants.OutcomeSuccess: constants.SuccessNodeID}),
	)
	suite.addTree("broken", failingNodeID,
		entry(failingNodeID, failingNodeType, nil, map[string]string{"next": constants.SuccessNodeID}),
	)
	suite.addTree("confirm", suspendNodeID,
		entry(suspendNodeID, constants.NodeTypeEmailSuspend, nil,
			map[string]string{constants.OutcomeResumed: constants.SuccessNodeID}),
	)
	suite.addTree("branches", branchingNodeID,
		entry(branchingNodeID, declaringNodeType, map[string]interface{}{"otp": false},
			map[string]string{"next": optionalNodeID, "other": requiredNodeID}),
		entry(optionalNodeID, declaringNodeType, map[string]interface{}{"otp": false, "mail": false},
			map[string]string{"next": requiredNodeID, "other": constants.SuccessNodeID}),
		entry(requiredNodeID, declaringNodeType, map[string]interface{}{"otp": true},
			map[string]string{"next": constants.SuccessNodeID, "other": optionalNodeID}),
	)
}

func entry(id, nodeType string, config map[string]interface{}, connections map[string]string) *tree.NodeEntry {
	return &tree.NodeEntry{
		Definition: node.Definition{ID: id, Type: nodeType, Version: constants.DefaultNodeVersion,
			DisplayName: nodeType, Config: config},
		Connections: connections,
	}
}

func (suite *InnerTreeTestSuite) addTree(name, entryNodeID string, entries ...*tree.NodeEntry) {
	t := &tree.Tree{Realm: testRealm, Name: name, EntryNodeID: entryNodeID, MaxDuration: 5 * time.Minute,
		Nodes: map[string]*tree.NodeEntry{}}
	for _, e := range entries {
		t.Nodes[e.ID] = e
	}
	suite.trees.AddTree(t)
}

// newInnerTreeNode adds an outer tree made of a single inner tree node and creates that node.
func (suite *InnerTreeTestSuite) newInnerTreeNode(nestedTree string, displayErrorOutcome bool) node.NodeInterface {
	outer := fmt.Sprintf("outer-%s", nestedTree)
	suite.addTree(outer, innerNodeID, entry(innerNodeID, constants.NodeTypeInnerTreeEvaluator,
		map[string]interface{}{"tree": nestedTree, "displayErrorOutcome": displayErrorOutcome},
		map[string]string{constants.OutcomeTrue: constants.SuccessNodeID,
			constants.OutcomeFalse: constants.FailureNodeID}))

	n, err := suite.registry.CreateNode(constants.NodeTypeInnerTreeEvaluator, "", innerNodeID, testRealm, outer)
	suite.Require().NoError(err)
	return n
}

func (suite *InnerTreeTestSuite) newContext() *model.FlowContext {
	return model.NewFlowContext(testRealm, "outer", model.RequestMetadata{})
}

func (suite *InnerTreeTestSuite) TestOutcomesDependOnErrorOutcomeFlag() {
	outcomes, err := suite.registry.GetOutcomes(testRealm, "outer", node.Definition{
		Type: constants.NodeTypeInnerTreeEvaluator, Config: map[string]interface{}{"tree": "inner"}})
	suite.Require().NoError(err)
	suite.Equal([]string{constants.OutcomeTrue, constants.OutcomeFalse}, outcomes)

	outcomes, err = suite.registry.GetOutcomes(testRealm, "outer", node.Definition{
		Type:   constants.NodeTypeInnerTreeEvaluator,
		Config: map[string]interface{}{"tree": "inner", "displayErrorOutcome": true},
	})
	suite.Require().NoError(err)
	suite.Equal([]string{constants.OutcomeTrue, constants.OutcomeFalse, constants.OutcomeError}, outcomes)
}

func (suite *InnerTreeTestSuite) TestUnknownNestedTreeIsRejected() {
	suite.addTree("outer-missing", innerNodeID, entry(innerNodeID, constants.NodeTypeInnerTreeEvaluator,
		map[string]interface{}{"tree": "missing"}, nil))

	_, err := suite.registry.CreateNode(constants.NodeTypeInnerTreeEvaluator, "", innerNodeID, testRealm,
		"outer-missing")
	suite.ErrorIs(err, constants.ErrTreeNotFound)
}

func (suite *InnerTreeTestSuite) TestResumingMidFlowKeepsNestedStateUnderSameKey() {
	n := suite.newInnerTreeNode("inner", false)
	key := StateKey(innerNodeID)

	first, err := n.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(first.IsRequestInput())
	suite.Equal(model.NameCallback, first.Callbacks[0].Type)
	suite.Require().True(first.SharedState.Has(key))

	ctx := suite.newContext().WithSharedState(first.SharedState).
		WithCallbacks([]model.Callback{{Type: model.NameCallback, Value: "alice"}})
	suite.True(IsResuming(ctx, key))
	second, err := n.Process(ctx)
	suite.Require().NoError(err)
	suite.Require().True(second.IsRequestInput())
	suite.Equal([]model.Callback{{Type: model.PasswordCallback, Name: constants.PasswordKey, Prompt: "Password"}},
		second.Callbacks)
	suite.Require().True(second.SharedState.Has(key))
	suite.NotEqual(first.SharedState.GetString(key), second.SharedState.GetString(key))

	restored, err := RestoreState(second.SharedState, second.TransientState, key)
	suite.Require().NoError(err)
	suite.Equal(passwordNodeID, restored.CurrentNodeID)
	suite.Equal("alice", restored.SharedState.GetString(constants.UsernameKey))

	ctx = suite.newContext().WithSharedState(second.SharedState).
		WithCallbacks([]model.Callback{{Type: model.PasswordCallback, Value: "secret"}})
	third, err := n.Process(ctx)
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeTrue, third.Outcome)
	suite.False(third.SharedState.Has(key))
	suite.Equal("alice", third.SharedState.GetString(constants.UsernameKey))
	suite.Equal("secret", third.TransientState.GetString(constants.PasswordKey))
}

func (suite *InnerTreeTestSuite) TestCallbacksWithoutStoredStateStartFresh() {
	n := suite.newInnerTreeNode("inner", false)
	ctx := suite.newContext().WithCallbacks([]model.Callback{{Type: model.NameCallback, Value: "alice"}})
	suite.False(IsResuming(ctx, StateKey(innerNodeID)))

	action, err := n.Process(ctx)
	suite.Require().NoError(err)
	suite.Require().True(action.IsRequestInput())
	suite.Equal(model.NameCallback, action.Callbacks[0].Type)
}

func (suite *InnerTreeTestSuite) TestFailureIsReturnedWithoutErrorOutcome() {
	n := suite.newInnerTreeNode("broken", false)

	_, err := n.Process(suite.newContext())
	var nodeErr *model.NodeProcessError
	suite.Require().ErrorAs(err, &nodeErr)
	suite.Equal(failingNodeID, nodeErr.NodeID)
}

func (suite *InnerTreeTestSuite) TestFailureIsRecordedWithErrorOutcome() {
	n := suite.newInnerTreeNode("broken", true)

	action, err := n.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeError, action.Outcome)
	suite.Equal(failingNodeID, action.SharedState.GetString(constants.InnerTreeErrorNodeIDKey))
	suite.Equal(failingNodeType, action.SharedState.GetString(constants.InnerTreeErrorNodeDisplayNameKey))
	suite.Equal(failingNodeType, action.SharedState.GetString(constants.InnerTreeErrorNodeTypeKey))
	suite.Equal("directory unavailable", action.SharedState.GetString(constants.InnerTreeErrorMessageKey))
}

func (suite *InnerTreeTestSuite) TestFailureIsReturnedUnchanged() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	failure := errors.New("evaluation failed")
	evaluator.EXPECT().Evaluate(testRealm, "inner", mock.Anything, mock.Anything, false, mock.Anything).
		Return(nil, failure)
	n := suite.newMockedNode(evaluator, false)

	_, err := n.Process(suite.newContext())
	suite.Same(failure, err)
}

func (suite *InnerTreeTestSuite) newMockedNode(evaluator *enginemock.TreeEvaluatorInterfaceMock,
	displayErrorOutcome bool) node.NodeInterface {
	nodeType := NewNodeType(Dependencies{Evaluator: evaluator, Trees: suite.trees, Factory: suite.registry,
		Sessions: suite.sessions})
	n, err := nodeType.New(node.Instance{
		Definition: node.Definition{ID: innerNodeID, Type: constants.NodeTypeInnerTreeEvaluator,
			Config: map[string]interface{}{"tree": "inner", "displayErrorOutcome": displayErrorOutcome}},
		Realm: testRealm,
		Tree:  "outer",
	})
	suite.Require().NoError(err)
	return n
}

func (suite *InnerTreeTestSuite) TestSuspendedNestedTreeResumes() {
	n := suite.newInnerTreeNode("confirm", false)
	ctx := suite.newContext()
	ctx = ctx.WithSharedState(ctx.SharedState.With(constants.EmailAddressKey, "alice@example.com"))

	first, err := n.Process(ctx)
	suite.Require().NoError(err)
	suite.Require().True(first.IsSuspend())
	suite.Require().True(first.SharedState.Has(StateKey(innerNodeID)))

	resumed := suite.newContext().WithSharedState(first.SharedState).WithResumedFromSuspend(true)
	second, err := n.Process(resumed)
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeTrue, second.Outcome)
	suite.False(second.SharedState.Has(StateKey(innerNodeID)))
}

func (suite *InnerTreeTestSuite) TestRestoringTwiceYieldsSameState() {
	shared := model.NewState().With(StateKey(innerNodeID),
		`{"currentNodeId":"`+passwordNodeID+`","sharedState":{"username":"alice","attempts":2},`+
			`"webhooks":["notify"],"maxTreeDuration":300000000000}`)
	transient := model.NewState().With(StateKey(innerNodeID), map[string]interface{}{"otp": "123456"})

	first, err := RestoreState(shared, transient, StateKey(innerNodeID))
	suite.Require().NoError(err)
	second, err := RestoreState(shared, transient, StateKey(innerNodeID))
	suite.Require().NoError(err)

	suite.Equal(first.CurrentNodeID, second.CurrentNodeID)
	suite.Equal(first.SharedState.ToMap(), second.SharedState.ToMap())
	suite.Equal(first.SharedState.Keys(), second.SharedState.Keys())
	suite.Equal(first.TransientState.ToMap(), second.TransientState.ToMap())
	suite.Equal(first.Webhooks, second.Webhooks)
	suite.Equal(first.MaxTreeDuration, second.MaxTreeDuration)
	suite.Equal(passwordNodeID, first.CurrentNodeID)
	suite.Equal([]string{"notify"}, first.Webhooks)
	suite.Equal(5*time.Minute, first.MaxTreeDuration)
	suite.Equal("123456", first.TransientState.GetString("otp"))
	suite.Equal([]string{StateKey(innerNodeID)}, shared.Keys())
}

func (suite *InnerTreeTestSuite) TestCollectInputsPrefersRequired() {
	inputs, err := CollectInputs(suite.trees, suite.registry, testRealm, "branches")
	suite.Require().NoError(err)
	suite.ElementsMatch([]model.InputState{{Name: "otp", Required: true}, {Name: "mail", Required: false}}, inputs)
}

func (suite *InnerTreeTestSuite) TestFreshEntrySeedsDeclaredTransientInputs() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	var captured *model.TreeExecutionState
	evaluator.EXPECT().Evaluate(testRealm, "inner", mock.Anything, mock.Anything, false, mock.Anything).
		Run(func(realm, treeName string, state *model.TreeExecutionState, callbacks []model.Callback,
			resuming bool, request model.RequestMetadata) {
			captured = state
		}).
		Return(&model.TreeResult{Status: model.TreeStatusTrue, State: model.NewTreeExecutionState(nil, nil, nil)}, nil)

	suite.addTree("inner", suspendNodeID, entry(suspendNodeID, constants.NodeTypeEmailSuspend, nil,
		map[string]string{constants.OutcomeResumed: constants.SuccessNodeID}))
	n := suite.newMockedNode(evaluator, false)

	ctx := suite.newContext()
	ctx = ctx.WithSharedState(ctx.SharedState.With("visible", "yes")).
		WithTransientState(ctx.TransientState.With(constants.EmailAddressKey, "alice@example.com").
			With("secret", "hidden"))
	action, err := n.Process(ctx)
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeTrue, action.Outcome)

	suite.Require().NotNil(captured)
	suite.Equal([]string{constants.EmailAddressKey}, captured.TransientState.Keys())
	suite.Equal("yes", captured.SharedState.GetString("visible"))
	suite.Equal(5*time.Minute, captured.MaxTreeDuration)
}

func (suite *InnerTreeTestSuite) TestDurationBudgetIsCappedBySession() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	var captured *model.TreeExecutionState
	evaluator.EXPECT().Evaluate(testRealm, "inner", mock.Anything, mock.Anything, false, mock.Anything).
		Run(func(realm, treeName string, state *model.TreeExecutionState, callbacks []model.Callback,
			resuming bool, request model.RequestMetadata) {
			captured = state
		}).
		Return(&model.TreeResult{Status: model.TreeStatusFalse, State: model.NewTreeExecutionState(nil, nil, nil)}, nil)
	now := time.Now()
	suite.sessions.EXPECT().GetSession(mock.Anything, "s1").Return(&session.Session{
		ID:             "s1",
		CreatedAt:      now,
		LastAccessedAt: now,
		MaxSessionTime: 2 * time.Minute,
	}, nil)
	n := suite.newMockedNode(evaluator, false)

	action, err := n.Process(model.NewFlowContext(testRealm, "outer", model.RequestMetadata{ExistingSessionID: "s1"}))
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeFalse, action.Outcome)
	suite.Require().NotNil(captured)
	suite.LessOrEqual(captured.MaxTreeDuration, 2*time.Minute)
	suite.Greater(captured.MaxTreeDuration, time.Minute)
}

func (suite *InnerTreeTestSuite) TestSessionLookupFailureIsReported() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	suite.sessions.EXPECT().GetSession(mock.Anything, "s1").Return(nil, errors.New("redis down"))
	n := suite.newMockedNode(evaluator, false)

	_, err := n.Process(model.NewFlowContext(testRealm, "outer", model.RequestMetadata{ExistingSessionID: "s1"}))
	suite.ErrorIs(err, constants.ErrSessionLookup)
}

func (suite *InnerTreeTestSuite) TestMissingSessionUsesTreeDuration() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	evaluator.EXPECT().Evaluate(testRealm, "inner", mock.Anything, mock.Anything, false, mock.Anything).
		Return(&model.TreeResult{Status: model.TreeStatusTrue, State: model.NewTreeExecutionState(nil, nil, nil)}, nil)
	suite.sessions.EXPECT().GetSession(mock.Anything, "gone").Return(nil, session.ErrSessionNotFound)
	n := suite.newMockedNode(evaluator, false)

	action, err := n.Process(model.NewFlowContext(testRealm, "outer", model.RequestMetadata{ExistingSessionID: "gone"}))
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeTrue, action.Outcome)
}

func (suite *InnerTreeTestSuite) TestSideEffectsArePropagated() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	nested := model.NewTreeExecutionState(model.NewState().With("nested", "value"), nil, nil)
	nested.Webhooks = []string{"notify"}
	nested.MaxTreeDuration = 3 * time.Minute
	evaluator.EXPECT().Evaluate(testRealm, "inner", mock.Anything, mock.Anything, false, mock.Anything).
		Return(&model.TreeResult{
			Status:            model.TreeStatusTrue,
			State:             nested,
			SessionProperties: map[string]string{"amr": "otp"},
			SessionHooks:      []model.SessionHook{{NodeType: "X", HookClass: "hook"}},
			MaxSessionTime:    time.Hour,
			MaxIdleTime:       time.Minute,
		}, nil)
	n := suite.newMockedNode(evaluator, false)

	action, err := n.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Equal("value", action.SharedState.GetString("nested"))
	suite.Equal([]string{"notify"}, action.Webhooks)
	suite.Equal(3*time.Minute, action.MaxTreeDuration)
	suite.Equal(map[string]string{"amr": "otp"}, action.SessionProperties)
	suite.Len(action.SessionHooks, 1)
	suite.Equal(time.Hour, action.MaxSessionTime)
	suite.Equal(time.Minute, action.MaxIdleTime)
}

func (suite *InnerTreeTestSuite) TestSideEffectsStayNestedWhilePaused() {
	evaluator := enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	nested := model.NewTreeExecutionState(model.NewState(), nil, nil)
	nested.CurrentNodeID = passwordNodeID
	nested.SessionProperties = map[string]string{"amr": "otp"}
	nested.MaxSessionTime = time.Hour
	evaluator.EXPECT().Evaluate(testRealm, "inner", mock.Anything, mock.Anything, false, mock.Anything).
		Return(&model.TreeResult{
			Status:            model.TreeStatusNeedsInput,
			State:             nested,
			Callbacks:         []model.Callback{{Type: model.PasswordCallback, Name: constants.PasswordKey}},
			SessionProperties: map[string]string{"amr": "otp"},
			MaxSessionTime:    time.Hour,
		}, nil)
	n := suite.newMockedNode(evaluator, false)

	action, err := n.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.Require().True(action.IsRequestInput())
	suite.Empty(action.SessionProperties)
	suite.Zero(action.MaxSessionTime)

	restored, err := RestoreState(action.SharedState, action.TransientState, StateKey(innerNodeID))
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"amr": "otp"}, restored.SessionProperties)
	suite.Equal(time.Hour, restored.MaxSessionTime)
}
