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

package flowexec

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/session"
	"github.com/asgardeo/authtree/internal/authtree/store"
	"github.com/asgardeo/authtree/internal/authtree/tree"
	"github.com/asgardeo/authtree/internal/system/metrics"
	sysutils "github.com/asgardeo/authtree/internal/system/utils"
	"github.com/asgardeo/authtree/tests/mocks/enginemock"
	"github.com/asgardeo/authtree/tests/mocks/sessionmock"
	"github.com/asgardeo/authtree/tests/mocks/storemock"
	"github.com/asgardeo/authtree/tests/mocks/treemock"
)

const testResumeBaseURL = "https://auth.example.com/flow/resume"

type FlowExecServiceTestSuite struct {
	suite.Suite
	trees     *treemock.ProviderInterfaceMock
	evaluator *enginemock.TreeEvaluatorInterfaceMock
	snapshots *storemock.FlowSnapshotStoreInterfaceMock
	sessions  *sessionmock.ServiceInterfaceMock
	tokens    ResumeTokenManagerInterface
	now       time.Time
	service   *flowExecService
}

func TestFlowExecServiceSuite(t *testing.T) {
	suite.Run(t, new(FlowExecServiceTestSuite))
}

func (suite *FlowExecServiceTestSuite) SetupTest() {
	suite.trees = treemock.NewProviderInterfaceMock(suite.T())
	suite.evaluator = enginemock.NewTreeEvaluatorInterfaceMock(suite.T())
	suite.snapshots = storemock.NewFlowSnapshotStoreInterfaceMock(suite.T())
	suite.sessions = sessionmock.NewServiceInterfaceMock(suite.T())

	var err error
	suite.tokens, err = NewResumeTokenManager([]byte(strings.Repeat("k", 32)), "authtree")
	suite.Require().NoError(err)

	suite.now = time.Now().Truncate(time.Millisecond)
	suite.service = NewFlowExecService(suite.trees, suite.evaluator, suite.snapshots, suite.sessions,
		suite.tokens, metrics.NewCollector(), Options{
			DefaultMaxDuration: 5 * time.Minute,
			ResumeBaseURL:      testResumeBaseURL,
		}).(*flowExecService)
	suite.service.now = func() time.Time { return suite.now }
}

func (suite *FlowExecServiceTestSuite) existingSnapshot() *store.FlowSnapshot {
	state := model.NewTreeExecutionState(model.NewState().With("username", "bob"), nil, nil)
	state.CurrentNodeID = "node-2"
	state.MaxTreeDuration = 5 * time.Minute
	return &store.FlowSnapshot{
		FlowID:    "flow-1",
		Realm:     "root",
		TreeName:  "login",
		State:     state,
		ExpiresAt: suite.now.Add(3 * time.Minute),
	}
}

func needsInput(callbacks ...model.Callback) *model.TreeResult {
	state := model.NewTreeExecutionState(nil, nil, nil)
	state.CurrentNodeID = "node-2"
	state.MaxTreeDuration = 5 * time.Minute
	return &model.TreeResult{Status: model.TreeStatusNeedsInput, State: state, Callbacks: callbacks,
		Header: "Sign in"}
}

func completed(status model.TreeStatus) *model.TreeResult {
	return &model.TreeResult{Status: status, State: model.NewTreeExecutionState(nil, nil, nil),
		SessionProperties: map[string]string{"authLevel": "1"}}
}

func (suite *FlowExecServiceTestSuite) TestExecuteStartsFlowAndPersistsSnapshot() {
	prompt := model.Callback{Type: model.NameCallback, Prompt: "User Name"}
	suite.trees.EXPECT().GetTree("root", "login").Return(&tree.Tree{Realm: "root", Name: "login"}, nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(needsInput(prompt), nil)
	suite.snapshots.EXPECT().CreateSnapshot(mock.MatchedBy(func(s *store.FlowSnapshot) bool {
		return s.Realm == "root" && s.TreeName == "login" && s.SuspensionID == "" &&
			s.ExpiresAt.Equal(suite.now.Add(5*time.Minute)) && s.State.CurrentNodeID == "node-2"
	})).Return(nil)

	step, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{TreeName: "login"},
		model.RequestMetadata{})

	suite.Require().Nil(svcErr)
	assert.True(suite.T(), sysutils.IsValidUUID(step.FlowID))
	assert.Equal(suite.T(), FlowStatusIncomplete, step.Status)
	assert.Equal(suite.T(), []model.Callback{prompt}, step.Callbacks)
	assert.Equal(suite.T(), "Sign in", step.Header)
}

func (suite *FlowExecServiceTestSuite) TestExecuteWithoutTreeName() {
	step, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{}, model.RequestMetadata{})

	assert.Nil(suite.T(), step)
	assert.Equal(suite.T(), constants.ErrorMissingTreeName.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestExecuteUnknownTree() {
	suite.trees.EXPECT().GetTree("customers", "login").Return(nil, constants.ErrTreeNotFound)

	_, svcErr := suite.service.Execute(suite.T().Context(),
		&FlowRequest{Realm: "customers", TreeName: "login"}, model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorInvalidTree.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestContinueFlowKeepsItsLifetime() {
	snapshot := suite.existingSnapshot()
	answers := []model.Callback{{Type: model.NameCallback, Value: "bob"}}
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(snapshot, nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", snapshot.State, answers, false, mock.Anything).
		Return(needsInput(model.Callback{Type: model.PasswordCallback}), nil)
	suite.snapshots.EXPECT().UpdateSnapshot(mock.MatchedBy(func(s *store.FlowSnapshot) bool {
		return s.FlowID == "flow-1" && s.ExpiresAt.Equal(snapshot.ExpiresAt)
	})).Return(nil)

	step, svcErr := suite.service.Execute(suite.T().Context(),
		&FlowRequest{FlowID: "flow-1", Callbacks: answers}, model.RequestMetadata{})

	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), FlowStatusIncomplete, step.Status)
	assert.Equal(suite.T(), "flow-1", step.FlowID)
}

func (suite *FlowExecServiceTestSuite) TestContinueUnknownFlow() {
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(nil, store.ErrFlowSnapshotNotFound)

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorInvalidFlowID.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestContinueFlowStoreFailure() {
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(nil, errors.New("connection refused"))

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorFlowPersistence.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestContinueExpiredFlow() {
	snapshot := suite.existingSnapshot()
	snapshot.ExpiresAt = suite.now.Add(-time.Second)
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(snapshot, nil)
	suite.snapshots.EXPECT().DeleteSnapshot("flow-1").Return(nil)

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorFlowExpired.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestContinueSuspendedFlowWithoutResumeLink() {
	snapshot := suite.existingSnapshot()
	snapshot.SuspensionID = "suspension-1"
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(snapshot, nil)

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorFlowSuspended.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestSuccessCreatesSession() {
	result := completed(model.TreeStatusTrue)
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(suite.existingSnapshot(), nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(result, nil)
	suite.snapshots.EXPECT().DeleteSnapshot("flow-1").Return(nil)
	suite.sessions.EXPECT().CreateSession(mock.Anything, "root", "login", result).
		Return(&session.Session{ID: "session-1"}, nil)

	step, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), FlowStatusComplete, step.Status)
	assert.Equal(suite.T(), "session-1", step.SessionID)
}

func (suite *FlowExecServiceTestSuite) TestSessionCreationFailure() {
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(suite.existingSnapshot(), nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(completed(model.TreeStatusTrue), nil)
	suite.snapshots.EXPECT().DeleteSnapshot("flow-1").Return(nil)
	suite.sessions.EXPECT().CreateSession(mock.Anything, "root", "login", mock.Anything).
		Return(nil, errors.New("redis unavailable"))

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorSessionCreation.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestFailureTerminal() {
	suite.trees.EXPECT().GetTree("root", "login").Return(&tree.Tree{}, nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(completed(model.TreeStatusFalse), nil)

	step, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{TreeName: "login"},
		model.RequestMetadata{})

	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), FlowStatusFailed, step.Status)
	assert.Equal(suite.T(), failureReasonFalse, step.FailureReason)
	assert.Empty(suite.T(), step.SessionID)
}

func (suite *FlowExecServiceTestSuite) TestEngineFailureRemovesSnapshot() {
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(suite.existingSnapshot(), nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(nil, &model.NodeProcessError{NodeID: "node-2", Err: errors.New("boom")})
	suite.snapshots.EXPECT().DeleteSnapshot("flow-1").Return(nil)

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{FlowID: "flow-1"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorFlowExecution.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestSuspendAndResume() {
	var resumeURI string
	suspended := &model.TreeResult{
		Status: model.TreeStatusSuspended,
		State:  model.NewTreeExecutionState(nil, nil, nil),
		Suspension: &model.Suspension{
			Duration: 10 * time.Minute,
			Handler: func(uri string) ([]model.Callback, error) {
				resumeURI = uri
				return []model.Callback{{Type: model.SuspendedTextOutputCallback, Prompt: "Check your inbox"}}, nil
			},
		},
	}
	suspended.State.CurrentNodeID = "node-3"

	var persisted *store.FlowSnapshot
	suite.trees.EXPECT().GetTree("root", "login").Return(&tree.Tree{}, nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(suspended, nil).Once()
	suite.snapshots.EXPECT().CreateSnapshot(mock.Anything).
		Run(func(s *store.FlowSnapshot) { persisted = s }).Return(nil)

	step, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{TreeName: "login"},
		model.RequestMetadata{})

	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), FlowStatusSuspended, step.Status)
	suite.Require().Len(step.Callbacks, 1)
	assert.Equal(suite.T(), "Check your inbox", step.Callbacks[0].Prompt)
	suite.Require().NotNil(persisted)
	assert.True(suite.T(), persisted.IsSuspended())
	assert.True(suite.T(), persisted.ExpiresAt.Equal(suite.now.Add(10*time.Minute)))

	suite.Require().True(strings.HasPrefix(resumeURI, testResumeBaseURL+"?token="))
	parsed, err := url.Parse(resumeURI)
	suite.Require().NoError(err)
	token := parsed.Query().Get("token")
	claims, err := suite.tokens.ParseToken(token)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), step.FlowID, claims.FlowID)
	assert.Equal(suite.T(), persisted.SuspensionID, claims.SuspensionID)

	result := completed(model.TreeStatusTrue)
	suite.snapshots.EXPECT().GetSnapshot(step.FlowID).Return(persisted, nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", persisted.State, mock.Anything, true,
		mock.MatchedBy(func(r model.RequestMetadata) bool { return r.SuspensionID == persisted.SuspensionID })).
		Return(result, nil).Once()
	suite.snapshots.EXPECT().DeleteSnapshot(step.FlowID).Return(nil)
	suite.sessions.EXPECT().CreateSession(mock.Anything, "root", "login", result).
		Return(&session.Session{ID: "session-1"}, nil)

	resumed, svcErr := suite.service.Resume(suite.T().Context(), token, model.RequestMetadata{})

	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), FlowStatusComplete, resumed.Status)
	assert.Equal(suite.T(), step.FlowID, resumed.FlowID)
}

func (suite *FlowExecServiceTestSuite) TestResumeWithForgedToken() {
	forger, err := NewResumeTokenManager([]byte(strings.Repeat("x", 32)), "authtree")
	suite.Require().NoError(err)
	token, err := forger.IssueToken("flow-1", "suspension-1", time.Now().Add(time.Minute))
	suite.Require().NoError(err)

	_, svcErr := suite.service.Resume(suite.T().Context(), token, model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorInvalidResumeToken.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestResumeWithStaleSuspension() {
	snapshot := suite.existingSnapshot()
	snapshot.SuspensionID = "suspension-2"
	token, err := suite.tokens.IssueToken("flow-1", "suspension-1", time.Now().Add(time.Minute))
	suite.Require().NoError(err)
	suite.snapshots.EXPECT().GetSnapshot("flow-1").Return(snapshot, nil)

	_, svcErr := suite.service.Resume(suite.T().Context(), token, model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorFlowNotSuspended.Code, svcErr.Code)
}

func (suite *FlowExecServiceTestSuite) TestSuspensionHandlerFailure() {
	suspended := &model.TreeResult{
		Status: model.TreeStatusSuspended,
		State:  model.NewTreeExecutionState(nil, nil, nil),
		Suspension: &model.Suspension{Handler: func(string) ([]model.Callback, error) {
			return nil, errors.New("mail server down")
		}},
	}
	suite.trees.EXPECT().GetTree("root", "login").Return(&tree.Tree{}, nil)
	suite.evaluator.EXPECT().Evaluate("root", "login", mock.Anything, mock.Anything, false, mock.Anything).
		Return(suspended, nil)

	_, svcErr := suite.service.Execute(suite.T().Context(), &FlowRequest{TreeName: "login"},
		model.RequestMetadata{})

	assert.Equal(suite.T(), constants.ErrorFlowExecution.Code, svcErr.Code)
}
