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

package collector

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
)

type CollectorTestSuite struct {
	suite.Suite
}

func TestCollectorTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}

func (suite *CollectorTestSuite) newContext(callbacks ...model.Callback) *model.FlowContext {
	return model.NewFlowContext("alpha", "login", model.RequestMetadata{}).WithCallbacks(callbacks)
}

func (suite *CollectorTestSuite) TestUsernameCollectorRequestsInput() {
	n, err := NewUsernameCollectorNodeType().New(nodeInstance())
	suite.Require().NoError(err)

	action, err := n.Process(suite.newContext())
	suite.Require().NoError(err)
	suite.True(action.IsRequestInput())
	suite.Require().Len(action.Callbacks, 1)
	suite.Equal(model.NameCallback, action.Callbacks[0].Type)
}

func (suite *CollectorTestSuite) TestUsernameCollectorStoresUsername() {
	n, err := NewUsernameCollectorNodeType().New(nodeInstance())
	suite.Require().NoError(err)

	action, err := n.Process(suite.newContext(model.Callback{Type: model.NameCallback, Value: "alice"}))
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeSuccess, action.Outcome)
	suite.Equal("alice", action.SharedState.GetString(constants.UsernameKey))
	suite.Nil(action.TransientState)
}

func (suite *CollectorTestSuite) TestPasswordCollectorStoresPasswordInTransientState() {
	n, err := NewPasswordCollectorNodeType().New(nodeInstance())
	suite.Require().NoError(err)

	action, err := n.Process(suite.newContext(model.Callback{Type: model.PasswordCallback, Value: "secret"}))
	suite.Require().NoError(err)
	suite.Equal(constants.OutcomeSuccess, action.Outcome)
	suite.Equal("secret", action.TransientState.GetString(constants.PasswordKey))
	suite.Nil(action.SharedState)
}

func (suite *CollectorTestSuite) TestPasswordCollectorIgnoresEmptyAnswer() {
	n, err := NewPasswordCollectorNodeType().New(nodeInstance())
	suite.Require().NoError(err)

	action, err := n.Process(suite.newContext(model.Callback{Type: model.PasswordCallback, Value: ""}))
	suite.Require().NoError(err)
	suite.True(action.IsRequestInput())
}

func nodeInstance() node.Instance {
	return node.Instance{Realm: "alpha", Tree: "login"}
}
