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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/system/config"
	"github.com/asgardeo/authtree/tests/mocks/storemock"
)

const serverHome = "../.."

const invalidTreeConfig = `
flow:
  trees:
    - realm: "root"
      name: "broken"
      entry_node_id: "3c1b9f6e-6a5d-4d0e-9a57-1f2b8c4d7e01"
      nodes:
        - id: "3c1b9f6e-6a5d-4d0e-9a57-1f2b8c4d7e01"
          type: "PageNode"
          config:
            nodes: []
`

type ServerTestSuite struct {
	suite.Suite
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) loadSampleConfig() *config.Config {
	cfg, err := config.LoadConfig(filepath.Join(serverHome, "repository/conf/deployment.yaml"))
	suite.Require().NoError(err)
	return cfg
}

func (suite *ServerTestSuite) TestSampleTreesAreValid() {
	rt, err := newTreeRuntime(suite.loadSampleConfig(), nil, nil)
	suite.Require().NoError(err)

	assert.NoError(suite.T(), rt.validate())
	assert.Len(suite.T(), rt.trees.GetTrees(), 2)
}

func (suite *ServerTestSuite) TestBuiltInNodeTypesAreRegistered() {
	rt, err := newTreeRuntime(suite.loadSampleConfig(), nil, nil)
	suite.Require().NoError(err)

	for _, name := range []string{
		constants.NodeTypePage,
		constants.NodeTypeInnerTreeEvaluator,
		constants.NodeTypeConfigProvider,
		constants.NodeTypeUsernameCollector,
		constants.NodeTypePasswordCollector,
		constants.NodeTypeSelectIdP,
		constants.NodeTypeEmailSuspend,
	} {
		_, err := rt.registry.GetNodeType(name, "")
		assert.NoError(suite.T(), err, name)
	}
}

func (suite *ServerTestSuite) TestValidateCommand() {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"validate", "--home", serverHome})

	err := rootCmd.Execute()

	suite.Require().NoError(err)
	assert.Contains(suite.T(), out.String(), "root/login")
	assert.Contains(suite.T(), out.String(), "2 trees valid")
}

func (suite *ServerTestSuite) TestValidateCommandRejectsInvalidTree() {
	dir := suite.T().TempDir()
	configPath := filepath.Join(dir, "deployment.yaml")
	suite.Require().NoError(os.WriteFile(configPath, []byte(invalidTreeConfig), 0o600))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"validate", "--home", dir, "--config", configPath})

	err := rootCmd.Execute()

	assert.ErrorIs(suite.T(), err, constants.ErrInvalidTree)
}

func (suite *ServerTestSuite) TestPurgeRemovesExpiredSnapshots() {
	now := time.Now()
	snapshots := storemock.NewFlowSnapshotStoreInterfaceMock(suite.T())
	snapshots.EXPECT().DeleteExpired(now).Return(int64(3), nil).Once()
	snapshots.EXPECT().DeleteExpired(now).Return(int64(0), errors.New("database is locked")).Once()

	purger := newSnapshotPurger(snapshots)
	purger.now = func() time.Time { return now }

	purger.purge()
	purger.purge()
}

func (suite *ServerTestSuite) TestPurgeScheduleIsValidated() {
	purger := newSnapshotPurger(storemock.NewFlowSnapshotStoreInterfaceMock(suite.T()))

	assert.Error(suite.T(), purger.start("every five minutes"))

	suite.Require().NoError(purger.start("@every 1h"))
	purger.stop()
}

func (suite *ServerTestSuite) TestPurgeRunsOnSchedule() {
	snapshots := storemock.NewFlowSnapshotStoreInterfaceMock(suite.T())
	done := make(chan struct{}, 1)
	snapshots.EXPECT().DeleteExpired(mock.Anything).Run(func(time.Time) {
		select {
		case done <- struct{}{}:
		default:
		}
	}).Return(int64(0), nil)

	purger := newSnapshotPurger(snapshots)
	suite.Require().NoError(purger.start("@every 1s"))
	defer purger.stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.Fail("purge did not run")
	}
}
