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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	ResetRuntime()
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.tempDir, "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	suite.Require().NoError(err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := suite.writeConfig(`
server:
  hostname: "localhost"
  port: 9090
database:
  runtime:
    type: "sqlite"
    path: "repository/database/runtimedb.db"
session:
  redis:
    address: "localhost:6379"
crypto:
  key: "0579f866ac7c9273580d0ff163fa01a7b2401a7ff3ddc3e3b14ae3136fa6025e"
flow:
  default_max_duration: 10
  resume:
    signing_key: "secret"
    issuer: "authtree"
    base_url: "https://localhost:9090"
  trees:
    - realm: "root"
      name: "Login"
      entry_node_id: "a0b5b42e-8b0e-4dc5-9a7e-3ffb4c3b0a11"
      max_duration: 3
      nodes:
        - id: "a0b5b42e-8b0e-4dc5-9a7e-3ffb4c3b0a11"
          type: "UsernameCollectorNode"
          display_name: "Username"
          connections:
            success: "70e691a5-1e33-4ac3-a356-e7b6d60d92e0"
`)

	cfg, err := LoadConfig(path)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.Equal(suite.T(), 9090, cfg.Server.Port)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Runtime.Type)
	assert.Equal(suite.T(), "localhost:6379", cfg.Session.Redis.Address)
	assert.Equal(suite.T(), 10, cfg.Flow.DefaultMaxDuration)
	assert.Equal(suite.T(), "secret", cfg.Flow.Resume.SigningKey)
	suite.Require().Len(cfg.Flow.Trees, 1)
	tree := cfg.Flow.Trees[0]
	assert.Equal(suite.T(), "Login", tree.Name)
	assert.Equal(suite.T(), 3, tree.MaxDuration)
	suite.Require().Len(tree.Nodes, 1)
	assert.Equal(suite.T(), "70e691a5-1e33-4ac3-a356-e7b6d60d92e0", tree.Nodes[0].Connections["success"])
}

func (suite *ConfigTestSuite) TestLoadConfigAppliesDefaults() {
	path := suite.writeConfig("server:\n  hostname: \"localhost\"\n")

	cfg, err := LoadConfig(path)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 8090, cfg.Server.Port)
	assert.Equal(suite.T(), 5, cfg.Flow.DefaultMaxDuration)
	assert.Equal(suite.T(), "@every 5m", cfg.Flow.SnapshotPurgeSchedule)
	assert.Equal(suite.T(), 120, cfg.Session.DefaultMaxSessionTime)
	assert.Equal(suite.T(), 30, cfg.Session.DefaultMaxIdleTime)
	assert.Equal(suite.T(), "authtree:session:", cfg.Session.Redis.KeyPrefix)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	cfg, err := LoadConfig(filepath.Join(suite.tempDir, "missing.yaml"))
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeConfig("server: [unclosed")

	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestRuntimeInitializedOnlyOnce() {
	InitializeRuntime("/opt/first", &Config{Server: ServerConfig{Hostname: "first"}})
	InitializeRuntime("/opt/second", &Config{Server: ServerConfig{Hostname: "second"}})

	runtime := GetRuntime()
	assert.Equal(suite.T(), "/opt/first", runtime.ServerHome)
	assert.Equal(suite.T(), "first", runtime.Config.Server.Hostname)
}

func (suite *ConfigTestSuite) TestGetRuntimePanicsWhenUninitialized() {
	assert.Panics(suite.T(), func() {
		GetRuntime()
	})
}
