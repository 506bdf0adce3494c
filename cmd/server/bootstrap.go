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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/asgardeo/authtree/internal/authtree/audit"
	"github.com/asgardeo/authtree/internal/authtree/configprovider"
	"github.com/asgardeo/authtree/internal/authtree/engine"
	"github.com/asgardeo/authtree/internal/authtree/innertree"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/nodes/collector"
	"github.com/asgardeo/authtree/internal/authtree/nodes/emailsuspend"
	"github.com/asgardeo/authtree/internal/authtree/nodes/idpselect"
	"github.com/asgardeo/authtree/internal/authtree/page"
	"github.com/asgardeo/authtree/internal/authtree/script"
	"github.com/asgardeo/authtree/internal/authtree/session"
	"github.com/asgardeo/authtree/internal/authtree/tree"
	"github.com/asgardeo/authtree/internal/system/config"
	"github.com/asgardeo/authtree/internal/system/constants"
	"github.com/asgardeo/authtree/internal/system/metrics"
)

// loadConfig resolves the server home and loads the deployment configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	home, _ := cmd.Flags().GetString("home")
	if home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current working directory: %w", err)
		}
		home = dir
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = constants.DeploymentConfigFilePath
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(home, configPath)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, "", err
	}
	return cfg, home, nil
}

// treeRuntime holds the components that evaluate trees.
type treeRuntime struct {
	trees     *tree.Provider
	registry  *node.Registry
	evaluator *engine.TreeEvaluator
}

// newTreeRuntime loads the configured trees and registers the built-in node types. The session
// service may be nil when trees are only validated.
func newTreeRuntime(cfg *config.Config, sessions session.ServiceInterface,
	metricsCollector metrics.CollectorInterface) (*treeRuntime, error) {
	trees := tree.NewProvider(time.Duration(cfg.Flow.DefaultMaxDuration) * time.Minute)
	if err := trees.LoadDefinitions(cfg.Flow.Trees); err != nil {
		return nil, fmt.Errorf("failed to load trees: %w", err)
	}

	registry := node.NewRegistry(trees)
	auditLogger := audit.NewLogger()
	evaluator := engine.NewTreeEvaluator(trees, registry, auditLogger, metricsCollector)

	scripts, err := script.NewEvaluator()
	if err != nil {
		return nil, fmt.Errorf("failed to create script evaluator: %w", err)
	}

	nodeTypes := []node.NodeType{
		collector.NewUsernameCollectorNodeType(),
		collector.NewPasswordCollectorNodeType(),
		idpselect.NewNodeType(),
		emailsuspend.NewNodeType(),
		page.NewNodeType(registry, auditLogger),
		innertree.NewNodeType(innertree.Dependencies{
			Evaluator: evaluator,
			Trees:     trees,
			Factory:   registry,
			Sessions:  sessions,
		}),
		configprovider.NewNodeType(registry, scripts),
	}
	for _, nodeType := range nodeTypes {
		if err := registry.Register(nodeType); err != nil {
			return nil, fmt.Errorf("failed to register node type %s: %w", nodeType.Name, err)
		}
	}

	return &treeRuntime{trees: trees, registry: registry, evaluator: evaluator}, nil
}

// validate checks every configured tree against the registered node types.
func (rt *treeRuntime) validate() error {
	return tree.ValidateAll(rt.trees, rt.registry)
}
