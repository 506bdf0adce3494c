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

// Package configprovider provides the node computing the configuration of another node at run time.
package configprovider

import (
	"fmt"
	"slices"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/innertree"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/script"
	"github.com/asgardeo/authtree/internal/system/log"
)

const (
	allInputs    = "*"
	configSchema = `{
		"type": "object",
		"required": ["nodeType", "script"],
		"properties": {
			"nodeType": {"type": "string", "minLength": 1},
			"nodeVersion": {"type": "string"},
			"script": {
				"type": "object",
				"required": ["source"],
				"properties": {
					"language": {"enum": ["", "expr", "cel", "jq"]},
					"source": {"type": "string", "minLength": 1}
				}
			},
			"inputs": {"type": "array", "items": {"type": "string"}}
		}
	}`
)

// Config is the configuration of a config provider node.
type Config struct {
	NodeType    string        `mapstructure:"nodeType"`
	NodeVersion string        `mapstructure:"nodeVersion"`
	Script      script.Script `mapstructure:"script"`
	// Inputs lists the state keys exposed to the script. All keys are exposed when it is empty or
	// holds "*".
	Inputs []string `mapstructure:"inputs"`
}

// NewNodeType returns the config provider node type.
func NewNodeType(factory node.FactoryInterface, evaluator script.EvaluatorInterface) node.NodeType {
	return node.NodeType{
		Name:            constants.NodeTypeConfigProvider,
		Version:         constants.DefaultNodeVersion,
		ConfigSchema:    configSchema,
		OutcomeProvider: getOutcomes,
		Delegate:        delegateType,
		Validate: func(config map[string]interface{}, resolver node.TypeResolverInterface) error {
			_, err := getOutcomes(config, resolver)
			return err
		},
		New: func(instance node.Instance) (node.NodeInterface, error) {
			var cfg Config
			if err := node.DecodeConfig(instance.Config, &cfg); err != nil {
				return nil, err
			}
			return &configProviderNode{
				instance:  instance,
				config:    cfg,
				factory:   factory,
				evaluator: evaluator,
				logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ConfigProviderNode"),
					log.String(log.LoggerKeyNodeID, instance.ID)),
			}, nil
		},
	}
}

// delegateType returns the type of the node a config provider configures.
func delegateType(config map[string]interface{}, resolver node.TypeResolverInterface) (*node.NodeType, error) {
	var cfg Config
	if err := node.DecodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	t, err := resolver.GetNodeType(cfg.NodeType, cfg.NodeVersion)
	if err != nil {
		return nil, err
	}
	if t.Name == constants.NodeTypeConfigProvider {
		return nil, fmt.Errorf("%w: a config provider cannot configure another config provider",
			constants.ErrInvalidNodeConfig)
	}
	return t, nil
}

// getOutcomes returns the outcomes of the delegate type and the configuration failure outcome.
func getOutcomes(config map[string]interface{}, resolver node.TypeResolverInterface) ([]string, error) {
	delegate, err := delegateType(config, resolver)
	if err != nil {
		return nil, err
	}
	outcomes, err := delegate.GetOutcomes(nil, resolver)
	if err != nil {
		return nil, err
	}
	result := append([]string(nil), outcomes...)
	if !slices.Contains(result, constants.OutcomeConfigurationFailed) {
		result = append(result, constants.OutcomeConfigurationFailed)
	}
	return result, nil
}

type configProviderNode struct {
	instance  node.Instance
	config    Config
	factory   node.FactoryInterface
	evaluator script.EvaluatorInterface
	logger    *log.Logger
}

// Process computes the delegate configuration, or recovers it while a nested tree delegate is
// paused, and processes the delegate with it.
func (n *configProviderNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	stashKey := constants.ConfigProviderConfigKeyPrefix + n.instance.ID
	delegateStateKey := innertree.StateKey(n.instance.ID)

	var config map[string]interface{}
	if innertree.IsResuming(ctx, delegateStateKey) {
		config = stashedConfig(ctx.SharedState, stashKey)
		if config == nil {
			n.logger.Warn("No stored configuration found for the paused delegate, computing it again")
		}
	}
	if config == nil {
		computed, err := n.computeConfig(ctx)
		if err != nil {
			n.logger.Debug("Failed to compute the delegate configuration", log.Error(err))
			return n.configurationFailed(ctx, stashKey), nil
		}
		config = computed
	}

	delegate, err := n.factory.CreateDynamicNode(n.config.NodeType, n.config.NodeVersion, config,
		n.instance.Realm, n.instance.Tree, false, n.instance.ID)
	if err != nil {
		n.logger.Debug("Failed to create the delegate node", log.String(log.LoggerKeyNodeType, n.config.NodeType),
			log.Error(err))
		return n.configurationFailed(ctx, stashKey), nil
	}

	action, err := delegate.Process(ctx)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, fmt.Errorf("%w: no action", constants.ErrInvalidNodeAction)
	}

	action.SessionHooks = n.resolveHooks(action.SessionHooks, config)
	shared := action.SharedState
	if shared == nil {
		shared = ctx.SharedState
	}
	switch {
	case action.IsOutcome():
		if shared.Has(stashKey) {
			action.SharedState = shared.Without(stashKey)
		}
	case shared.Has(delegateStateKey) && !shared.Has(stashKey):
		n.logger.Debug("Storing the delegate configuration while the nested tree is paused")
		action.SharedState = shared.With(stashKey, config)
	}
	return action, nil
}

// computeConfig runs the script against the state keys it may read and the request.
func (n *configProviderNode) computeConfig(ctx *model.FlowContext) (map[string]interface{}, error) {
	bindings := map[string]interface{}{
		constants.ScriptBindingSharedState:       n.exposed(ctx.SharedState).ToMap(),
		constants.ScriptBindingTransientState:    n.exposed(ctx.TransientState).ToMap(),
		constants.ScriptBindingRequestHeaders:    headerValues(ctx.Request.Headers),
		constants.ScriptBindingRequestParameters: headerValues(ctx.Request.Parameters),
	}
	result, err := n.evaluator.Evaluate(n.config.Script, bindings, ctx.Realm)
	if err != nil {
		return nil, err
	}
	config, ok := result[constants.ScriptBindingConfig].(map[string]interface{})
	if !ok {
		return nil, constants.ErrScriptResultNotMap
	}
	return config, nil
}

func (n *configProviderNode) exposed(state *model.State) *model.State {
	if len(n.config.Inputs) == 0 || slices.Contains(n.config.Inputs, allInputs) {
		return state
	}
	return state.Filter(n.config.Inputs)
}

func (n *configProviderNode) configurationFailed(ctx *model.FlowContext, stashKey string) *model.Action {
	action := model.NewOutcomeAction(constants.OutcomeConfigurationFailed)
	action.SharedState = ctx.SharedState.Without(stashKey)
	return action
}

// resolveHooks makes the hooks registered by the delegate carry its configuration, since the
// dynamic delegate cannot be looked up again once the session is created.
func (n *configProviderNode) resolveHooks(hooks []model.SessionHook,
	config map[string]interface{}) []model.SessionHook {
	if len(hooks) == 0 {
		return hooks
	}
	resolved := make([]model.SessionHook, len(hooks))
	for i, hook := range hooks {
		if hook.NodeID == n.instance.ID {
			hook.NodeID = ""
			hook.Config = config
		}
		resolved[i] = hook
	}
	return resolved
}

// GetInputs returns the state keys exposed to the script.
func (n *configProviderNode) GetInputs() []model.InputState {
	var inputs []model.InputState
	for _, name := range n.config.Inputs {
		if name == allInputs {
			continue
		}
		inputs = append(inputs, model.InputState{Name: name})
	}
	return inputs
}

// GetOutputs returns the outputs of the delegate created without configuration, or none when it
// cannot be created or fails to answer.
func (n *configProviderNode) GetOutputs() (outputs []model.OutputState) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Debug("Delegate failed to report its outputs", log.Any("panic", r))
			outputs = nil
		}
	}()

	delegate, err := n.factory.CreateDynamicNode(n.config.NodeType, n.config.NodeVersion,
		map[string]interface{}{}, n.instance.Realm, n.instance.Tree, false, n.instance.ID)
	if err != nil {
		return nil
	}
	return node.GetOutputs(delegate)
}

func stashedConfig(shared *model.State, key string) map[string]interface{} {
	value, ok := shared.Get(key)
	if !ok {
		return nil
	}
	config, _ := value.(map[string]interface{})
	return config
}

func headerValues(values map[string][]string) map[string]interface{} {
	result := make(map[string]interface{}, len(values))
	for name, v := range values {
		result[name] = append([]string(nil), v...)
	}
	return result
}
