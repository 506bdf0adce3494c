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

// Package innertree provides the node evaluating a whole tree as a single step of another tree.
package innertree

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/engine"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/session"
	"github.com/asgardeo/authtree/internal/authtree/tree"
	"github.com/asgardeo/authtree/internal/system/log"
)

const configSchema = `{
	"type": "object",
	"required": ["tree"],
	"properties": {
		"tree": {"type": "string", "minLength": 1},
		"displayErrorOutcome": {"type": "boolean"}
	}
}`

// Config is the configuration of an inner tree node.
type Config struct {
	Tree                string `mapstructure:"tree"`
	DisplayErrorOutcome bool   `mapstructure:"displayErrorOutcome"`
}

// Dependencies are the collaborators of the inner tree node.
type Dependencies struct {
	Evaluator engine.TreeEvaluatorInterface
	Trees     tree.ProviderInterface
	Factory   node.FactoryInterface
	Sessions  session.ServiceInterface
}

// NewNodeType returns the inner tree node type.
func NewNodeType(deps Dependencies) node.NodeType {
	return node.NodeType{
		Name:            constants.NodeTypeInnerTreeEvaluator,
		Version:         constants.DefaultNodeVersion,
		Composite:       true,
		ConfigSchema:    configSchema,
		OutcomeProvider: getOutcomes,
		New: func(instance node.Instance) (node.NodeInterface, error) {
			var cfg Config
			if err := node.DecodeConfig(instance.Config, &cfg); err != nil {
				return nil, err
			}
			if _, err := deps.Trees.GetTree(instance.Realm, cfg.Tree); err != nil {
				return nil, err
			}
			return &innerTreeNode{
				instance: instance,
				config:   cfg,
				deps:     deps,
				logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InnerTreeEvaluatorNode"),
					log.String(log.LoggerKeyNodeID, instance.ID), log.String(log.LoggerKeyTreeName, cfg.Tree)),
			}, nil
		},
	}
}

func getOutcomes(config map[string]interface{}, _ node.TypeResolverInterface) ([]string, error) {
	var cfg Config
	if err := node.DecodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	outcomes := []string{constants.OutcomeTrue, constants.OutcomeFalse}
	if cfg.DisplayErrorOutcome {
		outcomes = append(outcomes, constants.OutcomeError)
	}
	return outcomes, nil
}

type innerTreeNode struct {
	instance node.Instance
	config   Config
	deps     Dependencies
	logger   *log.Logger
}

// Process evaluates the nested tree, either from its entry node or from where it paused.
func (n *innerTreeNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	key := StateKey(n.instance.ID)

	resuming := IsResuming(ctx, key)
	var state *model.TreeExecutionState
	if resuming {
		restored, err := RestoreState(ctx.SharedState, ctx.TransientState, key)
		if err != nil {
			n.logger.Warn("Could not restore the nested tree state, starting from the entry node", log.Error(err))
			resuming = false
		} else {
			state = restored
		}
	}
	if state == nil {
		fresh, err := n.freshState(ctx)
		if err != nil {
			return nil, err
		}
		state = fresh
	}
	state.SecureState = ctx.SecureState

	n.logger.Debug("Evaluating nested tree", log.Bool("resuming", resuming),
		log.String("activeNodeId", state.CurrentNodeID))
	result, err := n.deps.Evaluator.Evaluate(ctx.Realm, n.config.Tree, state, ctx.Callbacks, resuming, ctx.Request)
	if err != nil {
		return n.handleFailure(ctx, key, err)
	}

	switch result.Status {
	case model.TreeStatusNeedsInput, model.TreeStatusSuspended:
		return n.pause(ctx, key, result)
	default:
		return n.complete(ctx, key, result), nil
	}
}

// GetInputs returns the inputs declared by the nodes of the nested tree.
func (n *innerTreeNode) GetInputs() []model.InputState {
	inputs, err := CollectInputs(n.deps.Trees, n.deps.Factory, n.instance.Realm, n.config.Tree)
	if err != nil {
		n.logger.Debug("Could not collect the inputs of the nested tree", log.Error(err))
		return nil
	}
	return inputs
}

// freshState seeds the state of a nested tree starting from its entry node.
func (n *innerTreeNode) freshState(ctx *model.FlowContext) (*model.TreeExecutionState, error) {
	t, err := n.deps.Trees.GetTree(ctx.Realm, n.config.Tree)
	if err != nil {
		return nil, err
	}
	inputs, err := CollectInputs(n.deps.Trees, n.deps.Factory, ctx.Realm, n.config.Tree)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = input.Name
	}

	state := model.NewTreeExecutionState(ctx.SharedState, ctx.TransientState.Filter(names), ctx.SecureState)
	state.MaxTreeDuration, err = n.durationBudget(ctx, t)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// durationBudget caps the max duration of the nested tree by the remaining life of the session the
// caller already holds.
func (n *innerTreeNode) durationBudget(ctx *model.FlowContext, t *tree.Tree) (time.Duration, error) {
	budget := t.MaxDuration
	sessionID := ctx.Request.ExistingSessionID
	if sessionID == "" || n.deps.Sessions == nil {
		return budget, nil
	}

	s, err := n.deps.Sessions.GetSession(context.Background(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			n.logger.Debug("Existing session not found, using the tree duration")
			return budget, nil
		}
		return 0, fmt.Errorf("%w: %w", constants.ErrSessionLookup, err)
	}
	if remaining := s.RemainingTime(time.Now()); remaining < budget {
		budget = remaining
	}
	return budget, nil
}

// pause returns the prompts or the suspension of the nested tree and stores its state. Session side
// effects stay in the nested state until the nested tree completes.
func (n *innerTreeNode) pause(ctx *model.FlowContext, key string, result *model.TreeResult) (*model.Action, error) {
	serialized, err := SerializeState(result.State)
	if err != nil {
		return nil, err
	}

	var action *model.Action
	if result.Status == model.TreeStatusSuspended {
		action = model.NewSuspendAction(*result.Suspension)
	} else {
		action = model.NewRequestInputAction(result.Callbacks...)
	}
	action.SharedState = ctx.SharedState.With(key, serialized)
	action.TransientState = ctx.TransientState.With(key, result.State.TransientState.ToMap())
	action.SecureState = result.State.SecureState
	action.Webhooks = result.State.Webhooks
	action.MaxTreeDuration = result.State.MaxTreeDuration
	action.Header = result.Header
	action.Description = result.Description
	action.Stage = result.Stage
	return action, nil
}

// complete maps the terminal reached by the nested tree to the outcome of the node.
func (n *innerTreeNode) complete(ctx *model.FlowContext, key string, result *model.TreeResult) *model.Action {
	outcome := constants.OutcomeFalse
	if result.Status == model.TreeStatusTrue {
		outcome = constants.OutcomeTrue
	}
	n.logger.Debug("Nested tree completed", log.String("outcome", outcome))

	action := model.NewOutcomeAction(outcome)
	action.SharedState = ctx.SharedState.Merge(result.State.SharedState).Without(key)
	action.TransientState = ctx.TransientState.Merge(result.State.TransientState).Without(key)
	action.SecureState = result.State.SecureState
	action.Webhooks = result.State.Webhooks
	action.MaxTreeDuration = result.State.MaxTreeDuration
	applySessionEffects(action, result)
	return action
}

// handleFailure either takes the error outcome with the failure recorded in shared state, or
// returns the failure as is.
func (n *innerTreeNode) handleFailure(ctx *model.FlowContext, key string, err error) (*model.Action, error) {
	if !n.config.DisplayErrorOutcome {
		return nil, err
	}

	var nodeID, displayName, nodeType string
	message := err.Error()
	var nodeErr *model.NodeProcessError
	if errors.As(err, &nodeErr) {
		nodeID, displayName, nodeType = nodeErr.NodeID, nodeErr.NodeDisplayName, nodeErr.NodeType
		message = nodeErr.Message()
	}
	n.logger.Debug("Nested tree failed, taking the error outcome", log.String("failedNodeId", nodeID),
		log.Error(err))

	action := model.NewOutcomeAction(constants.OutcomeError)
	action.SharedState = ctx.SharedState.Without(key).
		With(constants.InnerTreeErrorNodeIDKey, nodeID).
		With(constants.InnerTreeErrorNodeDisplayNameKey, displayName).
		With(constants.InnerTreeErrorNodeTypeKey, nodeType).
		With(constants.InnerTreeErrorMessageKey, message)
	action.TransientState = ctx.TransientState.Without(key)
	return action, nil
}

func applySessionEffects(action *model.Action, result *model.TreeResult) {
	action.SessionProperties = result.SessionProperties
	action.SessionHooks = result.SessionHooks
	action.MaxSessionTime = result.MaxSessionTime
	action.MaxIdleTime = result.MaxIdleTime
}
