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

// Package engine evaluates authentication trees node by node.
package engine

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/audit"
	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/tree"
	"github.com/asgardeo/authtree/internal/system/log"
	"github.com/asgardeo/authtree/internal/system/metrics"
)

// TreeEvaluatorInterface evaluates a tree until it completes or pauses.
type TreeEvaluatorInterface interface {
	Evaluate(realm, treeName string, state *model.TreeExecutionState, callbacks []model.Callback,
		resuming bool, request model.RequestMetadata) (*model.TreeResult, error)
}

// TreeEvaluator is the default implementation of TreeEvaluatorInterface.
type TreeEvaluator struct {
	trees   tree.ProviderInterface
	factory node.FactoryInterface
	audit   audit.LoggerInterface
	metrics metrics.CollectorInterface
	logger  *log.Logger
}

// NewTreeEvaluator creates a TreeEvaluator.
func NewTreeEvaluator(trees tree.ProviderInterface, factory node.FactoryInterface, auditLogger audit.LoggerInterface,
	collector metrics.CollectorInterface) *TreeEvaluator {
	if collector == nil {
		collector = metrics.NoopCollector{}
	}
	return &TreeEvaluator{
		trees:   trees,
		factory: factory,
		audit:   auditLogger,
		metrics: collector,
		logger:  log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TreeEvaluator")),
	}
}

// Evaluate runs the tree from the node recorded in the state, or from the entry node. The
// callbacks and the resuming flag are given to the first node processed only.
func (te *TreeEvaluator) Evaluate(realm, treeName string, state *model.TreeExecutionState,
	callbacks []model.Callback, resuming bool, request model.RequestMetadata) (*model.TreeResult, error) {
	logger := te.logger.With(log.String(log.LoggerKeyRealm, realm), log.String(log.LoggerKeyTreeName, treeName))

	t, err := te.trees.GetTree(realm, treeName)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = model.NewTreeExecutionState(nil, nil, nil)
	}

	currentNodeID := state.CurrentNodeID
	if currentNodeID == "" {
		logger.Debug("Starting tree from the entry node", log.String(log.LoggerKeyNodeID, t.EntryNodeID))
		currentNodeID = t.EntryNodeID
	}
	maxTreeDuration := state.MaxTreeDuration
	if maxTreeDuration == 0 {
		maxTreeDuration = t.MaxDuration
	}

	ctx := &model.FlowContext{
		Realm:              realm,
		TreeName:           treeName,
		SharedState:        orEmpty(state.SharedState),
		TransientState:     orEmpty(state.TransientState),
		SecureState:        state.SecureState,
		Callbacks:          callbacks,
		Request:            request,
		ResumedFromSuspend: resuming,
	}
	if ctx.SecureState == nil {
		ctx.SecureState = model.NewSecureState()
	}

	result := &model.TreeResult{
		SessionProperties: make(map[string]string, len(state.SessionProperties)),
		SessionHooks:      append([]model.SessionHook(nil), state.SessionHooks...),
		MaxSessionTime:    state.MaxSessionTime,
		MaxIdleTime:       state.MaxIdleTime,
	}
	for key, value := range state.SessionProperties {
		result.SessionProperties[key] = value
	}
	webhooks := append([]string(nil), state.Webhooks...)

	for {
		entry, ok := t.GetNode(currentNodeID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", constants.ErrNodeNotFound, currentNodeID)
		}
		nodeLogger := logger.With(log.String(log.LoggerKeyNodeID, entry.ID),
			log.String(log.LoggerKeyNodeType, entry.Type))

		action, err := te.processNode(entry, ctx)
		if err != nil {
			nodeLogger.Debug("Node processing failed", log.Error(err))
			return nil, err
		}
		nodeLogger.Debug("Node processed", log.String("result", audit.ResultOf(action)))

		ctx = ctx.Apply(action).WithCallbacks(nil).WithResumedFromSuspend(false)
		collectSideEffects(result, action)
		webhooks = appendUnique(webhooks, action.Webhooks...)
		if action.MaxTreeDuration > 0 {
			maxTreeDuration = action.MaxTreeDuration
		}

		switch action.Type {
		case model.ActionTypeRequestInput:
			result.Status = model.TreeStatusNeedsInput
			result.Callbacks = action.Callbacks
		case model.ActionTypeSuspend:
			result.Status = model.TreeStatusSuspended
			result.Suspension = action.Suspension
		default:
			next, ok := t.NextNodeID(currentNodeID, action.Outcome)
			if !ok {
				return nil, &model.NodeProcessError{
					NodeID:          entry.ID,
					NodeDisplayName: entry.DisplayName,
					NodeType:        entry.Type,
					Err:             fmt.Errorf("%w: %s", constants.ErrNoConnection, action.Outcome),
				}
			}
			switch next {
			case constants.SuccessNodeID:
				result.Status = model.TreeStatusTrue
			case constants.FailureNodeID:
				result.Status = model.TreeStatusFalse
			default:
				currentNodeID = next
				continue
			}
			currentNodeID = ""
		}

		result.State = &model.TreeExecutionState{
			CurrentNodeID:   currentNodeID,
			SharedState:     ctx.SharedState,
			TransientState:  ctx.TransientState,
			SecureState:     ctx.SecureState,
			Webhooks:        webhooks,
			MaxTreeDuration: maxTreeDuration,

			SessionProperties: result.SessionProperties,
			SessionHooks:      result.SessionHooks,
			MaxSessionTime:    result.MaxSessionTime,
			MaxIdleTime:       result.MaxIdleTime,
		}
		if !result.IsComplete() {
			result.Header = action.Header
			result.Description = action.Description
			result.Stage = action.Stage
		}
		logger.Debug("Tree evaluation paused or completed", log.String("status", string(result.Status)))
		return result, nil
	}
}

// processNode creates and processes a node. Failures are reported as node processing errors
// keeping the innermost failing node.
func (te *TreeEvaluator) processNode(entry *tree.NodeEntry, ctx *model.FlowContext) (*model.Action, error) {
	start := time.Now()

	n, err := te.factory.CreateNode(entry.Type, entry.Version, entry.ID, ctx.Realm, ctx.TreeName)
	if err != nil {
		return nil, wrapNodeError(entry, err)
	}

	action, err := n.Process(ctx)
	if err == nil && action == nil {
		err = fmt.Errorf("%w: no action", constants.ErrInvalidNodeAction)
	}
	if err == nil {
		if validationErr := action.Validate(); validationErr != nil {
			err = fmt.Errorf("%w: %w", constants.ErrInvalidNodeAction, validationErr)
		}
	}
	if err != nil {
		te.metrics.ObserveNode(entry.Type, audit.ResultError, time.Since(start))
		return nil, wrapNodeError(entry, err)
	}

	result := audit.ResultOf(action)
	te.metrics.ObserveNode(entry.Type, result, time.Since(start))
	if te.audit != nil {
		te.audit.LogNodeResult(audit.Record{
			Realm:       ctx.Realm,
			Tree:        ctx.TreeName,
			NodeID:      entry.ID,
			NodeType:    entry.Type,
			Result:      result,
			SharedState: orEmpty(action.SharedState, ctx.SharedState),
			Detail:      mergeDetail(action.AuditDetail, node.GetAuditDetail(n)),
		})
	}
	return action, nil
}

func wrapNodeError(entry *tree.NodeEntry, err error) error {
	var nodeErr *model.NodeProcessError
	if errors.As(err, &nodeErr) {
		return err
	}
	return &model.NodeProcessError{
		NodeID:          entry.ID,
		NodeDisplayName: entry.DisplayName,
		NodeType:        entry.Type,
		Err:             err,
	}
}

func collectSideEffects(result *model.TreeResult, action *model.Action) {
	for key, value := range action.SessionProperties {
		result.SessionProperties[key] = value
	}
	for _, hook := range action.SessionHooks {
		if !slices.ContainsFunc(result.SessionHooks, func(existing model.SessionHook) bool {
			return sameHook(existing, hook)
		}) {
			result.SessionHooks = append(result.SessionHooks, hook)
		}
	}
	if action.MaxSessionTime > 0 {
		result.MaxSessionTime = action.MaxSessionTime
	}
	if action.MaxIdleTime > 0 {
		result.MaxIdleTime = action.MaxIdleTime
	}
}

// sameHook reports whether two hooks carry the same payload. A node re-invoked after asking for
// input contributes its hooks again.
func sameHook(a, b model.SessionHook) bool {
	return a.NodeID == b.NodeID && a.NodeType == b.NodeType && a.HookClass == b.HookClass &&
		reflect.DeepEqual(a.Config, b.Config)
}

func mergeDetail(details ...map[string]interface{}) map[string]interface{} {
	var merged map[string]interface{}
	for _, detail := range details {
		for key, value := range detail {
			if merged == nil {
				merged = make(map[string]interface{})
			}
			merged[key] = value
		}
	}
	return merged
}

func appendUnique(values []string, additions ...string) []string {
	for _, addition := range additions {
		found := false
		for _, value := range values {
			if value == addition {
				found = true
				break
			}
		}
		if !found {
			values = append(values, addition)
		}
	}
	return values
}

// orEmpty returns the first non-nil state, or an empty one.
func orEmpty(states ...*model.State) *model.State {
	for _, s := range states {
		if s != nil {
			return s
		}
	}
	return model.NewState()
}
