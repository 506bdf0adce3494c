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
	"errors"
	"fmt"
	"slices"

	"github.com/asgardeo/authtree/internal/authtree/audit"
	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/system/log"
)

// pageNode evaluates its children as one step, aggregating their prompts and routing the
// answers back to the child that asked for them.
type pageNode struct {
	instance node.Instance
	config   *Config
	types    []*node.NodeType
	factory  node.FactoryInterface
	audit    audit.LoggerInterface
	logger   *log.Logger
}

func newPageNode(instance node.Instance, factory node.FactoryInterface,
	auditLogger audit.LoggerInterface) (*pageNode, error) {
	cfg, types, err := decodePage(instance.Config, factory)
	if err != nil {
		return nil, err
	}
	return &pageNode{
		instance: instance,
		config:   cfg,
		types:    types,
		factory:  factory,
		audit:    auditLogger,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PageNode"),
			log.String(log.LoggerKeyNodeID, instance.ID)),
	}, nil
}

// pagePass accumulates the results of the children invoked during one evaluation of the page.
type pagePass struct {
	ctx      *model.FlowContext
	prompts  []ownedCallback
	blocking bool
	last     *model.Action
	effects  *model.Action
}

// Process evaluates the children of the page. On the first entry every child is invoked in order.
// When the page waits for input, the evaluation restarts from the first child that asked for input
// and each child receives only the answers to its own prompts.
func (p *pageNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	owners := readCallbackMap(ctx.SharedState)
	answers := p.routeAnswers(ctx.Callbacks, owners)

	pass := &pagePass{
		ctx:     ctx.WithCallbacks(nil).WithResumedFromSuspend(false),
		effects: &model.Action{SessionProperties: map[string]string{}},
	}
	last := len(p.config.Nodes) - 1

	if p.types[last].SupportsLeadSelection {
		if err := p.invoke(pass, last, answers[last]); err != nil {
			return nil, err
		}
		selected := pass.last
		if last == 0 || (selected.IsOutcome() && selected.Outcome != constants.OutcomeLocalAuthentication) {
			p.logger.Debug("Lead node selected the page outcome", log.String("outcome", selected.Outcome))
			return p.complete(pass)
		}
		// The prompts of the lead node are shown only while the other children still need input.
		leadPrompts, leadBlocking := pass.prompts, pass.blocking
		pass.prompts, pass.blocking = nil, false
		start, _ := owners.lowestOwner(0, last)
		if err := p.runChildren(pass, start, last, answers); err != nil {
			return nil, err
		}
		if !pass.blocking && pass.last.IsOutcome() {
			p.logger.Debug("Page children reached an outcome", log.String("outcome", pass.last.Outcome))
			return p.complete(pass)
		}
		pass.prompts = append(pass.prompts, leadPrompts...)
		pass.blocking = pass.blocking || leadBlocking
		return p.complete(pass)
	}

	start, _ := owners.lowestOwner(0, last+1)
	if err := p.runChildren(pass, start, last+1, answers); err != nil {
		return nil, err
	}
	return p.complete(pass)
}

// GetInputs returns the inputs declared by the children of the page.
func (p *pageNode) GetInputs() []model.InputState {
	var inputs []model.InputState
	for _, child := range p.config.Nodes {
		n, err := p.factory.CreateNode(child.NodeType, child.Version, child.ID, p.instance.Realm, p.instance.Tree)
		if err != nil {
			p.logger.Debug("Could not create child node to collect its inputs", log.String("childId", child.ID),
				log.Error(err))
			continue
		}
		for _, input := range node.GetInputs(n) {
			i := slices.IndexFunc(inputs, func(existing model.InputState) bool { return existing.Name == input.Name })
			if i < 0 {
				inputs = append(inputs, input)
				continue
			}
			inputs[i].Required = inputs[i].Required || input.Required
		}
	}
	return inputs
}

// routeAnswers groups the submitted callbacks by the index of the child owning them. Callbacks
// without a known id are dropped.
func (p *pageNode) routeAnswers(callbacks []model.Callback, owners callbackMap) map[int][]model.Callback {
	answers := make(map[int][]model.Callback)
	for _, cb := range callbacks {
		if !cb.HasID() {
			p.logger.Warn("Ignoring a callback without an id", log.String("callbackType", string(cb.Type)))
			continue
		}
		owner, ok := owners[*cb.ID]
		if !ok {
			p.logger.Warn("Ignoring a callback with an unknown id", log.Int("callbackId", *cb.ID))
			continue
		}
		answers[owner] = append(answers[owner], cb.Unidentified())
	}
	return answers
}

func (p *pageNode) runChildren(pass *pagePass, from, to int, answers map[int][]model.Callback) error {
	for i := from; i < to; i++ {
		if err := p.invoke(pass, i, answers[i]); err != nil {
			return err
		}
	}
	return nil
}

// invoke processes the child at the given index with its answers and records its result.
func (p *pageNode) invoke(pass *pagePass, index int, answers []model.Callback) error {
	child := p.config.Nodes[index]
	childErr := func(err error) error {
		var nodeErr *model.NodeProcessError
		if errors.As(err, &nodeErr) {
			return err
		}
		return &model.NodeProcessError{
			NodeID:          child.ID,
			NodeDisplayName: child.DisplayName,
			NodeType:        child.NodeType,
			Err:             err,
		}
	}

	n, err := p.factory.CreateNode(child.NodeType, child.Version, child.ID, p.instance.Realm, p.instance.Tree)
	if err != nil {
		return childErr(err)
	}
	action, err := n.Process(pass.ctx.WithCallbacks(answers))
	if err != nil {
		return childErr(err)
	}
	if action == nil {
		return childErr(fmt.Errorf("%w: no action", constants.ErrInvalidNodeAction))
	}
	if err := action.Validate(); err != nil {
		return childErr(fmt.Errorf("%w: %w", constants.ErrInvalidNodeAction, err))
	}
	if action.IsSuspend() {
		return childErr(constants.ErrChildSuspended)
	}

	pass.ctx = pass.ctx.Apply(action)
	p.logChild(child, action, pass.ctx.SharedState, n)
	mergeEffects(pass.effects, action)
	pass.last = action

	if action.IsRequestInput() {
		for _, cb := range action.Callbacks {
			pass.prompts = append(pass.prompts, ownedCallback{owner: index, callback: cb})
		}
		if model.HasBlockingCallback(action.Callbacks) {
			pass.blocking = true
		}
	}
	return nil
}

func (p *pageNode) logChild(child ChildConfig, action *model.Action, shared *model.State, n node.NodeInterface) {
	if p.audit == nil {
		return
	}
	detail := node.GetAuditDetail(n)
	if len(action.AuditDetail) > 0 {
		merged := make(map[string]interface{}, len(detail)+len(action.AuditDetail))
		for k, v := range detail {
			merged[k] = v
		}
		for k, v := range action.AuditDetail {
			merged[k] = v
		}
		detail = merged
	}
	p.audit.LogNodeResult(audit.Record{
		Realm:       p.instance.Realm,
		Tree:        p.instance.Tree,
		NodeID:      child.ID,
		NodeType:    child.NodeType,
		Result:      audit.ResultOf(action),
		SharedState: shared,
		Detail:      detail,
	})
}

// complete builds the action of the page from the results of the pass.
func (p *pageNode) complete(pass *pagePass) (*model.Action, error) {
	var action *model.Action
	shared := pass.ctx.SharedState

	switch {
	case pass.blocking:
		sortByOwner(pass.prompts)
		callbacks := make([]model.Callback, len(pass.prompts))
		owners := make(callbackMap, len(pass.prompts))
		for i, prompt := range pass.prompts {
			callbacks[i] = prompt.callback.Identify(i)
			owners[i] = prompt.owner
		}
		action = model.NewRequestInputAction(callbacks...)
		shared = shared.With(constants.PageNodeCallbacksKey, owners.toStateValue())

		locale := pass.ctx.Request.Locale
		action.Header = localize(p.config.PageHeader, locale)
		action.Description = localize(p.config.PageDescription, locale)
		action.Stage = p.config.Stage
	case pass.last != nil && pass.last.IsOutcome():
		action = model.NewOutcomeAction(pass.last.Outcome)
		shared = shared.Without(constants.PageNodeCallbacksKey)
	default:
		return nil, constants.ErrNoOutcomeOnlyMetadata
	}

	action.SharedState = shared
	action.TransientState = pass.ctx.TransientState
	action.SecureState = pass.ctx.SecureState
	action.SessionProperties = pass.effects.SessionProperties
	action.SessionHooks = pass.effects.SessionHooks
	action.Webhooks = pass.effects.Webhooks
	action.MaxTreeDuration = pass.effects.MaxTreeDuration
	action.MaxSessionTime = pass.effects.MaxSessionTime
	action.MaxIdleTime = pass.effects.MaxIdleTime
	return action, nil
}

// mergeEffects adds the side effects of a child action to the page side effects.
func mergeEffects(effects, action *model.Action) {
	for key, value := range action.SessionProperties {
		effects.SessionProperties[key] = value
	}
	effects.SessionHooks = append(effects.SessionHooks, action.SessionHooks...)
	for _, webhook := range action.Webhooks {
		if !slices.Contains(effects.Webhooks, webhook) {
			effects.Webhooks = append(effects.Webhooks, webhook)
		}
	}
	if action.MaxTreeDuration > 0 {
		effects.MaxTreeDuration = action.MaxTreeDuration
	}
	if action.MaxSessionTime > 0 {
		effects.MaxSessionTime = action.MaxSessionTime
	}
	if action.MaxIdleTime > 0 {
		effects.MaxIdleTime = action.MaxIdleTime
	}
}
