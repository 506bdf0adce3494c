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

// Package collector provides the nodes collecting the username and the password of the user.
package collector

import (
	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
)

const (
	usernamePrompt = "User Name"
	passwordPrompt = "Password"
)

// NewUsernameCollectorNodeType returns the node type collecting the username into shared state.
func NewUsernameCollectorNodeType() node.NodeType {
	return node.NodeType{
		Name:     constants.NodeTypeUsernameCollector,
		Version:  constants.DefaultNodeVersion,
		Outcomes: []string{constants.OutcomeSuccess},
		New: func(instance node.Instance) (node.NodeInterface, error) {
			return &usernameCollector{}, nil
		},
	}
}

// NewPasswordCollectorNodeType returns the node type collecting the password into transient state.
func NewPasswordCollectorNodeType() node.NodeType {
	return node.NodeType{
		Name:     constants.NodeTypePasswordCollector,
		Version:  constants.DefaultNodeVersion,
		Outcomes: []string{constants.OutcomeSuccess},
		New: func(instance node.Instance) (node.NodeInterface, error) {
			return &passwordCollector{}, nil
		},
	}
}

type usernameCollector struct{}

func (n *usernameCollector) Process(ctx *model.FlowContext) (*model.Action, error) {
	if cb, ok := model.FindCallback(ctx.Callbacks, model.NameCallback); ok && cb.StringValue() != "" {
		action := model.NewOutcomeAction(constants.OutcomeSuccess)
		action.SharedState = ctx.SharedState.With(constants.UsernameKey, cb.StringValue())
		return action, nil
	}
	return model.NewRequestInputAction(model.Callback{
		Type:   model.NameCallback,
		Name:   constants.UsernameKey,
		Prompt: usernamePrompt,
	}), nil
}

func (n *usernameCollector) GetOutputs() []model.OutputState {
	return []model.OutputState{{Name: constants.UsernameKey}}
}

type passwordCollector struct{}

func (n *passwordCollector) Process(ctx *model.FlowContext) (*model.Action, error) {
	if cb, ok := model.FindCallback(ctx.Callbacks, model.PasswordCallback); ok && cb.StringValue() != "" {
		action := model.NewOutcomeAction(constants.OutcomeSuccess)
		action.TransientState = ctx.TransientState.With(constants.PasswordKey, cb.StringValue())
		return action, nil
	}
	return model.NewRequestInputAction(model.Callback{
		Type:   model.PasswordCallback,
		Name:   constants.PasswordKey,
		Prompt: passwordPrompt,
	}), nil
}

func (n *passwordCollector) GetOutputs() []model.OutputState {
	return []model.OutputState{{Name: constants.PasswordKey}}
}
