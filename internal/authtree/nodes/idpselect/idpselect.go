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

// Package idpselect provides the node letting the user choose between local and social login.
package idpselect

import (
	"slices"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
)

const (
	choicePrompt = "Select an identity provider"
	configSchema = `{
		"type": "object",
		"properties": {
			"providers": {"type": "array", "items": {"type": "string", "minLength": 1}},
			"offerLocalAuthentication": {"type": "boolean"}
		}
	}`
)

// Config is the configuration of the identity provider selection node.
type Config struct {
	Providers                []string `mapstructure:"providers"`
	OfferLocalAuthentication *bool    `mapstructure:"offerLocalAuthentication"`
}

// NewNodeType returns the identity provider selection node type. On a page it is evaluated before
// the nodes preceding it.
func NewNodeType() node.NodeType {
	return node.NodeType{
		Name:                  constants.NodeTypeSelectIdP,
		Version:               constants.DefaultNodeVersion,
		Outcomes:              []string{constants.OutcomeSocialAuthentication, constants.OutcomeLocalAuthentication},
		SupportsLeadSelection: true,
		ConfigSchema:          configSchema,
		New: func(instance node.Instance) (node.NodeInterface, error) {
			var cfg Config
			if err := node.DecodeConfig(instance.Config, &cfg); err != nil {
				return nil, err
			}
			return &selectIdPNode{config: cfg}, nil
		},
	}
}

type selectIdPNode struct {
	config Config
}

// Process asks the user to pick a provider. Without any social provider the local path is taken
// directly.
func (n *selectIdPNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	offerLocal := n.config.OfferLocalAuthentication == nil || *n.config.OfferLocalAuthentication
	if len(n.config.Providers) == 0 && offerLocal {
		return model.NewOutcomeAction(constants.OutcomeLocalAuthentication), nil
	}

	if cb, ok := model.FindCallback(ctx.Callbacks, model.ChoiceCallback); ok {
		selected := cb.StringValue()
		switch {
		case selected == constants.OutcomeLocalAuthentication && offerLocal:
			return model.NewOutcomeAction(constants.OutcomeLocalAuthentication), nil
		case slices.Contains(n.config.Providers, selected):
			action := model.NewOutcomeAction(constants.OutcomeSocialAuthentication)
			action.SharedState = ctx.SharedState.With(constants.SelectedIdPKey, selected)
			return action, nil
		}
	}

	options := append([]string(nil), n.config.Providers...)
	var defaultValue interface{}
	if offerLocal {
		options = append(options, constants.OutcomeLocalAuthentication)
		defaultValue = constants.OutcomeLocalAuthentication
	}
	return model.NewRequestInputAction(model.Callback{
		Type:    model.ChoiceCallback,
		Name:    constants.SelectedIdPKey,
		Prompt:  choicePrompt,
		Options: options,
		Value:   defaultValue,
	}), nil
}

func (n *selectIdPNode) GetOutputs() []model.OutputState {
	return []model.OutputState{{Name: constants.SelectedIdPKey}}
}
