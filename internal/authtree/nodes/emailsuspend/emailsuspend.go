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

// Package emailsuspend provides the node suspending a flow until the user follows an emailed link.
package emailsuspend

import (
	"fmt"
	"strings"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/system/log"
)

const (
	defaultMessage = "An email has been sent to %s. Follow the link in the email to continue."
	configSchema   = `{
		"type": "object",
		"properties": {
			"emailAttribute": {"type": "string", "minLength": 1},
			"message": {"type": "string"},
			"duration": {"type": "integer", "minimum": 1}
		}
	}`
)

// Config is the configuration of the email suspend node.
type Config struct {
	EmailAttribute string `mapstructure:"emailAttribute"`
	Message        string `mapstructure:"message"`
	// Duration is the number of minutes the flow waits for the link to be followed.
	Duration int `mapstructure:"duration"`
}

// NewNodeType returns the email suspend node type.
func NewNodeType() node.NodeType {
	return node.NodeType{
		Name:         constants.NodeTypeEmailSuspend,
		Version:      constants.DefaultNodeVersion,
		Outcomes:     []string{constants.OutcomeResumed},
		ConfigSchema: configSchema,
		New: func(instance node.Instance) (node.NodeInterface, error) {
			cfg := Config{
				EmailAttribute: constants.EmailAddressKey,
				Message:        defaultMessage,
				Duration:       constants.DefaultSuspendDurationMinutes,
			}
			if err := node.DecodeConfig(instance.Config, &cfg); err != nil {
				return nil, err
			}
			return &emailSuspendNode{
				config: cfg,
				logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EmailSuspendNode"),
					log.String(log.LoggerKeyNodeID, instance.ID)),
			}, nil
		},
	}
}

type emailSuspendNode struct {
	config Config
	logger *log.Logger
}

// Process suspends the flow. The flow continues along the single outcome once it is resumed.
func (n *emailSuspendNode) Process(ctx *model.FlowContext) (*model.Action, error) {
	if ctx.ResumedFromSuspend {
		return model.NewOutcomeAction(constants.OutcomeResumed), nil
	}

	address := ctx.SharedState.GetString(n.config.EmailAttribute)
	if address == "" {
		return nil, fmt.Errorf("no email address found in shared state under %s", n.config.EmailAttribute)
	}

	message := n.config.Message
	logger := n.logger
	return model.NewSuspendAction(model.Suspension{
		Duration: time.Duration(n.config.Duration) * time.Minute,
		Handler: func(resumeURI string) ([]model.Callback, error) {
			logger.Info("Sending resume link", log.String("email", log.MaskString(address)))
			logger.Debug("Resume link issued", log.String("resumeUri", resumeURI))
			prompt := message
			if strings.Contains(prompt, "%s") {
				prompt = fmt.Sprintf(prompt, log.MaskString(address))
			}
			return []model.Callback{{Type: model.SuspendedTextOutputCallback, Prompt: prompt}}, nil
		},
	}), nil
}

func (n *emailSuspendNode) GetInputs() []model.InputState {
	return []model.InputState{{Name: n.config.EmailAttribute, Required: true}}
}
