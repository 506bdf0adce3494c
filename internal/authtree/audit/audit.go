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

// Package audit writes the audit trail of node invocations.
package audit

import (
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/system/log"
)

// Result names recorded for actions that carry no outcome.
const (
	ResultRequestInput = "REQUEST_INPUT"
	ResultSuspend      = "SUSPEND"
	ResultError        = "ERROR"
)

// Record is the audit record of one node invocation.
type Record struct {
	Realm       string
	Tree        string
	NodeID      string
	NodeType    string
	Result      string
	SharedState *model.State
	Detail      map[string]interface{}
}

// LoggerInterface records node invocations.
type LoggerInterface interface {
	LogNodeResult(record Record)
}

// Logger writes audit records as structured log entries.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates an audit Logger.
func NewLogger() *Logger {
	return &Logger{
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Audit")),
	}
}

// LogNodeResult writes the audit record of a node invocation. Only the shared state keys are
// recorded, never their values.
func (l *Logger) LogNodeResult(record Record) {
	fields := []log.Field{
		log.String(log.LoggerKeyRealm, record.Realm),
		log.String(log.LoggerKeyTreeName, record.Tree),
		log.String(log.LoggerKeyNodeID, record.NodeID),
		log.String(log.LoggerKeyNodeType, record.NodeType),
		log.String("result", record.Result),
		log.Any("sharedStateKeys", record.SharedState.Keys()),
	}
	if len(record.Detail) > 0 {
		fields = append(fields, log.Any("detail", record.Detail))
	}
	l.logger.Info("Node processed", fields...)
}

// ResultOf returns the audit result name of an action.
func ResultOf(action *model.Action) string {
	switch {
	case action == nil:
		return ResultError
	case action.IsOutcome():
		return action.Outcome
	case action.IsSuspend():
		return ResultSuspend
	default:
		return ResultRequestInput
	}
}
