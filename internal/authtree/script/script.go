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

// Package script evaluates the configuration scripts of dynamically configured nodes.
package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/system/log"
)

// Supported script languages.
const (
	LanguageExpr = "expr"
	LanguageCEL  = "cel"
	LanguageJQ   = "jq"
)

// Script is a configuration script and the language it is written in.
type Script struct {
	Language string `json:"language" mapstructure:"language"`
	Source   string `json:"source" mapstructure:"source"`
}

// EvaluatorInterface evaluates a script against its bindings. The returned bindings carry the
// value the script produced under the "config" binding.
type EvaluatorInterface interface {
	Evaluate(script Script, bindings map[string]interface{}, realm string) (map[string]interface{}, error)
}

// engine evaluates a single expression against a JSON-like environment.
type engine interface {
	evaluate(source string, env map[string]interface{}) (interface{}, error)
}

// Evaluator dispatches scripts to the engine of their language.
type Evaluator struct {
	engines map[string]engine
	logger  *log.Logger
}

// NewEvaluator creates an Evaluator supporting the expr, cel and jq languages.
func NewEvaluator() (*Evaluator, error) {
	celEngine, err := newCELEngine()
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		engines: map[string]engine{
			LanguageExpr: newExprEngine(),
			LanguageCEL:  celEngine,
			LanguageJQ:   newJQEngine(),
		},
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ScriptEvaluator")),
	}, nil
}

// Evaluate runs the script with the given bindings and the realm binding.
func (e *Evaluator) Evaluate(script Script, bindings map[string]interface{},
	realm string) (map[string]interface{}, error) {
	language := strings.ToLower(script.Language)
	if language == "" {
		language = LanguageExpr
	}
	eng, ok := e.engines[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedScript, script.Language)
	}

	env, err := normalize(bindings)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare script bindings: %w", err)
	}
	env[constants.ScriptBindingRealm] = realm

	e.logger.Debug("Evaluating configuration script", log.String("language", language),
		log.String(log.LoggerKeyRealm, realm))
	value, err := eng.evaluate(script.Source, env)
	if err != nil {
		return nil, err
	}

	env[constants.ScriptBindingConfig] = value
	return env, nil
}

// normalize converts the bindings into plain JSON values understood by every engine.
func normalize(bindings map[string]interface{}) (map[string]interface{}, error) {
	env := map[string]interface{}{}
	if len(bindings) == 0 {
		return env, nil
	}
	data, err := json.Marshal(bindings)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env, nil
}
