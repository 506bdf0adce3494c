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

package script

import (
	"errors"
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprEngine evaluates expr-lang expressions. Compiled programs are cached per source.
type exprEngine struct {
	mu    sync.RWMutex
	cache map[string]*vm.Program
}

func newExprEngine() *exprEngine {
	return &exprEngine{cache: make(map[string]*vm.Program)}
}

func (e *exprEngine) evaluate(source string, env map[string]interface{}) (interface{}, error) {
	if source == "" {
		return nil, errors.New("empty expr script")
	}
	prg, err := e.getOrCompile(source, env)
	if err != nil {
		return nil, err
	}
	out, err := vm.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("expr evaluation failed: %w", err)
	}
	return out, nil
}

func (e *exprEngine) getOrCompile(source string, env map[string]interface{}) (*vm.Program, error) {
	e.mu.RLock()
	if prg, ok := e.cache[source]; ok {
		e.mu.RUnlock()
		return prg, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if prg, ok := e.cache[source]; ok {
		return prg, nil
	}
	prg, err := expr.Compile(source, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("expr compile error: %w", err)
	}
	e.cache[source] = prg
	return prg, nil
}
