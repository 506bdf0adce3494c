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

	"github.com/itchyny/gojq"
)

// jqEngine evaluates jq programs against the bindings object. Compiled code is cached per source.
type jqEngine struct {
	mu    sync.RWMutex
	cache map[string]*gojq.Code
}

func newJQEngine() *jqEngine {
	return &jqEngine{cache: make(map[string]*gojq.Code)}
}

// evaluate returns the first value the program emits.
func (e *jqEngine) evaluate(source string, env map[string]interface{}) (interface{}, error) {
	if source == "" {
		return nil, errors.New("empty jq script")
	}
	code, err := e.getOrCompile(source)
	if err != nil {
		return nil, err
	}

	iter := code.Run(env)
	value, ok := iter.Next()
	if !ok {
		return nil, nil
	}
	if err, isErr := value.(error); isErr {
		return nil, fmt.Errorf("jq evaluation failed: %w", err)
	}
	return value, nil
}

func (e *jqEngine) getOrCompile(source string) (*gojq.Code, error) {
	e.mu.RLock()
	if code, ok := e.cache[source]; ok {
		e.mu.RUnlock()
		return code, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if code, ok := e.cache[source]; ok {
		return code, nil
	}
	query, err := gojq.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("jq parse error: %w", err)
	}
	code, err := gojq.Compile(query, gojq.WithEnvironLoader(func() []string { return nil }))
	if err != nil {
		return nil, fmt.Errorf("jq compile error: %w", err)
	}
	e.cache[source] = code
	return code, nil
}
