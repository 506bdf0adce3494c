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

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"

	"github.com/asgardeo/authtree/internal/authtree/constants"
)

var celMapBindings = []string{
	constants.ScriptBindingSharedState,
	constants.ScriptBindingTransientState,
	constants.ScriptBindingRequestHeaders,
	constants.ScriptBindingRequestParameters,
}

// celEngine evaluates CEL expressions. Compiled programs are cached per source.
type celEngine struct {
	env   *cel.Env
	mu    sync.RWMutex
	cache map[string]cel.Program
}

func newCELEngine() (*celEngine, error) {
	mapType := cel.MapType(cel.StringType, cel.DynType)
	options := []cel.EnvOption{cel.Variable(constants.ScriptBindingRealm, cel.StringType)}
	for _, name := range celMapBindings {
		options = append(options, cel.Variable(name, mapType))
	}
	env, err := cel.NewEnv(options...)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &celEngine{env: env, cache: make(map[string]cel.Program)}, nil
}

func (e *celEngine) evaluate(source string, env map[string]interface{}) (interface{}, error) {
	if source == "" {
		return nil, errors.New("empty CEL script")
	}
	prg, err := e.getOrCompile(source)
	if err != nil {
		return nil, err
	}

	activation := map[string]interface{}{constants.ScriptBindingRealm: env[constants.ScriptBindingRealm]}
	for _, name := range celMapBindings {
		if v, ok := env[name].(map[string]interface{}); ok {
			activation[name] = v
		} else {
			activation[name] = map[string]interface{}{}
		}
	}
	if activation[constants.ScriptBindingRealm] == nil {
		activation[constants.ScriptBindingRealm] = ""
	}

	out, _, err := prg.Eval(activation)
	if err != nil {
		return nil, fmt.Errorf("CEL evaluation failed: %w", err)
	}
	return celToNative(out), nil
}

func (e *celEngine) getOrCompile(source string) (cel.Program, error) {
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
	ast, issues := e.env.Compile(source)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}
	e.cache[source] = prg
	return prg, nil
}

// celToNative converts CEL maps and lists into plain Go maps and slices.
func celToNative(v ref.Val) interface{} {
	switch val := v.(type) {
	case traits.Mapper:
		out := map[string]interface{}{}
		it := val.Iterator()
		for it.HasNext() == types.True {
			key := it.Next()
			out[fmt.Sprint(key.Value())] = celToNative(val.Get(key))
		}
		return out
	case traits.Lister:
		size, _ := val.Size().(types.Int)
		out := make([]interface{}, 0, int(size))
		for i := types.Int(0); i < size; i++ {
			out = append(out, celToNative(val.Get(i)))
		}
		return out
	default:
		return v.Value()
	}
}
