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
	"encoding/json"
	"sort"
	"strconv"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
)

// callbackMap maps the id of each prompt on the page to the index of the child that issued it.
type callbackMap map[int]int

// readCallbackMap reads the map persisted in shared state. A missing or malformed map reads as
// empty.
func readCallbackMap(state *model.State) callbackMap {
	result := callbackMap{}
	value, ok := state.Get(constants.PageNodeCallbacksKey)
	if !ok {
		return result
	}
	raw, ok := value.(map[string]interface{})
	if !ok {
		return result
	}
	for key, owner := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if index, ok := toInt(owner); ok {
			result[id] = index
		}
	}
	return result
}

// toStateValue returns the map in its shared state form.
func (m callbackMap) toStateValue() map[string]interface{} {
	value := make(map[string]interface{}, len(m))
	for id, owner := range m {
		value[strconv.Itoa(id)] = owner
	}
	return value
}

// lowestOwner returns the lowest child index within [from, to) present in the map.
func (m callbackMap) lowestOwner(from, to int) (int, bool) {
	lowest, found := 0, false
	for _, owner := range m {
		if owner < from || owner >= to {
			continue
		}
		if !found || owner < lowest {
			lowest, found = owner, true
		}
	}
	return lowest, found
}

// ownedCallback is an identified prompt and the index of the child that issued it.
type ownedCallback struct {
	owner    int
	callback model.Callback
}

// sortByOwner orders the prompts by child index, keeping the issue order of each child.
func sortByOwner(callbacks []ownedCallback) {
	sort.SliceStable(callbacks, func(i, j int) bool {
		return callbacks[i].owner < callbacks[j].owner
	})
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}
