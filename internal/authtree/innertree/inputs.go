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

package innertree

import (
	"maps"
	"slices"

	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/authtree/tree"
)

// CollectInputs walks every node reachable from the entry of a tree once and merges the inputs
// they declare. An input declared required by any node is required.
func CollectInputs(trees tree.ProviderInterface, factory node.FactoryInterface,
	realm, treeName string) ([]model.InputState, error) {
	t, err := trees.GetTree(realm, treeName)
	if err != nil {
		return nil, err
	}

	var inputs []model.InputState
	index := make(map[string]int)
	visited := map[string]bool{t.EntryNodeID: true}
	queue := []string{t.EntryNodeID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		entry, ok := t.GetNode(id)
		if !ok {
			continue
		}
		n, err := factory.CreateNode(entry.Type, entry.Version, entry.ID, realm, treeName)
		if err != nil {
			return nil, err
		}
		for _, input := range node.GetInputs(n) {
			if i, seen := index[input.Name]; seen {
				inputs[i].Required = inputs[i].Required || input.Required
				continue
			}
			index[input.Name] = len(inputs)
			inputs = append(inputs, input)
		}

		for _, outcome := range slices.Sorted(maps.Keys(entry.Connections)) {
			next := entry.Connections[outcome]
			if tree.IsTerminal(next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return inputs, nil
}
