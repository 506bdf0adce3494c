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

package tree

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/node"
)

// DefinitionValidatorInterface validates node definitions against their types.
type DefinitionValidatorInterface interface {
	ValidateDefinition(realm, tree string, definition node.Definition) error
	GetOutcomes(realm, tree string, definition node.Definition) ([]string, error)
}

// Validate checks the structure of a tree and the configuration of each of its nodes. Every
// outcome of a node reachable from the entry node must be connected.
func Validate(t *Tree, validator DefinitionValidatorInterface) error {
	if _, ok := t.Nodes[t.EntryNodeID]; !ok {
		return fmt.Errorf("%w: %s: entry node %q not found", constants.ErrInvalidTree, t.Name, t.EntryNodeID)
	}

	var errs []error
	for id, entry := range t.Nodes {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, fmt.Errorf("node id %q is not a valid UUID", id))
		}
		if err := validator.ValidateDefinition(t.Realm, t.Name, entry.Definition); err != nil {
			errs = append(errs, fmt.Errorf("node %s: %w", id, err))
		}
		for outcome, target := range entry.Connections {
			if _, ok := t.Nodes[target]; !ok && !IsTerminal(target) {
				errs = append(errs, fmt.Errorf("node %s: outcome %s connects to unknown node %s", id, outcome, target))
			}
		}
	}

	visited := map[string]bool{}
	queue := []string{t.EntryNodeID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] || IsTerminal(id) {
			continue
		}
		visited[id] = true
		entry, ok := t.Nodes[id]
		if !ok {
			continue
		}
		outcomes, err := validator.GetOutcomes(t.Realm, t.Name, entry.Definition)
		if err != nil {
			continue
		}
		for _, outcome := range outcomes {
			target, ok := entry.Connections[outcome]
			if !ok {
				errs = append(errs, fmt.Errorf("node %s: outcome %s is not connected", id, outcome))
				continue
			}
			queue = append(queue, target)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", constants.ErrInvalidTree, t.Name, errors.Join(errs...))
	}
	return nil
}

// ValidateAll validates every tree of the provider.
func ValidateAll(p *Provider, validator DefinitionValidatorInterface) error {
	var errs []error
	for _, t := range p.GetTrees() {
		if err := Validate(t, validator); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
