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
	"fmt"
	"sync"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/node"
	"github.com/asgardeo/authtree/internal/system/config"
	"github.com/asgardeo/authtree/internal/system/log"
)

// ProviderInterface resolves trees by realm and name.
type ProviderInterface interface {
	GetTree(realm, name string) (*Tree, error)
}

// Provider keeps the trees of every realm in memory. It also serves as the node definition
// store, including the definitions of dynamically created nodes.
type Provider struct {
	mu                 sync.RWMutex
	trees              map[string]map[string]*Tree
	dynamicDefinitions map[string]map[string]node.Definition
	defaultMaxDuration time.Duration
	logger             *log.Logger
}

// NewProvider creates an empty Provider.
func NewProvider(defaultMaxDuration time.Duration) *Provider {
	return &Provider{
		trees:              make(map[string]map[string]*Tree),
		dynamicDefinitions: make(map[string]map[string]node.Definition),
		defaultMaxDuration: defaultMaxDuration,
		logger:             log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TreeProvider")),
	}
}

// LoadDefinitions adds the configured tree definitions.
func (p *Provider) LoadDefinitions(definitions []config.TreeDefinition) error {
	for _, def := range definitions {
		t, err := buildTree(def, p.defaultMaxDuration)
		if err != nil {
			return err
		}
		p.AddTree(t)
	}
	return nil
}

// AddTree adds or replaces a tree.
func (p *Provider) AddTree(t *Tree) {
	p.mu.Lock()
	defer p.mu.Unlock()

	realmTrees, ok := p.trees[t.Realm]
	if !ok {
		realmTrees = make(map[string]*Tree)
		p.trees[t.Realm] = realmTrees
	}
	realmTrees[t.Name] = t
	p.logger.Debug("Loaded authentication tree", log.String(log.LoggerKeyRealm, t.Realm),
		log.String(log.LoggerKeyTreeName, t.Name), log.Int("nodeCount", len(t.Nodes)))
}

// GetTree returns the tree of the given realm and name.
func (p *Provider) GetTree(realm, name string) (*Tree, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.trees[realm][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", constants.ErrTreeNotFound, realm, name)
	}
	return t, nil
}

// GetTrees returns every loaded tree.
func (p *Provider) GetTrees() []*Tree {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var trees []*Tree
	for _, realmTrees := range p.trees {
		for _, t := range realmTrees {
			trees = append(trees, t)
		}
	}
	return trees
}

// GetNodeDefinition returns the definition of a node of the tree, falling back to the dynamically
// persisted definitions of the realm.
func (p *Provider) GetNodeDefinition(realm, treeName, nodeID string) (*node.Definition, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if t, ok := p.trees[realm][treeName]; ok {
		if entry, ok := t.Nodes[nodeID]; ok {
			definition := entry.Definition
			return &definition, nil
		}
	}
	if definition, ok := p.dynamicDefinitions[realm][nodeID]; ok {
		return &definition, nil
	}
	return nil, fmt.Errorf("%w: %s in %s/%s", constants.ErrNodeNotFound, nodeID, realm, treeName)
}

// PersistNodeDefinition stores a dynamically created node definition for the realm.
func (p *Provider) PersistNodeDefinition(realm string, definition node.Definition) error {
	if definition.ID == "" {
		return fmt.Errorf("%w: node definition without an id", constants.ErrInvalidNodeConfig)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	realmDefinitions, ok := p.dynamicDefinitions[realm]
	if !ok {
		realmDefinitions = make(map[string]node.Definition)
		p.dynamicDefinitions[realm] = realmDefinitions
	}
	realmDefinitions[definition.ID] = definition
	return nil
}

func buildTree(def config.TreeDefinition, defaultMaxDuration time.Duration) (*Tree, error) {
	if def.Realm == "" || def.Name == "" {
		return nil, fmt.Errorf("%w: tree definition requires a realm and a name", constants.ErrInvalidTree)
	}

	maxDuration := defaultMaxDuration
	if def.MaxDuration > 0 {
		maxDuration = time.Duration(def.MaxDuration) * time.Minute
	}

	t := &Tree{
		Realm:       def.Realm,
		Name:        def.Name,
		EntryNodeID: def.EntryNodeID,
		MaxDuration: maxDuration,
		Nodes:       make(map[string]*NodeEntry, len(def.Nodes)),
	}
	for _, n := range def.Nodes {
		if _, exists := t.Nodes[n.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate node id %s in tree %s", constants.ErrInvalidTree, n.ID, def.Name)
		}
		version := n.Version
		if version == "" {
			version = constants.DefaultNodeVersion
		}
		displayName := n.DisplayName
		if displayName == "" {
			displayName = n.Type
		}
		t.Nodes[n.ID] = &NodeEntry{
			Definition: node.Definition{
				ID:          n.ID,
				Type:        n.Type,
				Version:     version,
				DisplayName: displayName,
				Config:      n.Config,
			},
			Connections: n.Connections,
		}
	}
	return t, nil
}
