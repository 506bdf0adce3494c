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

package node

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/system/log"
	"github.com/asgardeo/authtree/internal/system/utils"
)

// Registry holds the registered node types and implements FactoryInterface.
type Registry struct {
	mu      sync.RWMutex
	types   map[string]map[string]*NodeType
	schemas map[string]*jsonschema.Schema
	store   ConfigStoreInterface
	logger  *log.Logger
}

// NewRegistry creates a Registry resolving node definitions from the given store.
func NewRegistry(store ConfigStoreInterface) *Registry {
	return &Registry{
		types:   make(map[string]map[string]*NodeType),
		schemas: make(map[string]*jsonschema.Schema),
		store:   store,
		logger:  log.GetLogger().With(log.String(log.LoggerKeyComponentName, "NodeRegistry")),
	}
}

// Register adds a node type. Registering the same name and version twice fails.
func (r *Registry) Register(nodeType NodeType) error {
	if nodeType.Name == "" || nodeType.New == nil {
		return fmt.Errorf("node type must have a name and a constructor")
	}
	if nodeType.Version == "" {
		nodeType.Version = constants.DefaultNodeVersion
	}

	var schema *jsonschema.Schema
	if nodeType.ConfigSchema != "" {
		compiled, err := compileSchema(nodeType.Name, nodeType.Version, nodeType.ConfigSchema)
		if err != nil {
			return err
		}
		schema = compiled
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	versions, ok := r.types[nodeType.Name]
	if !ok {
		versions = make(map[string]*NodeType)
		r.types[nodeType.Name] = versions
	}
	if _, exists := versions[nodeType.Version]; exists {
		return fmt.Errorf("node type %s version %s is already registered", nodeType.Name, nodeType.Version)
	}
	versions[nodeType.Version] = &nodeType
	if schema != nil {
		r.schemas[schemaKey(nodeType.Name, nodeType.Version)] = schema
	}

	r.logger.Debug("Registered node type", log.String(log.LoggerKeyNodeType, nodeType.Name),
		log.String("version", nodeType.Version))
	return nil
}

// GetNodeType returns the node type of the given name and version. The latest registered version
// is returned when the version is empty.
func (r *Registry) GetNodeType(nodeType, version string) (*NodeType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions, ok := r.types[nodeType]
	if !ok || len(versions) == 0 {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownNodeType, nodeType)
	}
	if version == "" {
		return latestVersion(versions), nil
	}
	t, ok := versions[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s version %s", constants.ErrUnknownNodeType, nodeType, version)
	}
	return t, nil
}

// CreateNode creates the node instance stored under the given id in the tree.
func (r *Registry) CreateNode(nodeType, version, nodeID, realm, tree string) (NodeInterface, error) {
	if r.store == nil {
		return nil, fmt.Errorf("no node configuration store available")
	}
	definition, err := r.store.GetNodeDefinition(realm, tree, nodeID)
	if err != nil {
		return nil, err
	}
	if nodeType != "" && definition.Type != nodeType {
		return nil, fmt.Errorf("%w: node %s is of type %s, not %s", constants.ErrInvalidNodeConfig,
			nodeID, definition.Type, nodeType)
	}
	if version == "" {
		version = definition.Version
	}

	t, err := r.GetNodeType(definition.Type, version)
	if err != nil {
		return nil, err
	}
	return r.instantiate(t, Instance{Definition: *definition, Realm: realm, Tree: tree})
}

// CreateDynamicNode creates a node from a configuration computed at run time. A random id is
// assigned when nodeID is empty. When persistConfig is set, the definition is stored so that
// CreateNode can resolve it later.
func (r *Registry) CreateDynamicNode(nodeType, version string, config map[string]interface{}, realm, tree string,
	persistConfig bool, nodeID string) (NodeInterface, error) {
	t, err := r.GetNodeType(nodeType, version)
	if err != nil {
		return nil, err
	}
	if nodeID == "" {
		nodeID = utils.GenerateUUID()
	}

	definition := Definition{
		ID:          nodeID,
		Type:        t.Name,
		Version:     t.Version,
		DisplayName: t.Name,
		Config:      config,
	}
	n, err := r.instantiate(t, Instance{Definition: definition, Realm: realm, Tree: tree})
	if err != nil {
		return nil, err
	}

	if persistConfig {
		if r.store == nil {
			return nil, fmt.Errorf("no node configuration store available")
		}
		if err := r.store.PersistNodeDefinition(realm, definition); err != nil {
			return nil, fmt.Errorf("failed to persist dynamic node configuration: %w", err)
		}
	}
	return n, nil
}

// ValidateDefinition checks the configuration of a node definition of the given tree against
// its type.
func (r *Registry) ValidateDefinition(realm, tree string, definition Definition) error {
	t, err := r.GetNodeType(definition.Type, definition.Version)
	if err != nil {
		return err
	}
	return r.validateConfig(t, definition.Config, r.inScope(realm, tree))
}

// GetOutcomes returns the outcomes of a node definition of the given tree.
func (r *Registry) GetOutcomes(realm, tree string, definition Definition) ([]string, error) {
	t, err := r.GetNodeType(definition.Type, definition.Version)
	if err != nil {
		return nil, err
	}
	return t.GetOutcomes(definition.Config, r.inScope(realm, tree))
}

func (r *Registry) instantiate(t *NodeType, instance Instance) (NodeInterface, error) {
	if err := r.validateConfig(t, instance.Config, r.inScope(instance.Realm, instance.Tree)); err != nil {
		return nil, err
	}
	if instance.Version == "" {
		instance.Version = t.Version
	}
	n, err := t.New(instance)
	if err != nil {
		return nil, fmt.Errorf("failed to create node %s of type %s: %w", instance.ID, t.Name, err)
	}
	return n, nil
}

func (r *Registry) validateConfig(t *NodeType, config map[string]interface{},
	resolver DefinitionResolverInterface) error {
	r.mu.RLock()
	schema := r.schemas[schemaKey(t.Name, t.Version)]
	r.mu.RUnlock()

	if schema != nil {
		doc, err := toJSONValue(config)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", constants.ErrInvalidNodeConfig, t.Name, err)
		}
		if err := schema.Validate(doc); err != nil {
			return fmt.Errorf("%w: %s: %w", constants.ErrInvalidNodeConfig, t.Name, err)
		}
	}
	if t.Validate != nil {
		if err := t.Validate(config, resolver); err != nil {
			return fmt.Errorf("%w: %s: %w", constants.ErrInvalidNodeConfig, t.Name, err)
		}
	}
	return nil
}

// treeScope resolves node types and the definitions of the nodes of one tree.
type treeScope struct {
	*Registry
	realm string
	tree  string
}

func (r *Registry) inScope(realm, tree string) *treeScope {
	return &treeScope{Registry: r, realm: realm, tree: tree}
}

// GetNodeDefinition returns the stored definition of a node of the tree.
func (s *treeScope) GetNodeDefinition(nodeID string) (*Definition, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no node configuration store available")
	}
	return s.store.GetNodeDefinition(s.realm, s.tree, nodeID)
}

func compileSchema(name, version, schema string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration schema of %s: %w", name, err)
	}
	url := fmt.Sprintf("authtree://node-types/%s/%s.json", name, version)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("invalid configuration schema of %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration schema of %s: %w", name, err)
	}
	return compiled, nil
}

// toJSONValue converts a value into the representation the schema validator expects.
func toJSONValue(v interface{}) (interface{}, error) {
	if v == nil {
		v = map[string]interface{}{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

func schemaKey(name, version string) string {
	return name + "@" + version
}

func latestVersion(versions map[string]*NodeType) *NodeType {
	var latest *NodeType
	for _, t := range versions {
		if latest == nil || compareVersions(t.Version, latest.Version) > 0 {
			latest = t
		}
	}
	return latest
}

// compareVersions compares dotted numeric versions. Non numeric segments compare as strings.
func compareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		xi, xErr := strconv.Atoi(x)
		yi, yErr := strconv.Atoi(y)
		switch {
		case xErr == nil && yErr == nil && xi != yi:
			if xi > yi {
				return 1
			}
			return -1
		case (xErr != nil || yErr != nil) && x != y:
			return strings.Compare(x, y)
		}
	}
	return 0
}
