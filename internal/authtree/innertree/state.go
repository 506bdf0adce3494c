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
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
)

// StateKey returns the state key holding the nested tree state of the given node.
func StateKey(nodeID string) string {
	return constants.InnerTreeStateKeyPrefix + nodeID
}

// IsResuming reports whether a nested tree stored under the key continues from where it paused:
// either the flow was resumed from a suspension, or the client answered prompts while the stored
// state names a valid active node.
func IsResuming(ctx *model.FlowContext, key string) bool {
	if ctx.ResumedFromSuspend {
		return true
	}
	if !ctx.HasCallbacks() {
		return false
	}
	marker, ok := activeNodeMarker(ctx.SharedState, key)
	if !ok {
		return false
	}
	_, err := uuid.Parse(marker)
	return err == nil
}

func activeNodeMarker(shared *model.State, key string) (string, bool) {
	serialized := shared.GetString(key)
	if serialized == "" {
		return "", false
	}
	var snapshot struct {
		CurrentNodeID string `json:"currentNodeId"`
	}
	if err := json.Unmarshal([]byte(serialized), &snapshot); err != nil {
		return "", false
	}
	return snapshot.CurrentNodeID, snapshot.CurrentNodeID != ""
}

// SerializeState returns the persisted form of a nested tree state. Transient and secure state
// are not part of it.
func SerializeState(state *model.TreeExecutionState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to serialize nested tree state: %w", err)
	}
	return string(data), nil
}

// RestoreState rebuilds a nested tree state from the outer shared and transient state. It reads
// its inputs only.
func RestoreState(shared, transient *model.State, key string) (*model.TreeExecutionState, error) {
	serialized := shared.GetString(key)
	if serialized == "" {
		return nil, fmt.Errorf("no nested tree state stored under %s", key)
	}

	var state model.TreeExecutionState
	if err := json.Unmarshal([]byte(serialized), &state); err != nil {
		return nil, fmt.Errorf("failed to restore nested tree state: %w", err)
	}
	if state.SharedState == nil {
		state.SharedState = model.NewState()
	}

	state.TransientState = model.NewState()
	if value, ok := transient.Get(key); ok {
		if values, ok := value.(map[string]interface{}); ok {
			state.TransientState = model.NewStateFromMap(values)
		}
	}
	return &state, nil
}
