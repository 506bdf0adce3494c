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

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/model"
)

// ErrFlowSnapshotNotFound is returned when no snapshot exists for a flow id.
var ErrFlowSnapshotNotFound = errors.New("flow snapshot not found")

// FlowSnapshot is the persisted position of a flow waiting for input or for a resume link.
type FlowSnapshot struct {
	FlowID       string
	Realm        string
	TreeName     string
	State        *model.TreeExecutionState
	SuspensionID string
	ExpiresAt    time.Time
}

// IsSuspended reports whether the flow waits to be resumed through a resume link.
func (s *FlowSnapshot) IsSuspended() bool {
	return s.SuspensionID != ""
}

// IsExpired reports whether the snapshot outlived its flow at the given time.
func (s *FlowSnapshot) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// FlowSnapshotDB is the database row of a flow snapshot.
type FlowSnapshotDB struct {
	FlowID         string
	Realm          string
	TreeName       string
	CurrentNodeID  *string
	ExecutionState string
	SecureState    *string
	SuspensionID   *string
	ExpiresAt      int64
}

// encryptor is the part of the crypto service used to protect secure state.
type encryptor interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(envelope string) ([]byte, error)
}

// fromFlowSnapshot converts a snapshot to its database row, encrypting the secure state.
func fromFlowSnapshot(snapshot *FlowSnapshot, crypto encryptor) (*FlowSnapshotDB, error) {
	state := snapshot.State
	if state == nil {
		state = model.NewTreeExecutionState(nil, nil, nil)
	}

	executionState, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution state: %w", err)
	}

	dbModel := &FlowSnapshotDB{
		FlowID:         snapshot.FlowID,
		Realm:          snapshot.Realm,
		TreeName:       snapshot.TreeName,
		CurrentNodeID:  optionalString(state.CurrentNodeID),
		ExecutionState: string(executionState),
		SuspensionID:   optionalString(snapshot.SuspensionID),
		ExpiresAt:      snapshot.ExpiresAt.UnixMilli(),
	}

	if state.SecureState != nil && state.SecureState.Len() > 0 {
		secure, err := json.Marshal(state.SecureState)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal secure state: %w", err)
		}
		envelope, err := crypto.Encrypt(secure)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt secure state: %w", err)
		}
		dbModel.SecureState = &envelope
	}
	return dbModel, nil
}

// toFlowSnapshot converts a database row to a snapshot, decrypting the secure state.
func (d *FlowSnapshotDB) toFlowSnapshot(crypto encryptor) (*FlowSnapshot, error) {
	state := &model.TreeExecutionState{}
	if err := json.Unmarshal([]byte(d.ExecutionState), state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal execution state: %w", err)
	}
	if state.SharedState == nil {
		state.SharedState = model.NewState()
	}
	state.TransientState = model.NewState()
	state.SecureState = model.NewSecureState()

	if d.SecureState != nil && *d.SecureState != "" {
		secure, err := crypto.Decrypt(*d.SecureState)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt secure state: %w", err)
		}
		if err := json.Unmarshal(secure, state.SecureState); err != nil {
			return nil, fmt.Errorf("failed to unmarshal secure state: %w", err)
		}
	}

	snapshot := &FlowSnapshot{
		FlowID:   d.FlowID,
		Realm:    d.Realm,
		TreeName: d.TreeName,
		State:    state,
	}
	if d.SuspensionID != nil {
		snapshot.SuspensionID = *d.SuspensionID
	}
	if d.ExpiresAt > 0 {
		snapshot.ExpiresAt = time.UnixMilli(d.ExpiresAt)
	}
	return snapshot, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
