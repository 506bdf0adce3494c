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

// Package store provides the persistence of flow snapshots between requests.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/authtree/internal/system/crypto"
	"github.com/asgardeo/authtree/internal/system/database/provider"
	"github.com/asgardeo/authtree/internal/system/log"
)

const loggerComponentName = "FlowSnapshotStore"

// FlowSnapshotStoreInterface defines the persistence operations of flow snapshots.
type FlowSnapshotStoreInterface interface {
	CreateSnapshot(snapshot *FlowSnapshot) error
	GetSnapshot(flowID string) (*FlowSnapshot, error)
	UpdateSnapshot(snapshot *FlowSnapshot) error
	DeleteSnapshot(flowID string) error
	DeleteExpired(before time.Time) (int64, error)
}

// FlowSnapshotStore is the SQL implementation of FlowSnapshotStoreInterface.
type FlowSnapshotStore struct {
	dbProvider provider.DBProviderInterface
	crypto     crypto.CryptoServiceInterface
	logger     *log.Logger
}

// NewFlowSnapshotStore creates a new instance of FlowSnapshotStore.
func NewFlowSnapshotStore(dbProvider provider.DBProviderInterface,
	cryptoService crypto.CryptoServiceInterface) *FlowSnapshotStore {
	return &FlowSnapshotStore{
		dbProvider: dbProvider,
		crypto:     cryptoService,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// CreateSnapshot stores a new flow snapshot.
func (s *FlowSnapshotStore) CreateSnapshot(snapshot *FlowSnapshot) error {
	logger := s.logger.With(log.String(log.LoggerKeyFlowID, snapshot.FlowID))

	dbModel, err := fromFlowSnapshot(snapshot, s.crypto)
	if err != nil {
		logger.Error("Failed to convert flow snapshot to database model", log.Error(err))
		return fmt.Errorf("failed to convert flow snapshot to database model: %w", err)
	}

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	logger.Debug("Storing flow snapshot",
		log.String(log.LoggerKeyRealm, dbModel.Realm),
		log.String(log.LoggerKeyTreeName, dbModel.TreeName),
		log.String("currentNodeID", getStringValue(dbModel.CurrentNodeID)),
		log.Bool("suspended", dbModel.SuspensionID != nil))

	_, err = dbClient.Execute(QueryCreateFlowSnapshot, dbModel.FlowID, dbModel.Realm, dbModel.TreeName,
		dbModel.CurrentNodeID, dbModel.ExecutionState, dbModel.SecureState, dbModel.SuspensionID,
		dbModel.ExpiresAt)
	if err != nil {
		logger.Error("Failed to create flow snapshot", log.Error(err))
		return fmt.Errorf("failed to create flow snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves the snapshot of a flow. ErrFlowSnapshotNotFound is returned when the
// flow has no snapshot.
func (s *FlowSnapshotStore) GetSnapshot(flowID string) (*FlowSnapshot, error) {
	logger := s.logger.With(log.String(log.LoggerKeyFlowID, flowID))

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetFlowSnapshot, flowID)
	if err != nil {
		logger.Error("Failed to get flow snapshot", log.Error(err))
		return nil, fmt.Errorf("failed to get flow snapshot: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrFlowSnapshotNotFound
	}

	dbModel, err := buildFlowSnapshotFromResultRow(results[0])
	if err != nil {
		logger.Error("Failed to build flow snapshot from result row", log.Error(err))
		return nil, fmt.Errorf("failed to build flow snapshot from result row: %w", err)
	}

	snapshot, err := dbModel.toFlowSnapshot(s.crypto)
	if err != nil {
		logger.Error("Failed to convert database model to flow snapshot", log.Error(err))
		return nil, fmt.Errorf("failed to convert database model to flow snapshot: %w", err)
	}
	return snapshot, nil
}

// UpdateSnapshot replaces the stored position, state and expiry of a flow.
func (s *FlowSnapshotStore) UpdateSnapshot(snapshot *FlowSnapshot) error {
	logger := s.logger.With(log.String(log.LoggerKeyFlowID, snapshot.FlowID))

	dbModel, err := fromFlowSnapshot(snapshot, s.crypto)
	if err != nil {
		logger.Error("Failed to convert flow snapshot to database model", log.Error(err))
		return fmt.Errorf("failed to convert flow snapshot to database model: %w", err)
	}

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rows, err := dbClient.Execute(QueryUpdateFlowSnapshot, dbModel.FlowID, dbModel.CurrentNodeID,
		dbModel.ExecutionState, dbModel.SecureState, dbModel.SuspensionID, dbModel.ExpiresAt)
	if err != nil {
		logger.Error("Failed to update flow snapshot", log.Error(err))
		return fmt.Errorf("failed to update flow snapshot: %w", err)
	}
	if rows == 0 {
		return ErrFlowSnapshotNotFound
	}
	return nil
}

// DeleteSnapshot removes the snapshot of a flow. Removing a missing snapshot is not an error.
func (s *FlowSnapshotStore) DeleteSnapshot(flowID string) error {
	logger := s.logger.With(log.String(log.LoggerKeyFlowID, flowID))

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(QueryDeleteFlowSnapshot, flowID); err != nil {
		logger.Error("Failed to delete flow snapshot", log.Error(err))
		return fmt.Errorf("failed to delete flow snapshot: %w", err)
	}
	return nil
}

// DeleteExpired removes the snapshots that expired before the given time and returns how many
// were removed.
func (s *FlowSnapshotStore) DeleteExpired(before time.Time) (int64, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		s.logger.Error("Failed to get database client", log.Error(err))
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	rows, err := dbClient.Execute(QueryDeleteExpiredFlowSnapshots, before.UnixMilli())
	if err != nil {
		s.logger.Error("Failed to delete expired flow snapshots", log.Error(err))
		return 0, fmt.Errorf("failed to delete expired flow snapshots: %w", err)
	}
	if rows > 0 {
		s.logger.Debug("Deleted expired flow snapshots", log.Int("count", int(rows)))
	}
	return rows, nil
}

// buildFlowSnapshotFromResultRow builds the database model of a snapshot from a result row.
func buildFlowSnapshotFromResultRow(row map[string]interface{}) (*FlowSnapshotDB, error) {
	flowID, ok := parseString(row["flow_id"])
	if !ok {
		return nil, errors.New("failed to parse flow_id as string")
	}
	realm, ok := parseString(row["realm"])
	if !ok {
		return nil, errors.New("failed to parse realm as string")
	}
	treeName, ok := parseString(row["tree_name"])
	if !ok {
		return nil, errors.New("failed to parse tree_name as string")
	}
	executionState, ok := parseString(row["execution_state"])
	if !ok {
		return nil, errors.New("failed to parse execution_state as string")
	}
	expiresAt, err := parseInt64(row["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse expires_at: %w", err)
	}

	return &FlowSnapshotDB{
		FlowID:         flowID,
		Realm:          realm,
		TreeName:       treeName,
		CurrentNodeID:  parseOptionalString(row["current_node_id"]),
		ExecutionState: executionState,
		SecureState:    parseOptionalString(row["secure_state"]),
		SuspensionID:   parseOptionalString(row["suspension_id"]),
		ExpiresAt:      expiresAt,
	}, nil
}

// parseString reads a text column, which drivers return either as a string or as bytes.
func parseString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// parseOptionalString safely parses an optional string value from the database.
func parseOptionalString(value interface{}) *string {
	if str, ok := parseString(value); ok && str != "" {
		return &str
	}
	return nil
}

func parseInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unexpected type %T", value)
	}
}

// getStringValue safely gets string value from pointer.
func getStringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
