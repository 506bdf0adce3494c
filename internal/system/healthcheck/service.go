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

// Package healthcheck provides the liveness and readiness checks of the server.
package healthcheck

import (
	"context"

	dbmodel "github.com/asgardeo/authtree/internal/system/database/model"
	"github.com/asgardeo/authtree/internal/system/database/provider"
	"github.com/asgardeo/authtree/internal/system/log"
)

var queryRuntimeDBTable = dbmodel.DBQuery{
	ID:    "HLC-00001",
	Query: "SELECT FLOW_ID FROM FLOW_SNAPSHOT WHERE 1 = 0",
}

// PingerInterface is a dependency that can report whether it is reachable.
type PingerInterface interface {
	Ping(ctx context.Context) error
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) ServerStatus
}

// HealthCheckService checks the runtime database and the session store.
type HealthCheckService struct {
	dbProvider   provider.DBProviderInterface
	sessionStore PingerInterface
	logger       *log.Logger
}

// NewHealthCheckService creates a new instance of HealthCheckService.
func NewHealthCheckService(dbProvider provider.DBProviderInterface,
	sessionStore PingerInterface) *HealthCheckService {
	return &HealthCheckService{
		dbProvider:   dbProvider,
		sessionStore: sessionStore,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService")),
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) ServerStatus {
	statuses := []ServiceStatus{
		{ServiceName: "RuntimeDB", Status: hcs.checkDatabaseStatus()},
		{ServiceName: "SessionStore", Status: hcs.checkSessionStoreStatus(ctx)},
	}

	status := StatusUp
	for _, s := range statuses {
		if s.Status == StatusDown {
			status = StatusDown
		}
	}
	return ServerStatus{Status: status, ServiceStatus: statuses}
}

func (hcs *HealthCheckService) checkDatabaseStatus() Status {
	dbClient, err := hcs.dbProvider.GetDBClient()
	if err != nil {
		hcs.logger.Error("Failed to get database client", log.Error(err))
		return StatusDown
	}
	if _, err := dbClient.Query(queryRuntimeDBTable); err != nil {
		hcs.logger.Error("Failed to execute query", log.Error(err))
		return StatusDown
	}
	return StatusUp
}

func (hcs *HealthCheckService) checkSessionStoreStatus(ctx context.Context) Status {
	if err := hcs.sessionStore.Ping(ctx); err != nil {
		hcs.logger.Error("Failed to reach the session store", log.Error(err))
		return StatusDown
	}
	return StatusUp
}
