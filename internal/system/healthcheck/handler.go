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

package healthcheck

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/authtree/internal/system/log"
	sysutils "github.com/asgardeo/authtree/internal/system/utils"
)

// HealthCheckHandler defines the handler for health check API requests.
type HealthCheckHandler struct {
	service HealthCheckServiceInterface
	logger  *log.Logger
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler(service HealthCheckServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		service: service,
		logger:  log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler")),
	}
}

// RegisterRoutes mounts the health check endpoints on the router.
func (hch *HealthCheckHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health/liveness", hch.HandleLivenessRequest)
	r.Get("/health/readiness", hch.HandleReadinessRequest)
}

// HandleLivenessRequest handles the health check liveness request.
func (hch *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	hch.logger.Debug("Health Check Liveness response sent")
}

// HandleReadinessRequest handles the health check readiness request.
func (hch *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	serverStatus := hch.service.CheckReadiness(r.Context())

	statusCode := http.StatusOK
	if serverStatus.Status != StatusUp {
		hch.logger.Error("Readiness check failed", log.String("serverstatus", string(serverStatus.Status)))
		statusCode = http.StatusServiceUnavailable
	}
	sysutils.WriteJSON(w, statusCode, serverStatus)
}
