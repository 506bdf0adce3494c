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

package flowexec

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/model"
	serverconst "github.com/asgardeo/authtree/internal/system/constants"
	"github.com/asgardeo/authtree/internal/system/error/apierror"
	"github.com/asgardeo/authtree/internal/system/error/serviceerror"
	"github.com/asgardeo/authtree/internal/system/log"
	sysutils "github.com/asgardeo/authtree/internal/system/utils"
)

const (
	// SessionCookieName is the cookie carrying the id of the authenticated session.
	SessionCookieName = "authtree-session"
	// ClientIDHeaderName is the header identifying the client application.
	ClientIDHeaderName = "X-Client-Id"
)

// flowExecutionHandler handles flow execution requests.
type flowExecutionHandler struct {
	flowExecService FlowExecServiceInterface
	logger          *log.Logger
}

func newFlowExecutionHandler(flowExecService FlowExecServiceInterface) *flowExecutionHandler {
	return &flowExecutionHandler{
		flowExecService: flowExecService,
		logger:          log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowExecutionHandler")),
	}
}

// RegisterRoutes mounts the flow execution endpoints on the router.
func RegisterRoutes(r chi.Router, flowExecService FlowExecServiceInterface) {
	handler := newFlowExecutionHandler(flowExecService)
	r.Route("/flow", func(r chi.Router) {
		r.Post("/execute", handler.HandleFlowExecutionRequest)
		r.Get("/resume", handler.HandleFlowResumeRequest)
	})
}

// HandleFlowExecutionRequest handles the request to start or continue a flow.
func (h *flowExecutionHandler) HandleFlowExecutionRequest(w http.ResponseWriter, r *http.Request) {
	var flowR FlowRequest
	if err := sysutils.DecodeJSONBody(r, &flowR); err != nil {
		sysutils.WriteJSONError(w, http.StatusBadRequest, constants.APIErrorFlowRequestJSONDecodeError)
		return
	}

	flowStep, flowErr := h.flowExecService.Execute(r.Context(), &flowR, requestMetadata(r))
	if flowErr != nil {
		h.handleFlowError(w, flowErr)
		return
	}
	h.writeFlowStep(w, flowStep)
}

// HandleFlowResumeRequest handles the request sent through the resume link of a suspended flow.
func (h *flowExecutionHandler) HandleFlowResumeRequest(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(resumeTokenParam)
	if token == "" {
		h.handleFlowError(w, &constants.ErrorInvalidResumeToken)
		return
	}

	flowStep, flowErr := h.flowExecService.Resume(r.Context(), token, requestMetadata(r))
	if flowErr != nil {
		h.handleFlowError(w, flowErr)
		return
	}
	h.writeFlowStep(w, flowStep)
}

func (h *flowExecutionHandler) writeFlowStep(w http.ResponseWriter, flowStep *FlowStep) {
	if flowStep.SessionID != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    flowStep.SessionID,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	sysutils.WriteJSON(w, http.StatusOK, newFlowResponse(flowStep))
	h.logger.Debug("Flow execution request handled successfully", log.String(log.LoggerKeyFlowID, flowStep.FlowID),
		log.String("status", string(flowStep.Status)))
}

// handleFlowError writes a service error as an API error response.
func (h *flowExecutionHandler) handleFlowError(w http.ResponseWriter, flowErr *serviceerror.ServiceError) {
	errResp := apierror.ErrorResponse{
		Code:        flowErr.Code,
		Message:     flowErr.Error,
		Description: flowErr.ErrorDescription,
	}
	statusCode := http.StatusInternalServerError
	if flowErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	}
	sysutils.WriteJSONError(w, statusCode, errResp)
}

// requestMetadata captures the parts of the HTTP request nodes may read.
func requestMetadata(r *http.Request) model.RequestMetadata {
	metadata := model.RequestMetadata{
		Headers:    r.Header.Clone(),
		Parameters: r.URL.Query(),
		ClientID:   r.Header.Get(ClientIDHeaderName),
		Locale:     sysutils.GetPreferredLocale(r.Header.Get(serverconst.AcceptLanguageHeaderName)),
	}
	delete(metadata.Headers, "Cookie")
	delete(metadata.Parameters, resumeTokenParam)
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		metadata.ExistingSessionID = cookie.Value
	}
	return metadata
}
