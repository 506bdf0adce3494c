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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/asgardeo/authtree/internal/system/constants"
	"github.com/asgardeo/authtree/internal/system/error/apierror"
	"github.com/asgardeo/authtree/internal/system/log"
)

// maxRequestBodySize limits JSON request bodies.
const maxRequestBodySize = 1 << 20

// DecodeJSONBody decodes the JSON request body into the given value.
func DecodeJSONBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodySize))
	if err := decoder.Decode(v); err != nil {
		return errors.New("failed to decode request body: " + err.Error())
	}
	return nil
}

// WriteJSON writes the given value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.GetLogger().Error("Failed to write JSON response", log.Error(err))
	}
}

// WriteJSONError writes an API error response with the given details.
func WriteJSONError(w http.ResponseWriter, statusCode int, errResp apierror.ErrorResponse) {
	log.GetLogger().Debug("Error in HTTP response", log.String("code", errResp.Code),
		log.String("description", errResp.Description))
	WriteJSON(w, statusCode, errResp)
}

// GetPreferredLocale returns the first language tag of an Accept-Language header value.
func GetPreferredLocale(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag != "" && tag != "*" {
			return tag
		}
	}
	return ""
}
