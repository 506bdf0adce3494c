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

// Package session manages the authenticated sessions created by completed flows.
package session

import (
	"errors"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/model"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is an authenticated session.
type Session struct {
	ID             string              `json:"id"`
	Realm          string              `json:"realm"`
	TreeName       string              `json:"treeName"`
	Properties     map[string]string   `json:"properties,omitempty"`
	Hooks          []model.SessionHook `json:"hooks,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	LastAccessedAt time.Time           `json:"lastAccessedAt"`
	MaxSessionTime time.Duration       `json:"maxSessionTime"`
	MaxIdleTime    time.Duration       `json:"maxIdleTime"`
}

// ExpiresAt returns the time the session ends, whichever of the session and idle limits comes first.
func (s *Session) ExpiresAt() time.Time {
	expiry := s.CreatedAt.Add(s.MaxSessionTime)
	if s.MaxIdleTime > 0 {
		if idleExpiry := s.LastAccessedAt.Add(s.MaxIdleTime); idleExpiry.Before(expiry) {
			expiry = idleExpiry
		}
	}
	return expiry
}

// RemainingTime returns how long the session stays valid from the given time.
func (s *Session) RemainingTime(now time.Time) time.Duration {
	remaining := s.ExpiresAt().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
