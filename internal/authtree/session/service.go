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

package session

import (
	"context"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/system/log"
	"github.com/asgardeo/authtree/internal/system/utils"
)

// ServiceInterface creates and looks up sessions.
type ServiceInterface interface {
	CreateSession(ctx context.Context, realm, treeName string, result *model.TreeResult) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// Service is the default implementation of ServiceInterface.
type Service struct {
	store                 StoreInterface
	defaultMaxSessionTime time.Duration
	defaultMaxIdleTime    time.Duration
	now                   func() time.Time
	logger                *log.Logger
}

// NewService creates a Service. The defaults apply when a flow sets no session limits.
func NewService(store StoreInterface, defaultMaxSessionTime, defaultMaxIdleTime time.Duration) *Service {
	return &Service{
		store:                 store,
		defaultMaxSessionTime: defaultMaxSessionTime,
		defaultMaxIdleTime:    defaultMaxIdleTime,
		now:                   time.Now,
		logger:                log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SessionService")),
	}
}

// CreateSession creates the session of a flow that reached its success terminal.
func (s *Service) CreateSession(ctx context.Context, realm, treeName string,
	result *model.TreeResult) (*Session, error) {
	now := s.now()
	session := &Session{
		ID:             utils.GenerateUUID(),
		Realm:          realm,
		TreeName:       treeName,
		Properties:     result.SessionProperties,
		Hooks:          result.SessionHooks,
		CreatedAt:      now,
		LastAccessedAt: now,
		MaxSessionTime: s.defaultMaxSessionTime,
		MaxIdleTime:    s.defaultMaxIdleTime,
	}
	if result.MaxSessionTime > 0 {
		session.MaxSessionTime = result.MaxSessionTime
	}
	if result.MaxIdleTime > 0 {
		session.MaxIdleTime = result.MaxIdleTime
	}

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Failed to save session", log.String(log.LoggerKeyRealm, realm), log.Error(err))
		return nil, err
	}
	s.logger.Debug("Session created", log.String(log.LoggerKeyRealm, realm),
		log.String(log.LoggerKeyTreeName, treeName), log.Int("hookCount", len(session.Hooks)))
	return session, nil
}

// GetSession returns a live session. Expired sessions are reported as not found.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.RemainingTime(s.now()) <= 0 {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DeleteSession ends a session.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
