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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/asgardeo/authtree/internal/system/config"
)

// StoreInterface persists sessions.
type StoreInterface interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps sessions in Redis, each under its own key expiring with the session.
type RedisStore struct {
	client *backend.Client
	prefix string
}

// NewRedisStore creates a RedisStore connected to the configured Redis server.
func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	client := backend.NewClient(&backend.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisStoreFromClient(client, cfg.KeyPrefix)
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *backend.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Save writes the session. The key expires when the session does.
func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	ttl := session.RemainingTime(time.Now())
	if ttl <= 0 {
		return fmt.Errorf("session %s has already expired", session.ID)
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

// Get reads a session.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// Ping checks that the redis server is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
