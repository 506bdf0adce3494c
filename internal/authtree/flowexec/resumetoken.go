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
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidResumeToken is returned when a resume token is malformed, forged or expired.
var ErrInvalidResumeToken = errors.New("invalid resume token")

// ResumeClaims identifies the suspension a resume token was issued for.
type ResumeClaims struct {
	FlowID       string
	SuspensionID string
	ExpiresAt    time.Time
}

// ResumeTokenManagerInterface issues and verifies the signed tokens of resume links.
type ResumeTokenManagerInterface interface {
	IssueToken(flowID, suspensionID string, expiresAt time.Time) (string, error)
	ParseToken(token string) (*ResumeClaims, error)
}

// resumeTokenManager signs resume tokens with HMAC-SHA256.
type resumeTokenManager struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// NewResumeTokenManager creates a resume token manager signing with the given key.
func NewResumeTokenManager(signingKey []byte, issuer string) (ResumeTokenManagerInterface, error) {
	if len(signingKey) < 32 {
		return nil, fmt.Errorf("resume token signing key must be at least 32 bytes, got %d", len(signingKey))
	}
	return &resumeTokenManager{
		key:    signingKey,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token for the suspension of a flow. The token subject is the flow id and the
// token id is the suspension id.
func (m *resumeTokenManager) IssueToken(flowID, suspensionID string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   flowID,
		ID:        suspensionID,
		IssuedAt:  jwt.NewNumericDate(m.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	if m.issuer != "" {
		claims.Issuer = m.issuer
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign resume token: %w", err)
	}
	return token, nil
}

// ParseToken verifies a resume token and returns its claims.
func (m *resumeTokenManager) ParseToken(tokenStr string) (*ResumeClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		options = append(options, jwt.WithIssuer(m.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.NewParser(options...).ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResumeToken, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: missing flow or suspension id", ErrInvalidResumeToken)
	}

	return &ResumeClaims{
		FlowID:       claims.Subject,
		SuspensionID: claims.ID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
