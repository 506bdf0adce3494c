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

// Package cert loads the TLS configuration of the server.
package cert

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asgardeo/authtree/internal/system/config"
)

// ErrTLSNotConfigured is returned when the certificate or the key file is not set.
var ErrTLSNotConfigured = errors.New("tls certificate and key files are not configured")

// IsTLSEnabled reports whether both the certificate and the key file are configured.
func IsTLSEnabled(cfg config.SecurityConfig) bool {
	return cfg.CertFile != "" && cfg.KeyFile != ""
}

// GetTLSConfig loads the TLS configuration from the certificate and key files. Relative paths are
// resolved against the server home.
func GetTLSConfig(cfg config.SecurityConfig, serverHome string) (*tls.Config, error) {
	if !IsTLSEnabled(cfg) {
		return nil, ErrTLSNotConfigured
	}

	certFilePath := resolvePath(serverHome, cfg.CertFile)
	keyFilePath := resolvePath(serverHome, cfg.KeyFile)

	if _, err := os.Stat(certFilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("certificate file not found at %s", certFilePath)
	}
	if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("key file not found at %s", keyFilePath)
	}

	certificate, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load the certificate: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func resolvePath(serverHome, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(serverHome, path)
}
