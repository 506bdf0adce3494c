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

// Package config provides structures and functions for loading the server configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// SecurityConfig holds the TLS certificate of the server. TLS is enabled when both files are set.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the database configuration details.
type DatabaseConfig struct {
	Runtime DataSource `yaml:"runtime"`
}

// RedisConfig holds the redis connection details.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// SessionConfig holds the authenticated session configuration.
type SessionConfig struct {
	Redis RedisConfig `yaml:"redis"`
	// DefaultMaxSessionTime is the default session lifetime in minutes.
	DefaultMaxSessionTime int `yaml:"default_max_session_time"`
	// DefaultMaxIdleTime is the default idle timeout in minutes.
	DefaultMaxIdleTime int `yaml:"default_max_idle_time"`
}

// CryptoConfig holds the crypto configuration.
type CryptoConfig struct {
	// Key is the hex encoded AES key used to protect secure flow state at rest.
	Key string `yaml:"key"`
}

// ResumeConfig holds the configuration of signed resume links issued for suspended flows.
type ResumeConfig struct {
	SigningKey string `yaml:"signing_key"`
	Issuer     string `yaml:"issuer"`
	BaseURL    string `yaml:"base_url"`
}

// NodeDefinition holds a configured node instance of an authentication tree.
type NodeDefinition struct {
	ID          string                 `yaml:"id"`
	Type        string                 `yaml:"type"`
	Version     string                 `yaml:"version"`
	DisplayName string                 `yaml:"display_name"`
	Config      map[string]interface{} `yaml:"config"`
	Connections map[string]string      `yaml:"connections"`
}

// TreeDefinition holds a configured authentication tree.
type TreeDefinition struct {
	Realm       string           `yaml:"realm"`
	Name        string           `yaml:"name"`
	EntryNodeID string           `yaml:"entry_node_id"`
	MaxDuration int              `yaml:"max_duration"`
	Nodes       []NodeDefinition `yaml:"nodes"`
}

// FlowConfig holds the flow execution configuration.
type FlowConfig struct {
	// DefaultMaxDuration is the default flow lifetime in minutes.
	DefaultMaxDuration    int              `yaml:"default_max_duration"`
	SnapshotPurgeSchedule string           `yaml:"snapshot_purge_schedule"`
	Resume                ResumeConfig     `yaml:"resume"`
	Trees                 []TreeDefinition `yaml:"trees"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Crypto   CryptoConfig   `yaml:"crypto"`
	Flow     FlowConfig     `yaml:"flow"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills unset values with the server defaults.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Flow.DefaultMaxDuration == 0 {
		cfg.Flow.DefaultMaxDuration = 5
	}
	if cfg.Flow.SnapshotPurgeSchedule == "" {
		cfg.Flow.SnapshotPurgeSchedule = "@every 5m"
	}
	if cfg.Session.DefaultMaxSessionTime == 0 {
		cfg.Session.DefaultMaxSessionTime = 120
	}
	if cfg.Session.DefaultMaxIdleTime == 0 {
		cfg.Session.DefaultMaxIdleTime = 30
	}
	if cfg.Session.Redis.KeyPrefix == "" {
		cfg.Session.Redis.KeyPrefix = "authtree:session:"
	}
}
