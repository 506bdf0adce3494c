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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/asgardeo/authtree/internal/system/config"
	"github.com/asgardeo/authtree/internal/system/database/client"
	"github.com/asgardeo/authtree/internal/system/database/model"
	"github.com/asgardeo/authtree/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider lazily opens and caches the runtime database client.
type DBProvider struct {
	dataSource config.DataSource
	serverHome string
	client     client.DBClientInterface
	mu         sync.Mutex
}

// NewDBProvider creates a new DBProvider for the given data source.
func NewDBProvider(dataSource config.DataSource, serverHome string) *DBProvider {
	return &DBProvider{
		dataSource: dataSource,
		serverHome: serverHome,
	}
}

// GetDBClient returns the database client, opening the connection on first use.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != nil {
		return d.client, nil
	}

	driverName, dsn, err := d.getDSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", d.dataSource.Name, err)
	}
	if d.dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(d.dataSource.MaxOpenConns)
	}
	if d.dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(d.dataSource.MaxIdleConns)
	}
	if d.dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(d.dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (close error: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider")).
		Debug("Database client initialized", log.String("type", driverName))
	d.client = client.NewDBClient(model.NewDB(db), driverName)
	return d.client, nil
}

// Close closes the cached database client, if any.
func (d *DBProvider) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client == nil {
		return nil
	}
	err := d.client.Close()
	d.client = nil
	return err
}

// getDSN returns the driver name and data source name of the configured database.
func (d *DBProvider) getDSN() (string, string, error) {
	ds := d.dataSource
	switch ds.Type {
	case dataSourceTypePostgres:
		return dataSourceTypePostgres, fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			ds.Hostname, ds.Port, ds.Username, ds.Password, ds.Name, ds.SSLMode), nil
	case dataSourceTypeSQLite:
		options := ds.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		return dataSourceTypeSQLite, path.Join(d.serverHome, ds.Path) + options, nil
	default:
		return "", "", fmt.Errorf("unsupported database type: %s", ds.Type)
	}
}
