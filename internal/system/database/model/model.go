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

// Package model defines the data structures and interfaces for database operations.
package model

import "database/sql"

// DBQuery represents a catalogued database query with an identifier.
type DBQuery struct {
	// ID is the unique identifier for the query.
	ID string `json:"id"`
	// Query is the default SQL query string.
	Query string `json:"query"`
	// SQLiteQuery overrides Query when the runtime database is SQLite.
	SQLiteQuery string `json:"sqlite_query,omitempty"`
}

// GetID returns the unique identifier for the query.
func (d DBQuery) GetID() string {
	return d.ID
}

// GetQuery returns the SQL query string for the given database type.
func (d DBQuery) GetQuery(dbType string) string {
	if dbType == "sqlite" && d.SQLiteQuery != "" {
		return d.SQLiteQuery
	}
	return d.Query
}

// DBInterface defines the wrapper interface for database operations.
type DBInterface interface {
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
	Close() error
}

// DB is the implementation of DBInterface for managing database connections.
type DB struct {
	internal *sql.DB
}

// NewDB creates a new instance of DB with the provided sql.DB.
func NewDB(db *sql.DB) DBInterface {
	return &DB{
		internal: db,
	}
}

// Query executes a query that returns rows.
func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.internal.Query(query, args...)
}

// Exec executes a query without returning rows.
func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.internal.Exec(query, args...)
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.internal.Close()
}
