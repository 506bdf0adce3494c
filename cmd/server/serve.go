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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/asgardeo/authtree/internal/authtree/flowexec"
	"github.com/asgardeo/authtree/internal/authtree/session"
	"github.com/asgardeo/authtree/internal/authtree/store"
	"github.com/asgardeo/authtree/internal/system/cert"
	"github.com/asgardeo/authtree/internal/system/config"
	"github.com/asgardeo/authtree/internal/system/crypto"
	"github.com/asgardeo/authtree/internal/system/database/provider"
	"github.com/asgardeo/authtree/internal/system/healthcheck"
	"github.com/asgardeo/authtree/internal/system/log"
	"github.com/asgardeo/authtree/internal/system/metrics"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the authentication flow server",
	Long:  `Loads and validates the configured trees, then serves the flow execution API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, home, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		config.InitializeRuntime(home, cfg)
		return serve(config.GetRuntime())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(runtime *config.ServerRuntime) error {
	logger := log.GetLogger()
	defer logger.Sync()
	cfg := &runtime.Config

	cryptoService, err := crypto.NewCryptoServiceFromHex(cfg.Crypto.Key)
	if err != nil {
		return fmt.Errorf("failed to initialize crypto service: %w", err)
	}
	tokens, err := flowexec.NewResumeTokenManager([]byte(cfg.Flow.Resume.SigningKey), cfg.Flow.Resume.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize resume tokens: %w", err)
	}

	dbProvider := provider.NewDBProvider(cfg.Database.Runtime, runtime.ServerHome)
	defer func() {
		if closeErr := dbProvider.Close(); closeErr != nil {
			logger.Error("Failed to close database provider", log.Error(closeErr))
		}
	}()
	snapshots := store.NewFlowSnapshotStore(dbProvider, cryptoService)

	sessionStore := session.NewRedisStore(cfg.Session.Redis)
	defer func() {
		if closeErr := sessionStore.Close(); closeErr != nil {
			logger.Error("Failed to close session store", log.Error(closeErr))
		}
	}()
	sessions := session.NewService(sessionStore,
		time.Duration(cfg.Session.DefaultMaxSessionTime)*time.Minute,
		time.Duration(cfg.Session.DefaultMaxIdleTime)*time.Minute)

	collector := metrics.NewCollector()
	rt, err := newTreeRuntime(cfg, sessions, collector)
	if err != nil {
		return err
	}
	if err := rt.validate(); err != nil {
		return fmt.Errorf("invalid tree configuration: %w", err)
	}

	flowService := flowexec.NewFlowExecService(rt.trees, rt.evaluator, snapshots, sessions, tokens, collector,
		flowexec.Options{
			DefaultMaxDuration: time.Duration(cfg.Flow.DefaultMaxDuration) * time.Minute,
			ResumeBaseURL:      cfg.Flow.Resume.BaseURL,
		})

	purger := newSnapshotPurger(snapshots)
	if err := purger.start(cfg.Flow.SnapshotPurgeSchedule); err != nil {
		return err
	}
	defer purger.stop()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(log.AccessLogHandler(logger.With(log.String(log.LoggerKeyComponentName, "AccessLog"))))
	flowexec.RegisterRoutes(router, flowService)
	healthcheck.NewHealthCheckHandler(healthcheck.NewHealthCheckService(dbProvider, sessionStore)).
		RegisterRoutes(router)
	router.Handle("/metrics", collector.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if cert.IsTLSEnabled(cfg.Security) {
		tlsConfig, err := cert.GetTLSConfig(cfg.Security, runtime.ServerHome)
		if err != nil {
			return fmt.Errorf("failed to load tls configuration: %w", err)
		}
		server.TLSConfig = tlsConfig
	}
	return run(server, logger)
}

// run serves until the listener fails or the process is asked to stop.
func run(server *http.Server, logger *log.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting authtree server", log.String("address", server.Addr),
			log.Bool("tls", server.TLSConfig != nil))
		if server.TLSConfig != nil {
			serverErrors <- server.ListenAndServeTLS("", "")
			return
		}
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdown:
		logger.Info("Shutting down", log.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown did not complete", log.Error(err))
			return server.Close()
		}
		return nil
	}
}
