// main.go
//
// Wedding invitation site data service: RSVPs, guest messages and background music
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of wedding-site.
// wedding-site is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// wedding-site is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with wedding-site.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/wedding-site/internal/config"
	"github.com/localnerve/wedding-site/internal/database"
	"github.com/localnerve/wedding-site/internal/logger"
	"github.com/localnerve/wedding-site/internal/router"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/uploads"
	"github.com/rs/zerolog"
)

// @title Wedding Site API
// @version 1.0.0
// @description RSVPs, guest messages and background music for a wedding invitation site
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/wedding-site
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name wedding_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg.LogLevel, cfg.IsProduction())
	serverLog := logger.Component(appLog, "server")

	if err := run(cfg, appLog, serverLog); err != nil {
		serverLog.Fatal().Err(err).Msg("server exited with error")
	}
	serverLog.Info().Msg("server stopped")
}

// run owns the database handle so it is closed on every return path
func run(cfg *config.Config, appLog, serverLog zerolog.Logger) error {
	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.DBType, err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			serverLog.Error().Err(err).Msg("failed to close database")
		}
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	store := services.NewStore(db, uploads.NewStore(cfg.PublicDir), logger.Component(appLog, "database"))

	// Seed the admin account
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	admin, err := store.EnsureUser(seedCtx, cfg.AdminUsername, cfg.AdminPassword)
	cancel()
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	serverLog.Info().Str("username", admin.Username).Msg("admin account ready")

	app := router.New(router.Options{
		Config:    cfg,
		Store:     store,
		Sessions:  services.NewFiberSessionStore(cfg.SessionTTL, cfg.IsProduction()),
		Log:       appLog,
		Metrics:   true,
		AccessLog: true,
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	go func() {
		<-c
		serverLog.Info().Msg("gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			serverLog.Error().Err(err).Msg("shutdown error")
		}
	}()

	// Start server
	serverLog.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("db", cfg.DBType).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
