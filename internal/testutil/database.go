// database.go
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

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/localnerve/wedding-site/internal/config"
	"github.com/localnerve/wedding-site/internal/database"
	"gorm.io/gorm"
)

// TestConfig returns a development configuration rooted in a temp directory
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	return &config.Config{
		Env:               config.EnvDevelopment,
		Port:              "5000",
		LogLevel:          "error",
		PublicDir:         filepath.Join(dir, "public"),
		ClientDir:         filepath.Join(dir, "dist"),
		CORSOrigins:       "http://localhost:5173",
		SessionTTL:        time.Hour,
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(dir, "wedding.db"),
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
		AdminUsername:     "admin",
		AdminPassword:     "secret",
	}
}

// NewTestDB opens and migrates a file backed SQLite database that is closed with the test.
// A file is used rather than :memory: so every pooled connection sees the same schema.
func NewTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
