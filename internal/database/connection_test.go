// connection_test.go
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

package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/localnerve/wedding-site/internal/config"
	"github.com/localnerve/wedding-site/internal/models"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(&config.Config{
		DBHost:     "db",
		DBUser:     "wedding",
		DBPassword: "p@ss",
		DBDatabase: "wedding",
	})

	if !strings.HasPrefix(dsn, "wedding:p@ss@tcp(db:3306)/wedding?") {
		t.Errorf("Unexpected DSN prefix: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") || !strings.Contains(dsn, "charset=utf8mb4") {
		t.Errorf("Expected parseTime and charset in DSN: %s", dsn)
	}
}

func TestSqliteDSN(t *testing.T) {
	if got := sqliteDSN(":memory:"); got != ":memory:" {
		t.Errorf("Expected :memory: untouched, got %s", got)
	}
	if got := sqliteDSN("wedding.db"); !strings.Contains(got, "journal_mode(WAL)") {
		t.Errorf("Expected WAL pragma, got %s", got)
	}
}

func TestConnectUnsupported(t *testing.T) {
	if _, err := Connect(&config.Config{DBType: "oracle"}); err == nil {
		t.Fatal("Expected error for unsupported database type")
	}
}

func TestConnectAndMigrateSqlite(t *testing.T) {
	cfg := &config.Config{
		DBType:     "sqlite",
		DBDatabase: filepath.Join(t.TempDir(), "wedding.db"),
		DBLogLevel: "silent",
	}

	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer Close(db)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	for _, table := range []interface{}{&models.User{}, &models.Rsvp{}, &models.GuestMessage{}, &models.MusicTrack{}} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("Expected table for %T", table)
		}
	}
	if !db.Migrator().HasIndex(&models.Rsvp{}, "Email") {
		t.Error("Expected unique index on rsvps.email")
	}

	sqlDB, _ := db.DB()
	if max := sqlDB.Stats().MaxOpenConnections; max != 1 {
		t.Errorf("Expected a single sqlite connection, got %d", max)
	}
}

func TestRsvpEmailIndexIsPartial(t *testing.T) {
	cfg := &config.Config{
		DBType:     "sqlite",
		DBDatabase: filepath.Join(t.TempDir(), "wedding.db"),
		DBLogLevel: "silent",
	}
	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer Close(db)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	var ddl string
	if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'index' AND name = ?", "idx_rsvps_email").Row().Scan(&ddl); err != nil {
		t.Fatalf("Failed to read index DDL: %v", err)
	}
	if !strings.Contains(ddl, "UNIQUE") || !strings.Contains(ddl, "WHERE email IS NOT NULL") {
		t.Errorf("Expected a partial unique index, got %s", ddl)
	}

	for _, name := range []string{"Ana", "Ben"} {
		rsvp := models.Rsvp{Name: name, Phone: "1", Status: models.RsvpAttending, GuestCount: 1}
		if err := db.Create(&rsvp).Error; err != nil {
			t.Fatalf("Expected rows without email to coexist: %v", err)
		}
	}
}
