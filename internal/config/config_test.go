// config_test.go
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

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %s", cfg.Port)
	}
	if cfg.DBType != "sqlite" || cfg.DBDatabase != "wedding.db" {
		t.Errorf("Unexpected database defaults: %s %s", cfg.DBType, cfg.DBDatabase)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.IsProduction() {
		t.Error("Expected development environment by default")
	}
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when ADMIN_PASSWORD is empty")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		DBType:        "sqlite",
		DBDatabase:    "wedding.db",
		AdminUsername: "admin",
		AdminPassword: "secret",
		SessionTTL:    time.Hour,
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid sqlite", func(c *Config) {}, false},
		{"unknown db type", func(c *Config) { c.DBType = "oracle" }, true},
		{"mysql without host", func(c *Config) { c.DBType = "mysql" }, true},
		{"mysql with host", func(c *Config) { c.DBType = "mysql"; c.DBHost = "db" }, false},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, true},
		{"empty admin username", func(c *Config) { c.AdminUsername = "" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: " http://a.test , ,http://b.test"}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("Unexpected origins: %v", got)
	}
}
