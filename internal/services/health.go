// health.go
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

package services

import (
	"context"
	"os"
	"strings"

	"github.com/localnerve/wedding-site/internal/config"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Storage      string            `json:"storage"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the database and verifies the upload root is writable
func (s *Store) HealthCheck(ctx context.Context, cfg *config.Config) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}
	var problems []string

	// Check database connectivity
	if err := s.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		problems = append(problems, "database unreachable")
		s.log.Error().Err(err).Msg("health check failed - database ping")
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
	}

	// Check that uploads can be written
	if err := checkWritable(s.files.Root); err != nil {
		result.Status = "unhealthy"
		result.Storage = "unwritable"
		problems = append(problems, "upload directory unwritable")
		s.log.Error().Err(err).Str("dir", s.files.Root).Msg("health check failed - upload directory")
	} else {
		result.Storage = "ok"
	}

	result.ErrorMessage = strings.Join(problems, "; ")
	if result.Healthy() {
		s.log.Debug().Msg("health check passed - all systems operational")
	}

	return result
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".healthcheck-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
