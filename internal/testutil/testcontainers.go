// testcontainers.go
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
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MariaDB is a running database container and the settings to reach it
type MariaDB struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

// Terminate stops the container
func (m *MariaDB) Terminate(t *testing.T) {
	if m.Container == nil {
		return
	}
	if err := m.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate MariaDB: %v", err)
	}
}

// Env returns the DB_* variables that point the server at the container
func (m *MariaDB) Env() map[string]string {
	return map[string]string{
		"DB_TYPE":     "mariadb",
		"DB_HOST":     m.Host,
		"DB_PORT":     m.Port,
		"DB_DATABASE": m.Database,
		"DB_USER":     m.User,
		"DB_PASSWORD": m.Password,
	}
}

// StartMariaDB starts the image named by DB_IMAGE (default mariadb:11) and waits until it accepts queries.
// With a nil t errors are printed and the process exits.
func StartMariaDB(t *testing.T) (*MariaDB, error) {
	ctx := context.Background()

	image := envOr("DB_IMAGE", "mariadb:11")
	m := &MariaDB{
		Database: envOr("DB_DATABASE", "wedding"),
		User:     envOr("DB_USER", "wedding"),
		Password: envOr("DB_PASSWORD", "wedding"),
	}

	tcpDbPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": envOr("DB_ROOT_PASSWORD", "root"),
				"MARIADB_DATABASE":      m.Database,
				"MARIADB_USER":          m.User,
				"MARIADB_PASSWORD":      m.Password,
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start MariaDB: %w", err)
	}
	m.Container = container

	host, err := container.Host(ctx)
	if err != nil {
		m.Terminate(t)
		return nil, fmt.Errorf("failed to get MariaDB host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, tcpDbPort)
	if err != nil {
		m.Terminate(t)
		return nil, fmt.Errorf("failed to get MariaDB port: %w", err)
	}
	m.Host = host
	m.Port = mapped.Port()

	if err := waitForMySQL(m); err != nil {
		m.Terminate(t)
		return nil, err
	}

	logMessage(t, "MariaDB testcontainer started at %s:%s", m.Host, m.Port)
	return m, nil
}

// waitForMySQL pings until the server finishes its init scripts
func waitForMySQL(m *MariaDB) error {
	db, err := sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", m.User, m.Password, m.Host, m.Port, m.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to MariaDB: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
