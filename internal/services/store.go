// store.go
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
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/localnerve/wedding-site/internal/uploads"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("an RSVP with this email already exists")
	ErrDuplicate      = errors.New("duplicate record")
)

// Store is the typed data access layer over the database and the upload directory
type Store struct {
	db    *gorm.DB
	files *uploads.Store
	log   zerolog.Logger
}

// NewStore wires a Store to an open database and an upload root
func NewStore(db *gorm.DB, files *uploads.Store, log zerolog.Logger) *Store {
	return &Store{
		db:    db,
		files: files,
		log:   log.With().Str("component", "store").Logger(),
	}
}

// DB exposes the underlying handle for health checks and tooling
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Files exposes the upload store
func (s *Store) Files() *uploads.Store {
	return s.files
}

// isDuplicateKey reports unique constraint violations across drivers
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// nullable maps blank optional strings to NULL
func nullable(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
