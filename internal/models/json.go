// json.go
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

package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GuestNames is the list of additional guest names on an RSVP, stored as a JSON array.
// An empty list is stored as NULL and reads back as nil.
type GuestNames []string

// Value stores the names through gorm.io/datatypes.JSONSlice
func (g GuestNames) Value() (driver.Value, error) {
	if len(g) == 0 {
		return nil, nil
	}
	return datatypes.JSONSlice[string](g).Value()
}

// Scan reads a JSON array column
func (g *GuestNames) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}

	var names datatypes.JSONSlice[string]
	if err := names.Scan(value); err != nil {
		return err
	}
	if len(names) == 0 {
		*g = nil
		return nil
	}

	*g = GuestNames(names)
	return nil
}

// GormDataType is the generic data type used by migrations
func (GuestNames) GormDataType() string {
	return "json"
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL does not support the 'json' data type.
func (GuestNames) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
