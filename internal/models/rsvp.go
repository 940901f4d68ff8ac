// rsvp.go
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

import "time"

// RsvpStatus is a guest's attendance answer
type RsvpStatus string

const (
	RsvpAttending    RsvpStatus = "attending"
	RsvpNotAttending RsvpStatus = "not-attending"
	RsvpUndecided    RsvpStatus = "undecided"
)

// Valid reports whether s is one of the known statuses
func (s RsvpStatus) Valid() bool {
	switch s {
	case RsvpAttending, RsvpNotAttending, RsvpUndecided:
		return true
	}
	return false
}

// Rsvp is a guest's attendance response. Email is unique when present; the
// index is partial so SQL Server accepts any number of NULL emails.
type Rsvp struct {
	ID                  uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string     `gorm:"size:255;not null" json:"name"`
	Email               *string    `gorm:"size:255;uniqueIndex:idx_rsvps_email,where:email IS NOT NULL" json:"email"`
	Phone               string     `gorm:"size:64;not null" json:"phone"`
	Status              RsvpStatus `gorm:"size:32;not null;index" json:"status"`
	GuestCount          int        `gorm:"not null;default:1" json:"guestCount"`
	AdditionalGuests    GuestNames `json:"additionalGuests"`
	DietaryRestrictions *string    `json:"dietaryRestrictions"`
	Message             *string    `json:"message"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// TableName overrides the table name for Rsvp
func (Rsvp) TableName() string {
	return "rsvps"
}
