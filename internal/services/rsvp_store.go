// rsvp_store.go
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
	"fmt"

	"github.com/localnerve/wedding-site/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// RsvpInput is a validated RSVP submission
type RsvpInput struct {
	Name                string
	Email               *string
	Phone               string
	Status              models.RsvpStatus
	GuestCount          int
	AdditionalGuests    []string
	DietaryRestrictions *string
	Message             *string
}

// RsvpUpdate carries the fields an admin edit supplied. Nil means untouched,
// a blank string clears a nullable column.
type RsvpUpdate struct {
	Name                *string
	Email               *string
	Phone               *string
	Status              *models.RsvpStatus
	GuestCount          *int
	AdditionalGuests    *[]string
	DietaryRestrictions *string
	Message             *string
}

// RsvpSummary counts responses per status
type RsvpSummary struct {
	Attending       int64 `json:"attending"`
	NotAttending    int64 `json:"notAttending"`
	Undecided       int64 `json:"undecided"`
	Total           int64 `json:"total"`
	AttendingGuests int64 `json:"attendingGuests"`
}

// CreateRsvp inserts a new RSVP, ErrDuplicateEmail when the email is taken
func (s *Store) CreateRsvp(ctx context.Context, input RsvpInput) (*models.Rsvp, error) {
	rsvp := models.Rsvp{
		Name:                input.Name,
		Email:               nullable(input.Email),
		Phone:               input.Phone,
		Status:              input.Status,
		GuestCount:          input.GuestCount,
		AdditionalGuests:    models.GuestNames(input.AdditionalGuests),
		DietaryRestrictions: nullable(input.DietaryRestrictions),
		Message:             nullable(input.Message),
	}
	if len(rsvp.AdditionalGuests) == 0 {
		rsvp.AdditionalGuests = nil
	}

	if err := s.db.WithContext(ctx).Create(&rsvp).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	return &rsvp, nil
}

// GetRsvps returns every RSVP in insertion order
func (s *Store) GetRsvps(ctx context.Context) ([]models.Rsvp, error) {
	rsvps := []models.Rsvp{}
	err := s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "getRsvps")).
		Order("id ASC").
		Find(&rsvps).Error
	if err != nil {
		return nil, fmt.Errorf("get rsvps: %w", err)
	}
	return rsvps, nil
}

// GetRsvpByEmail returns the RSVP registered with email
func (s *Store) GetRsvpByEmail(ctx context.Context, email string) (*models.Rsvp, error) {
	var rsvp models.Rsvp
	err := s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "getRsvpByEmail")).
		Where("email = ?", email).
		First(&rsvp).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rsvp, nil
}

// GetRsvpByID returns one RSVP
func (s *Store) GetRsvpByID(ctx context.Context, id uint64) (*models.Rsvp, error) {
	var rsvp models.Rsvp
	if err := s.db.WithContext(ctx).First(&rsvp, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &rsvp, nil
}

// UpdateRsvp writes only the supplied fields and returns the stored row
func (s *Store) UpdateRsvp(ctx context.Context, id uint64, update RsvpUpdate) (*models.Rsvp, error) {
	var rsvp models.Rsvp

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rsvp, id).Error; err != nil {
			return notFound(err)
		}

		changes := update.columns()
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&models.Rsvp{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("update rsvp %d: %w", id, err)
		}

		return tx.First(&rsvp, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &rsvp, nil
}

// DeleteRsvp removes an RSVP. Deleting a missing id is not an error.
func (s *Store) DeleteRsvp(ctx context.Context, id uint64) error {
	if err := s.db.WithContext(ctx).Delete(&models.Rsvp{}, id).Error; err != nil {
		return fmt.Errorf("delete rsvp %d: %w", id, err)
	}
	return nil
}

// SummarizeRsvps counts RSVPs per status and the guests in attending parties
func (s *Store) SummarizeRsvps(ctx context.Context) (*RsvpSummary, error) {
	var rows []struct {
		Status models.RsvpStatus
		Count  int64
		Guests int64
	}

	err := s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "summarizeRsvps")).
		Model(&models.Rsvp{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(guest_count), 0) AS guests").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("summarize rsvps: %w", err)
	}

	summary := &RsvpSummary{}
	for _, row := range rows {
		summary.Total += row.Count
		switch row.Status {
		case models.RsvpAttending:
			summary.Attending = row.Count
			summary.AttendingGuests = row.Guests
		case models.RsvpNotAttending:
			summary.NotAttending = row.Count
		case models.RsvpUndecided:
			summary.Undecided = row.Count
		}
	}

	return summary, nil
}

func (u RsvpUpdate) columns() map[string]interface{} {
	changes := map[string]interface{}{}

	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Email != nil {
		changes["email"] = nullable(u.Email)
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.GuestCount != nil {
		changes["guest_count"] = *u.GuestCount
	}
	if u.AdditionalGuests != nil {
		changes["additional_guests"] = models.GuestNames(*u.AdditionalGuests)
	}
	if u.DietaryRestrictions != nil {
		changes["dietary_restrictions"] = nullable(u.DietaryRestrictions)
	}
	if u.Message != nil {
		changes["message"] = nullable(u.Message)
	}

	return changes
}
