// guest_message_store.go
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
	"mime/multipart"

	"github.com/localnerve/wedding-site/internal/models"
	"github.com/localnerve/wedding-site/internal/uploads"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// GuestMessageInput is a validated message board post
type GuestMessageInput struct {
	Name     string
	Message  string
	PhotoURL *string
}

// CreateGuestMessage stores a post. New posts are always approved.
func (s *Store) CreateGuestMessage(ctx context.Context, input GuestMessageInput) (*models.GuestMessage, error) {
	msg := models.GuestMessage{
		Name:     input.Name,
		Message:  input.Message,
		PhotoURL: nullable(input.PhotoURL),
		Approved: true,
	}

	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("create guest message: %w", err)
	}

	return &msg, nil
}

// GetGuestMessages lists posts newest first. The public view only sees approved posts.
func (s *Store) GetGuestMessages(ctx context.Context, adminView bool) ([]models.GuestMessage, error) {
	comment := "getApprovedGuestMessages"
	query := s.db.WithContext(ctx)
	if !adminView {
		query = query.Where("approved = ?", true)
	} else {
		comment = "getAllGuestMessages"
	}

	messages := []models.GuestMessage{}
	err := query.
		Clauses(hints.Comment("select", comment)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("get guest messages: %w", err)
	}

	return messages, nil
}

// GetGuestMessageByID returns one post
func (s *Store) GetGuestMessageByID(ctx context.Context, id uint64) (*models.GuestMessage, error) {
	var msg models.GuestMessage
	if err := s.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &msg, nil
}

// UpdateGuestMessageApproval sets the approved flag and returns the updated post
func (s *Store) UpdateGuestMessageApproval(ctx context.Context, id uint64, approved bool) (*models.GuestMessage, error) {
	var msg models.GuestMessage

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&msg, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&msg).Update("approved", approved).Error; err != nil {
			return fmt.Errorf("update guest message %d: %w", id, err)
		}
		msg.Approved = approved
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// DeleteGuestMessage removes a post and its uploaded photo
func (s *Store) DeleteGuestMessage(ctx context.Context, id uint64) error {
	var msg models.GuestMessage

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&msg, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Delete(&msg).Error; err != nil {
			return fmt.Errorf("delete guest message %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if msg.PhotoURL != nil {
		if err := s.files.Remove(*msg.PhotoURL); err != nil {
			s.log.Warn().Err(err).Uint64("id", id).Str("photo", *msg.PhotoURL).Msg("failed to remove guest message photo")
		}
	}

	return nil
}

// SavePhotoAndGetURL checks a photo against the image policy and writes it under /uploads
func (s *Store) SavePhotoAndGetURL(fh *multipart.FileHeader) (string, error) {
	return s.saveUpload(fh, uploads.ImagePolicy, uploads.PhotoSubdir)
}

// RemoveFile deletes a previously saved upload, used when an insert fails after the write
func (s *Store) RemoveFile(url string) {
	if err := s.files.Remove(url); err != nil {
		s.log.Warn().Err(err).Str("file", url).Msg("failed to remove orphaned upload")
	}
}

func (s *Store) saveUpload(fh *multipart.FileHeader, policy uploads.Policy, subdir string) (string, error) {
	if err := policy.Check(fh); err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	url, err := s.files.Save(f, fh.Filename, subdir)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return url, nil
}
