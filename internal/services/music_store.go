// music_store.go
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

// MusicTrackInput is a validated playlist entry
type MusicTrackInput struct {
	Title         string
	Artist        *string
	FilePath      string
	IsActive      bool
	IsYoutubeLink bool
}

// CreateMusicTrack inserts a track. An active track deactivates every other one.
func (s *Store) CreateMusicTrack(ctx context.Context, input MusicTrackInput) (*models.MusicTrack, error) {
	track := models.MusicTrack{
		Title:         input.Title,
		Artist:        nullable(input.Artist),
		FilePath:      input.FilePath,
		IsActive:      input.IsActive,
		IsYoutubeLink: input.IsYoutubeLink,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if track.IsActive {
			if err := clearActive(tx); err != nil {
				return err
			}
		}
		if err := tx.Create(&track).Error; err != nil {
			return fmt.Errorf("create music track: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &track, nil
}

// GetMusicTracks lists the playlist, most recent upload first
func (s *Store) GetMusicTracks(ctx context.Context) ([]models.MusicTrack, error) {
	tracks := []models.MusicTrack{}
	err := s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "getMusicTracks")).
		Order("uploaded_at DESC").
		Order("id DESC").
		Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("get music tracks: %w", err)
	}
	return tracks, nil
}

// GetActiveMusicTrack returns the track flagged for playback
func (s *Store) GetActiveMusicTrack(ctx context.Context) (*models.MusicTrack, error) {
	var track models.MusicTrack
	err := s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "getActiveMusicTrack")).
		Where("is_active = ?", true).
		First(&track).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &track, nil
}

// SetActiveMusicTrack makes id the only active track
func (s *Store) SetActiveMusicTrack(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearActive(tx); err != nil {
			return err
		}

		res := tx.Model(&models.MusicTrack{}).Where("id = ?", id).Update("is_active", true)
		if res.Error != nil {
			return fmt.Errorf("activate music track %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteMusicTrack removes a track, then its uploaded file once the delete is committed
func (s *Store) DeleteMusicTrack(ctx context.Context, id uint64) error {
	var track models.MusicTrack

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&track, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Delete(&track).Error; err != nil {
			return fmt.Errorf("delete music track %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if track.IsLocalUpload() {
		if err := s.files.Remove(track.FilePath); err != nil {
			s.log.Warn().Err(err).Uint64("id", id).Str("file", track.FilePath).Msg("failed to remove music file")
		}
	}

	return nil
}

// SaveMusicAndGetURL checks an audio file against the audio policy and writes it under /music
func (s *Store) SaveMusicAndGetURL(fh *multipart.FileHeader) (string, error) {
	return s.saveUpload(fh, uploads.AudioPolicy, uploads.MusicSubdir)
}

func clearActive(tx *gorm.DB) error {
	err := tx.Model(&models.MusicTrack{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("clear active music track: %w", err)
	}
	return nil
}
