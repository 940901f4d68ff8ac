// music_track.go
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
	"strings"
	"time"
)

// MusicTrack is a background music entry, either an uploaded file or a YouTube link.
// At most one track is active.
type MusicTrack struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Artist        *string   `gorm:"size:255" json:"artist"`
	FilePath      string    `gorm:"size:1024;not null" json:"filePath"`
	IsActive      bool      `gorm:"not null;default:false;index" json:"isActive"`
	IsYoutubeLink bool      `gorm:"not null;default:false" json:"isYoutubeLink"`
	UploadedAt    time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}

// TableName overrides the table name for MusicTrack
func (MusicTrack) TableName() string {
	return "music_tracks"
}

// IsLocalUpload reports whether FilePath points at a file saved under /music/
func (t *MusicTrack) IsLocalUpload() bool {
	return !t.IsYoutubeLink && strings.HasPrefix(t.FilePath, "/music/")
}
