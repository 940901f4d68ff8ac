// policy.go
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

package uploads

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MiB = 1 << 20

	PhotoSubdir = "uploads"
	MusicSubdir = "music"
)

// Reason classifies an upload rejection
type Reason string

const (
	ReasonTooLarge  Reason = "too_large"
	ReasonExtension Reason = "extension"
	ReasonMIMEType  Reason = "mime_type"
	ReasonUnread    Reason = "unreadable"
)

// Error is returned when an uploaded file violates a Policy
type Error struct {
	Field  string
	Reason Reason
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

// Policy constrains an upload by size, extension and sniffed content type
type Policy struct {
	Field      string
	MaxBytes   int64
	Extensions []string
	MIMETypes  []string
}

// ImagePolicy accepts guest message photos
var ImagePolicy = Policy{
	Field:      "photo",
	MaxBytes:   5 * MiB,
	Extensions: []string{".jpeg", ".jpg", ".png", ".gif"},
	MIMETypes:  []string{"image/jpeg", "image/png", "image/gif"},
}

// AudioPolicy accepts background music files
var AudioPolicy = Policy{
	Field:      "musicFile",
	MaxBytes:   10 * MiB,
	Extensions: []string{".mp3", ".wav", ".ogg", ".m4a"},
	MIMETypes: []string{
		"audio/mpeg", "audio/wav", "audio/x-wav", "audio/wave",
		"audio/ogg", "application/ogg", "audio/mp4", "audio/x-m4a",
	},
}

// Check validates the file header and sniffs the first bytes of its content
func (p Policy) Check(fh *multipart.FileHeader) error {
	if fh.Size > p.MaxBytes {
		return &Error{
			Field:  p.Field,
			Reason: ReasonTooLarge,
			Detail: fmt.Sprintf("file exceeds the %d MB limit", p.MaxBytes/MiB),
		}
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !contains(p.Extensions, ext) {
		return &Error{
			Field:  p.Field,
			Reason: ReasonExtension,
			Detail: fmt.Sprintf("file type %q is not allowed, expected one of %s", ext, strings.Join(p.Extensions, ", ")),
		}
	}

	f, err := fh.Open()
	if err != nil {
		return &Error{Field: p.Field, Reason: ReasonUnread, Detail: "file could not be read"}
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return &Error{Field: p.Field, Reason: ReasonUnread, Detail: "file could not be read"}
	}

	if !p.allowsMIME(mtype) {
		return &Error{
			Field:  p.Field,
			Reason: ReasonMIMEType,
			Detail: fmt.Sprintf("content type %s is not allowed", mtype.String()),
		}
	}

	return nil
}

// allowsMIME walks the detected type and its parents so aliases such as
// audio/x-m4a under audio/mp4 are accepted
func (p Policy) allowsMIME(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		for _, allowed := range p.MIMETypes {
			if m.Is(allowed) {
				return true
			}
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
