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

package uploads

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded payloads under a public root directory
// and hands back the URL path they are served at.
type Store struct {
	Root string
}

// NewStore creates a Store rooted at the public directory
func NewStore(root string) *Store {
	return &Store{Root: root}
}

// Save copies r to <root>/<subdir>/<random id><ext> and returns "/<subdir>/<id><ext>".
// The id is 16 random bytes, hex encoded; the original extension is kept.
func (s *Store) Save(r io.Reader, originalFilename, subdir string) (string, error) {
	if subdir == "" || strings.ContainsAny(subdir, `/\`) || subdir == ".." {
		return "", fmt.Errorf("invalid upload subdirectory %q", subdir)
	}

	dir := filepath.Join(s.Root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New()
	name := hex.EncodeToString(id[:]) + strings.ToLower(filepath.Ext(originalFilename))

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return "/" + subdir + "/" + name, nil
}

// Remove deletes a file previously returned by Save. Missing files are not an error.
func (s *Store) Remove(url string) error {
	local, err := s.LocalPath(url)
	if err != nil {
		return err
	}
	if err := os.Remove(local); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// LocalPath maps an upload URL onto the filesystem, rejecting anything outside the root
func (s *Store) LocalPath(url string) (string, error) {
	clean := path.Clean("/" + url)
	if clean == "/" || clean != "/"+strings.TrimPrefix(url, "/") {
		return "", fmt.Errorf("invalid upload path %q", url)
	}
	return filepath.Join(s.Root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}
