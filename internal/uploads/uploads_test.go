// uploads_test.go
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
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	mp3Bytes = append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 64)...)
)

// fileHeader builds a real multipart.FileHeader the way fiber hands it to handlers
func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field][0]
}

func TestImagePolicy(t *testing.T) {
	assert.NoError(t, ImagePolicy.Check(fileHeader(t, "photo", "us.PNG", pngBytes)))

	err := ImagePolicy.Check(fileHeader(t, "photo", "notes.txt", []byte("hello")))
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ReasonExtension, uerr.Reason)

	err = ImagePolicy.Check(fileHeader(t, "photo", "fake.png", []byte("just some text pretending")))
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ReasonMIMEType, uerr.Reason)

	small := ImagePolicy
	small.MaxBytes = 10
	err = small.Check(fileHeader(t, "photo", "us.png", pngBytes))
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ReasonTooLarge, uerr.Reason)
}

func TestAudioPolicy(t *testing.T) {
	assert.NoError(t, AudioPolicy.Check(fileHeader(t, "musicFile", "song.mp3", mp3Bytes)))

	err := AudioPolicy.Check(fileHeader(t, "musicFile", "cover.png", pngBytes))
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ReasonExtension, uerr.Reason)
	assert.Equal(t, "musicFile", uerr.Field)
}

func TestStoreSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	url, err := store.Save(bytes.NewReader(pngBytes), "Our Photo.JPG", PhotoSubdir)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/[0-9a-f]{32}\.jpg$`), url)

	local := filepath.Join(root, "uploads", strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	other, err := store.Save(bytes.NewReader(pngBytes), "b.png", PhotoSubdir)
	require.NoError(t, err)
	assert.NotEqual(t, url, other)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(local)
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, store.Remove(url))
}

func TestStoreRejectsEscapes(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Save(bytes.NewReader(nil), "a.mp3", "../etc")
	assert.Error(t, err)

	assert.Error(t, store.Remove("/music/../../etc/passwd"))
	assert.Error(t, store.Remove("/"))
}
