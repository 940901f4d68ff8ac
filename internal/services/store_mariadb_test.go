// store_mariadb_test.go
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
	"os"
	"testing"

	"github.com/localnerve/wedding-site/internal/config"
	"github.com/localnerve/wedding-site/internal/database"
	"github.com/localnerve/wedding-site/internal/models"
	"github.com/localnerve/wedding-site/internal/testutil"
	"github.com/localnerve/wedding-site/internal/uploads"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreOnMariaDB runs the uniqueness and activation rules against a real server.
// Set DB_IMAGE (for example mariadb:11) to enable it.
func TestStoreOnMariaDB(t *testing.T) {
	if testing.Short() || os.Getenv("DB_IMAGE") == "" {
		t.Skip("set DB_IMAGE to run the MariaDB store test")
	}

	mariadb, err := testutil.StartMariaDB(t)
	require.NoError(t, err)
	t.Cleanup(func() { mariadb.Terminate(t) })

	cfg := testutil.TestConfig(t)
	cfg.DBType = "mariadb"
	cfg.DBHost = mariadb.Host
	cfg.DBPort = mariadb.Port
	cfg.DBDatabase = mariadb.Database
	cfg.DBUser = mariadb.User
	cfg.DBPassword = mariadb.Password
	require.NoError(t, cfg.Validate())

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db))

	store := NewStore(db, uploads.NewStore(cfg.PublicDir), zerolog.Nop())
	ctx := context.Background()

	input := RsvpInput{Name: "Ana", Email: strPtr("ana@example.com"), Phone: "1", Status: models.RsvpAttending, GuestCount: 1, AdditionalGuests: []string{"Ben"}}
	created, err := store.CreateRsvp(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, models.GuestNames{"Ben"}, created.AdditionalGuests)

	_, err = store.CreateRsvp(ctx, input)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	one, err := store.CreateMusicTrack(ctx, MusicTrackInput{Title: "One", FilePath: "https://youtu.be/1", IsYoutubeLink: true, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateMusicTrack(ctx, MusicTrackInput{Title: "Two", FilePath: "https://youtu.be/2", IsYoutubeLink: true, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, store.SetActiveMusicTrack(ctx, one.ID))
	assert.Equal(t, int64(1), countActive(t, db))

	assert.Contains(t, database.MySQLDSN(&config.Config{DBHost: "db", DBDatabase: "wedding"}), "@tcp(db:3306)/wedding")
}
