// session_test.go
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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionApp(sessions SessionStore) *fiber.App {
	app := fiber.New()
	app.Post("/in", func(c *fiber.Ctx) error {
		admin, err := sessions.SignIn(c, "admin")
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"username": admin.Username})
	})
	app.Get("/state", func(c *fiber.Ctx) error {
		state, err := sessions.State(c)
		if err != nil {
			return err
		}
		switch s := state.(type) {
		case AuthenticatedAdmin:
			return c.SendString("admin:" + s.Username)
		default:
			return c.SendString("anonymous")
		}
	})
	app.Post("/out", func(c *fiber.Ctx) error {
		return sessions.SignOut(c)
	})
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestFiberSessionStoreLifecycle(t *testing.T) {
	app := sessionApp(NewFiberSessionStore(time.Hour, false))

	resp, err := app.Test(httptest.NewRequest("GET", "/state", nil))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", readBody(t, resp))

	resp, err = app.Test(httptest.NewRequest("POST", "/in", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "expected session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	req := httptest.NewRequest("GET", "/state", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "admin:admin", readBody(t, resp))

	req = httptest.NewRequest("POST", "/out", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/state", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", readBody(t, resp))
}

func TestSecureSessionCookie(t *testing.T) {
	app := sessionApp(NewFiberSessionStore(time.Hour, true))

	resp, err := app.Test(httptest.NewRequest("POST", "/in", nil))
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			assert.True(t, c.Secure)
			return
		}
	}
	t.Fatal("expected session cookie")
}
