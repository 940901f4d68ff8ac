// auth_test.go
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

package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/types"
)

type fakeSessions struct {
	state services.SessionState
}

func (f fakeSessions) State(*fiber.Ctx) (services.SessionState, error) { return f.state, nil }

func (f fakeSessions) SignIn(_ *fiber.Ctx, username string) (services.AuthenticatedAdmin, error) {
	return services.AuthenticatedAdmin{Username: username}, nil
}

func (f fakeSessions) SignOut(*fiber.Ctx) error { return nil }

func guardedApp(state services.SessionState) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*types.CustomError); ok {
				return c.Status(e.Code).SendString(e.Type)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/api/admin/rsvps", AuthAdmin(fakeSessions{state: state}), func(c *fiber.Ctx) error {
		admin, ok := Admin(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(admin.Username)
	})
	return app
}

func TestAuthAdminRejectsAnonymous(t *testing.T) {
	resp, err := guardedApp(services.Anonymous{}).Test(httptest.NewRequest("GET", "/api/admin/rsvps", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestAuthAdminAllowsAdmin(t *testing.T) {
	app := guardedApp(services.AuthenticatedAdmin{Username: "admin", Since: time.Now()})
	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/rsvps", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}
