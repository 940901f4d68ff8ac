// auth.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/types"
)

// LocalsAdmin is the c.Locals key holding the services.AuthenticatedAdmin of a guarded request
const LocalsAdmin = "admin"

// AuthAdmin middleware requires an admin session
func AuthAdmin(sessions services.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := sessions.State(c)
		if err != nil {
			return err
		}

		admin, ok := state.(services.AuthenticatedAdmin)
		if !ok {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
				Type:    types.ErrorTypeAuth,
			}
		}

		// Set admin data in context
		c.Locals(LocalsAdmin, admin)

		return c.Next()
	}
}

// Admin returns the authenticated admin stored by AuthAdmin
func Admin(c *fiber.Ctx) (services.AuthenticatedAdmin, bool) {
	admin, ok := c.Locals(LocalsAdmin).(services.AuthenticatedAdmin)
	return admin, ok
}
