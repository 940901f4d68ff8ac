// admin_auth.go
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

package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/middleware"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/types"
	"github.com/localnerve/wedding-site/internal/utils"
	"github.com/rs/zerolog"
)

// AdminAuthHandler handles admin login and logout
type AdminAuthHandler struct {
	Store    *services.Store
	Sessions services.SessionStore
	Log      zerolog.Logger
}

// LoginRequest is the body of POST /api/admin/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the current admin session
type SessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username"`
	Since         time.Time `json:"since"`
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Starts an admin session and sets the wedding_session cookie
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessFlagStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /admin/login [post]
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.Store.CheckAdminCredentials(c.UserContext(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.Log.Warn().Str("username", req.Username).Str("ip", c.IP()).Msg("admin login failed")
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid credentials",
			Type:    types.ErrorTypeAuth,
		}
	}
	if err != nil {
		return err
	}

	if _, err := h.Sessions.SignIn(c, req.Username); err != nil {
		return err
	}

	h.Log.Info().Str("username", req.Username).Msg("admin logged in")
	return utils.SuccessFlag(c, "Login successful")
}

// Logout handles POST and GET /api/admin/logout
// @Summary Admin logout
// @Description Ends the session. Always succeeds.
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessFlagStruct
// @Router /admin/logout [post]
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Sessions.SignOut(c); err != nil {
		h.Log.Warn().Err(err).Msg("failed to destroy session")
	}
	return utils.SuccessFlag(c, "Logged out")
}

// Session handles GET /api/admin/session
// @Summary Current admin session
// @Tags Admin
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/session [get]
func (h *AdminAuthHandler) Session(c *fiber.Ctx) error {
	admin, ok := middleware.Admin(c)
	if !ok {
		return &types.CustomError{Code: fiber.StatusUnauthorized, Message: "Unauthorized", Type: types.ErrorTypeAuth}
	}
	return utils.SuccessResponse(c, SessionResponse{
		Authenticated: true,
		Username:      admin.Username,
		Since:         admin.Since,
	}, fiber.StatusOK)
}
