// guest_messages.go
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
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/utils"
	"github.com/rs/zerolog"
)

// GuestMessageHandler handles message board routes
type GuestMessageHandler struct {
	Store *services.Store
	Log   zerolog.Logger
}

// GuestMessageRequest holds the text fields of POST /api/guest-messages
type GuestMessageRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Message string `json:"message" form:"message" validate:"required,min=1,max=500"`
}

// ApprovalRequest is the body of PUT /api/admin/guest-messages/:id/approve
type ApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// GetGuestMessages handles GET /api/guest-messages
// @Summary List approved guest messages
// @Tags GuestMessages
// @Produce json
// @Success 200 {array} models.GuestMessage
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /guest-messages [get]
func (h *GuestMessageHandler) GetGuestMessages(c *fiber.Ctx) error {
	messages, err := h.Store.GetGuestMessages(c.UserContext(), false)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, messages, fiber.StatusOK)
}

// CreateGuestMessage handles POST /api/guest-messages
// @Summary Post a guest message
// @Description Multipart form with an optional photo (jpeg, png or gif up to 5MB)
// @Tags GuestMessages
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Guest name"
// @Param message formData string true "Message, up to 500 characters"
// @Param photo formData file false "Photo"
// @Success 201 {object} models.GuestMessage
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /guest-messages [post]
func (h *GuestMessageHandler) CreateGuestMessage(c *fiber.Ctx) error {
	var req GuestMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(err)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	if err := validateStruct(&req); err != nil {
		return err
	}

	var photoURL *string
	if fh := formFile(c, "photo"); fh != nil {
		url, err := h.Store.SavePhotoAndGetURL(fh)
		if err != nil {
			return uploadError(err)
		}
		photoURL = &url
	}

	msg, err := h.Store.CreateGuestMessage(c.UserContext(), services.GuestMessageInput{
		Name:     req.Name,
		Message:  req.Message,
		PhotoURL: photoURL,
	})
	if err != nil {
		if photoURL != nil {
			h.Store.RemoveFile(*photoURL)
		}
		return err
	}

	return utils.SuccessResponse(c, msg, fiber.StatusCreated)
}

// GetAllGuestMessages handles GET /api/admin/guest-messages
// @Summary List all guest messages
// @Description Includes messages hidden from the public board
// @Tags Admin
// @Produce json
// @Success 200 {array} models.GuestMessage
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/guest-messages [get]
func (h *GuestMessageHandler) GetAllGuestMessages(c *fiber.Ctx) error {
	messages, err := h.Store.GetGuestMessages(c.UserContext(), true)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, messages, fiber.StatusOK)
}

// ApproveGuestMessage handles PUT /api/admin/guest-messages/:id/approve
// @Summary Show or hide a guest message
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param body body ApprovalRequest true "Approval flag"
// @Success 200 {object} models.GuestMessage
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/guest-messages/{id}/approve [put]
func (h *GuestMessageHandler) ApproveGuestMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ApprovalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.Store.UpdateGuestMessageApproval(c.UserContext(), id, *req.Approved)
	if err != nil {
		return storeError(err, "Guest message not found")
	}
	return utils.SuccessResponse(c, msg, fiber.StatusOK)
}

// DeleteGuestMessage handles DELETE /api/admin/guest-messages/:id
// @Summary Delete a guest message
// @Description Also removes the uploaded photo
// @Tags Admin
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} utils.SuccessFlagStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/guest-messages/{id} [delete]
func (h *GuestMessageHandler) DeleteGuestMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Store.DeleteGuestMessage(c.UserContext(), id); err != nil {
		return storeError(err, "Guest message not found")
	}
	return utils.SuccessFlag(c, "")
}
