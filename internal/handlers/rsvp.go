// rsvp.go
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
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/models"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/types"
	"github.com/localnerve/wedding-site/internal/utils"
	"github.com/rs/zerolog"
)

// RsvpHandler handles RSVP routes
type RsvpHandler struct {
	Store *services.Store
	Log   zerolog.Logger
}

// RsvpRequest is the body of POST /api/rsvp
type RsvpRequest struct {
	Name                string            `json:"name" validate:"required,max=255"`
	Email               *string           `json:"email" validate:"omitnil,email,max=255"`
	Phone               string            `json:"phone" validate:"required,max=64"`
	Status              models.RsvpStatus `json:"status" validate:"required,oneof=attending not-attending undecided"`
	GuestCount          types.FlexInt     `json:"guestCount" swaggertype:"integer" validate:"required,min=1,max=4"`
	AdditionalGuests    types.NameList    `json:"additionalGuests" swaggertype:"array,string" validate:"omitempty,max=10,dive,max=255"`
	DietaryRestrictions *string           `json:"dietaryRestrictions" validate:"omitempty,max=1000"`
	Message             *string           `json:"message" validate:"omitempty,max=2000"`
}

// RsvpUpdateRequest is the body of PUT /api/admin/rsvps/:id. Omitted fields are left unchanged.
type RsvpUpdateRequest struct {
	Name                *string            `json:"name" validate:"omitnil,min=1,max=255"`
	Email               *string            `json:"email" validate:"omitnil,email,max=255"`
	Phone               *string            `json:"phone" validate:"omitnil,min=1,max=64"`
	Status              *models.RsvpStatus `json:"status" validate:"omitnil,oneof=attending not-attending undecided"`
	GuestCount          *types.FlexInt     `json:"guestCount" swaggertype:"integer" validate:"omitnil,min=1,max=4"`
	AdditionalGuests    *types.NameList    `json:"additionalGuests" swaggertype:"array,string" validate:"omitnil,max=10,dive,max=255"`
	DietaryRestrictions *string            `json:"dietaryRestrictions" validate:"omitempty,max=1000"`
	Message             *string            `json:"message" validate:"omitempty,max=2000"`
}

// CreateRsvp handles POST /api/rsvp
// @Summary Submit an RSVP
// @Description Record a guest's attendance response. Email, when given, must be unique.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param body body RsvpRequest true "RSVP"
// @Success 201 {object} models.Rsvp
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rsvp [post]
func (h *RsvpHandler) CreateRsvp(c *fiber.Ctx) error {
	var req RsvpRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(err)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	// A blank form field means no email
	if req.Email = trimmed(req.Email); req.Email != nil && *req.Email == "" {
		req.Email = nil
	}
	if err := validateStruct(&req); err != nil {
		return err
	}

	if req.Email != nil {
		_, err := h.Store.GetRsvpByEmail(c.UserContext(), *req.Email)
		if err == nil {
			return duplicateEmailError()
		}
		if !errors.Is(err, services.ErrNotFound) {
			return err
		}
	}

	rsvp, err := h.Store.CreateRsvp(c.UserContext(), services.RsvpInput{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Status:              req.Status,
		GuestCount:          req.GuestCount.Int(),
		AdditionalGuests:    req.AdditionalGuests.Slice(),
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	})
	if errors.Is(err, services.ErrDuplicateEmail) {
		return duplicateEmailError()
	}
	if err != nil {
		return err
	}

	h.Log.Info().Uint64("id", rsvp.ID).Str("status", string(rsvp.Status)).Int("guestCount", rsvp.GuestCount).Msg("rsvp received")
	return utils.SuccessResponse(c, rsvp, fiber.StatusCreated)
}

// GetRsvps handles GET /api/admin/rsvps
// @Summary List RSVPs
// @Description All RSVPs in submission order
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Rsvp
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/rsvps [get]
func (h *RsvpHandler) GetRsvps(c *fiber.Ctx) error {
	rsvps, err := h.Store.GetRsvps(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, rsvps, fiber.StatusOK)
}

// GetRsvpSummary handles GET /api/admin/rsvps/summary
// @Summary RSVP counts
// @Description Counts per status and the number of attending guests
// @Tags Admin
// @Produce json
// @Success 200 {object} services.RsvpSummary
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/rsvps/summary [get]
func (h *RsvpHandler) GetRsvpSummary(c *fiber.Ctx) error {
	summary, err := h.Store.SummarizeRsvps(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, summary, fiber.StatusOK)
}

// GetRsvp handles GET /api/admin/rsvps/:id
// @Summary Get an RSVP
// @Tags Admin
// @Produce json
// @Param id path int true "RSVP ID"
// @Success 200 {object} models.Rsvp
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/rsvps/{id} [get]
func (h *RsvpHandler) GetRsvp(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rsvp, err := h.Store.GetRsvpByID(c.UserContext(), id)
	if err != nil {
		return storeError(err, "RSVP not found")
	}
	return utils.SuccessResponse(c, rsvp, fiber.StatusOK)
}

// UpdateRsvp handles PUT /api/admin/rsvps/:id
// @Summary Update an RSVP
// @Description Only supplied fields are written. An empty string clears email, dietaryRestrictions or message.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "RSVP ID"
// @Param body body RsvpUpdateRequest true "Fields to change"
// @Success 200 {object} models.Rsvp
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/rsvps/{id} [put]
func (h *RsvpHandler) UpdateRsvp(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req RsvpUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(err)
	}
	// "" clears the stored email, so only a non-empty value is checked
	email := trimmed(req.Email)
	req.Email = email
	if email != nil && *email == "" {
		req.Email = nil
	}
	if err := validateStruct(&req); err != nil {
		return err
	}

	update := services.RsvpUpdate{
		Name:                req.Name,
		Email:               email,
		Phone:               req.Phone,
		Status:              req.Status,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	}
	if req.GuestCount != nil {
		n := req.GuestCount.Int()
		update.GuestCount = &n
	}
	if req.AdditionalGuests != nil {
		names := req.AdditionalGuests.Slice()
		update.AdditionalGuests = &names
	}

	rsvp, err := h.Store.UpdateRsvp(c.UserContext(), id, update)
	if errors.Is(err, services.ErrDuplicateEmail) {
		return duplicateEmailError()
	}
	if err != nil {
		return storeError(err, "RSVP not found")
	}
	return utils.SuccessResponse(c, rsvp, fiber.StatusOK)
}

// DeleteRsvp handles DELETE /api/admin/rsvps/:id
// @Summary Delete an RSVP
// @Tags Admin
// @Produce json
// @Param id path int true "RSVP ID"
// @Success 200 {object} utils.SuccessFlagStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/rsvps/{id} [delete]
func (h *RsvpHandler) DeleteRsvp(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Store.DeleteRsvp(c.UserContext(), id); err != nil {
		return err
	}
	return utils.SuccessFlag(c, "")
}

func duplicateEmailError() error {
	return types.NewValidationError(services.ErrDuplicateEmail.Error(), types.FieldError{
		Field:   "email",
		Message: "this email has already been used to RSVP",
	})
}
