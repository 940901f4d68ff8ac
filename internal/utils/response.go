// response.go
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

package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return envelope(c, status, message, errorType, nil)
}

// CustomErrorResponse renders a CustomError, including its field errors
func CustomErrorResponse(c *fiber.Ctx, err *types.CustomError) error {
	return envelope(c, err.Code, err.Message, err.Type, err.Errors)
}

func envelope(c *fiber.Ctx, status int, message, errorType string, fields []types.FieldError) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
		Errors:    fields,
	})
}

// InternalErrorResponse sends a 500 without leaking the cause
func InternalErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, types.ErrorTypeInternal)
}

// SuccessFlag sends {"success": true} with an optional message
func SuccessFlag(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(SuccessFlagStruct{
		Success: true,
		Message: message,
	})
}

// MessageResponse sends {"message": ...}
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageResponseStruct{Message: message})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int                `json:"status"`
	Message   string             `json:"message"`
	Ok        bool               `json:"ok"`
	Timestamp string             `json:"timestamp"`
	URL       string             `json:"url"`
	Type      string             `json:"type,omitempty"`
	Errors    []types.FieldError `json:"errors,omitempty"`
}

// SuccessFlagStruct defines the schema for login, logout and delete responses
type SuccessFlagStruct struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MessageResponseStruct defines the schema for music mutation responses
type MessageResponseStruct struct {
	Message string `json:"message"`
}
