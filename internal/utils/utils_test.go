// utils_test.go
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
	"encoding/json"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/wedding-site/internal/types"
)

func TestCustomErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Post("/api/rsvp", func(c *fiber.Ctx) error {
		return CustomErrorResponse(c, types.NewValidationError("Invalid input", types.FieldError{
			Field: "guestCount", Message: "guestCount must be at most 4",
		}))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/rsvp?x=1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var body ErrorResponseStruct
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Ok || body.Type != types.ErrorTypeValidation || body.URL != "/api/rsvp?x=1" {
		t.Errorf("Unexpected envelope: %+v", body)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "guestCount" {
		t.Errorf("Unexpected field errors: %+v", body.Errors)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("Expected RFC3339 timestamp, got %q", body.Timestamp)
	}
}

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	addr := ln.Addr().String()

	if err := PingService("http://"+addr, time.Second); err != nil {
		t.Errorf("Expected listener to be reachable: %v", err)
	}

	ln.Close()
	if err := PingService("http://"+addr, 200*time.Millisecond); err == nil {
		t.Error("Expected error after listener closed")
	}
}
