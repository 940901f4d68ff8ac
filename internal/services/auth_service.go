// auth_service.go
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
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionCookieName = "wedding_session"

	sessionKeyUsername = "admin_username"
	sessionKeySince    = "admin_since"
)

// ErrInvalidCredentials is returned when a login does not match the admin account
var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionState is the authentication state attached to a request.
// It is either Anonymous or AuthenticatedAdmin.
type SessionState interface {
	isSessionState()
}

// Anonymous is a visitor without an admin session
type Anonymous struct{}

// AuthenticatedAdmin is a visitor that logged in as the admin
type AuthenticatedAdmin struct {
	Username string
	Since    time.Time
}

func (Anonymous) isSessionState()          {}
func (AuthenticatedAdmin) isSessionState() {}

// SessionStore reads and changes the session state of a request
type SessionStore interface {
	State(c *fiber.Ctx) (SessionState, error)
	SignIn(c *fiber.Ctx, username string) (AuthenticatedAdmin, error)
	SignOut(c *fiber.Ctx) error
}

// FiberSessionStore keeps sessions in fiber's in-memory session storage
type FiberSessionStore struct {
	store *session.Store
}

// NewFiberSessionStore configures the session cookie. Secure cookies are only set in production.
func NewFiberSessionStore(ttl time.Duration, secure bool) *FiberSessionStore {
	return &FiberSessionStore{
		store: session.New(session.Config{
			Expiration:     ttl,
			KeyLookup:      "cookie:" + SessionCookieName,
			CookieHTTPOnly: true,
			CookieSecure:   secure,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
			CookiePath:     "/",
		}),
	}
}

// State returns AuthenticatedAdmin when the session carries a login, Anonymous otherwise
func (s *FiberSessionStore) State(c *fiber.Ctx) (SessionState, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return Anonymous{}, fmt.Errorf("load session: %w", err)
	}

	username, ok := sess.Get(sessionKeyUsername).(string)
	if !ok || username == "" {
		return Anonymous{}, nil
	}

	admin := AuthenticatedAdmin{Username: username}
	if since, ok := sess.Get(sessionKeySince).(int64); ok {
		admin.Since = time.Unix(since, 0).UTC()
	}
	return admin, nil
}

// SignIn marks the session as logged in, issuing a fresh session id
func (s *FiberSessionStore) SignIn(c *fiber.Ctx, username string) (AuthenticatedAdmin, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return AuthenticatedAdmin{}, fmt.Errorf("load session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return AuthenticatedAdmin{}, fmt.Errorf("regenerate session: %w", err)
	}

	admin := AuthenticatedAdmin{Username: username, Since: time.Now().UTC().Truncate(time.Second)}
	sess.Set(sessionKeyUsername, admin.Username)
	sess.Set(sessionKeySince, admin.Since.Unix())

	if err := sess.Save(); err != nil {
		return AuthenticatedAdmin{}, fmt.Errorf("save session: %w", err)
	}
	return admin, nil
}

// SignOut destroys the session, which is a no-op for anonymous visitors
func (s *FiberSessionStore) SignOut(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// CheckAdminCredentials compares a login against the stored admin account
func (s *Store) CheckAdminCredentials(ctx context.Context, username, password string) error {
	user, err := s.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
