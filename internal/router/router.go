// router.go
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

package router

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/localnerve/wedding-site/internal/config"
	"github.com/localnerve/wedding-site/internal/handlers"
	"github.com/localnerve/wedding-site/internal/middleware"
	"github.com/localnerve/wedding-site/internal/services"
	"github.com/localnerve/wedding-site/internal/types"
	"github.com/localnerve/wedding-site/internal/uploads"
	"github.com/localnerve/wedding-site/internal/utils"
	"github.com/rs/zerolog"

	_ "github.com/localnerve/wedding-site/docs/api" // Swagger docs
)

// BodyLimit caps request bodies, above the largest upload policy
const BodyLimit = 12 * uploads.MiB

// Options carries the dependencies of the HTTP application
type Options struct {
	Config   *config.Config
	Store    *services.Store
	Sessions services.SessionStore
	Log      zerolog.Logger

	// Metrics registers the Prometheus collectors and /metrics. Collectors are
	// process global, so only one app per process may enable it.
	Metrics bool

	// AccessLog enables fiber's request logger
	AccessLog bool
}

// New builds the fiber application with middleware, static files and the API routes
func New(opts Options) *fiber.App {
	cfg := opts.Config
	apiLog := opts.Log.With().Str("component", "api").Logger()

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler(apiLog),
		BodyLimit:             BodyLimit,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Global middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New())
	}
	app.Use(compress.New())

	if !cfg.IsProduction() {
		if origins := cfg.AllowedOrigins(); len(origins) > 0 {
			app.Use(cors.New(cors.Config{
				AllowOrigins:     strings.Join(origins, ","),
				AllowCredentials: true,
			}))
		}
	}

	// Prometheus metrics
	if opts.Metrics {
		prometheus := fiberprometheus.New("wedding_site")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded media
	app.Static("/"+uploads.PhotoSubdir, filepath.Join(cfg.PublicDir, uploads.PhotoSubdir))
	app.Static("/"+uploads.MusicSubdir, filepath.Join(cfg.PublicDir, uploads.MusicSubdir))

	registerAPI(app, opts, apiLog)

	if cfg.IsProduction() {
		serveClient(app, cfg.ClientDir)
	}

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, "[404] Resource Not Found", fiber.StatusNotFound, types.ErrorTypeNotFound)
	})

	return app
}

func registerAPI(app *fiber.App, opts Options, log zerolog.Logger) {
	store := opts.Store

	rsvpHandler := &handlers.RsvpHandler{Store: store, Log: log}
	messageHandler := &handlers.GuestMessageHandler{Store: store, Log: log}
	musicHandler := &handlers.MusicHandler{Store: store, Log: log}
	authHandler := &handlers.AdminAuthHandler{Store: store, Sessions: opts.Sessions, Log: log}
	healthHandler := &handlers.HealthHandler{Store: store, Config: opts.Config}

	api := app.Group("/api")

	// Public routes
	api.Post("/rsvp", rsvpHandler.CreateRsvp)
	api.Get("/guest-messages", messageHandler.GetGuestMessages)
	api.Post("/guest-messages", messageHandler.CreateGuestMessage)
	api.Get("/music/active", musicHandler.GetActiveMusicTrack)
	api.Get("/health", healthHandler.Health)

	// Admin session routes
	api.Post("/admin/login", authHandler.Login)
	api.Post("/admin/logout", authHandler.Logout)
	api.Get("/admin/logout", authHandler.Logout)

	// Admin-only routes
	admin := api.Group("/admin", middleware.AuthAdmin(opts.Sessions))
	admin.Get("/session", authHandler.Session)

	admin.Get("/rsvps", rsvpHandler.GetRsvps)
	admin.Get("/rsvps/summary", rsvpHandler.GetRsvpSummary)
	admin.Get("/rsvps/:id", rsvpHandler.GetRsvp)
	admin.Put("/rsvps/:id", rsvpHandler.UpdateRsvp)
	admin.Delete("/rsvps/:id", rsvpHandler.DeleteRsvp)

	admin.Get("/guest-messages", messageHandler.GetAllGuestMessages)
	admin.Put("/guest-messages/:id/approve", messageHandler.ApproveGuestMessage)
	admin.Delete("/guest-messages/:id", messageHandler.DeleteGuestMessage)

	admin.Get("/music", musicHandler.GetMusicTracks)
	admin.Post("/music", musicHandler.CreateMusicTrack)
	admin.Put("/music/:id/active", musicHandler.SetActiveMusicTrack)
	admin.Delete("/music/:id", musicHandler.DeleteMusicTrack)
}

// serveClient serves the built front end with index.html as the fallback for client routes
func serveClient(app *fiber.App, dir string) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	app.Static("/", dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Next()
		}
		return c.SendFile(index)
	})
}

// errorHandler renders every error with the JSON error envelope
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var customErr *types.CustomError
		if errors.As(err, &customErr) {
			return utils.CustomErrorResponse(c, customErr)
		}

		// Check if it's a Fiber error
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			errorType := types.ErrorTypeValidation
			switch {
			case fiberErr.Code == fiber.StatusRequestEntityTooLarge:
				// Oversize uploads are rejected before any handler runs
				return utils.ErrorResponse(c, "Upload exceeds the maximum request size", fiber.StatusBadRequest, types.ErrorTypeUpload)
			case fiberErr.Code == fiber.StatusNotFound:
				errorType = types.ErrorTypeNotFound
			case fiberErr.Code >= fiber.StatusInternalServerError:
				errorType = types.ErrorTypeInternal
			}
			return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code, errorType)
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled request error")
		return utils.InternalErrorResponse(c)
	}
}
