// music.go
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
	"github.com/localnerve/wedding-site/internal/types"
	"github.com/localnerve/wedding-site/internal/utils"
	"github.com/rs/zerolog"
)

// MusicHandler handles background music routes
type MusicHandler struct {
	Store *services.Store
	Log   zerolog.Logger
}

// MusicTrackRequest holds the text fields of POST /api/admin/music
type MusicTrackRequest struct {
	Title         string  `form:"title" json:"title" validate:"required,max=255"`
	Artist        *string `form:"artist" json:"artist" validate:"omitempty,max=255"`
	IsActive      bool    `form:"isActive" json:"isActive"`
	IsYoutubeLink bool    `form:"isYoutubeLink" json:"isYoutubeLink"`
	YoutubeURL    string  `form:"youtubeUrl" json:"youtubeUrl" validate:"omitempty,http_url,max=1024"`
}

// GetActiveMusicTrack handles GET /api/music/active
// @Summary Get the active music track
// @Tags Music
// @Produce json
// @Success 200 {object} models.MusicTrack
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /music/active [get]
func (h *MusicHandler) GetActiveMusicTrack(c *fiber.Ctx) error {
	track, err := h.Store.GetActiveMusicTrack(c.UserContext())
	if err != nil {
		return storeError(err, "No active music track")
	}
	return utils.SuccessResponse(c, track, fiber.StatusOK)
}

// GetMusicTracks handles GET /api/admin/music
// @Summary List music tracks
// @Tags Admin
// @Produce json
// @Success 200 {array} models.MusicTrack
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/music [get]
func (h *MusicHandler) GetMusicTracks(c *fiber.Ctx) error {
	tracks, err := h.Store.GetMusicTracks(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, tracks, fiber.StatusOK)
}

// CreateMusicTrack handles POST /api/admin/music
// @Summary Add a music track
// @Description Multipart form with either an audio file (mp3, wav, ogg, m4a up to 10MB) or a YouTube URL
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param artist formData string false "Artist"
// @Param isActive formData bool false "Make this the active track"
// @Param isYoutubeLink formData bool false "Track is a YouTube link"
// @Param youtubeUrl formData string false "YouTube URL"
// @Param musicFile formData file false "Audio file"
// @Success 201 {object} models.MusicTrack
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/music [post]
func (h *MusicHandler) CreateMusicTrack(c *fiber.Ctx) error {
	var req MusicTrackRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(err)
	}
	req.Title = strings.TrimSpace(req.Title)
	req.YoutubeURL = strings.TrimSpace(req.YoutubeURL)
	if err := validateStruct(&req); err != nil {
		return err
	}

	input := services.MusicTrackInput{
		Title:    req.Title,
		Artist:   trimmed(req.Artist),
		IsActive: req.IsActive,
	}

	fh := formFile(c, "musicFile")
	switch {
	case req.YoutubeURL != "" && (req.IsYoutubeLink || fh == nil):
		input.FilePath = req.YoutubeURL
		input.IsYoutubeLink = true

	case fh != nil:
		url, err := h.Store.SaveMusicAndGetURL(fh)
		if err != nil {
			return uploadError(err)
		}
		input.FilePath = url

	default:
		return types.NewValidationError("Either a music file or a YouTube URL is required", types.FieldError{
			Field:   "musicFile",
			Message: "upload a music file or provide youtubeUrl",
		})
	}

	track, err := h.Store.CreateMusicTrack(c.UserContext(), input)
	if err != nil {
		if !input.IsYoutubeLink {
			h.Store.RemoveFile(input.FilePath)
		}
		return err
	}

	h.Log.Info().Uint64("id", track.ID).Str("title", track.Title).Bool("active", track.IsActive).Msg("music track added")
	return utils.SuccessResponse(c, track, fiber.StatusCreated)
}

// SetActiveMusicTrack handles PUT /api/admin/music/:id/active
// @Summary Make a track the active one
// @Tags Admin
// @Produce json
// @Param id path int true "Track ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/music/{id}/active [put]
func (h *MusicHandler) SetActiveMusicTrack(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Store.SetActiveMusicTrack(c.UserContext(), id); err != nil {
		return storeError(err, "Music track not found")
	}
	return utils.MessageResponse(c, "Active track updated")
}

// DeleteMusicTrack handles DELETE /api/admin/music/:id
// @Summary Delete a music track
// @Description Uploaded files are removed from disk, YouTube links only lose their row
// @Tags Admin
// @Produce json
// @Param id path int true "Track ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/music/{id} [delete]
func (h *MusicHandler) DeleteMusicTrack(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Store.DeleteMusicTrack(c.UserContext(), id); err != nil {
		return storeError(err, "Music track not found")
	}
	return utils.MessageResponse(c, "Music track deleted")
}
