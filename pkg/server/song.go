package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/music"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/schema"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// GET /api/search_song?mood=&language=
func (s *Server) handleGetSong(c echo.Context) error {
	mood := c.QueryParam("mood")
	language := c.QueryParam("language")
	if mood == "" || language == "" {
		return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.SongErrJSON("Missing 'mood' or 'language' parameter"))
	}

	id, err := s.Songs.Search(c.Request().Context(), mood, language)
	if err != nil {
		return reply(c, http.StatusInternalServerError, normalize.ExternalAPIError, utils.SongErrJSON(music.Describe(err)))
	}
	return c.JSON(http.StatusOK, schema.SongResult{Success: true, VideoID: id})
}
