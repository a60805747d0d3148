package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/imagegen"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/schema"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

type generateReq struct {
	Text string `json:"text"`
}

// POST /generate
func (s *Server) handlePostGenerate(c echo.Context) error {
	var req generateReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(req.Text) == "" {
		return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.ErrJSON("No input provided"))
	}
	if s.Images == nil {
		return reply(c, http.StatusServiceUnavailable, normalize.ExternalAPIError, utils.ErrJSON("Image generation is not configured"))
	}

	text, err := prompt.Build(prompt.ImagePrompt, req.Text)
	if err != nil {
		return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.ErrJSON("No input provided", err.Error()))
	}
	resp := s.invoke(c, prompt.ImagePrompt, text)
	if res := normalize.FromResponse(resp); res != nil {
		return reply(c, http.StatusInternalServerError, res.Kind, utils.ErrJSON("Failed to generate image prompt", res.Details))
	}
	imagePrompt := strings.TrimSpace(resp.Text)
	log.Info("generating image", "prompt", utils.LimitStr(imagePrompt, 80))

	data, err := s.Images.Generate(c.Request().Context(), imagePrompt)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, imagegen.ErrQueueFull) || errors.Is(err, imagegen.ErrQueueStopped) {
			status = http.StatusServiceUnavailable
		}
		return reply(c, status, normalize.ExternalAPIError, utils.ErrJSON("Failed to generate image", err.Error()))
	}

	name, err := imagegen.SaveWebP(s.StaticDir, data)
	if err != nil {
		return reply(c, http.StatusInternalServerError, normalize.ExternalAPIError, utils.ErrJSON("Failed to save image", err.Error()))
	}
	return c.JSON(http.StatusOK, schema.ImageResult{ImageURL: "/static/" + name})
}
