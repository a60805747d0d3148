package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/interactions"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

type askReq struct {
	Question string `json:"question"`
}

type askResp struct {
	Answer string `json:"answer"`
}

// POST /api/ask
func (s *Server) handlePostAsk(c echo.Context) error {
	if !isJSON(c.Request().Header.Get(echo.HeaderContentType)) {
		return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.ErrJSON("Request must be JSON"))
	}
	var req askReq
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(req.Question) == "" {
		return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.ErrJSON("Question cannot be empty"))
	}
	log.Info("received question", "question", utils.LimitStr(req.Question, 80))

	resp := s.invoke(c, prompt.SupportiveAnswer, prompt.Supportive(req.Question))

	status := http.StatusOK
	answer := resp.Text + prompt.Disclaimer
	res := normalize.FromResponse(resp)
	if res != nil {
		status = http.StatusInternalServerError
		switch res.Kind {
		case normalize.TransportError:
			answer = "Error: Could not get an answer from the AI model. Details: " + resp.Reason()
		default:
			answer = "Error: The model could not generate a response. Reason: " + resp.Reason()
		}
	}

	if s.Interactions != nil {
		if err := s.Interactions.Append(c.Request().Context(), interactions.New(req.Question, answer)); err != nil {
			log.Error("failed to record interaction", "err", err)
		}
	}

	if res != nil {
		return reply(c, status, res.Kind, askResp{Answer: answer})
	}
	return c.JSON(status, askResp{Answer: answer})
}

// isJSON accepts application/json and any +json media type.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}
