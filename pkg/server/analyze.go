package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

type analyzeRoute struct {
	task prompt.Task
}

var (
	journalRoute = analyzeRoute{task: prompt.JournalAnalysis}
	moodRoute    = analyzeRoute{task: prompt.MoodAssessment}
	reportRoute  = analyzeRoute{task: prompt.ReportAnalysis}
)

// content is a journal entry string for /analyze and usually a structured
// object for the mood and report routes.
type analyzeReq struct {
	Content json.RawMessage `json:"content"`
}

// POST /analyze, /analyze_mood, /analyze_report
func (s *Server) handlePostAnalyze(route analyzeRoute) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req analyzeReq
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		if prompt.IsEmpty(req.Content) {
			return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.ErrJSON("No content provided"))
		}

		text, err := prompt.Build(route.task, req.Content)
		if err != nil {
			return reply(c, http.StatusBadRequest, normalize.ValidationError, utils.ErrJSON("No content provided", err.Error()))
		}

		raw, err := normalize.Object(s.invoke(c, route.task, text))
		if err != nil {
			res := normalize.AsResult(err)
			return reply(c, http.StatusInternalServerError, res.Kind, utils.ErrJSON("Failed to process analysis", res.Details))
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}
