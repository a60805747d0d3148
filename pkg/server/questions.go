package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
)

// GET /generate-questions?user_type=student|general
func (s *Server) handleGetQuestions(c echo.Context) error {
	persona := prompt.ParsePersona(c.QueryParam("user_type"))
	log.Info("generating questions", "user_type", persona)

	raw, err := normalize.Questions(s.invoke(c, prompt.QuestionGeneration, prompt.Questions(persona)), persona)
	if err != nil {
		res := normalize.AsResult(err)
		if res.Kind == normalize.MalformedJSON {
			return reply(c, http.StatusInternalServerError, res.Kind, map[string]any{
				"error":        "Failed to parse questions from Gemini",
				"details":      res.Details,
				"raw_response": res.Raw,
			})
		}
		return reply(c, http.StatusInternalServerError, res.Kind, map[string]any{
			"error":                   "Failed to generate questions",
			"details":                 res.Details,
			"failed_prompt_user_type": string(persona),
		})
	}
	return c.JSONBlob(http.StatusOK, raw)
}
