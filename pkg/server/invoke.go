package server

import (
	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/inference"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// invoke makes the single model call of a request.
func (s *Server) invoke(c echo.Context, task prompt.Task, text string) inference.Response {
	if log.GetLevel() <= log.DebugLevel {
		if n, err := utils.NumTokens(text); err == nil {
			log.Debug("invoking model", "task", task, "model", s.Invoker.Name(), "tokens", n)
		}
	}

	resp := s.Invoker.Invoke(c.Request().Context(), task, text)
	if !resp.OK() {
		log.Warn("model call failed", "task", task, "reason", resp.Reason())
	} else {
		log.Debug("model response", "task", task, "text", utils.LimitStr(resp.Text, 500))
	}
	return resp
}

// reply logs a failed request with its kind before writing body.
func reply(c echo.Context, status int, kind normalize.Kind, body any) error {
	log.Warn("request failed",
		"path", c.Path(),
		"kind", kind,
		"status", status,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
	)
	return c.JSON(status, body)
}
