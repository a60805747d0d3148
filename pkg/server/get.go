package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/normalize"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/schema"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Mindful AI Backend",
		"status":  "ok",
		"model":   s.Invoker.Name(),
	})
}

// GET /api/schema/:task
func (s *Server) handleGetSchema(c echo.Context) error {
	sch, ok := schema.For(c.Param("task"))
	if !ok {
		return reply(c, http.StatusNotFound, normalize.ValidationError,
			utils.ErrJSON("Unknown schema", "known: "+strings.Join(schema.Names(), ", ")))
	}
	return c.JSON(http.StatusOK, sch)
}
