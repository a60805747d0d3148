package server

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/config"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/inference"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/interactions"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/music"
)

// ImageGenerator renders an image prompt. imagegen.Queue implements it.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type Server struct {
	Echo         *echo.Echo
	Invoker      inference.Invoker
	Songs        music.Searcher
	Images       ImageGenerator // nil disables /generate
	Interactions interactions.Store
	StaticDir    string
}

// Deps are the collaborators built in main.
type Deps struct {
	Invoker      inference.Invoker
	Songs        music.Searcher
	Images       ImageGenerator
	Interactions interactions.Store
}

func NewServer(cfg config.Config, deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	songs := deps.Songs
	if songs == nil {
		songs = music.Unconfigured{}
	}

	s := &Server{
		Echo:         e,
		Invoker:      deps.Invoker,
		Songs:        songs,
		Images:       deps.Images,
		Interactions: deps.Interactions,
		StaticDir:    cfg.StaticDir,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)
	s.Echo.Static("/static", s.StaticDir)

	s.Echo.POST("/analyze", s.handlePostAnalyze(journalRoute))
	s.Echo.POST("/analyze_mood", s.handlePostAnalyze(moodRoute))
	s.Echo.POST("/analyze_report", s.handlePostAnalyze(reportRoute))
	s.Echo.GET("/generate-questions", s.handleGetQuestions)
	s.Echo.POST("/generate", s.handlePostGenerate)

	api := s.Echo.Group("/api")
	api.POST("/ask", s.handlePostAsk)
	api.GET("/search_song", s.handleGetSong)
	api.GET("/schema/:task", s.handleGetSchema)
}

func (s *Server) Start(addr string) error {
	log.Info("Server listening", "addr", addr, "model", s.Invoker.Name())
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down server...")

	shutDownErr := s.Echo.Shutdown(ctx)
	var closeErr error
	if s.Interactions != nil {
		closeErr = s.Interactions.Close(ctx)
	}
	return errors.Join(shutDownErr, closeErr)
}
