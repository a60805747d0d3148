package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charm "github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/config"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/imagegen"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/inference"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/interactions"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/music"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/server"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	cfg := config.Load()
	if cfg.Debug {
		charm.SetLevel(charm.DebugLevel)
	}

	inv, err := inference.New(ctx, cfg)
	if err != nil {
		charm.Fatal("Failed to configure model", "provider", cfg.Provider, "err", err)
	}

	var songs music.Searcher = music.Unconfigured{}
	if yt, err := music.NewYouTube(ctx, cfg.YouTubeAPIKey); err != nil {
		charm.Warn("YouTube search disabled", "err", err)
	} else {
		songs = yt
	}

	var images server.ImageGenerator
	if hf, err := imagegen.NewHuggingFace(cfg.HFAPIKey, cfg.HFImageModel, cfg.HFBaseURL); err != nil {
		charm.Warn("Image generation disabled", "err", err)
	} else {
		queue := imagegen.NewQueue(hf, 100)
		queue.Start()
		defer queue.Stop()
		images = queue
	}

	if !utils.Exists(cfg.StaticDir) {
		if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
			charm.Fatal("Failed to create static dir", "dir", cfg.StaticDir, "err", err)
		}
	}

	var store interactions.Store = interactions.NewFileStore(cfg.LogFile)
	if cfg.MongoURI != "" {
		mongoStore, err := interactions.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			charm.Fatal("Failed to connect interaction store", "err", err)
		}
		store = mongoStore
		charm.Info("Recording interactions to MongoDB", "database", cfg.MongoDatabase)
	} else {
		charm.Info("Recording interactions to file", "path", cfg.LogFile)
	}

	srv := server.NewServer(cfg, server.Deps{
		Invoker:      inv,
		Songs:        songs,
		Images:       images,
		Interactions: store,
	})
	if cfg.Debug {
		srv.Echo.Logger.SetLevel(log.DEBUG)
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			charm.Error("Shutdown failed", "err", err)
		}
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		charm.Error(err)
		done()
	}
	<-finishedShutDown
}
