package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/creatureforge/card-api/internal/clients/cardgen"
	"github.com/creatureforge/card-api/internal/config"
	v1 "github.com/creatureforge/card-api/internal/handlers/api/v1"
	"github.com/creatureforge/card-api/internal/orchestrators/wizard"
	"github.com/creatureforge/card-api/internal/pkg/clock"
	"github.com/creatureforge/card-api/internal/pkg/idgen"
	"github.com/creatureforge/card-api/internal/pkg/roller"
	"github.com/creatureforge/card-api/internal/redis"
	sessionrepo "github.com/creatureforge/card-api/internal/repositories/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the card API HTTP server with all configured services.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis.Addr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	repo, err := sessionrepo.NewRedisRepository(&sessionrepo.RedisConfig{
		Client: redisClient,
		TTL:    cfg.Redis.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}

	cardGen, err := cardgen.NewGeminiClient(&cardgen.GeminiConfig{
		Client: genaiClient,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create card generation client: %w", err)
	}

	orch, err := wizard.New(&wizard.Config{
		SessionRepo: repo,
		CardGen:     cardGen,
		IDGenerator: idgen.NewUUID("wiz"),
		Roller:      roller.NewToolkit(),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create wizard orchestrator: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler := v1.NewHandler(orch)
	handler.RegisterRoutes(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
