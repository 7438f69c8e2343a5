package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/incidentdesk/backend/internal/ai"
	"github.com/incidentdesk/backend/internal/config"
	"github.com/incidentdesk/backend/internal/db"
	"github.com/incidentdesk/backend/internal/fixtures"
	httpapi "github.com/incidentdesk/backend/internal/http"
	"github.com/incidentdesk/backend/internal/http/handlers"
	"github.com/incidentdesk/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "incident-desk").Logger()

	fx, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.FixturesPath).Msg("failed to load fixtures")
	}

	ctx := context.Background()
	var store db.TicketStore
	if cfg.DatabaseURL == "" {
		store = db.NewMemoryStore(fx.SeedTickets)
		logger.Info().Msg("using in-memory ticket store")
	} else {
		pg, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		if err := pg.Migrate(ctx, fx.SeedTickets); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate db")
		}
		store = pg
	}
	defer store.Close()

	analyzer, aiPowered := ai.FromConfig(cfg, logger)
	kb := service.NewRelevanceScorer(fx.KBDocuments)
	v := validator.New()

	h := &handlers.Handler{
		Store:      store,
		Tickets:    service.TicketService{Store: store, KB: kb, Validator: v, Logger: logger},
		KB:         kb,
		Similarity: service.NewSimilarityEngine(fx.HistoricalTickets),
		Analyzer:   analyzer,
		AIPowered:  aiPowered,
		Validator:  v,
		Logger:     logger,
	}
	router := httpapi.Router(cfg, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Int("kb_documents", len(fx.KBDocuments)).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
