package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/bonus-tracker/external/dreamteam"
	"github.com/riskibarqy/bonus-tracker/internal/config"
	"github.com/riskibarqy/bonus-tracker/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/bonus-tracker/internal/platform/id"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
	"github.com/riskibarqy/bonus-tracker/internal/platform/resilience"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	client := dreamteam.NewClient(dreamteam.ClientConfig{
		BaseURL:  cfg.DreamTeamBaseURL,
		Email:    cfg.DreamTeamEmail,
		Password: cfg.DreamTeamPassword,
		Timeout:  cfg.DreamTeamTimeout,
		Logger:   logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DreamTeamCircuitEnabled,
			FailureThreshold: cfg.DreamTeamCircuitFailureCount,
			OpenTimeout:      cfg.DreamTeamCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DreamTeamCircuitHalfOpenMaxReq,
		},
	})

	authSvc := usecase.NewAuthService(client, logger)
	reportSvc := usecase.NewBonusReportService(client, usecase.BonusReportConfig{
		DefaultMode:    cfg.DreamTeamGameMode,
		MaxLeagueTeams: cfg.LeagueMaxTeams,
		FanoutWorkers:  cfg.LeagueFanoutWorkers,
	}, logger)

	handler := httpapi.NewHandler(authSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler, logger, idgen.NewRandomGenerator(), cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	// Login is lazy on first fetch; the boot-time attempt only warms the
	// session and must not block startup.
	if cfg.HasDreamTeamCredentials() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.DreamTeamTimeout)
			defer cancel()
			if err := client.Authenticate(ctx); err != nil {
				logger.WarnContext(ctx, "dreamteam startup login failed", "error", err)
			}
		}()
	}

	return server, nil
}
