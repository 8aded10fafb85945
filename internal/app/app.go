// Package app wires configuration, storage, and services into a runnable
// application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres"
	progressrepo "github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres/progress"
	vocabularyrepo "github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/wordcurve-backend/internal/config"
	"github.com/heartmarshall/wordcurve-backend/internal/service/catalog"
	"github.com/heartmarshall/wordcurve-backend/internal/service/review"
	"github.com/heartmarshall/wordcurve-backend/internal/service/review/curve"
	"github.com/heartmarshall/wordcurve-backend/internal/service/session"
	"github.com/heartmarshall/wordcurve-backend/pkg/dayutil"
)

// App holds the assembled application: configuration, connections, and the
// service layer. Transports (HTTP, CLI) are built on top of it.
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool

	Catalog *catalog.Service
	Review  *review.Service
	Session *session.Service
}

// New loads configuration, connects to the database, and wires the services.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	tz := dayutil.ParseTimezone(cfg.SRS.Timezone)

	vocabRepo := vocabularyrepo.New(pool)
	progRepo := progressrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	curveParams := curve.Params{MaxIntervalDays: cfg.SRS.MaxIntervalDays}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Unix())))

	return &App{
		Config:  cfg,
		Log:     logger,
		Pool:    pool,
		Catalog: catalog.NewService(logger, vocabRepo, progRepo, txm),
		Review:  review.NewService(logger, vocabRepo, progRepo, txm, curveParams, tz),
		Session: session.NewService(logger, vocabRepo, progRepo, rng, tz, cfg.SRS.MaxSessionSize),
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
