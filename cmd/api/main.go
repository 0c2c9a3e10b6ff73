// @title        PulsePoint API
// @version      1.0
// @description  Daily wellness check-ins with workplace aggregates for managers.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsepoint/wellness-api/internal/api"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
	"github.com/pulsepoint/wellness-api/internal/core/service"
	mongostore "github.com/pulsepoint/wellness-api/internal/infrastructure/db/mongo"
	"github.com/pulsepoint/wellness-api/internal/infrastructure/db/postgres"
	redisstore "github.com/pulsepoint/wellness-api/internal/infrastructure/db/redis"
	"github.com/pulsepoint/wellness-api/internal/infrastructure/http/handlers"
	"github.com/pulsepoint/wellness-api/internal/pkg/config"
	"github.com/pulsepoint/wellness-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// stores groups the repositories of the configured database driver.
type stores struct {
	users      ports.UserRepository
	roles      ports.RoleRepository
	workplaces ports.WorkplaceRepository
	entries    ports.EntryRepository
	pinger     handlers.Pinger
	close      func(context.Context) error
}

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "pulsepoint-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, err := service.NewTokenService(cfg.JWT.Key, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token service")
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open database")
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connection established")

	seeder := service.NewSeeder(st.roles, st.users, st.workplaces, logger.Component("seeder"))
	if err := seeder.SeedRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed roles")
	}
	if err := seeder.SeedAdmin(ctx, service.AdminSeed{
		Username:  cfg.Admin.Username,
		Password:  cfg.Admin.Password,
		Workplace: cfg.Admin.Workplace,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}

	e := api.NewRouter(api.Deps{
		Auth:       service.NewAuthService(st.users, st.workplaces, tokens, logger.Component("auth")),
		Entries:    service.NewEntryService(st.entries, redisstore.NewIdempotencyStore(rdb), logger.Component("entries")),
		Stats:      service.NewStatsService(st.users, st.workplaces, st.entries, logger.Component("stats")),
		Workplaces: service.NewWorkplaceService(st.workplaces, logger.Component("workplaces")),
		Tokens:     tokens,
		Readiness: map[string]handlers.Pinger{
			cfg.Database.Driver: st.pinger,
			"redis":             redisstore.NewPinger(rdb),
		},
		CORSOrigin: cfg.CORSOrigin,
		Log:        logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Database.URL, Database: cfg.Database.Name})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Database.Name).Msg("mongodb connection established")

		users := mongostore.NewUserRepository(db)
		return &stores{
			users:      users,
			roles:      users,
			workplaces: mongostore.NewWorkplaceRepository(db),
			entries:    mongostore.NewEntryRepository(db),
			pinger:     mongostore.NewPinger(db),
			close:      client.Disconnect,
		}, nil

	default:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.URL, LogSQL: cfg.IsDevelopment()})
		if err != nil {
			return nil, err
		}
		log.Info().Msg("postgres connection established")

		users := postgres.NewUserRepository(db)
		return &stores{
			users:      users,
			roles:      users,
			workplaces: postgres.NewWorkplaceRepository(db),
			entries:    postgres.NewEntryRepository(db),
			pinger:     postgres.NewPinger(db),
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	}
}
