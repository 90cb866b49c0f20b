// Command popdb fills the volontulo database with generated users,
// organizations and offers.
//
// It is configured through environment variables, optionally read from a
// .env file in the working directory:
//
//	APP_ENV                  development, staging or production
//	PG_CONN_URL              PostgreSQL URL, required unless POPDB_DRY_RUN
//	POPDB_USERS              number of users (20)
//	POPDB_ORGANIZATIONS      number of organizations (10)
//	POPDB_OFFERS             number of offers (30)
//	POPDB_MAX_VOLUNTEERS     volunteers linked per offer at most (5)
//	POPDB_SEED               seed for reproducible runs, 0 is random
//	POPDB_DRY_RUN            seed an in-memory store instead of the database
//	ORGNAME_VOCABULARY_PATH  YAML file replacing the organization name vocabulary
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/volontulo/seedkit/pkg/config"
	"github.com/volontulo/seedkit/pkg/logger"
	"github.com/volontulo/seedkit/pkg/orgname"
	"github.com/volontulo/seedkit/pkg/pg"
	"github.com/volontulo/seedkit/svc/volontulo"
	"github.com/volontulo/seedkit/svc/volontulo/factory"
	"github.com/volontulo/seedkit/svc/volontulo/memstore"
	"github.com/volontulo/seedkit/svc/volontulo/pgstore"
	"github.com/volontulo/seedkit/svc/volontulo/seed"
)

type appConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	DryRun         bool   `env:"POPDB_DRY_RUN" envDefault:"false"`
	VocabularyPath string `env:"ORGNAME_VOCABULARY_PATH"`

	Seed     seed.Config
	Postgres pg.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, opts ...config.Option) error {
	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "popdb"),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(logger.RunIDExtractor),
	)

	var factoryOpts []factory.Option
	if cfg.VocabularyPath != "" {
		vocab, err := orgname.LoadVocabularyFile(cfg.VocabularyPath)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "using custom vocabulary",
			slog.String("path", cfg.VocabularyPath),
			logger.Count("nouns", len(vocab.Nouns)),
		)
		factoryOpts = append(factoryOpts, factory.WithNameVocabulary(vocab))
	}

	var store volontulo.Storage
	if cfg.DryRun {
		log.InfoContext(ctx, "dry run, records are kept in memory")
		store = memstore.New()
	} else {
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Healthcheck(pool)(ctx); err != nil {
			log.ErrorContext(ctx, "database is not reachable", logger.Error(err))
			return err
		}

		migrateCfg := cfg.Postgres
		migrateCfg.MigrationsDir = pgstore.MigrationsDir
		if err := pg.Migrate(ctx, pool, migrateCfg, pgstore.Migrations, log); err != nil {
			return err
		}
		store = pgstore.New(pool)
	}

	if err := seed.Run(ctx, store, cfg.Seed, stdout, log, factoryOpts...); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}
	return nil
}
