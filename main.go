package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/chameleon-site/api"
	"github.com/rpupo63/chameleon-site/config"
	"github.com/rpupo63/chameleon-site/database"
	"github.com/rpupo63/chameleon-site/models"
	"github.com/rpupo63/chameleon-site/services"
)

func main() {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}
	setupLogger(c)

	log.Info().Msg("Initializing app...")

	ctx := context.Background()

	var getter config.ParameterGetter
	if config.GetString(c, "DATABASE_URL_SSM_PARAM", "") != "" {
		if getter, err = config.NewParameterGetter(ctx); err != nil {
			log.Fatal().Err(err).Msg("Error creating parameter store client")
		}
	}
	dsn, err := config.ResolveDatabaseURL(ctx, c, getter)
	if err != nil {
		log.Fatal().Err(err).Msg("Error resolving database URL")
	}

	if config.GetBool(c, "RUN_MIGRATIONS", false) {
		log.Info().Msg("Running migrations...")
		if err := database.RunMigrations(dsn); err != nil {
			log.Fatal().Err(err).Msg("Error running migrations")
		}
	}

	db, err := database.Open(ctx, database.Options{
		DSN:             dsn,
		ReplicaDSNs:     config.GetStringSlice(c, "DATABASE_REPLICA_URLS", nil),
		MaxOpenConns:    config.GetInt(c, "DB_MAX_OPEN_CONNS", 20),
		ConnMaxIdleTime: config.GetDuration(c, "DB_CONN_MAX_IDLE_TIME", 30*time.Second),
		ConnectTimeout:  config.GetDuration(c, "DB_CONNECT_TIMEOUT", 5*time.Second),
		SlowThreshold:   config.GetDuration(c, "DB_SLOW_QUERY_THRESHOLD", 200*time.Millisecond),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)
	defer currentDB.Close()

	// If seeding, load the sample content and exit
	if config.GetBool(c, "RUN_SEED", false) {
		log.Info().Msg("Seeding database...")
		if err := database.Seed(ctx, db, database.DefaultSeedData()); err != nil {
			log.Fatal().Err(err).Msg("Error seeding database")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		if err := models.LogColumnMismatchReport(db); err != nil {
			log.Fatal().Err(err).Msg("Error generating column mismatch report")
		}
		return
	}

	vibes := services.NewVibeCache(currentDB.VibeConfigRepo())
	if err := vibes.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error loading vibe configs")
	}

	assets, err := newAssetStore(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring asset store")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.NewBackend(currentDB, vibes, assets), c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogger writes human-readable logs in development and JSON in production.
func setupLogger(c map[string]string) {
	level, err := zerolog.ParseLevel(config.GetString(c, "LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.IsProduction(c) {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

func newAssetStore(ctx context.Context, c map[string]string) (services.AssetStore, error) {
	if bucket := config.GetString(c, "ASSETS_S3_BUCKET", ""); bucket != "" {
		log.Info().Str("bucket", bucket).Msg("Serving assets from S3")
		store, err := services.NewS3AssetsFromEnv(ctx, bucket, config.GetString(c, "ASSETS_S3_PREFIX", ""))
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	dir := config.GetString(c, "ASSETS_DIR", "public/assets")
	log.Info().Str("dir", dir).Msg("Serving assets from local directory")
	return services.NewLocalAssets(dir), nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
