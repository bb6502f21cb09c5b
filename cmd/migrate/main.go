package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
)

// migrate [up|down|status|reset]
func main() {
	if _, err := dotenv.Load(".env"); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{Level: os.Getenv("LOG_LEVEL")})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	command := postgres.MigrateUp
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(log, command); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
}

func run(log logger.Logger, command string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return postgres.Migrate(ctx, log, pool, command)
}
