package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/watergrid/meter-analytics-api/infrastructure/database/postgres"
	"github.com/watergrid/meter-analytics-api/infrastructure/repository"
	"github.com/watergrid/meter-analytics-api/internal/api"
	"github.com/watergrid/meter-analytics-api/internal/config"
	"github.com/watergrid/meter-analytics-api/internal/scheduler"
	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	meterReadingRepo := repository.NewMeterReadingRepository(pgConn)
	reportService := reporting.NewService(meterReadingRepo)

	statsSnapshotService := scheduler.NewStatsSnapshotService(reportService, cfg)
	if err := statsSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the stats snapshot job")
	}

	server, err := api.New(cfg, reportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
