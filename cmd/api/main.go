package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/infrastructure/database/postgres"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/ads-reporter/infrastructure/repository"
	"github.com/vfg2006/ads-reporter/internal/api"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/scheduler"
	"github.com/vfg2006/ads-reporter/internal/usecases/account"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	telegramClient := telegramclient.NewClient(cfg)
	telegramIntegrator := telegram.New(cfg, telegramClient)

	accountService := account.New(accountRepo)
	reportService := reporting.NewService(cfg, metaIntegrator, accountRepo)

	dailyReportService := scheduler.NewDailyReportService(reportService, telegramIntegrator, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		accountService,
		dailyReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
