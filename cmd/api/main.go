package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-reports-api/infrastructure/repository"
	"github.com/vfg2006/order-reports-api/internal/api"
	"github.com/vfg2006/order-reports-api/internal/config"
	"github.com/vfg2006/order-reports-api/internal/scheduler"
	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/order-reports-api/internal/usecases/site"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// O fuso de relatório é validado na subida para falhar cedo em vez de na
	// primeira requisição
	if _, err := time.LoadLocation(cfg.Reporting.Timezone); err != nil {
		logrus.WithError(err).Fatalf("Fuso horário de relatório inválido: %s", cfg.Reporting.Timezone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	siteRepo := repository.NewSiteRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)

	siteResolver := site.NewService(siteRepo)
	reportService := reporting.NewService(cfg, siteResolver, orderRepo)

	// Agendador do resumo diário de pedidos
	dailyDigestService := scheduler.NewDailyDigestService(siteRepo, reportService, cfg)
	if err := dailyDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	} else {
		logrus.Info("Agendador do resumo diário iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService)
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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
