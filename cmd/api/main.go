package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice"
	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice/mlclient"
	"github.com/retail-analytics/dashboard-api/infrastructure/repository"
	"github.com/retail-analytics/dashboard-api/internal/api"
	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/internal/scheduler"
	"github.com/retail-analytics/dashboard-api/internal/usecases/analytics"
	"github.com/retail-analytics/dashboard-api/internal/usecases/catalog"
	"github.com/retail-analytics/dashboard-api/internal/usecases/clustering"
	"github.com/retail-analytics/dashboard-api/internal/usecases/forecasting"
	"github.com/retail-analytics/dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	dateRepo := repository.NewDateRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	salesHistoryRepo := repository.NewSalesHistoryRepository(pgConn)
	clusterRepo := repository.NewClusterRepository(pgConn)

	mlClient, err := mlclient.NewClient(cfg.MLService)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do serviço de ML")
	}
	mlIntegrator := mlservice.New(mlClient)

	catalogService := catalog.NewService(customerRepo, productRepo, dateRepo)
	analyticsService := analytics.NewService(analyticsRepo)
	forecastService := forecasting.NewService(cfg, mlIntegrator, salesHistoryRepo)
	clusterService := clustering.NewService(mlIntegrator, clusterRepo)

	// Sonda de disponibilidade do serviço de ML, lida por /api/health
	mlProbe := scheduler.NewMLServiceProbe(mlIntegrator, cfg)
	if err := mlProbe.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a sonda do serviço de ML")
	} else {
		logrus.Info("Sonda do serviço de ML iniciada com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Catalog:    catalogService,
		Analytics:  analyticsService,
		Forecaster: forecastService,
		Clusterer:  clusterService,
		MLProbe:    mlProbe,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
