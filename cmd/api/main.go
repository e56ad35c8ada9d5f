package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/integrator/portal"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/integrator/portal/portalclient"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/migration/script"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/repository"
	"github.com/vfg2006/cosmetics-portal-api/internal/api"
	"github.com/vfg2006/cosmetics-portal-api/internal/api/handler"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
	"github.com/vfg2006/cosmetics-portal-api/internal/scheduler"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/comparing"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/ranking"
	"github.com/vfg2006/cosmetics-portal-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if err := log.Setup(cfg.App.LogLevel, cfg.App.IsDevelopment()); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup(logrus.InfoLevel.String(), cfg.App.IsDevelopment())
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	vendorRankingRepo := repository.NewVendorRankingRepository(pgConn)

	if cfg.Database.AutoMigrate {
		if err := script.Migrate(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao migrar o banco de dados")
		}
	}

	if cfg.Database.SeedDemo {
		if _, err := script.SeedDemo(ctx, orderRepo, time.Now()); err != nil {
			logrus.WithError(err).Error("Erro ao gravar carga de demonstração")
		}
	}

	portalClient := portalclient.NewClient(cfg)
	portalIntegrator := portal.New(portalClient)

	comparer := comparing.NewService(orderRepo)
	rankingService := ranking.NewVendorRankingService(vendorRankingRepo)
	tokenValidator := authenticating.NewService(cfg)

	// Inicializa os agendadores
	orderSyncService := scheduler.NewOrderSyncService(orderRepo, portalIntegrator, cfg)
	vendorRankingSyncService := scheduler.NewVendorRankingService(orderRepo, vendorRankingRepo, cfg)

	cronServices := handler.CronJobServices{
		handler.CronJobTypeOrders:        orderSyncService,
		handler.CronJobTypeVendorRanking: vendorRankingSyncService,
	}

	// Inicia os agendadores em background
	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de pedidos iniciado com sucesso")
	}

	if err := vendorRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de vendedores")
	} else {
		logrus.Info("Agendador do ranking de vendedores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		comparer,
		rankingService,
		tokenValidator,
		pgConn,
		cronServices,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
