package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/integrator/portal"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/repository"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
	"github.com/vfg2006/cosmetics-portal-api/pkg/utils"
)

// OrderSyncConfig representa a configuração do agendador de pedidos
type OrderSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// OrderSyncService importa periodicamente os pedidos do portal para o banco
type OrderSyncService struct {
	scheduler *gocron.Scheduler
	config    OrderSyncConfig
	orderRepo repository.OrderRepository
	portal    portal.PortalIntegrator
	state     syncState
	now       func() time.Time
}

func NewOrderSyncService(
	orderRepo repository.OrderRepository,
	portalService portal.PortalIntegrator,
	cfg *config.Config,
) *OrderSyncService {
	syncConfig := OrderSyncConfig{
		CronSchedule: cfg.OrderSync.CronSchedule,
		LookbackDays: cfg.OrderSync.LookbackDays,
		SyncEnabled:  cfg.OrderSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de pedidos carregada")

	return &OrderSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		orderRepo: orderRepo,
		portal:    portalService,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de pedidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncOrders(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de pedidos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncOrders busca os pedidos dos últimos LookbackDays dias (até ontem) e grava no banco
func (s *OrderSyncService) SyncOrders(ctx context.Context) (err error) {
	runID, _ := utils.GenerateID()
	if !s.state.begin(runID, s.now()) {
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}
	defer func() {
		s.state.finish(s.now(), err)
	}()

	start, end := s.period()
	logger := logrus.WithFields(logrus.Fields{
		"job":        "order_sync",
		"run_id":     runID,
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	})
	logger.Info("Iniciando sincronização de pedidos")

	startTime := time.Now()

	orders, err := s.portal.GetOrders(ctx, start, end)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar pedidos no portal")
		return fmt.Errorf("erro ao buscar pedidos no portal: %w", err)
	}

	malformed := 0
	for _, order := range orders {
		if !order.IsValid() {
			malformed++
		}
	}

	saved, err := s.orderRepo.SaveOrUpdate(ctx, orders)
	if err != nil {
		logger.WithError(err).Error("Erro ao salvar pedidos no banco de dados")
		return fmt.Errorf("erro ao salvar pedidos: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"orders_received":  len(orders),
		"orders_saved":     saved,
		"orders_malformed": malformed,
		"duration":         time.Since(startTime).String(),
	}).Info("Sincronização de pedidos concluída")

	return nil
}

func (s *OrderSyncService) period() (time.Time, time.Time) {
	end := utils.Yesterday(s.now())
	days := max(s.config.LookbackDays, 1)
	return end.AddDate(0, 0, -(days - 1)), end
}

// TriggerManualSync inicia manualmente uma sincronização de pedidos
func (s *OrderSyncService) TriggerManualSync() error {
	if s.state.isRunning() {
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando sincronização manual de pedidos")
	go func() {
		if err := s.SyncOrders(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de pedidos")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	status := s.state.snapshot()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_lookback_days"] = s.config.LookbackDays
	return status
}
