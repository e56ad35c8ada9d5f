package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/repository"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/ranking"
	"github.com/vfg2006/cosmetics-portal-api/pkg/utils"
)

type VendorRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// VendorRankingService recalcula o ranking de vendedores do mês de ontem
type VendorRankingService struct {
	scheduler   *gocron.Scheduler
	config      VendorRankingConfig
	orderRepo   repository.OrderRepository
	rankingRepo repository.VendorRankingRepository
	state       syncState
	now         func() time.Time
}

func NewVendorRankingService(
	orderRepo repository.OrderRepository,
	rankingRepo repository.VendorRankingRepository,
	cfg *config.Config,
) *VendorRankingService {
	rankingConfig := VendorRankingConfig{
		CronSchedule: cfg.VendorRanking.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.VendorRanking.SyncEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de vendedores carregada")

	return &VendorRankingService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      rankingConfig,
		orderRepo:   orderRepo,
		rankingRepo: rankingRepo,
		now:         time.Now,
	}
}

func (s *VendorRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de vendedores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de vendedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateVendorRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de vendedores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de vendedores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de vendedores")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *VendorRankingService) UpdateVendorRanking(ctx context.Context) (err error) {
	runID, _ := utils.GenerateID()
	if !s.state.begin(runID, s.now()) {
		logrus.Warn("Atualização do ranking de vendedores já está em execução")
		return ErrSyncAlreadyRunning
	}
	defer func() {
		s.state.finish(s.now(), err)
	}()

	_, err = s.processVendorRankingWithDate(ctx, s.now(), runID)
	return err
}

// processVendorRankingWithDate calcula e salva o ranking do mês de ontem em relação a processingDate
func (s *VendorRankingService) processVendorRankingWithDate(ctx context.Context, processingDate time.Time, runID string) ([]*domain.VendorRankingItem, error) {
	reference := utils.Yesterday(processingDate)
	month := reference.Format(ranking.MonthLayout)

	logger := logrus.WithFields(logrus.Fields{
		"job":    "vendor_ranking",
		"run_id": runID,
		"month":  month,
	})
	logger.Info("Iniciando atualização do ranking de vendedores")

	orders, err := s.orderRepo.ListOrdersByYears(ctx, []int{reference.Year()})
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar pedidos para o ranking de vendedores")
		return nil, err
	}

	previous, err := s.rankingRepo.ListByMonth(ctx, month)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar ranking anterior de vendedores")
		return nil, err
	}

	rankings := ranking.BuildVendorRanking(orders, reference, previous)
	if len(rankings) == 0 {
		logger.Info("Nenhum pedido no mês, ranking de vendedores não atualizado")
		return rankings, nil
	}

	if err := s.rankingRepo.SaveOrUpdateVendorRanking(ctx, rankings); err != nil {
		logger.WithError(err).Error("Erro ao salvar ranking de vendedores atualizado")
		return nil, err
	}

	logger.WithField("vendors", len(rankings)).Info("Ranking de vendedores atualizado")

	return rankings, nil
}

// TriggerManualSync inicia manualmente a atualização do ranking de vendedores
func (s *VendorRankingService) TriggerManualSync() error {
	if s.state.isRunning() {
		logrus.Info("Atualização do ranking de vendedores já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando atualização manual do ranking de vendedores")
	go func() {
		if err := s.UpdateVendorRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de vendedores")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *VendorRankingService) GetStatus() map[string]any {
	status := s.state.snapshot()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	return status
}
