// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
)

var ErrReloadInProgress = errors.New("dataset reload already in progress")

type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	reloader            dashboard.Reloader
	config              DatasetReloadConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDatasetID       string
	lastError           string
}

func NewDatasetReloadService(reloader dashboard.Reloader, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.DatasetReload.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		reloader:  reloader,
		config:    reloadConfig,
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.ReloadDataset(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset recarrega o dataset de forma síncrona; retorna ErrReloadInProgress se já houver uma recarga
func (s *DatasetReloadService) ReloadDataset(ctx context.Context) (*domain.DatasetInfo, error) {
	if !s.begin() {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil, ErrReloadInProgress
	}

	return s.run(ctx)
}

// TriggerManualSync inicia manualmente uma recarga em background; retorna false se já houver uma em andamento
func (s *DatasetReloadService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if _, err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_dataset_id":        s.lastDatasetID,
		"last_error":             s.lastError,
	}
}

func (s *DatasetReloadService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *DatasetReloadService) run(ctx context.Context) (*domain.DatasetInfo, error) {
	info, err := s.reloader.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	s.lastError = ""
	s.lastDatasetID = info.ID

	logrus.WithFields(logrus.Fields{
		"dataset_id":   info.ID,
		"sales_rows":   info.SalesRows,
		"holiday_rows": info.HolidayRows,
	}).Info("Recarga do dataset concluída")

	return info, nil
}
