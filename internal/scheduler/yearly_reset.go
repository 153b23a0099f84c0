package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/config"
)

// YearlyResetConfig representa a configuração do reset anual
type YearlyResetConfig struct {
	CronSchedule string
	ResetEnabled bool
}

// YearlyResetService zera na virada do ano o acumulado de provvigioni de
// todos os consultores, que alimenta o teto de isenção dos fechamentos
type YearlyResetService struct {
	scheduler        *gocron.Scheduler
	config           YearlyResetConfig
	consultantRepo   repository.ConsultantRepository
	runRunning       bool
	runMutex         sync.Mutex
	lastRunStartedAt time.Time
}

// NewYearlyResetService cria uma nova instância do serviço de reset anual
func NewYearlyResetService(
	consultantRepo repository.ConsultantRepository,
	appConfig *config.Config,
) *YearlyResetService {
	resetConfig := YearlyResetConfig{
		CronSchedule: appConfig.YearlyReset.CronSchedule,
		ResetEnabled: appConfig.YearlyReset.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": resetConfig.CronSchedule,
		"reset_enabled": resetConfig.ResetEnabled,
	}).Info("Configuração do agendador de reset anual carregada")

	return &YearlyResetService{
		scheduler:      scheduler,
		config:         resetConfig,
		consultantRepo: consultantRepo,
		runRunning:     false,
	}
}

// Start inicia o agendador
func (s *YearlyResetService) Start(ctx context.Context) error {
	if !s.config.ResetEnabled {
		logrus.Info("Reset anual do acumulado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reset anual do acumulado")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.resetAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reset anual do acumulado: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reset anual do acumulado")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara manualmente o reset do acumulado
func (s *YearlyResetService) TriggerManualRun() error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		return fmt.Errorf("reset do acumulado já em andamento desde %s",
			s.lastRunStartedAt.Format(time.RFC3339))
	}
	s.runMutex.Unlock()

	go s.resetAll()
	return nil
}

// GetStatus retorna o estado atual do agendador de reset anual
func (s *YearlyResetService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled": s.config.ResetEnabled,
		"cron":    s.config.CronSchedule,
		"running": s.runRunning,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}

	return status
}

func (s *YearlyResetService) resetAll() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Reset do acumulado já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	affected, err := s.consultantRepo.ResetAllYearlyPay()
	if err != nil {
		logrus.WithError(err).Error("Erro ao zerar o acumulado anual dos consultores")
		return
	}

	logrus.WithField("consultants", affected).Info("Acumulado anual dos consultores zerado")
}
