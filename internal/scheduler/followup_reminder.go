// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/infrastructure/notifier"
	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/config"
	"github.com/AirPlr/smart-control-api/internal/usecases/scheduling"
)

// FollowUpReminderConfig representa a configuração do agendador de lembretes
type FollowUpReminderConfig struct {
	CronSchedule    string
	DaysAhead       int
	ReminderEnabled bool
}

// FollowUpReminderService envia todo dia, por e-mail, a lista de follow-ups
// em scadenza para os usuários ativos
type FollowUpReminderService struct {
	scheduler         *gocron.Scheduler
	config            FollowUpReminderConfig
	schedulingService scheduling.SchedulingService
	userRepo          repository.UserRepository
	mailer            notifier.Mailer
	runRunning        bool
	runMutex          sync.Mutex
	lastRunStartedAt  time.Time
}

// NewFollowUpReminderService cria uma nova instância do serviço de lembretes
func NewFollowUpReminderService(
	schedulingService scheduling.SchedulingService,
	userRepo repository.UserRepository,
	mailer notifier.Mailer,
	appConfig *config.Config,
) *FollowUpReminderService {
	reminderConfig := FollowUpReminderConfig{
		CronSchedule:    appConfig.FollowUpReminder.CronSchedule,
		DaysAhead:       appConfig.FollowUpReminder.DaysAhead,
		ReminderEnabled: appConfig.FollowUpReminder.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    reminderConfig.CronSchedule,
		"days_ahead":       reminderConfig.DaysAhead,
		"reminder_enabled": reminderConfig.ReminderEnabled,
	}).Info("Configuração do agendador de lembretes de follow-up carregada")

	return &FollowUpReminderService{
		scheduler:         scheduler,
		config:            reminderConfig,
		schedulingService: schedulingService,
		userRepo:          userRepo,
		mailer:            mailer,
		runRunning:        false,
	}
}

// Start inicia o agendador
func (s *FollowUpReminderService) Start(ctx context.Context) error {
	if !s.config.ReminderEnabled {
		logrus.Info("Lembretes de follow-up desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de lembretes de follow-up")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sendReminders()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembretes de follow-up: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de lembretes de follow-up")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara manualmente o envio de lembretes
func (s *FollowUpReminderService) TriggerManualRun() error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		return fmt.Errorf("envio de lembretes já em andamento desde %s",
			s.lastRunStartedAt.Format(time.RFC3339))
	}
	s.runMutex.Unlock()

	go s.sendReminders()
	return nil
}

// GetStatus retorna o estado atual do agendador de lembretes
func (s *FollowUpReminderService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled": s.config.ReminderEnabled,
		"cron":    s.config.CronSchedule,
		"running": s.runRunning,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}

	return status
}

func (s *FollowUpReminderService) sendReminders() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Envio de lembretes já em andamento, ignorando")
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

	followUps, err := s.schedulingService.ListUpcoming(s.config.DaysAhead)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar follow-ups em scadenza para os lembretes")
		return
	}

	if len(followUps) == 0 {
		logrus.Info("Nenhum follow-up em scadenza na janela de lembretes")
		return
	}

	users, err := s.userRepo.ListUser()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar destinatários dos lembretes")
		return
	}

	sent := 0
	for _, user := range users {
		if !user.Active {
			continue
		}

		if err := s.mailer.SendFollowUpReminder(user.Email, followUps); err != nil {
			logrus.WithError(err).Warnf("Erro ao enviar lembrete para %s", user.Email)
			continue
		}

		sent++
	}

	logrus.WithFields(logrus.Fields{
		"followups": len(followUps),
		"sent":      sent,
	}).Info("Envio de lembretes de follow-up concluído")
}
