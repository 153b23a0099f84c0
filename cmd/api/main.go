package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/infrastructure/database/postgres"
	"github.com/AirPlr/smart-control-api/infrastructure/notifier"
	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/api"
	"github.com/AirPlr/smart-control-api/internal/config"
	"github.com/AirPlr/smart-control-api/internal/scheduler"
	"github.com/AirPlr/smart-control-api/internal/usecases/appointments"
	"github.com/AirPlr/smart-control-api/internal/usecases/authenticating"
	"github.com/AirPlr/smart-control-api/internal/usecases/billing"
	"github.com/AirPlr/smart-control-api/internal/usecases/hierarchy"
	"github.com/AirPlr/smart-control-api/internal/usecases/reporting"
	"github.com/AirPlr/smart-control-api/internal/usecases/scheduling"
	"github.com/AirPlr/smart-control-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a configuração")
	}

	// Configurar o nível de log a partir da configuração
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

	userRepo := repository.NewUserRepository(pgConn)
	consultantRepo := repository.NewConsultantRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	followUpRepo := repository.NewFollowUpRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	calendarNoteRepo := repository.NewCalendarNoteRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	schedulingService := scheduling.NewFollowUpService(followUpRepo, log.L)
	appointmentService := appointments.NewAppointmentService(appointmentRepo, clientRepo, schedulingService, log.L)
	hierarchyService := hierarchy.NewConsultantService(consultantRepo, appointmentRepo, log.L)
	billingService := billing.NewCommissionService(consultantRepo, appointmentRepo, log.L)
	reportingService := reporting.NewReportingService(appointmentRepo, consultantRepo, hierarchyService, log.L)

	mailer := notifier.NewMailer(cfg.SMTP)

	// Inicializa os agendadores
	followUpReminderService := scheduler.NewFollowUpReminderService(
		schedulingService,
		userRepo,
		mailer,
		cfg,
	)

	yearlyResetService := scheduler.NewYearlyResetService(
		consultantRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := followUpReminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembretes de follow-up")
	} else {
		logrus.Info("Agendador de lembretes de follow-up iniciado com sucesso")
	}

	if err := yearlyResetService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reset anual do acumulado")
	} else {
		logrus.Info("Agendador de reset anual do acumulado iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		appointmentService,
		schedulingService,
		hierarchyService,
		billingService,
		reportingService,
		clientRepo,
		calendarNoteRepo,
		followUpReminderService,
		yearlyResetService,
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
