package scheduler

import (
	"testing"
	"time"

	notifiermocks "github.com/AirPlr/smart-control-api/infrastructure/notifier/mocks"
	repomocks "github.com/AirPlr/smart-control-api/infrastructure/repository/mocks"
	"github.com/AirPlr/smart-control-api/internal/domain"
	schedulingmocks "github.com/AirPlr/smart-control-api/internal/usecases/scheduling/mocks"
	"go.uber.org/mock/gomock"
)

func newReminderService(t *testing.T) (*FollowUpReminderService, *schedulingmocks.MockSchedulingService, *repomocks.MockUserRepository, *notifiermocks.MockMailer) {
	ctrl := gomock.NewController(t)
	mockScheduling := schedulingmocks.NewMockSchedulingService(ctrl)
	mockUserRepo := repomocks.NewMockUserRepository(ctrl)
	mockMailer := notifiermocks.NewMockMailer(ctrl)

	service := &FollowUpReminderService{
		config: FollowUpReminderConfig{
			DaysAhead:       7,
			ReminderEnabled: true,
		},
		schedulingService: mockScheduling,
		userRepo:          mockUserRepo,
		mailer:            mockMailer,
	}

	return service, mockScheduling, mockUserRepo, mockMailer
}

func TestSendReminders_EnviaApenasParaUsuariosAtivos(t *testing.T) {
	service, mockScheduling, mockUserRepo, mockMailer := newReminderService(t)

	followUps := []*domain.FollowUp{
		{ID: 1, ClientName: "Mario Rossi", Sequence: 2, DueDate: time.Now().AddDate(0, 0, 3)},
	}

	mockScheduling.EXPECT().ListUpcoming(7).Return(followUps, nil)
	mockUserRepo.EXPECT().ListUser().Return([]*domain.User{
		{ID: 1, Email: "admin@example.com", Active: true},
		{ID: 2, Email: "inativo@example.com", Active: false},
		{ID: 3, Email: "dealer@example.com", Active: true},
	}, nil)

	mockMailer.EXPECT().SendFollowUpReminder("admin@example.com", followUps).Return(nil)
	mockMailer.EXPECT().SendFollowUpReminder("dealer@example.com", followUps).Return(nil)
	// inativo@example.com não recebe nada

	service.sendReminders()
}

func TestSendReminders_SemFollowUpsNaJanelaNaoEnviaNada(t *testing.T) {
	service, mockScheduling, _, _ := newReminderService(t)

	mockScheduling.EXPECT().ListUpcoming(7).Return(nil, nil)
	// ListUser e SendFollowUpReminder não são chamados

	service.sendReminders()
}

func TestSendReminders_ErroDeEnvioNaoInterrompeOsDemais(t *testing.T) {
	service, mockScheduling, mockUserRepo, mockMailer := newReminderService(t)

	followUps := []*domain.FollowUp{{ID: 1, ClientName: "Mario Rossi", Sequence: 2}}

	mockScheduling.EXPECT().ListUpcoming(7).Return(followUps, nil)
	mockUserRepo.EXPECT().ListUser().Return([]*domain.User{
		{ID: 1, Email: "a@example.com", Active: true},
		{ID: 2, Email: "b@example.com", Active: true},
	}, nil)

	mockMailer.EXPECT().SendFollowUpReminder("a@example.com", followUps).Return(assertAnError)
	mockMailer.EXPECT().SendFollowUpReminder("b@example.com", followUps).Return(nil)

	service.sendReminders()
}

var assertAnError = &mailError{}

type mailError struct{}

func (e *mailError) Error() string { return "smtp indisponível" }
