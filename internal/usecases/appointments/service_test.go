package appointments

import (
	"testing"
	"time"

	repomocks "github.com/AirPlr/smart-control-api/infrastructure/repository/mocks"
	"github.com/AirPlr/smart-control-api/internal/domain"
	schedulingmocks "github.com/AirPlr/smart-control-api/internal/usecases/scheduling/mocks"
	"github.com/AirPlr/smart-control-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	appointmentRepo *repomocks.MockAppointmentRepository
	clientRepo      *repomocks.MockClientRepository
	scheduling      *schedulingmocks.MockSchedulingService
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		appointmentRepo: repomocks.NewMockAppointmentRepository(ctrl),
		clientRepo:      repomocks.NewMockClientRepository(ctrl),
		scheduling:      schedulingmocks.NewMockSchedulingService(ctrl),
	}

	service := NewAppointmentService(m.appointmentRepo, m.clientRepo, m.scheduling, log.SetupTestLogger())
	return service, m
}

func saleDate() time.Time {
	return time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
}

func TestMarkSold_ProduzEventoEAgendaCadeia(t *testing.T) {
	service, m := newTestService(t)

	appointment := &domain.Appointment{
		ID:          42,
		ClientName:  "Mario Rossi",
		PhoneNumber: "3331234567",
		Date:        saleDate(),
	}

	m.appointmentRepo.EXPECT().GetAppointmentByID(42).Return(appointment, nil)
	m.appointmentRepo.EXPECT().MarkSold(42).Return(nil)

	m.scheduling.EXPECT().
		ScheduleForSale(domain.SaleEvent{
			AppointmentID: 42,
			ClientName:    "Mario Rossi",
			SaleDate:      saleDate(),
			Sold:          true,
		}).
		Return([]*domain.FollowUp{{AppointmentID: 42, Sequence: 1}}, nil)

	// Cliente novo entra na anagrafe
	m.clientRepo.EXPECT().GetClientByPhone("3331234567").Return(nil, nil)
	m.clientRepo.EXPECT().
		CreateClient(gomock.Any()).
		DoAndReturn(func(client *domain.Client) (*domain.Client, error) {
			assert.Equal(t, "Mario Rossi", client.Name)
			assert.Equal(t, "3331234567", *client.PhoneNumber)
			return client, nil
		})

	event, followUps, err := service.MarkSold(42)

	require.NoError(t, err)
	assert.True(t, event.Sold)
	assert.Equal(t, saleDate(), event.SaleDate)
	assert.Len(t, followUps, 1)
}

func TestMarkSold_JaVendidoNaoRemarcaNemDuplicaAnagrafe(t *testing.T) {
	service, m := newTestService(t)

	appointment := &domain.Appointment{
		ID:          42,
		ClientName:  "Mario Rossi",
		PhoneNumber: "3331234567",
		Date:        saleDate(),
		Sold:        true,
	}

	m.appointmentRepo.EXPECT().GetAppointmentByID(42).Return(appointment, nil)
	// MarkSold no repositório não é chamado de novo

	m.scheduling.EXPECT().
		ScheduleForSale(gomock.Any()).
		Return(nil, nil) // cadeia completa: nada novo a criar

	m.clientRepo.EXPECT().
		GetClientByPhone("3331234567").
		Return(&domain.Client{ID: 7, Name: "Mario Rossi"}, nil)
	// CreateClient não é chamado

	event, followUps, err := service.MarkSold(42)

	require.NoError(t, err)
	assert.True(t, event.Sold)
	assert.Empty(t, followUps)
}

func TestMarkSold_AppuntamentoInexistente(t *testing.T) {
	service, m := newTestService(t)

	m.appointmentRepo.EXPECT().GetAppointmentByID(42).Return(nil, nil)

	_, _, err := service.MarkSold(42)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateAppointment_Validacoes(t *testing.T) {
	tests := []struct {
		name        string
		appointment *domain.Appointment
		expectedErr error
	}{
		{
			name:        "Nome do cliente obrigatório",
			appointment: &domain.Appointment{Type: domain.AppointmentTypeAssistance, Status: domain.AppointmentStatusToRecall},
			expectedErr: ErrMissingClientName,
		},
		{
			name:        "Tipologia inválida",
			appointment: &domain.Appointment{ClientName: "Mario Rossi", Type: "other", Status: domain.AppointmentStatusToRecall},
			expectedErr: ErrInvalidType,
		},
		{
			name:        "Situação inválida",
			appointment: &domain.Appointment{ClientName: "Mario Rossi", Type: domain.AppointmentTypeAssistance, Status: "other"},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:        "Richiamo sem data de richiamo",
			appointment: &domain.Appointment{ClientName: "Mario Rossi", Type: domain.AppointmentTypeAssistance, Status: domain.AppointmentStatusToRecall},
			expectedErr: ErrMissingRecallDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.CreateAppointment(tt.appointment)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestStats(t *testing.T) {
	service, m := newTestService(t)

	m.appointmentRepo.EXPECT().ListByConsultant(3).Return([]*domain.Appointment{
		{ID: 1, Type: domain.AppointmentTypeDemonstration, Sold: true},
		{ID: 2, Type: domain.AppointmentTypeDemonstration},
		{ID: 3, Type: domain.AppointmentTypeAssistance, Sold: true},
		{ID: 4, Type: domain.AppointmentTypeDemonstration, Sold: true},
	}, nil)

	stats, err := service.Stats(3)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Sold)
	assert.Equal(t, 75.0, stats.ConversionRate)
	assert.Equal(t, 1, stats.Assistance)
	assert.Equal(t, 3, stats.Demonstration)
}
