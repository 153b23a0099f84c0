package scheduling

import (
	"testing"
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/repository/mocks"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*FollowUpService, *mocks.MockFollowUpRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockFollowUpRepository(ctrl)

	service := NewFollowUpService(mockRepo, log.SetupTestLogger())
	service.now = func() time.Time {
		return date(2024, time.June, 15)
	}

	return service, mockRepo
}

func TestScheduleForSale_CriaCadeiaCompleta(t *testing.T) {
	service, mockRepo := newTestService(t)

	event := domain.SaleEvent{
		AppointmentID: 42,
		ClientName:    "Mario Rossi",
		SaleDate:      date(2024, time.January, 10),
		Sold:          true,
	}

	mockRepo.EXPECT().
		ExistsByAppointmentAndSequence(42, gomock.Any()).
		Return(false, nil).
		Times(ChainLength)

	mockRepo.EXPECT().
		CreateFollowUp(gomock.Any()).
		DoAndReturn(func(followUp *domain.FollowUp) (*domain.FollowUp, error) {
			assert.Equal(t, 42, followUp.AppointmentID)
			assert.Equal(t, "Mario Rossi", followUp.ClientName)
			assert.False(t, followUp.Done)
			return followUp, nil
		}).
		Times(ChainLength)

	created, err := service.ScheduleForSale(event)

	require.NoError(t, err)
	assert.Len(t, created, ChainLength)
	assert.Equal(t, 1, created[0].Sequence)
	assert.Equal(t, date(2024, time.January, 12), created[0].DueDate)
	assert.Equal(t, ChainLength, created[len(created)-1].Sequence)
}

func TestScheduleForSale_IdempotenteComCadeiaParcial(t *testing.T) {
	service, mockRepo := newTestService(t)

	event := domain.SaleEvent{
		AppointmentID: 42,
		ClientName:    "Mario Rossi",
		SaleDate:      date(2024, time.January, 10),
		Sold:          true,
	}

	// As três primeiras sequências já existem de uma execução anterior
	for sequence := 1; sequence <= ChainLength; sequence++ {
		mockRepo.EXPECT().
			ExistsByAppointmentAndSequence(42, sequence).
			Return(sequence <= 3, nil)
	}

	mockRepo.EXPECT().
		CreateFollowUp(gomock.Any()).
		DoAndReturn(func(followUp *domain.FollowUp) (*domain.FollowUp, error) {
			assert.Greater(t, followUp.Sequence, 3)
			return followUp, nil
		}).
		Times(ChainLength - 3)

	created, err := service.ScheduleForSale(event)

	require.NoError(t, err)
	assert.Len(t, created, ChainLength-3)
}

func TestScheduleForSale_RejeitaAppuntamentoNaoVendido(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ScheduleForSale(domain.SaleEvent{
		AppointmentID: 42,
		SaleDate:      date(2024, time.January, 10),
		Sold:          false,
	})

	assert.ErrorIs(t, err, ErrAppointmentNotSold)
}

func TestScheduleForSale_RejeitaDataDeVendaZerada(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ScheduleForSale(domain.SaleEvent{
		AppointmentID: 42,
		Sold:          true,
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCompleteFollowUp(t *testing.T) {
	tests := []struct {
		name              string
		setup             func(mockRepo *mocks.MockFollowUpRepository)
		expectedErr       error
		expectedExtension bool
	}{
		{
			name: "Conclusão simples no meio da cadeia não estende",
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				mockRepo.EXPECT().GetFollowUpByID(7).Return(&domain.FollowUp{
					ID: 7, AppointmentID: 42, Sequence: 3,
					DueDate: date(2024, time.April, 10),
				}, nil)
				mockRepo.EXPECT().UpdateFollowUp(gomock.Any()).Return(nil)
				// Último da cadeia é outro registro: nada a estender
				mockRepo.EXPECT().LastOfChain(42).Return(&domain.FollowUp{
					ID: 20, AppointmentID: 42, Sequence: 14,
					DueDate: date(2026, time.December, 27),
				}, nil)
			},
		},
		{
			name: "Conclusão do último de cadeia madura gera extensão anual",
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				last := &domain.FollowUp{
					ID: 20, AppointmentID: 42, Sequence: 14,
					DueDate:    date(2026, time.December, 27),
					ClientName: "Mario Rossi",
				}
				mockRepo.EXPECT().GetFollowUpByID(7).Return(last, nil)
				mockRepo.EXPECT().UpdateFollowUp(gomock.Any()).Return(nil)
				mockRepo.EXPECT().LastOfChain(42).Return(last, nil)
				mockRepo.EXPECT().
					CreateFollowUp(gomock.Any()).
					DoAndReturn(func(followUp *domain.FollowUp) (*domain.FollowUp, error) {
						assert.Equal(t, 15, followUp.Sequence)
						assert.Equal(t, date(2027, time.December, 27), followUp.DueDate)
						assert.Equal(t, "Mario Rossi", followUp.ClientName)
						return followUp, nil
					})
			},
			expectedExtension: true,
		},
		{
			name: "Conclusão do último de cadeia imatura não estende",
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				last := &domain.FollowUp{
					ID: 7, AppointmentID: 42, Sequence: 4,
					DueDate: date(2024, time.July, 10),
				}
				mockRepo.EXPECT().GetFollowUpByID(7).Return(last, nil)
				mockRepo.EXPECT().UpdateFollowUp(gomock.Any()).Return(nil)
				mockRepo.EXPECT().LastOfChain(42).Return(last, nil)
			},
		},
		{
			name: "Follow-up inexistente",
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				mockRepo.EXPECT().GetFollowUpByID(7).Return(nil, nil)
			},
			expectedErr: ErrFollowUpNotFound,
		},
		{
			name: "Follow-up já concluído",
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				mockRepo.EXPECT().GetFollowUpByID(7).Return(&domain.FollowUp{
					ID: 7, AppointmentID: 42, Sequence: 3, Done: true,
				}, nil)
			},
			expectedErr: ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newTestService(t)
			tt.setup(mockRepo)

			completed, extension, err := service.CompleteFollowUp(7, "contato feito")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, completed.Done)
			assert.Equal(t, "contato feito", completed.Notes)

			if tt.expectedExtension {
				require.NotNil(t, extension)
				assert.False(t, extension.Done)
			} else {
				assert.Nil(t, extension)
			}
		})
	}
}

func TestPostponeFollowUp(t *testing.T) {
	tests := []struct {
		name        string
		newDate     time.Time
		setup       func(mockRepo *mocks.MockFollowUpRepository)
		expectedErr error
	}{
		{
			name:    "Adiamento para data futura",
			newDate: date(2024, time.July, 1),
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				mockRepo.EXPECT().GetFollowUpByID(7).Return(&domain.FollowUp{
					ID: 7, AppointmentID: 42, Sequence: 3,
					DueDate: date(2024, time.June, 20),
				}, nil)
				mockRepo.EXPECT().UpdateFollowUp(gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Data no passado rejeitada",
			newDate: date(2024, time.June, 1),
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				mockRepo.EXPECT().GetFollowUpByID(7).Return(&domain.FollowUp{
					ID: 7, AppointmentID: 42, Sequence: 3,
				}, nil)
			},
			expectedErr: ErrPastDate,
		},
		{
			name:    "Follow-up concluído não pode ser adiado",
			newDate: date(2024, time.July, 1),
			setup: func(mockRepo *mocks.MockFollowUpRepository) {
				mockRepo.EXPECT().GetFollowUpByID(7).Return(&domain.FollowUp{
					ID: 7, Done: true,
				}, nil)
			},
			expectedErr: ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newTestService(t)
			tt.setup(mockRepo)

			followUp, err := service.PostponeFollowUp(7, tt.newDate)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.newDate, followUp.DueDate)
		})
	}
}

func TestStatistics(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().CountByStatus().Return(6, 4, 2, nil)

	stats, err := service.Statistics()

	require.NoError(t, err)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 4, stats.Completed)
	assert.Equal(t, 6, stats.Pending)
	assert.Equal(t, 2, stats.Overdue)
	assert.Equal(t, 40.0, stats.CompletionRate)
}
