package hierarchy

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

func newTestService(t *testing.T) (*ConsultantService, *mocks.MockConsultantRepository, *mocks.MockAppointmentRepository) {
	ctrl := gomock.NewController(t)
	mockConsultantRepo := mocks.NewMockConsultantRepository(ctrl)
	mockAppointmentRepo := mocks.NewMockAppointmentRepository(ctrl)

	service := NewConsultantService(mockConsultantRepo, mockAppointmentRepo, log.SetupTestLogger())

	return service, mockConsultantRepo, mockAppointmentRepo
}

func intPtr(v int) *int { return &v }

func TestDeleteConsultant(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mockConsultantRepo *mocks.MockConsultantRepository, mockAppointmentRepo *mocks.MockAppointmentRepository)
		expectedErr error
	}{
		{
			name: "Com responsável: vendas transferidas, subordinados sobem um nível",
			setup: func(mockConsultantRepo *mocks.MockConsultantRepository, mockAppointmentRepo *mocks.MockAppointmentRepository) {
				mockConsultantRepo.EXPECT().GetConsultantByID(5).Return(&domain.Consultant{
					ID: 5, Name: "Giulia Verdi", ParentID: intPtr(2),
				}, nil)
				mockAppointmentRepo.EXPECT().ReassignSold(5, 2).Return(int64(3), nil)
				mockConsultantRepo.EXPECT().ClearParent(5).Return(nil)
				mockConsultantRepo.EXPECT().DeleteConsultant(5).Return(nil)
			},
		},
		{
			name: "Sem responsável: nenhuma transferência, vendas ficam órfãs",
			setup: func(mockConsultantRepo *mocks.MockConsultantRepository, mockAppointmentRepo *mocks.MockAppointmentRepository) {
				mockConsultantRepo.EXPECT().GetConsultantByID(5).Return(&domain.Consultant{
					ID: 5, Name: "Giulia Verdi",
				}, nil)
				// ReassignSold não é chamado
				mockConsultantRepo.EXPECT().ClearParent(5).Return(nil)
				mockConsultantRepo.EXPECT().DeleteConsultant(5).Return(nil)
			},
		},
		{
			name: "Consultor inexistente",
			setup: func(mockConsultantRepo *mocks.MockConsultantRepository, _ *mocks.MockAppointmentRepository) {
				mockConsultantRepo.EXPECT().GetConsultantByID(5).Return(nil, nil)
			},
			expectedErr: ErrConsultantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockConsultantRepo, mockAppointmentRepo := newTestService(t)
			tt.setup(mockConsultantRepo, mockAppointmentRepo)

			err := service.DeleteConsultant(5)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGroupSales_SomaUmNivelApenas(t *testing.T) {
	service, mockConsultantRepo, mockAppointmentRepo := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(1).Return(&domain.Consultant{ID: 1}, nil)
	mockAppointmentRepo.EXPECT().CountMonthlySold(1, time.May, 2024).Return(4, nil)

	// Dois subordinados diretos; os subordinados deles não entram
	mockConsultantRepo.EXPECT().ListSubordinates(1).Return([]*domain.Consultant{
		{ID: 2, ParentID: intPtr(1)},
		{ID: 3, ParentID: intPtr(1)},
	}, nil)
	mockAppointmentRepo.EXPECT().CountMonthlySold(2, time.May, 2024).Return(2, nil)
	mockAppointmentRepo.EXPECT().CountMonthlySold(3, time.May, 2024).Return(1, nil)

	groupSales, err := service.GroupSales(1, time.May, 2024)

	require.NoError(t, err)
	assert.Equal(t, 4, groupSales.OwnSales)
	assert.Equal(t, 3, groupSales.SubordinateSales)
	assert.Equal(t, 7, groupSales.Total)
	assert.Equal(t, []int{2, 3}, groupSales.SubordinateIDs)
}

func TestGroupSales_SemSubordinados(t *testing.T) {
	service, mockConsultantRepo, mockAppointmentRepo := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(1).Return(&domain.Consultant{ID: 1}, nil)
	mockAppointmentRepo.EXPECT().CountMonthlySold(1, time.May, 2024).Return(4, nil)
	mockConsultantRepo.EXPECT().ListSubordinates(1).Return(nil, nil)

	groupSales, err := service.GroupSales(1, time.May, 2024)

	require.NoError(t, err)
	assert.Equal(t, 4, groupSales.Total)
	assert.Empty(t, groupSales.SubordinateIDs)
}

func TestChildrenIndex(t *testing.T) {
	service, mockConsultantRepo, _ := newTestService(t)

	mockConsultantRepo.EXPECT().ListConsultants().Return([]*domain.Consultant{
		{ID: 1},                   // raiz
		{ID: 2, ParentID: intPtr(1)},
		{ID: 3, ParentID: intPtr(1)},
		{ID: 4, ParentID: intPtr(2)},
	}, nil)

	index, err := service.ChildrenIndex()

	require.NoError(t, err)
	assert.Len(t, index, 2)
	assert.Len(t, index[1], 2)
	assert.Len(t, index[2], 1)
	assert.NotContains(t, index, 3)
}

func TestUpdateConsultant_Validacoes(t *testing.T) {
	tests := []struct {
		name        string
		req         *domain.UpdateConsultantRequest
		setup       func(mockConsultantRepo *mocks.MockConsultantRepository)
		expectedErr error
	}{
		{
			name: "Responsável igual ao próprio consultor",
			req:  &domain.UpdateConsultantRequest{ID: 5, ParentID: intPtr(5)},
			setup: func(mockConsultantRepo *mocks.MockConsultantRepository) {
				mockConsultantRepo.EXPECT().GetConsultantByID(5).Return(&domain.Consultant{ID: 5}, nil)
			},
			expectedErr: ErrSelfParent,
		},
		{
			name: "Responsável inexistente",
			req:  &domain.UpdateConsultantRequest{ID: 5, ParentID: intPtr(9)},
			setup: func(mockConsultantRepo *mocks.MockConsultantRepository) {
				mockConsultantRepo.EXPECT().GetConsultantByID(5).Return(&domain.Consultant{ID: 5}, nil)
				mockConsultantRepo.EXPECT().GetConsultantByID(9).Return(nil, nil)
			},
			expectedErr: ErrParentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockConsultantRepo, _ := newTestService(t)
			tt.setup(mockConsultantRepo)

			_, err := service.UpdateConsultant(tt.req)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCreateConsultant_ResponsavelValidado(t *testing.T) {
	service, mockConsultantRepo, _ := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(2).Return(&domain.Consultant{ID: 2}, nil)
	mockConsultantRepo.EXPECT().
		CreateConsultant(gomock.Any()).
		DoAndReturn(func(consultant *domain.Consultant) (*domain.Consultant, error) {
			consultant.ID = 10
			return consultant, nil
		})

	consultant, err := service.CreateConsultant(&domain.Consultant{
		Name: "Giulia Verdi", Position: "junior", ParentID: intPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, consultant.ID)
}
