package billing

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

func newTestService(t *testing.T) (*CommissionService, *mocks.MockConsultantRepository, *mocks.MockAppointmentRepository) {
	ctrl := gomock.NewController(t)
	mockConsultantRepo := mocks.NewMockConsultantRepository(ctrl)
	mockAppointmentRepo := mocks.NewMockAppointmentRepository(ctrl)

	service := NewCommissionService(mockConsultantRepo, mockAppointmentRepo, log.SetupTestLogger())
	service.now = func() time.Time {
		return time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)
	}

	return service, mockConsultantRepo, mockAppointmentRepo
}

func intPtr(v int) *int { return &v }

func TestGenerateStatement_SemEfeitoColateral(t *testing.T) {
	service, mockConsultantRepo, _ := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(3).Return(&domain.Consultant{
		ID: 3, Name: "Luca Bianchi", TotalYearlyPay: 4500,
	}, nil)
	// Nenhuma chamada a AddYearlyPay: gerar é apenas leitura

	response, err := service.GenerateStatement(&GenerateStatementRequest{
		ConsultantID: intPtr(3),
		Allocation: domain.PaymentAllocation{
			LineItems: map[int]float64{10: 1000, 11: 500},
			Extra:     floatPtr(100),
			Deposit:   floatPtr(200),
		},
	})

	require.NoError(t, err)
	assert.Len(t, response.Number, 6)
	assert.Equal(t, "15/06/2024", response.IssueDate)
	assert.Equal(t, "05/2024", response.Period)
	assert.Equal(t, 1949.80, response.GrossCommission)
	assert.Equal(t, 349.79, response.TaxWithholding)
	assert.Equal(t, 0.0, response.SocialSecurityWithholding)
	assert.Equal(t, 200.0, response.Deposit)
	assert.Equal(t, 1400.01, response.NetBalance)
	assert.Equal(t, 5490.0, response.AccruedExemption)
	assert.Equal(t, 3, *response.ConsultantID)
}

func TestGenerateStatement_SemConsultor(t *testing.T) {
	service, _, _ := newTestService(t)

	response, err := service.GenerateStatement(&GenerateStatementRequest{
		Allocation: domain.PaymentAllocation{LineItems: map[int]float64{1: 100}},
	})

	require.NoError(t, err)
	assert.Nil(t, response.ConsultantID)
	assert.Equal(t, 0.0, response.AccruedExemption)
}

func TestGenerateStatement_ConsultorInexistente(t *testing.T) {
	service, mockConsultantRepo, _ := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(99).Return(nil, nil)

	_, err := service.GenerateStatement(&GenerateStatementRequest{
		ConsultantID: intPtr(99),
		Allocation:   domain.PaymentAllocation{LineItems: map[int]float64{1: 100}},
	})

	assert.ErrorIs(t, err, ErrConsultantNotFound)
}

func TestGenerateStatement_BaseVazia(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GenerateStatement(&GenerateStatementRequest{
		Allocation: domain.PaymentAllocation{},
	})

	assert.ErrorIs(t, err, ErrEmptyBillingBasis)
}

func TestAcceptStatement_SomaPagamentosAoAcumulado(t *testing.T) {
	service, mockConsultantRepo, _ := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(3).Return(&domain.Consultant{
		ID: 3, Name: "Luca Bianchi", TotalYearlyPay: 0,
	}, nil)

	mockConsultantRepo.EXPECT().
		AddYearlyPay(3, gomock.Any()).
		DoAndReturn(func(consultantID int, amount float64) error {
			// O acumulado recebe linhas + extra, sem a marcação de lordo e
			// sem abatimento do acconto
			assert.InDelta(t, 1600.0, amount, 0.0000001)
			return nil
		})

	response, err := service.AcceptStatement(&GenerateStatementRequest{
		ConsultantID: intPtr(3),
		Allocation: domain.PaymentAllocation{
			LineItems: map[int]float64{10: 1000, 11: 500},
			Extra:     floatPtr(100),
			Deposit:   floatPtr(200),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1949.80, response.GrossCommission)
}

func TestAcceptStatement_SemConsultorNaoPersisteNada(t *testing.T) {
	service, _, _ := newTestService(t)

	response, err := service.AcceptStatement(&GenerateStatementRequest{
		Allocation: domain.PaymentAllocation{LineItems: map[int]float64{1: 100}},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Number)
}

func TestSoldAppointmentsForStatement(t *testing.T) {
	service, mockConsultantRepo, mockAppointmentRepo := newTestService(t)

	mockConsultantRepo.EXPECT().GetConsultantByID(3).Return(&domain.Consultant{ID: 3}, nil)

	// Mês anterior a junho/2024: [1º de maio, 1º de junho)
	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	expected := []*domain.Appointment{{ID: 10, Sold: true}}
	mockAppointmentRepo.EXPECT().
		ListSoldByConsultantAndPeriod(3, from, to).
		Return(expected, nil)

	appointments, err := service.SoldAppointmentsForStatement(3)

	require.NoError(t, err)
	assert.Equal(t, expected, appointments)
}
