package reporting

import (
	"testing"
	"time"

	repomocks "github.com/AirPlr/smart-control-api/infrastructure/repository/mocks"
	"github.com/AirPlr/smart-control-api/internal/domain"
	hierarchymocks "github.com/AirPlr/smart-control-api/internal/usecases/hierarchy/mocks"
	"github.com/AirPlr/smart-control-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *repomocks.MockAppointmentRepository, *repomocks.MockConsultantRepository, *hierarchymocks.MockHierarchyService) {
	ctrl := gomock.NewController(t)
	mockAppointmentRepo := repomocks.NewMockAppointmentRepository(ctrl)
	mockConsultantRepo := repomocks.NewMockConsultantRepository(ctrl)
	mockHierarchy := hierarchymocks.NewMockHierarchyService(ctrl)

	service := NewReportingService(mockAppointmentRepo, mockConsultantRepo, mockHierarchy, log.SetupTestLogger())
	return service, mockAppointmentRepo, mockConsultantRepo, mockHierarchy
}

func mayDate(day int) time.Time {
	return time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyPerformance(t *testing.T) {
	service, mockAppointmentRepo, _, _ := newTestService(t)

	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	mockAppointmentRepo.EXPECT().ListByPeriod(from, to).Return([]*domain.Appointment{
		{ID: 1, Date: mayDate(2), Sold: true, CollectedNames: 3, PersonalAppointments: 1},
		{ID: 2, Date: mayDate(10), CollectedNames: 2},
		{ID: 3, Date: mayDate(20), Sold: true, PersonalAppointments: 2},
		{ID: 4, Date: mayDate(25)},
	}, nil)

	performance, err := service.MonthlyPerformance(time.May, 2024)

	require.NoError(t, err)
	assert.Equal(t, "2024-05", performance.Month)
	assert.Equal(t, 4, performance.TotalAppointments)
	assert.Equal(t, 2, performance.SoldAppointments)
	assert.Equal(t, 5, performance.CollectedNames)
	assert.Equal(t, 3, performance.PersonalAppointments)
	assert.Equal(t, 50.0, performance.ConversionRate)
}

func TestMonthlyPerformance_MesVazio(t *testing.T) {
	service, mockAppointmentRepo, _, _ := newTestService(t)

	mockAppointmentRepo.EXPECT().ListByPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)

	performance, err := service.MonthlyPerformance(time.May, 2024)

	require.NoError(t, err)
	assert.Equal(t, 0, performance.TotalAppointments)
	assert.Equal(t, 0.0, performance.ConversionRate)
}

func TestConsultantRanking_OrdenadoPorVendasDeGrupo(t *testing.T) {
	service, mockAppointmentRepo, mockConsultantRepo, mockHierarchy := newTestService(t)

	mockConsultantRepo.EXPECT().ListConsultants().Return([]*domain.Consultant{
		{ID: 1, Name: "Anna", Position: "senior"},
		{ID: 2, Name: "Bruno", Position: "junior"},
	}, nil)

	// Anna: 1 appuntamento vendido no mês, grupo com 2 vendas
	mockAppointmentRepo.EXPECT().ListByConsultant(1).Return([]*domain.Appointment{
		{ID: 10, Date: mayDate(5), Sold: true, CollectedNames: 2},
		{ID: 11, Date: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), Sold: true}, // fora do mês
	}, nil)
	mockHierarchy.EXPECT().GroupSales(1, time.May, 2024).Return(&domain.GroupSales{Total: 2}, nil)

	// Bruno: mais vendas de grupo, fica em primeiro
	mockAppointmentRepo.EXPECT().ListByConsultant(2).Return([]*domain.Appointment{
		{ID: 12, Date: mayDate(7), Sold: true},
		{ID: 13, Date: mayDate(8), Sold: true},
	}, nil)
	mockHierarchy.EXPECT().GroupSales(2, time.May, 2024).Return(&domain.GroupSales{Total: 5}, nil)

	ranking, err := service.ConsultantRanking(time.May, 2024)

	require.NoError(t, err)
	require.Len(t, ranking, 2)

	assert.Equal(t, 1, ranking[0].Rank)
	assert.Equal(t, "Bruno", ranking[0].Name)
	assert.Equal(t, 5, ranking[0].GroupSales)

	assert.Equal(t, 2, ranking[1].Rank)
	assert.Equal(t, "Anna", ranking[1].Name)
	assert.Equal(t, 1, ranking[1].TotalAppointments)
	assert.Equal(t, 2, ranking[1].CollectedNames)
	assert.Equal(t, 100.0, ranking[1].ConversionRate)
}

func TestConsultantRanking_EmpateResolvidoPorVendasProprias(t *testing.T) {
	service, mockAppointmentRepo, mockConsultantRepo, mockHierarchy := newTestService(t)

	mockConsultantRepo.EXPECT().ListConsultants().Return([]*domain.Consultant{
		{ID: 1, Name: "Anna"},
		{ID: 2, Name: "Bruno"},
	}, nil)

	mockAppointmentRepo.EXPECT().ListByConsultant(1).Return([]*domain.Appointment{
		{ID: 10, Date: mayDate(5), Sold: true},
	}, nil)
	mockHierarchy.EXPECT().GroupSales(1, time.May, 2024).Return(&domain.GroupSales{Total: 3}, nil)

	mockAppointmentRepo.EXPECT().ListByConsultant(2).Return([]*domain.Appointment{
		{ID: 12, Date: mayDate(7), Sold: true},
		{ID: 13, Date: mayDate(8), Sold: true},
	}, nil)
	mockHierarchy.EXPECT().GroupSales(2, time.May, 2024).Return(&domain.GroupSales{Total: 3}, nil)

	ranking, err := service.ConsultantRanking(time.May, 2024)

	require.NoError(t, err)
	assert.Equal(t, "Bruno", ranking[0].Name)
	assert.Equal(t, "Anna", ranking[1].Name)
}
