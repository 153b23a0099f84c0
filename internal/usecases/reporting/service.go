package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/internal/usecases/hierarchy"
	"github.com/AirPlr/smart-control-api/pkg/log"
	"github.com/AirPlr/smart-control-api/pkg/utils"
)

type ReportingService interface {
	MonthlyPerformance(month time.Month, year int) (*domain.MonthlyPerformance, error)
	ConsultantRanking(month time.Month, year int) ([]*domain.ConsultantRankingEntry, error)
}

type Service struct {
	AppointmentRepository repository.AppointmentRepository
	ConsultantRepository  repository.ConsultantRepository
	HierarchyService      hierarchy.HierarchyService
	logger                log.Logger
}

func NewReportingService(
	appointmentRepository repository.AppointmentRepository,
	consultantRepository repository.ConsultantRepository,
	hierarchyService hierarchy.HierarchyService,
	logger log.Logger,
) *Service {
	return &Service{
		AppointmentRepository: appointmentRepository,
		ConsultantRepository:  consultantRepository,
		HierarchyService:      hierarchyService,
		logger:                logger,
	}
}

// MonthlyPerformance agrega os números de todos os appuntamentos do mês
func (s *Service) MonthlyPerformance(month time.Month, year int) (*domain.MonthlyPerformance, error) {
	from, to := utils.MonthBounds(month, year)

	appointments, err := s.AppointmentRepository.ListByPeriod(from, to)
	if err != nil {
		return nil, err
	}

	performance := &domain.MonthlyPerformance{
		Month: fmt.Sprintf("%d-%02d", year, int(month)),
	}

	for _, appointment := range appointments {
		performance.TotalAppointments++
		performance.CollectedNames += appointment.CollectedNames
		performance.PersonalAppointments += appointment.PersonalAppointments
		if appointment.Sold {
			performance.SoldAppointments++
		}
	}

	if performance.TotalAppointments > 0 {
		performance.ConversionRate = float64(performance.SoldAppointments) /
			float64(performance.TotalAppointments) * 100
	}

	return performance, nil
}

// ConsultantRanking ordena os consultores pelas vendas de grupo do mês.
// Empates são resolvidos pelas vendas próprias e depois pelo nome.
func (s *Service) ConsultantRanking(month time.Month, year int) ([]*domain.ConsultantRankingEntry, error) {
	consultants, err := s.ConsultantRepository.ListConsultants()
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.ConsultantRankingEntry, 0, len(consultants))
	for _, consultant := range consultants {
		entry, err := s.buildEntry(consultant, month, year)
		if err != nil {
			s.logger.Warnf("Erro ao montar a posição do consultor %d na classifica: %v", consultant.ID, err)
			continue
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].GroupSales != entries[j].GroupSales {
			return entries[i].GroupSales > entries[j].GroupSales
		}
		if entries[i].SoldAppointments != entries[j].SoldAppointments {
			return entries[i].SoldAppointments > entries[j].SoldAppointments
		}
		return entries[i].Name < entries[j].Name
	})

	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}

func (s *Service) buildEntry(consultant *domain.Consultant, month time.Month, year int) (*domain.ConsultantRankingEntry, error) {
	from, to := utils.MonthBounds(month, year)

	appointments, err := s.AppointmentRepository.ListByConsultant(consultant.ID)
	if err != nil {
		return nil, err
	}

	entry := &domain.ConsultantRankingEntry{
		ConsultantID: consultant.ID,
		Name:         consultant.Name,
		Position:     consultant.Position,
	}

	for _, appointment := range appointments {
		if appointment.Date.Before(from) || !appointment.Date.Before(to) {
			continue
		}

		entry.TotalAppointments++
		entry.CollectedNames += appointment.CollectedNames
		if appointment.Sold {
			entry.SoldAppointments++
		}
	}

	if entry.TotalAppointments > 0 {
		entry.ConversionRate = float64(entry.SoldAppointments) /
			float64(entry.TotalAppointments) * 100
	}

	groupSales, err := s.HierarchyService.GroupSales(consultant.ID, month, year)
	if err != nil {
		return nil, err
	}
	entry.GroupSales = groupSales.Total

	return entry, nil
}
