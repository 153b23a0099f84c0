package scheduling

import (
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/pkg/log"
)

type SchedulingService interface {
	ScheduleForSale(event domain.SaleEvent) ([]*domain.FollowUp, error)
	CompleteFollowUp(followUpID int, notes string) (*domain.FollowUp, *domain.FollowUp, error)
	PostponeFollowUp(followUpID int, newDate time.Time) (*domain.FollowUp, error)
	ListByAppointment(appointmentID int) ([]*domain.FollowUp, error)
	ListPending(limit int) ([]*domain.FollowUp, error)
	ListOverdue() ([]*domain.FollowUp, error)
	ListUpcoming(daysAhead int) ([]*domain.FollowUp, error)
	Statistics() (*domain.FollowUpStatistics, error)
}

type FollowUpService struct {
	FollowUpRepository repository.FollowUpRepository
	logger             log.Logger
	now                func() time.Time
}

func NewFollowUpService(
	followUpRepository repository.FollowUpRepository,
	logger log.Logger,
) *FollowUpService {
	return &FollowUpService{
		FollowUpRepository: followUpRepository,
		logger:             logger,
		now:                time.Now,
	}
}

// ScheduleForSale materializa a cadeia de follow-ups de uma venda. A operação
// é idempotente: sequências já persistidas são puladas, nunca duplicadas.
func (s *FollowUpService) ScheduleForSale(event domain.SaleEvent) ([]*domain.FollowUp, error) {
	if !event.Sold {
		return nil, ErrAppointmentNotSold
	}

	planned, err := Plan(event.SaleDate)
	if err != nil {
		return nil, err
	}

	var created []*domain.FollowUp
	for _, entry := range planned {
		exists, err := s.FollowUpRepository.ExistsByAppointmentAndSequence(event.AppointmentID, entry.Sequence)
		if err != nil {
			return nil, err
		}

		if exists {
			continue
		}

		followUp := &domain.FollowUp{
			AppointmentID: event.AppointmentID,
			Sequence:      entry.Sequence,
			DueDate:       entry.DueDate,
			ClientName:    event.ClientName,
		}

		if _, err := s.FollowUpRepository.CreateFollowUp(followUp); err != nil {
			return nil, err
		}

		created = append(created, followUp)
	}

	s.logger.Infof("Cadeia de follow-ups do appuntamento %d: %d criados, %d já existentes",
		event.AppointmentID, len(created), ChainLength-len(created))

	return created, nil
}

// CompleteFollowUp marca o follow-up como concluído. Quando o concluído é o
// último de uma cadeia madura, a cadeia é estendida com o próximo contato
// anual; o follow-up estendido é retornado como segundo valor.
func (s *FollowUpService) CompleteFollowUp(followUpID int, notes string) (*domain.FollowUp, *domain.FollowUp, error) {
	followUp, err := s.FollowUpRepository.GetFollowUpByID(followUpID)
	if err != nil {
		return nil, nil, err
	}

	if followUp == nil {
		return nil, nil, ErrFollowUpNotFound
	}

	if followUp.Done {
		return nil, nil, ErrAlreadyCompleted
	}

	followUp.Done = true
	if notes != "" {
		followUp.Notes = notes
	}

	if err := s.FollowUpRepository.UpdateFollowUp(followUp); err != nil {
		return nil, nil, err
	}

	extension, err := s.maybeExtendChain(followUp)
	if err != nil {
		return nil, nil, err
	}

	return followUp, extension, nil
}

func (s *FollowUpService) maybeExtendChain(completed *domain.FollowUp) (*domain.FollowUp, error) {
	last, err := s.FollowUpRepository.LastOfChain(completed.AppointmentID)
	if err != nil {
		return nil, err
	}

	// Só estende quando o concluído é de fato o fim da cadeia
	if last == nil || last.ID != completed.ID {
		return nil, nil
	}

	planned, err := ExtendChain(last.Sequence, last.DueDate)
	if err == ErrChainNotMature {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	extension := &domain.FollowUp{
		AppointmentID: completed.AppointmentID,
		Sequence:      planned.Sequence,
		DueDate:       planned.DueDate,
		ClientName:    completed.ClientName,
	}

	if _, err := s.FollowUpRepository.CreateFollowUp(extension); err != nil {
		return nil, err
	}

	s.logger.Infof("Cadeia do appuntamento %d estendida: sequência %d prevista para %s",
		completed.AppointmentID, extension.Sequence, extension.DueDate.Format("2006-01-02"))

	return extension, nil
}

// PostponeFollowUp move a data prevista de um follow-up pendente para uma data futura
func (s *FollowUpService) PostponeFollowUp(followUpID int, newDate time.Time) (*domain.FollowUp, error) {
	followUp, err := s.FollowUpRepository.GetFollowUpByID(followUpID)
	if err != nil {
		return nil, err
	}

	if followUp == nil {
		return nil, ErrFollowUpNotFound
	}

	if followUp.Done {
		return nil, ErrAlreadyCompleted
	}

	if !newDate.After(s.now()) {
		return nil, ErrPastDate
	}

	followUp.DueDate = newDate
	if err := s.FollowUpRepository.UpdateFollowUp(followUp); err != nil {
		return nil, err
	}

	return followUp, nil
}

func (s *FollowUpService) ListByAppointment(appointmentID int) ([]*domain.FollowUp, error) {
	return s.FollowUpRepository.ListByAppointment(appointmentID)
}

func (s *FollowUpService) ListPending(limit int) ([]*domain.FollowUp, error) {
	return s.FollowUpRepository.ListPending(limit)
}

func (s *FollowUpService) ListOverdue() ([]*domain.FollowUp, error) {
	return s.FollowUpRepository.ListOverdue(s.now())
}

// ListUpcoming retorna os follow-ups pendentes dentro da janela de dias à frente
func (s *FollowUpService) ListUpcoming(daysAhead int) ([]*domain.FollowUp, error) {
	now := s.now()
	return s.FollowUpRepository.ListDueBetween(now, now.AddDate(0, 0, daysAhead))
}

func (s *FollowUpService) Statistics() (*domain.FollowUpStatistics, error) {
	pending, done, overdue, err := s.FollowUpRepository.CountByStatus()
	if err != nil {
		return nil, err
	}

	stats := &domain.FollowUpStatistics{
		Total:     pending + done,
		Completed: done,
		Pending:   pending,
		Overdue:   overdue,
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(done) / float64(stats.Total) * 100
	}

	return stats, nil
}
