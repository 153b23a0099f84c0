package appointments

import (
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/internal/usecases/scheduling"
	"github.com/AirPlr/smart-control-api/pkg/log"
)

type AppointmentService interface {
	CreateAppointment(appointment *domain.Appointment) (*domain.Appointment, error)
	UpdateAppointment(req *domain.UpdateAppointmentRequest) (*domain.Appointment, error)
	GetAppointment(appointmentID int) (*domain.Appointment, error)
	ListAppointments() ([]*domain.Appointment, error)
	ListByPeriod(from, to time.Time) ([]*domain.Appointment, error)
	ListByConsultant(consultantID int) ([]*domain.Appointment, error)
	MarkSold(appointmentID int) (*domain.SaleEvent, []*domain.FollowUp, error)
	DeleteAppointment(appointmentID int) error
	Stats(consultantID int) (*domain.AppointmentStats, error)
}

type Service struct {
	AppointmentRepository repository.AppointmentRepository
	ClientRepository      repository.ClientRepository
	SchedulingService     scheduling.SchedulingService
	logger                log.Logger
}

func NewAppointmentService(
	appointmentRepository repository.AppointmentRepository,
	clientRepository repository.ClientRepository,
	schedulingService scheduling.SchedulingService,
	logger log.Logger,
) *Service {
	return &Service{
		AppointmentRepository: appointmentRepository,
		ClientRepository:      clientRepository,
		SchedulingService:     schedulingService,
		logger:                logger,
	}
}

func validType(appointmentType string) bool {
	return appointmentType == domain.AppointmentTypeAssistance ||
		appointmentType == domain.AppointmentTypeDemonstration
}

func validStatus(status string) bool {
	return status == domain.AppointmentStatusConcluded ||
		status == domain.AppointmentStatusToRecall ||
		status == domain.AppointmentStatusDoNotRecall
}

func (s *Service) CreateAppointment(appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.ClientName == "" {
		return nil, ErrMissingClientName
	}

	if !validType(appointment.Type) {
		return nil, ErrInvalidType
	}

	if !validStatus(appointment.Status) {
		return nil, ErrInvalidStatus
	}

	if appointment.Status == domain.AppointmentStatusToRecall && appointment.RecallDate == nil {
		return nil, ErrMissingRecallDate
	}

	if appointment.Date.IsZero() {
		appointment.Date = time.Now()
	}

	return s.AppointmentRepository.CreateAppointment(appointment)
}

func (s *Service) UpdateAppointment(req *domain.UpdateAppointmentRequest) (*domain.Appointment, error) {
	appointment, err := s.AppointmentRepository.GetAppointmentByID(req.ID)
	if err != nil {
		return nil, err
	}

	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.ClientName != nil {
		appointment.ClientName = *req.ClientName
	}
	if req.Address != nil {
		appointment.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		appointment.PhoneNumber = *req.PhoneNumber
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.Type != nil {
		if !validType(*req.Type) {
			return nil, ErrInvalidType
		}
		appointment.Type = *req.Type
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		appointment.Status = *req.Status
	}
	if req.CollectedNames != nil {
		appointment.CollectedNames = *req.CollectedNames
	}
	if req.PersonalAppointments != nil {
		appointment.PersonalAppointments = *req.PersonalAppointments
	}
	if req.RecallDate != nil {
		appointment.RecallDate = req.RecallDate
	}

	if appointment.Status == domain.AppointmentStatusToRecall && appointment.RecallDate == nil {
		return nil, ErrMissingRecallDate
	}

	if err := s.AppointmentRepository.UpdateAppointment(appointment); err != nil {
		return nil, err
	}

	if req.ConsultantIDs != nil {
		if err := s.AppointmentRepository.SetConsultants(appointment.ID, req.ConsultantIDs); err != nil {
			return nil, err
		}
		appointment.ConsultantIDs = req.ConsultantIDs
	}

	return appointment, nil
}

func (s *Service) GetAppointment(appointmentID int) (*domain.Appointment, error) {
	appointment, err := s.AppointmentRepository.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return appointment, nil
}

func (s *Service) ListAppointments() ([]*domain.Appointment, error) {
	return s.AppointmentRepository.ListAppointments()
}

func (s *Service) ListByPeriod(from, to time.Time) ([]*domain.Appointment, error) {
	return s.AppointmentRepository.ListByPeriod(from, to)
}

func (s *Service) ListByConsultant(consultantID int) ([]*domain.Appointment, error) {
	return s.AppointmentRepository.ListByConsultant(consultantID)
}

// MarkSold registra a venda e produz o fato que alimenta o restante do
// sistema: a cadeia de follow-ups é agendada e o cliente entra na anagrafe.
// Marcar de novo um appuntamento já vendido é inócuo: o agendamento pula as
// sequências existentes e a anagrafe não é duplicada.
func (s *Service) MarkSold(appointmentID int) (*domain.SaleEvent, []*domain.FollowUp, error) {
	appointment, err := s.AppointmentRepository.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, nil, err
	}

	if appointment == nil {
		return nil, nil, ErrAppointmentNotFound
	}

	if !appointment.Sold {
		if err := s.AppointmentRepository.MarkSold(appointmentID); err != nil {
			return nil, nil, err
		}
	}

	event := &domain.SaleEvent{
		AppointmentID: appointment.ID,
		ClientName:    appointment.ClientName,
		SaleDate:      appointment.Date,
		Sold:          true,
	}

	followUps, err := s.SchedulingService.ScheduleForSale(*event)
	if err != nil {
		return nil, nil, err
	}

	if err := s.registerClient(appointment); err != nil {
		// A venda e a cadeia já estão persistidas; a anagrafe é acessória
		s.logger.Warnf("Erro ao registrar cliente do appuntamento %d: %v", appointment.ID, err)
	}

	return event, followUps, nil
}

func (s *Service) registerClient(appointment *domain.Appointment) error {
	if appointment.PhoneNumber != "" {
		existing, err := s.ClientRepository.GetClientByPhone(appointment.PhoneNumber)
		if err != nil {
			return err
		}

		if existing != nil {
			return nil
		}
	}

	client := &domain.Client{Name: appointment.ClientName}
	if appointment.Address != "" {
		client.Address = &appointment.Address
	}
	if appointment.PhoneNumber != "" {
		client.PhoneNumber = &appointment.PhoneNumber
	}
	if appointment.Notes != "" {
		client.Notes = &appointment.Notes
	}

	_, err := s.ClientRepository.CreateClient(client)
	return err
}

func (s *Service) DeleteAppointment(appointmentID int) error {
	appointment, err := s.AppointmentRepository.GetAppointmentByID(appointmentID)
	if err != nil {
		return err
	}

	if appointment == nil {
		return ErrAppointmentNotFound
	}

	return s.AppointmentRepository.DeleteAppointment(appointmentID)
}

// Stats agrega os números do consultor sobre todos os seus appuntamentos
func (s *Service) Stats(consultantID int) (*domain.AppointmentStats, error) {
	appointments, err := s.AppointmentRepository.ListByConsultant(consultantID)
	if err != nil {
		return nil, err
	}

	stats := &domain.AppointmentStats{}
	for _, appointment := range appointments {
		stats.Total++
		if appointment.Sold {
			stats.Sold++
		}

		switch appointment.Type {
		case domain.AppointmentTypeAssistance:
			stats.Assistance++
		case domain.AppointmentTypeDemonstration:
			stats.Demonstration++
		}
	}

	if stats.Total > 0 {
		stats.ConversionRate = float64(stats.Sold) / float64(stats.Total) * 100
	}

	return stats, nil
}
