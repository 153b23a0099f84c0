package hierarchy

import (
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/pkg/log"
)

type HierarchyService interface {
	CreateConsultant(consultant *domain.Consultant) (*domain.Consultant, error)
	UpdateConsultant(req *domain.UpdateConsultantRequest) (*domain.Consultant, error)
	GetConsultant(consultantID int) (*domain.Consultant, error)
	ListConsultants() ([]*domain.Consultant, error)
	ListSubordinates(consultantID int) ([]*domain.Consultant, error)
	ChildrenIndex() (map[int][]*domain.Consultant, error)
	DeleteConsultant(consultantID int) error
	GroupSales(consultantID int, month time.Month, year int) (*domain.GroupSales, error)
	DanglingAppointments() (map[int][]int, error)
}

type ConsultantService struct {
	ConsultantRepository  repository.ConsultantRepository
	AppointmentRepository repository.AppointmentRepository
	logger                log.Logger
}

func NewConsultantService(
	consultantRepository repository.ConsultantRepository,
	appointmentRepository repository.AppointmentRepository,
	logger log.Logger,
) *ConsultantService {
	return &ConsultantService{
		ConsultantRepository:  consultantRepository,
		AppointmentRepository: appointmentRepository,
		logger:                logger,
	}
}

func (s *ConsultantService) CreateConsultant(consultant *domain.Consultant) (*domain.Consultant, error) {
	if consultant.ParentID != nil {
		parent, err := s.ConsultantRepository.GetConsultantByID(*consultant.ParentID)
		if err != nil {
			return nil, err
		}

		if parent == nil {
			return nil, ErrParentNotFound
		}
	}

	return s.ConsultantRepository.CreateConsultant(consultant)
}

func (s *ConsultantService) UpdateConsultant(req *domain.UpdateConsultantRequest) (*domain.Consultant, error) {
	consultant, err := s.ConsultantRepository.GetConsultantByID(req.ID)
	if err != nil {
		return nil, err
	}

	if consultant == nil {
		return nil, ErrConsultantNotFound
	}

	if req.ParentID != nil {
		if *req.ParentID == req.ID {
			return nil, ErrSelfParent
		}

		parent, err := s.ConsultantRepository.GetConsultantByID(*req.ParentID)
		if err != nil {
			return nil, err
		}

		if parent == nil {
			return nil, ErrParentNotFound
		}

		consultant.ParentID = req.ParentID
	}

	if req.Name != nil {
		consultant.Name = *req.Name
	}
	if req.Position != nil {
		consultant.Position = *req.Position
	}
	if req.Residency != nil {
		consultant.Residency = req.Residency
	}
	if req.Phone != nil {
		consultant.Phone = req.Phone
	}
	if req.Email != nil {
		consultant.Email = req.Email
	}
	if req.TaxCode != nil {
		consultant.TaxCode = req.TaxCode
	}

	if err := s.ConsultantRepository.UpdateConsultant(consultant); err != nil {
		return nil, err
	}

	return consultant, nil
}

func (s *ConsultantService) GetConsultant(consultantID int) (*domain.Consultant, error) {
	consultant, err := s.ConsultantRepository.GetConsultantByID(consultantID)
	if err != nil {
		return nil, err
	}

	if consultant == nil {
		return nil, ErrConsultantNotFound
	}

	return consultant, nil
}

func (s *ConsultantService) ListConsultants() ([]*domain.Consultant, error) {
	return s.ConsultantRepository.ListConsultants()
}

func (s *ConsultantService) ListSubordinates(consultantID int) ([]*domain.Consultant, error) {
	return s.ConsultantRepository.ListSubordinates(consultantID)
}

// ChildrenIndex monta o multimapa responsável -> subordinados diretos a partir
// da lista plana. A floresta nunca é materializada no banco.
func (s *ConsultantService) ChildrenIndex() (map[int][]*domain.Consultant, error) {
	consultants, err := s.ConsultantRepository.ListConsultants()
	if err != nil {
		return nil, err
	}

	index := make(map[int][]*domain.Consultant)
	for _, consultant := range consultants {
		if consultant.ParentID == nil {
			continue
		}

		index[*consultant.ParentID] = append(index[*consultant.ParentID], consultant)
	}

	return index, nil
}

// DeleteConsultant remove o consultor redistribuindo o que ele deixa:
// as vendas já fechadas passam ao responsável, os subordinados diretos
// sobem um nível (ficam sem responsável) e os appuntamentos não vendidos
// permanecem vinculados ao id removido até serem reatribuídos manualmente.
func (s *ConsultantService) DeleteConsultant(consultantID int) error {
	consultant, err := s.ConsultantRepository.GetConsultantByID(consultantID)
	if err != nil {
		return err
	}

	if consultant == nil {
		return ErrConsultantNotFound
	}

	if consultant.ParentID != nil {
		reassigned, err := s.AppointmentRepository.ReassignSold(consultantID, *consultant.ParentID)
		if err != nil {
			return err
		}

		s.logger.Infof("Consultor %d removido: %d vendas transferidas ao responsável %d",
			consultantID, reassigned, *consultant.ParentID)
	} else {
		s.logger.Warnf("Consultor %d removido sem responsável: as vendas ficam órfãs", consultantID)
	}

	if err := s.ConsultantRepository.ClearParent(consultantID); err != nil {
		return err
	}

	return s.ConsultantRepository.DeleteConsultant(consultantID)
}

// GroupSales soma as vendas do mês do consultor com as dos subordinados
// diretos. A agregação é de um nível só: subordinados de subordinados não
// entram na conta.
func (s *ConsultantService) GroupSales(consultantID int, month time.Month, year int) (*domain.GroupSales, error) {
	consultant, err := s.ConsultantRepository.GetConsultantByID(consultantID)
	if err != nil {
		return nil, err
	}

	if consultant == nil {
		return nil, ErrConsultantNotFound
	}

	ownSales, err := s.AppointmentRepository.CountMonthlySold(consultantID, month, year)
	if err != nil {
		return nil, err
	}

	subordinates, err := s.ConsultantRepository.ListSubordinates(consultantID)
	if err != nil {
		return nil, err
	}

	groupSales := &domain.GroupSales{
		ConsultantID: consultantID,
		Month:        int(month),
		Year:         year,
		OwnSales:     ownSales,
	}

	for _, subordinate := range subordinates {
		sales, err := s.AppointmentRepository.CountMonthlySold(subordinate.ID, month, year)
		if err != nil {
			return nil, err
		}

		groupSales.SubordinateSales += sales
		groupSales.SubordinateIDs = append(groupSales.SubordinateIDs, subordinate.ID)
	}

	groupSales.Total = groupSales.OwnSales + groupSales.SubordinateSales

	return groupSales, nil
}

// DanglingAppointments expõe os vínculos órfãos deixados por remoções de
// consultores sem responsável
func (s *ConsultantService) DanglingAppointments() (map[int][]int, error) {
	return s.AppointmentRepository.ListDanglingConsultantLinks()
}
