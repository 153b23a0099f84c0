package billing

import (
	"fmt"
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/pkg/log"
	"github.com/AirPlr/smart-control-api/pkg/utils"
)

type BillingService interface {
	GenerateStatement(req *GenerateStatementRequest) (*domain.CommissionStatementResponse, error)
	AcceptStatement(req *GenerateStatementRequest) (*domain.CommissionStatementResponse, error)
	SoldAppointmentsForStatement(consultantID int) ([]*domain.Appointment, error)
}

// GenerateStatementRequest carrega a alocação de pagamentos do fechamento.
// ConsultantID é opcional: fechamentos avulsos não referenciam consultor.
type GenerateStatementRequest struct {
	ConsultantID *int                     `json:"consultant_id"`
	Allocation   domain.PaymentAllocation `json:"allocation"`
}

type CommissionService struct {
	ConsultantRepository  repository.ConsultantRepository
	AppointmentRepository repository.AppointmentRepository
	logger                log.Logger
	now                   func() time.Time
}

func NewCommissionService(
	consultantRepository repository.ConsultantRepository,
	appointmentRepository repository.AppointmentRepository,
	logger log.Logger,
) *CommissionService {
	return &CommissionService{
		ConsultantRepository:  consultantRepository,
		AppointmentRepository: appointmentRepository,
		logger:                logger,
		now:                   time.Now,
	}
}

// GenerateStatement calcula o fechamento do mês anterior sem efeito colateral
// nenhum: o fechamento é um valor derivado, recalculado a cada requisição
func (s *CommissionService) GenerateStatement(req *GenerateStatementRequest) (*domain.CommissionStatementResponse, error) {
	statement, err := s.buildStatement(req)
	if err != nil {
		return nil, err
	}

	return toResponse(statement), nil
}

// AcceptStatement confirma o fechamento: o total de pagamentos da alocação
// (linhas mais extra, antes da marcação de lordo) entra no acumulado anual do
// consultor, que alimenta o teto de isenção dos próximos fechamentos
func (s *CommissionService) AcceptStatement(req *GenerateStatementRequest) (*domain.CommissionStatementResponse, error) {
	statement, err := s.buildStatement(req)
	if err != nil {
		return nil, err
	}

	if req.ConsultantID != nil {
		paid := req.Allocation.PaymentTotal()
		if err := s.ConsultantRepository.AddYearlyPay(*req.ConsultantID, paid); err != nil {
			return nil, err
		}

		s.logger.Infof("Fechamento %s aceito: %.2f somados ao acumulado do consultor %d",
			statement.Number, paid, *req.ConsultantID)
	}

	return toResponse(statement), nil
}

// SoldAppointmentsForStatement lista os appuntamentos vendidos do consultor no
// mês anterior, a base de linhas do próximo fechamento
func (s *CommissionService) SoldAppointmentsForStatement(consultantID int) ([]*domain.Appointment, error) {
	consultant, err := s.ConsultantRepository.GetConsultantByID(consultantID)
	if err != nil {
		return nil, err
	}

	if consultant == nil {
		return nil, ErrConsultantNotFound
	}

	month, year := utils.PreviousMonth(s.now())
	from, to := utils.MonthBounds(month, year)

	return s.AppointmentRepository.ListSoldByConsultantAndPeriod(consultantID, from, to)
}

func (s *CommissionService) buildStatement(req *GenerateStatementRequest) (*domain.CommissionStatement, error) {
	var totalYearlyPay float64
	if req.ConsultantID != nil {
		consultant, err := s.ConsultantRepository.GetConsultantByID(*req.ConsultantID)
		if err != nil {
			return nil, err
		}

		if consultant == nil {
			return nil, ErrConsultantNotFound
		}

		totalYearlyPay = consultant.TotalYearlyPay
	}

	computation, err := Compute(req.Allocation, totalYearlyPay)
	if err != nil {
		return nil, err
	}

	number, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	month, year := utils.PreviousMonth(now)

	return &domain.CommissionStatement{
		Number:                    number,
		IssueDate:                 now,
		PeriodMonth:               month,
		PeriodYear:                year,
		GrossCommission:           computation.GrossCommission,
		TaxWithholding:            computation.TaxWithholding,
		SocialSecurityWithholding: computation.SocialSecurityWithholding,
		Deposit:                   computation.Deposit,
		NetBalance:                computation.NetBalance,
		AccruedExemption:          computation.AccruedExemption,
		ConsultantID:              req.ConsultantID,
	}, nil
}

// toResponse arredonda os valores monetários para duas casas e formata as
// datas no padrão italiano. É a única borda onde há arredondamento.
func toResponse(statement *domain.CommissionStatement) *domain.CommissionStatementResponse {
	round := func(value interface{ InexactFloat64() float64 }) float64 {
		return utils.RoundWithTwoDecimalPlace(value.InexactFloat64())
	}

	return &domain.CommissionStatementResponse{
		Number:                    statement.Number,
		IssueDate:                 statement.IssueDate.Format("02/01/2006"),
		Period:                    fmt.Sprintf("%02d/%d", int(statement.PeriodMonth), statement.PeriodYear),
		GrossCommission:           round(statement.GrossCommission),
		TaxWithholding:            round(statement.TaxWithholding),
		SocialSecurityWithholding: round(statement.SocialSecurityWithholding),
		Deposit:                   round(statement.Deposit),
		NetBalance:                round(statement.NetBalance),
		AccruedExemption:          round(statement.AccruedExemption),
		ConsultantID:              statement.ConsultantID,
	}
}
