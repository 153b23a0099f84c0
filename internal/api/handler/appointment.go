package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/internal/usecases/appointments"
	"github.com/AirPlr/smart-control-api/internal/usecases/scheduling"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
	"github.com/AirPlr/smart-control-api/pkg/utils"
)

// MarkSoldResponse é a resposta da venda: o fato gerado e a cadeia de
// follow-ups materializada a partir dele
type MarkSoldResponse struct {
	Event     *domain.SaleEvent  `json:"event"`
	FollowUps []*domain.FollowUp `json:"follow_ups"`
}

// ListAppointments lista os appuntamentos, com filtro opcional de período
// via query params from/to (aaaa-mm-dd)
func ListAppointments(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")

		var (
			list []*domain.Appointment
			err  error
		)

		if fromStr != "" && toStr != "" {
			from, parseErr := utils.ParseDate(fromStr)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Parâmetro 'from' mal formado", nil)
				return
			}

			to, parseErr := utils.ParseDate(toStr)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Parâmetro 'to' mal formado", nil)
				return
			}

			list, err = service.ListByPeriod(*from, *to)
		} else {
			list, err = service.ListAppointments()
		}

		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar appuntamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

// CreateAppointment cadastra um novo appuntamento
func CreateAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAppointment")

		var appointment domain.Appointment
		if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateAppointment(&appointment)
		if err != nil {
			handleAppointmentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// GetAppointment retorna um appuntamento pelo ID
func GetAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointmentID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do appuntamento inválido", nil)
			return
		}

		appointment, err := service.GetAppointment(appointmentID)
		if err != nil {
			handleAppointmentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(appointment)
	}
}

// UpdateAppointment atualiza um appuntamento existente
func UpdateAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAppointment")

		appointmentID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do appuntamento inválido", nil)
			return
		}

		var req domain.UpdateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = appointmentID

		updated, err := service.UpdateAppointment(&req)
		if err != nil {
			handleAppointmentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteAppointment remove um appuntamento e sua cadeia de follow-ups
func DeleteAppointment(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAppointment")

		appointmentID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do appuntamento inválido", nil)
			return
		}

		if err := service.DeleteAppointment(appointmentID); err != nil {
			handleAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// MarkAppointmentSold marca o appuntamento como vendido e materializa a
// cadeia de follow-ups. A operação é idempotente.
func MarkAppointmentSold(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MarkAppointmentSold")

		appointmentID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do appuntamento inválido", nil)
			return
		}

		event, followUps, err := service.MarkSold(appointmentID)
		if err != nil {
			handleAppointmentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MarkSoldResponse{
			Event:     event,
			FollowUps: followUps,
		})
	}
}

// ListAppointmentsByConsultant lista os appuntamentos vinculados a um consultor
func ListAppointmentsByConsultant(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		list, err := service.ListByConsultant(consultantID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar appuntamentos do consultor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

// GetConsultantStats retorna os números de desempenho de um consultor
func GetConsultantStats(service appointments.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		stats, err := service.Stats(consultantID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular estatísticas do consultor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// handleAppointmentError mapeia os erros do usecase para códigos da API
func handleAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Appuntamento não encontrado", nil)

	case errors.Is(err, appointments.ErrMissingClientName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)

	case errors.Is(err, appointments.ErrInvalidType),
		errors.Is(err, appointments.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, appointments.ErrMissingRecallDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)

	case errors.Is(err, scheduling.ErrAppointmentNotSold):
		apiErrors.WriteError(w, apiErrors.ErrAppointmentNotSold, err.Error(), nil)

	case errors.Is(err, scheduling.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar appuntamento", nil)
	}
}
