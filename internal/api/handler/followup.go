package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/internal/usecases/scheduling"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
)

type CompleteFollowUpRequest struct {
	Notes string `json:"notes"`
}

type PostponeFollowUpRequest struct {
	NewDate time.Time `json:"new_date"`
}

// CompleteFollowUpResponse carrega o follow-up concluído e, quando a
// conclusão fecha uma cadeia madura, o contato anual que a estendeu
type CompleteFollowUpResponse struct {
	Completed *domain.FollowUp `json:"completed"`
	Extension *domain.FollowUp `json:"extension,omitempty"`
}

// ListFollowUpsByAppointment lista a cadeia de follow-ups de um appuntamento
func ListFollowUpsByAppointment(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointmentID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do appuntamento inválido", nil)
			return
		}

		followUps, err := service.ListByAppointment(appointmentID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar follow-ups", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(followUps)
	}
}

// ListPendingFollowUps lista os follow-ups pendentes, com limite opcional
func ListPendingFollowUps(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'limit' inválido", nil)
				return
			}
			limit = parsed
		}

		followUps, err := service.ListPending(limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar follow-ups pendentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(followUps)
	}
}

// ListOverdueFollowUps lista os follow-ups atrasados
func ListOverdueFollowUps(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followUps, err := service.ListOverdue()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar follow-ups atrasados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(followUps)
	}
}

// ListUpcomingFollowUps lista os follow-ups em scadenza na janela informada
// via query param days (default 7)
func ListUpcomingFollowUps(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		daysAhead := 7
		if daysStr := r.URL.Query().Get("days"); daysStr != "" {
			parsed, err := strconv.Atoi(daysStr)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'days' inválido", nil)
				return
			}
			daysAhead = parsed
		}

		followUps, err := service.ListUpcoming(daysAhead)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar follow-ups em scadenza", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(followUps)
	}
}

// GetFollowUpStatistics retorna os números agregados de follow-up
func GetFollowUpStatistics(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statistics, err := service.Statistics()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular estatísticas de follow-up", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statistics)
	}
}

// CompleteFollowUp marca um follow-up como concluído
func CompleteFollowUp(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CompleteFollowUp")

		followUpID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do follow-up inválido", nil)
			return
		}

		// Corpo opcional: apenas as anotações do contato
		var req CompleteFollowUpRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		completed, extension, err := service.CompleteFollowUp(followUpID, req.Notes)
		if err != nil {
			handleFollowUpError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CompleteFollowUpResponse{
			Completed: completed,
			Extension: extension,
		})
	}
}

// PostponeFollowUp reagenda um follow-up para uma data futura
func PostponeFollowUp(service scheduling.SchedulingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PostponeFollowUp")

		followUpID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do follow-up inválido", nil)
			return
		}

		var req PostponeFollowUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		postponed, err := service.PostponeFollowUp(followUpID, req.NewDate)
		if err != nil {
			handleFollowUpError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(postponed)
	}
}

// handleFollowUpError mapeia os erros do usecase para códigos da API
func handleFollowUpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scheduling.ErrFollowUpNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Follow-up não encontrado", nil)

	case errors.Is(err, scheduling.ErrAlreadyCompleted):
		apiErrors.WriteError(w, apiErrors.ErrAlreadyCompleted, err.Error(), nil)

	case errors.Is(err, scheduling.ErrChainNotMature):
		apiErrors.WriteError(w, apiErrors.ErrChainNotMature, err.Error(), nil)

	case errors.Is(err, scheduling.ErrPastDate):
		apiErrors.WriteError(w, apiErrors.ErrPastDate, err.Error(), nil)

	case errors.Is(err, scheduling.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar follow-up", nil)
	}
}
