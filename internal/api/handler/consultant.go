package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/internal/usecases/hierarchy"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
)

// ListConsultants lista todos os consultores
func ListConsultants(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultants, err := service.ListConsultants()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar consultores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(consultants)
	}
}

// CreateConsultant cadastra um novo consultor, opcionalmente vinculado a um mentor
func CreateConsultant(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateConsultant")

		var consultant domain.Consultant
		if err := json.NewDecoder(r.Body).Decode(&consultant); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateConsultant(&consultant)
		if err != nil {
			handleConsultantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// GetConsultant retorna um consultor pelo ID
func GetConsultant(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		consultant, err := service.GetConsultant(consultantID)
		if err != nil {
			handleConsultantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(consultant)
	}
}

// UpdateConsultant atualiza os dados de um consultor
func UpdateConsultant(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateConsultant")

		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		var req domain.UpdateConsultantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = consultantID

		updated, err := service.UpdateConsultant(&req)
		if err != nil {
			handleConsultantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteConsultant remove um consultor: as vendas passam ao mentor e os
// subordinados diretos sobem um nível na hierarquia
func DeleteConsultant(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteConsultant")

		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		if err := service.DeleteConsultant(consultantID); err != nil {
			handleConsultantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListSubordinates lista os subordinados diretos de um consultor
func ListSubordinates(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		subordinates, err := service.ListSubordinates(consultantID)
		if err != nil {
			handleConsultantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(subordinates)
	}
}

// GetGroupSales retorna as vendas de grupo do consultor no mês informado
// via query params month/year (default: mês corrente)
func GetGroupSales(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		month, year, err := monthYearParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		groupSales, err := service.GroupSales(consultantID, month, year)
		if err != nil {
			handleConsultantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(groupSales)
	}
}

// GetChildrenIndex retorna a floresta de consultores indexada por mentor
func GetChildrenIndex(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := service.ChildrenIndex()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a hierarquia de consultores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(index)
	}
}

// GetDanglingAppointments lista os vínculos de appuntamento que apontam para
// consultores já removidos
func GetDanglingAppointments(service hierarchy.HierarchyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dangling, err := service.DanglingAppointments()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar vínculos pendentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dangling)
	}
}

// monthYearParams extrai os query params month/year, usando o mês corrente
// quando ausentes
func monthYearParams(r *http.Request) (time.Month, int, error) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errors.New("parâmetro 'month' inválido")
		}
		month = time.Month(parsed)
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 {
			return 0, 0, errors.New("parâmetro 'year' inválido")
		}
		year = parsed
	}

	return month, year, nil
}

// handleConsultantError mapeia os erros do usecase para códigos da API
func handleConsultantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hierarchy.ErrConsultantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Consultor não encontrado", nil)

	case errors.Is(err, hierarchy.ErrParentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Mentor não encontrado", nil)

	case errors.Is(err, hierarchy.ErrSelfParent):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar consultor", nil)
	}
}
