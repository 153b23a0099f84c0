package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/internal/usecases/billing"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
)

// GenerateStatement calcula o fechamento de provvigioni do mês anterior.
// Sem efeito colateral: o fechamento é recalculado a cada requisição.
func GenerateStatement(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateStatement")

		var req billing.GenerateStatementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		statement, err := service.GenerateStatement(&req)
		if err != nil {
			handleBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statement)
	}
}

// AcceptStatement confirma o fechamento: o total de pagamentos da alocação
// entra no acumulado anual do consultor
func AcceptStatement(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AcceptStatement")

		var req billing.GenerateStatementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		statement, err := service.AcceptStatement(&req)
		if err != nil {
			handleBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statement)
	}
}

// ListSoldAppointmentsForStatement lista os appuntamentos vendidos do
// consultor no mês anterior, a base de linhas do próximo fechamento
func ListSoldAppointmentsForStatement(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultantID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do consultor inválido", nil)
			return
		}

		appointments, err := service.SoldAppointmentsForStatement(consultantID)
		if err != nil {
			handleBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(appointments)
	}
}

// handleBillingError mapeia os erros do usecase para códigos da API
func handleBillingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrEmptyBillingBasis):
		apiErrors.WriteError(w, apiErrors.ErrEmptyBillingBasis, err.Error(), nil)

	case errors.Is(err, billing.ErrConsultantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Consultor não encontrado", nil)

	case errors.Is(err, billing.ErrNegativeAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar fechamento", nil)
	}
}
