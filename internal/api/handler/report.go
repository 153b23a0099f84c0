package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/internal/usecases/reporting"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
)

// GetMonthlyPerformance retorna os números agregados do mês informado
// via query params month/year
func GetMonthlyPerformance(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, err := monthYearParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		performance, err := service.MonthlyPerformance(month, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o desempenho mensal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(performance)
	}
}

// GetConsultantRanking retorna a classifica dos consultores do mês
func GetConsultantRanking(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, err := monthYearParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ranking, err := service.ConsultantRanking(month, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a classifica de consultores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ranking)
	}
}
