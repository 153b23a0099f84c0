package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/internal/scheduler"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFollowUpReminder = "followup-reminder"
	CronJobTypeYearlyReset      = "yearly-reset"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	FollowUpReminderService *scheduler.FollowUpReminderService
	YearlyResetService      *scheduler.YearlyResetService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var err error

		switch cronType {
		case CronJobTypeFollowUpReminder:
			if services.FollowUpReminderService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de lembretes de follow-up não disponível", nil)
				return
			}
			err = services.FollowUpReminderService.TriggerManualRun()

		case CronJobTypeYearlyReset:
			if services.YearlyResetService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reset anual não disponível", nil)
				return
			}
			err = services.YearlyResetService.TriggerManualRun()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: followup-reminder, yearly-reset", nil)
			return
		}

		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"followup-reminder": services.FollowUpReminderService.GetStatus(),
			"yearly-reset":      services.YearlyResetService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
