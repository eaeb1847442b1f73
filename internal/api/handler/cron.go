package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/internal/scheduler"
	"github.com/vfg2006/spotlight-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSpotlightRotation = "spotlight-rotation"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SpotlightRotationService *scheduler.SpotlightRotationService
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

		switch cronType {
		case CronJobTypeSpotlightRotation:
			if services.SpotlightRotationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de rotação de spotlights não disponível", nil)
				return
			}

			started, reason := services.SpotlightRotationService.TriggerManualRotation()
			if !started {
				apiErrors.WriteError(w, apiErrors.ErrRotationNotAllowed, reason, nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: spotlight-rotation", nil)
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
			"spotlight-rotation": services.SpotlightRotationService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

// CanRotateManually informa se o operador pode disparar uma rotação manual agora
func CanRotateManually(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed, reason := services.SpotlightRotationService.CanRotateManually()

		response := map[string]any{
			"allowed": allowed,
		}
		if reason != "" {
			response["reason"] = reason
		}

		json.NewEncoder(w).Encode(response)
	}
}
