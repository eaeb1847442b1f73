package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/spotlighting"
	"github.com/vfg2006/spotlight-manager-api/pkg/apiErrors"
)

// GetCurrentSpotlights retorna os spotlights ativos de um tipo
func GetCurrentSpotlights(service spotlighting.SpotlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotlightType := domain.SpotlightType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
		if !spotlightType.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSpotlightType, "Tipo de spotlight inválido. Valores aceitos: daily, weekly, monthly", nil)
			return
		}

		spotlights, err := service.GetCurrentSpotlights(spotlightType)
		if err != nil {
			logrus.Error("Erro ao buscar spotlights ativos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar spotlights", nil)
			return
		}

		response := map[string]any{
			"type":       spotlightType,
			"spotlights": spotlights,
			"updated_at": time.Now(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta de spotlights:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetBusinessSpotlightHistory retorna o histórico de destaques de um negócio
func GetBusinessSpotlightHistory(service spotlighting.SpotlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não especificado", nil)
			return
		}

		history, err := service.GetBusinessHistory(businessID)
		if err != nil {
			if err == spotlighting.ErrBusinessNotFound {
				apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar histórico de spotlights:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de spotlights", nil)
			return
		}

		response := map[string]any{
			"business_id": businessID,
			"history":     history,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta de histórico:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
