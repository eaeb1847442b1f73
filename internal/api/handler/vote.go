package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/voting"
	"github.com/vfg2006/spotlight-manager-api/pkg/apiErrors"
	"github.com/vfg2006/spotlight-manager-api/pkg/middleware"
)

type castVoteRequest struct {
	BusinessID string `json:"business_id"`
}

// CastVote registra o voto mensal do usuário autenticado em um negócio
func CastVote(service voting.VoteAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CastVote")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request castVoteRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.BusinessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio é obrigatório", nil)
			return
		}

		vote, err := service.RecordVote(userClaims.UserID, request.BusinessID, time.Now())
		if err != nil {
			// Voto duplicado é reportado distintamente de falha genérica
			if voting.IsDuplicateVoteError(err) {
				apiErrors.WriteError(w, apiErrors.ErrDuplicateVote, "Você já votou neste mês", nil)
				return
			}

			var voteErr *voting.VoteError
			if errors.As(err, &voteErr) {
				apiErrors.WriteError(w, voteErr.Code, voteErr.Err.Error(), nil)
				return
			}

			logrus.WithError(errors.Wrap(err, "falha ao registrar voto")).Error("CastVote")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar voto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(vote)
	}
}

// GetVoteStats retorna o resumo da votação do mês corrente
func GetVoteStats(service voting.VoteAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		stats, err := service.StatsForMonth(domain.MonthKey(now), now)
		if err != nil {
			logrus.Error("Erro ao buscar estatísticas de votação:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas de votação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar resposta de estatísticas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
