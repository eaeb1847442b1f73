// Package voting implementa a agregação de votos comunitários que alimenta
// a seleção mensal de spotlights.
package voting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/pkg/apiErrors"
)

const topBusinessesCount = 3

type VoteAggregator interface {
	RecordVote(userID int, businessID string, now time.Time) (*domain.SpotlightVote, error)
	CountsByMonth(month string) ([]*domain.VoteCount, error)
	StatsForMonth(month string, now time.Time) (*domain.MonthlyVoteStats, error)
}

type Service struct {
	voteRepo     repository.SpotlightVoteRepository
	businessRepo repository.BusinessRepository
}

func NewService(
	voteRepo repository.SpotlightVoteRepository,
	businessRepo repository.BusinessRepository,
) VoteAggregator {
	return &Service{
		voteRepo:     voteRepo,
		businessRepo: businessRepo,
	}
}

// RecordVote registra o voto do usuário no mês corrente. A unicidade de
// (user_id, month) é garantida pela constraint do banco; um voto duplicado
// retorna ErrDuplicateVote sem ser registrado.
func (s *Service) RecordVote(userID int, businessID string, now time.Time) (*domain.SpotlightVote, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, NewVoteError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	if business == nil {
		return nil, NewVoteError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, userID, businessID)
	}

	if !business.IsActive {
		return nil, NewVoteError(ErrBusinessInactive, apiErrors.ErrBusinessInactive, userID, businessID)
	}

	vote := &domain.SpotlightVote{
		BusinessID: businessID,
		UserID:     userID,
		Month:      domain.MonthKey(now),
	}

	if err := s.voteRepo.Insert(vote); err != nil {
		if err == repository.ErrDuplicateVote {
			return nil, NewVoteError(ErrDuplicateVote, apiErrors.ErrDuplicateVote, userID, vote.Month)
		}
		return nil, NewVoteError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"business_id": businessID,
		"month":       vote.Month,
	}).Info("Voto registrado")

	return vote, nil
}

// CountsByMonth retorna a contagem de votos por negócio no mês, em ordem
// decrescente de votos.
func (s *Service) CountsByMonth(month string) ([]*domain.VoteCount, error) {
	return s.voteRepo.CountsForMonth(month)
}

// StatsForMonth resume a votação do mês: totais, negócios participantes,
// dias restantes no mês-calendário e o top-3 por votos. Como cada usuário
// vota no máximo uma vez por mês, o total de votos equivale ao número de
// votantes distintos.
func (s *Service) StatsForMonth(month string, now time.Time) (*domain.MonthlyVoteStats, error) {
	counts, err := s.voteRepo.CountsForMonth(month)
	if err != nil {
		return nil, err
	}

	totalVotes := 0
	for _, count := range counts {
		totalVotes += count.Count
	}

	top := counts
	if len(top) > topBusinessesCount {
		top = top[:topBusinessesCount]
	}

	return &domain.MonthlyVoteStats{
		Month:           month,
		TotalVotes:      totalVotes,
		DistinctVoters:  totalVotes,
		BusinessesCount: len(counts),
		DaysRemaining:   daysRemainingInMonth(now),
		TopBusinesses:   top,
	}, nil
}

// daysRemainingInMonth conta os dias entre now e o fim do mês-calendário
func daysRemainingInMonth(now time.Time) int {
	firstOfNextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	remaining := int(firstOfNextMonth.Sub(now).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}
