package voting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_RecordVote(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	activeBusiness := &domain.Business{
		ID:       "BIZ001",
		Name:     "Padaria A",
		IsActive: true,
	}

	tests := []struct {
		name         string
		userID       int
		businessID   string
		setup        func(voteRepo *mocks.MockSpotlightVoteRepository, businessRepo *mocks.MockBusinessRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:       "Voto válido é registrado no mês corrente",
			userID:     42,
			businessID: "BIZ001",
			setup: func(voteRepo *mocks.MockSpotlightVoteRepository, businessRepo *mocks.MockBusinessRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(activeBusiness, nil)
				voteRepo.EXPECT().Insert(gomock.Any()).DoAndReturn(func(vote *domain.SpotlightVote) error {
					assert.Equal(t, 42, vote.UserID)
					assert.Equal(t, "BIZ001", vote.BusinessID)
					assert.Equal(t, "2024-06", vote.Month)
					return nil
				})
			},
		},
		{
			name:       "Segundo voto no mesmo mês retorna erro de duplicidade",
			userID:     42,
			businessID: "BIZ001",
			setup: func(voteRepo *mocks.MockSpotlightVoteRepository, businessRepo *mocks.MockBusinessRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(activeBusiness, nil)
				voteRepo.EXPECT().Insert(gomock.Any()).Return(repository.ErrDuplicateVote)
			},
			expectedErr:  ErrDuplicateVote,
			expectedCode: apiErrors.ErrDuplicateVote,
		},
		{
			name:       "Negócio inexistente não recebe voto",
			userID:     42,
			businessID: "BIZ999",
			setup: func(voteRepo *mocks.MockSpotlightVoteRepository, businessRepo *mocks.MockBusinessRepository) {
				businessRepo.EXPECT().GetByID("BIZ999").Return(nil, nil)
			},
			expectedErr:  ErrBusinessNotFound,
			expectedCode: apiErrors.ErrBusinessNotFound,
		},
		{
			name:       "Negócio inativo não recebe voto",
			userID:     42,
			businessID: "BIZ002",
			setup: func(voteRepo *mocks.MockSpotlightVoteRepository, businessRepo *mocks.MockBusinessRepository) {
				businessRepo.EXPECT().GetByID("BIZ002").Return(&domain.Business{
					ID:       "BIZ002",
					IsActive: false,
				}, nil)
			},
			expectedErr:  ErrBusinessInactive,
			expectedCode: apiErrors.ErrBusinessInactive,
		},
		{
			name:       "Falha de banco na consulta do negócio",
			userID:     42,
			businessID: "BIZ001",
			setup: func(voteRepo *mocks.MockSpotlightVoteRepository, businessRepo *mocks.MockBusinessRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(nil, assert.AnError)
			},
			expectedErr:  ErrDatabaseOperation,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			voteRepo := mocks.NewMockSpotlightVoteRepository(ctrl)
			businessRepo := mocks.NewMockBusinessRepository(ctrl)

			tt.setup(voteRepo, businessRepo)

			service := NewService(voteRepo, businessRepo)

			vote, err := service.RecordVote(tt.userID, tt.businessID, now)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				var voteErr *VoteError
				assert.ErrorAs(t, err, &voteErr)
				assert.Equal(t, tt.expectedCode, voteErr.Code)
				assert.Equal(t, tt.userID, voteErr.UserID)
				assert.Nil(t, vote)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, vote)
			assert.Equal(t, "2024-06", vote.Month)
		})
	}
}

func TestIsDuplicateVoteError(t *testing.T) {
	duplicate := NewVoteError(ErrDuplicateVote, apiErrors.ErrDuplicateVote, 42, "2024-06")
	notFound := NewVoteError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, 42, "BIZ999")

	assert.True(t, IsDuplicateVoteError(duplicate))
	assert.False(t, IsDuplicateVoteError(notFound))
	assert.False(t, IsDuplicateVoteError(nil))
}

func TestService_StatsForMonth(t *testing.T) {
	tests := []struct {
		name            string
		now             time.Time
		counts          []*domain.VoteCount
		expectedTotal   int
		expectedTop     int
		expectedDaysMin int
	}{
		{
			name: "Resumo com top-3 e total agregado",
			now:  time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			counts: []*domain.VoteCount{
				{BusinessID: "BIZ001", Count: 40},
				{BusinessID: "BIZ002", Count: 30},
				{BusinessID: "BIZ003", Count: 20},
				{BusinessID: "BIZ004", Count: 10},
			},
			expectedTotal: 100,
			expectedTop:   3,
		},
		{
			name:          "Mês sem votos",
			now:           time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			counts:        []*domain.VoteCount{},
			expectedTotal: 0,
			expectedTop:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			voteRepo := mocks.NewMockSpotlightVoteRepository(ctrl)
			businessRepo := mocks.NewMockBusinessRepository(ctrl)

			month := domain.MonthKey(tt.now)
			voteRepo.EXPECT().CountsForMonth(month).Return(tt.counts, nil)

			service := NewService(voteRepo, businessRepo)

			stats, err := service.StatsForMonth(month, tt.now)

			assert.NoError(t, err)
			assert.Equal(t, month, stats.Month)
			assert.Equal(t, tt.expectedTotal, stats.TotalVotes)

			// Um voto por usuário por mês: votantes distintos == total de votos
			assert.Equal(t, tt.expectedTotal, stats.DistinctVoters)

			assert.Equal(t, len(tt.counts), stats.BusinessesCount)
			assert.Len(t, stats.TopBusinesses, tt.expectedTop)

			// 15 de junho ao meio-dia: restam 15 dias e meio no mês
			assert.Equal(t, 15, stats.DaysRemaining)
		})
	}
}
