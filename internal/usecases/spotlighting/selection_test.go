package spotlighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type selectorMocks struct {
	businessRepo  *mocks.MockBusinessRepository
	metricsRepo   *mocks.MockEngagementMetricsRepository
	spotlightRepo *mocks.MockSpotlightRepository
	historyRepo   *mocks.MockSpotlightHistoryRepository
	voteRepo      *mocks.MockSpotlightVoteRepository
}

func newSelectorWithMocks(ctrl *gomock.Controller) (*Selector, *selectorMocks) {
	m := &selectorMocks{
		businessRepo:  mocks.NewMockBusinessRepository(ctrl),
		metricsRepo:   mocks.NewMockEngagementMetricsRepository(ctrl),
		spotlightRepo: mocks.NewMockSpotlightRepository(ctrl),
		historyRepo:   mocks.NewMockSpotlightHistoryRepository(ctrl),
		voteRepo:      mocks.NewMockSpotlightVoteRepository(ctrl),
	}

	eligibility := NewEligibilityFilter(m.businessRepo, m.spotlightRepo, m.historyRepo)
	selector := NewSelector(m.metricsRepo, m.spotlightRepo, m.voteRepo, eligibility)

	return selector, m
}

// expectOpenPool configura a elegibilidade sem exclusões para o tipo e
// devolve métricas nulas para cada negócio. Com métricas nulas a nota vem
// apenas de reviews e seguidores, o que torna os scores fáceis de prever.
func expectOpenPool(m *selectorMocks, spotlightType domain.SpotlightType, now time.Time, pool []*domain.Business) {
	m.businessRepo.EXPECT().HasVerifiedBusiness().Return(true, nil)
	m.businessRepo.EXPECT().ListActive(true).Return(pool, nil)
	m.spotlightRepo.EXPECT().ListActive(spotlightType).Return([]*domain.Spotlight{}, nil)
	m.historyRepo.EXPECT().RecentSince(spotlightType, now.Add(-spotlightType.Cooldown())).Return([]*domain.SpotlightHistory{}, nil)

	for _, business := range pool {
		m.metricsRepo.EXPECT().GetByBusinessID(business.ID).Return(nil, nil)
	}
}

// business cria um negócio cujo score com métricas nulas é
// min(reviews*5, 100)*0.20 + min(followers, 100)*0.10
func business(id, category string, reviews, followers int) *domain.Business {
	return &domain.Business{
		ID:            id,
		Name:          "Negócio " + id,
		Category:      &category,
		IsActive:      true,
		IsVerified:    true,
		ReviewCount:   reviews,
		FollowerCount: followers,
	}
}

func TestSelector_SelectDaily(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Deve selecionar os 3 melhores scores em ordem de posição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		pool := []*domain.Business{
			business("BIZ001", "food", 20, 100),     // score 30
			business("BIZ002", "retail", 20, 50),    // score 25
			business("BIZ003", "services", 20, 0),   // score 20
			business("BIZ004", "services", 10, 0),   // score 10, fica de fora
		}
		expectOpenPool(m, domain.SpotlightTypeDaily, now, pool)

		var saved []*domain.SpotlightSelection
		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).DoAndReturn(func(selections []*domain.SpotlightSelection) error {
			saved = selections
			return nil
		})

		m.metricsRepo.EXPECT().StampLastFeatured("BIZ001", domain.SpotlightTypeDaily, now).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured("BIZ002", domain.SpotlightTypeDaily, now).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured("BIZ003", domain.SpotlightTypeDaily, now).Return(nil)

		selections, err := selector.SelectDaily(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 3)
		assert.Equal(t, saved, selections)

		assert.Equal(t, "BIZ001", selections[0].BusinessID)
		assert.Equal(t, 1, selections[0].Position)
		assert.Equal(t, 30.0, selections[0].TotalScore)

		assert.Equal(t, "BIZ002", selections[1].BusinessID)
		assert.Equal(t, 2, selections[1].Position)

		assert.Equal(t, "BIZ003", selections[2].BusinessID)
		assert.Equal(t, 3, selections[2].Position)

		for _, selection := range selections {
			assert.Equal(t, domain.SpotlightTypeDaily, selection.Type)
			assert.Equal(t, now, selection.StartDate)
			assert.Equal(t, now.AddDate(0, 0, 1), selection.EndDate)
		}
	})

	t.Run("Empate de score desempata por ID crescente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		// Mesmos reviews e seguidores: scores idênticos
		pool := []*domain.Business{
			business("BIZ009", "food", 20, 50),
			business("BIZ001", "food", 20, 50),
			business("BIZ005", "food", 20, 50),
		}
		expectOpenPool(m, domain.SpotlightTypeDaily, now, pool)

		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured(gomock.Any(), domain.SpotlightTypeDaily, now).Return(nil).Times(3)

		selections, err := selector.SelectDaily(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 3)
		assert.Equal(t, "BIZ001", selections[0].BusinessID)
		assert.Equal(t, "BIZ005", selections[1].BusinessID)
		assert.Equal(t, "BIZ009", selections[2].BusinessID)
	})

	t.Run("Pool vazio não seleciona e não grava nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		m.businessRepo.EXPECT().HasVerifiedBusiness().Return(true, nil)
		m.businessRepo.EXPECT().ListActive(true).Return([]*domain.Business{}, nil)

		selections, err := selector.SelectDaily(now)

		assert.NoError(t, err)
		assert.Nil(t, selections)
	})

	t.Run("Falha ao buscar métricas ignora apenas o candidato", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		pool := []*domain.Business{
			business("BIZ001", "food", 20, 100),
			business("BIZ002", "retail", 20, 50),
		}

		m.businessRepo.EXPECT().HasVerifiedBusiness().Return(true, nil)
		m.businessRepo.EXPECT().ListActive(true).Return(pool, nil)
		m.spotlightRepo.EXPECT().ListActive(domain.SpotlightTypeDaily).Return([]*domain.Spotlight{}, nil)
		m.historyRepo.EXPECT().RecentSince(domain.SpotlightTypeDaily, now.Add(-24*time.Hour)).Return([]*domain.SpotlightHistory{}, nil)

		m.metricsRepo.EXPECT().GetByBusinessID("BIZ001").Return(nil, assert.AnError)
		m.metricsRepo.EXPECT().GetByBusinessID("BIZ002").Return(nil, nil)

		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured("BIZ002", domain.SpotlightTypeDaily, now).Return(nil)

		selections, err := selector.SelectDaily(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 1)
		assert.Equal(t, "BIZ002", selections[0].BusinessID)
	})
}

func TestSelector_SelectWeekly(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Prioriza o melhor de cada categoria antes de preencher por score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		uncategorized := &domain.Business{
			ID:            "BIZ020",
			Name:          "Sem categoria",
			IsActive:      true,
			IsVerified:    true,
			ReviewCount:   10, // score 15
			FollowerCount: 50,
		}

		pool := []*domain.Business{
			business("BIZ010", "food", 20, 100),   // score 30, melhor de food
			business("BIZ011", "food", 20, 80),    // score 28, preenche o 5º slot
			business("BIZ012", "food", 20, 70),    // score 27, fica de fora
			business("BIZ013", "retail", 20, 50),  // score 25, melhor de retail
			business("BIZ014", "services", 20, 0), // score 20, melhor de services
			uncategorized,                         // score 15, melhor de uncategorized
		}
		expectOpenPool(m, domain.SpotlightTypeWeekly, now, pool)

		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured(gomock.Any(), domain.SpotlightTypeWeekly, now).Return(nil).Times(5)

		selections, err := selector.SelectWeekly(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 5)

		// Posições em ordem de score do lote final
		assert.Equal(t, "BIZ010", selections[0].BusinessID)
		assert.Equal(t, "BIZ011", selections[1].BusinessID)
		assert.Equal(t, "BIZ013", selections[2].BusinessID)
		assert.Equal(t, "BIZ014", selections[3].BusinessID)
		assert.Equal(t, "BIZ020", selections[4].BusinessID)

		for i, selection := range selections {
			assert.Equal(t, i+1, selection.Position)
			assert.Equal(t, domain.SpotlightTypeWeekly, selection.Type)
			assert.Equal(t, now.AddDate(0, 0, 7), selection.EndDate)
		}
	})

	t.Run("Menos negócios que slots seleciona todos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		pool := []*domain.Business{
			business("BIZ010", "food", 20, 100),
			business("BIZ013", "retail", 20, 50),
		}
		expectOpenPool(m, domain.SpotlightTypeWeekly, now, pool)

		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured(gomock.Any(), domain.SpotlightTypeWeekly, now).Return(nil).Times(2)

		selections, err := selector.SelectWeekly(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 2)
	})
}

func TestSelector_SelectMonthly(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Combina votos (70%) com score algorítmico (30%)", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		pool := []*domain.Business{
			business("BIZ001", "food", 20, 0),   // score 20
			business("BIZ002", "retail", 20, 100), // score 30
		}
		expectOpenPool(m, domain.SpotlightTypeMonthly, now, pool)

		// BIZ001: votos 50  -> normalizado 5  -> 5*0.7  + 20*0.3 = 9.5
		// BIZ002: votos 200 -> normalizado 20 -> 20*0.7 + 30*0.3 = 23
		m.voteRepo.EXPECT().CountsForMonth("2024-06").Return([]*domain.VoteCount{
			{BusinessID: "BIZ002", Count: 200},
			{BusinessID: "BIZ001", Count: 50},
		}, nil)

		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured("BIZ002", domain.SpotlightTypeMonthly, now).Return(nil)

		selections, err := selector.SelectMonthly(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 1)
		assert.Equal(t, "BIZ002", selections[0].BusinessID)
		assert.Equal(t, 1, selections[0].Position)
		assert.InDelta(t, 23.0, selections[0].TotalScore, 1e-9)
		assert.Equal(t, now.AddDate(0, 1, 0), selections[0].EndDate)
	})

	t.Run("Sem votos o score algorítmico decide sozinho", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		pool := []*domain.Business{
			business("BIZ001", "food", 20, 0),     // score 20 -> combinado 6
			business("BIZ002", "retail", 20, 100), // score 30 -> combinado 9
		}
		expectOpenPool(m, domain.SpotlightTypeMonthly, now, pool)

		m.voteRepo.EXPECT().CountsForMonth("2024-06").Return([]*domain.VoteCount{}, nil)

		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(nil)
		m.metricsRepo.EXPECT().StampLastFeatured("BIZ002", domain.SpotlightTypeMonthly, now).Return(nil)

		selections, err := selector.SelectMonthly(now)

		assert.NoError(t, err)
		assert.Len(t, selections, 1)
		assert.Equal(t, "BIZ002", selections[0].BusinessID)
	})

	t.Run("Pool vazio é no-op sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		m.businessRepo.EXPECT().HasVerifiedBusiness().Return(true, nil)
		m.businessRepo.EXPECT().ListActive(true).Return([]*domain.Business{}, nil)

		selections, err := selector.SelectMonthly(now)

		assert.NoError(t, err)
		assert.Nil(t, selections)
	})

	t.Run("Falha ao salvar seleções propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		selector, m := newSelectorWithMocks(ctrl)

		pool := []*domain.Business{
			business("BIZ001", "food", 20, 0),
		}
		expectOpenPool(m, domain.SpotlightTypeMonthly, now, pool)

		m.voteRepo.EXPECT().CountsForMonth("2024-06").Return([]*domain.VoteCount{}, nil)
		m.spotlightRepo.EXPECT().SaveSelections(gomock.Any()).Return(assert.AnError)

		selections, err := selector.SelectMonthly(now)

		assert.Error(t, err)
		assert.Nil(t, selections)
	})
}
