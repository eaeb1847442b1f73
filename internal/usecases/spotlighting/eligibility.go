package spotlighting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

// EligibilityFilter determina quais negócios podem competir por um tipo de
// slot: ativos, verificados (quando existe ao menos um verificado na base),
// sem spotlight ativo do mesmo tipo e fora da janela de cooldown.
type EligibilityFilter struct {
	businessRepo  repository.BusinessRepository
	spotlightRepo repository.SpotlightRepository
	historyRepo   repository.SpotlightHistoryRepository
}

func NewEligibilityFilter(
	businessRepo repository.BusinessRepository,
	spotlightRepo repository.SpotlightRepository,
	historyRepo repository.SpotlightHistoryRepository,
) *EligibilityFilter {
	return &EligibilityFilter{
		businessRepo:  businessRepo,
		spotlightRepo: spotlightRepo,
		historyRepo:   historyRepo,
	}
}

// Eligible retorna o pool de negócios elegíveis para o tipo. A ordem do
// resultado não é garantida; quem consome reordena por score.
func (f *EligibilityFilter) Eligible(spotlightType domain.SpotlightType, now time.Time) ([]*domain.Business, error) {
	if !spotlightType.IsValid() {
		return nil, ErrInvalidSpotlightType
	}

	// Enquanto nenhum negócio estiver verificado, o filtro aceita todos os
	// ativos para manter a funcionalidade utilizável (modo degradado).
	hasVerified, err := f.businessRepo.HasVerifiedBusiness()
	if err != nil {
		return nil, err
	}

	if !hasVerified {
		logrus.WithField("type", spotlightType).
			Info("Nenhum negócio verificado na base, elegibilidade em modo degradado")
	}

	pool, err := f.businessRepo.ListActive(hasVerified)
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		return []*domain.Business{}, nil
	}

	excluded := make(map[string]struct{})

	// Excluir negócios que já ocupam um slot ativo deste tipo
	activeSpotlights, err := f.spotlightRepo.ListActive(spotlightType)
	if err != nil {
		return nil, err
	}

	for _, spotlight := range activeSpotlights {
		if spotlight.EndDate.After(now) {
			excluded[spotlight.BusinessID] = struct{}{}
		}
	}

	// Excluir negócios destacados dentro da janela de cooldown do tipo.
	// O histórico é a única fonte consultada para o cooldown.
	cooldownStart := now.Add(-spotlightType.Cooldown())

	recentHistory, err := f.historyRepo.RecentSince(spotlightType, cooldownStart)
	if err != nil {
		return nil, err
	}

	for _, history := range recentHistory {
		excluded[history.BusinessID] = struct{}{}
	}

	eligible := make([]*domain.Business, 0, len(pool))
	for _, business := range pool {
		if _, isExcluded := excluded[business.ID]; isExcluded {
			continue
		}
		eligible = append(eligible, business)
	}

	return eligible, nil
}
