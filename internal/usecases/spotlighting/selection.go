package spotlighting

import (
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/pkg/utils"
)

// Peso da votação comunitária e do score algorítmico na seleção mensal
const (
	monthlyVoteWeight  = 0.7
	monthlyScoreWeight = 0.3
)

// Selector aplica as estratégias de seleção por tipo de slot e faz o
// commit do resultado: registros de Spotlight e de histórico na mesma
// transação, seguidos do carimbo de last_featured_* nas métricas.
type Selector struct {
	metricsRepo   repository.EngagementMetricsRepository
	spotlightRepo repository.SpotlightRepository
	voteRepo      repository.SpotlightVoteRepository
	eligibility   *EligibilityFilter
}

func NewSelector(
	metricsRepo repository.EngagementMetricsRepository,
	spotlightRepo repository.SpotlightRepository,
	voteRepo repository.SpotlightVoteRepository,
	eligibility *EligibilityFilter,
) *Selector {
	return &Selector{
		metricsRepo:   metricsRepo,
		spotlightRepo: spotlightRepo,
		voteRepo:      voteRepo,
		eligibility:   eligibility,
	}
}

// scoredBusiness agrega o negócio à sua nota calculada para ordenação
type scoredBusiness struct {
	business *domain.Business
	score    float64
}

// SelectDaily escolhe os 3 negócios mais bem pontuados do pool elegível e
// cria os slots diários com validade de 1 dia.
func (s *Selector) SelectDaily(now time.Time) ([]*domain.SpotlightSelection, error) {
	scored, err := s.scoredPool(domain.SpotlightTypeDaily, now)
	if err != nil {
		return nil, err
	}

	if len(scored) == 0 {
		logrus.Info("Nenhum negócio elegível para o spotlight diário")
		return nil, nil
	}

	slots := domain.SpotlightTypeDaily.SlotCount()
	if len(scored) > slots {
		scored = scored[:slots]
	}

	return s.commit(domain.SpotlightTypeDaily, scored, now)
}

// SelectWeekly escolhe até 5 negócios priorizando diversidade de
// categorias: primeiro o melhor de cada categoria, depois os melhores do
// pool geral para preencher os slots restantes.
func (s *Selector) SelectWeekly(now time.Time) ([]*domain.SpotlightSelection, error) {
	scored, err := s.scoredPool(domain.SpotlightTypeWeekly, now)
	if err != nil {
		return nil, err
	}

	if len(scored) == 0 {
		logrus.Info("Nenhum negócio elegível para o spotlight semanal")
		return nil, nil
	}

	slots := domain.SpotlightTypeWeekly.SlotCount()

	// Agrupar por categoria mantendo a ordenação por score dentro do grupo
	byCategory := make(map[string][]*scoredBusiness)
	categories := make([]string, 0)
	for _, candidate := range scored {
		category := candidate.business.CategoryOrDefault()
		if _, seen := byCategory[category]; !seen {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], candidate)
	}

	// Iteração estável: categorias em ordem alfabética
	sort.Strings(categories)

	chosen := make([]*scoredBusiness, 0, slots)
	chosenIDs := make(map[string]struct{})

	diversityPicks := len(categories)
	if diversityPicks > slots {
		diversityPicks = slots
	}

	for _, category := range categories[:diversityPicks] {
		best := byCategory[category][0]
		chosen = append(chosen, best)
		chosenIDs[best.business.ID] = struct{}{}
	}

	// Preencher slots restantes com os melhores do pool geral
	for _, candidate := range scored {
		if len(chosen) >= slots {
			break
		}
		if _, alreadyChosen := chosenIDs[candidate.business.ID]; alreadyChosen {
			continue
		}
		chosen = append(chosen, candidate)
		chosenIDs[candidate.business.ID] = struct{}{}
	}

	// Posições seguem a ordem de score do lote final
	sortScored(chosen)

	return s.commit(domain.SpotlightTypeWeekly, chosen, now)
}

// SelectMonthly escolhe o vencedor do mês combinando votos da comunidade
// (70%) com o score algorítmico (30%). Pool vazio não é erro: nenhuma
// seleção é feita.
func (s *Selector) SelectMonthly(now time.Time) ([]*domain.SpotlightSelection, error) {
	scored, err := s.scoredPool(domain.SpotlightTypeMonthly, now)
	if err != nil {
		return nil, err
	}

	if len(scored) == 0 {
		logrus.Info("Nenhum negócio elegível para o spotlight mensal")
		return nil, nil
	}

	month := domain.MonthKey(now)

	voteCounts, err := s.voteRepo.CountsForMonth(month)
	if err != nil {
		return nil, err
	}

	votesByBusiness := make(map[string]int, len(voteCounts))
	for _, count := range voteCounts {
		votesByBusiness[count.BusinessID] = count.Count
	}

	combined := make([]*scoredBusiness, 0, len(scored))
	for _, candidate := range scored {
		normalizedVotes := math.Min(float64(votesByBusiness[candidate.business.ID])/10, 100)
		combined = append(combined, &scoredBusiness{
			business: candidate.business,
			score:    utils.RoundWithTwoDecimalPlace(normalizedVotes*monthlyVoteWeight + candidate.score*monthlyScoreWeight),
		})
	}

	sortScored(combined)

	winner := combined[:1]

	logrus.WithFields(logrus.Fields{
		"month":       month,
		"business_id": winner[0].business.ID,
		"score":       winner[0].score,
	}).Info("Vencedor do spotlight mensal definido")

	return s.commit(domain.SpotlightTypeMonthly, winner, now)
}

// scoredPool monta o pool elegível do tipo já pontuado e ordenado por
// score decrescente com desempate por ID de negócio crescente, mantendo a
// seleção determinística sob scores iguais.
func (s *Selector) scoredPool(spotlightType domain.SpotlightType, now time.Time) ([]*scoredBusiness, error) {
	pool, err := s.eligibility.Eligible(spotlightType, now)
	if err != nil {
		return nil, err
	}

	scored := make([]*scoredBusiness, 0, len(pool))
	for _, business := range pool {
		metrics, err := s.metricsRepo.GetByBusinessID(business.ID)
		if err != nil {
			// Falha ao carregar métricas aborta apenas este candidato
			logrus.WithError(err).WithField("business_id", business.ID).
				Error("Erro ao buscar métricas de engajamento, candidato ignorado")
			continue
		}

		scored = append(scored, &scoredBusiness{
			business: business,
			score:    float64(CalculateScore(business, metrics, now)),
		})
	}

	sortScored(scored)

	return scored, nil
}

// commit grava o lote de seleções (spotlight + histórico em uma transação)
// e carimba o last_featured_* de cada negócio selecionado.
func (s *Selector) commit(spotlightType domain.SpotlightType, chosen []*scoredBusiness, now time.Time) ([]*domain.SpotlightSelection, error) {
	if len(chosen) == 0 {
		return nil, nil
	}

	endDate := spotlightType.EndDateFrom(now)

	selections := make([]*domain.SpotlightSelection, 0, len(chosen))
	for i, candidate := range chosen {
		selections = append(selections, &domain.SpotlightSelection{
			BusinessID: candidate.business.ID,
			Type:       spotlightType,
			Position:   i + 1,
			StartDate:  now,
			EndDate:    endDate,
			TotalScore: candidate.score,
		})
	}

	if err := s.spotlightRepo.SaveSelections(selections); err != nil {
		return nil, err
	}

	for _, selection := range selections {
		if err := s.metricsRepo.StampLastFeatured(selection.BusinessID, spotlightType, now); err != nil {
			// O lote já foi commitado; o carimbo afeta apenas o score de
			// recência da próxima rotação
			logrus.WithError(err).WithField("business_id", selection.BusinessID).
				Error("Erro ao carimbar last_featured do negócio selecionado")
		}
	}

	logrus.WithFields(logrus.Fields{
		"type":       spotlightType,
		"selections": len(selections),
	}).Info("Seleção de spotlights commitada")

	return selections, nil
}

// sortScored ordena por score decrescente, desempatando por ID crescente
func sortScored(scored []*scoredBusiness) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].business.ID < scored[j].business.ID
	})
}
