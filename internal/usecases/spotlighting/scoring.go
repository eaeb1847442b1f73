// Package spotlighting contém o motor de seleção de spotlights: cálculo de
// score, filtro de elegibilidade e as estratégias de seleção por tipo.
package spotlighting

import (
	"math"
	"time"

	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

// Pesos dos sub-scores na nota final
const (
	weightEngagement = 0.30
	weightRecency    = 0.25
	weightReviews    = 0.20
	weightGrowth     = 0.15
	weightFollowers  = 0.10
)

// CalculateScore calcula a nota de aptidão [0,100] de um negócio a partir
// do snapshot de engajamento. Função pura e determinística: entradas iguais
// produzem sempre o mesmo inteiro. Um snapshot ausente zera os sub-scores
// de engajamento, recência e crescimento, mas reviews e seguidores ainda
// contam.
func CalculateScore(business *domain.Business, metrics *domain.EngagementMetrics, now time.Time) int {
	var engagement, recency, growth float64

	if metrics != nil {
		engagement = math.Min(metrics.PostsEngagement, 100)

		if lastFeatured := metrics.LastFeaturedAny(); lastFeatured == nil {
			// Nunca destacado: recência máxima
			recency = 100
		} else {
			daysSince := now.Sub(*lastFeatured).Hours() / 24
			recency = math.Min(daysSince*2, 100)
			if recency < 0 {
				recency = 0
			}
		}

		growth = math.Min(float64(metrics.FollowersGrowth)*2, 100)
		if growth < 0 {
			growth = 0
		}
	}

	reviews := math.Min(float64(business.ReviewCount)*5, 100)
	followers := math.Min(float64(business.FollowerCount), 100)

	total := engagement*weightEngagement +
		recency*weightRecency +
		reviews*weightReviews +
		growth*weightGrowth +
		followers*weightFollowers

	return int(math.Round(total))
}
