package spotlighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

func TestCalculateScore(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		business *domain.Business
		metrics  *domain.EngagementMetrics
		expected int
	}{
		{
			name: "Sem métricas - apenas reviews e seguidores contam",
			business: &domain.Business{
				ID:            "BIZ001",
				ReviewCount:   20, // min(100, 100) * 0.20 = 20
				FollowerCount: 50, // 50 * 0.10 = 5
			},
			metrics:  nil,
			expected: 25,
		},
		{
			name: "Nunca destacado - recência máxima",
			business: &domain.Business{
				ID:            "BIZ002",
				ReviewCount:   10, // 50 * 0.20 = 10
				FollowerCount: 60, // 60 * 0.10 = 6
			},
			metrics: &domain.EngagementMetrics{
				PostsEngagement: 80, // 80 * 0.30 = 24
				FollowersGrowth: 10, // 20 * 0.15 = 3
			},
			expected: 68, // 24 + 25 + 10 + 3 + 6
		},
		{
			name: "Destacado há 10 dias - recência proporcional",
			business: &domain.Business{
				ID:            "BIZ003",
				ReviewCount:   10,
				FollowerCount: 60,
			},
			metrics: &domain.EngagementMetrics{
				PostsEngagement:   80,
				FollowersGrowth:   10,
				LastFeaturedDaily: timePtr(now.AddDate(0, 0, -10)), // 20 * 0.25 = 5
			},
			expected: 48,
		},
		{
			name: "Destacado agora - recência zerada",
			business: &domain.Business{
				ID:            "BIZ004",
				ReviewCount:   10,
				FollowerCount: 60,
			},
			metrics: &domain.EngagementMetrics{
				PostsEngagement:   80,
				FollowersGrowth:   10,
				LastFeaturedDaily: timePtr(now),
			},
			expected: 43,
		},
		{
			name: "Todos os sub-scores no teto - nota máxima 100",
			business: &domain.Business{
				ID:            "BIZ005",
				ReviewCount:   30,  // 150 -> clamp 100
				FollowerCount: 500, // clamp 100
			},
			metrics: &domain.EngagementMetrics{
				PostsEngagement: 150, // clamp 100
				FollowersGrowth: 80,  // 160 -> clamp 100
			},
			expected: 100,
		},
		{
			name: "Recência usa o destaque mais recente entre os tipos",
			business: &domain.Business{
				ID:            "BIZ006",
				ReviewCount:   10,
				FollowerCount: 60,
			},
			metrics: &domain.EngagementMetrics{
				PostsEngagement:    80,
				FollowersGrowth:    10,
				LastFeaturedDaily:  timePtr(now.AddDate(0, 0, -100)),
				LastFeaturedWeekly: timePtr(now.AddDate(0, 0, -10)), // mais recente vence
			},
			expected: 48,
		},
		{
			name: "Negócio sem nenhum dado - nota zero",
			business: &domain.Business{
				ID: "BIZ007",
			},
			metrics:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateScore(tt.business, tt.metrics, now)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateScore_Deterministico(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{
		ID:            "BIZ001",
		ReviewCount:   13,
		FollowerCount: 77,
	}
	metrics := &domain.EngagementMetrics{
		PostsEngagement:   63.7,
		FollowersGrowth:   21,
		LastFeaturedDaily: timePtr(now.AddDate(0, 0, -4)),
	}

	first := CalculateScore(business, metrics, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateScore(business, metrics, now))
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
