package domain

import "time"

// EngagementMetrics é o snapshot de engajamento de um negócio consumido
// pelo cálculo de score. Atualizado externamente pelo recálculo de
// engajamento e internamente quando o negócio é selecionado (carimbo de
// last_featured_*).
type EngagementMetrics struct {
	BusinessID          string     `json:"business_id"`
	FollowersGrowth     int        `json:"followers_growth"`
	PostsEngagement     float64    `json:"posts_engagement"`
	RecentActivity      int        `json:"recent_activity"`
	LastFeaturedDaily   *time.Time `json:"last_featured_daily"`
	LastFeaturedWeekly  *time.Time `json:"last_featured_weekly"`
	LastFeaturedMonthly *time.Time `json:"last_featured_monthly"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// LastFeaturedAny retorna o carimbo de destaque mais recente entre os três
// tipos, ou nil se o negócio nunca foi destacado. O score de recência usa
// este valor independente do tipo sendo selecionado.
func (m *EngagementMetrics) LastFeaturedAny() *time.Time {
	var latest *time.Time
	for _, ts := range []*time.Time{m.LastFeaturedDaily, m.LastFeaturedWeekly, m.LastFeaturedMonthly} {
		if ts == nil {
			continue
		}
		if latest == nil || ts.After(*latest) {
			latest = ts
		}
	}
	return latest
}
