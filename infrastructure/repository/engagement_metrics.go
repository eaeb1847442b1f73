package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

const (
	engagementMetricsTable = "engagement_metrics em"
)

type EngagementMetricsRepository interface {
	GetByBusinessID(businessID string) (*domain.EngagementMetrics, error)
	Upsert(metrics *domain.EngagementMetrics) error
	StampLastFeatured(businessID string, spotlightType domain.SpotlightType, featuredAt time.Time) error
}

type engagementMetricsRepository struct {
	conn *postgres.Connection
}

func NewEngagementMetricsRepository(conn *postgres.Connection) EngagementMetricsRepository {
	return &engagementMetricsRepository{
		conn: conn,
	}
}

func (r *engagementMetricsRepository) GetByBusinessID(businessID string) (*domain.EngagementMetrics, error) {
	query, args, err := squirrel.
		Select("em.business_id, em.followers_growth, em.posts_engagement, em.recent_activity, em.last_featured_daily, em.last_featured_weekly, em.last_featured_monthly, em.updated_at").
		From(engagementMetricsTable).
		Where(squirrel.Eq{"em.business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metrics := &domain.EngagementMetrics{}

	err = r.conn.QueryRow(query, args...).Scan(
		&metrics.BusinessID,
		&metrics.FollowersGrowth,
		&metrics.PostsEngagement,
		&metrics.RecentActivity,
		&metrics.LastFeaturedDaily,
		&metrics.LastFeaturedWeekly,
		&metrics.LastFeaturedMonthly,
		&metrics.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas de engajamento: %w", err)
	}

	return metrics, nil
}

// Upsert insere ou atualiza o snapshot de métricas pela chave business_id.
// O insert-or-update acontece no banco em uma única instrução para evitar
// lost updates entre recálculos sucessivos de engajamento.
func (r *engagementMetricsRepository) Upsert(metrics *domain.EngagementMetrics) error {
	query := squirrel.StatementBuilder.
		Insert("engagement_metrics").
		Columns(
			"business_id",
			"followers_growth",
			"posts_engagement",
			"recent_activity",
			"last_featured_daily",
			"last_featured_weekly",
			"last_featured_monthly",
		).
		Values(
			metrics.BusinessID,
			metrics.FollowersGrowth,
			metrics.PostsEngagement,
			metrics.RecentActivity,
			metrics.LastFeaturedDaily,
			metrics.LastFeaturedWeekly,
			metrics.LastFeaturedMonthly,
		).
		PlaceholderFormat(squirrel.Dollar).
		Suffix(`
			ON CONFLICT (business_id) DO UPDATE SET
				followers_growth = EXCLUDED.followers_growth,
				posts_engagement = EXCLUDED.posts_engagement,
				recent_activity = EXCLUDED.recent_activity,
				updated_at = CURRENT_TIMESTAMP
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// StampLastFeatured carimba o last_featured_* correspondente ao tipo de
// spotlight, criando o registro de métricas caso ainda não exista.
func (r *engagementMetricsRepository) StampLastFeatured(businessID string, spotlightType domain.SpotlightType, featuredAt time.Time) error {
	column, err := lastFeaturedColumn(spotlightType)
	if err != nil {
		return err
	}

	query := squirrel.StatementBuilder.
		Insert("engagement_metrics").
		Columns("business_id", column).
		Values(businessID, featuredAt).
		PlaceholderFormat(squirrel.Dollar).
		Suffix(fmt.Sprintf(`
			ON CONFLICT (business_id) DO UPDATE SET
				%s = EXCLUDED.%s,
				updated_at = CURRENT_TIMESTAMP
		`, column, column))

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de carimbo: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao carimbar last_featured: %w", err)
	}

	return nil
}

func lastFeaturedColumn(spotlightType domain.SpotlightType) (string, error) {
	switch spotlightType {
	case domain.SpotlightTypeDaily:
		return "last_featured_daily", nil
	case domain.SpotlightTypeWeekly:
		return "last_featured_weekly", nil
	case domain.SpotlightTypeMonthly:
		return "last_featured_monthly", nil
	}
	return "", fmt.Errorf("tipo de spotlight inválido: %s", spotlightType)
}
