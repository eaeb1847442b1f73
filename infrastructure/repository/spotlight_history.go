package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

const (
	spotlightHistoryTable = "spotlight_history sh"
)

// SpotlightHistoryRepository é somente leitura: os registros de histórico
// são gravados pelo SpotlightRepository na mesma transação da seleção e
// nunca são atualizados ou removidos.
type SpotlightHistoryRepository interface {
	MostRecentByBusiness(businessID string, spotlightType domain.SpotlightType) (*domain.SpotlightHistory, error)
	RecentSince(spotlightType domain.SpotlightType, since time.Time) ([]*domain.SpotlightHistory, error)
	ListByBusiness(businessID string) ([]*domain.SpotlightHistory, error)
}

type spotlightHistoryRepository struct {
	conn *postgres.Connection
}

func NewSpotlightHistoryRepository(conn *postgres.Connection) SpotlightHistoryRepository {
	return &spotlightHistoryRepository{
		conn: conn,
	}
}

func (r *spotlightHistoryRepository) MostRecentByBusiness(businessID string, spotlightType domain.SpotlightType) (*domain.SpotlightHistory, error) {
	query, args, err := squirrel.
		Select("sh.id, sh.business_id, sh.type, sh.position, sh.start_date, sh.end_date, sh.total_score, sh.created_at").
		From(spotlightHistoryTable).
		Where(squirrel.Eq{"sh.business_id": businessID, "sh.type": spotlightType}).
		OrderBy("sh.end_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	history, err := r.scanHistoryRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
	}

	return history, nil
}

// RecentSince retorna os registros do tipo cujo end_date é posterior a
// since. Usado pelo filtro de elegibilidade para aplicar o cooldown em uma
// única consulta por tipo.
func (r *spotlightHistoryRepository) RecentSince(spotlightType domain.SpotlightType, since time.Time) ([]*domain.SpotlightHistory, error) {
	query, args, err := squirrel.
		Select("sh.id, sh.business_id, sh.type, sh.position, sh.start_date, sh.end_date, sh.total_score, sh.created_at").
		From(spotlightHistoryTable).
		Where(squirrel.Eq{"sh.type": spotlightType}).
		Where(squirrel.Gt{"sh.end_date": since}).
		OrderBy("sh.end_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryHistory(query, args...)
}

func (r *spotlightHistoryRepository) ListByBusiness(businessID string) ([]*domain.SpotlightHistory, error) {
	query, args, err := squirrel.
		Select("sh.id, sh.business_id, sh.type, sh.position, sh.start_date, sh.end_date, sh.total_score, sh.created_at").
		From(spotlightHistoryTable).
		Where(squirrel.Eq{"sh.business_id": businessID}).
		OrderBy("sh.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryHistory(query, args...)
}

func (r *spotlightHistoryRepository) queryHistory(query string, args ...interface{}) ([]*domain.SpotlightHistory, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.SpotlightHistory{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SpotlightHistory, 0)

	for rows.Next() {
		history := &domain.SpotlightHistory{}
		err := rows.Scan(
			&history.ID,
			&history.BusinessID,
			&history.Type,
			&history.Position,
			&history.StartDate,
			&history.EndDate,
			&history.TotalScore,
			&history.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}

		entries = append(entries, history)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *spotlightHistoryRepository) scanHistoryRow(row *sql.Row) (*domain.SpotlightHistory, error) {
	history := &domain.SpotlightHistory{}

	err := row.Scan(
		&history.ID,
		&history.BusinessID,
		&history.Type,
		&history.Position,
		&history.StartDate,
		&history.EndDate,
		&history.TotalScore,
		&history.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return history, nil
}
