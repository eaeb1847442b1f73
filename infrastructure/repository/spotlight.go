package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/pkg/utils"
)

const (
	spotlightsTable = "spotlights s"
)

type SpotlightRepository interface {
	ListActive(spotlightType domain.SpotlightType) ([]*domain.Spotlight, error)
	GetMostRecent(spotlightType domain.SpotlightType) (*domain.Spotlight, error)
	SaveSelections(selections []*domain.SpotlightSelection) error
	DeactivateType(spotlightType domain.SpotlightType) (int64, error)
	DeactivateExpired(now time.Time) (int64, error)
}

type spotlightRepository struct {
	conn *postgres.Connection
}

func NewSpotlightRepository(conn *postgres.Connection) SpotlightRepository {
	return &spotlightRepository{
		conn: conn,
	}
}

func (r *spotlightRepository) ListActive(spotlightType domain.SpotlightType) ([]*domain.Spotlight, error) {
	query, args, err := squirrel.
		Select("s.id, s.business_id, b.name, s.type, s.position, s.start_date, s.end_date, s.is_active, s.created_at").
		From(spotlightsTable).
		Join("businesses b ON s.business_id = b.id").
		Where(squirrel.Eq{"s.type": spotlightType, "s.is_active": true}).
		OrderBy("s.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Spotlight{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	spotlights := make([]*domain.Spotlight, 0)

	for rows.Next() {
		spotlight := &domain.Spotlight{}
		err := rows.Scan(
			&spotlight.ID,
			&spotlight.BusinessID,
			&spotlight.BusinessName,
			&spotlight.Type,
			&spotlight.Position,
			&spotlight.StartDate,
			&spotlight.EndDate,
			&spotlight.IsActive,
			&spotlight.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear spotlight: %w", err)
		}

		spotlights = append(spotlights, spotlight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return spotlights, nil
}

// GetMostRecent retorna o spotlight mais recentemente criado do tipo,
// ativo ou não. Usado pela verificação de due-ness da rotação.
func (r *spotlightRepository) GetMostRecent(spotlightType domain.SpotlightType) (*domain.Spotlight, error) {
	query, args, err := squirrel.
		Select("s.id, s.business_id, s.type, s.position, s.start_date, s.end_date, s.is_active, s.created_at").
		From(spotlightsTable).
		Where(squirrel.Eq{"s.type": spotlightType}).
		OrderBy("s.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	spotlight := &domain.Spotlight{}

	err = r.conn.QueryRow(query, args...).Scan(
		&spotlight.ID,
		&spotlight.BusinessID,
		&spotlight.Type,
		&spotlight.Position,
		&spotlight.StartDate,
		&spotlight.EndDate,
		&spotlight.IsActive,
		&spotlight.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear spotlight: %w", err)
	}

	return spotlight, nil
}

// SaveSelections grava os spotlights e os registros de histórico de um lote
// de seleção na mesma transação. Leitores nunca observam histórico sem o
// spotlight correspondente (ou vice-versa).
func (r *spotlightRepository) SaveSelections(selections []*domain.SpotlightSelection) error {
	if len(selections) == 0 {
		return nil
	}

	spotlightQuery := squirrel.StatementBuilder.
		Insert("spotlights").
		Columns("id", "business_id", "type", "position", "start_date", "end_date", "is_active").
		PlaceholderFormat(squirrel.Dollar)

	historyQuery := squirrel.StatementBuilder.
		Insert("spotlight_history").
		Columns("id", "business_id", "type", "position", "start_date", "end_date", "total_score").
		PlaceholderFormat(squirrel.Dollar)

	for _, selection := range selections {
		spotlightID, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID de spotlight: %w", err)
		}

		historyID, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID de histórico: %w", err)
		}

		spotlightQuery = spotlightQuery.Values(
			spotlightID,
			selection.BusinessID,
			selection.Type,
			selection.Position,
			selection.StartDate,
			selection.EndDate,
			true,
		)

		historyQuery = historyQuery.Values(
			historyID,
			selection.BusinessID,
			selection.Type,
			selection.Position,
			selection.StartDate,
			selection.EndDate,
			selection.TotalScore,
		)
	}

	spotlightSQL, spotlightArgs, err := spotlightQuery.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção de spotlights: %w", err)
	}

	historySQL, historyArgs, err := historyQuery.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção de histórico: %w", err)
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(spotlightSQL, spotlightArgs...); err != nil {
			return fmt.Errorf("erro ao inserir spotlights: %w", err)
		}

		if _, err := tx.Exec(historySQL, historyArgs...); err != nil {
			return fmt.Errorf("erro ao inserir histórico de spotlights: %w", err)
		}

		return nil
	})
}

// DeactivateType arquiva todos os spotlights ativos do tipo. A rotação
// chama antes de commitar um novo lote, garantindo no máximo SlotCount()
// registros ativos por tipo.
func (r *spotlightRepository) DeactivateType(spotlightType domain.SpotlightType) (int64, error) {
	query, args, err := squirrel.
		Update("spotlights").
		Set("is_active", false).
		Where(squirrel.Eq{"is_active": true, "type": spotlightType}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de arquivamento: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao arquivar spotlights do tipo %s: %w", spotlightType, err)
	}

	archived, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return archived, nil
}

// DeactivateExpired arquiva os spotlights cuja data de expiração já passou.
// Os registros permanecem no banco para consulta, apenas deixam de ocupar slot.
func (r *spotlightRepository) DeactivateExpired(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("spotlights").
		Set("is_active", false).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"end_date": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de arquivamento: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao arquivar spotlights expirados: %w", err)
	}

	archived, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return archived, nil
}
