package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/pkg/utils"
)

const (
	spotlightVotesTable = "spotlight_votes sv"

	// Código de erro do PostgreSQL para violação de constraint única
	pqUniqueViolation = "23505"
)

// ErrDuplicateVote indica que o usuário já votou no mês. A unicidade de
// (user_id, month) é garantida por constraint no banco, não por
// check-then-insert, para permanecer correta sob votos concorrentes.
var ErrDuplicateVote = errors.New("usuário já votou neste mês")

type SpotlightVoteRepository interface {
	Insert(vote *domain.SpotlightVote) error
	CountsForMonth(month string) ([]*domain.VoteCount, error)
	HasVoted(userID int, month string) (bool, error)
}

type spotlightVoteRepository struct {
	conn *postgres.Connection
}

func NewSpotlightVoteRepository(conn *postgres.Connection) SpotlightVoteRepository {
	return &spotlightVoteRepository{
		conn: conn,
	}
}

func (r *spotlightVoteRepository) Insert(vote *domain.SpotlightVote) error {
	voteID, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID de voto: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("spotlight_votes").
		Columns("id", "business_id", "user_id", "month").
		Values(voteID, vote.BusinessID, vote.UserID, vote.Month).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if string(pqErr.Code) == pqUniqueViolation {
				return ErrDuplicateVote
			}
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	vote.ID = voteID

	return nil
}

// CountsForMonth retorna a contagem de votos por negócio no mês, em ordem
// decrescente de votos.
func (r *spotlightVoteRepository) CountsForMonth(month string) ([]*domain.VoteCount, error) {
	query, args, err := squirrel.
		Select("sv.business_id", "b.name", "COUNT(1) AS votes").
		From(spotlightVotesTable).
		Join("businesses b ON sv.business_id = b.id").
		Where(squirrel.Eq{"sv.month": month}).
		GroupBy("sv.business_id", "b.name").
		OrderBy("votes DESC", "sv.business_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.VoteCount{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]*domain.VoteCount, 0)

	for rows.Next() {
		count := &domain.VoteCount{}
		if err := rows.Scan(&count.BusinessID, &count.BusinessName, &count.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem de votos: %w", err)
		}

		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *spotlightVoteRepository) HasVoted(userID int, month string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(spotlightVotesTable).
		Where(squirrel.Eq{"sv.user_id": userID, "sv.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar voto: %w", err)
	}

	return count > 0, nil
}
