// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

const (
	businessesTable = "businesses b"
)

type BusinessRepository interface {
	GetByID(businessID string) (*domain.Business, error)
	ListActive(onlyVerified bool) ([]*domain.Business, error)
	HasVerifiedBusiness() (bool, error)
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) GetByID(businessID string) (*domain.Business, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.category, b.is_active, b.is_verified, b.follower_count, b.review_count, b.rating, b.created_at").
		From(businessesTable).
		Where(squirrel.Eq{"b.id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	business, err := r.scanBusinessRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
	}

	return business, nil
}

func (r *businessRepository) ListActive(onlyVerified bool) ([]*domain.Business, error) {
	queryBuilder := squirrel.
		Select("b.id, b.name, b.category, b.is_active, b.is_verified, b.follower_count, b.review_count, b.rating, b.created_at").
		From(businessesTable).
		Where(squirrel.Eq{"b.is_active": true}).
		OrderBy("b.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyVerified {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.is_verified": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Business{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)

	for rows.Next() {
		business, err := r.scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}

		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return businesses, nil
}

func (r *businessRepository) HasVerifiedBusiness() (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(businessesTable).
		Where(squirrel.Eq{"b.is_verified": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao contar negócios verificados: %w", err)
	}

	return count > 0, nil
}

func (r *businessRepository) scanBusiness(rows *sql.Rows) (*domain.Business, error) {
	business := &domain.Business{}

	err := rows.Scan(
		&business.ID,
		&business.Name,
		&business.Category,
		&business.IsActive,
		&business.IsVerified,
		&business.FollowerCount,
		&business.ReviewCount,
		&business.Rating,
		&business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return business, nil
}

func (r *businessRepository) scanBusinessRow(row *sql.Row) (*domain.Business, error) {
	business := &domain.Business{}

	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.Category,
		&business.IsActive,
		&business.IsVerified,
		&business.FollowerCount,
		&business.ReviewCount,
		&business.Rating,
		&business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return business, nil
}
