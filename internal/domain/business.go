package domain

import "time"

// Business representa um negócio cadastrado na plataforma.
// O motor de spotlight apenas lê esses dados, nunca os altera.
type Business struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      *string   `json:"category"`
	IsActive      bool      `json:"is_active"`
	IsVerified    bool      `json:"is_verified"`
	FollowerCount int       `json:"follower_count"`
	ReviewCount   int       `json:"review_count"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// CategoryOrDefault retorna a categoria do negócio ou "uncategorized"
// quando o campo está ausente ou vazio.
func (b *Business) CategoryOrDefault() string {
	if b.Category == nil || *b.Category == "" {
		return "uncategorized"
	}
	return *b.Category
}
