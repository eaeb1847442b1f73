package domain

import "time"

// SpotlightVote registra o voto mensal de um usuário em um negócio.
// Invariante: no máximo um voto por (user_id, month), garantido por
// constraint única no banco.
type SpotlightVote struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	UserID     int       `json:"user_id"`
	Month      string    `json:"month"` // formato "2006-01"
	CreatedAt  time.Time `json:"created_at"`
}

// VoteCount é o total de votos de um negócio em um mês
type VoteCount struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name,omitempty"`
	Count        int    `json:"count"`
}

// MonthlyVoteStats resume a votação do mês corrente
type MonthlyVoteStats struct {
	Month           string       `json:"month"`
	TotalVotes      int          `json:"total_votes"`
	DistinctVoters  int          `json:"distinct_voters"`
	BusinessesCount int          `json:"businesses_count"`
	DaysRemaining   int          `json:"days_remaining"`
	TopBusinesses   []*VoteCount `json:"top_businesses"`
}

// MonthKey formata uma data como chave de mês de votação ("YYYY-MM")
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
