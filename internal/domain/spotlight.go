package domain

import "time"

// SpotlightType identifica o tipo de slot promocional
type SpotlightType string

const (
	SpotlightTypeDaily   SpotlightType = "daily"
	SpotlightTypeWeekly  SpotlightType = "weekly"
	SpotlightTypeMonthly SpotlightType = "monthly"
)

// SpotlightTypes lista os tipos na ordem em que a rotação os processa
var SpotlightTypes = []SpotlightType{
	SpotlightTypeDaily,
	SpotlightTypeWeekly,
	SpotlightTypeMonthly,
}

// IsValid verifica se o tipo de spotlight é conhecido
func (t SpotlightType) IsValid() bool {
	switch t {
	case SpotlightTypeDaily, SpotlightTypeWeekly, SpotlightTypeMonthly:
		return true
	}
	return false
}

// SlotCount retorna quantos slots ativos o tipo comporta simultaneamente
func (t SpotlightType) SlotCount() int {
	switch t {
	case SpotlightTypeDaily:
		return 3
	case SpotlightTypeWeekly:
		return 5
	case SpotlightTypeMonthly:
		return 1
	}
	return 0
}

// Cooldown retorna o período mínimo desde o último destaque do tipo
// antes que o negócio possa ser selecionado novamente
func (t SpotlightType) Cooldown() time.Duration {
	switch t {
	case SpotlightTypeDaily:
		return 24 * time.Hour
	case SpotlightTypeWeekly:
		return 7 * 24 * time.Hour
	case SpotlightTypeMonthly:
		return 30 * 24 * time.Hour
	}
	return 0
}

// SoftInterval retorna o intervalo "devido" entre rotações do tipo.
// Os valores são menores que a duração do slot para tolerar jitter do
// agendador e drift de relógio.
func (t SpotlightType) SoftInterval() time.Duration {
	switch t {
	case SpotlightTypeDaily:
		return 20 * time.Hour
	case SpotlightTypeWeekly:
		return 156 * time.Hour // 6.5 dias
	case SpotlightTypeMonthly:
		return 600 * time.Hour // 25 dias
	}
	return 0
}

// EndDateFrom calcula a data de expiração de um slot criado em start
func (t SpotlightType) EndDateFrom(start time.Time) time.Time {
	switch t {
	case SpotlightTypeDaily:
		return start.AddDate(0, 0, 1)
	case SpotlightTypeWeekly:
		return start.AddDate(0, 0, 7)
	case SpotlightTypeMonthly:
		return start.AddDate(0, 1, 0)
	}
	return start
}

// Spotlight representa um slot promocional ativo ou arquivado.
// No máximo um registro ativo por (business_id, type); registros expirados
// são desativados pela rotação, nunca removidos fisicamente.
type Spotlight struct {
	ID           string        `json:"id"`
	BusinessID   string        `json:"business_id"`
	BusinessName string        `json:"business_name,omitempty"`
	Type         SpotlightType `json:"type"`
	Position     int           `json:"position"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
}

// SpotlightHistory é a trilha de auditoria imutável de cada seleção.
// É a única fonte consultada para verificação de cooldown.
type SpotlightHistory struct {
	ID         string        `json:"id"`
	BusinessID string        `json:"business_id"`
	Type       SpotlightType `json:"type"`
	Position   int           `json:"position"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	TotalScore float64       `json:"total_score"`
	CreatedAt  time.Time     `json:"created_at"`
}

// SpotlightSelection é a unidade de commit de uma seleção: gera um registro
// de Spotlight e um de SpotlightHistory na mesma transação.
type SpotlightSelection struct {
	BusinessID string
	Type       SpotlightType
	Position   int
	StartDate  time.Time
	EndDate    time.Time
	TotalScore float64
}
