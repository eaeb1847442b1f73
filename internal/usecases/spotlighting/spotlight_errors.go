package spotlighting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de spotlights
var (
	ErrInvalidSpotlightType = errors.New("tipo de spotlight inválido")
	ErrBusinessNotFound     = errors.New("negócio não encontrado")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// SpotlightError é um erro com contexto adicional para o motor de spotlights
type SpotlightError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	BusinessID string // ID do negócio envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SpotlightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SpotlightError) Unwrap() error {
	return e.Err
}

// NewSpotlightError cria um novo SpotlightError
func NewSpotlightError(err error, code string, details string) *SpotlightError {
	return &SpotlightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
