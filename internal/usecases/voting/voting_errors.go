package voting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de votação
var (
	ErrDuplicateVote     = errors.New("usuário já votou neste mês")
	ErrBusinessNotFound  = errors.New("negócio não encontrado")
	ErrBusinessInactive  = errors.New("negócio inativo não pode receber votos")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// VoteError é um erro com contexto adicional para votação
type VoteError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	UserID     int    // ID do usuário envolvido
	BusinessID string // ID do negócio envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *VoteError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *VoteError) Unwrap() error {
	return e.Err
}

// IsDuplicateVoteError verifica se o erro é de voto duplicado
func IsDuplicateVoteError(err error) bool {
	return errors.Is(err, ErrDuplicateVote)
}

// NewVoteError cria um novo erro de votação
func NewVoteError(baseErr error, code string, userID int, details string) *VoteError {
	return &VoteError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
