package comparing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de comparação de pedidos
var (
	// Erros de uso da API de agregação (bug do chamador, não dado ruim)
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrMissingYears     = errors.New("at least one year is required")

	// Erros de fonte de dados
	ErrFetchOrders = errors.New("error fetching orders")
)

// ComparisonError é um erro com contexto adicional para comparações
type ComparisonError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ComparisonError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ComparisonError) Unwrap() error {
	return e.Err
}

// NewComparisonError cria um novo ComparisonError
func NewComparisonError(err error, code string, details string) *ComparisonError {
	return &ComparisonError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro foi causado por parâmetros inválidos
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDimension) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrMissingYears)
}
