package transacting

import (
	"errors"
	"fmt"
)

// Tipos de errores de transacciones personalizados
var (
	// Errores de validación
	ErrInvalidInput        = errors.New("datos de la transacción inválidos")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")

	// Errores de ciclo de vida
	ErrTransactionNotFound = errors.New("transacción no encontrada")
	ErrSessionNotFound     = errors.New("sesión no encontrada")

	// Errores de base de datos
	ErrDatabaseOperation = errors.New("error al realizar operación en la base de datos")
)

// TransactionError es un error con contexto adicional de transacciones
type TransactionError struct {
	Err           error  // Error base
	Code          string // Código de error para la API
	TransactionID string // ID de la transacción involucrada (cuando aplica)
	Details       string // Detalles adicionales
}

// Error implementa la interfaz error
func (e *TransactionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna el error subyacente
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica si el error es de validación de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrMissingRequiredData)
}

// NewTransactionError crea un nuevo error de transacción
func NewTransactionError(baseErr error, code string, details string) *TransactionError {
	return &TransactionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
