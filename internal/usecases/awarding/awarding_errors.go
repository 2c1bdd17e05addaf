package awarding

import (
	"errors"
	"fmt"
)

// Tipos de errores de premios y bonos personalizados
var (
	// Errores de validación
	ErrInvalidInput        = errors.New("datos del premio inválidos")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")

	// Errores de ciclo de vida
	ErrBonoNotFound       = errors.New("bono no encontrado")
	ErrJackpotWinNotFound = errors.New("premio de jackpot no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrSessionNotFound    = errors.New("sesión no encontrada")

	// Errores de base de datos
	ErrDatabaseOperation = errors.New("error al realizar operación en la base de datos")
)

// AwardError es un error con contexto adicional de premios
type AwardError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	AwardID string // ID del premio o bono involucrado (cuando aplica)
	Details string // Detalles adicionales
}

// Error implementa la interfaz error
func (e *AwardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna el error subyacente
func (e *AwardError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica si el error es de validación de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrMissingRequiredData)
}

// NewAwardError crea un nuevo error de premio
func NewAwardError(baseErr error, code string, details string) *AwardError {
	return &AwardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
