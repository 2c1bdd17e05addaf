package sessioning

import (
	"errors"
	"fmt"
)

// Tipos de errores de sesiones personalizados
var (
	// Errores de validación
	ErrInvalidInput        = errors.New("datos de la sesión inválidos")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")
	ErrNegativeAmount      = errors.New("los montos no pueden ser negativos")

	// Errores de ciclo de vida
	ErrSessionNotFound     = errors.New("sesión no encontrada")
	ErrSessionAlreadyEnded = errors.New("la sesión ya fue finalizada")
	ErrDealerSessionActive = errors.New("el dealer ya tiene una sesión activa")
	ErrDealerNotFound      = errors.New("dealer no encontrado")
	ErrDealerRoleRequired  = errors.New("el usuario no tiene rol de dealer")

	// Errores de base de datos
	ErrDatabaseOperation = errors.New("error al realizar operación en la base de datos")
)

// SessionError es un error con contexto adicional de sesiones
type SessionError struct {
	Err       error  // Error base
	Code      string // Código de error para la API
	SessionID string // ID de la sesión involucrada (cuando aplica)
	Details   string // Detalles adicionales
}

// Error implementa la interfaz error
func (e *SessionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna el error subyacente
func (e *SessionError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica si el error es de validación de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrMissingRequiredData) ||
		errors.Is(err, ErrNegativeAmount)
}

// NewSessionError crea un nuevo error de sesión
func NewSessionError(baseErr error, code string, details string) *SessionError {
	return &SessionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewSessionIDError crea un nuevo error con contexto de sesión
func NewSessionIDError(baseErr error, code string, sessionID string, details string) *SessionError {
	return &SessionError{
		Err:       baseErr,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
