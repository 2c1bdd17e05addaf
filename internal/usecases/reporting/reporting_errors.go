package reporting

import (
	"errors"
	"fmt"
)

// Tipos de errores de reportes personalizados
var (
	// Errores de validación
	ErrInvalidInput        = errors.New("datos del reporte inválidos")
	ErrNegativeAmount      = errors.New("los valores monetarios no pueden ser negativos")
	ErrFutureDate          = errors.New("la fecha del reporte no puede ser futura")
	ErrInvalidDateRange    = errors.New("rango de fechas inválido")
	ErrRestrictedField     = errors.New("el campo no puede modificarse manualmente")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")

	// Errores de ciclo de vida
	ErrReportNotFound      = errors.New("reporte no encontrado")
	ErrReportAlreadyExists = errors.New("ya existe un reporte para la fecha")
	ErrGenerationConflict  = errors.New("conflicto al generar el reporte")

	// Errores de banco de datos
	ErrDatabaseOperation = errors.New("error al realizar operación en la base de datos")
)

// ReportError es un error con contexto adicional del ciclo de vida de reportes
type ReportError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	Date    string // Fecha involucrada (cuando aplica)
	Details string // Detalles adicionales
}

// Error implementa la interfaz error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna el error subyacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica si el error es de validación de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrFutureDate) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrRestrictedField) ||
		errors.Is(err, ErrMissingRequiredData)
}

// IsConflictError verifica si el error es un conflicto de unicidad por fecha
func IsConflictError(err error) bool {
	return errors.Is(err, ErrReportAlreadyExists) ||
		errors.Is(err, ErrGenerationConflict)
}

// NewReportError crea un nuevo error de reporte
func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewDateReportError crea un nuevo error de reporte con contexto de fecha
func NewDateReportError(baseErr error, code string, date string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Date:    date,
		Details: details,
	}
}
