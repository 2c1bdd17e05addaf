package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error de la API
const (
	// Errores de autenticación
	ErrInvalidCredentials    = "AUTH_001" // Credenciales inválidas
	ErrUserDisabled          = "AUTH_002" // Usuario desactivado
	ErrUserNotFound          = "AUTH_003" // Usuario no encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilegios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuario ya existe

	// Errores de validación
	ErrInvalidRequest      = "VAL_001" // Petición inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores de recursos
	ErrResourceNotFound = "RES_001" // Recurso no encontrado
	ErrResourceConflict = "RES_002" // Conflicto con el estado actual del recurso

	// Errores del servidor
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de operación de base de datos
	ErrUnavailable       = "SRV_003" // Servicio o almacenamiento no disponible
)

// Mapeo de códigos de error a estados HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrResourceConflict:      http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrUnavailable:           http.StatusServiceUnavailable,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`              // Código de error para el cliente
	Message string `json:"message,omitempty"` // Mensaje descriptivo (opcional)
	Details any    `json:"details,omitempty"` // Detalles adicionales (opcional)
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
