package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/authenticating"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
	"github.com/vfigueroa/casino-manager-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna la información del usuario autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

// handleAuthError traduce errores de autenticación a la respuesta apropiada
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciales inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuario desactivado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno al autenticar", nil)
	}
}
