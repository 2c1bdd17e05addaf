package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/authenticating"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
)

// GetUser retorna la información de un usuario por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		user, err := service.GetUserProfile(userID)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

// CreateUser crea un nuevo usuario
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user *domain.User

		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		created, err := service.CreateUser(user)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// ListUsers retorna los usuarios registrados
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		users, err := service.ListUsers(skip, limit)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, users)
	}
}

// UpdateUser aplica una actualización parcial de un usuario
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		var request domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		request.ID = userID

		if err := service.UpdateUser(&request); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "actualizado"})
	}
}

// ChangePassword cambia la contraseña de un usuario verificando la actual
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		var request domain.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		if err := service.ChangePassword(userID, request.CurrentPassword, request.NewPassword); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "contraseña actualizada"})
	}
}

// DeleteUser elimina un usuario
func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		if err := service.DeleteUser(userID); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
	}
}
