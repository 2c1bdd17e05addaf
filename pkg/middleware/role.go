package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
)

// RoleMiddleware crea un middleware que restringe el acceso según los roles.
// allowedRoles es la lista de roles con permiso para acceder a la ruta.
func RoleMiddleware(allowedRoles []domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Intento de acceso sin autenticación")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.HasRole(role) {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acceso denegado para usuario ID=%s, Roles=%v", userClaims.UserID, userClaims.UserRoles)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tienes permiso para acceder a este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly es un middleware que permite acceso solo a administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.UserRole{domain.RoleAdmin})
}

// ManagerOrAdmin es un middleware que permite acceso a administradores y managers
func ManagerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.UserRole{domain.RoleAdmin, domain.RoleManager})
}

// DealerOrAdmin es un middleware que permite acceso a dealers y administradores
func DealerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.UserRole{domain.RoleAdmin, domain.RoleDealer})
}

// AllRoles es un middleware que permite acceso a cualquier usuario autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.UserRole{
		domain.RoleAdmin, domain.RoleManager, domain.RoleDealer, domain.RoleUser,
	})
}
