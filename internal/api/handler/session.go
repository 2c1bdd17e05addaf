package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/sessioning"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
)

type EndSessionRequest struct {
	EndTime *time.Time `json:"end_time"`
}

type AmountRequest struct {
	Amount int `json:"amount"`
}

// CreateSession abre una nueva sesión de trabajo para un dealer
func CreateSession(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var session *domain.Session

		if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		created, err := service.CreateSession(session)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// GetSession retorna una sesión por ID
func GetSession(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.GetSessionByID(sessionID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// ListSessions retorna las sesiones, opcionalmente filtradas por dealer o estado
func ListSessions(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		var (
			sessions []*domain.Session
			err      error
		)

		switch {
		case r.URL.Query().Get("dealer_id") != "":
			sessions, err = service.ListSessionsByDealer(r.URL.Query().Get("dealer_id"), skip, limit)
		case r.URL.Query().Get("active") == "true":
			sessions, err = service.ListActiveSessions(skip, limit)
		default:
			sessions, err = service.ListSessions(skip, limit)
		}

		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, sessions)
	}
}

// EndSession cierra una sesión abierta
func EndSession(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req EndSessionRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
				return
			}
		}

		session, err := service.EndSession(sessionID, req.EndTime)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// AddSessionJackpot acumula un monto al jackpot de la sesión
func AddSessionJackpot(service sessioning.Sessioner) http.HandlerFunc {
	return addToSession(service.AddJackpot)
}

// AddSessionReik acumula un monto al reik de la sesión
func AddSessionReik(service sessioning.Sessioner) http.HandlerFunc {
	return addToSession(service.AddReik)
}

// AddSessionTips acumula propinas a la sesión
func AddSessionTips(service sessioning.Sessioner) http.HandlerFunc {
	return addToSession(service.AddTips)
}

func addToSession(apply func(string, int) (*domain.Session, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		session, err := apply(sessionID, req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// UpdateSession aplica una actualización parcial de la sesión
func UpdateSession(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		request.ID = sessionID

		session, err := service.UpdateSession(&request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// DeleteSession elimina una sesión
func DeleteSession(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSession(sessionID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
	}
}

// GetSessionStats retorna los totales agregados de sesiones
func GetSessionStats(service sessioning.Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats()
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
