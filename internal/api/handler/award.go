package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/awarding"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
)

// CreateBono registra un bono para un usuario
func CreateBono(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bono *domain.Bono

		if err := json.NewDecoder(r.Body).Decode(&bono); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		created, err := service.CreateBono(bono)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// GetBono retorna un bono por ID
func GetBono(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bonoID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		bono, err := service.GetBonoByID(bonoID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, bono)
	}
}

// ListBonos retorna los bonos, opcionalmente filtrados por usuario o sesión
func ListBonos(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)
		userID, sessionID := optionalFilters(r)

		bonos, err := service.ListBonos(userID, sessionID, skip, limit)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, bonos)
	}
}

// UpdateBono reemplaza los datos modificables de un bono
func UpdateBono(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bonoID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var bono domain.Bono
		if err := json.NewDecoder(r.Body).Decode(&bono); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		bono.ID = bonoID

		updated, err := service.UpdateBono(&bono)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// DeleteBono elimina un bono
func DeleteBono(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bonoID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteBono(bonoID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
	}
}

// GetUserBonoTotal retorna el total de bonos otorgados a un usuario
func GetUserBonoTotal(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		total, err := service.SumBonosByUser(userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]int{"total": total})
	}
}

// CreateJackpotWin registra un premio de jackpot pagado
func CreateJackpotWin(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var win *domain.JackpotWin

		if err := json.NewDecoder(r.Body).Decode(&win); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		created, err := service.CreateJackpotWin(win)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// GetJackpotWin retorna un premio por ID
func GetJackpotWin(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		winID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		win, err := service.GetJackpotWinByID(winID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, win)
	}
}

// ListJackpotWins retorna los premios, opcionalmente filtrados
func ListJackpotWins(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		if r.URL.Query().Get("high_value") == "true" {
			wins, err := service.ListHighValueJackpotWins(skip, limit)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, wins)
			return
		}

		userID, sessionID := optionalFilters(r)

		wins, err := service.ListJackpotWins(userID, sessionID, skip, limit)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, wins)
	}
}

// GetBiggestJackpotWin retorna el premio más grande registrado
func GetBiggestJackpotWin(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, err := service.GetBiggestJackpotWin()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, win)
	}
}

// UpdateJackpotWin reemplaza los datos modificables de un premio
func UpdateJackpotWin(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		winID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var win domain.JackpotWin
		if err := json.NewDecoder(r.Body).Decode(&win); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		win.ID = winID

		updated, err := service.UpdateJackpotWin(&win)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// DeleteJackpotWin elimina un premio
func DeleteJackpotWin(service awarding.Awarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		winID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteJackpotWin(winID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
	}
}

func optionalFilters(r *http.Request) (*string, *string) {
	var userID, sessionID *string

	if value := r.URL.Query().Get("user_id"); value != "" {
		userID = &value
	}
	if value := r.URL.Query().Get("session_id"); value != "" {
		sessionID = &value
	}

	return userID, sessionID
}
