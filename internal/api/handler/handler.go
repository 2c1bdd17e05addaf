package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/awarding"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/sessioning"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/transacting"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000
)

// respondJSON escribe la respuesta como JSON con el estado dado
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error("Error al enviar respuesta:", err)
	}
}

// pagination extrae skip y limit de los parámetros de consulta
func pagination(r *http.Request) (int, int) {
	skip := 0
	limit := defaultListLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			skip = value
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 && value <= maxListLimit {
			limit = value
		}
	}

	return skip, limit
}

// writeServiceError traduce un error de un usecase a la respuesta de la API.
// Los errores tipados de los usecases traen su propio código.
func writeServiceError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	var sessionErr *sessioning.SessionError
	if errors.As(err, &sessionErr) {
		apiErrors.WriteError(w, sessionErr.Code, sessionErr.Error(), nil)
		return
	}

	var transactionErr *transacting.TransactionError
	if errors.As(err, &transactionErr) {
		apiErrors.WriteError(w, transactionErr.Code, transactionErr.Error(), nil)
		return
	}

	var awardErr *awarding.AwardError
	if errors.As(err, &awardErr) {
		apiErrors.WriteError(w, awardErr.Code, awardErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
