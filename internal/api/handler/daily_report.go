package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
	"github.com/vfigueroa/casino-manager-api/pkg/utils"
)

type CreateReportRequest struct {
	Date      string   `json:"date"`
	Reik      int      `json:"reik"`
	Jackpot   int      `json:"jackpot"`
	Ganancias int      `json:"ganancias"`
	Gastos    int      `json:"gastos"`
	Sessions  []string `json:"sessions"`
	Comment   *string  `json:"comment"`
}

// GetOrGenerateReport retorna el reporte de la fecha, generándolo si hace falta.
// El día en curso siempre se recalcula.
func GetOrGenerateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawDate := httprouter.ParamsFromContext(r.Context()).ByName("date")

		date, err := utils.ParseDate(rawDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, usar formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.GetOrGenerate(date)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// CreateReport registra un reporte manual con los números del caller
func CreateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateReportRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, usar formato YYYY-MM-DD", nil)
			return
		}

		report := &domain.DailyReport{
			Date:      date,
			Reik:      req.Reik,
			Jackpot:   req.Jackpot,
			Ganancias: req.Ganancias,
			Gastos:    req.Gastos,
			Sessions:  req.Sessions,
			Comment:   req.Comment,
		}

		created, err := service.Create(report)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// GetReport retorna un reporte por ID
func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetByID(reportID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// ListReports retorna los reportes persistidos. Con from y to filtra por rango
// de fechas.
func ListReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)
		query := r.URL.Query()

		if query.Get("from") != "" || query.Get("to") != "" {
			from, err := utils.ParseDate(query.Get("from"))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha 'from' inválida", nil)
				return
			}

			to, err := utils.ParseDate(query.Get("to"))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha 'to' inválida", nil)
				return
			}

			reports, err := service.ListByRange(from, to, skip, limit)
			if err != nil {
				writeServiceError(w, err)
				return
			}

			respondJSON(w, http.StatusOK, reports)
			return
		}

		reports, err := service.List(skip, limit)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, reports)
	}
}

// ListProfitableReports retorna solo los reportes de días rentables
func ListProfitableReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		reports, err := service.ListProfitable(skip, limit)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, reports)
	}
}

// UpdateReport aplica una actualización manual parcial de un reporte
func UpdateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateDailyReportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		request.ID = reportID

		report, err := service.Update(&request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// DeleteReport elimina un reporte de forma definitiva
func DeleteReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(reportID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
	}
}

// GetReportStats retorna las estadísticas de reportes de un período
func GetReportStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var from, to *time.Time

		if raw := query.Get("from"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha 'from' inválida", nil)
				return
			}
			from = &parsed
		}

		if raw := query.Get("to"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha 'to' inválida", nil)
				return
			}
			to = &parsed
		}

		stats, err := service.Stats(from, to)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
