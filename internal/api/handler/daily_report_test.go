package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting/mocks"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

func requestWithParams(method, target string, params httprouter.Params) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestGetOrGenerateReport(t *testing.T) {
	t.Run("Fecha válida llega al servicio como medianoche de Bogotá", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		expectedDate := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())
		service.EXPECT().
			GetOrGenerate(expectedDate).
			Return(&domain.DailyReportResponse{DailyReport: domain.DailyReport{ID: "RPT001"}}, nil)

		w := httptest.NewRecorder()
		r := requestWithParams(http.MethodGet, "/v1/reports/date/2025-03-10",
			httprouter.Params{{Key: "date", Value: "2025-03-10"}})

		GetOrGenerateReport(service)(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var response domain.DailyReportResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "RPT001", response.ID)
	})

	t.Run("Fecha con formato inválido retorna 400 sin tocar el servicio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		w := httptest.NewRecorder()
		r := requestWithParams(http.MethodGet, "/v1/reports/date/10-03-2025",
			httprouter.Params{{Key: "date", Value: "10-03-2025"}})

		GetOrGenerateReport(service)(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListReports_RangeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, timezone.Bogota())
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())
	service.EXPECT().
		ListByRange(from, to, 0, 50).
		Return([]*domain.DailyReportResponse{{DailyReport: domain.DailyReport{ID: "RPT001"}}}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/reports?from=2025-03-01&to=2025-03-10", nil)

	ListReports(service)(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var response []*domain.DailyReportResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "RPT001", response[0].ID)
}

func TestGetReportStats_PeriodFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, timezone.Bogota())
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())
	service.EXPECT().
		Stats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(gotFrom, gotTo *time.Time) (*domain.ReportStats, error) {
			require.NotNil(t, gotFrom)
			require.NotNil(t, gotTo)
			assert.True(t, gotFrom.Equal(from))
			assert.True(t, gotTo.Equal(to))
			return &domain.ReportStats{ReportTotals: domain.ReportTotals{TotalReports: 3}}, nil
		})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/stats/reports?from=2025-03-01&to=2025-03-10", nil)

	GetReportStats(service)(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.ReportStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.Equal(t, 3, stats.TotalReports)
}
