package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository/mocks"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

// fixedClock congela el tiempo de los tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type reportServiceMocks struct {
	reportRepo     *mocks.MockDailyReportRepository
	sessionRepo    *mocks.MockSessionRepository
	jackpotWinRepo *mocks.MockJackpotWinRepository
	bonoRepo       *mocks.MockBonoRepository
}

func newReportService(t *testing.T, now time.Time) (Reporter, reportServiceMocks) {
	ctrl := gomock.NewController(t)

	m := reportServiceMocks{
		reportRepo:     mocks.NewMockDailyReportRepository(ctrl),
		sessionRepo:    mocks.NewMockSessionRepository(ctrl),
		jackpotWinRepo: mocks.NewMockJackpotWinRepository(ctrl),
		bonoRepo:       mocks.NewMockBonoRepository(ctrl),
	}

	cfg := &config.Config{
		Report: config.Report{FetchLimit: 1000},
	}

	service := NewService(cfg, m.reportRepo, m.sessionRepo, m.jackpotWinRepo, m.bonoRepo, fixedClock{now: now})
	return service, m
}

func expectEmptySources(m reportServiceMocks) {
	m.sessionRepo.EXPECT().
		ListSessionsByStartRange(gomock.Any(), gomock.Any(), 1000).
		Return([]*domain.Session{}, nil)
	m.jackpotWinRepo.EXPECT().
		ListJackpotWinsByCreatedRange(gomock.Any(), gomock.Any(), 1000).
		Return([]*domain.JackpotWin{}, nil)
	m.bonoRepo.EXPECT().
		ListBonosByCreatedRange(gomock.Any(), gomock.Any(), 1000).
		Return([]*domain.Bono{}, nil)
}

func TestService_GetOrGenerate_TodayAlwaysRegenerates(t *testing.T) {
	// 22:30 en Bogotá del 10 de marzo
	now := time.Date(2025, 3, 10, 22, 30, 0, 0, timezone.Bogota())
	today := timezone.DateOf(now)

	service, m := newReportService(t, now)

	start := today.Add(10 * time.Hour)
	end := start.Add(2 * time.Hour)
	sessions := []*domain.Session{
		{ID: "SES001", DealerID: "USR001", StartTime: start, EndTime: &end, Reik: 1000, Tips: 50, HourlyPay: 100},
	}

	from, to := timezone.DayRange(today)
	m.sessionRepo.EXPECT().
		ListSessionsByStartRange(from, to, 1000).
		Return(sessions, nil)
	m.jackpotWinRepo.EXPECT().
		ListJackpotWinsByCreatedRange(from, to, 1000).
		Return([]*domain.JackpotWin{}, nil)
	m.bonoRepo.EXPECT().
		ListBonosByCreatedRange(from, to, 1000).
		Return([]*domain.Bono{}, nil)

	// El día en curso se reconstruye aunque ya exista un reporte persistido.
	m.reportRepo.EXPECT().
		ReplaceDailyReportByDate(gomock.Any()).
		DoAndReturn(func(report *domain.DailyReport) error {
			assert.True(t, report.Date.Equal(today))
			assert.Equal(t, 1000, report.Reik)
			assert.Equal(t, 250, report.Gastos)
			assert.Equal(t, 750, report.Ganancias)
			assert.NotEmpty(t, report.ID)
			return nil
		})

	response, err := service.GetOrGenerate(now)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, 750, response.Ganancias)
	assert.Equal(t, 500, response.NetProfit)
}

func TestService_GetOrGenerate_PastDateReusesExisting(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	pastDate := time.Date(2025, 3, 5, 0, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	comment := "Reporte generado automáticamente con 2 sesiones, 0 jackpots y 1 bonos"
	existing := &domain.DailyReport{
		ID:        "RPT001",
		Date:      pastDate,
		Reik:      3000,
		Ganancias: 2400,
		Gastos:    600,
		Comment:   &comment,
	}

	// Una fecha pasada con reporte persistido no vuelve a tocar las fuentes:
	// no se esperan llamadas sobre sesiones, premios ni bonos.
	m.reportRepo.EXPECT().
		GetDailyReportByDate(pastDate).
		Return(existing, nil)

	response, err := service.GetOrGenerate(pastDate)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "RPT001", response.ID)
	assert.Equal(t, 2400, response.Ganancias)
	assert.Equal(t, 1800, response.NetProfit)
}

func TestService_GetOrGenerate_PastDateGeneratesOnce(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	pastDate := time.Date(2025, 3, 5, 0, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	m.reportRepo.EXPECT().
		GetDailyReportByDate(pastDate).
		Return(nil, nil)

	expectEmptySources(m)

	m.reportRepo.EXPECT().
		InsertDailyReport(gomock.Any()).
		DoAndReturn(func(report *domain.DailyReport) (bool, error) {
			assert.True(t, report.Date.Equal(pastDate))
			assert.Equal(t, 0, report.Reik)
			return true, nil
		})

	response, err := service.GetOrGenerate(pastDate)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.True(t, response.Date.Equal(pastDate))
}

func TestService_GetOrGenerate_InsertRaceReturnsWinner(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	pastDate := time.Date(2025, 3, 5, 0, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	winner := &domain.DailyReport{ID: "RPT-GANADOR", Date: pastDate, Reik: 900}

	gomock.InOrder(
		m.reportRepo.EXPECT().GetDailyReportByDate(pastDate).Return(nil, nil),
		m.reportRepo.EXPECT().InsertDailyReport(gomock.Any()).Return(false, nil),
		m.reportRepo.EXPECT().GetDailyReportByDate(pastDate).Return(winner, nil),
	)

	expectEmptySources(m)

	response, err := service.GetOrGenerate(pastDate)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "RPT-GANADOR", response.ID)
}

func TestService_GetOrGenerate_ReplaceRaceReturnsWinner(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 30, 0, 0, timezone.Bogota())
	today := timezone.DateOf(now)

	service, m := newReportService(t, now)

	winner := &domain.DailyReport{ID: "RPT-GANADOR", Date: today}

	expectEmptySources(m)

	gomock.InOrder(
		m.reportRepo.EXPECT().
			ReplaceDailyReportByDate(gomock.Any()).
			Return(repository.ErrDuplicateReportDate),
		m.reportRepo.EXPECT().
			GetDailyReportByDate(today).
			Return(winner, nil),
	)

	response, err := service.GetOrGenerate(now)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "RPT-GANADOR", response.ID)
}

func TestService_GetOrGenerate_RaceWithoutWinnerFails(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	pastDate := time.Date(2025, 3, 5, 0, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	gomock.InOrder(
		m.reportRepo.EXPECT().GetDailyReportByDate(pastDate).Return(nil, nil),
		m.reportRepo.EXPECT().InsertDailyReport(gomock.Any()).Return(false, nil),
		m.reportRepo.EXPECT().GetDailyReportByDate(pastDate).Return(nil, nil),
	)

	expectEmptySources(m)

	response, err := service.GetOrGenerate(pastDate)

	assert.Nil(t, response)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationConflict)
}

func TestService_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	pastDate := time.Date(2025, 3, 5, 0, 0, 0, 0, timezone.Bogota())

	tests := []struct {
		name     string
		report   *domain.DailyReport
		setup    func(m reportServiceMocks)
		validate func(t *testing.T, response *domain.DailyReportResponse, err error)
	}{
		{
			name:   "Reporte manual válido",
			report: &domain.DailyReport{Date: pastDate, Reik: 2000, Gastos: 500, Ganancias: 1500},
			setup: func(m reportServiceMocks) {
				m.reportRepo.EXPECT().GetDailyReportByDate(pastDate).Return(nil, nil)
				m.reportRepo.EXPECT().
					InsertDailyReport(gomock.Any()).
					DoAndReturn(func(report *domain.DailyReport) (bool, error) {
						assert.NotEmpty(t, report.ID)
						assert.NotNil(t, report.Sessions)
						assert.NotNil(t, report.JackpotWins)
						assert.NotNil(t, report.Bonos)
						return true, nil
					})
			},
			validate: func(t *testing.T, response *domain.DailyReportResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1500, response.Ganancias)
			},
		},
		{
			name:   "Fecha duplicada detectada antes de insertar",
			report: &domain.DailyReport{Date: pastDate, Reik: 2000},
			setup: func(m reportServiceMocks) {
				m.reportRepo.EXPECT().
					GetDailyReportByDate(pastDate).
					Return(&domain.DailyReport{ID: "RPT001", Date: pastDate}, nil)
			},
			validate: func(t *testing.T, response *domain.DailyReportResponse, err error) {
				assert.Nil(t, response)
				assert.ErrorIs(t, err, ErrReportAlreadyExists)
			},
		},
		{
			name:   "Fecha duplicada detectada al insertar",
			report: &domain.DailyReport{Date: pastDate, Reik: 2000},
			setup: func(m reportServiceMocks) {
				m.reportRepo.EXPECT().GetDailyReportByDate(pastDate).Return(nil, nil)
				m.reportRepo.EXPECT().InsertDailyReport(gomock.Any()).Return(false, nil)
			},
			validate: func(t *testing.T, response *domain.DailyReportResponse, err error) {
				assert.Nil(t, response)
				assert.ErrorIs(t, err, ErrReportAlreadyExists)
			},
		},
		{
			name:   "Fecha futura rechazada",
			report: &domain.DailyReport{Date: now.AddDate(0, 0, 2), Reik: 100},
			setup:  func(m reportServiceMocks) {},
			validate: func(t *testing.T, response *domain.DailyReportResponse, err error) {
				assert.Nil(t, response)
				assert.ErrorIs(t, err, ErrInvalidInput)
			},
		},
		{
			name:   "Reik negativo rechazado",
			report: &domain.DailyReport{Date: pastDate, Reik: -1},
			setup:  func(m reportServiceMocks) {},
			validate: func(t *testing.T, response *domain.DailyReportResponse, err error) {
				assert.Nil(t, response)
				assert.ErrorIs(t, err, ErrInvalidInput)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newReportService(t, now)
			tt.setup(m)

			response, err := service.Create(tt.report)
			tt.validate(t, response, err)
		})
	}
}

func TestService_Update(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	pastDate := time.Date(2025, 3, 5, 0, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	comment := "cierre revisado"
	stored := &domain.DailyReport{
		ID:        "RPT001",
		Date:      pastDate,
		Reik:      1000,
		Jackpot:   200,
		Ganancias: 700,
		Gastos:    300,
		JackpotWins: []domain.JackpotWinEntry{
			{JackpotWinID: "JPW001", Sum: 150},
		},
	}

	newReik := 1200
	request := &domain.UpdateDailyReportRequest{
		ID:      "RPT001",
		Reik:    &newReik,
		Comment: &comment,
	}

	m.reportRepo.EXPECT().GetDailyReportByID("RPT001").Return(stored, nil)
	m.reportRepo.EXPECT().
		UpdateDailyReport(gomock.Any()).
		DoAndReturn(func(report *domain.DailyReport) error {
			assert.Equal(t, 1200, report.Reik)
			assert.Equal(t, &comment, report.Comment)
			// Los campos derivados no cambian por actualización manual.
			assert.Equal(t, []domain.JackpotWinEntry{
				{JackpotWinID: "JPW001", Sum: 150},
			}, report.JackpotWins)
			return nil
		})

	response, err := service.Update(request)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, 1200, response.Reik)
}

func TestService_Update_NotFound(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	m.reportRepo.EXPECT().GetDailyReportByID("RPT404").Return(nil, nil)

	response, err := service.Update(&domain.UpdateDailyReportRequest{ID: "RPT404"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestService_Delete(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())

	t.Run("Reporte existente se elimina", func(t *testing.T) {
		service, m := newReportService(t, now)
		m.reportRepo.EXPECT().DeleteDailyReport("RPT001").Return(true, nil)

		assert.NoError(t, service.Delete("RPT001"))
	})

	t.Run("Reporte inexistente retorna no encontrado", func(t *testing.T) {
		service, m := newReportService(t, now)
		m.reportRepo.EXPECT().DeleteDailyReport("RPT404").Return(false, nil)

		assert.ErrorIs(t, service.Delete("RPT404"), ErrReportNotFound)
	})
}

func TestService_ListByRange_InvalidRange(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	service, _ := newReportService(t, now)

	from := time.Date(2025, 3, 8, 0, 0, 0, 0, timezone.Bogota())
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, timezone.Bogota())

	responses, err := service.ListByRange(from, to, 0, 50)

	assert.Nil(t, responses)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestService_Stats(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	m.reportRepo.EXPECT().
		DailyReportTotals(nil, nil).
		Return(&domain.ReportTotals{
			TotalReports:   3,
			TotalReik:      6000,
			TotalGanancias: 2000,
			TotalGastos:    1200,
		}, nil)

	reports := []*domain.DailyReport{
		{Date: time.Date(2025, 3, 7, 0, 0, 0, 0, timezone.Bogota()), Ganancias: 2000, Gastos: 500},
		{Date: time.Date(2025, 3, 8, 0, 0, 0, 0, timezone.Bogota()), Ganancias: 300, Gastos: 400},
		{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, timezone.Bogota()), Ganancias: 900, Gastos: 300},
	}
	m.reportRepo.EXPECT().ListDailyReports(0, 1000).Return(reports, nil)

	stats, err := service.Stats(nil, nil)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.TotalReports)
	assert.Equal(t, 2000, stats.TotalNetProfit)
	assert.Equal(t, 2, stats.ProfitableDays)
	assert.Equal(t, 1, stats.UnprofitableDays)
	require.NotNil(t, stats.BestDay)
	assert.Equal(t, "2025-03-07", stats.BestDay.Date)
	assert.Equal(t, 1500, stats.BestDay.NetProfit)
	require.NotNil(t, stats.WorstDay)
	assert.Equal(t, "2025-03-08", stats.WorstDay.Date)
	assert.Equal(t, -100, stats.WorstDay.NetProfit)
	assert.InDelta(t, 666.67, stats.AverageDailyProfit, 0.001)
}

func TestService_Stats_EmptyPeriod(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())

	service, m := newReportService(t, now)

	m.reportRepo.EXPECT().
		DailyReportTotals(nil, nil).
		Return(&domain.ReportTotals{}, nil)

	stats, err := service.Stats(nil, nil)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.TotalReports)
	assert.Nil(t, stats.BestDay)
	assert.Nil(t, stats.WorstDay)
}

func TestService_GetByID_NotFound(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	service, m := newReportService(t, now)

	m.reportRepo.EXPECT().GetDailyReportByID("RPT404").Return(nil, nil)

	response, err := service.GetByID("RPT404")

	assert.Nil(t, response)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportNotFound)

	var reportErr *ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, "RES_001", reportErr.Code)
}
