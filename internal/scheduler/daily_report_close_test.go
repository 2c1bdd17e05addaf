package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting/mocks"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newCloseService(t *testing.T, now time.Time) (*DailyReportCloseService, *mocks.MockReporter) {
	ctrl := gomock.NewController(t)
	reportService := mocks.NewMockReporter(ctrl)

	service := &DailyReportCloseService{
		scheduler: gocron.NewScheduler(timezone.Bogota()),
		config: DailyReportCloseConfig{
			CronSchedule: "0 1 * * *",
			CloseEnabled: true,
		},
		reportService: reportService,
		clock:         fixedClock{now: now},
	}

	return service, reportService
}

func TestDailyReportCloseService_CloseYesterday(t *testing.T) {
	// 01:00 en Bogotá del 11 de marzo: el día a cerrar es el 10
	now := time.Date(2025, 3, 11, 1, 0, 0, 0, timezone.Bogota())
	yesterday := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())

	service, reportService := newCloseService(t, now)

	comment := "Reporte generado automáticamente con 3 sesiones, 1 jackpots y 0 bonos"
	reportService.EXPECT().
		GetOrGenerate(gomock.Any()).
		DoAndReturn(func(date time.Time) (*domain.DailyReportResponse, error) {
			assert.True(t, date.Equal(yesterday))
			return (&domain.DailyReport{
				ID:        "RPT001",
				Date:      yesterday,
				Reik:      3000,
				Ganancias: 2000,
				Gastos:    1000,
				Comment:   &comment,
			}).Response(), nil
		})

	service.closeYesterday()

	service.closeMutex.Lock()
	defer service.closeMutex.Unlock()
	assert.False(t, service.closeRunning)
	assert.False(t, service.lastCloseCompletedAt.IsZero())
}

func TestDailyReportCloseService_CloseCrossesMidnightInBogota(t *testing.T) {
	// 06:30 UTC del 11 de marzo es la 01:30 del 11 en Bogotá:
	// el día anterior sigue siendo el 10 de marzo
	now := time.Date(2025, 3, 11, 6, 30, 0, 0, time.UTC)
	yesterday := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())

	service, reportService := newCloseService(t, now)

	reportService.EXPECT().
		GetOrGenerate(gomock.Any()).
		DoAndReturn(func(date time.Time) (*domain.DailyReportResponse, error) {
			require.True(t, date.Equal(yesterday))
			return (&domain.DailyReport{ID: "RPT001", Date: yesterday}).Response(), nil
		})

	service.closeYesterday()
}

func TestDailyReportCloseService_StartDisabled(t *testing.T) {
	now := time.Date(2025, 3, 11, 1, 0, 0, 0, timezone.Bogota())

	service, _ := newCloseService(t, now)
	service.config.CloseEnabled = false

	// Deshabilitado no agenda nada ni toca el servicio de reportes
	assert.NoError(t, service.Start(context.Background()))
}
