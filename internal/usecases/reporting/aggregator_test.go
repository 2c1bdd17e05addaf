package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
)

func TestAggregate(t *testing.T) {
	reportDate := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, timezone.Bogota())

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, timezone.Bogota())
	endTwoHours := start.Add(2 * time.Hour)

	tests := []struct {
		name        string
		sessions    []*domain.Session
		jackpotWins []*domain.JackpotWin
		bonos       []*domain.Bono
		validate    func(t *testing.T, draft *domain.DailyReportDraft)
	}{
		{
			name: "Día sin movimientos - todo en cero",
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 0, draft.Reik)
				assert.Equal(t, 0, draft.Jackpot)
				assert.Equal(t, 0, draft.Gastos)
				assert.Equal(t, 0, draft.Ganancias)
				assert.Empty(t, draft.Sessions)
				assert.Empty(t, draft.JackpotWins)
				assert.Empty(t, draft.Bonos)
				assert.Equal(t,
					"Reporte generado automáticamente con 0 sesiones, 0 jackpots y 0 bonos",
					draft.Comment)
			},
		},
		{
			name: "Sesión cerrada sin costos - las ganancias son el reik completo",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: start,
					EndTime:   &endTwoHours,
					Reik:      1000,
				},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 1000, draft.Reik)
				assert.Equal(t, 0, draft.Gastos)
				assert.Equal(t, 1000, draft.Ganancias)
				assert.Equal(t, []string{"SES001"}, draft.Sessions)
			},
		},
		{
			name: "Sesión cerrada con pago por hora y propinas",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: start,
					EndTime:   &endTwoHours,
					Reik:      1000,
					Tips:      50,
					HourlyPay: 100,
				},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				// 2 horas * 100 + 50 de propinas
				assert.Equal(t, 250, draft.Gastos)
				assert.Equal(t, 750, draft.Ganancias)
			},
		},
		{
			name: "Premio de jackpot pagado vuelve negativas las ganancias",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: start,
					EndTime:   &endTwoHours,
					Reik:      1000,
				},
			},
			jackpotWins: []*domain.JackpotWin{
				{ID: "JPW001", UserID: "USR002", SessionID: "SES001", Value: 5000},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 5000, draft.Gastos)
				assert.Equal(t, -4000, draft.Ganancias)
				assert.Equal(t, []domain.JackpotWinEntry{
					{JackpotWinID: "JPW001", Sum: 5000},
				}, draft.JackpotWins)
			},
		},
		{
			name: "Bonos y premios se acumulan a los gastos",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: start,
					EndTime:   &endTwoHours,
					Reik:      10000,
					Jackpot:   300,
				},
			},
			jackpotWins: []*domain.JackpotWin{
				{ID: "JPW001", Value: 2000},
			},
			bonos: []*domain.Bono{
				{ID: "BON001", Value: 500},
				{ID: "BON002", Value: 300},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 10000, draft.Reik)
				assert.Equal(t, 300, draft.Jackpot)
				assert.Equal(t, 2800, draft.Gastos)
				assert.Equal(t, 7200, draft.Ganancias)
				assert.Equal(t,
					"Reporte generado automáticamente con 1 sesiones, 1 jackpots y 2 bonos",
					draft.Comment)
			},
		},
		{
			name: "El costo laboral se trunca hacia cero",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: start,
					// 1.999 horas * 100 = 199.9 -> 199, nunca 200
					EndTime:   endPtr(start.Add(1*time.Hour + 59*time.Minute + 56*time.Second + 400*time.Millisecond)),
					HourlyPay: 100,
				},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 199, draft.Gastos)
			},
		},
		{
			name: "Sesión abierta se costea contra el instante actual",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: now.Add(-3 * time.Hour),
					HourlyPay: 100,
				},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 300, draft.Gastos)
			},
		},
		{
			name: "Sesión sin pago por hora no genera costo laboral",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					StartTime: start,
					EndTime:   &endTwoHours,
					Reik:      500,
					HourlyPay: 0,
				},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 0, draft.Gastos)
				assert.Equal(t, 500, draft.Ganancias)
			},
		},
		{
			name: "Sesión sin inicio no genera costo laboral",
			sessions: []*domain.Session{
				{
					ID:        "SES001",
					DealerID:  "USR001",
					HourlyPay: 100,
				},
			},
			validate: func(t *testing.T, draft *domain.DailyReportDraft) {
				assert.Equal(t, 0, draft.Gastos)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := Aggregate(reportDate, tt.sessions, tt.jackpotWins, tt.bonos, now)

			require.NoError(t, err)
			require.NotNil(t, draft)
			assert.Equal(t, reportDate, draft.Date)
			tt.validate(t, draft)
		})
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	reportDate := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, timezone.Bogota())
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, timezone.Bogota())
	end := start.Add(8 * time.Hour)

	sessions := []*domain.Session{
		{ID: "SES001", DealerID: "USR001", StartTime: start, EndTime: &end, Reik: 4000, Tips: 120, HourlyPay: 90},
		{ID: "SES002", DealerID: "USR002", StartTime: start, EndTime: &end, Reik: 2500, HourlyPay: 110},
	}
	jackpotWins := []*domain.JackpotWin{{ID: "JPW001", Value: 1500}}
	bonos := []*domain.Bono{{ID: "BON001", Value: 200}}

	first, err := Aggregate(reportDate, sessions, jackpotWins, bonos, now)
	require.NoError(t, err)

	second, err := Aggregate(reportDate, sessions, jackpotWins, bonos, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_RejectsNegativeAmounts(t *testing.T) {
	reportDate := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota())
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, timezone.Bogota())
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, timezone.Bogota())

	tests := []struct {
		name        string
		sessions    []*domain.Session
		jackpotWins []*domain.JackpotWin
		bonos       []*domain.Bono
	}{
		{
			name: "Sesión con reik negativo",
			sessions: []*domain.Session{
				{ID: "SES001", StartTime: start, Reik: -100},
			},
		},
		{
			name: "Premio de jackpot con valor negativo",
			jackpotWins: []*domain.JackpotWin{
				{ID: "JPW001", Value: -5000},
			},
		},
		{
			name: "Bono con valor negativo",
			bonos: []*domain.Bono{
				{ID: "BON001", Value: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := Aggregate(reportDate, tt.sessions, tt.jackpotWins, tt.bonos, now)

			assert.Nil(t, draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNegativeAmount)
		})
	}
}

func endPtr(t time.Time) *time.Time {
	return &t
}
