package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyReport_DerivedFields(t *testing.T) {
	tests := []struct {
		name         string
		report       DailyReport
		netProfit    int
		totalIncome  int
		isProfitable bool
		profitMargin float64
	}{
		{
			name:         "Día rentable",
			report:       DailyReport{Reik: 1000, Jackpot: 200, Ganancias: 750, Gastos: 250},
			netProfit:    500,
			totalIncome:  1950,
			isProfitable: true,
			profitMargin: float64(500) / float64(1950) * 100,
		},
		{
			name:         "Día de pérdida",
			report:       DailyReport{Reik: 1000, Ganancias: -4000, Gastos: 5000},
			netProfit:    -9000,
			totalIncome:  -3000,
			isProfitable: false,
			profitMargin: float64(-9000) / float64(-3000) * 100,
		},
		{
			name:         "Ganancia neta cero no es rentable",
			report:       DailyReport{Reik: 100, Ganancias: 50, Gastos: 50},
			netProfit:    0,
			totalIncome:  150,
			isProfitable: false,
			profitMargin: 0,
		},
		{
			name:         "Ingreso total cero no divide",
			report:       DailyReport{},
			netProfit:    0,
			totalIncome:  0,
			isProfitable: false,
			profitMargin: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.netProfit, tt.report.NetProfit())
			assert.Equal(t, tt.totalIncome, tt.report.TotalIncome())
			assert.Equal(t, tt.isProfitable, tt.report.IsProfitable())
			assert.InDelta(t, tt.profitMargin, tt.report.ProfitMargin(), 0.0001)
		})
	}
}

func TestDailyReport_Response(t *testing.T) {
	report := DailyReport{ID: "RPT001", Reik: 1000, Ganancias: 750, Gastos: 250}

	response := report.Response()

	assert.Equal(t, "RPT001", response.ID)
	assert.Equal(t, 500, response.NetProfit)
	assert.Equal(t, 1750, response.TotalIncome)
	assert.True(t, response.IsProfitable)
}

func TestDailyReport_ValidateBusinessRules(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		report    DailyReport
		wantValid bool
	}{
		{
			name:      "Reporte válido de hoy",
			report:    DailyReport{Date: today, Reik: 100},
			wantValid: true,
		},
		{
			name:      "Ganancias negativas son válidas",
			report:    DailyReport{Date: today, Ganancias: -4000, Gastos: 5000},
			wantValid: true,
		},
		{
			name:      "Fecha vacía inválida",
			report:    DailyReport{Reik: 100},
			wantValid: false,
		},
		{
			name:      "Fecha futura inválida",
			report:    DailyReport{Date: today.AddDate(0, 0, 1)},
			wantValid: false,
		},
		{
			name:      "Reik negativo inválido",
			report:    DailyReport{Date: today, Reik: -1},
			wantValid: false,
		},
		{
			name:      "Jackpot negativo inválido",
			report:    DailyReport{Date: today, Jackpot: -1},
			wantValid: false,
		},
		{
			name:      "Gastos negativos inválidos",
			report:    DailyReport{Date: today, Gastos: -1},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := tt.report.ValidateBusinessRules(today)
			if tt.wantValid {
				assert.Empty(t, errors)
			} else {
				assert.NotEmpty(t, errors)
			}
		})
	}
}
