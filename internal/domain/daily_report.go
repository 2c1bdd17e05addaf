package domain

import "time"

// JackpotWinEntry es la entrada derivada de un premio de jackpot pagado en el día.
type JackpotWinEntry struct {
	JackpotWinID string `json:"jackpot_win_id"`
	Sum          int    `json:"sum"`
}

// BonoEntry es la entrada derivada de un bono otorgado en el día.
type BonoEntry struct {
	BonoID string `json:"bono_id"`
	Sum    int    `json:"sum"`
}

// DailyReport es el resumen financiero de un día del negocio.
// Existe a lo más un reporte por fecha.
type DailyReport struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Reik        int               `json:"reik"`
	Jackpot     int               `json:"jackpot"`
	Ganancias   int               `json:"ganancias"`
	Gastos      int               `json:"gastos"`
	Sessions    []string          `json:"sessions"`
	JackpotWins []JackpotWinEntry `json:"jackpot_wins"`
	Bonos       []BonoEntry       `json:"bonos"`
	Comment     *string           `json:"comment"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// DailyReportDraft es el resultado puro de la agregación, sin identidad ni
// marcas de tiempo: eso lo decide quien lo persiste.
type DailyReportDraft struct {
	Date        time.Time
	Reik        int
	Jackpot     int
	Ganancias   int
	Gastos      int
	Sessions    []string
	JackpotWins []JackpotWinEntry
	Bonos       []BonoEntry
	Comment     string
}

// UpdateDailyReportRequest es la actualización manual permitida de un reporte.
// Los campos derivados jackpot_wins y bonos quedan fuera a propósito: solo la
// regeneración puede reemplazarlos.
type UpdateDailyReportRequest struct {
	ID        string    `json:"id"`
	Reik      *int      `json:"reik"`
	Jackpot   *int      `json:"jackpot"`
	Ganancias *int      `json:"ganancias"`
	Gastos    *int      `json:"gastos"`
	Sessions  *[]string `json:"sessions"`
	Comment   *string   `json:"comment"`
}

// DailyReportResponse agrega al reporte los campos derivados que espera la API.
type DailyReportResponse struct {
	DailyReport
	NetProfit    int     `json:"net_profit"`
	TotalIncome  int     `json:"total_income"`
	IsProfitable bool    `json:"is_profitable"`
	ProfitMargin float64 `json:"profit_margin"`
}

// ReportTotals son los totales agregados sobre un conjunto de reportes.
type ReportTotals struct {
	TotalReports   int `json:"total_reports"`
	TotalReik      int `json:"total_reik"`
	TotalJackpot   int `json:"total_jackpot"`
	TotalGanancias int `json:"total_ganancias"`
	TotalGastos    int `json:"total_gastos"`
}

// ReportDayProfit identifica el mejor o peor día de un período.
type ReportDayProfit struct {
	Date      string `json:"date"`
	NetProfit int    `json:"net_profit"`
}

// ReportStats son las estadísticas de reportes de un período.
type ReportStats struct {
	ReportTotals
	TotalNetProfit     int              `json:"total_net_profit"`
	AverageDailyProfit float64          `json:"average_daily_profit"`
	ProfitableDays     int              `json:"profitable_days"`
	UnprofitableDays   int              `json:"unprofitable_days"`
	BestDay            *ReportDayProfit `json:"best_day"`
	WorstDay           *ReportDayProfit `json:"worst_day"`
}

// NetProfit calcula la ganancia neta del día.
// Fórmula heredada, se conserva tal cual por compatibilidad de API.
func (r *DailyReport) NetProfit() int {
	return r.Ganancias - r.Gastos
}

// TotalIncome calcula el total de ingresos del día.
// Fórmula heredada, se conserva tal cual por compatibilidad de API.
func (r *DailyReport) TotalIncome() int {
	return r.Reik + r.Jackpot + r.Ganancias
}

// IsProfitable indica si el día fue rentable.
func (r *DailyReport) IsProfitable() bool {
	return r.NetProfit() > 0
}

// ProfitMargin calcula el margen de ganancia en porcentaje.
func (r *DailyReport) ProfitMargin() float64 {
	totalIncome := r.TotalIncome()
	if totalIncome == 0 {
		return 0
	}
	return float64(r.NetProfit()) / float64(totalIncome) * 100
}

// Response construye la representación con campos derivados.
func (r *DailyReport) Response() *DailyReportResponse {
	return &DailyReportResponse{
		DailyReport:  *r,
		NetProfit:    r.NetProfit(),
		TotalIncome:  r.TotalIncome(),
		IsProfitable: r.IsProfitable(),
		ProfitMargin: r.ProfitMargin(),
	}
}

// ValidateBusinessRules valida las reglas de negocio del reporte diario.
// Las ganancias pueden ser negativas (un día de pérdida); el resto de los
// valores monetarios no.
func (r *DailyReport) ValidateBusinessRules(today time.Time) []string {
	var errors []string

	if r.Date.IsZero() {
		errors = append(errors, "la fecha es obligatoria")
	}

	if r.Date.After(today) {
		errors = append(errors, "la fecha no puede ser futura")
	}

	if r.Reik < 0 {
		errors = append(errors, "el reik no puede ser negativo")
	}
	if r.Jackpot < 0 {
		errors = append(errors, "el jackpot no puede ser negativo")
	}
	if r.Gastos < 0 {
		errors = append(errors, "los gastos no pueden ser negativos")
	}

	return errors
}
