package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"github.com/vfigueroa/casino-manager-api/pkg/utils"
)

// Reporter es el ciclo de vida completo de los reportes diarios.
//
// GetOrGenerate decide por fecha: el día en curso siempre se regenera desde
// las sesiones, premios y bonos vigentes; cualquier otra fecha se reutiliza
// si ya existe y se genera una sola vez si no.
type Reporter interface {
	GetOrGenerate(date time.Time) (*domain.DailyReportResponse, error)
	Create(report *domain.DailyReport) (*domain.DailyReportResponse, error)
	GetByID(reportID string) (*domain.DailyReportResponse, error)
	GetByDate(date time.Time) (*domain.DailyReportResponse, error)
	List(skip, limit int) ([]*domain.DailyReportResponse, error)
	ListByRange(from, to time.Time, skip, limit int) ([]*domain.DailyReportResponse, error)
	ListProfitable(skip, limit int) ([]*domain.DailyReportResponse, error)
	Update(request *domain.UpdateDailyReportRequest) (*domain.DailyReportResponse, error)
	Delete(reportID string) error
	Stats(from, to *time.Time) (*domain.ReportStats, error)
}

// Service implementa la interface Reporter
type Service struct {
	cfg                  *config.Config
	reportRepository     repository.DailyReportRepository
	sessionRepository    repository.SessionRepository
	jackpotWinRepository repository.JackpotWinRepository
	bonoRepository       repository.BonoRepository
	clock                timezone.Clock
}

// NewService crea una nueva instancia del servicio de reportes
func NewService(
	cfg *config.Config,
	reportRepo repository.DailyReportRepository,
	sessionRepo repository.SessionRepository,
	jackpotWinRepo repository.JackpotWinRepository,
	bonoRepo repository.BonoRepository,
	clock timezone.Clock,
) Reporter {
	return &Service{
		cfg:                  cfg,
		reportRepository:     reportRepo,
		sessionRepository:    sessionRepo,
		jackpotWinRepository: jackpotWinRepo,
		bonoRepository:       bonoRepo,
		clock:                clock,
	}
}

// GetOrGenerate retorna el reporte de la fecha, regenerándolo si es el día en
// curso en Bogotá y generándolo una única vez si es una fecha pasada.
func (s *Service) GetOrGenerate(date time.Time) (*domain.DailyReportResponse, error) {
	reportDate := timezone.DateOf(date)
	today := timezone.Today(s.clock)

	if reportDate.Equal(today) {
		return s.regenerate(reportDate)
	}

	existing, err := s.reportRepository.GetDailyReportByDate(reportDate)
	if err != nil {
		logrus.Error("Error al buscar reporte por fecha", map[string]any{
			"date":  reportDate,
			"error": err,
		})
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	// Una fecha distinta a hoy es un registro durable: si ya existe no se
	// vuelve a calcular aunque las fuentes hayan cambiado.
	if existing != nil {
		return existing.Response(), nil
	}

	return s.generateOnce(reportDate)
}

// regenerate reconstruye el reporte del día en curso y reemplaza de forma
// atómica el que hubiera.
func (s *Service) regenerate(reportDate time.Time) (*domain.DailyReportResponse, error) {
	report, err := s.buildReport(reportDate)
	if err != nil {
		return nil, err
	}

	err = s.reportRepository.ReplaceDailyReportByDate(report)
	if err == repository.ErrDuplicateReportDate {
		// Otra regeneración concurrente insertó primero: retornar la ganadora.
		return s.recoverWinner(reportDate)
	}
	if err != nil {
		logrus.Error("Error al reemplazar reporte del día", map[string]any{
			"date":  reportDate,
			"error": err,
		})
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return report.Response(), nil
}

// generateOnce genera y persiste el reporte de una fecha que aún no tiene uno.
func (s *Service) generateOnce(reportDate time.Time) (*domain.DailyReportResponse, error) {
	report, err := s.buildReport(reportDate)
	if err != nil {
		return nil, err
	}

	inserted, err := s.reportRepository.InsertDailyReport(report)
	if err != nil {
		logrus.Error("Error al insertar reporte generado", map[string]any{
			"date":  reportDate,
			"error": err,
		})
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	if !inserted {
		// Perdimos la carrera contra otra generación de la misma fecha.
		return s.recoverWinner(reportDate)
	}

	return report.Response(), nil
}

// recoverWinner relee el reporte que ganó una carrera de generación.
func (s *Service) recoverWinner(reportDate time.Time) (*domain.DailyReportResponse, error) {
	winner, err := s.reportRepository.GetDailyReportByDate(reportDate)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if winner == nil {
		return nil, NewDateReportError(ErrGenerationConflict, "RES_002",
			reportDate.Format("2006-01-02"), "el reporte ganador ya no existe")
	}
	return winner.Response(), nil
}

// buildReport ejecuta el camino de generación: rango del día, lectura acotada
// de las fuentes y agregación pura.
func (s *Service) buildReport(reportDate time.Time) (*domain.DailyReport, error) {
	from, to := timezone.DayRange(reportDate)
	limit := s.cfg.Report.FetchLimit

	sessions, err := s.sessionRepository.ListSessionsByStartRange(from, to, limit)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	jackpotWins, err := s.jackpotWinRepository.ListJackpotWinsByCreatedRange(from, to, limit)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	bonos, err := s.bonoRepository.ListBonosByCreatedRange(from, to, limit)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	now := timezone.NowBogota(s.clock)

	draft, err := Aggregate(reportDate, sessions, jackpotWins, bonos, now)
	if err != nil {
		return nil, err
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_001", err.Error())
	}

	return &domain.DailyReport{
		ID:          reportID,
		Date:        draft.Date,
		Reik:        draft.Reik,
		Jackpot:     draft.Jackpot,
		Ganancias:   draft.Ganancias,
		Gastos:      draft.Gastos,
		Sessions:    draft.Sessions,
		JackpotWins: draft.JackpotWins,
		Bonos:       draft.Bonos,
		Comment:     &draft.Comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Create registra un reporte manual con los números que entrega el caller.
// Nunca agrega: existe para correcciones y cargas históricas.
func (s *Service) Create(report *domain.DailyReport) (*domain.DailyReportResponse, error) {
	report.Date = timezone.DateOf(report.Date)
	today := timezone.Today(s.clock)

	if validationErrors := report.ValidateBusinessRules(today); len(validationErrors) > 0 {
		return nil, NewDateReportError(ErrInvalidInput, "VAL_001",
			report.Date.Format("2006-01-02"), validationErrors[0])
	}

	existing, err := s.reportRepository.GetDailyReportByDate(report.Date)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if existing != nil {
		return nil, NewDateReportError(ErrReportAlreadyExists, "RES_002",
			report.Date.Format("2006-01-02"), "")
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_001", err.Error())
	}

	now := timezone.NowBogota(s.clock)
	report.ID = reportID
	report.CreatedAt = now
	report.UpdatedAt = now

	if report.Sessions == nil {
		report.Sessions = []string{}
	}
	if report.JackpotWins == nil {
		report.JackpotWins = []domain.JackpotWinEntry{}
	}
	if report.Bonos == nil {
		report.Bonos = []domain.BonoEntry{}
	}

	inserted, err := s.reportRepository.InsertDailyReport(report)
	if err != nil {
		logrus.Error("Error al crear reporte manual", map[string]any{
			"date":  report.Date,
			"error": err,
		})
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if !inserted {
		return nil, NewDateReportError(ErrReportAlreadyExists, "RES_002",
			report.Date.Format("2006-01-02"), "")
	}

	return report.Response(), nil
}

// GetByID busca un reporte por su identificador
func (s *Service) GetByID(reportID string) (*domain.DailyReportResponse, error) {
	report, err := s.reportRepository.GetDailyReportByID(reportID)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if report == nil {
		return nil, NewReportError(ErrReportNotFound, "RES_001", reportID)
	}

	return report.Response(), nil
}

// GetByDate busca un reporte ya persistido por fecha, sin generarlo
func (s *Service) GetByDate(date time.Time) (*domain.DailyReportResponse, error) {
	report, err := s.reportRepository.GetDailyReportByDate(timezone.DateOf(date))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if report == nil {
		return nil, NewDateReportError(ErrReportNotFound, "RES_001", date.Format("2006-01-02"), "")
	}

	return report.Response(), nil
}

// List retorna los reportes persistidos, los más recientes primero
func (s *Service) List(skip, limit int) ([]*domain.DailyReportResponse, error) {
	reports, err := s.reportRepository.ListDailyReports(skip, s.normalizeLimit(limit))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return toResponses(reports), nil
}

// ListByRange retorna los reportes cuyo día cae dentro del rango de fechas
func (s *Service) ListByRange(from, to time.Time, skip, limit int) ([]*domain.DailyReportResponse, error) {
	from = timezone.DateOf(from)
	to = timezone.DateOf(to)
	if from.After(to) {
		return nil, NewReportError(ErrInvalidDateRange, "VAL_001",
			"la fecha inicial no puede ser posterior a la final")
	}

	reports, err := s.reportRepository.ListDailyReportsByRange(from, to, skip, s.normalizeLimit(limit))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return toResponses(reports), nil
}

// ListProfitable retorna solo los reportes de días rentables
func (s *Service) ListProfitable(skip, limit int) ([]*domain.DailyReportResponse, error) {
	reports, err := s.reportRepository.ListDailyReports(skip, s.normalizeLimit(limit))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	profitable := make([]*domain.DailyReportResponse, 0, len(reports))
	for _, report := range reports {
		if report.IsProfitable() {
			profitable = append(profitable, report.Response())
		}
	}

	return profitable, nil
}

// Update aplica una actualización manual parcial. Los campos derivados
// jackpot_wins y bonos no son actualizables por este camino.
func (s *Service) Update(request *domain.UpdateDailyReportRequest) (*domain.DailyReportResponse, error) {
	report, err := s.reportRepository.GetDailyReportByID(request.ID)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if report == nil {
		return nil, NewReportError(ErrReportNotFound, "RES_001", request.ID)
	}

	if request.Reik != nil {
		report.Reik = *request.Reik
	}
	if request.Jackpot != nil {
		report.Jackpot = *request.Jackpot
	}
	if request.Ganancias != nil {
		report.Ganancias = *request.Ganancias
	}
	if request.Gastos != nil {
		report.Gastos = *request.Gastos
	}
	if request.Sessions != nil {
		report.Sessions = *request.Sessions
	}
	if request.Comment != nil {
		report.Comment = request.Comment
	}

	today := timezone.Today(s.clock)
	if validationErrors := report.ValidateBusinessRules(today); len(validationErrors) > 0 {
		return nil, NewReportError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	report.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.reportRepository.UpdateDailyReport(report); err != nil {
		logrus.Error("Error al actualizar reporte", map[string]any{
			"reportID": request.ID,
			"error":    err,
		})
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return report.Response(), nil
}

// Delete elimina un reporte de forma definitiva
func (s *Service) Delete(reportID string) error {
	deleted, err := s.reportRepository.DeleteDailyReport(reportID)
	if err != nil {
		return NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if !deleted {
		return NewReportError(ErrReportNotFound, "RES_001", reportID)
	}

	return nil
}

// Stats calcula las estadísticas del período sobre los reportes persistidos
func (s *Service) Stats(from, to *time.Time) (*domain.ReportStats, error) {
	totals, err := s.reportRepository.DailyReportTotals(from, to)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	stats := &domain.ReportStats{
		ReportTotals: *totals,
	}

	if totals.TotalReports == 0 {
		return stats, nil
	}

	reports, err := s.listForStats(from, to)
	if err != nil {
		return nil, err
	}

	for _, report := range reports {
		netProfit := report.NetProfit()
		stats.TotalNetProfit += netProfit

		if report.IsProfitable() {
			stats.ProfitableDays++
		} else {
			stats.UnprofitableDays++
		}

		day := &domain.ReportDayProfit{
			Date:      report.Date.Format("2006-01-02"),
			NetProfit: netProfit,
		}
		if stats.BestDay == nil || netProfit > stats.BestDay.NetProfit {
			stats.BestDay = day
		}
		if stats.WorstDay == nil || netProfit < stats.WorstDay.NetProfit {
			stats.WorstDay = day
		}
	}

	if len(reports) > 0 {
		stats.AverageDailyProfit = utils.RoundWithTwoDecimalPlace(
			float64(stats.TotalNetProfit) / float64(len(reports)))
	}

	return stats, nil
}

func (s *Service) listForStats(from, to *time.Time) ([]*domain.DailyReport, error) {
	limit := s.cfg.Report.FetchLimit

	var (
		reports []*domain.DailyReport
		err     error
	)
	if from != nil && to != nil {
		reports, err = s.reportRepository.ListDailyReportsByRange(
			timezone.DateOf(*from), timezone.DateOf(*to), 0, limit)
	} else {
		reports, err = s.reportRepository.ListDailyReports(0, limit)
	}
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return reports, nil
}

func (s *Service) normalizeLimit(limit int) int {
	if limit <= 0 || limit > s.cfg.Report.FetchLimit {
		return s.cfg.Report.FetchLimit
	}
	return limit
}

func toResponses(reports []*domain.DailyReport) []*domain.DailyReportResponse {
	responses := make([]*domain.DailyReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, report.Response())
	}
	return responses
}
