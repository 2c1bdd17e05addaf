package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

const dailyReportsTable = "daily_reports"

// ErrDuplicateReportDate indica que ya existe un reporte para la fecha.
// El servicio lo trata como un conflicto recuperable, no como un fallo.
var ErrDuplicateReportDate = errors.New("ya existe un reporte para la fecha")

const uniqueViolationCode = "23505"

var dailyReportColumns = []string{
	"id", "date", "reik", "jackpot", "ganancias", "gastos", "sessions",
	"jackpot_wins", "bonos", "comment", "created_at", "updated_at",
}

type DailyReportRepository interface {
	// InsertDailyReport inserta el reporte solo si no existe otro para la misma
	// fecha. Retorna false sin error cuando otro reporte ganó la carrera.
	InsertDailyReport(report *domain.DailyReport) (bool, error)
	// ReplaceDailyReportByDate elimina el reporte vigente de la fecha (si hay)
	// e inserta el nuevo en una sola transacción.
	ReplaceDailyReportByDate(report *domain.DailyReport) error
	GetDailyReportByID(reportID string) (*domain.DailyReport, error)
	GetDailyReportByDate(date time.Time) (*domain.DailyReport, error)
	ListDailyReports(skip, limit int) ([]*domain.DailyReport, error)
	ListDailyReportsByRange(from, to time.Time, skip, limit int) ([]*domain.DailyReport, error)
	UpdateDailyReport(report *domain.DailyReport) error
	DeleteDailyReport(reportID string) (bool, error)
	DailyReportTotals(from, to *time.Time) (*domain.ReportTotals, error)
}

type dailyReportRepository struct {
	conn *postgres.Connection
}

func NewDailyReportRepository(conn *postgres.Connection) DailyReportRepository {
	return &dailyReportRepository{
		conn: conn,
	}
}

func (r *dailyReportRepository) InsertDailyReport(report *domain.DailyReport) (bool, error) {
	values, err := reportValues(report)
	if err != nil {
		return false, err
	}

	queryBuilder := squirrel.
		Insert(dailyReportsTable).
		Columns(dailyReportColumns...).
		Values(values...).
		Suffix("ON CONFLICT (date) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	reportSQL, reportArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, errors.Wrap(err, "error al construir consulta de reporte")
	}

	result, err := r.conn.Exec(reportSQL, reportArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al insertar reporte diario")
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return inserted > 0, nil
}

func (r *dailyReportRepository) ReplaceDailyReportByDate(report *domain.DailyReport) error {
	values, err := reportValues(report)
	if err != nil {
		return err
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(dailyReportsTable).
		Columns(dailyReportColumns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de reporte")
	}

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM daily_reports WHERE date = $1", report.Date); err != nil {
			return err
		}

		_, err := tx.Exec(insertSQL, insertArgs...)
		return err
	})
	if isUniqueViolation(err) {
		// Dos regeneraciones concurrentes del mismo día: la otra ganó.
		return ErrDuplicateReportDate
	}
	if err != nil {
		return errors.Wrap(err, "error al reemplazar reporte diario")
	}

	return nil
}

func (r *dailyReportRepository) GetDailyReportByID(reportID string) (*domain.DailyReport, error) {
	queryBuilder := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		Where(squirrel.Eq{"id": reportID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryOne(queryBuilder)
}

func (r *dailyReportRepository) GetDailyReportByDate(date time.Time) (*domain.DailyReport, error) {
	queryBuilder := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		Where(squirrel.Eq{"date": date}).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryOne(queryBuilder)
}

func (r *dailyReportRepository) ListDailyReports(skip, limit int) ([]*domain.DailyReport, error) {
	queryBuilder := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		OrderBy("date DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryMany(queryBuilder)
}

func (r *dailyReportRepository) ListDailyReportsByRange(from, to time.Time, skip, limit int) ([]*domain.DailyReport, error) {
	queryBuilder := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryMany(queryBuilder)
}

func (r *dailyReportRepository) UpdateDailyReport(report *domain.DailyReport) error {
	queryBuilder := squirrel.
		Update(dailyReportsTable).
		Set("reik", report.Reik).
		Set("jackpot", report.Jackpot).
		Set("ganancias", report.Ganancias).
		Set("gastos", report.Gastos).
		Set("sessions", pq.Array(report.Sessions)).
		Set("comment", report.Comment).
		Set("updated_at", report.UpdatedAt).
		Where(squirrel.Eq{"id": report.ID}).
		PlaceholderFormat(squirrel.Dollar)

	reportSQL, reportArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de reporte")
	}

	if _, err := r.conn.Exec(reportSQL, reportArgs...); err != nil {
		return errors.Wrap(err, "error al actualizar reporte diario")
	}

	return nil
}

func (r *dailyReportRepository) DeleteDailyReport(reportID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(dailyReportsTable).
		Where(squirrel.Eq{"id": reportID}).
		PlaceholderFormat(squirrel.Dollar)

	reportSQL, reportArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(reportSQL, reportArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al eliminar reporte diario")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *dailyReportRepository) DailyReportTotals(from, to *time.Time) (*domain.ReportTotals, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(reik), 0)",
			"COALESCE(SUM(jackpot), 0)",
			"COALESCE(SUM(ganancias), 0)",
			"COALESCE(SUM(gastos), 0)",
		).
		From(dailyReportsTable).
		PlaceholderFormat(squirrel.Dollar)

	if from != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": *to})
	}

	totalsSQL, totalsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var totals domain.ReportTotals
	err = r.conn.QueryRow(totalsSQL, totalsArgs...).Scan(
		&totals.TotalReports,
		&totals.TotalReik,
		&totals.TotalJackpot,
		&totals.TotalGanancias,
		&totals.TotalGastos,
	)
	if err != nil {
		return nil, errors.Wrap(err, "error al calcular totales de reportes")
	}

	return &totals, nil
}

func (r *dailyReportRepository) queryOne(queryBuilder squirrel.SelectBuilder) (*domain.DailyReport, error) {
	reportSQL, reportArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	report, err := scanDailyReport(r.conn.QueryRow(reportSQL, reportArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *dailyReportRepository) queryMany(queryBuilder squirrel.SelectBuilder) ([]*domain.DailyReport, error) {
	reportSQL, reportArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de reportes")
	}

	rows, err := r.conn.Query(reportSQL, reportArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar reportes")
	}
	defer rows.Close()

	var reports []*domain.DailyReport
	for rows.Next() {
		report, err := scanDailyReport(rows)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDailyReport(row rowScanner) (*domain.DailyReport, error) {
	var (
		report    domain.DailyReport
		sessions  pq.StringArray
		winsJSON  []byte
		bonosJSON []byte
	)

	err := row.Scan(
		&report.ID,
		&report.Date,
		&report.Reik,
		&report.Jackpot,
		&report.Ganancias,
		&report.Gastos,
		&sessions,
		&winsJSON,
		&bonosJSON,
		&report.Comment,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Sessions = sessions
	if err := json.Unmarshal(winsJSON, &report.JackpotWins); err != nil {
		return nil, errors.Wrap(err, "error al decodificar jackpot_wins")
	}
	if err := json.Unmarshal(bonosJSON, &report.Bonos); err != nil {
		return nil, errors.Wrap(err, "error al decodificar bonos")
	}

	return &report, nil
}

func reportValues(report *domain.DailyReport) ([]interface{}, error) {
	winsJSON, err := json.Marshal(report.JackpotWins)
	if err != nil {
		return nil, errors.Wrap(err, "error al codificar jackpot_wins")
	}

	bonosJSON, err := json.Marshal(report.Bonos)
	if err != nil {
		return nil, errors.Wrap(err, "error al codificar bonos")
	}

	return []interface{}{
		report.ID,
		report.Date,
		report.Reik,
		report.Jackpot,
		report.Ganancias,
		report.Gastos,
		pq.Array(report.Sessions),
		winsJSON,
		bonosJSON,
		report.Comment,
		report.CreatedAt,
		report.UpdatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}
