package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"id", "dealer_id", "start_time", "end_time", "jackpot", "reik",
	"tips", "hourly_pay", "comment", "created_at", "updated_at",
}

type SessionRepository interface {
	CreateSession(session *domain.Session) (*domain.Session, error)
	GetSessionByID(sessionID string) (*domain.Session, error)
	ListSessions(skip, limit int) ([]*domain.Session, error)
	ListSessionsByDealer(dealerID string, skip, limit int) ([]*domain.Session, error)
	ListActiveSessions(skip, limit int) ([]*domain.Session, error)
	ListSessionsByStartRange(from, to time.Time, limit int) ([]*domain.Session, error)
	GetActiveSessionByDealer(dealerID string) (*domain.Session, error)
	UpdateSession(session *domain.Session) error
	DeleteSession(sessionID string) (bool, error)
	SessionStats() (*domain.SessionStats, error)
}

type sessionRepository struct {
	conn *postgres.Connection
}

func NewSessionRepository(conn *postgres.Connection) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) CreateSession(session *domain.Session) (*domain.Session, error) {
	queryBuilder := squirrel.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			session.ID,
			session.DealerID,
			session.StartTime,
			session.EndTime,
			session.Jackpot,
			session.Reik,
			session.Tips,
			session.HourlyPay,
			session.Comment,
			session.CreatedAt,
			session.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de sesión")
	}

	if _, err := r.conn.Exec(sessionSQL, sessionArgs...); err != nil {
		return nil, errors.Wrap(err, "error al insertar sesión")
	}

	return session, nil
}

func (r *sessionRepository) GetSessionByID(sessionID string) (*domain.Session, error) {
	queryBuilder := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	session, err := scanSession(r.conn.QueryRow(sessionSQL, sessionArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *sessionRepository) ListSessions(skip, limit int) ([]*domain.Session, error) {
	queryBuilder := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("start_time DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.querySessions(queryBuilder)
}

func (r *sessionRepository) ListSessionsByDealer(dealerID string, skip, limit int) ([]*domain.Session, error) {
	queryBuilder := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"dealer_id": dealerID}).
		OrderBy("start_time DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.querySessions(queryBuilder)
}

func (r *sessionRepository) ListActiveSessions(skip, limit int) ([]*domain.Session, error) {
	queryBuilder := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"end_time": nil}).
		OrderBy("start_time DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.querySessions(queryBuilder)
}

func (r *sessionRepository) ListSessionsByStartRange(from, to time.Time, limit int) ([]*domain.Session, error) {
	queryBuilder := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.LtOrEq{"start_time": to}).
		OrderBy("start_time ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.querySessions(queryBuilder)
}

func (r *sessionRepository) GetActiveSessionByDealer(dealerID string) (*domain.Session, error) {
	queryBuilder := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"dealer_id": dealerID, "end_time": nil}).
		OrderBy("start_time DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	session, err := scanSession(r.conn.QueryRow(sessionSQL, sessionArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *sessionRepository) UpdateSession(session *domain.Session) error {
	queryBuilder := squirrel.
		Update(sessionsTable).
		Set("end_time", session.EndTime).
		Set("jackpot", session.Jackpot).
		Set("reik", session.Reik).
		Set("tips", session.Tips).
		Set("hourly_pay", session.HourlyPay).
		Set("comment", session.Comment).
		Set("updated_at", session.UpdatedAt).
		Where(squirrel.Eq{"id": session.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de sesión")
	}

	if _, err := r.conn.Exec(sessionSQL, sessionArgs...); err != nil {
		return errors.Wrap(err, "error al actualizar sesión")
	}

	return nil
}

func (r *sessionRepository) DeleteSession(sessionID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(sessionSQL, sessionArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al eliminar sesión")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *sessionRepository) SessionStats() (*domain.SessionStats, error) {
	query := `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE end_time IS NULL),
		COALESCE(SUM(jackpot), 0),
		COALESCE(SUM(reik), 0),
		COALESCE(SUM(tips), 0)
	FROM sessions`

	var stats domain.SessionStats
	err := r.conn.QueryRow(query).Scan(
		&stats.TotalSessions,
		&stats.ActiveSessions,
		&stats.TotalJackpot,
		&stats.TotalReik,
		&stats.TotalTips,
	)
	if err != nil {
		return nil, errors.Wrap(err, "error al calcular estadísticas de sesiones")
	}

	return &stats, nil
}

func (r *sessionRepository) querySessions(queryBuilder squirrel.SelectBuilder) ([]*domain.Session, error) {
	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de sesiones")
	}

	rows, err := r.conn.Query(sessionSQL, sessionArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar sesiones")
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var session domain.Session
		if err := rows.Scan(
			&session.ID,
			&session.DealerID,
			&session.StartTime,
			&session.EndTime,
			&session.Jackpot,
			&session.Reik,
			&session.Tips,
			&session.HourlyPay,
			&session.Comment,
			&session.CreatedAt,
			&session.UpdatedAt,
		); err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func scanSession(row *sql.Row) (*domain.Session, error) {
	var session domain.Session
	err := row.Scan(
		&session.ID,
		&session.DealerID,
		&session.StartTime,
		&session.EndTime,
		&session.Jackpot,
		&session.Reik,
		&session.Tips,
		&session.HourlyPay,
		&session.Comment,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &session, nil
}
