package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

const jackpotWinsTable = "jackpot_wins"

var jackpotWinColumns = []string{
	"id", "user_id", "session_id", "value", "winner_hand", "comment",
	"created_at", "updated_at",
}

type JackpotWinRepository interface {
	CreateJackpotWin(win *domain.JackpotWin) (*domain.JackpotWin, error)
	GetJackpotWinByID(winID string) (*domain.JackpotWin, error)
	ListJackpotWins(userID, sessionID *string, skip, limit int) ([]*domain.JackpotWin, error)
	ListJackpotWinsByCreatedRange(from, to time.Time, limit int) ([]*domain.JackpotWin, error)
	ListHighValueJackpotWins(threshold, skip, limit int) ([]*domain.JackpotWin, error)
	GetBiggestJackpotWin() (*domain.JackpotWin, error)
	UpdateJackpotWin(win *domain.JackpotWin) error
	DeleteJackpotWin(winID string) (bool, error)
	SumJackpotWinsByUser(userID string) (int, error)
	SumJackpotWinsBySession(sessionID string) (int, error)
}

type jackpotWinRepository struct {
	conn *postgres.Connection
}

func NewJackpotWinRepository(conn *postgres.Connection) JackpotWinRepository {
	return &jackpotWinRepository{
		conn: conn,
	}
}

func (r *jackpotWinRepository) CreateJackpotWin(win *domain.JackpotWin) (*domain.JackpotWin, error) {
	queryBuilder := squirrel.
		Insert(jackpotWinsTable).
		Columns(jackpotWinColumns...).
		Values(
			win.ID,
			win.UserID,
			win.SessionID,
			win.Value,
			win.WinnerHand,
			win.Comment,
			win.CreatedAt,
			win.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	winSQL, winArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de jackpot")
	}

	if _, err := r.conn.Exec(winSQL, winArgs...); err != nil {
		return nil, errors.Wrap(err, "error al insertar jackpot")
	}

	return win, nil
}

func (r *jackpotWinRepository) GetJackpotWinByID(winID string) (*domain.JackpotWin, error) {
	queryBuilder := squirrel.
		Select(jackpotWinColumns...).
		From(jackpotWinsTable).
		Where(squirrel.Eq{"id": winID}).
		PlaceholderFormat(squirrel.Dollar)

	winSQL, winArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	win, err := scanJackpotWin(r.conn.QueryRow(winSQL, winArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return win, nil
}

func (r *jackpotWinRepository) ListJackpotWins(userID, sessionID *string, skip, limit int) ([]*domain.JackpotWin, error) {
	queryBuilder := squirrel.
		Select(jackpotWinColumns...).
		From(jackpotWinsTable).
		OrderBy("created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"user_id": *userID})
	}
	if sessionID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"session_id": *sessionID})
	}

	return r.queryJackpotWins(queryBuilder)
}

func (r *jackpotWinRepository) ListJackpotWinsByCreatedRange(from, to time.Time, limit int) ([]*domain.JackpotWin, error) {
	queryBuilder := squirrel.
		Select(jackpotWinColumns...).
		From(jackpotWinsTable).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.LtOrEq{"created_at": to}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryJackpotWins(queryBuilder)
}

func (r *jackpotWinRepository) ListHighValueJackpotWins(threshold, skip, limit int) ([]*domain.JackpotWin, error) {
	queryBuilder := squirrel.
		Select(jackpotWinColumns...).
		From(jackpotWinsTable).
		Where(squirrel.GtOrEq{"value": threshold}).
		OrderBy("value DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryJackpotWins(queryBuilder)
}

func (r *jackpotWinRepository) GetBiggestJackpotWin() (*domain.JackpotWin, error) {
	queryBuilder := squirrel.
		Select(jackpotWinColumns...).
		From(jackpotWinsTable).
		OrderBy("value DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	winSQL, winArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	win, err := scanJackpotWin(r.conn.QueryRow(winSQL, winArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return win, nil
}

func (r *jackpotWinRepository) UpdateJackpotWin(win *domain.JackpotWin) error {
	queryBuilder := squirrel.
		Update(jackpotWinsTable).
		Set("value", win.Value).
		Set("winner_hand", win.WinnerHand).
		Set("comment", win.Comment).
		Set("updated_at", win.UpdatedAt).
		Where(squirrel.Eq{"id": win.ID}).
		PlaceholderFormat(squirrel.Dollar)

	winSQL, winArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de jackpot")
	}

	if _, err := r.conn.Exec(winSQL, winArgs...); err != nil {
		return errors.Wrap(err, "error al actualizar jackpot")
	}

	return nil
}

func (r *jackpotWinRepository) DeleteJackpotWin(winID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(jackpotWinsTable).
		Where(squirrel.Eq{"id": winID}).
		PlaceholderFormat(squirrel.Dollar)

	winSQL, winArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(winSQL, winArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al eliminar jackpot")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *jackpotWinRepository) SumJackpotWinsByUser(userID string) (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(value), 0) FROM jackpot_wins WHERE user_id = $1", userID,
	).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "error al sumar jackpots del usuario")
	}

	return total, nil
}

func (r *jackpotWinRepository) SumJackpotWinsBySession(sessionID string) (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(value), 0) FROM jackpot_wins WHERE session_id = $1", sessionID,
	).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "error al sumar jackpots de la sesión")
	}

	return total, nil
}

func (r *jackpotWinRepository) queryJackpotWins(queryBuilder squirrel.SelectBuilder) ([]*domain.JackpotWin, error) {
	winSQL, winArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de jackpots")
	}

	rows, err := r.conn.Query(winSQL, winArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar jackpots")
	}
	defer rows.Close()

	var wins []*domain.JackpotWin
	for rows.Next() {
		var win domain.JackpotWin
		if err := rows.Scan(
			&win.ID,
			&win.UserID,
			&win.SessionID,
			&win.Value,
			&win.WinnerHand,
			&win.Comment,
			&win.CreatedAt,
			&win.UpdatedAt,
		); err != nil {
			return nil, err
		}

		wins = append(wins, &win)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return wins, nil
}

func scanJackpotWin(row *sql.Row) (*domain.JackpotWin, error) {
	var win domain.JackpotWin
	err := row.Scan(
		&win.ID,
		&win.UserID,
		&win.SessionID,
		&win.Value,
		&win.WinnerHand,
		&win.Comment,
		&win.CreatedAt,
		&win.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &win, nil
}
