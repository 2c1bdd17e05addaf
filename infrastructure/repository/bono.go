package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

const bonosTable = "bonos"

var bonoColumns = []string{
	"id", "user_id", "session_id", "value", "comment", "created_at", "updated_at",
}

type BonoRepository interface {
	CreateBono(bono *domain.Bono) (*domain.Bono, error)
	GetBonoByID(bonoID string) (*domain.Bono, error)
	ListBonos(userID, sessionID *string, skip, limit int) ([]*domain.Bono, error)
	ListBonosByCreatedRange(from, to time.Time, limit int) ([]*domain.Bono, error)
	UpdateBono(bono *domain.Bono) error
	DeleteBono(bonoID string) (bool, error)
	SumBonosByUser(userID string) (int, error)
	SumBonosBySession(sessionID string) (int, error)
}

type bonoRepository struct {
	conn *postgres.Connection
}

func NewBonoRepository(conn *postgres.Connection) BonoRepository {
	return &bonoRepository{
		conn: conn,
	}
}

func (r *bonoRepository) CreateBono(bono *domain.Bono) (*domain.Bono, error) {
	queryBuilder := squirrel.
		Insert(bonosTable).
		Columns(bonoColumns...).
		Values(
			bono.ID,
			bono.UserID,
			bono.SessionID,
			bono.Value,
			bono.Comment,
			bono.CreatedAt,
			bono.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	bonoSQL, bonoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de bono")
	}

	if _, err := r.conn.Exec(bonoSQL, bonoArgs...); err != nil {
		return nil, errors.Wrap(err, "error al insertar bono")
	}

	return bono, nil
}

func (r *bonoRepository) GetBonoByID(bonoID string) (*domain.Bono, error) {
	queryBuilder := squirrel.
		Select(bonoColumns...).
		From(bonosTable).
		Where(squirrel.Eq{"id": bonoID}).
		PlaceholderFormat(squirrel.Dollar)

	bonoSQL, bonoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var bono domain.Bono
	err = r.conn.QueryRow(bonoSQL, bonoArgs...).Scan(
		&bono.ID,
		&bono.UserID,
		&bono.SessionID,
		&bono.Value,
		&bono.Comment,
		&bono.CreatedAt,
		&bono.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bono, nil
}

func (r *bonoRepository) ListBonos(userID, sessionID *string, skip, limit int) ([]*domain.Bono, error) {
	queryBuilder := squirrel.
		Select(bonoColumns...).
		From(bonosTable).
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

	return r.queryBonos(queryBuilder)
}

func (r *bonoRepository) ListBonosByCreatedRange(from, to time.Time, limit int) ([]*domain.Bono, error) {
	queryBuilder := squirrel.
		Select(bonoColumns...).
		From(bonosTable).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.LtOrEq{"created_at": to}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryBonos(queryBuilder)
}

func (r *bonoRepository) UpdateBono(bono *domain.Bono) error {
	queryBuilder := squirrel.
		Update(bonosTable).
		Set("value", bono.Value).
		Set("comment", bono.Comment).
		Set("updated_at", bono.UpdatedAt).
		Where(squirrel.Eq{"id": bono.ID}).
		PlaceholderFormat(squirrel.Dollar)

	bonoSQL, bonoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de bono")
	}

	if _, err := r.conn.Exec(bonoSQL, bonoArgs...); err != nil {
		return errors.Wrap(err, "error al actualizar bono")
	}

	return nil
}

func (r *bonoRepository) DeleteBono(bonoID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(bonosTable).
		Where(squirrel.Eq{"id": bonoID}).
		PlaceholderFormat(squirrel.Dollar)

	bonoSQL, bonoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(bonoSQL, bonoArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al eliminar bono")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *bonoRepository) SumBonosByUser(userID string) (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(value), 0) FROM bonos WHERE user_id = $1", userID,
	).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "error al sumar bonos del usuario")
	}

	return total, nil
}

func (r *bonoRepository) SumBonosBySession(sessionID string) (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(value), 0) FROM bonos WHERE session_id = $1", sessionID,
	).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "error al sumar bonos de la sesión")
	}

	return total, nil
}

func (r *bonoRepository) queryBonos(queryBuilder squirrel.SelectBuilder) ([]*domain.Bono, error) {
	bonoSQL, bonoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de bonos")
	}

	rows, err := r.conn.Query(bonoSQL, bonoArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar bonos")
	}
	defer rows.Close()

	var bonos []*domain.Bono
	for rows.Next() {
		var bono domain.Bono
		if err := rows.Scan(
			&bono.ID,
			&bono.UserID,
			&bono.SessionID,
			&bono.Value,
			&bono.Comment,
			&bono.CreatedAt,
			&bono.UpdatedAt,
		); err != nil {
			return nil, err
		}

		bonos = append(bonos, &bono)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bonos, nil
}
