package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "name", "email", "password", "roles", "active", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByID(userID string) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	ListUsers(skip, limit int) ([]*domain.User, error)
	UpdateUser(user *domain.User) error
	DeleteUser(userID string) (bool, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) error {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}

	queryBuilder := squirrel.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Name,
			user.Email,
			user.PasswordHash,
			pq.Array(roles),
			user.Active,
			user.CreatedAt,
			user.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	userSQL, userArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de usuario")
	}

	if _, err := r.conn.Exec(userSQL, userArgs...); err != nil {
		return errors.Wrap(err, "error al crear usuario")
	}

	return nil
}

func (r *userRepository) GetUserByID(userID string) (*domain.User, error) {
	return r.queryOne(squirrel.Eq{"id": userID})
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.queryOne(squirrel.Eq{"email": email})
}

func (r *userRepository) ListUsers(skip, limit int) ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns...).
		From(usersTable).
		OrderBy("created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	userSQL, userArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de usuarios")
	}

	rows, err := r.conn.Query(userSQL, userArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar usuarios")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}

	queryBuilder := squirrel.
		Update(usersTable).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password", user.PasswordHash).
		Set("roles", pq.Array(roles)).
		Set("active", user.Active).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar)

	userSQL, userArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de usuario")
	}

	if _, err := r.conn.Exec(userSQL, userArgs...); err != nil {
		return errors.Wrap(err, "error al actualizar usuario")
	}

	return nil
}

func (r *userRepository) DeleteUser(userID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(usersTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	userSQL, userArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(userSQL, userArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al eliminar usuario")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *userRepository) queryOne(where squirrel.Eq) (*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	userSQL, userArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRow(userSQL, userArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user  domain.User
		roles pq.StringArray
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&roles,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Roles = make([]domain.UserRole, 0, len(roles))
	for _, role := range roles {
		user.Roles = append(user.Roles, domain.UserRole(role))
	}

	return &user, nil
}
