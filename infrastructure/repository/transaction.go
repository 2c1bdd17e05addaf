package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id", "user_id", "session_id", "cantidad", "operation_type",
	"transaction_media", "comment", "created_at", "updated_at",
}

type TransactionRepository interface {
	CreateTransaction(transaction *domain.Transaction) (*domain.Transaction, error)
	GetTransactionByID(transactionID string) (*domain.Transaction, error)
	ListTransactions(filter domain.TransactionFilter, skip, limit int) ([]*domain.Transaction, error)
	UpdateTransaction(transaction *domain.Transaction) error
	DeleteTransaction(transactionID string) (bool, error)
	TransactionStats() (*domain.TransactionStats, error)
	SessionBalance(sessionID string) (*domain.SessionBalance, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) CreateTransaction(transaction *domain.Transaction) (*domain.Transaction, error) {
	queryBuilder := squirrel.
		Insert(transactionsTable).
		Columns(transactionColumns...).
		Values(
			transaction.ID,
			transaction.UserID,
			transaction.SessionID,
			transaction.Cantidad,
			transaction.OperationType,
			transaction.TransactionMedia,
			transaction.Comment,
			transaction.CreatedAt,
			transaction.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	txSQL, txArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de transacción")
	}

	if _, err := r.conn.Exec(txSQL, txArgs...); err != nil {
		return nil, errors.Wrap(err, "error al insertar transacción")
	}

	return transaction, nil
}

func (r *transactionRepository) GetTransactionByID(transactionID string) (*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"id": transactionID}).
		PlaceholderFormat(squirrel.Dollar)

	txSQL, txArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var transaction domain.Transaction
	err = r.conn.QueryRow(txSQL, txArgs...).Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.SessionID,
		&transaction.Cantidad,
		&transaction.OperationType,
		&transaction.TransactionMedia,
		&transaction.Comment,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

func (r *transactionRepository) ListTransactions(filter domain.TransactionFilter, skip, limit int) ([]*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.SessionID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"session_id": *filter.SessionID})
	}
	if filter.OperationType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"operation_type": *filter.OperationType})
	}
	if filter.TransactionMedia != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"transaction_media": *filter.TransactionMedia})
	}

	txSQL, txArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir consulta de transacciones")
	}

	rows, err := r.conn.Query(txSQL, txArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar transacciones")
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.ID,
			&transaction.UserID,
			&transaction.SessionID,
			&transaction.Cantidad,
			&transaction.OperationType,
			&transaction.TransactionMedia,
			&transaction.Comment,
			&transaction.CreatedAt,
			&transaction.UpdatedAt,
		); err != nil {
			return nil, err
		}

		transactions = append(transactions, &transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *transactionRepository) UpdateTransaction(transaction *domain.Transaction) error {
	queryBuilder := squirrel.
		Update(transactionsTable).
		Set("cantidad", transaction.Cantidad).
		Set("operation_type", transaction.OperationType).
		Set("transaction_media", transaction.TransactionMedia).
		Set("comment", transaction.Comment).
		Set("updated_at", transaction.UpdatedAt).
		Where(squirrel.Eq{"id": transaction.ID}).
		PlaceholderFormat(squirrel.Dollar)

	txSQL, txArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error al construir consulta de transacción")
	}

	if _, err := r.conn.Exec(txSQL, txArgs...); err != nil {
		return errors.Wrap(err, "error al actualizar transacción")
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(transactionID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(transactionsTable).
		Where(squirrel.Eq{"id": transactionID}).
		PlaceholderFormat(squirrel.Dollar)

	txSQL, txArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(txSQL, txArgs...)
	if err != nil {
		return false, errors.Wrap(err, "error al eliminar transacción")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *transactionRepository) TransactionStats() (*domain.TransactionStats, error) {
	query := `SELECT
		COUNT(*),
		COALESCE(SUM(cantidad) FILTER (WHERE operation_type = 'CASH IN'), 0),
		COALESCE(SUM(cantidad) FILTER (WHERE operation_type = 'CASH OUT'), 0),
		COUNT(*) FILTER (WHERE transaction_media = 'DIGITAL'),
		COUNT(*) FILTER (WHERE transaction_media = 'CASH')
	FROM transactions`

	var stats domain.TransactionStats
	err := r.conn.QueryRow(query).Scan(
		&stats.TotalTransactions,
		&stats.TotalIncome,
		&stats.TotalExpense,
		&stats.DigitalCount,
		&stats.CashCount,
	)
	if err != nil {
		return nil, errors.Wrap(err, "error al calcular estadísticas de transacciones")
	}

	stats.NetBalance = stats.TotalIncome - stats.TotalExpense
	return &stats, nil
}

func (r *transactionRepository) SessionBalance(sessionID string) (*domain.SessionBalance, error) {
	query := `SELECT
		COALESCE(SUM(cantidad) FILTER (WHERE operation_type = 'CASH IN'), 0),
		COALESCE(SUM(cantidad) FILTER (WHERE operation_type = 'CASH OUT'), 0)
	FROM transactions
	WHERE session_id = $1`

	balance := domain.SessionBalance{SessionID: sessionID}
	err := r.conn.QueryRow(query, sessionID).Scan(
		&balance.TotalIncome,
		&balance.TotalExpense,
	)
	if err != nil {
		return nil, errors.Wrap(err, "error al calcular balance de la sesión")
	}

	balance.Balance = balance.TotalIncome - balance.TotalExpense
	return &balance, nil
}
