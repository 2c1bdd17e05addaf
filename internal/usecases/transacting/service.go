package transacting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"github.com/vfigueroa/casino-manager-api/pkg/utils"
)

// Transactor administra los movimientos de caja asociados a sesiones.
type Transactor interface {
	CreateTransaction(transaction *domain.Transaction) (*domain.Transaction, error)
	GetTransactionByID(transactionID string) (*domain.Transaction, error)
	ListTransactions(filter domain.TransactionFilter, skip, limit int) ([]*domain.Transaction, error)
	UpdateTransaction(transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(transactionID string) error
	Stats() (*domain.TransactionStats, error)
	SessionBalance(sessionID string) (*domain.SessionBalance, error)
}

// Service implementa la interface Transactor
type Service struct {
	transactionRepo repository.TransactionRepository
	sessionRepo     repository.SessionRepository
	clock           timezone.Clock
}

// NewService crea una nueva instancia del servicio de transacciones
func NewService(
	transactionRepo repository.TransactionRepository,
	sessionRepo repository.SessionRepository,
	clock timezone.Clock,
) Transactor {
	return &Service{
		transactionRepo: transactionRepo,
		sessionRepo:     sessionRepo,
		clock:           clock,
	}
}

// CreateTransaction registra un movimiento de caja contra una sesión existente
func (s *Service) CreateTransaction(transaction *domain.Transaction) (*domain.Transaction, error) {
	if validationErrors := transaction.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewTransactionError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	session, err := s.sessionRepo.GetSessionByID(transaction.SessionID)
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if session == nil {
		return nil, NewTransactionError(ErrSessionNotFound, "RES_001", transaction.SessionID)
	}

	transactionID, err := utils.GenerateID()
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_001", err.Error())
	}

	now := timezone.NowBogota(s.clock)
	transaction.ID = transactionID
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	created, err := s.transactionRepo.CreateTransaction(transaction)
	if err != nil {
		logrus.Error("Error al crear transacción", map[string]any{
			"sessionID": transaction.SessionID,
			"error":     err,
		})
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return created, nil
}

// GetTransactionByID busca una transacción por su identificador
func (s *Service) GetTransactionByID(transactionID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if transaction == nil {
		return nil, NewTransactionError(ErrTransactionNotFound, "RES_001", transactionID)
	}

	return transaction, nil
}

// ListTransactions retorna las transacciones que cumplen el filtro
func (s *Service) ListTransactions(filter domain.TransactionFilter, skip, limit int) ([]*domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(filter, skip, limit)
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return transactions, nil
}

// UpdateTransaction reemplaza los datos modificables de una transacción
func (s *Service) UpdateTransaction(transaction *domain.Transaction) (*domain.Transaction, error) {
	existing, err := s.GetTransactionByID(transaction.ID)
	if err != nil {
		return nil, err
	}

	existing.Cantidad = transaction.Cantidad
	existing.OperationType = transaction.OperationType
	existing.TransactionMedia = transaction.TransactionMedia
	if transaction.Comment != nil {
		existing.Comment = transaction.Comment
	}

	if validationErrors := existing.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewTransactionError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	existing.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.transactionRepo.UpdateTransaction(existing); err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return existing, nil
}

// DeleteTransaction elimina una transacción de forma definitiva
func (s *Service) DeleteTransaction(transactionID string) error {
	deleted, err := s.transactionRepo.DeleteTransaction(transactionID)
	if err != nil {
		return NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if !deleted {
		return NewTransactionError(ErrTransactionNotFound, "RES_001", transactionID)
	}

	return nil
}

// Stats retorna los totales agregados de transacciones
func (s *Service) Stats() (*domain.TransactionStats, error) {
	stats, err := s.transactionRepo.TransactionStats()
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return stats, nil
}

// SessionBalance retorna el balance de caja de una sesión
func (s *Service) SessionBalance(sessionID string) (*domain.SessionBalance, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if session == nil {
		return nil, NewTransactionError(ErrSessionNotFound, "RES_001", sessionID)
	}

	balance, err := s.transactionRepo.SessionBalance(sessionID)
	if err != nil {
		return nil, NewTransactionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return balance, nil
}
