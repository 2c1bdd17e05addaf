package domain

import "time"

// OperationType es el tipo de operación de una transacción de caja.
type OperationType string

const (
	OperationIn  OperationType = "CASH IN"
	OperationOut OperationType = "CASH OUT"
)

// TransactionMedia es el medio por el que se mueve el dinero.
type TransactionMedia string

const (
	MediaDigital TransactionMedia = "DIGITAL"
	MediaCash    TransactionMedia = "CASH"
)

// Transaction representa un movimiento de efectivo asociado a una sesión.
type Transaction struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	SessionID        string           `json:"session_id"`
	Cantidad         int              `json:"cantidad"`
	OperationType    OperationType    `json:"operation_type"`
	TransactionMedia TransactionMedia `json:"transaction_media"`
	Comment          *string          `json:"comment"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type TransactionFilter struct {
	UserID           *string
	SessionID        *string
	OperationType    *OperationType
	TransactionMedia *TransactionMedia
}

// TransactionStats son los totales agregados sobre las transacciones.
type TransactionStats struct {
	TotalTransactions int `json:"total_transactions"`
	TotalIncome       int `json:"total_income"`
	TotalExpense      int `json:"total_expense"`
	NetBalance        int `json:"net_balance"`
	DigitalCount      int `json:"digital_count"`
	CashCount         int `json:"cash_count"`
}

// SessionBalance es el balance de caja de una sesión.
type SessionBalance struct {
	SessionID    string `json:"session_id"`
	TotalIncome  int    `json:"total_income"`
	TotalExpense int    `json:"total_expense"`
	Balance      int    `json:"balance"`
}

// SignedAmount retorna la cantidad con signo según el tipo de operación.
func (t *Transaction) SignedAmount() int {
	if t.OperationType == OperationIn {
		return t.Cantidad
	}
	return -t.Cantidad
}

func (t *Transaction) IsIncome() bool {
	return t.OperationType == OperationIn
}

func (t *Transaction) IsExpense() bool {
	return t.OperationType == OperationOut
}

// ValidateBusinessRules valida las reglas de negocio de la transacción.
func (t *Transaction) ValidateBusinessRules() []string {
	var errors []string

	if t.UserID == "" {
		errors = append(errors, "el user_id es obligatorio")
	}
	if t.SessionID == "" {
		errors = append(errors, "el session_id es obligatorio")
	}
	if t.Cantidad <= 0 {
		errors = append(errors, "la cantidad debe ser mayor a 0")
	}

	switch t.OperationType {
	case OperationIn, OperationOut:
	default:
		errors = append(errors, "tipo de operación inválido, debe ser 'CASH IN' o 'CASH OUT'")
	}

	switch t.TransactionMedia {
	case MediaDigital, MediaCash:
	default:
		errors = append(errors, "medio de transacción inválido, debe ser 'DIGITAL' o 'CASH'")
	}

	return errors
}
