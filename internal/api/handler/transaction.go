package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/transacting"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
)

// CreateTransaction registra un movimiento de caja
func CreateTransaction(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var transaction *domain.Transaction

		if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		created, err := service.CreateTransaction(transaction)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// GetTransaction retorna una transacción por ID
func GetTransaction(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		transaction, err := service.GetTransactionByID(transactionID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, transaction)
	}
}

// ListTransactions retorna las transacciones que cumplen el filtro
func ListTransactions(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		filter := domain.TransactionFilter{}
		query := r.URL.Query()

		if userID := query.Get("user_id"); userID != "" {
			filter.UserID = &userID
		}
		if sessionID := query.Get("session_id"); sessionID != "" {
			filter.SessionID = &sessionID
		}
		if operation := query.Get("operation_type"); operation != "" {
			operationType := domain.OperationType(operation)
			filter.OperationType = &operationType
		}
		if media := query.Get("transaction_media"); media != "" {
			transactionMedia := domain.TransactionMedia(media)
			filter.TransactionMedia = &transactionMedia
		}

		transactions, err := service.ListTransactions(filter, skip, limit)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, transactions)
	}
}

// UpdateTransaction reemplaza los datos modificables de una transacción
func UpdateTransaction(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var transaction domain.Transaction
		if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la petición", nil)
			return
		}

		transaction.ID = transactionID

		updated, err := service.UpdateTransaction(&transaction)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// DeleteTransaction elimina una transacción
func DeleteTransaction(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTransaction(transactionID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
	}
}

// GetTransactionStats retorna los totales agregados de transacciones
func GetTransactionStats(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats()
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// GetSessionBalance retorna el balance de caja de una sesión
func GetSessionBalance(service transacting.Transactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		balance, err := service.SessionBalance(sessionID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, balance)
	}
}
