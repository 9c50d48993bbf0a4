package services

import (
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      *models.TransactionType
	Category  *models.Category
	MinAmount *float64
	MaxAmount *float64
}

// TransactionServicer defines the contract for transaction-related business logic.
// The mentor core consumes ListAll; everything else serves the CRUD surface.
type TransactionServicer interface {
	CreateTransaction(description, vendor string, amount float64, date time.Time, category models.Category, txType models.TransactionType, receiptURL string) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(id string) error
	ListAll() ([]models.Transaction, error)
	Balance() (float64, error)
}
