package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Income builds an in-memory income transaction dated at the given time.
func Income(amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Description: fmt.Sprintf("Renda %d", nextID()),
		Amount:      amount,
		Date:        date,
		Category:    models.CategorySalary,
		Type:        models.TransactionTypeIncome,
	}
}

// Expense builds an in-memory expense transaction in the given category.
func Expense(amount float64, category models.Category, date time.Time) models.Transaction {
	return models.Transaction{
		Description: fmt.Sprintf("Gasto %d", nextID()),
		Amount:      amount,
		Date:        date,
		Category:    category,
		Type:        models.TransactionTypeExpense,
	}
}

// CreateTestTransaction persists a transaction of the given type and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64) *models.Transaction {
	t.Helper()

	category := models.CategoryOthers
	if txType == models.TransactionTypeIncome {
		category = models.CategorySalary
	}

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Date:        time.Now(),
		Category:    category,
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestExpense persists an expense in the given category on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount float64, category models.Category, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      amount,
		Date:        date,
		Category:    category,
		Type:        models.TransactionTypeExpense,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}
