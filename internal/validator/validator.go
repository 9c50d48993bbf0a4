// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("tx_category", validateCategory)
		_ = v.RegisterValidation("mission_id", validateMissionID)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case string(models.TransactionTypeIncome), string(models.TransactionTypeExpense):
		return true
	}
	return false
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validateMissionID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, id := range models.MissionIDs {
		if value == id {
			return true
		}
	}
	return false
}
