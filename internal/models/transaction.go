package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Category is one of the fixed categories a transaction can carry.
// Display values are Portuguese, as shown in the app.
type Category string

const (
	CategoryRestaurants     Category = "Restaurantes"
	CategoryDelivery        Category = "Delivery"
	CategoryMarket          Category = "Mercado"
	CategoryPublicTransport Category = "Transporte Público"
	CategoryRideHailing     Category = "Apps de Transporte"
	CategoryFuel            Category = "Combustível"
	CategoryLeisure         Category = "Lazer"
	CategoryInvestment      Category = "Investimentos"
	CategoryHousing         Category = "Moradia"
	CategoryEducation       Category = "Educação"
	CategoryHealth          Category = "Saúde"
	CategorySubscriptions   Category = "Assinaturas"
	CategorySalary          Category = "Salário"
	CategoryOthers          Category = "Outros"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryRestaurants,
	CategoryDelivery,
	CategoryMarket,
	CategoryPublicTransport,
	CategoryRideHailing,
	CategoryFuel,
	CategoryLeisure,
	CategoryInvestment,
	CategoryHousing,
	CategoryEducation,
	CategoryHealth,
	CategorySubscriptions,
	CategorySalary,
	CategoryOthers,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction represents a financial movement recorded by the user.
// Amounts are positive decimal currency units; the type decides the sign.
type Transaction struct {
	Base
	Description string          `gorm:"not null" json:"description"`
	Vendor      string          `json:"vendor,omitempty"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Category    Category        `gorm:"not null" json:"category"`
	Type        TransactionType `gorm:"not null" json:"type"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}
