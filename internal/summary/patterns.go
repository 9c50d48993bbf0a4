package summary

import (
	"fmt"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
)

// PatternType tags a detected spending pattern.
type PatternType string

const (
	PatternConsecutive   PatternType = "consecutive"
	PatternImpulse       PatternType = "impulse"
	PatternLargePurchase PatternType = "large-purchase"
	PatternHighFrequency PatternType = "high-frequency"
)

// SpendingPattern is an anomalous behavior detected over the trailing
// 7-day window, carrying the transactions that triggered it.
type SpendingPattern struct {
	Type         PatternType          `json:"type"`
	Category     models.Category      `json:"category,omitempty"`
	Description  string               `json:"description"`
	Severity     models.Level         `json:"severity"`
	Transactions []models.Transaction `json:"transactions"`
}

// Detection thresholds. The comparison operators around these are
// boundary-sensitive; keep them exact.
const (
	patternWindow          = 7 * 24 * time.Hour
	largePurchaseShare     = 0.2
	highFrequencyMinEvents = 15
	impulseMinEvents       = 5
)

// IsNightHour reports whether hour falls in the 22:00-02:00 impulse
// window (both ends inclusive).
func IsNightHour(hour int) bool {
	return hour >= 22 || hour <= 2
}

// DetectPatterns scans the trailing 7 days before ref for the four
// known anomalies. Checks are independent; zero or more patterns are
// returned.
func DetectPatterns(transactions []models.Transaction, ref time.Time) []SpendingPattern {
	var patterns []SpendingPattern

	windowStart := ref.Add(-patternWindow)
	var recent []models.Transaction
	for _, t := range transactions {
		if !t.Date.Before(windowStart) {
			recent = append(recent, t)
		}
	}

	// Daily spending in the same category for 7+ distinct days.
	categoryDays := make(map[models.Category]map[string]bool)
	var categoryOrder []models.Category
	for _, t := range recent {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = models.CategoryOthers
		}
		if categoryDays[cat] == nil {
			categoryDays[cat] = make(map[string]bool)
			categoryOrder = append(categoryOrder, cat)
		}
		categoryDays[cat][dayKey(t.Date)] = true
	}
	for _, cat := range categoryOrder {
		if len(categoryDays[cat]) >= 7 {
			var matched []models.Transaction
			for _, t := range recent {
				if t.Category == cat {
					matched = append(matched, t)
				}
			}
			patterns = append(patterns, SpendingPattern{
				Type:         PatternConsecutive,
				Category:     cat,
				Description:  fmt.Sprintf("Gastos diários em %s por 7+ dias consecutivos", cat),
				Severity:     models.LevelHigh,
				Transactions: matched,
			})
		}
	}

	// Single purchases above 20% of the monthly income.
	monthly := Monthly(transactions, ref)
	largeThreshold := monthly.IncomeMonth * largePurchaseShare
	for _, t := range recent {
		if t.Type == models.TransactionTypeExpense && t.Amount > largeThreshold {
			patterns = append(patterns, SpendingPattern{
				Type:     PatternLargePurchase,
				Category: t.Category,
				Description: fmt.Sprintf("Compra grande: %s (%.1f%% da renda)",
					t.Description, t.Amount/monthly.IncomeMonth*100),
				Severity:     models.LevelMedium,
				Transactions: []models.Transaction{t},
			})
		}
	}

	// High frequency in restaurants/delivery: 15+ in 7 days is more
	// than twice a day.
	var dining []models.Transaction
	for _, t := range recent {
		if t.Type == models.TransactionTypeExpense &&
			(t.Category == models.CategoryRestaurants || t.Category == models.CategoryDelivery) {
			dining = append(dining, t)
		}
	}
	if len(dining) >= highFrequencyMinEvents {
		patterns = append(patterns, SpendingPattern{
			Type:         PatternHighFrequency,
			Category:     models.CategoryRestaurants,
			Description:  fmt.Sprintf("%d transações em restaurantes/delivery em 7 dias", len(dining)),
			Severity:     models.LevelHigh,
			Transactions: dining,
		})
	}

	// Night spending between 22h and 2h suggests impulse buying.
	var night []models.Transaction
	for _, t := range recent {
		if t.Type == models.TransactionTypeExpense && IsNightHour(t.Date.Hour()) {
			night = append(night, t)
		}
	}
	if len(night) >= impulseMinEvents {
		patterns = append(patterns, SpendingPattern{
			Type:         PatternImpulse,
			Description:  fmt.Sprintf("%d gastos noturnos detectados (possível compra por impulso)", len(night)),
			Severity:     models.LevelMedium,
			Transactions: night,
		})
	}

	return patterns
}

// dayKey collapses a timestamp to its UTC calendar day.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
