// Package summary reduces a raw transaction list into the monthly
// aggregates the mentor reasons about. All functions are pure: the
// reference time is an explicit parameter, never the wall clock.
package summary

import (
	"sort"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
)

// CategoryShare is one entry of the top-spend ranking.
type CategoryShare struct {
	Category models.Category `json:"category"`
	Amount   float64         `json:"amount"`
	Percent  float64         `json:"percent"`
}

// FinanceSummary aggregates one calendar month of activity.
//
// Balance is the signed sum over the ENTIRE transaction list, not the
// monthly slice. Milestone rules depend on it being all-time.
type FinanceSummary struct {
	IncomeMonth       float64                     `json:"income_month"`
	ExpenseMonth      float64                     `json:"expense_month"`
	SavingsMonth      float64                     `json:"savings_month"`
	Balance           float64                     `json:"balance"`
	ExpenseByCategory map[models.Category]float64 `json:"expense_by_category"`
	PercentByCategory map[models.Category]float64 `json:"percent_by_category"`
	TransactionCount  int                         `json:"transaction_count"`
	AverageExpense    float64                     `json:"average_expense"`
	TopCategories     []CategoryShare             `json:"top_categories"`
}

// Monthly computes the summary for the calendar month of ref.
func Monthly(transactions []models.Transaction, ref time.Time) FinanceSummary {
	var month []models.Transaction
	for _, t := range transactions {
		if t.Date.Year() == ref.Year() && t.Date.Month() == ref.Month() {
			month = append(month, t)
		}
	}

	s := aggregate(month)

	// Balance is all-time by design; see package doc.
	for _, t := range transactions {
		if t.Type == models.TransactionTypeIncome {
			s.Balance += positive(t.Amount)
		} else {
			s.Balance -= positive(t.Amount)
		}
	}
	return s
}

// Comparison holds the current month next to the previous one.
type Comparison struct {
	Current  FinanceSummary     `json:"current"`
	Previous FinanceSummary     `json:"previous"`
	Changes  map[string]float64 `json:"changes"`
}

// PreviousMonthComparison compares the month of ref against the month
// before it. The previous summary has no all-time balance.
func PreviousMonthComparison(transactions []models.Transaction, ref time.Time) Comparison {
	prevRef := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 0, -1)

	var previous []models.Transaction
	for _, t := range transactions {
		if t.Date.Year() == prevRef.Year() && t.Date.Month() == prevRef.Month() {
			previous = append(previous, t)
		}
	}

	current := Monthly(transactions, ref)
	prev := aggregate(previous)

	return Comparison{
		Current:  current,
		Previous: prev,
		Changes: map[string]float64{
			"income":  current.IncomeMonth - prev.IncomeMonth,
			"expense": current.ExpenseMonth - prev.ExpenseMonth,
			"savings": current.SavingsMonth - prev.SavingsMonth,
		},
	}
}

// aggregate computes every month-scoped field over the given slice.
func aggregate(month []models.Transaction) FinanceSummary {
	s := FinanceSummary{
		ExpenseByCategory: make(map[models.Category]float64),
		PercentByCategory: make(map[models.Category]float64),
		TransactionCount:  len(month),
	}

	// Category order must be stable for top-3 ties, so remember the
	// order categories are first seen in.
	var order []models.Category

	for _, t := range month {
		amount := positive(t.Amount)
		switch t.Type {
		case models.TransactionTypeIncome:
			s.IncomeMonth += amount
		case models.TransactionTypeExpense:
			s.ExpenseMonth += amount
			cat := t.Category
			if cat == "" {
				cat = models.CategoryOthers
			}
			if _, seen := s.ExpenseByCategory[cat]; !seen {
				order = append(order, cat)
			}
			s.ExpenseByCategory[cat] += amount
		}
	}

	s.SavingsMonth = s.IncomeMonth - s.ExpenseMonth

	for cat, amount := range s.ExpenseByCategory {
		if s.IncomeMonth > 0 {
			s.PercentByCategory[cat] = amount / s.IncomeMonth * 100
		} else {
			s.PercentByCategory[cat] = 0
		}
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, cat := range order {
		shares = append(shares, CategoryShare{
			Category: cat,
			Amount:   s.ExpenseByCategory[cat],
			Percent:  s.PercentByCategory[cat],
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Amount > shares[j].Amount })
	if len(shares) > 3 {
		shares = shares[:3]
	}
	s.TopCategories = shares

	if s.TransactionCount > 0 {
		s.AverageExpense = s.ExpenseMonth / float64(s.TransactionCount)
	}
	return s
}

// positive coerces stored amounts to non-negative values.
func positive(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Stage is the coarse classification of goal progress.
type Stage string

const (
	StageIniciante  Stage = "iniciante"
	StagePoupador   Stage = "poupador"
	StageInvestidor Stage = "investidor"
	StageMestre     Stage = "mestre"
)

// GoalProgress describes how far the balance is from the goal.
type GoalProgress struct {
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
	Stage     Stage   `json:"stage"`
}

// ProgressTowardGoal classifies balance against goal. The goal must be
// positive; a zero or negative goal is a caller contract violation and
// is not defended against here.
func ProgressTowardGoal(balance, goal float64) GoalProgress {
	percent := balance / goal * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	remaining := goal - balance
	if remaining < 0 {
		remaining = 0
	}

	var stage Stage
	switch {
	case percent < 5:
		stage = StageIniciante
	case percent < 25:
		stage = StagePoupador
	case percent < 75:
		stage = StageInvestidor
	default:
		stage = StageMestre
	}

	return GoalProgress{Percent: percent, Remaining: remaining, Stage: stage}
}
