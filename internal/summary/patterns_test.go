package summary

import (
	"testing"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/testutil"
)

func hasType(patterns []SpendingPattern, kind PatternType) bool {
	for _, p := range patterns {
		if p.Type == kind {
			return true
		}
	}
	return false
}

func TestDetectPatterns(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("consecutive_daily_spending", func(t *testing.T) {
		transactions := []models.Transaction{testutil.Income(3000, now.AddDate(0, 0, -9))}
		for day := 0; day < 7; day++ {
			date := now.AddDate(0, 0, -day).Add(time.Hour)
			transactions = append(transactions, testutil.Expense(20, models.CategoryDelivery, date))
		}

		patterns := DetectPatterns(transactions, now)

		if !hasType(patterns, PatternConsecutive) {
			t.Fatalf("expected consecutive pattern, got %v", patterns)
		}
	})

	t.Run("six_days_is_not_consecutive", func(t *testing.T) {
		transactions := []models.Transaction{testutil.Income(3000, now.AddDate(0, 0, -9))}
		for day := 0; day < 6; day++ {
			date := now.AddDate(0, 0, -day).Add(time.Hour)
			transactions = append(transactions, testutil.Expense(20, models.CategoryDelivery, date))
		}

		if hasType(DetectPatterns(transactions, now), PatternConsecutive) {
			t.Error("six distinct days should not trigger the consecutive pattern")
		}
	})

	t.Run("large_purchase", func(t *testing.T) {
		transactions := []models.Transaction{
			testutil.Income(1000, now.AddDate(0, 0, -6)),
			testutil.Expense(500, models.CategoryLeisure, now.AddDate(0, 0, -1)),
		}

		patterns := DetectPatterns(transactions, now)

		found := false
		for _, p := range patterns {
			if p.Type == PatternLargePurchase {
				found = true
				if len(p.Transactions) != 1 {
					t.Errorf("expected single triggering transaction, got %d", len(p.Transactions))
				}
			}
		}
		if !found {
			t.Fatalf("expected large purchase pattern, got %v", patterns)
		}
	})

	t.Run("high_frequency_dining", func(t *testing.T) {
		transactions := []models.Transaction{testutil.Income(5000, now.AddDate(0, 0, -6))}
		for i := 0; i < 15; i++ {
			date := now.Add(-time.Duration(i*8) * time.Hour)
			transactions = append(transactions, testutil.Expense(30, models.CategoryRestaurants, date))
		}

		if !hasType(DetectPatterns(transactions, now), PatternHighFrequency) {
			t.Error("expected high frequency pattern for 15 dining expenses in a week")
		}
	})

	t.Run("night_impulse", func(t *testing.T) {
		transactions := []models.Transaction{testutil.Income(5000, now.AddDate(0, 0, -6))}
		for day := 1; day <= 5; day++ {
			date := time.Date(2026, 3, day+4, 23, 15, 0, 0, time.UTC)
			transactions = append(transactions, testutil.Expense(40, models.CategoryOthers, date))
		}

		if !hasType(DetectPatterns(transactions, now), PatternImpulse) {
			t.Error("expected impulse pattern for 5 night purchases")
		}
	})

	t.Run("quiet_week_detects_nothing", func(t *testing.T) {
		transactions := []models.Transaction{
			testutil.Income(5000, now.AddDate(0, 0, -3)),
			testutil.Expense(50, models.CategoryMarket, now.AddDate(0, 0, -2).Add(3 * time.Hour)),
		}

		if got := DetectPatterns(transactions, now); len(got) != 0 {
			t.Errorf("expected no patterns, got %v", got)
		}
	})
}

func TestIsNightHour(t *testing.T) {
	for _, hour := range []int{22, 23, 0, 1, 2} {
		if !IsNightHour(hour) {
			t.Errorf("hour %d should be a night hour", hour)
		}
	}
	for _, hour := range []int{3, 12, 21} {
		if IsNightHour(hour) {
			t.Errorf("hour %d should not be a night hour", hour)
		}
	}
}
