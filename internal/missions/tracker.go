package missions

import (
	"math"
	"sort"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
)

// RecomputeProgress re-derives a mission's current value and progress
// from the transactions inside its window, then applies the status
// transition: progress >= 100 completes the mission, a window that
// ended without completion fails it. Both outcomes are terminal.
func RecomputeProgress(mission models.Mission, transactions []models.Transaction, now time.Time) models.Mission {
	var window []models.Transaction
	for _, t := range transactions {
		if !t.Date.Before(mission.StartDate) && !t.Date.After(mission.EndDate) {
			window = append(window, t)
		}
	}

	var currentValue, progress float64

	switch mission.ID {
	case models.MissionReduceDelivery:
		currentValue = float64(longestRunWithout(window, models.CategoryDelivery))
		progress = cappedRatio(currentValue, mission.TargetValue, 3)

	case models.MissionSaveAmount:
		var income, expense float64
		for _, t := range window {
			switch t.Type {
			case models.TransactionTypeIncome:
				income += t.Amount
			case models.TransactionTypeExpense:
				expense += t.Amount
			}
		}
		// Can go negative when the week ran a deficit; only the top is
		// capped.
		currentValue = income - expense
		progress = cappedRatio(currentValue, mission.TargetValue, 50)

	case models.MissionReviewSubscriptions:
		// Manual-only mission: the stored counter is authoritative.
		currentValue = mission.CurrentValue
		progress = cappedRatio(currentValue, mission.TargetValue, 2)

	case models.MissionTrackExpenses:
		count := 0
		for _, t := range window {
			if t.Type == models.TransactionTypeExpense {
				count++
			}
		}
		currentValue = float64(count)
		progress = cappedRatio(currentValue, mission.TargetValue, 7)

	case models.MissionReduceLeisure:
		var spent float64
		for _, t := range window {
			if t.Type == models.TransactionTypeExpense && t.Category == models.CategoryLeisure {
				spent += t.Amount
			}
		}
		currentValue = spent
		// Inverse metric: staying at or under target is full marks,
		// overspending decays linearly to zero.
		target := mission.TargetValue
		if spent <= target {
			progress = 100
		} else {
			progress = math.Max(0, 100-(spent-target)/target*100)
		}

	case models.MissionPublicTransport:
		currentValue = float64(daysWithCategory(window, models.CategoryPublicTransport))
		progress = cappedRatio(currentValue, mission.TargetValue, 5)

	case models.MissionNoImpulse:
		currentValue = float64(daysWithoutNightPurchases(window))
		progress = cappedRatio(currentValue, mission.TargetValue, 7)

	default:
		// Unknown mission: pass the stored values through untouched.
		currentValue = mission.CurrentValue
		progress = float64(mission.Progress)
	}

	status := models.MissionStatusActive
	if progress >= 100 {
		status = models.MissionStatusCompleted
	} else if now.After(mission.EndDate) {
		status = models.MissionStatusFailed
	}

	mission.CurrentValue = currentValue
	mission.Progress = int(math.Round(progress))
	mission.Status = status
	return mission
}

// cappedRatio is current/target as a percentage, capped at 100. The
// fallback target guards missions stored before targets existed.
func cappedRatio(current, target, fallbackTarget float64) float64 {
	if target == 0 {
		target = fallbackTarget
	}
	return math.Min(current/target*100, 100)
}

// longestRunWithout counts the longest run of consecutive recorded days
// that have no expense in the given category.
func longestRunWithout(transactions []models.Transaction, category models.Category) int {
	allDays := make(map[string]bool)
	categoryDays := make(map[string]bool)
	for _, t := range transactions {
		day := dayKey(t.Date)
		allDays[day] = true
		if t.Category == category {
			categoryDays[day] = true
		}
	}

	sorted := make([]string, 0, len(allDays))
	for day := range allDays {
		sorted = append(sorted, day)
	}
	sort.Strings(sorted)

	run, best := 0, 0
	for _, day := range sorted {
		if categoryDays[day] {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

// daysWithCategory counts distinct calendar days containing at least
// one transaction of the given category.
func daysWithCategory(transactions []models.Transaction, category models.Category) int {
	days := make(map[string]bool)
	for _, t := range transactions {
		if t.Category == category {
			days[dayKey(t.Date)] = true
		}
	}
	return len(days)
}

// daysWithoutNightPurchases counts recorded days that had no expense in
// the 22h-2h window.
func daysWithoutNightPurchases(transactions []models.Transaction) int {
	allDays := make(map[string]bool)
	nightDays := make(map[string]bool)
	for _, t := range transactions {
		day := dayKey(t.Date)
		allDays[day] = true
		if t.Type == models.TransactionTypeExpense && summary.IsNightHour(t.Date.Hour()) {
			nightDays[day] = true
		}
	}
	return len(allDays) - len(nightDays)
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
