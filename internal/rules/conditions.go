package rules

import (
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
)

// Déficit e saldo.

func condDeficitCritical(ctx Context) bool {
	return ctx.Summary.ExpenseMonth > ctx.Summary.IncomeMonth && ctx.Summary.IncomeMonth > 0
}

func condDeficitWarning(ctx Context) bool {
	if ctx.Summary.IncomeMonth <= 0 {
		return false
	}
	percent := ctx.Summary.ExpenseMonth / ctx.Summary.IncomeMonth * 100
	return percent > 90 && percent <= 100
}

func condNegativeBalance(ctx Context) bool {
	return ctx.Summary.Balance < 0
}

// Categorias.

func condLeisureHigh(ctx Context) bool {
	return ctx.Summary.PercentByCategory[models.CategoryLeisure] > 30
}

func condFoodOutHigh(ctx Context) bool {
	return ctx.Summary.PercentByCategory[models.CategoryRestaurants] > 15
}

func condSubscriptionsHigh(ctx Context) bool {
	return ctx.Summary.PercentByCategory[models.CategorySubscriptions] > 10
}

func condTransportHigh(ctx Context) bool {
	total := ctx.Summary.PercentByCategory[models.CategoryPublicTransport] +
		ctx.Summary.PercentByCategory[models.CategoryRideHailing] +
		ctx.Summary.PercentByCategory[models.CategoryFuel]
	return total > 20
}

func condDeliveryHigh(ctx Context) bool {
	return ctx.Summary.PercentByCategory[models.CategoryDelivery] > 10
}

func condRideHailingHigh(ctx Context) bool {
	return ctx.Summary.PercentByCategory[models.CategoryRideHailing] > 15
}

// Poupança.

func condLowSavings(ctx Context) bool {
	if ctx.Summary.IncomeMonth <= 0 {
		// With zero income the savings rate is defined as zero, which
		// still satisfies the 0 <= rate < 10 band.
		return true
	}
	rate := ctx.Summary.SavingsMonth / ctx.Summary.IncomeMonth * 100
	return rate < 10 && rate >= 0
}

func condNoInvestments(ctx Context) bool {
	return ctx.Summary.ExpenseByCategory[models.CategoryInvestment] == 0
}

func condExcellentSavings(ctx Context) bool {
	if ctx.Summary.IncomeMonth <= 0 {
		return false
	}
	return ctx.Summary.SavingsMonth/ctx.Summary.IncomeMonth*100 > 30
}

// Meta. Progress here is monthly savings measured against the goal.

func condSlowProgress(ctx Context) bool {
	monthly := ctx.Summary.SavingsMonth / ctx.Goal * 100
	return monthly < 5 && monthly > 0
}

func condGoodProgress(ctx Context) bool {
	return ctx.Summary.SavingsMonth/ctx.Goal*100 > 10
}

// Milestone bands are half-open so neighboring milestones never fire
// together.

func condMilestone50(ctx Context) bool {
	percent := ctx.Summary.Balance / ctx.Goal * 100
	return percent >= 50 && percent < 55
}

func condMilestone75(ctx Context) bool {
	percent := ctx.Summary.Balance / ctx.Goal * 100
	return percent >= 75 && percent < 80
}

func condMilestone90(ctx Context) bool {
	percent := ctx.Summary.Balance / ctx.Goal * 100
	return percent >= 90 && percent < 100
}

func condGoalAchieved(ctx Context) bool {
	return ctx.Summary.Balance >= ctx.Goal
}

// Extras.

func condNoTransactions(ctx Context) bool {
	windowStart := ctx.Now.AddDate(0, 0, -7)
	for _, t := range ctx.Transactions {
		if !t.Date.Before(windowStart) {
			return false
		}
	}
	return true
}

func condUncategorizedHigh(ctx Context) bool {
	return ctx.Summary.PercentByCategory[models.CategoryOthers] > 20
}

func condGoodBalance(ctx Context) bool {
	return ctx.Summary.Balance > 0 && ctx.Summary.SavingsMonth > 0
}

func condConsistentTracking(ctx Context) bool {
	return ctx.Summary.TransactionCount >= 10
}

// Comportamento: delegam ao detector de padrões.

func hasPattern(ctx Context, kind summary.PatternType) bool {
	for _, p := range summary.DetectPatterns(ctx.Transactions, ctx.Now) {
		if p.Type == kind {
			return true
		}
	}
	return false
}

func condConsecutiveSpending(ctx Context) bool {
	return hasPattern(ctx, summary.PatternConsecutive)
}

func condLargePurchase(ctx Context) bool {
	return hasPattern(ctx, summary.PatternLargePurchase)
}

func condHighFrequency(ctx Context) bool {
	return hasPattern(ctx, summary.PatternHighFrequency)
}

func condNightSpending(ctx Context) bool {
	return hasPattern(ctx, summary.PatternImpulse)
}
