package rules

import (
	"math"
	"sort"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/logger"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/template"
)

// maxMessages caps how many advisories a single evaluation returns.
const maxMessages = 5

// Evaluate runs the catalog against the summary and returns rendered
// messages for every firing rule, sorted by descending priority (catalog
// order on ties) and truncated to the 5 most important.
//
// When enabledIDs is non-nil only rules present in it are considered,
// on top of the catalog's own enabled flags.
func Evaluate(
	s summary.FinanceSummary,
	transactions []models.Transaction,
	goal float64,
	enabledIDs []string,
	now time.Time,
) []models.MentorMessage {
	ctx := Context{Summary: s, Transactions: transactions, Goal: goal, Now: now}

	var allowed map[string]bool
	if enabledIDs != nil {
		allowed = make(map[string]bool, len(enabledIDs))
		for _, id := range enabledIDs {
			allowed[id] = true
		}
	}

	type scored struct {
		message  models.MentorMessage
		priority int
	}
	var firing []scored

	for _, rule := range Catalog {
		if !rule.Enabled {
			continue
		}
		if allowed != nil && !allowed[rule.ID] {
			continue
		}
		if !fires(rule, ctx) {
			continue
		}

		body := template.Render(rule.MessageTemplate, variableBag(ctx))
		firing = append(firing, scored{
			message: models.MentorMessage{
				ID:       rule.ID,
				Title:    rule.Name,
				Body:     body,
				Severity: rule.Severity,
				Icon:     severityIcon(rule.Severity),
			},
			priority: rule.Priority,
		})
	}

	sort.SliceStable(firing, func(i, j int) bool { return firing[i].priority > firing[j].priority })
	if len(firing) > maxMessages {
		firing = firing[:maxMessages]
	}

	messages := make([]models.MentorMessage, 0, len(firing))
	for _, f := range firing {
		messages = append(messages, f.message)
	}
	return messages
}

// fires runs a rule condition, treating a panic as "did not fire" so a
// single bad rule never aborts the batch.
func fires(rule Rule, ctx Context) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Errorw("rule condition panicked",
				"rule", rule.ID,
				"panic", r,
			)
			result = false
		}
	}()
	return rule.Condition(ctx)
}

// variableBag assembles the template variables every rule may reference.
func variableBag(ctx Context) map[string]any {
	s := ctx.Summary

	var savingsPercent, expensePercent float64
	if s.IncomeMonth > 0 {
		savingsPercent = s.SavingsMonth / s.IncomeMonth * 100
		expensePercent = s.ExpenseMonth / s.IncomeMonth * 100
	}

	vars := map[string]any{
		"balance":         s.Balance,
		"incomeAmount":    s.IncomeMonth,
		"expenseAmount":   s.ExpenseMonth,
		"savingsAmount":   s.SavingsMonth,
		"savingsPercent":  savingsPercent,
		"expensePercent":  expensePercent,
		"deficitAmount":   s.ExpenseMonth - s.IncomeMonth,
		"goal":            ctx.Goal,
		"remaining":       math.Max(0, ctx.Goal-s.Balance),
		"progressPercent": s.Balance / ctx.Goal * 100,
		"count":           float64(s.TransactionCount),
	}

	if len(s.TopCategories) > 0 {
		top := s.TopCategories[0]
		vars["category"] = string(top.Category)
		vars["amount"] = top.Amount
		vars["percent"] = top.Percent
	}
	return vars
}

func severityIcon(severity models.Severity) string {
	switch severity {
	case models.SeverityAlert:
		return "🚨"
	case models.SeverityWarn:
		return "⚠️"
	case models.SeveritySuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}
