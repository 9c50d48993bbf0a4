package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/testutil"
)

var now = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func evaluate(transactions []models.Transaction, goal float64, enabledIDs []string) []models.MentorMessage {
	s := summary.Monthly(transactions, now)
	return Evaluate(s, transactions, goal, enabledIDs, now)
}

func findMessage(messages []models.MentorMessage, id string) (models.MentorMessage, bool) {
	for _, m := range messages {
		if m.ID == id {
			return m, true
		}
	}
	return models.MentorMessage{}, false
}

func TestEvaluateDeficitCritical(t *testing.T) {
	transactions := []models.Transaction{
		testutil.Income(1000, now.AddDate(0, 0, -10)),
		testutil.Expense(1200, models.CategoryMarket, now.AddDate(0, 0, -3)),
	}

	messages := evaluate(transactions, 5000, nil)

	msg, ok := findMessage(messages, "deficit-critical")
	if !ok {
		t.Fatalf("expected deficit-critical to fire, got %v", messages)
	}
	for _, want := range []string{"R$ 1.200,00", "R$ 1.000,00", "R$ 200,00"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body %q should contain %q", msg.Body, want)
		}
	}
	if msg.Severity != models.SeverityAlert {
		t.Errorf("expected alert severity, got %s", msg.Severity)
	}
	if msg.Icon != "🚨" {
		t.Errorf("expected alert icon, got %q", msg.Icon)
	}
}

func TestEvaluateCapsAndOrders(t *testing.T) {
	// Enough simultaneous problems to fire well over five rules.
	transactions := []models.Transaction{
		testutil.Income(1000, now.AddDate(0, 0, -12)),
		testutil.Expense(400, models.CategoryLeisure, now.AddDate(0, 0, -4)),
		testutil.Expense(200, models.CategoryRestaurants, now.AddDate(0, 0, -3)),
		testutil.Expense(150, models.CategorySubscriptions, now.AddDate(0, 0, -2)),
		testutil.Expense(150, models.CategoryDelivery, now.AddDate(0, 0, -2)),
		testutil.Expense(200, models.CategoryRideHailing, now.AddDate(0, 0, -1)),
	}

	messages := evaluate(transactions, 5000, nil)

	if len(messages) != 5 {
		t.Fatalf("expected exactly 5 messages, got %d", len(messages))
	}

	priorities := make([]int, 0, len(messages))
	for _, m := range messages {
		rule, ok := ByID(m.ID)
		if !ok {
			t.Fatalf("message carries unknown rule id %q", m.ID)
		}
		priorities = append(priorities, rule.Priority)
	}
	for i := 1; i < len(priorities); i++ {
		if priorities[i] > priorities[i-1] {
			t.Errorf("messages not sorted by descending priority: %v", priorities)
		}
	}

	// Both priority-10 alerts fire here; catalog order breaks the tie.
	if messages[0].ID != "deficit-critical" {
		t.Errorf("expected deficit-critical first, got %s", messages[0].ID)
	}
	if messages[1].ID != "negative-balance" {
		t.Errorf("expected negative-balance second, got %s", messages[1].ID)
	}
}

func TestEvaluateEnabledFilter(t *testing.T) {
	transactions := []models.Transaction{
		testutil.Income(1000, now.AddDate(0, 0, -12)),
		testutil.Expense(400, models.CategoryLeisure, now.AddDate(0, 0, -4)),
	}

	t.Run("subset_restricts_catalog", func(t *testing.T) {
		messages := evaluate(transactions, 5000, []string{"no-investments"})
		if len(messages) != 1 || messages[0].ID != "no-investments" {
			t.Errorf("expected only no-investments, got %v", messages)
		}
	})

	t.Run("empty_selection_silences_everything", func(t *testing.T) {
		if messages := evaluate(transactions, 5000, []string{}); len(messages) != 0 {
			t.Errorf("expected no messages, got %v", messages)
		}
	})

	t.Run("nil_means_full_catalog", func(t *testing.T) {
		if messages := evaluate(transactions, 5000, nil); len(messages) == 0 {
			t.Error("expected messages with the full catalog")
		}
	})
}

func TestMilestoneBands(t *testing.T) {
	tests := []struct {
		balance  float64
		m50, m75 bool
		m90, won bool
	}{
		{499, false, false, false, false},
		{500, true, false, false, false},
		{550, false, false, false, false},
		{750, false, true, false, false},
		{800, false, false, false, false},
		{900, false, false, true, false},
		{999, false, false, true, false},
		{1000, false, false, false, true},
		{1500, false, false, false, true},
	}

	for _, tt := range tests {
		ctx := Context{Summary: summary.FinanceSummary{Balance: tt.balance}, Goal: 1000, Now: now}
		if got := condMilestone50(ctx); got != tt.m50 {
			t.Errorf("balance %f: milestone50 = %v, want %v", tt.balance, got, tt.m50)
		}
		if got := condMilestone75(ctx); got != tt.m75 {
			t.Errorf("balance %f: milestone75 = %v, want %v", tt.balance, got, tt.m75)
		}
		if got := condMilestone90(ctx); got != tt.m90 {
			t.Errorf("balance %f: milestone90 = %v, want %v", tt.balance, got, tt.m90)
		}
		if got := condGoalAchieved(ctx); got != tt.won {
			t.Errorf("balance %f: goalAchieved = %v, want %v", tt.balance, got, tt.won)
		}
	}
}

func TestDeficitWarningBand(t *testing.T) {
	tests := []struct {
		income, expense float64
		want            bool
	}{
		{1000, 900, false},  // exactly 90% is not over the line
		{1000, 950, true},   // inside (90, 100]
		{1000, 1000, true},  // exactly at income
		{1000, 1100, false}, // over income belongs to deficit-critical
		{0, 100, false},     // no income, no ratio
	}

	for _, tt := range tests {
		ctx := Context{Summary: summary.FinanceSummary{IncomeMonth: tt.income, ExpenseMonth: tt.expense}}
		if got := condDeficitWarning(ctx); got != tt.want {
			t.Errorf("income %f expense %f: deficitWarning = %v, want %v", tt.income, tt.expense, got, tt.want)
		}
	}
}

func TestLowSavingsZeroIncome(t *testing.T) {
	ctx := Context{Summary: summary.FinanceSummary{}}
	if !condLowSavings(ctx) {
		t.Error("zero income means a zero savings rate, which is below 10%")
	}
}

func TestNoTransactionsWindow(t *testing.T) {
	t.Run("fires_on_quiet_week", func(t *testing.T) {
		transactions := []models.Transaction{
			testutil.Expense(50, models.CategoryMarket, now.AddDate(0, 0, -10)),
		}
		ctx := Context{Transactions: transactions, Now: now}
		if !condNoTransactions(ctx) {
			t.Error("expected no-transactions to fire when the last entry is 10 days old")
		}
	})

	t.Run("quiet_week_broken_by_recent_entry", func(t *testing.T) {
		transactions := []models.Transaction{
			testutil.Expense(50, models.CategoryMarket, now.AddDate(0, 0, -2)),
		}
		ctx := Context{Transactions: transactions, Now: now}
		if condNoTransactions(ctx) {
			t.Error("a 2-day-old entry should suppress no-transactions")
		}
	})
}

func TestByID(t *testing.T) {
	if _, ok := ByID("deficit-critical"); !ok {
		t.Error("expected deficit-critical in the catalog")
	}
	if _, ok := ByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Catalog {
		if seen[r.ID] {
			t.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Condition == nil {
			t.Errorf("rule %q has no condition", r.ID)
		}
		if r.MessageTemplate == "" {
			t.Errorf("rule %q has no message template", r.ID)
		}
		if r.Priority < 1 || r.Priority > 10 {
			t.Errorf("rule %q priority %d outside 1-10", r.ID, r.Priority)
		}
	}
	if len(Catalog) != 26 {
		t.Errorf("expected 26 catalog rules, got %d", len(Catalog))
	}
}
