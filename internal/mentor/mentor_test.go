package mentor

import (
	"strings"
	"testing"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/storage"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/testutil"
)

var now = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func newTestService() Servicer {
	return NewService(storage.NewMemory(), WithClock(func() time.Time { return now }))
}

func TestFeedback(t *testing.T) {
	t.Run("fresh_user_is_iniciante", func(t *testing.T) {
		svc := newTestService()

		fb := svc.Feedback(nil, 0, "Ana", 10000)

		if fb.Stage != summary.StageIniciante {
			t.Errorf("expected iniciante, got %s", fb.Stage)
		}
		if !strings.Contains(fb.Message, "Ana") {
			t.Errorf("expected personalized message, got %q", fb.Message)
		}
		if fb.Challenge == "" {
			t.Error("expected a weekly challenge")
		}
	})

	t.Run("goal_reached_is_mestre", func(t *testing.T) {
		svc := newTestService()

		fb := svc.Feedback(nil, 10000, "Ana", 10000)

		if fb.Stage != summary.StageMestre {
			t.Errorf("expected mestre, got %s", fb.Stage)
		}
	})

	t.Run("supplied_balance_overrides_derived_one", func(t *testing.T) {
		svc := newTestService()
		transactions := []models.Transaction{
			testutil.Income(100, now.AddDate(0, 0, -1)),
		}

		// Derived balance would be 100; the caller says 5000.
		fb := svc.Feedback(transactions, 5000, "Ana", 10000)

		if fb.Stage != summary.StageInvestidor {
			t.Errorf("expected investidor at 50%%, got %s", fb.Stage)
		}
	})

	t.Run("insights_respect_rule_selection", func(t *testing.T) {
		svc := newTestService()
		testutil.AssertNoError(t, svc.SetEnabledRuleIDs([]string{"no-investments"}))

		transactions := []models.Transaction{
			testutil.Income(1000, now.AddDate(0, 0, -3)),
			testutil.Expense(1200, models.CategoryMarket, now.AddDate(0, 0, -2)),
		}

		fb := svc.Feedback(transactions, -200, "Ana", 10000)

		if len(fb.Insights) != 1 || fb.Insights[0].ID != "no-investments" {
			t.Errorf("expected only no-investments, got %v", fb.Insights)
		}
	})
}

func TestTips(t *testing.T) {
	t.Run("never_more_than_three", func(t *testing.T) {
		svc := newTestService()
		transactions := []models.Transaction{
			testutil.Income(1000, now.AddDate(0, 0, -3)),
			testutil.Expense(500, models.CategoryLeisure, now.AddDate(0, 0, -2)),
			testutil.Expense(400, models.CategoryRestaurants, now.AddDate(0, 0, -1)),
		}

		tips := svc.Tips(transactions, 100, 10000)
		if len(tips) > 3 {
			t.Errorf("expected at most 3 tips, got %d", len(tips))
		}
	})

	t.Run("pads_with_fixed_costs_tip", func(t *testing.T) {
		svc := newTestService()

		// Strong saver far along the goal: no problem tips apply.
		transactions := []models.Transaction{
			testutil.Income(1000, now.AddDate(0, 0, -3)),
			testutil.Expense(100, models.CategoryMarket, now.AddDate(0, 0, -2)),
		}

		tips := svc.Tips(transactions, 5000, 10000)

		found := false
		for _, tip := range tips {
			if tip.Title == "Revise Gastos Fixos" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected the fixed-costs filler tip, got %v", tips)
		}
	})
}

func TestWeeklyMissions(t *testing.T) {
	transactions := []models.Transaction{
		testutil.Income(2000, now.AddDate(0, 0, -5)),
		testutil.Expense(300, models.CategoryMarket, now.AddDate(0, 0, -2)),
	}

	t.Run("generates_and_persists", func(t *testing.T) {
		svc := newTestService()

		generated, err := svc.WeeklyMissions(transactions, false)
		testutil.AssertNoError(t, err)

		if len(generated) == 0 {
			t.Fatal("expected at least the savings mission")
		}
		hasSavings := false
		for _, m := range generated {
			if m.ID == models.MissionSaveAmount {
				hasSavings = true
			}
		}
		if !hasSavings {
			t.Errorf("expected save-amount among %v", generated)
		}
	})

	t.Run("second_call_keeps_the_set", func(t *testing.T) {
		svc := newTestService()

		first, err := svc.WeeklyMissions(transactions, false)
		testutil.AssertNoError(t, err)
		second, err := svc.WeeklyMissions(transactions, false)
		testutil.AssertNoError(t, err)

		if len(first) != len(second) {
			t.Fatalf("mission set changed between calls: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Errorf("mission %d changed id: %s vs %s", i, first[i].ID, second[i].ID)
			}
		}
	})

	t.Run("force_regenerates", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.WeeklyMissions(transactions, false)
		testutil.AssertNoError(t, err)

		regenerated, err := svc.WeeklyMissions(transactions, true)
		testutil.AssertNoError(t, err)

		for _, m := range regenerated {
			if !m.StartDate.Equal(now) {
				t.Errorf("expected regenerated mission to start now, got %v", m.StartDate)
			}
		}
	})
}

func TestUpdateMissionManually(t *testing.T) {
	t.Run("updates_progress_and_completes", func(t *testing.T) {
		svc := newTestService()

		generated, err := svc.WeeklyMissions([]models.Transaction{
			testutil.Income(2000, now.AddDate(0, 0, -5)),
		}, false)
		testutil.AssertNoError(t, err)

		var target float64
		for _, m := range generated {
			if m.ID == models.MissionSaveAmount {
				target = m.TargetValue
			}
		}
		if target == 0 {
			t.Fatal("expected a save-amount mission with a target")
		}

		testutil.AssertNoError(t, svc.UpdateMissionManually(models.MissionSaveAmount, target/2))

		updated, err := svc.WeeklyMissions([]models.Transaction{
			testutil.Income(2000, now.AddDate(0, 0, -5)),
		}, false)
		testutil.AssertNoError(t, err)
		for _, m := range updated {
			if m.ID == models.MissionSaveAmount && m.Status == models.MissionStatusCompleted {
				t.Errorf("half the target should not complete the mission: %+v", m)
			}
		}

		testutil.AssertNoError(t, svc.UpdateMissionManually(models.MissionSaveAmount, target))
	})

	t.Run("unknown_mission", func(t *testing.T) {
		svc := newTestService()
		err := svc.UpdateMissionManually("not-a-mission", 1)
		testutil.AssertAppError(t, err, "MISSION_NOT_FOUND")
	})
}

func TestEnabledRuleIDs(t *testing.T) {
	t.Run("defaults_to_nil", func(t *testing.T) {
		svc := newTestService()
		if ids := svc.EnabledRuleIDs(); ids != nil {
			t.Errorf("expected nil selection, got %v", ids)
		}
	})

	t.Run("persists_valid_selection", func(t *testing.T) {
		svc := newTestService()
		testutil.AssertNoError(t, svc.SetEnabledRuleIDs([]string{"deficit-critical", "goal-achieved"}))

		ids := svc.EnabledRuleIDs()
		if len(ids) != 2 {
			t.Errorf("expected 2 ids, got %v", ids)
		}
	})

	t.Run("rejects_unknown_rule", func(t *testing.T) {
		svc := newTestService()
		err := svc.SetEnabledRuleIDs([]string{"deficit-critical", "bogus"})
		testutil.AssertAppError(t, err, "UNKNOWN_RULE")
	})
}

func TestQuickAnswer(t *testing.T) {
	svc := newTestService()

	t.Run("purchase_impact", func(t *testing.T) {
		s := summary.FinanceSummary{ExpenseMonth: 900}

		answer := svc.QuickAnswer("Posso comprar algo de R$ 300?", 1000, s, 10000)

		if !strings.Contains(answer.Text, "30.0%") {
			t.Errorf("expected 30.0%% impact, got %q", answer.Text)
		}
		if !strings.Contains(answer.Text, "impacto significativo") {
			t.Errorf("expected significant-impact wording, got %q", answer.Text)
		}
	})

	t.Run("purchase_accepts_comma_decimals", func(t *testing.T) {
		s := summary.FinanceSummary{ExpenseMonth: 900}

		answer := svc.QuickAnswer("Posso comprar um fone de 99,90?", 10000, s, 10000)

		if !strings.Contains(answer.Text, "R$ 99,90") {
			t.Errorf("expected parsed amount, got %q", answer.Text)
		}
	})

	t.Run("savings_advice", func(t *testing.T) {
		s := summary.FinanceSummary{IncomeMonth: 1000, ExpenseMonth: 800}

		answer := svc.QuickAnswer("Como economizar mais?", 500, s, 10000)

		if !strings.Contains(answer.Text, "20.0%") {
			t.Errorf("expected current savings rate, got %q", answer.Text)
		}
	})

	t.Run("goal_timing_without_savings", func(t *testing.T) {
		answer := svc.QuickAnswer("Quando atingirei minha meta?", 500, summary.FinanceSummary{}, 10000)

		if !strings.Contains(answer.Text, "muito tempo") {
			t.Errorf("expected too-long wording, got %q", answer.Text)
		}
	})

	t.Run("goal_timing_in_months", func(t *testing.T) {
		s := summary.FinanceSummary{SavingsMonth: 1000}

		answer := svc.QuickAnswer("Quando atingirei minha meta?", 5000, s, 10000)

		if !strings.Contains(answer.Text, "5 meses") {
			t.Errorf("expected 5-month projection, got %q", answer.Text)
		}
	})

	t.Run("investment_tiers", func(t *testing.T) {
		low := svc.QuickAnswer("Como investir?", 500, summary.FinanceSummary{}, 10000)
		if !strings.Contains(low.Text, "reserva de emergência") {
			t.Errorf("expected emergency-fund advice, got %q", low.Text)
		}

		high := svc.QuickAnswer("Como investir?", 50000, summary.FinanceSummary{}, 10000)
		if !strings.Contains(high.Text, "diversifique") {
			t.Errorf("expected diversification advice, got %q", high.Text)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		answer := svc.QuickAnswer("qual o sentido da vida?", 500, summary.FinanceSummary{}, 10000)
		if answer.Text != fallbackAnswer {
			t.Errorf("expected fallback, got %q", answer.Text)
		}
	})
}
