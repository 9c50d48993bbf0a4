// Package mentor composes the summarizer, rule engine, mission engine
// and FAQ responder into the entry points consumed by the UI.
package mentor

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/ranilsonsilva664-collab/meu-controle-ia/internal/errors"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/missions"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/rules"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/storage"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
)

// Feedback is the mentor's snapshot for the dashboard.
type Feedback struct {
	Stage     summary.Stage          `json:"stage"`
	Message   string                 `json:"message"`
	Challenge string                 `json:"challenge"`
	Insights  []models.MentorMessage `json:"insights"`
}

// Servicer defines the mentor's public entry points.
type Servicer interface {
	Feedback(transactions []models.Transaction, balance float64, userName string, goal float64) Feedback
	Tips(transactions []models.Transaction, balance, goal float64) []models.Tip
	QuickAnswer(question string, balance float64, s summary.FinanceSummary, goal float64) Answer
	WeeklyMissions(transactions []models.Transaction, forceRegenerate bool) ([]models.Mission, error)
	UpdateMissionManually(missionID string, currentValue float64) error
	EnabledRuleIDs() []string
	SetEnabledRuleIDs(ids []string) error
	Summary(transactions []models.Transaction) summary.FinanceSummary
	Patterns(transactions []models.Transaction) []summary.SpendingPattern
}

type service struct {
	state *storage.State
	clock func() time.Time
}

// Option customizes the mentor service.
type Option func(*service)

// WithClock replaces the wall clock. Tests use it to freeze time; every
// mentor operation is deterministic given the clock.
func WithClock(clock func() time.Time) Option {
	return func(s *service) { s.clock = clock }
}

// NewService creates a mentor Servicer over the given key-value store.
func NewService(store storage.Store, opts ...Option) Servicer {
	s := &service{
		state: storage.NewState(store),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Per-stage copy for the dashboard headline and weekly challenge.
var (
	stageMessages = map[summary.Stage]string{
		summary.StageIniciante:  "Olá, %s! Você está no início da jornada. Foco total em construir disciplina e registrar todos os gastos.",
		summary.StagePoupador:   "%s, você está progredindo! Continue poupando consistentemente e evite gastos desnecessários.",
		summary.StageInvestidor: "Excelente trabalho, %s! Você está no caminho certo. Agora é hora de otimizar e acelerar.",
		summary.StageMestre:     "🏆 %s, você é um mestre! Sua disciplina financeira é exemplar. Continue assim!",
	}
	stageChallenges = map[summary.Stage]string{
		summary.StageIniciante:  "Registre todos os seus gastos por 7 dias consecutivos.",
		summary.StagePoupador:   "Economize 15% da sua renda este mês.",
		summary.StageInvestidor: "Reduza seus gastos em 10% sem perder qualidade de vida.",
		summary.StageMestre:     "Ajude alguém a começar sua jornada financeira!",
	}
)

// Feedback classifies the user's stage and evaluates the rule catalog.
// The caller-supplied balance overrides the derived one so the stage
// matches what the UI shows.
func (s *service) Feedback(transactions []models.Transaction, balance float64, userName string, goal float64) Feedback {
	now := s.clock()

	sum := summary.Monthly(transactions, now)
	sum.Balance = balance

	progress := summary.ProgressTowardGoal(balance, goal)
	insights := rules.Evaluate(sum, transactions, goal, s.state.LoadEnabledRules(), now)

	return Feedback{
		Stage:     progress.Stage,
		Message:   fmt.Sprintf(stageMessages[progress.Stage], userName),
		Challenge: stageChallenges[progress.Stage],
		Insights:  insights,
	}
}

// Tips derives up to three pieces of advice from the summary, always
// padding with a generic fixed-costs tip when fewer than three apply.
func (s *service) Tips(transactions []models.Transaction, balance, goal float64) []models.Tip {
	now := s.clock()

	sum := summary.Monthly(transactions, now)
	sum.Balance = balance

	var tips []models.Tip

	if len(sum.TopCategories) > 0 {
		top := sum.TopCategories[0]
		if top.Percent > 20 {
			tips = append(tips, models.Tip{
				Title: fmt.Sprintf("Reduza %s", top.Category),
				Content: fmt.Sprintf(
					"Você gastou %.1f%% da sua renda em %s. Reduzir 20%% geraria economia de R$ %.2f.",
					top.Percent, top.Category, top.Amount*0.2),
				Severity: models.LevelHigh,
			})
		}
	}

	var savingsRate float64
	if sum.IncomeMonth > 0 {
		savingsRate = sum.SavingsMonth / sum.IncomeMonth * 100
	}
	if savingsRate < 10 {
		tips = append(tips, models.Tip{
			Title: "Aumente sua Poupança",
			Content: fmt.Sprintf(
				"Você está poupando apenas %.1f%%. Tente atingir pelo menos 10%% da renda. Comece cortando pequenos gastos diários.",
				savingsRate),
			Severity: models.LevelHigh,
		})
	} else if savingsRate > 20 {
		tips = append(tips, models.Tip{
			Title: "Parabéns pela Disciplina!",
			Content: fmt.Sprintf(
				"Você está poupando %.1f%% da renda! Considere investir parte desse dinheiro para acelerar o crescimento.",
				savingsRate),
			Severity: models.LevelLow,
		})
	}

	progress := summary.ProgressTowardGoal(balance, goal)
	if progress.Percent < 25 {
		tips = append(tips, models.Tip{
			Title: "Acelere Seus Aportes",
			Content: fmt.Sprintf(
				"Faltam R$ %.2f para sua meta. Aumentar sua poupança mensal em R$ 100 pode reduzir significativamente o tempo para atingir o objetivo.",
				progress.Remaining),
			Severity: models.LevelMedium,
		})
	} else if progress.Percent > 75 {
		tips = append(tips, models.Tip{
			Title: "Reta Final!",
			Content: fmt.Sprintf(
				"Você está a %.1f%% da sua meta! Mantenha o foco e evite gastos desnecessários nesta reta final.",
				100-progress.Percent),
			Severity: models.LevelLow,
		})
	}

	if len(tips) < 3 {
		tips = append(tips, models.Tip{
			Title:    "Revise Gastos Fixos",
			Content:  "Assinaturas, planos e serviços fixos podem estar consumindo mais do que você imagina. Revise e cancele o que não usa.",
			Severity: models.LevelMedium,
		})
	}

	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}

// QuickAnswer answers a free-text question with a canned, parameterized
// response.
func (s *service) QuickAnswer(question string, balance float64, sum summary.FinanceSummary, goal float64) Answer {
	return quickAnswer(question, balance, sum, goal)
}

// WeeklyMissions purges stale missions, regenerates the set when no
// active missions remain (or regeneration is forced), and otherwise
// recomputes progress in place. The result is always persisted.
func (s *service) WeeklyMissions(transactions []models.Transaction, forceRegenerate bool) ([]models.Mission, error) {
	now := s.clock()

	stored := s.purgeStale(s.state.LoadMissions(), now)

	active := 0
	for _, m := range stored {
		if m.Status == models.MissionStatusActive {
			active++
		}
	}

	var result []models.Mission
	if active == 0 || forceRegenerate {
		sum := summary.Monthly(transactions, now)
		result = missions.GenerateWeekly(sum, transactions, now)
	} else {
		result = make([]models.Mission, 0, len(stored))
		for _, m := range stored {
			result = append(result, missions.RecomputeProgress(m, transactions, now))
		}
	}

	if err := s.state.SaveMissions(result); err != nil {
		return nil, err
	}
	return result, nil
}

// purgeStale drops completed missions more than 7 days past their end
// and active missions whose window already closed.
func (s *service) purgeStale(stored []models.Mission, now time.Time) []models.Mission {
	kept := stored[:0]
	for _, m := range stored {
		switch m.Status {
		case models.MissionStatusCompleted:
			if now.Sub(m.EndDate) < 7*24*time.Hour {
				kept = append(kept, m)
			}
		case models.MissionStatusActive:
			if m.EndDate.After(now) {
				kept = append(kept, m)
			}
		}
	}
	return kept
}

// UpdateMissionManually sets a mission's current value by hand. This is
// the only progress path for review-type missions, which have no
// automatic derivation from transaction data.
func (s *service) UpdateMissionManually(missionID string, currentValue float64) error {
	stored := s.state.LoadMissions()

	found := false
	for i, m := range stored {
		if m.ID != missionID {
			continue
		}
		found = true

		var progress float64
		if m.TargetValue > 0 {
			progress = math.Min(currentValue/m.TargetValue*100, 100)
		}
		m.CurrentValue = currentValue
		m.Progress = int(math.Round(progress))
		if progress >= 100 {
			m.Status = models.MissionStatusCompleted
		}
		stored[i] = m
	}
	if !found {
		return apperrors.ErrMissionNotFound
	}

	return s.state.SaveMissions(stored)
}

// EnabledRuleIDs returns the user's rule selection; nil means the full
// default-enabled catalog.
func (s *service) EnabledRuleIDs() []string {
	return s.state.LoadEnabledRules()
}

// SetEnabledRuleIDs persists the user's rule selection after checking
// every id against the catalog.
func (s *service) SetEnabledRuleIDs(ids []string) error {
	for _, id := range ids {
		if _, ok := rules.ByID(id); !ok {
			return apperrors.WithMessage(apperrors.ErrUnknownRule, "Unknown rule: "+id)
		}
	}
	return s.state.SaveEnabledRules(ids)
}

// Summary computes the current monthly summary.
func (s *service) Summary(transactions []models.Transaction) summary.FinanceSummary {
	return summary.Monthly(transactions, s.clock())
}

// Patterns detects spending anomalies over the trailing week.
func (s *service) Patterns(transactions []models.Transaction) []summary.SpendingPattern {
	return summary.DetectPatterns(transactions, s.clock())
}
