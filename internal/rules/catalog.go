// Package rules evaluates the mentor's fixed catalog of advisory rules.
// Each rule pairs a named condition function with a message template;
// the catalog itself is an immutable process-wide constant.
package rules

import (
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/template"
)

// Context carries everything a condition may inspect. Now is explicit
// so evaluation stays deterministic and testable.
type Context struct {
	Summary      summary.FinanceSummary
	Transactions []models.Transaction
	Goal         float64
	Now          time.Time
}

// Condition is the common signature every rule condition implements.
type Condition func(ctx Context) bool

// Rule is one catalog entry. Priority runs 1-10; higher shows first.
type Rule struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Condition       Condition       `json:"-"`
	MessageTemplate string          `json:"-"`
	Severity        models.Severity `json:"severity"`
	Priority        int             `json:"priority"`
	Enabled         bool            `json:"enabled"`
}

// Catalog is the full ordered rule set. Order matters: priority ties
// are resolved by position here.
var Catalog = []Rule{
	// Alertas de déficit/excesso
	{
		ID:              "deficit-critical",
		Name:            "Déficit Crítico",
		Description:     "Gasto total maior que a renda",
		Condition:       condDeficitCritical,
		MessageTemplate: template.MsgDeficitCritical,
		Severity:        models.SeverityAlert,
		Priority:        10,
		Enabled:         true,
	},
	{
		ID:              "deficit-warning",
		Name:            "Atenção ao Limite",
		Description:     "Gasto total > 90% da renda",
		Condition:       condDeficitWarning,
		MessageTemplate: template.MsgDeficitWarning,
		Severity:        models.SeverityWarn,
		Priority:        9,
		Enabled:         true,
	},
	{
		ID:              "negative-balance",
		Name:            "Saldo Negativo",
		Description:     "Saldo total negativo",
		Condition:       condNegativeBalance,
		MessageTemplate: template.MsgNegativeBalance,
		Severity:        models.SeverityAlert,
		Priority:        10,
		Enabled:         true,
	},

	// Regras por categoria
	{
		ID:              "leisure-high",
		Name:            "Lazer Alto",
		Description:     "Lazer > 30% da renda",
		Condition:       condLeisureHigh,
		MessageTemplate: template.MsgLeisureHigh,
		Severity:        models.SeverityWarn,
		Priority:        6,
		Enabled:         true,
	},
	{
		ID:              "food-out-high",
		Name:            "Alimentação Fora Alta",
		Description:     "Restaurantes > 15% da renda",
		Condition:       condFoodOutHigh,
		MessageTemplate: template.MsgFoodOutHigh,
		Severity:        models.SeverityWarn,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "subscriptions-high",
		Name:            "Assinaturas Altas",
		Description:     "Assinaturas > 10% da renda",
		Condition:       condSubscriptionsHigh,
		MessageTemplate: template.MsgSubscriptionsHigh,
		Severity:        models.SeverityWarn,
		Priority:        6,
		Enabled:         true,
	},
	{
		ID:              "transport-high",
		Name:            "Transporte Alto",
		Description:     "Transporte > 20% da renda",
		Condition:       condTransportHigh,
		MessageTemplate: template.MsgTransportHigh,
		Severity:        models.SeverityWarn,
		Priority:        6,
		Enabled:         true,
	},
	{
		ID:              "delivery-high",
		Name:            "Delivery Alto",
		Description:     "Delivery > 10% da renda",
		Condition:       condDeliveryHigh,
		MessageTemplate: template.MsgDeliveryHigh,
		Severity:        models.SeverityWarn,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "ride-hailing-high",
		Name:            "Apps de Transporte Alto",
		Description:     "Apps de transporte > 15% da renda",
		Condition:       condRideHailingHigh,
		MessageTemplate: template.MsgRideHailingHigh,
		Severity:        models.SeverityWarn,
		Priority:        6,
		Enabled:         true,
	},

	// Poupança
	{
		ID:              "low-savings",
		Name:            "Poupança Baixa",
		Description:     "Poupança < 10% da renda",
		Condition:       condLowSavings,
		MessageTemplate: template.MsgLowSavings,
		Severity:        models.SeverityWarn,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "no-investments",
		Name:            "Sem Investimentos",
		Description:     "Nenhum investimento no mês",
		Condition:       condNoInvestments,
		MessageTemplate: template.MsgNoInvestments,
		Severity:        models.SeverityInfo,
		Priority:        5,
		Enabled:         true,
	},
	{
		ID:              "excellent-savings",
		Name:            "Poupança Excelente",
		Description:     "Poupança > 30% da renda",
		Condition:       condExcellentSavings,
		MessageTemplate: template.MsgExcellentSavings,
		Severity:        models.SeveritySuccess,
		Priority:        8,
		Enabled:         true,
	},

	// Meta
	{
		ID:              "slow-progress",
		Name:            "Progresso Lento",
		Description:     "Progresso < 5% em 30 dias",
		Condition:       condSlowProgress,
		MessageTemplate: template.MsgSlowProgress,
		Severity:        models.SeverityWarn,
		Priority:        6,
		Enabled:         true,
	},
	{
		ID:              "good-progress",
		Name:            "Bom Progresso",
		Description:     "Progresso > 10% em 30 dias",
		Condition:       condGoodProgress,
		MessageTemplate: template.MsgGoodProgress,
		Severity:        models.SeveritySuccess,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "milestone-50",
		Name:            "Metade da Meta",
		Description:     "50% da meta atingida",
		Condition:       condMilestone50,
		MessageTemplate: template.MsgMilestone50,
		Severity:        models.SeveritySuccess,
		Priority:        8,
		Enabled:         true,
	},
	{
		ID:              "milestone-75",
		Name:            "75% da Meta",
		Description:     "75% da meta atingida",
		Condition:       condMilestone75,
		MessageTemplate: template.MsgMilestone75,
		Severity:        models.SeveritySuccess,
		Priority:        9,
		Enabled:         true,
	},
	{
		ID:              "milestone-90",
		Name:            "90% da Meta",
		Description:     "90% da meta atingida",
		Condition:       condMilestone90,
		MessageTemplate: template.MsgMilestone90,
		Severity:        models.SeveritySuccess,
		Priority:        9,
		Enabled:         true,
	},
	{
		ID:              "goal-achieved",
		Name:            "Meta Conquistada",
		Description:     "Meta 100% atingida",
		Condition:       condGoalAchieved,
		MessageTemplate: template.MsgGoalAchieved,
		Severity:        models.SeveritySuccess,
		Priority:        10,
		Enabled:         true,
	},

	// Extras
	{
		ID:              "no-transactions",
		Name:            "Sem Transações",
		Description:     "Nenhuma transação em 7 dias",
		Condition:       condNoTransactions,
		MessageTemplate: template.MsgNoTransactions,
		Severity:        models.SeverityInfo,
		Priority:        4,
		Enabled:         true,
	},
	{
		ID:              "uncategorized-high",
		Name:            `Muitos "Outros"`,
		Description:     `Categoria "Outros" > 20%`,
		Condition:       condUncategorizedHigh,
		MessageTemplate: template.MsgUncategorizedHigh,
		Severity:        models.SeverityInfo,
		Priority:        5,
		Enabled:         true,
	},
	{
		ID:              "good-balance",
		Name:            "Saldo Positivo",
		Description:     "Saldo > 0 e crescendo",
		Condition:       condGoodBalance,
		MessageTemplate: template.MsgGoodBalance,
		Severity:        models.SeveritySuccess,
		Priority:        6,
		Enabled:         true,
	},
	{
		ID:              "consistent-tracking",
		Name:            "Controle Consistente",
		Description:     "10+ transações no mês",
		Condition:       condConsistentTracking,
		MessageTemplate: template.MsgConsistentTracking,
		Severity:        models.SeveritySuccess,
		Priority:        5,
		Enabled:         true,
	},

	// Comportamento (padrões detectados)
	{
		ID:              "consecutive-spending",
		Name:            "Gastos Consecutivos",
		Description:     "7+ dias consecutivos na mesma categoria",
		Condition:       condConsecutiveSpending,
		MessageTemplate: template.MsgConsecutiveSpending,
		Severity:        models.SeverityWarn,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "large-purchase",
		Name:            "Compra Grande",
		Description:     "Gasto único > 20% da renda",
		Condition:       condLargePurchase,
		MessageTemplate: template.MsgLargePurchase,
		Severity:        models.SeverityWarn,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "high-frequency",
		Name:            "Alta Frequência",
		Description:     "3+ transações/dia em restaurantes",
		Condition:       condHighFrequency,
		MessageTemplate: template.MsgHighFrequency,
		Severity:        models.SeverityWarn,
		Priority:        7,
		Enabled:         true,
	},
	{
		ID:              "night-spending",
		Name:            "Gastos Noturnos",
		Description:     "Gastos frequentes entre 22h-2h",
		Condition:       condNightSpending,
		MessageTemplate: template.MsgNightSpending,
		Severity:        models.SeverityWarn,
		Priority:        6,
		Enabled:         true,
	},
}

// ByID returns the catalog rule with the given identifier.
func ByID(id string) (Rule, bool) {
	for _, r := range Catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
