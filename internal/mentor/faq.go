package mentor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/template"
)

// Answer is the quick-answer payload returned to the UI.
type Answer struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources"`
}

// fallbackAnswer is returned when no intent matches.
const fallbackAnswer = `Desculpe, não entendi sua pergunta. Tente perguntas como: "Posso comprar X?", "Como economizar mais?", "Quando atingirei minha meta?" ou "Como investir?"`

// amountRe extracts the first decimal number in a question, accepting
// either comma or dot as the decimal separator.
var amountRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)

// quickAnswer pattern-matches the question against the known intents,
// first match wins. Keyword groups are checked in a fixed order:
// purchase, savings, goal timing, investment.
func quickAnswer(question string, balance float64, s summary.FinanceSummary, goal float64) Answer {
	lower := strings.ToLower(question)

	switch {
	case containsAny(lower, "comprar", "posso", "compra"):
		amount := 100.0
		if match := amountRe.FindString(question); match != "" {
			if parsed, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64); err == nil {
				amount = parsed
			}
		}
		return Answer{Text: answerCanIBuy(amount, balance, s.ExpenseMonth), Sources: []string{}}

	case containsAny(lower, "economizar", "poupar", "guardar"):
		return Answer{Text: answerHowToSave(s.IncomeMonth, s.ExpenseMonth), Sources: []string{}}

	case containsAny(lower, "quando", "meta", "atingir"):
		return Answer{Text: answerWhenGoal(balance, goal, s.SavingsMonth), Sources: []string{}}

	case containsAny(lower, "investir", "investimento", "aplicar"):
		return Answer{Text: answerHowToInvest(balance), Sources: []string{}}
	}

	return Answer{Text: fallbackAnswer, Sources: []string{}}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// answerCanIBuy frames a purchase by its impact on the current balance,
// with an estimate of how many days of average spending it represents.
func answerCanIBuy(amount, balance, monthlyExpense float64) string {
	impactPercent := amount / balance * 100

	var daysToRecover float64
	if monthlyExpense > 0 {
		daysToRecover = amount / (monthlyExpense / 30)
	}

	switch {
	case impactPercent > 20:
		return fmt.Sprintf(
			"Esta compra de %s representa %s do seu saldo atual. É um impacto significativo. Pergunte-se: isso é essencial? Você levaria cerca de %d dias para recuperar esse valor.",
			template.FormatCurrency(amount), template.FormatPercent(impactPercent), int(math.Ceil(daysToRecover)))
	case impactPercent > 10:
		return fmt.Sprintf(
			"Compra de %s (%s do saldo). É viável, mas avalie se não compromete suas metas de curto prazo.",
			template.FormatCurrency(amount), template.FormatPercent(impactPercent))
	default:
		return fmt.Sprintf(
			"Compra de %s tem impacto baixo (%s do saldo). Se for algo que agrega valor, pode ir em frente!",
			template.FormatCurrency(amount), template.FormatPercent(impactPercent))
	}
}

func answerHowToSave(income, expense float64) string {
	var savingsRate float64
	if income > 0 {
		savingsRate = (income - expense) / income * 100
	}
	return fmt.Sprintf(
		"Atualmente você poupa %s da sua renda. Para economizar mais: 1) Corte gastos supérfluos (delivery, assinaturas não usadas); 2) Defina um valor fixo para poupar logo que receber; 3) Evite compras por impulso (regra das 24h).",
		template.FormatPercent(savingsRate))
}

// answerWhenGoal projects the months needed at the current monthly
// savings pace, bucketing into too-long, years, or soon.
func answerWhenGoal(balance, goal, monthlySavings float64) string {
	remaining := goal - balance

	monthsNeeded := math.Inf(1)
	if monthlySavings > 0 {
		monthsNeeded = math.Ceil(remaining / monthlySavings)
	}

	switch {
	case math.IsInf(monthsNeeded, 1) || monthsNeeded > 120:
		return "Com a economia atual, levaria muito tempo. Aumente seus aportes mensais! Cada R$ 100 a mais por mês faz diferença."
	case monthsNeeded > 12:
		return fmt.Sprintf(
			"Faltam %s. No ritmo atual (%s/mês), você atingirá sua meta em aproximadamente %d meses (%d anos).",
			template.FormatCurrency(remaining), template.FormatCurrency(monthlySavings),
			int(monthsNeeded), int(monthsNeeded)/12)
	default:
		return fmt.Sprintf(
			"Faltam %s. No ritmo atual, você atingirá sua meta em aproximadamente %d meses! Continue firme! 🎯",
			template.FormatCurrency(remaining), int(monthsNeeded))
	}
}

// answerHowToInvest tiers the advice by absolute balance.
func answerHowToInvest(balance float64) string {
	switch {
	case balance < 1000:
		return fmt.Sprintf(
			"Com saldo de %s, foque primeiro em construir uma reserva de emergência (3-6 meses de despesas). Depois, comece com Tesouro Direto ou CDBs de bancos digitais.",
			template.FormatCurrency(balance))
	case balance < 10000:
		return fmt.Sprintf(
			"Com %s, você pode começar com Tesouro Selic (liquidez diária) e CDBs. Evite investimentos de alto risco até ter uma base sólida.",
			template.FormatCurrency(balance))
	default:
		return fmt.Sprintf(
			"Com %s, diversifique: Tesouro Direto (segurança), CDBs/LCIs (renda fixa), e considere fundos de índice (ações) para longo prazo. Estude antes de investir!",
			template.FormatCurrency(balance))
	}
}
