// Package template renders the mentor's message templates. Placeholders
// are written as {name}; the formatting of numeric values is inferred
// from the placeholder name.
package template

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders currency values with pt-BR grouping ("1.234,50").
var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formats v as Brazilian currency with two decimals,
// e.g. "R$ 1.234,50".
func FormatCurrency(v float64) string {
	return printer.Sprintf("R$ %v",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercent formats v with one decimal and a percent sign,
// e.g. "30.0%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatDate formats a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// placeholderRe matches a complete {token}. Matching whole tokens keeps
// {amount} from ever touching {amountTotal}.
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// currencyHints mark placeholder names whose numeric values render as
// currency. Everything income/expense/goal-like counts.
var currencyHints = []string{"amount", "value", "gasto", "renda", "balance", "saldo", "goal", "meta", "remaining"}

// Render substitutes every {key} present in vars with a formatted value.
// Keys are matched case-sensitively against whole brace tokens; tokens
// without a matching variable are left untouched.
func Render(template string, vars map[string]any) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		value, ok := vars[key]
		if !ok {
			return token
		}
		return formatValue(key, value)
	})
}

// formatValue picks a representation for value based on the key name:
// percent-ish keys render as "N.N%", currency-ish keys as "R$ N,NN",
// other numbers with two decimals, and everything else verbatim.
func formatValue(key string, value any) string {
	num, isNumber := asFloat(value)
	if !isNumber {
		return fmt.Sprint(value)
	}

	lower := strings.ToLower(key)
	if strings.Contains(lower, "percent") || strings.Contains(lower, "pct") {
		return FormatPercent(num)
	}
	for _, hint := range currencyHints {
		if strings.Contains(lower, hint) {
			return FormatCurrency(num)
		}
	}
	return fmt.Sprintf("%.2f", num)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
