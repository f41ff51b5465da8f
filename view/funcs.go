package view

import (
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/depositodopitty/pit/i18n"
	"github.com/depositodopitty/pit/validation"
)

// Funcs returns the func map shared by every template, bound to lang.
func Funcs(lang string) template.FuncMap {
	return template.FuncMap{
		// t translates a code; extra args fill %-verbs of the message.
		"t": func(code string, args ...any) string {
			msg := i18n.T(lang, code)
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...)
			}
			return msg
		},
		"lang":     func() string { return lang },
		"year":     func() int { return time.Now().Year() },
		"brl":      func(v any) string { return BRL(toDecimal(v)) },
		"date":     func(v any) string { return FormatDate(lang, toTime(v)) },
		"isodate":  func(v any) string { return isoDate(toTime(v)) },
		"phone":    FormatPhone,
		"document": FormatDocument,
		"badge":    func(status string) Badge { return StatusBadge(lang, status) },
		"active":   func(on bool) Badge { return ActiveBadge(lang, on) },
		"money":    func(v any) string { return toDecimal(v).StringFixed(2) },
		// fieldError returns the translated violation of field, or "".
		"fieldError": func(errs validation.Violations, field string) string {
			if code, ok := errs[field]; ok {
				return i18n.T(lang, code)
			}
			return ""
		},
		"navItems": func() []NavItem { return Nav },
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		// dict creates a map from key-value pairs for passing to sub-templates.
		// Usage: {{ template "partial" (dict "Key1" val1 "Key2" val2) }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// NavItem is one entry of the main menu.
type NavItem struct {
	Path  string
	Label string
}

// Nav lists the main menu in display order.
var Nav = []NavItem{
	{"/dashboard", "nav_dashboard"},
	{"/usuarios", "nav_users"},
	{"/clientes", "nav_customers"},
	{"/fornecedores", "nav_suppliers"},
	{"/produtos", "nav_products"},
	{"/orcamentos", "nav_budgets"},
	{"/contas-a-pagar", "nav_payables"},
	{"/contas-a-receber", "nav_receivables"},
}

func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n != nil {
			return *n
		}
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	}
	return decimal.Zero
}

func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
