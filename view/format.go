package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/depositodopitty/pit/i18n"
)

// BRL formats d as Brazilian currency: R$ 1.234,56.
func BRL(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + b.String() + "," + frac
}

// FormatDate renders a calendar date, dd/mm/yyyy in Portuguese.
func FormatDate(lang string, t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if lang == i18n.English {
		return t.Format("01/02/2006")
	}
	return t.Format("02/01/2006")
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders Brazilian numbers as (11) 98888-7777 or (11) 3888-7777.
// Anything else is returned unchanged.
func FormatPhone(s string) string {
	d := digits(s)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	}
	return s
}

// FormatDocument renders a CPF (000.000.000-00) or CNPJ (00.000.000/0000-00).
func FormatDocument(s string) string {
	d := digits(s)
	switch len(d) {
	case 11:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	case 14:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
	return s
}
