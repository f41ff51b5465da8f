package validation

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
)

// Violations maps a form field to a violation code ("required", "invalid_email", ...).
// Codes double as i18n keys.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records code for field unless the field already has a violation,
// so the first failing rule wins.
func (v Violations) Add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

// Has reports whether field has a violation.
func (v Violations) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

func Email(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value[strings.LastIndex(value, "@"):], ".") {
		v.Add(field, "invalid_email")
	}
}

func MinLength(field, value string, n int, v Violations) {
	if value != "" && len([]rune(value)) < n {
		v.Add(field, "too_short")
	}
}

// Match flags field when value and confirmation differ.
func Match(field, value, confirmation string, v Violations) {
	if value != confirmation {
		v.Add(field, "mismatch")
	}
}

func NonNegativeInt(field string, val int, v Violations) {
	if val < 0 {
		v.Add(field, "must_not_be_negative")
	}
}

func PositiveDecimal(field string, val decimal.Decimal, v Violations) {
	if !val.IsPositive() {
		v.Add(field, "must_be_positive")
	}
}

// RangeDecimal flags field unless minVal <= val <= maxVal.
func RangeDecimal(field string, val, minVal, maxVal decimal.Decimal, v Violations) {
	if val.LessThan(minVal) || val.GreaterThan(maxVal) {
		v.Add(field, "out_of_range")
	}
}

func NonNegativeDecimal(field string, val decimal.Decimal, v Violations) {
	if val.IsNegative() {
		v.Add(field, "must_not_be_negative")
	}
}

// Document flags field when digits, stripped of punctuation, is not one of the
// accepted lengths (11 for CPF, 14 for CNPJ).
func Document(field, digits string, v Violations) {
	if digits == "" {
		return
	}
	if len(digits) != 11 && len(digits) != 14 {
		v.Add(field, "invalid_document")
	}
}
