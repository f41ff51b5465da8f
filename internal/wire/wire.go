// Package wire holds the camelCase JSON shapes spoken by the backend and the
// mapping functions between them and the dashboard models.
package wire

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the format used for calendar dates on the wire.
const DateLayout = "2006-01-02"

// stampLayouts lists accepted timestamp encodings, most specific first.
// The last two cover ASP.NET style values without a zone offset.
var stampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseDate reads the first ten characters as YYYY-MM-DD, so both plain dates
// and full timestamps are accepted. Unparseable input yields the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := ParseDate(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

func parseStamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func money(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func number(d decimal.Decimal) float64 { return d.InexactFloat64() }

// Digits strips everything but ASCII digits (CPF/CNPJ/CEP sanitising).
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DecodeList decodes a JSON list tolerating the envelopes some endpoints use
// ({"data": [...]} or {"dados": [...]}). Null or empty bodies decode to nil.
func DecodeList[W any](body []byte) ([]W, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	if body[0] == '[' {
		var out []W
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var env struct {
		Data  []W `json:"data"`
		Dados []W `json:"dados"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return env.Dados, nil
}

// Mapper converts between a model T and its wire shape W.
type Mapper[T, W any] struct {
	ToWire   func(T) W
	FromWire func(W) T
}

// FromWireList maps a slice of wire values.
func (m Mapper[T, W]) FromWireList(ws []W) []T {
	out := make([]T, 0, len(ws))
	for _, w := range ws {
		out = append(out, m.FromWire(w))
	}
	return out
}

// ToWireList maps a slice of models.
func (m Mapper[T, W]) ToWireList(ts []T) []W {
	out := make([]W, 0, len(ts))
	for _, t := range ts {
		out = append(out, m.ToWire(t))
	}
	return out
}
