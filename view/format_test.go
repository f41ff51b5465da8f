package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"5.5", "R$ 5,50"},
		{"999.99", "R$ 999,99"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-42.1", "-R$ 42,10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BRL(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2024", FormatDate("pt", d))
	assert.Equal(t, "03/09/2024", FormatDate("en", d))
	assert.Equal(t, "-", FormatDate("pt", time.Time{}))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 98888-7777", FormatPhone("11988887777"))
	assert.Equal(t, "(11) 3888-7777", FormatPhone("(11)3888-7777"))
	assert.Equal(t, "12345", FormatPhone("12345"))
	assert.Equal(t, "", FormatPhone(""))
}

func TestFormatDocument(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatDocument("12345678909"))
	assert.Equal(t, "12.345.678/0001-95", FormatDocument("12345678000195"))
	assert.Equal(t, "12.345.678/0001-95", FormatDocument("12.345.678/0001-95"))
	assert.Equal(t, "abc", FormatDocument("abc"))
}
