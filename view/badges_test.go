package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		status string
		label  string
		class  string
	}{
		{"PENDENTE", "Pendente", badgeWarning},
		{"pendente", "Pendente", badgeWarning},
		{"PAGA", "Paga", badgeSuccess},
		{"PAGO", "Paga", badgeSuccess},
		{"RECEBIDO", "Recebido", badgeSuccess},
		{"ATRASADA", "Atrasada", badgeDanger},
		{"ATRASADO", "Atrasado", badgeDanger},
		{"ATIVO", "Ativo", badgeSuccess},
		{"INATIVO", "Inativo", badgeMuted},
		{"", "-", badgeNeutral},
		{"CANCELADA", "CANCELADA", badgeNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := StatusBadge("pt", tt.status)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.class, got.Class)
		})
	}
}

func TestStatusBadgeEnglish(t *testing.T) {
	assert.Equal(t, "Paid", StatusBadge("en", "PAGA").Label)
	assert.Equal(t, "Overdue", StatusBadge("en", "ATRASADO").Label)
}

func TestActiveBadge(t *testing.T) {
	assert.Equal(t, Badge{Label: "Ativo", Class: badgeSuccess}, ActiveBadge("pt", true))
	assert.Equal(t, Badge{Label: "Inativo", Class: badgeMuted}, ActiveBadge("pt", false))
}
