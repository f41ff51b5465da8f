package view

import (
	"strings"

	"github.com/depositodopitty/pit/i18n"
)

// Badge is a status pill: a translated label and the CSS class that colours it.
type Badge struct {
	Label string
	Class string
}

const (
	badgeSuccess = "badge badge-success"
	badgeWarning = "badge badge-warning"
	badgeDanger  = "badge badge-danger"
	badgeMuted   = "badge badge-muted"
	badgeNeutral = "badge badge-neutral"
)

// statusStyles maps every known status spelling to its canonical code and class.
var statusStyles = map[string]struct{ code, class string }{
	"PENDENTE": {"PENDENTE", badgeWarning},
	"PAGA":     {"PAGA", badgeSuccess},
	"PAGO":     {"PAGA", badgeSuccess},
	"RECEBIDO": {"RECEBIDO", badgeSuccess},
	"RECEBIDA": {"RECEBIDO", badgeSuccess},
	"ATRASADA": {"ATRASADA", badgeDanger},
	"ATRASADO": {"ATRASADO", badgeDanger},
	"ATIVO":    {"ATIVO", badgeSuccess},
	"INATIVO":  {"INATIVO", badgeMuted},
}

// StatusBadge returns the badge of a payable, receivable or product status.
// Unknown statuses keep their own text on a neutral badge.
func StatusBadge(lang, status string) Badge {
	key := strings.ToUpper(strings.TrimSpace(status))
	if s, ok := statusStyles[key]; ok {
		return Badge{Label: i18n.T(lang, s.code), Class: s.class}
	}
	if key == "" {
		return Badge{Label: "-", Class: badgeNeutral}
	}
	return Badge{Label: status, Class: badgeNeutral}
}

// ActiveBadge renders an is-active flag.
func ActiveBadge(lang string, on bool) Badge {
	if on {
		return Badge{Label: i18n.T(lang, "active"), Class: badgeSuccess}
	}
	return Badge{Label: i18n.T(lang, "inactive"), Class: badgeMuted}
}
