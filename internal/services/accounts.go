package services

import (
	"strings"
	"time"

	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/validation"
	"github.com/shopspring/decimal"
)

// Settlement holds the status vocabulary of one ledger. Payables and
// receivables follow the same rules with different labels.
type Settlement struct {
	Pending string
	Settled string
	Overdue string
	aliases map[string]string
}

var (
	Payables = Settlement{
		Pending: models.PayablePending,
		Settled: models.PayablePaid,
		Overdue: models.PayableOverdue,
		aliases: map[string]string{"PAGO": models.PayablePaid, "ATRASADO": models.PayableOverdue},
	}
	Receivables = Settlement{
		Pending: models.ReceivablePending,
		Settled: models.ReceivableReceived,
		Overdue: models.ReceivableOverdue,
		aliases: map[string]string{"RECEBIDA": models.ReceivableReceived, "ATRASADA": models.ReceivableOverdue},
	}
)

// Normalize upper-cases status and maps legacy spellings. Empty or unknown
// values become Pending.
func (s Settlement) Normalize(status string) string {
	st := strings.ToUpper(strings.TrimSpace(status))
	if alias, ok := s.aliases[st]; ok {
		st = alias
	}
	switch st {
	case s.Pending, s.Settled, s.Overdue:
		return st
	default:
		return s.Pending
	}
}

func (s Settlement) IsSettled(status string) bool { return s.Normalize(status) == s.Settled }

// IsOverdue compares calendar dates only: an account due today is not late.
func (s Settlement) IsOverdue(status string, due, now time.Time) bool {
	if s.IsSettled(status) || due.IsZero() {
		return false
	}
	return civil(due).Before(civil(now))
}

// Reconcile derives the stored status and overdue flag. A settled account
// stays settled; anything else is Overdue or Pending depending on the due date.
func (s Settlement) Reconcile(status string, due, now time.Time) (string, bool) {
	if s.IsSettled(status) {
		return s.Settled, false
	}
	if s.IsOverdue(status, due, now) {
		return s.Overdue, true
	}
	return s.Pending, false
}

// PaymentDate keeps payment only for settled accounts.
func (s Settlement) PaymentDate(status string, payment *time.Time) *time.Time {
	if !s.IsSettled(status) {
		return nil
	}
	return payment
}

// Choices lists the statuses a user may pick in the form; Overdue is derived.
func (s Settlement) Choices() []string { return []string{s.Pending, s.Settled} }

// Validate applies the form rules shared by both ledgers.
func (s Settlement) Validate(counterpartField, counterpart string, amount decimal.Decimal, due time.Time, status string, payment *time.Time, v validation.Violations) {
	validation.Required(counterpartField, counterpart, v)
	validation.PositiveDecimal("amount", amount, v)
	if due.IsZero() {
		v.Add("dueDate", "required")
	}
	if s.IsSettled(status) && (payment == nil || payment.IsZero()) {
		v.Add("paymentDate", "payment_date_required")
	}
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReconcilePayable normalises a payable in place.
func ReconcilePayable(a *models.AccountsPayable, now time.Time) {
	a.Status, a.IsOverdue = Payables.Reconcile(a.Status, a.DueDate, now)
	a.PaymentDate = Payables.PaymentDate(a.Status, a.PaymentDate)
}

// ReconcileReceivable normalises a receivable in place.
func ReconcileReceivable(a *models.AccountsReceivable, now time.Time) {
	a.Status, a.IsOverdue = Receivables.Reconcile(a.Status, a.DueDate, now)
	a.PaymentDate = Receivables.PaymentDate(a.Status, a.PaymentDate)
}

// ReconcilePayables returns a reconciled copy of list.
func ReconcilePayables(list []models.AccountsPayable, now time.Time) []models.AccountsPayable {
	out := make([]models.AccountsPayable, len(list))
	for i, a := range list {
		ReconcilePayable(&a, now)
		out[i] = a
	}
	return out
}

// ReconcileReceivables returns a reconciled copy of list.
func ReconcileReceivables(list []models.AccountsReceivable, now time.Time) []models.AccountsReceivable {
	out := make([]models.AccountsReceivable, len(list))
	for i, a := range list {
		ReconcileReceivable(&a, now)
		out[i] = a
	}
	return out
}

// LedgerSummary aggregates one ledger for the dashboard.
type LedgerSummary struct {
	Count        int
	PendingCount int
	PendingTotal decimal.Decimal
	OverdueCount int
	OverdueTotal decimal.Decimal
	SettledTotal decimal.Decimal
}

func (l *LedgerSummary) add(s Settlement, status string, overdue bool, amount decimal.Decimal) {
	l.Count++
	switch {
	case s.IsSettled(status):
		l.SettledTotal = l.SettledTotal.Add(amount)
	case overdue:
		l.OverdueCount++
		l.OverdueTotal = l.OverdueTotal.Add(amount)
	default:
		l.PendingCount++
		l.PendingTotal = l.PendingTotal.Add(amount)
	}
}

func SummarizePayables(list []models.AccountsPayable, now time.Time) LedgerSummary {
	var sum LedgerSummary
	for _, a := range ReconcilePayables(list, now) {
		sum.add(Payables, a.Status, a.IsOverdue, a.Amount)
	}
	return sum
}

func SummarizeReceivables(list []models.AccountsReceivable, now time.Time) LedgerSummary {
	var sum LedgerSummary
	for _, a := range ReconcileReceivables(list, now) {
		sum.add(Receivables, a.Status, a.IsOverdue, a.Amount)
	}
	return sum
}
