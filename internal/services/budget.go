package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/depositodopitty/pit/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BudgetService encapsulates quote arithmetic and numbering.
type BudgetService struct {
	intN func(n int) int
}

func NewBudgetService() *BudgetService { return &BudgetService{intN: rand.IntN} }

// Subtotal sums quantity × unit price over the items.
func (s *BudgetService) Subtotal(b *models.Budget) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range b.Items {
		sum = sum.Add(lineTotal(it))
	}
	return sum
}

// ComputeTotals fills every item total and the budget total:
// subtotal − discount + subtotal × tax%. Amounts are rounded to cents.
func (s *BudgetService) ComputeTotals(b *models.Budget) (subtotal, total decimal.Decimal) {
	if b == nil {
		return decimal.Zero, decimal.Zero
	}
	for i := range b.Items {
		b.Items[i].Total = lineTotal(b.Items[i]).Round(2)
	}
	subtotal = s.Subtotal(b)
	taxValue := subtotal.Mul(b.Tax).Div(hundred)
	total = subtotal.Sub(b.Discount).Add(taxValue).Round(2)
	b.Total = total
	return subtotal.Round(2), total
}

// NewBudgetNumber returns a quote number in the ORC-NNNNNN form.
func (s *BudgetService) NewBudgetNumber() string {
	return fmt.Sprintf("ORC-%06d", 100000+s.intN(900000))
}

// Prepare assigns a number when missing and recomputes totals.
func (s *BudgetService) Prepare(b *models.Budget) {
	if b.BudgetNumber == "" {
		b.BudgetNumber = s.NewBudgetNumber()
	}
	s.ComputeTotals(b)
}

// RemovedItems lists ids of persisted items present in old but not in updated.
func RemovedItems(old, updated models.Budget) []uint {
	keep := make(map[uint]bool, len(updated.Items))
	for _, it := range updated.Items {
		if it.ID != 0 {
			keep[it.ID] = true
		}
	}
	var removed []uint
	for _, it := range old.Items {
		if it.ID != 0 && !keep[it.ID] {
			removed = append(removed, it.ID)
		}
	}
	return removed
}

func lineTotal(it models.BudgetItem) decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
