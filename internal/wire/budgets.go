package wire

import "github.com/depositodopitty/pit/internal/models"

type BudgetItem struct {
	ID          uint    `json:"id,omitempty"`
	BudgetID    uint    `json:"budgetId,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type Budget struct {
	ID           uint         `json:"id"`
	BudgetNumber string       `json:"budgetNumber"`
	CustomerName string       `json:"customerName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	IssueDate    string       `json:"issueDate"`
	DueDate      *string      `json:"dueDate"`
	Discount     float64      `json:"discount"`
	Tax          float64      `json:"tax"`
	Total        float64      `json:"total"`
	Items        []BudgetItem `json:"items"`
	CreatedAt    string       `json:"createdAt,omitempty"`
	UpdatedAt    string       `json:"updatedAt,omitempty"`
}

func BudgetItemToWire(i models.BudgetItem) BudgetItem {
	return BudgetItem{
		ID:          i.ID,
		BudgetID:    i.BudgetID,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitPrice:   number(i.UnitPrice),
		Total:       number(i.Total),
	}
}

func BudgetItemFromWire(w BudgetItem) models.BudgetItem {
	return models.BudgetItem{
		ID:          w.ID,
		BudgetID:    w.BudgetID,
		Description: w.Description,
		Quantity:    w.Quantity,
		UnitPrice:   money(w.UnitPrice),
		Total:       money(w.Total),
	}
}

func BudgetToWire(b models.Budget) Budget {
	items := make([]BudgetItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemToWire(it))
	}
	return Budget{
		ID:           b.ID,
		BudgetNumber: b.BudgetNumber,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		Address:      b.Address,
		IssueDate:    FormatDate(b.IssueDate),
		DueDate:      formatOptionalDate(b.DueDate),
		Discount:     number(b.Discount),
		Tax:          number(b.Tax),
		Total:        number(b.Total),
		Items:        items,
		CreatedAt:    formatStamp(b.CreatedAt),
		UpdatedAt:    formatStamp(b.UpdatedAt),
	}
}

// BudgetFromWire always yields a non-nil item slice.
func BudgetFromWire(w Budget) models.Budget {
	items := make([]models.BudgetItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, BudgetItemFromWire(it))
	}
	b := models.Budget{
		BudgetNumber: w.BudgetNumber,
		CustomerName: w.CustomerName,
		Email:        w.Email,
		Phone:        w.Phone,
		Address:      w.Address,
		IssueDate:    ParseDate(w.IssueDate),
		DueDate:      parseOptionalDate(w.DueDate),
		Discount:     money(w.Discount),
		Tax:          money(w.Tax),
		Total:        money(w.Total),
		Items:        items,
	}
	b.ID = w.ID
	b.CreatedAt = parseStamp(w.CreatedAt)
	b.UpdatedAt = parseStamp(w.UpdatedAt)
	return b
}

var Budgets = Mapper[models.Budget, Budget]{ToWire: BudgetToWire, FromWire: BudgetFromWire}
