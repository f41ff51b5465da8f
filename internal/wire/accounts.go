package wire

import "github.com/depositodopitty/pit/internal/models"

type AccountsPayable struct {
	ID           uint    `json:"id"`
	SupplierName string  `json:"supplierName"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	DueDate      string  `json:"dueDate"`
	PaymentDate  *string `json:"paymentDate"`
	Status       string  `json:"status"`
	IsOverdue    bool    `json:"isOverdue"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

func AccountsPayableToWire(a models.AccountsPayable) AccountsPayable {
	return AccountsPayable{
		ID:           a.ID,
		SupplierName: a.SupplierName,
		Description:  a.Description,
		Amount:       number(a.Amount),
		DueDate:      FormatDate(a.DueDate),
		PaymentDate:  formatOptionalDate(a.PaymentDate),
		Status:       a.Status,
		IsOverdue:    a.IsOverdue,
		CreatedAt:    formatStamp(a.CreatedAt),
		UpdatedAt:    formatStamp(a.UpdatedAt),
	}
}

func AccountsPayableFromWire(w AccountsPayable) models.AccountsPayable {
	a := models.AccountsPayable{
		SupplierName: w.SupplierName,
		Description:  w.Description,
		Amount:       money(w.Amount),
		DueDate:      ParseDate(w.DueDate),
		PaymentDate:  parseOptionalDate(w.PaymentDate),
		Status:       w.Status,
		IsOverdue:    w.IsOverdue,
	}
	a.ID = w.ID
	a.CreatedAt = parseStamp(w.CreatedAt)
	a.UpdatedAt = parseStamp(w.UpdatedAt)
	return a
}

var AccountsPayables = Mapper[models.AccountsPayable, AccountsPayable]{
	ToWire:   AccountsPayableToWire,
	FromWire: AccountsPayableFromWire,
}

type AccountsReceivable struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customerName"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	DueDate      string  `json:"dueDate"`
	PaymentDate  *string `json:"paymentDate"`
	Status       string  `json:"status"`
	IsOverdue    bool    `json:"isOverdue"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

func AccountsReceivableToWire(a models.AccountsReceivable) AccountsReceivable {
	return AccountsReceivable{
		ID:           a.ID,
		CustomerName: a.CustomerName,
		Description:  a.Description,
		Amount:       number(a.Amount),
		DueDate:      FormatDate(a.DueDate),
		PaymentDate:  formatOptionalDate(a.PaymentDate),
		Status:       a.Status,
		IsOverdue:    a.IsOverdue,
		CreatedAt:    formatStamp(a.CreatedAt),
		UpdatedAt:    formatStamp(a.UpdatedAt),
	}
}

func AccountsReceivableFromWire(w AccountsReceivable) models.AccountsReceivable {
	a := models.AccountsReceivable{
		CustomerName: w.CustomerName,
		Description:  w.Description,
		Amount:       money(w.Amount),
		DueDate:      ParseDate(w.DueDate),
		PaymentDate:  parseOptionalDate(w.PaymentDate),
		Status:       w.Status,
		IsOverdue:    w.IsOverdue,
	}
	a.ID = w.ID
	a.CreatedAt = parseStamp(w.CreatedAt)
	a.UpdatedAt = parseStamp(w.UpdatedAt)
	return a
}

var AccountsReceivables = Mapper[models.AccountsReceivable, AccountsReceivable]{
	ToWire:   AccountsReceivableToWire,
	FromWire: AccountsReceivableFromWire,
}
