package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accounts payable statuses.
const (
	PayablePending = "PENDENTE"
	PayablePaid    = "PAGA"
	PayableOverdue = "ATRASADA"
)

// Accounts receivable statuses.
const (
	ReceivablePending  = "PENDENTE"
	ReceivableReceived = "RECEBIDO"
	ReceivableOverdue  = "ATRASADO"
)

type AccountsPayable struct {
	Model
	SupplierName string          `gorm:"size:200;not null;index"`
	Description  string          `gorm:"size:255"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate      time.Time       `gorm:"not null;index"`
	PaymentDate  *time.Time
	Status       string `gorm:"size:20;not null;default:'PENDENTE'"`
	IsOverdue    bool   `gorm:"not null;default:false"`
}

type AccountsReceivable struct {
	Model
	CustomerName string          `gorm:"size:200;not null;index"`
	Description  string          `gorm:"size:255"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate      time.Time       `gorm:"not null;index"`
	PaymentDate  *time.Time
	Status       string `gorm:"size:20;not null;default:'PENDENTE'"`
	IsOverdue    bool   `gorm:"not null;default:false"`
}
