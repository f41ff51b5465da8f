package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a customer quote. Discount is an absolute amount, Tax a percentage.
type Budget struct {
	Model
	BudgetNumber string    `gorm:"size:20;index"`
	CustomerName string    `gorm:"size:200;not null;index"`
	Email        string    `gorm:"size:180"`
	Phone        string    `gorm:"size:30"`
	Address      string    `gorm:"size:255"`
	IssueDate    time.Time `gorm:"not null"`
	DueDate      *time.Time
	Discount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Tax          decimal.Decimal `gorm:"type:decimal(9,4);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Items        []BudgetItem    `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
}

type BudgetItem struct {
	ID          uint            `gorm:"primaryKey"`
	BudgetID    uint            `gorm:"index;not null"`
	Description string          `gorm:"size:255;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}
