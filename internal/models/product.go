package models

import "github.com/shopspring/decimal"

const (
	ProductActive   = "ATIVO"
	ProductInactive = "INATIVO"
)

type Product struct {
	Model
	Name          string          `gorm:"size:200;not null;index"`
	Description   string          `gorm:"size:500"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Category      string          `gorm:"size:120;index"`
	StockQuantity int             `gorm:"not null;default:0"`
	Status        string          `gorm:"size:20;not null;default:'ATIVO'"`
	Barcode       string          `gorm:"size:64;index"`
}
