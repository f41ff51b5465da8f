package wire

import "github.com/depositodopitty/pit/internal/models"

// Product carries both the split purchase/sale prices and the legacy single
// price field; price always mirrors salePrice.
type Product struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalePrice     float64 `json:"salePrice"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	Status        string  `json:"status"`
	Barcode       string  `json:"barcode"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

func ProductToWire(p models.Product) Product {
	sale := number(p.SalePrice)
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         sale,
		PurchasePrice: number(p.PurchasePrice),
		SalePrice:     sale,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		Status:        p.Status,
		Barcode:       p.Barcode,
		CreatedAt:     formatStamp(p.CreatedAt),
		UpdatedAt:     formatStamp(p.UpdatedAt),
	}
}

// ProductFromWire falls back to price when salePrice is absent.
func ProductFromWire(w Product) models.Product {
	sale := w.SalePrice
	if sale == 0 {
		sale = w.Price
	}
	p := models.Product{
		Name:          w.Name,
		Description:   w.Description,
		PurchasePrice: money(w.PurchasePrice),
		SalePrice:     money(sale),
		Category:      w.Category,
		StockQuantity: w.StockQuantity,
		Status:        w.Status,
		Barcode:       w.Barcode,
	}
	p.ID = w.ID
	p.CreatedAt = parseStamp(w.CreatedAt)
	p.UpdatedAt = parseStamp(w.UpdatedAt)
	return p
}

var Products = Mapper[models.Product, Product]{ToWire: ProductToWire, FromWire: ProductFromWire}
