package db

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/store"
)

// Seed creates the administrator and a few catalogue rows. Running it twice
// changes nothing.
func Seed(db *gorm.DB, opts Options) error {
	ctx := context.Background()
	if opts.AdminEmail != "" && opts.AdminPassword != "" {
		var n int64
		if err := db.Model(&models.User{}).Where("email = ?", opts.AdminEmail).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			admin := models.User{Name: "Administrador", Email: opts.AdminEmail, Password: opts.AdminPassword, Role: models.RoleAdmin, IsActive: true}
			if _, err := store.NewGormUsers(db).Create(ctx, admin); err != nil && !errors.Is(err, store.ErrConflict) {
				return err
			}
			opts.Log.Info().Str("email", opts.AdminEmail).Msg("seeded administrator")
		}
	}

	baseProducts := []models.Product{
		{Name: "Cimento CP II 50kg", Category: "Cimento", PurchasePrice: decimal.RequireFromString("28.90"), SalePrice: decimal.RequireFromString("36.50"), StockQuantity: 120, Status: models.ProductActive},
		{Name: "Areia média (m³)", Category: "Agregados", PurchasePrice: decimal.RequireFromString("95.00"), SalePrice: decimal.RequireFromString("130.00"), StockQuantity: 40, Status: models.ProductActive},
		{Name: "Tijolo baiano 9 furos", Category: "Alvenaria", PurchasePrice: decimal.RequireFromString("0.85"), SalePrice: decimal.RequireFromString("1.20"), StockQuantity: 5000, Status: models.ProductActive},
	}
	for _, p := range baseProducts {
		var existing models.Product
		err := db.Where("name = ?", p.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	var payables int64
	if err := db.Model(&models.AccountsPayable{}).Count(&payables).Error; err != nil {
		return err
	}
	if payables == 0 {
		due := time.Now().AddDate(0, 0, 10).Truncate(24 * time.Hour)
		sample := models.AccountsPayable{SupplierName: "Votorantim Cimentos", Description: "Lote de cimento", Amount: decimal.RequireFromString("3468.00"), DueDate: due, Status: models.PayablePending}
		if err := db.Create(&sample).Error; err != nil {
			return err
		}
	}
	return nil
}
