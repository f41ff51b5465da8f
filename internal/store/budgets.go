package store

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/depositodopitty/pit/internal/models"
)

// GormBudgets stores budgets together with their items.
type GormBudgets struct {
	DB *gorm.DB
}

func NewGormBudgets(db *gorm.DB) *GormBudgets { return &GormBudgets{DB: db} }

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
}

func (g *GormBudgets) List(ctx context.Context) ([]models.Budget, error) {
	var out []models.Budget
	if err := preloadItems(g.DB.WithContext(ctx)).Order("id asc").Find(&out).Error; err != nil {
		return nil, dbErr(err)
	}
	return out, nil
}

func (g *GormBudgets) Create(ctx context.Context, b models.Budget) (models.Budget, error) {
	b.ID = 0
	for i := range b.Items {
		b.Items[i].ID = 0
		b.Items[i].BudgetID = 0
	}
	if err := g.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return b, dbErr(err)
	}
	return b, nil
}

// Update rewrites the budget header and replaces its item set: items missing
// from b are deleted, items without an id are inserted. An item id that does
// not belong to b is inserted as a new row, never moved from its budget.
func (g *GormBudgets) Update(ctx context.Context, b models.Budget) (models.Budget, error) {
	items := b.Items
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow[models.Budget](tx, &b); err != nil {
			return err
		}
		var owned []uint
		if err := tx.Model(&models.BudgetItem{}).Where("budget_id = ?", b.ID).Pluck("id", &owned).Error; err != nil {
			return dbErr(err)
		}
		keep := make([]uint, 0, len(items))
		for i := range items {
			switch {
			case items[i].ID == 0:
			case slices.Contains(owned, items[i].ID):
				keep = append(keep, items[i].ID)
			default:
				items[i].ID = 0
			}
		}
		drop := tx.Where("budget_id = ?", b.ID)
		if len(keep) > 0 {
			drop = drop.Where("id NOT IN ?", keep)
		}
		if err := drop.Delete(&models.BudgetItem{}).Error; err != nil {
			return dbErr(err)
		}
		for i := range items {
			items[i].BudgetID = b.ID
			if err := tx.Save(&items[i]).Error; err != nil {
				return dbErr(err)
			}
		}
		return dbErr(preloadItems(tx).First(&b, b.ID).Error)
	})
	return b, err
}

func (g *GormBudgets) Delete(ctx context.Context, id uint) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", id).Delete(&models.BudgetItem{}).Error; err != nil {
			return dbErr(err)
		}
		res := tx.Delete(&models.Budget{}, id)
		if res.Error != nil {
			return dbErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (g *GormBudgets) DeleteItem(ctx context.Context, itemID uint) error {
	res := g.DB.WithContext(ctx).Delete(&models.BudgetItem{}, itemID)
	if res.Error != nil {
		return dbErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
