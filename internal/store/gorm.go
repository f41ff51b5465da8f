package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/depositodopitty/pit/internal/models"
)

// Gorm is a Repository over one table.
type Gorm[T any, P models.Ptr[T]] struct {
	DB *gorm.DB
}

func NewGorm[T any, P models.Ptr[T]](db *gorm.DB) *Gorm[T, P] { return &Gorm[T, P]{DB: db} }

func (g *Gorm[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := g.DB.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return nil, dbErr(err)
	}
	return out, nil
}

func (g *Gorm[T, P]) Create(ctx context.Context, v T) (T, error) {
	P(&v).SetKey(0)
	if err := g.DB.WithContext(ctx).Omit(clause.Associations).Create(&v).Error; err != nil {
		return v, dbErr(err)
	}
	return v, nil
}

func (g *Gorm[T, P]) Update(ctx context.Context, v T) (T, error) {
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updateRow[T, P](tx, &v)
	})
	return v, err
}

func (g *Gorm[T, P]) Delete(ctx context.Context, id uint) error {
	res := g.DB.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return dbErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Find loads one row by id.
func (g *Gorm[T, P]) Find(ctx context.Context, id uint) (T, error) {
	var v T
	if err := g.DB.WithContext(ctx).First(&v, id).Error; err != nil {
		return v, dbErr(err)
	}
	return v, nil
}

// updateRow writes every column of v except the creation stamp, then reloads
// it so callers see stored values.
func updateRow[T any, P models.Ptr[T]](tx *gorm.DB, v *T) error {
	id := P(v).Key()
	var existing T
	if err := tx.First(&existing, id).Error; err != nil {
		return dbErr(err)
	}
	if err := tx.Model(&existing).Select("*").Omit("id", "created_at", clause.Associations).Updates(v).Error; err != nil {
		return dbErr(err)
	}
	return dbErr(tx.First(v, id).Error)
}

// dbErr maps driver errors onto the store sentinels.
func dbErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique constraint") || strings.Contains(s, "duplicate key")
}

// NewGormSet wires every entity to its table.
func NewGormSet(db *gorm.DB) Set {
	return Set{
		Users:       NewGormUsers(db),
		Customers:   NewGorm[models.Customer](db),
		Suppliers:   NewGorm[models.Supplier](db),
		Products:    NewGorm[models.Product](db),
		Budgets:     NewGormBudgets(db),
		Payables:    NewGorm[models.AccountsPayable](db),
		Receivables: NewGorm[models.AccountsReceivable](db),
	}
}
