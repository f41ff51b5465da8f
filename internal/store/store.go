// Package store hides where dashboard records live: the remote REST API or a
// local database.
package store

import (
	"context"
	"errors"

	"github.com/depositodopitty/pit/internal/models"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("record conflicts with an existing one")
	ErrUnauthorized = errors.New("unauthorized")
)

// Repository is the CRUD surface every page works against.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, v T) (T, error)
	Delete(ctx context.Context, id uint) error
}

// BudgetRepository can also drop a single budget line.
type BudgetRepository interface {
	Repository[models.Budget]
	DeleteItem(ctx context.Context, itemID uint) error
}

// Set groups one repository per entity.
type Set struct {
	Users       Repository[models.User]
	Customers   Repository[models.Customer]
	Suppliers   Repository[models.Supplier]
	Products    Repository[models.Product]
	Budgets     BudgetRepository
	Payables    Repository[models.AccountsPayable]
	Receivables Repository[models.AccountsReceivable]
}
