package store

import (
	"context"
	"fmt"

	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/wire"
)

// Remote is a Repository backed by one API resource.
type Remote[T any, P models.Ptr[T], W any] struct {
	res *apiclient.Resource[W]
	m   wire.Mapper[T, W]
}

func NewRemote[T any, P models.Ptr[T], W any](res *apiclient.Resource[W], m wire.Mapper[T, W]) *Remote[T, P, W] {
	return &Remote[T, P, W]{res: res, m: m}
}

func (r *Remote[T, P, W]) List(ctx context.Context) ([]T, error) {
	ws, err := r.res.GetAll(ctx)
	if err != nil {
		return nil, remoteErr(err)
	}
	return r.m.FromWireList(ws), nil
}

func (r *Remote[T, P, W]) Create(ctx context.Context, v T) (T, error) {
	w, err := r.res.Create(ctx, r.m.ToWire(v))
	if err != nil {
		return v, remoteErr(err)
	}
	return r.m.FromWire(w), nil
}

func (r *Remote[T, P, W]) Update(ctx context.Context, v T) (T, error) {
	id := P(&v).Key()
	if id == 0 {
		return v, fmt.Errorf("update %s: %w", r.res.Name(), ErrNotFound)
	}
	w, err := r.res.Update(ctx, id, r.m.ToWire(v))
	if err != nil {
		return v, remoteErr(err)
	}
	return r.m.FromWire(w), nil
}

func (r *Remote[T, P, W]) Delete(ctx context.Context, id uint) error {
	return remoteErr(r.res.Delete(ctx, id))
}

type remoteBudgets struct {
	*Remote[models.Budget, *models.Budget, wire.Budget]
	api *apiclient.Budgets
}

func (r remoteBudgets) DeleteItem(ctx context.Context, itemID uint) error {
	return remoteErr(r.api.DeleteItem(ctx, itemID))
}

// NewRemoteSet wires every entity to its API resource.
func NewRemoteSet(c *apiclient.Client) Set {
	budgets := apiclient.NewBudgets(c)
	return Set{
		Users:       NewRemote[models.User](apiclient.NewResource[wire.User](c, apiclient.ResourceUser), wire.Users),
		Customers:   NewRemote[models.Customer](apiclient.NewResource[wire.Customer](c, apiclient.ResourceClient), wire.Customers),
		Suppliers:   NewRemote[models.Supplier](apiclient.NewResource[wire.Supplier](c, apiclient.ResourceSupplier), wire.Suppliers),
		Products:    NewRemote[models.Product](apiclient.NewResource[wire.Product](c, apiclient.ResourceProduct), wire.Products),
		Budgets:     remoteBudgets{Remote: NewRemote[models.Budget](budgets.Resource, wire.Budgets), api: budgets},
		Payables:    NewRemote[models.AccountsPayable](apiclient.NewResource[wire.AccountsPayable](c, apiclient.ResourceAccountsPayable), wire.AccountsPayables),
		Receivables: NewRemote[models.AccountsReceivable](apiclient.NewResource[wire.AccountsReceivable](c, apiclient.ResourceAccountsReceivable), wire.AccountsReceivables),
	}
}

// remoteErr tags API failures with the matching sentinel while keeping the
// *apiclient.Error reachable for its message.
func remoteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case apiclient.IsUnauthorized(err):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case apiclient.IsConflict(err):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case apiclient.IsNotFound(err):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
