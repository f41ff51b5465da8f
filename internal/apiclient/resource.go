package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/depositodopitty/pit/internal/wire"
)

// Resource is the CRUD surface shared by every API entity.
type Resource[W any] struct {
	c    *Client
	name string
}

func NewResource[W any](c *Client, name string) *Resource[W] {
	return &Resource[W]{c: c, name: name}
}

func (r *Resource[W]) Name() string { return r.name }

func (r *Resource[W]) path(action string) string { return "/" + r.name + "/" + action }

// GetAll fetches the whole collection.
func (r *Resource[W]) GetAll(ctx context.Context) ([]W, error) {
	p := r.path("get-all")
	data, err := r.c.do(ctx, http.MethodGet, p, nil)
	if err != nil {
		return nil, err
	}
	list, err := wire.DecodeList[W](data)
	if err != nil {
		return nil, fmt.Errorf("GET %s: decode: %w", p, err)
	}
	return list, nil
}

// Create posts w. When the API echoes the stored record it is returned,
// otherwise w is returned unchanged.
func (r *Resource[W]) Create(ctx context.Context, w W) (W, error) {
	p := r.path("create")
	data, err := r.c.do(ctx, http.MethodPost, p, w)
	if err != nil {
		return w, err
	}
	out := w
	if err := decodeInto("POST "+p, data, &out); err != nil {
		return w, err
	}
	return out, nil
}

// Update replaces the record with the given id.
func (r *Resource[W]) Update(ctx context.Context, id uint, w W) (W, error) {
	p := r.path(fmt.Sprintf("update/%d", id))
	data, err := r.c.do(ctx, http.MethodPut, p, w)
	if err != nil {
		return w, err
	}
	out := w
	if err := decodeInto("PUT "+p, data, &out); err != nil {
		return w, err
	}
	return out, nil
}

func (r *Resource[W]) Delete(ctx context.Context, id uint) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.path(fmt.Sprintf("delete/%d", id)), nil)
	return err
}

// Budgets adds item removal to the budget resource.
type Budgets struct {
	*Resource[wire.Budget]
}

func NewBudgets(c *Client) *Budgets {
	return &Budgets{Resource: NewResource[wire.Budget](c, ResourceBudget)}
}

// DeleteItem removes one budget line.
func (b *Budgets) DeleteItem(ctx context.Context, itemID uint) error {
	_, err := b.c.do(ctx, http.MethodDelete, b.path(fmt.Sprintf("delete-item/%d", itemID)), nil)
	return err
}
