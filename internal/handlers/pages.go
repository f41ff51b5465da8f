package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/depositodopitty/pit/httpx"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/middleware"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/services"
	"github.com/depositodopitty/pit/internal/store"
)

// blankItemRows is how many empty item rows the budget form offers.
const blankItemRows = 3

func NewUsersPage(repo store.Repository[models.User]) *Page[models.User, *models.User] {
	return &Page[models.User, *models.User]{
		Base:     "/usuarios",
		Template: "users.html",
		Title:    "users_title",
		NewLabel: "new_user",
		Repo:     repo,
		Search:   func(u models.User) []string { return []string{u.Name, u.Email} },
		Decode:   decodeUser,
		Blank:    func() models.User { return models.User{Role: models.RoleUser, IsActive: true} },
		Prepare: func(items []models.User, _ time.Time) []models.User {
			for i := range items {
				items[i].Password = ""
			}
			return items
		},
		Extra: func(data map[string]any, _ models.User) {
			data["Roles"] = []models.Role{models.RoleAdmin, models.RoleUser}
		},
		ConflictField: "email",
	}
}

func NewCustomersPage(repo store.Repository[models.Customer]) *Page[models.Customer, *models.Customer] {
	return &Page[models.Customer, *models.Customer]{
		Base:     "/clientes",
		Template: "customers.html",
		Title:    "customers_title",
		NewLabel: "new_customer",
		Repo:     repo,
		Search: func(c models.Customer) []string {
			return []string{c.CompanyName, c.DocumentNumber, c.Email}
		},
		Decode: decodeCustomer,
		Blank:  func() models.Customer { return models.Customer{IsActive: true} },
	}
}

func NewSuppliersPage(repo store.Repository[models.Supplier]) *Page[models.Supplier, *models.Supplier] {
	return &Page[models.Supplier, *models.Supplier]{
		Base:     "/fornecedores",
		Template: "suppliers.html",
		Title:    "suppliers_title",
		NewLabel: "new_supplier",
		Repo:     repo,
		Search:   func(s models.Supplier) []string { return []string{s.CompanyName, s.Email} },
		Decode:   decodeSupplier,
		Extra: func(data map[string]any, _ models.Supplier) {
			data["BranchTypes"] = []string{"MATRIZ", "FILIAL"}
		},
	}
}

func NewProductsPage(repo store.Repository[models.Product]) *Page[models.Product, *models.Product] {
	return &Page[models.Product, *models.Product]{
		Base:     "/produtos",
		Template: "products.html",
		Title:    "products_title",
		NewLabel: "new_product",
		Repo:     repo,
		Search:   func(p models.Product) []string { return []string{p.Name, p.Category} },
		Decode:   decodeProduct,
		Blank:    func() models.Product { return models.Product{Status: models.ProductActive} },
		Extra: func(data map[string]any, _ models.Product) {
			data["Statuses"] = []string{models.ProductActive, models.ProductInactive}
		},
	}
}

// BudgetsPage adds the single item removal route to the generic page.
type BudgetsPage struct {
	*Page[models.Budget, *models.Budget]
	Budgets store.BudgetRepository
}

func NewBudgetsPage(repo store.BudgetRepository, svc *services.BudgetService) *BudgetsPage {
	if svc == nil {
		svc = services.NewBudgetService()
	}
	p := &Page[models.Budget, *models.Budget]{
		Base:     "/orcamentos",
		Template: "budgets.html",
		Title:    "budgets_title",
		NewLabel: "new_budget",
		Repo:     repo,
		Search:   func(b models.Budget) []string { return []string{b.CustomerName, b.Email} },
		Decode:   decodeBudget,
		Blank:    func() models.Budget { return models.Budget{IssueDate: today()} },
		BeforeSave: func(b *models.Budget, _ time.Time) {
			svc.Prepare(b)
		},
		// Items dropped from the form are deleted before the budget itself
		// is updated.
		BeforeUpdate: func(ctx context.Context, old, updated models.Budget) error {
			for _, id := range services.RemovedItems(old, updated) {
				if err := repo.DeleteItem(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
					return err
				}
			}
			return nil
		},
		Extra: func(data map[string]any, b models.Budget) {
			b.Items = append([]models.BudgetItem(nil), b.Items...)
			subtotal, _ := svc.ComputeTotals(&b)
			rows := append([]models.BudgetItem(nil), b.Items...)
			for range blankItemRows {
				rows = append(rows, models.BudgetItem{})
			}
			data["ItemRows"] = rows
			data["Subtotal"] = subtotal
			data["Form"] = b
		},
	}
	return &BudgetsPage{Page: p, Budgets: repo}
}

// Register mounts the generic routes plus item removal.
func (h *BudgetsPage) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	h.Page.Register(mux, wrap)
	mux.Handle("POST "+h.Base+"/{id}/itens/{item}/delete", wrap(http.HandlerFunc(h.DeleteItem)))
}

// DeleteItem removes one line and reopens the budget form.
func (h *BudgetsPage) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err1 := strconv.ParseUint(r.PathValue("id"), 10, 64)
	item, err2 := strconv.ParseUint(r.PathValue("item"), 10, 64)
	if err1 != nil || err2 != nil || item == 0 {
		http.NotFound(w, r)
		return
	}
	_ = r.ParseForm()
	err := h.ownsItem(r.Context(), uint(id), uint(item))
	if err == nil {
		err = h.Budgets.DeleteItem(r.Context(), uint(item))
	}
	if httpx.WantsJSON(r) {
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, store.ErrUnauthorized):
			sessionExpired(w, r)
		case errors.Is(err, store.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		default:
			httpx.JSONError(w, http.StatusBadGateway, "delete_failed", nil)
		}
		return
	}
	switch {
	case err == nil:
		middleware.Flash(w, r, "deleted")
	case errors.Is(err, store.ErrUnauthorized):
		sessionExpired(w, r)
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.FlashError(w, r, "not_found")
	default:
		logger.FromContext(r.Context()).Error().Err(err).Uint64("item", item).Msg("delete budget item failed")
		middleware.FlashError(w, r, "delete_failed")
	}
	ret, _ := url.ParseQuery(r.FormValue("return"))
	q, _ := url.ParseQuery(cleanReturn(ret))
	q.Set("edit", strconv.FormatUint(id, 10))
	httpx.SeeOther(w, r, h.Base+"?"+q.Encode())
}

// ownsItem reports store.ErrNotFound unless item is a line of budget id.
func (h *BudgetsPage) ownsItem(ctx context.Context, id, item uint) error {
	list, err := h.Budgets.List(ctx)
	if err != nil {
		return err
	}
	for _, b := range list {
		if b.ID != id {
			continue
		}
		for _, it := range b.Items {
			if it.ID == item {
				return nil
			}
		}
	}
	return store.ErrNotFound
}

func NewPayablesPage(repo store.Repository[models.AccountsPayable]) *Page[models.AccountsPayable, *models.AccountsPayable] {
	return &Page[models.AccountsPayable, *models.AccountsPayable]{
		Base:     "/contas-a-pagar",
		Template: "payables.html",
		Title:    "payables_title",
		NewLabel: "new_payable",
		Repo:     repo,
		Search: func(a models.AccountsPayable) []string {
			return []string{a.Description, a.SupplierName}
		},
		Decode:  decodePayable,
		Blank:   func() models.AccountsPayable { return models.AccountsPayable{Status: models.PayablePending} },
		Prepare: services.ReconcilePayables,
		BeforeSave: func(a *models.AccountsPayable, now time.Time) {
			services.ReconcilePayable(a, now)
		},
		Extra: func(data map[string]any, _ models.AccountsPayable) {
			data["Statuses"] = services.Payables.Choices()
		},
	}
}

func NewReceivablesPage(repo store.Repository[models.AccountsReceivable]) *Page[models.AccountsReceivable, *models.AccountsReceivable] {
	return &Page[models.AccountsReceivable, *models.AccountsReceivable]{
		Base:     "/contas-a-receber",
		Template: "receivables.html",
		Title:    "receivables_title",
		NewLabel: "new_receivable",
		Repo:     repo,
		Search: func(a models.AccountsReceivable) []string {
			return []string{a.Description, a.CustomerName}
		},
		Decode:  decodeReceivable,
		Blank:   func() models.AccountsReceivable { return models.AccountsReceivable{Status: models.ReceivablePending} },
		Prepare: services.ReconcileReceivables,
		BeforeSave: func(a *models.AccountsReceivable, now time.Time) {
			services.ReconcileReceivable(a, now)
		},
		Extra: func(data map[string]any, _ models.AccountsReceivable) {
			data["Statuses"] = services.Receivables.Choices()
		},
	}
}
