package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/depositodopitty/pit/httpx"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/middleware"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/services"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/view"
)

type DashboardHandler struct {
	Repos store.Set
	Now   func() time.Time
}

func NewDashboardHandler(repos store.Set) *DashboardHandler {
	return &DashboardHandler{Repos: repos, Now: time.Now}
}

// Card is one counter on the dashboard.
type Card struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func count[T any](ctx context.Context, repo store.Repository[T], errs *[]error) int {
	if repo == nil {
		return 0
	}
	items, err := repo.List(ctx)
	if err != nil {
		*errs = append(*errs, err)
		return 0
	}
	return len(items)
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	var errs []error
	cards := []Card{
		{"/usuarios", "nav_users", count(ctx, h.Repos.Users, &errs)},
		{"/clientes", "nav_customers", count(ctx, h.Repos.Customers, &errs)},
		{"/fornecedores", "nav_suppliers", count(ctx, h.Repos.Suppliers, &errs)},
		{"/produtos", "nav_products", count(ctx, h.Repos.Products, &errs)},
		{"/orcamentos", "nav_budgets", count[models.Budget](ctx, h.Repos.Budgets, &errs)},
	}

	var payables services.LedgerSummary
	if h.Repos.Payables != nil {
		list, err := h.Repos.Payables.List(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		payables = services.SummarizePayables(list, now)
	}
	var receivables services.LedgerSummary
	if h.Repos.Receivables != nil {
		list, err := h.Repos.Receivables.List(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		receivables = services.SummarizeReceivables(list, now)
	}
	cards = append(cards,
		Card{"/contas-a-pagar", "nav_payables", payables.Count},
		Card{"/contas-a-receber", "nav_receivables", receivables.Count},
	)

	err := errors.Join(errs...)
	if errors.Is(err, store.ErrUnauthorized) {
		sessionExpired(w, r)
		return
	}
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("dashboard load")
	}

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"cards":       cards,
			"payables":    payables,
			"receivables": receivables,
		})
		return
	}
	data := map[string]any{
		"Title":       "dashboard_title",
		"Cards":       cards,
		"Payables":    payables,
		"Receivables": receivables,
	}
	if err != nil {
		data["LoadError"] = "load_failed"
	}
	if flash := middleware.PopFlash(w, r); flash != nil {
		data["Flash"] = flash
	}
	if err := view.Render(w, r, "dashboard.html", data); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("render dashboard")
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
