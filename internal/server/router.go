package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/httpx"
	"github.com/depositodopitty/pit/internal/handlers"
	"github.com/depositodopitty/pit/internal/middleware"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/view"
)

// Deps is everything the dashboard needs to serve requests.
type Deps struct {
	Repos store.Set
	Auth  auth.Authenticator
	Log   zerolog.Logger
	// Ping reports backend health for /healthz; nil means always healthy.
	Ping func(ctx context.Context) error
	Now  func() time.Time
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(d Deps) http.Handler {
	mux := http.NewServeMux()
	view.SetLangResolver(middleware.LangFrom)

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := d.Ping(ctx); err != nil {
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth endpoints
	ah := handlers.NewAuthHandler(d.Auth)
	mux.HandleFunc("GET /login", ah.LoginForm)
	mux.HandleFunc("POST /login", ah.Login)
	mux.HandleFunc("GET /register", ah.RegisterForm)
	mux.HandleFunc("POST /register", ah.Register)
	mux.HandleFunc("POST /logout", ah.Logout)

	protected := func(h http.Handler) http.Handler { return auth.RequireAuth(h) }

	dash := handlers.NewDashboardHandler(d.Repos)
	if d.Now != nil {
		dash.Now = d.Now
	}
	mux.Handle("GET /dashboard", protected(http.HandlerFunc(dash.Show)))

	handlers.NewUsersPage(d.Repos.Users).Register(mux, protected)
	handlers.NewCustomersPage(d.Repos.Customers).Register(mux, protected)
	handlers.NewSuppliersPage(d.Repos.Suppliers).Register(mux, protected)
	handlers.NewProductsPage(d.Repos.Products).Register(mux, protected)
	handlers.NewBudgetsPage(d.Repos.Budgets, nil).Register(mux, protected)
	handlers.NewPayablesPage(d.Repos.Payables).Register(mux, protected)
	handlers.NewReceivablesPage(d.Repos.Receivables).Register(mux, protected)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.IdentityFrom(r.Context()); ok {
			httpx.SeeOther(w, r, "/dashboard")
			return
		}
		httpx.SeeOther(w, r, "/login")
	})

	var h http.Handler = mux
	h = middleware.Bearer(h)
	h = auth.Middleware(h)
	h = middleware.Prefs(h)
	h = middleware.Logging(d.Log)(h)
	return middleware.Recover(h)
}
