// Package backend is a reference implementation of the REST API consumed by
// the dashboard, backed by the local database.
package backend

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/services"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/internal/wire"
)

const (
	defaultTokenTTL = 12 * time.Hour
	minPassword     = 6
)

type Options struct {
	Repos     store.Set
	Users     *store.GormUsers
	JWTSecret string
	TokenTTL  time.Duration
	// AllowedOrigins lists the browser origins allowed by CORS; empty means any.
	AllowedOrigins []string
	Log            zerolog.Logger
	Now            func() time.Time
}

type api struct {
	opts    Options
	budgets *services.BudgetService
}

func (a *api) now() time.Time {
	if a.opts.Now != nil {
		return a.opts.Now()
	}
	return time.Now()
}

// New builds the gin engine exposing the API contract, wrapped in CORS.
func New(opts Options) http.Handler {
	if opts.TokenTTL == 0 {
		opts.TokenTTL = defaultTokenTTL
	}
	a := &api{opts: opts, budgets: services.NewBudgetService()}

	r := gin.New()
	r.Use(recovery(opts.Log), accessLog(opts.Log))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.POST("/"+apiclient.ResourceUser+"/login", a.login)
	r.POST("/auth/register", a.register)

	g := r.Group("/", a.bearer())
	mount(g, apiclient.ResourceUser, opts.Repos.Users, wire.Users, hooks[models.User]{
		validate:    validateUser,
		beforeWrite: func(u *models.User) { u.Email = strings.ToLower(strings.TrimSpace(u.Email)) },
		afterRead:   clearPasswords,
	})
	mount(g, apiclient.ResourceClient, opts.Repos.Customers, wire.Customers, hooks[models.Customer]{
		beforeWrite: func(c *models.Customer) { c.DocumentNumber = wire.Digits(c.DocumentNumber) },
	})
	mount(g, apiclient.ResourceSupplier, opts.Repos.Suppliers, wire.Suppliers, hooks[models.Supplier]{
		beforeWrite: func(s *models.Supplier) { s.DocumentNumber = wire.Digits(s.DocumentNumber) },
	})
	mount(g, apiclient.ResourceProduct, opts.Repos.Products, wire.Products, hooks[models.Product]{
		beforeWrite: func(p *models.Product) {
			if p.Status != models.ProductInactive {
				p.Status = models.ProductActive
			}
		},
	})
	mount[models.Budget](g, apiclient.ResourceBudget, opts.Repos.Budgets, wire.Budgets, hooks[models.Budget]{
		beforeWrite: a.budgets.Prepare,
	})
	g.DELETE("/"+apiclient.ResourceBudget+"/delete-item/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := opts.Repos.Budgets.DeleteItem(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	mount(g, apiclient.ResourceAccountsPayable, opts.Repos.Payables, wire.AccountsPayables, hooks[models.AccountsPayable]{
		beforeWrite: func(p *models.AccountsPayable) { services.ReconcilePayable(p, a.now()) },
		afterRead: func(list []models.AccountsPayable) []models.AccountsPayable {
			return services.ReconcilePayables(list, a.now())
		},
	})
	mount(g, apiclient.ResourceAccountsReceivable, opts.Repos.Receivables, wire.AccountsReceivables, hooks[models.AccountsReceivable]{
		beforeWrite: func(p *models.AccountsReceivable) { services.ReconcileReceivable(p, a.now()) },
		afterRead: func(list []models.AccountsReceivable) []models.AccountsReceivable {
			return services.ReconcileReceivables(list, a.now())
		},
	})
	return cors.Handler(corsOptions(opts.AllowedOrigins))(r)
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

// validateUser requires a name and e-mail, and a password of at least six
// characters on create. A blank password on update keeps the stored one.
func validateUser(u models.User, creating bool) string {
	switch {
	case strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Email) == "":
		return "Nome e e-mail são obrigatórios"
	case creating && len(u.Password) < minPassword, !creating && u.Password != "" && len(u.Password) < minPassword:
		return "Senha obrigatória (mínimo 6 caracteres)"
	}
	return ""
}

func clearPasswords(list []models.User) []models.User {
	for i := range list {
		list[i].Password = ""
	}
	return list
}

func (a *api) login(c *gin.Context) {
	var req wire.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "E-mail e senha são obrigatórios"})
		return
	}
	u, err := a.opts.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas"})
			return
		}
		fail(c, err)
		return
	}
	token, err := auth.IssueToken(a.opts.JWTSecret, u.ID, u.Name, u.Email, a.opts.TokenTTL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wire.LoginResponse{Name: u.Name, Email: u.Email, Token: token})
}

// register creates a regular user. Public sign ups never choose their role.
func (a *api) register(c *gin.Context) {
	var req wire.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || len(req.Password) < minPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nome, e-mail e senha (mínimo 6 caracteres) são obrigatórios"})
		return
	}
	u, err := a.opts.Users.Create(c.Request.Context(), models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Phone:    strings.TrimSpace(req.Phone),
		Password: req.Password,
		Role:     models.RoleUser,
		IsActive: true,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, wire.UserToWire(u))
}

// bearer rejects requests without a valid HS256 token.
func (a *api) bearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token não informado"})
			return
		}
		claims, err := auth.ParseToken(a.opts.JWTSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido ou expirado"})
			return
		}
		c.Set("user_id", claims.UserID())
		c.Set("email", claims.Email)
		c.Next()
	}
}
