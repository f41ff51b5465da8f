package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/internal/wire"
)

const secret = "test-secret"

func init() { gin.SetMode(gin.TestMode) }

func setup(t *testing.T) (http.Handler, *store.GormUsers) {
	t.Helper()
	return setupWith(t, nil)
}

func setupWith(t *testing.T, origins []string) (http.Handler, *store.GormUsers) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	set := store.NewGormSet(db)
	users := store.NewGormUsers(db)
	users.Cost = bcrypt.MinCost
	set.Users = users
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return New(Options{
		Repos:     set,
		Users:     users,
		JWTSecret:      secret,
		AllowedOrigins: origins,
		Log:            zerolog.Nop(),
		Now:            func() time.Time { return now },
	}), users
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	rec := call(t, h, http.MethodPost, "/User/login", "", wire.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out wire.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRegisterAndLogin(t *testing.T) {
	h, _ := setup(t)

	rec := call(t, h, http.MethodPost, "/auth/register", "", wire.RegisterRequest{Name: "Ana", Email: "Ana@Pit.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created wire.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.RoleUser, created.Role)
	assert.True(t, created.IsActive)
	assert.Empty(t, created.Password)

	rec = call(t, h, http.MethodPost, "/auth/register", "", wire.RegisterRequest{Name: "Ana", Email: "ana@pit.com", Password: "secret1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)

	rec = call(t, h, http.MethodPost, "/User/login", "", wire.LoginRequest{Email: "ana@pit.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.NotEmpty(t, login(t, h, "ana@pit.com", "secret1"))
}

func TestResourcesRequireToken(t *testing.T) {
	h, _ := setup(t)

	rec := call(t, h, http.MethodGet, "/Client/get-all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodGet, "/Client/get-all", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token")
}

func preflight(h http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/Client/get-all", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCORSPreflight(t *testing.T) {
	h, _ := setup(t)
	rec := preflight(h, "http://localhost:5173")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}

func TestCORSAllowedOrigins(t *testing.T) {
	h, _ := setupWith(t, []string{"https://painel.depositodopitty.com.br"})

	rec := preflight(h, "https://painel.depositodopitty.com.br")
	assert.Equal(t, "https://painel.depositodopitty.com.br", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")

	rec = preflight(h, "https://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://painel.depositodopitty.com.br")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://painel.depositodopitty.com.br", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCustomerCRUD(t *testing.T) {
	h, users := setup(t)
	_, err := users.Create(context.Background(), models.User{Name: "Admin", Email: "admin@pit.com", Password: "secret1", IsActive: true})
	require.NoError(t, err)
	token := login(t, h, "admin@pit.com", "secret1")

	active := true
	rec := call(t, h, http.MethodPost, "/Client/create", token, wire.Customer{
		CompanyName: "Construtora Alfa", DocumentNumber: "12.345.678/0001-95", IsActive: &active,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created wire.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "12345678000195", created.DocumentNumber)
	require.NotZero(t, created.ID)

	created.CompanyName = "Construtora Beta"
	rec = call(t, h, http.MethodPut, "/Client/update/"+itoa(created.ID), token, created)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/Client/get-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []wire.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Construtora Beta", list[0].CompanyName)

	rec = call(t, h, http.MethodDelete, "/Client/delete/"+itoa(created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = call(t, h, http.MethodDelete, "/Client/delete/"+itoa(created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = call(t, h, http.MethodDelete, "/Client/delete/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsersNeverExposePasswords(t *testing.T) {
	h, users := setup(t)
	_, err := users.Create(context.Background(), models.User{Name: "Admin", Email: "admin@pit.com", Password: "secret1", IsActive: true})
	require.NoError(t, err)
	token := login(t, h, "admin@pit.com", "secret1")

	rec := call(t, h, http.MethodPost, "/User/create", token, wire.User{Name: "Bia", Email: "admin@pit.com", Password: "secret2", IsActive: true})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, h, http.MethodPost, "/User/create", token, wire.User{Name: "Bia", Email: "bia@pit.com", IsActive: true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Senha")

	rec = call(t, h, http.MethodGet, "/User/get-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

// The dashboard's remote repositories talk to the reference API over HTTP.
func TestRemoteSetAgainstAPI(t *testing.T) {
	h, users := setup(t)
	_, err := users.Create(context.Background(), models.User{Name: "Admin", Email: "admin@pit.com", Password: "secret1", IsActive: true})
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	defer srv.Close()

	client := apiclient.New(srv.URL)
	resp, err := client.Login(context.Background(), "admin@pit.com", "secret1")
	require.NoError(t, err)
	ctx := apiclient.WithToken(context.Background(), resp.Token)
	remote := store.NewRemoteSet(client)

	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	b, err := remote.Budgets.Create(ctx, models.Budget{
		CustomerName: "Maria",
		IssueDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      &due,
		Discount:     decimal.NewFromInt(10),
		Items: []models.BudgetItem{
			{Description: "Cimento", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{Description: "Areia", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.BudgetNumber)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(190)), b.Total.String())

	list, err := remote.Budgets.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Items, 2)
	require.NoError(t, remote.Budgets.DeleteItem(ctx, list[0].Items[0].ID))

	list, err = remote.Budgets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list[0].Items, 1)

	_, err = remote.Payables.Create(ctx, models.AccountsPayable{
		SupplierName: "Votorantim", Description: "Cimento", Amount: decimal.NewFromInt(500),
		DueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: models.PayablePending,
	})
	require.NoError(t, err)
	payables, err := remote.Payables.List(ctx)
	require.NoError(t, err)
	require.Len(t, payables, 1)
	assert.Equal(t, models.PayableOverdue, payables[0].Status)

	_, err = remote.Customers.List(context.Background())
	assert.ErrorIs(t, err, store.ErrUnauthorized)
}

func itoa(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
