package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/depositodopitty/pit/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGormCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGorm[models.Supplier](setupTestDB(t))

	s, err := repo.Create(ctx, models.Supplier{CompanyName: "Areia Sul", DocumentNumber: "12345678000199", City: "Curitiba"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID == 0 || s.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", s)
	}

	s.City = ""
	s.Email = "contato@areiasul.com"
	updated, err := repo.Update(ctx, s)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.City != "" {
		t.Fatalf("zero values must be written, city=%q", updated.City)
	}
	if !updated.CreatedAt.Equal(s.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", s.CreatedAt, updated.CreatedAt)
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 || list[0].Email != "contato@areiasul.com" {
		t.Fatalf("list: %v %+v", err, list)
	}

	if err := repo.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: want ErrNotFound, got %v", err)
	}
}

func TestGormKeepsInactiveCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewGorm[models.Customer](setupTestDB(t))
	c, err := repo.Create(ctx, models.Customer{CompanyName: "Obra Fina", DocumentNumber: "12345678901", IsActive: false})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Find(ctx, c.ID)
	if err != nil || got.IsActive {
		t.Fatalf("want inactive customer, got %+v (%v)", got, err)
	}
}

func TestGormBudgetsReplaceItems(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormBudgets(db)
	b, err := repo.Create(ctx, models.Budget{
		CustomerName: "Maria",
		IssueDate:    time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Total:        decimal.NewFromInt(30),
		Items: []models.BudgetItem{
			{Description: "Cimento", Quantity: 2, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)},
			{Description: "Areia", Quantity: 1, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(10)},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(b.Items) != 2 || b.Items[0].BudgetID != b.ID {
		t.Fatalf("items not linked: %+v", b.Items)
	}

	keep := b.Items[0]
	keep.Quantity = 3
	b.Items = []models.BudgetItem{keep, {Description: "Brita", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}}
	b, err = repo.Update(ctx, b)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(b.Items) != 2 || b.Items[0].Quantity != 3 || b.Items[1].Description != "Brita" {
		t.Fatalf("unexpected items after update: %+v", b.Items)
	}
	var n int64
	db.Model(&models.BudgetItem{}).Count(&n)
	if n != 2 {
		t.Fatalf("dropped item still stored, count=%d", n)
	}

	if err := repo.DeleteItem(ctx, b.Items[1].ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 1 || len(list[0].Items) != 1 {
		t.Fatalf("list after item delete: %+v", list)
	}

	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	db.Model(&models.BudgetItem{}).Count(&n)
	if n != 0 {
		t.Fatalf("items survived budget delete, count=%d", n)
	}
}

func TestGormBudgetsKeepForeignItems(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormBudgets(db)
	issue := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	a, err := repo.Create(ctx, models.Budget{CustomerName: "Ana", IssueDate: issue, Items: []models.BudgetItem{
		{Description: "Cimento", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
	}})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := repo.Create(ctx, models.Budget{CustomerName: "Bruno", IssueDate: issue, Items: []models.BudgetItem{
		{Description: "Areia", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
	}})
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	foreign := b.Items[0]
	foreign.Description = "Areia copiada"
	a.Items = append(a.Items, foreign)
	a, err = repo.Update(ctx, a)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(a.Items) != 2 {
		t.Fatalf("budget a items=%d, want 2", len(a.Items))
	}
	for _, it := range a.Items {
		if it.ID == foreign.ID {
			t.Fatalf("item %d moved into budget a", foreign.ID)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range list {
		if got.ID == b.ID && (len(got.Items) != 1 || got.Items[0].Description != "Areia") {
			t.Fatalf("budget b changed: %+v", got.Items)
		}
	}
}

func TestGormUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUsers(db)
	repo.Cost = bcrypt.MinCost

	u, err := repo.Create(ctx, models.User{Name: "Pitty", Email: " Pitty@Pit.com ", Password: "segredo1", Role: models.RoleAdmin, IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Password != "" || u.Email != "pitty@pit.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	var stored models.User
	db.First(&stored, u.ID)
	if stored.Role != models.RoleAdmin {
		t.Fatalf("admin role lost: %v", stored.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("segredo1")) != nil {
		t.Fatal("password not hashed with bcrypt")
	}

	if _, err := repo.Create(ctx, models.User{Name: "Outro", Email: "pitty@pit.com", Password: "x"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email: want ErrConflict, got %v", err)
	}

	u.Name = "Pitty Silva"
	if _, err := repo.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}
	db.First(&stored, u.ID)
	if stored.Name != "Pitty Silva" || bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("segredo1")) != nil {
		t.Fatalf("blank password must keep hash: %+v", stored)
	}

	if _, err := repo.Authenticate(ctx, "PITTY@pit.com", "segredo1"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := repo.Authenticate(ctx, "pitty@pit.com", "errada"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong password: want ErrUnauthorized, got %v", err)
	}
	if _, err := repo.Authenticate(ctx, "ninguem@pit.com", "x"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unknown user: want ErrUnauthorized, got %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 1 || list[0].Password != "" {
		t.Fatalf("list leaks hashes: %+v", list)
	}
}
