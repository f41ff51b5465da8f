package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/depositodopitty/pit/internal/models"
)

// GormUsers stores users with bcrypt hashed passwords. Hashes never leave the
// repository: returned users carry an empty Password.
type GormUsers struct {
	DB   *gorm.DB
	Cost int
}

func NewGormUsers(db *gorm.DB) *GormUsers { return &GormUsers{DB: db, Cost: bcrypt.DefaultCost} }

func (g *GormUsers) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := g.DB.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return nil, dbErr(err)
	}
	for i := range out {
		out[i].Password = ""
	}
	return out, nil
}

func (g *GormUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = 0
	u.Email = normalizeEmail(u.Email)
	if err := emailTaken(g.DB.WithContext(ctx), u.Email, 0); err != nil {
		return u, err
	}
	hash, err := g.hash(u.Password)
	if err != nil {
		return u, err
	}
	u.Password = hash
	if err := g.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return u, dbErr(err)
	}
	u.Password = ""
	return u, nil
}

// Update keeps the stored hash when u.Password is blank.
func (g *GormUsers) Update(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalizeEmail(u.Email)
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.First(&existing, u.ID).Error; err != nil {
			return dbErr(err)
		}
		if err := emailTaken(tx, u.Email, u.ID); err != nil {
			return err
		}
		if strings.TrimSpace(u.Password) == "" {
			u.Password = existing.Password
		} else {
			hash, err := g.hash(u.Password)
			if err != nil {
				return err
			}
			u.Password = hash
		}
		return updateRow[models.User](tx, &u)
	})
	u.Password = ""
	return u, err
}

func (g *GormUsers) Delete(ctx context.Context, id uint) error {
	return NewGorm[models.User](g.DB).Delete(ctx, id)
}

// Authenticate returns the active user matching the credentials, or
// ErrUnauthorized.
func (g *GormUsers) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var u models.User
	err := g.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if err != nil {
		if err = dbErr(err); errors.Is(err, ErrNotFound) {
			return u, ErrUnauthorized
		}
		return u, err
	}
	if !u.IsActive || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return models.User{}, ErrUnauthorized
	}
	u.Password = ""
	return u, nil
}

func emailTaken(db *gorm.DB, email string, except uint) error {
	var n int64
	q := db.Model(&models.User{}).Where("email = ?", email)
	if except != 0 {
		q = q.Where("id <> ?", except)
	}
	if err := q.Count(&n).Error; err != nil {
		return dbErr(err)
	}
	if n > 0 {
		return fmt.Errorf("%w: e-mail %s já cadastrado", ErrConflict, email)
	}
	return nil
}

func (g *GormUsers) hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("hash password: empty")
	}
	cost := g.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
