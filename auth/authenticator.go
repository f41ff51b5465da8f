package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/internal/wire"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Registration is a public sign up. It never carries a role.
type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Authenticator checks credentials and creates accounts.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Identity, error)
	Register(ctx context.Context, reg Registration) error
}

// Remote authenticates against the REST API.
type Remote struct {
	API *apiclient.Client
}

func (a Remote) Login(ctx context.Context, email, password string) (Identity, error) {
	resp, err := a.API.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		if apiclient.IsUnauthorized(err) || apiclient.IsNotFound(err) {
			return Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return Identity{}, err
	}
	if resp.Token == "" {
		return Identity{}, errors.New("login: API returned no token")
	}
	if resp.Email == "" {
		resp.Email = strings.TrimSpace(email)
	}
	return Identity{Name: resp.Name, Email: resp.Email, Token: resp.Token}, nil
}

func (a Remote) Register(ctx context.Context, reg Registration) error {
	err := a.API.Register(ctx, wire.RegisterRequest{
		Name:     strings.TrimSpace(reg.Name),
		Email:    strings.TrimSpace(reg.Email),
		Phone:    strings.TrimSpace(reg.Phone),
		Password: reg.Password,
	})
	if apiclient.IsConflict(err) {
		return fmt.Errorf("%w: %w", ErrEmailTaken, err)
	}
	return err
}

// Local authenticates against the users table.
type Local struct {
	Users *store.GormUsers
}

func (a Local) Login(ctx context.Context, email, password string) (Identity, error) {
	u, err := a.Users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrUnauthorized) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}
	return Identity{UserID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func (a Local) Register(ctx context.Context, reg Registration) error {
	_, err := a.Users.Create(ctx, models.User{
		Name:     strings.TrimSpace(reg.Name),
		Email:    reg.Email,
		Phone:    strings.TrimSpace(reg.Phone),
		Password: reg.Password,
		Role:     models.RoleUser,
		IsActive: true,
	})
	if errors.Is(err, store.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrEmailTaken, err)
	}
	return err
}
