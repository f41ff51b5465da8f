package wire

import "github.com/depositodopitty/pit/internal/models"

type User struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     models.Role `json:"role"`
	Password string      `json:"password,omitempty"`
	IsActive bool        `json:"isActive"`
}

func UserToWire(u models.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		Password: u.Password,
		IsActive: u.IsActive,
	}
}

func UserFromWire(w User) models.User {
	u := models.User{
		Name:     w.Name,
		Email:    w.Email,
		Phone:    w.Phone,
		Role:     w.Role,
		Password: w.Password,
		IsActive: w.IsActive,
	}
	u.ID = w.ID
	return u
}

var Users = Mapper[models.User, User]{ToWire: UserToWire, FromWire: UserFromWire}

// LoginRequest is the body of POST /User/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /User/login.
type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}
