package models

// Role mirrors the backend enum: Admin=0, User=1.
type Role int

const (
	RoleAdmin Role = 0
	RoleUser  Role = 1
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleUser:
		return "Usuário"
	default:
		return "Desconhecido"
	}
}

type User struct {
	Model
	Name     string `gorm:"size:180;not null;index"`
	Email    string `gorm:"size:180;uniqueIndex;not null"`
	Phone    string `gorm:"size:30"`
	Role     Role   `gorm:"not null"`
	Password string `gorm:"not null"` // bcrypt hash when stored
	IsActive bool   `gorm:"not null"`
}
