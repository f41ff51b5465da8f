package models

import "time"

// Model carries the identity and timestamps shared by every dashboard record.
type Model struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *Model) Key() uint      { return m.ID }
func (m *Model) SetKey(id uint) { m.ID = id }

// Keyed is implemented by pointers to every entity embedding Model.
type Keyed interface {
	Key() uint
	SetKey(id uint)
}

// Ptr constrains a type parameter to *T where *T is Keyed, so generic code can
// read and assign ids on values it only knows as T.
type Ptr[T any] interface {
	*T
	Keyed
}

// Key returns the id of v through its pointer methods.
func Key[T any, P Ptr[T]](v T) uint { return P(&v).Key() }

// WithKey returns a copy of v carrying id.
func WithKey[T any, P Ptr[T]](v T, id uint) T {
	P(&v).SetKey(id)
	return v
}

// All lists every table managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&User{}, &Customer{}, &Supplier{}, &Product{},
		&Budget{}, &BudgetItem{}, &AccountsPayable{}, &AccountsReceivable{},
	}
}
