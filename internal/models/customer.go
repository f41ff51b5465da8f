package models

type Customer struct {
	Model
	DocumentNumber string `gorm:"size:20;index;not null"` // CPF or CNPJ, digits only
	CompanyName    string `gorm:"size:200;not null;index"`
	Phone          string `gorm:"size:30"`
	Email          string `gorm:"size:180"`
	Address        string `gorm:"size:255"`
	PostalCode     string `gorm:"size:12"`
	ContactPerson  string `gorm:"size:180"`
	IsActive       bool   `gorm:"not null"`
}
