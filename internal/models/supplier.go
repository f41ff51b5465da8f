package models

type Supplier struct {
	Model
	DocumentNumber     string `gorm:"size:20;index;not null"`
	CompanyName        string `gorm:"size:200;not null;index"`
	Address            string `gorm:"size:255"`
	Number             string `gorm:"size:20"`
	Neighborhood       string `gorm:"size:120"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:2"`
	PostalCode         string `gorm:"size:12"`
	Phone              string `gorm:"size:30"`
	RegistrationStatus string `gorm:"size:40"` // ATIVA, BAIXADA, ...
	BranchType         string `gorm:"size:20"` // MATRIZ or FILIAL
	Email              string `gorm:"size:180"`
}
