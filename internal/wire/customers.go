package wire

import "github.com/depositodopitty/pit/internal/models"

type Customer struct {
	ID             uint   `json:"id"`
	DocumentNumber string `json:"documentNumber"`
	CompanyName    string `json:"companyName"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	PostalCode     string `json:"postalCode"`
	ContactPerson  string `json:"contactPerson"`
	IsActive       *bool  `json:"isActive"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

func CustomerToWire(c models.Customer) Customer {
	active := c.IsActive
	return Customer{
		ID:             c.ID,
		DocumentNumber: Digits(c.DocumentNumber),
		CompanyName:    c.CompanyName,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		PostalCode:     c.PostalCode,
		ContactPerson:  c.ContactPerson,
		IsActive:       &active,
		CreatedAt:      formatStamp(c.CreatedAt),
		UpdatedAt:      formatStamp(c.UpdatedAt),
	}
}

// CustomerFromWire treats a missing isActive as active.
func CustomerFromWire(w Customer) models.Customer {
	active := true
	if w.IsActive != nil {
		active = *w.IsActive
	}
	c := models.Customer{
		DocumentNumber: w.DocumentNumber,
		CompanyName:    w.CompanyName,
		Phone:          w.Phone,
		Email:          w.Email,
		Address:        w.Address,
		PostalCode:     w.PostalCode,
		ContactPerson:  w.ContactPerson,
		IsActive:       active,
	}
	c.ID = w.ID
	c.CreatedAt = parseStamp(w.CreatedAt)
	c.UpdatedAt = parseStamp(w.UpdatedAt)
	return c
}

var Customers = Mapper[models.Customer, Customer]{ToWire: CustomerToWire, FromWire: CustomerFromWire}
