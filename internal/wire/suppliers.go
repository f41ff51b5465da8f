package wire

import "github.com/depositodopitty/pit/internal/models"

type Supplier struct {
	ID                 uint   `json:"id"`
	DocumentNumber     string `json:"documentNumber"`
	CompanyName        string `json:"companyName"`
	Address            string `json:"address"`
	Number             string `json:"number"`
	Neighborhood       string `json:"neighborhood"`
	City               string `json:"city"`
	State              string `json:"state"`
	PostalCode         string `json:"postalCode"`
	Phone              string `json:"phone"`
	RegistrationStatus string `json:"registrationStatus"`
	BranchType         string `json:"branchType"`
	Email              string `json:"email"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

func SupplierToWire(s models.Supplier) Supplier {
	return Supplier{
		ID:                 s.ID,
		DocumentNumber:     Digits(s.DocumentNumber),
		CompanyName:        s.CompanyName,
		Address:            s.Address,
		Number:             s.Number,
		Neighborhood:       s.Neighborhood,
		City:               s.City,
		State:              s.State,
		PostalCode:         s.PostalCode,
		Phone:              s.Phone,
		RegistrationStatus: s.RegistrationStatus,
		BranchType:         s.BranchType,
		Email:              s.Email,
		CreatedAt:          formatStamp(s.CreatedAt),
		UpdatedAt:          formatStamp(s.UpdatedAt),
	}
}

func SupplierFromWire(w Supplier) models.Supplier {
	s := models.Supplier{
		DocumentNumber:     w.DocumentNumber,
		CompanyName:        w.CompanyName,
		Address:            w.Address,
		Number:             w.Number,
		Neighborhood:       w.Neighborhood,
		City:               w.City,
		State:              w.State,
		PostalCode:         w.PostalCode,
		Phone:              w.Phone,
		RegistrationStatus: w.RegistrationStatus,
		BranchType:         w.BranchType,
		Email:              w.Email,
	}
	s.ID = w.ID
	s.CreatedAt = parseStamp(w.CreatedAt)
	s.UpdatedAt = parseStamp(w.UpdatedAt)
	return s
}

var Suppliers = Mapper[models.Supplier, Supplier]{ToWire: SupplierToWire, FromWire: SupplierFromWire}
