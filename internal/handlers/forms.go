package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/services"
	"github.com/depositodopitty/pit/internal/wire"
	"github.com/depositodopitty/pit/validation"
)

const dateLayout = "2006-01-02"

func formValue(r *http.Request, key string) string { return strings.TrimSpace(r.FormValue(key)) }

func checked(r *http.Request, key string) bool {
	switch strings.ToLower(r.FormValue(key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// parseMoney accepts "1234.56", "1.234,56" and "R$ 1.234,56". Empty is zero.
func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func moneyField(r *http.Request, field string, v validation.Violations) decimal.Decimal {
	d, err := parseMoney(r.FormValue(field))
	if err != nil {
		v.Add(field, "invalid_number")
		return decimal.Zero
	}
	return d
}

func intField(r *http.Request, field string, v validation.Violations) int {
	s := formValue(r, field)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		v.Add(field, "invalid_number")
	}
	return n
}

// dateField parses a date input. The zero time means empty.
func dateField(r *http.Request, field string, v validation.Violations) time.Time {
	s := formValue(r, field)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		v.Add(field, "invalid_date")
		return time.Time{}
	}
	return t
}

func optionalDate(r *http.Request, field string, v validation.Violations) *time.Time {
	t := dateField(r, field, v)
	if t.IsZero() {
		return nil
	}
	return &t
}

func decodeUser(r *http.Request, editing bool) (models.User, validation.Violations) {
	v := validation.Violations{}
	u := models.User{
		Name:     formValue(r, "name"),
		Email:    strings.ToLower(formValue(r, "email")),
		Phone:    formValue(r, "phone"),
		Role:     models.RoleUser,
		IsActive: checked(r, "isActive"),
		Password: r.FormValue("password"),
	}
	if role, err := strconv.Atoi(r.FormValue("role")); err == nil && (models.Role(role) == models.RoleAdmin || models.Role(role) == models.RoleUser) {
		u.Role = models.Role(role)
	}
	validation.Required("name", u.Name, v)
	validation.Required("email", u.Email, v)
	validation.Email("email", u.Email, v)
	if !editing {
		validation.Required("password", u.Password, v)
	}
	validation.MinLength("password", u.Password, 6, v)
	if u.Password != "" || r.FormValue("confirmPassword") != "" {
		validation.Match("confirmPassword", u.Password, r.FormValue("confirmPassword"), v)
	}
	return u, v
}

func decodeCustomer(r *http.Request, _ bool) (models.Customer, validation.Violations) {
	v := validation.Violations{}
	c := models.Customer{
		CompanyName:    formValue(r, "companyName"),
		DocumentNumber: wire.Digits(r.FormValue("documentNumber")),
		Email:          strings.ToLower(formValue(r, "email")),
		Phone:          formValue(r, "phone"),
		Address:        formValue(r, "address"),
		PostalCode:     formValue(r, "postalCode"),
		ContactPerson:  formValue(r, "contactPerson"),
		IsActive:       checked(r, "isActive"),
	}
	validation.Required("companyName", c.CompanyName, v)
	validation.Required("documentNumber", c.DocumentNumber, v)
	validation.Document("documentNumber", c.DocumentNumber, v)
	validation.Email("email", c.Email, v)
	return c, v
}

func decodeSupplier(r *http.Request, _ bool) (models.Supplier, validation.Violations) {
	v := validation.Violations{}
	s := models.Supplier{
		CompanyName:        formValue(r, "companyName"),
		DocumentNumber:     wire.Digits(r.FormValue("documentNumber")),
		Address:            formValue(r, "address"),
		Number:             formValue(r, "number"),
		Neighborhood:       formValue(r, "neighborhood"),
		City:               formValue(r, "city"),
		State:              strings.ToUpper(formValue(r, "state")),
		PostalCode:         formValue(r, "postalCode"),
		Phone:              formValue(r, "phone"),
		Email:              strings.ToLower(formValue(r, "email")),
		RegistrationStatus: strings.ToUpper(formValue(r, "registrationStatus")),
		BranchType:         strings.ToUpper(formValue(r, "branchType")),
	}
	validation.Required("companyName", s.CompanyName, v)
	validation.Required("documentNumber", s.DocumentNumber, v)
	validation.Document("documentNumber", s.DocumentNumber, v)
	validation.Email("email", s.Email, v)
	return s, v
}

func decodeProduct(r *http.Request, _ bool) (models.Product, validation.Violations) {
	v := validation.Violations{}
	p := models.Product{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Category:    formValue(r, "category"),
		Barcode:     formValue(r, "barcode"),
		Status:      models.ProductActive,
	}
	if strings.EqualFold(formValue(r, "status"), models.ProductInactive) {
		p.Status = models.ProductInactive
	}
	p.PurchasePrice = moneyField(r, "purchasePrice", v)
	p.SalePrice = moneyField(r, "salePrice", v)
	p.StockQuantity = intField(r, "stockQuantity", v)

	validation.Required("name", p.Name, v)
	validation.NonNegativeDecimal("purchasePrice", p.PurchasePrice, v)
	validation.NonNegativeDecimal("salePrice", p.SalePrice, v)
	validation.NonNegativeInt("stockQuantity", p.StockQuantity, v)
	return p, v
}

var hundred = decimal.NewFromInt(100)

// decodeBudget reads the header fields and the item rows. Item rows arrive as
// parallel itemId/itemDescription/itemQuantity/itemUnitPrice lists; rows left
// completely blank are ignored.
func decodeBudget(r *http.Request, _ bool) (models.Budget, validation.Violations) {
	v := validation.Violations{}
	b := models.Budget{
		BudgetNumber: formValue(r, "budgetNumber"),
		CustomerName: formValue(r, "customerName"),
		Email:        strings.ToLower(formValue(r, "email")),
		Phone:        formValue(r, "phone"),
		Address:      formValue(r, "address"),
		IssueDate:    dateField(r, "issueDate", v),
		DueDate:      optionalDate(r, "dueDate", v),
	}
	b.Discount = moneyField(r, "discount", v)
	b.Tax = moneyField(r, "tax", v)

	ids := r.Form["itemId"]
	descs := r.Form["itemDescription"]
	qtys := r.Form["itemQuantity"]
	prices := r.Form["itemUnitPrice"]
	at := func(list []string, i int) string {
		if i < len(list) {
			return strings.TrimSpace(list[i])
		}
		return ""
	}
	for i := range descs {
		id, desc, qty, price := at(ids, i), at(descs, i), at(qtys, i), at(prices, i)
		if id == "" && desc == "" && qty == "" && price == "" {
			continue
		}
		field := fmt.Sprintf("items.%d", len(b.Items))
		it := models.BudgetItem{Description: desc}
		if n, err := strconv.ParseUint(id, 10, 64); err == nil {
			it.ID = uint(n)
		}
		n, err := strconv.Atoi(qty)
		if qty != "" && err != nil {
			v.Add(field, "invalid_number")
		}
		it.Quantity = n
		p, err := parseMoney(price)
		if err != nil {
			v.Add(field, "invalid_number")
		}
		it.UnitPrice = p
		if desc == "" {
			v.Add(field, "required")
		}
		if it.Quantity <= 0 {
			v.Add(field, "must_be_positive")
		}
		if it.UnitPrice.IsNegative() {
			v.Add(field, "must_not_be_negative")
		}
		b.Items = append(b.Items, it)
	}

	validation.Required("customerName", b.CustomerName, v)
	validation.Email("email", b.Email, v)
	if len(b.Items) == 0 {
		v.Add("items", "items_required")
	}
	validation.NonNegativeDecimal("discount", b.Discount, v)
	validation.RangeDecimal("tax", b.Tax, decimal.Zero, hundred, v)
	if b.IssueDate.IsZero() && !v.Has("issueDate") {
		b.IssueDate = today()
	}
	if b.DueDate != nil && b.DueDate.Before(b.IssueDate) {
		v.Add("dueDate", "invalid_date")
	}
	return b, v
}

func decodePayable(r *http.Request, _ bool) (models.AccountsPayable, validation.Violations) {
	v := validation.Violations{}
	a := models.AccountsPayable{
		SupplierName: formValue(r, "supplierName"),
		Description:  formValue(r, "description"),
		Amount:       moneyField(r, "amount", v),
		DueDate:      dateField(r, "dueDate", v),
		Status:       services.Payables.Normalize(r.FormValue("status")),
		PaymentDate:  optionalDate(r, "paymentDate", v),
	}
	services.Payables.Validate("supplierName", a.SupplierName, a.Amount, a.DueDate, a.Status, a.PaymentDate, v)
	a.PaymentDate = services.Payables.PaymentDate(a.Status, a.PaymentDate)
	return a, v
}

func decodeReceivable(r *http.Request, _ bool) (models.AccountsReceivable, validation.Violations) {
	v := validation.Violations{}
	a := models.AccountsReceivable{
		CustomerName: formValue(r, "customerName"),
		Description:  formValue(r, "description"),
		Amount:       moneyField(r, "amount", v),
		DueDate:      dateField(r, "dueDate", v),
		Status:       services.Receivables.Normalize(r.FormValue("status")),
		PaymentDate:  optionalDate(r, "paymentDate", v),
	}
	services.Receivables.Validate("customerName", a.CustomerName, a.Amount, a.DueDate, a.Status, a.PaymentDate, v)
	a.PaymentDate = services.Receivables.PaymentDate(a.Status, a.PaymentDate)
	return a, v
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
