package wire

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/depositodopitty/pit/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, ParseDate("2025-10-01").Equal(want))
	assert.True(t, ParseDate("2025-10-01T13:45:00Z").Equal(want))
	assert.True(t, ParseDate(" 2025-10-01T00:00:00 ").Equal(want))
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("01/10/2025").IsZero())
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2025-10-01", FormatDate(want))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678000195", Digits("12.345.678/0001-95"))
	assert.Equal(t, "", Digits("abc"))
}

func TestDecodeList(t *testing.T) {
	bare, err := DecodeList[Supplier]([]byte(`[{"id":1,"companyName":"A"}]`))
	require.NoError(t, err)
	require.Len(t, bare, 1)
	assert.Equal(t, "A", bare[0].CompanyName)

	dados, err := DecodeList[Supplier]([]byte(`{"dados":[{"id":2},{"id":3}]}`))
	require.NoError(t, err)
	assert.Len(t, dados, 2)

	data, err := DecodeList[Supplier]([]byte(`{"data":[{"id":4}]}`))
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, uint(4), data[0].ID)

	empty, err := DecodeList[Supplier]([]byte(" null "))
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = DecodeList[Supplier]([]byte(`"nope"`))
	assert.Error(t, err)
}

// Each case is a normalised backend value; mapping it into a model and back
// must reproduce it exactly.
func TestWireRoundTrip(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		in := User{ID: 3, Name: "Ana", Email: "ana@pit.com", Phone: "11988887777", Role: models.RoleAdmin, Password: "s3cret", IsActive: true}
		assert.Equal(t, in, UserToWire(UserFromWire(in)))
	})
	t.Run("customer", func(t *testing.T) {
		in := Customer{ID: 9, DocumentNumber: "12345678000195", CompanyName: "XPTO Ltda", Phone: "1133334444",
			Email: "contato@xpto.com", Address: "Rua das Flores, 123", PostalCode: "01001000", ContactPerson: "João",
			IsActive: boolp(false), CreatedAt: "2025-10-01T12:00:00Z", UpdatedAt: "2025-10-02T08:30:15.5Z"}
		assert.Equal(t, in, CustomerToWire(CustomerFromWire(in)))
	})
	t.Run("supplier", func(t *testing.T) {
		in := Supplier{ID: 1, DocumentNumber: "11222333000181", CompanyName: "ABC", Address: "Av. Brasil", Number: "500",
			Neighborhood: "Centro", City: "Belo Horizonte", State: "MG", PostalCode: "30140000", Phone: "31977775555",
			RegistrationStatus: "ATIVA", BranchType: "MATRIZ", Email: "abc@abc.com", CreatedAt: "2025-01-01T00:00:00Z"}
		assert.Equal(t, in, SupplierToWire(SupplierFromWire(in)))
	})
	t.Run("product", func(t *testing.T) {
		in := Product{ID: 5, Name: "Cimento", Description: "50kg", Price: 39.9, PurchasePrice: 25.5, SalePrice: 39.9,
			Category: "Construção", StockQuantity: 120, Status: models.ProductActive, Barcode: "7891234567895"}
		assert.Equal(t, in, ProductToWire(ProductFromWire(in)))
	})
	t.Run("budget", func(t *testing.T) {
		in := Budget{ID: 1, BudgetNumber: "ORC-123456", CustomerName: "Empresa XPTO", Email: "x@x.com", Phone: "1198888777",
			Address: "Rua A", IssueDate: "2025-10-01", DueDate: strp("2025-10-10"), Discount: 10, Tax: 12, Total: 2502,
			Items: []BudgetItem{
				{ID: 1, BudgetID: 1, Description: "Consultoria", Quantity: 2, UnitPrice: 500, Total: 1000},
				{ID: 2, BudgetID: 1, Description: "Treinamento", Quantity: 1, UnitPrice: 1234.56, Total: 1234.56},
			}}
		assert.Equal(t, in, BudgetToWire(BudgetFromWire(in)))
	})
	t.Run("payable", func(t *testing.T) {
		in := AccountsPayable{ID: 2, SupplierName: "Energia SA", Description: "Fatura", Amount: 310.45,
			DueDate: "2025-09-10", PaymentDate: strp("2025-09-09"), Status: models.PayablePaid}
		assert.Equal(t, in, AccountsPayableToWire(AccountsPayableFromWire(in)))
	})
	t.Run("receivable", func(t *testing.T) {
		in := AccountsReceivable{ID: 4, CustomerName: "Cliente", Description: "Venda", Amount: 99.99,
			DueDate: "2025-09-10", Status: models.ReceivableOverdue, IsOverdue: true}
		assert.Equal(t, in, AccountsReceivableToWire(AccountsReceivableFromWire(in)))
	})
}

func TestModelRoundTripKeepsValues(t *testing.T) {
	due := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	ap := models.AccountsPayable{SupplierName: "ABC", Amount: decimal.RequireFromString("150.75"), DueDate: due, Status: models.PayablePending}
	ap.ID = 8

	got := AccountsPayableFromWire(AccountsPayableToWire(ap))
	assert.Equal(t, uint(8), got.ID)
	assert.True(t, got.Amount.Equal(ap.Amount), "amount %s", got.Amount)
	assert.True(t, got.DueDate.Equal(due))
	assert.Nil(t, got.PaymentDate)
}

func TestCustomerDefaultsAndSanitising(t *testing.T) {
	c := CustomerFromWire(Customer{CompanyName: "Sem status"})
	assert.True(t, c.IsActive, "missing isActive should default to true")

	out := CustomerToWire(models.Customer{DocumentNumber: "123.456.789-09"})
	assert.Equal(t, "12345678909", out.DocumentNumber)
	require.NotNil(t, out.IsActive)
	assert.False(t, *out.IsActive)
}

func TestProductLegacyPrice(t *testing.T) {
	p := ProductFromWire(Product{Name: "Areia", Price: 12})
	assert.True(t, p.SalePrice.Equal(decimal.NewFromInt(12)))
}

func TestJSONUsesCamelCase(t *testing.T) {
	b, err := json.Marshal(AccountsPayableToWire(models.AccountsPayable{SupplierName: "X"}))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"id", "supplierName", "description", "amount", "dueDate", "paymentDate", "status", "isOverdue"} {
		assert.Contains(t, m, k)
	}
	assert.Nil(t, m["paymentDate"])
}

func TestTimestampWithoutZone(t *testing.T) {
	c := CustomerFromWire(Customer{CreatedAt: "2025-10-01T10:11:12.123"})
	assert.Equal(t, 2025, c.CreatedAt.Year())
	assert.Equal(t, 10, c.CreatedAt.Hour())
}
