package models

import "testing"

func TestKeyAndWithKey(t *testing.T) {
	c := Customer{CompanyName: "ACME"}
	if got := Key(c); got != 0 {
		t.Fatalf("Key() = %d, want 0", got)
	}
	c2 := WithKey(c, 7)
	if got := Key(c2); got != 7 {
		t.Fatalf("Key() = %d, want 7", got)
	}
	if c.ID != 0 {
		t.Fatalf("WithKey mutated the original value")
	}
	if c2.CompanyName != "ACME" {
		t.Fatalf("WithKey lost fields: %+v", c2)
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "Administrador"},
		{RoleUser, "Usuário"},
		{Role(9), "Desconhecido"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestAllListsEveryEntity(t *testing.T) {
	if got := len(All()); got != 8 {
		t.Fatalf("All() returned %d models, want 8", got)
	}
}
