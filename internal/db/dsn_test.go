package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := map[string]string{
		`  "postgres://u:p@db:5432/pit"  `: "postgres://u:p@db:5432/pit",
		"host=db  user=pit   dbname=pit":   "host=db user=pit dbname=pit sslmode=disable",
		"host=db user=pit sslmode=require": "host=db user=pit sslmode=require",
		"file:pit.db":                      "file:pit.db",
		"":                                 "",
	}
	for in, want := range cases {
		if got := NormalizeDSN(in); got != want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDialect(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@db/pit":           DialectPostgres,
		"postgresql://db/pit":             DialectPostgres,
		"host=db user=pit dbname=pit":     DialectPostgres,
		"file:pit.db":                     DialectSQLite,
		"file:x?mode=memory&cache=shared": DialectSQLite,
		"/var/lib/pit/pit.sqlite":         DialectSQLite,
		":memory:":                        DialectSQLite,
		"mysql://root@localhost/pit":      "",
	}
	for in, want := range cases {
		if got := Dialect(in); got != want {
			t.Errorf("Dialect(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToURLDSN(t *testing.T) {
	got := ToURLDSN("host=db port=5432 user=pit password=s3cr3t dbname=pit sslmode=disable")
	want := "postgres://pit:s3cr3t@db:5432/pit?sslmode=disable"
	if got != want {
		t.Fatalf("ToURLDSN = %q, want %q", got, want)
	}
}

func TestMaskDSN(t *testing.T) {
	if got := MaskDSN("postgres://pit:s3cr3t@db/pit"); got != "postgres://pit:***@db/pit" {
		t.Errorf("url form: %q", got)
	}
	if got := MaskDSN("host=db password=s3cr3t dbname=pit"); got != "host=db password=*** dbname=pit" {
		t.Errorf("kv form: %q", got)
	}
}
