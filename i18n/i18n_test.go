package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("pt-BR,pt;q=0.8") != "pt" {
		t.Fatalf("expected pt")
	}
	if DetectLanguage("fr-FR,en;q=0.5") != "en" {
		t.Fatalf("expected first supported language")
	}
	if DetectLanguage("") != "pt" {
		t.Fatalf("expected default pt")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("pt", "required") != "Campo obrigatório" {
		t.Fatalf("expected Campo obrigatório")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to pt translation
	if T("es", "required") != "Campo obrigatório" {
		t.Fatalf("expected pt fallback for es lang")
	}
	// missing en entry -> pt entry
	if T("en", "app_name") != "Depósito do Pitty" {
		t.Fatalf("expected pt fallback for missing en key")
	}
}

func TestCataloguesAgree(t *testing.T) {
	for code := range en {
		if _, ok := pt[code]; !ok {
			t.Errorf("code %q translated to en but missing in pt", code)
		}
	}
}
