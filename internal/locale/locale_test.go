package locale

import "testing"

func TestDefaultAndToggle(t *testing.T) {
	loc := Default()
	if loc.Language != English || loc.Country != "US" {
		t.Fatalf("unexpected default locale: %+v", loc)
	}

	cz := loc.Toggle()
	if cz.Language != Czech || cz.Country != "CZ" {
		t.Fatalf("unexpected toggled locale: %+v", cz)
	}
	if back := cz.Toggle(); back != loc {
		t.Fatalf("expected toggle to round-trip, got %+v", back)
	}
}

func TestLookupAndFallback(t *testing.T) {
	en := Default()
	cz := en.Toggle()

	if got := en.T("menu_login"); got != "2 - Log in" {
		t.Errorf("unexpected english entry: %q", got)
	}
	if got := cz.T("menu_login"); got != "2 - Přihlášení" {
		t.Errorf("unexpected czech entry: %q", got)
	}
	if got := cz.T("no_such_key"); got != "no_such_key" {
		t.Errorf("expected missing key to fall through, got %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	for key := range messages[English] {
		if _, ok := messages[Czech][key]; !ok {
			t.Errorf("czech catalog missing %q", key)
		}
	}
	for key := range messages[Czech] {
		if _, ok := messages[English][key]; !ok {
			t.Errorf("english catalog missing %q", key)
		}
	}
}
