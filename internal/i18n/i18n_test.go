package i18n

import "testing"

func TestBundlesCarryTheSameKeys(t *testing.T) {
	base := Bundle(LanguageEnglish)
	if len(base) == 0 {
		t.Fatal("default bundle is empty")
	}

	for _, lang := range Supported() {
		bundle := Bundle(lang)
		if len(bundle) != len(base) {
			t.Fatalf("%s has %d keys, want %d", lang, len(bundle), len(base))
		}
		for key := range base {
			if _, ok := bundle[key]; !ok {
				t.Fatalf("%s is missing key %q", lang, key)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en-US", LanguageEnglish},
		{"es-ES", LanguageSpanish},
		{"es", LanguageSpanish},
		{"es-MX", LanguageSpanish},
		{"en", LanguageEnglish},
		{"fr-FR", DefaultLanguage},
		{"", DefaultLanguage},
		{"nonsense", DefaultLanguage},
	}

	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	en := T(LanguageEnglish, "error.campaign.not.found")
	es := T(LanguageSpanish, "error.campaign.not.found")
	if en == "" || es == "" {
		t.Fatal("expected non-empty translations")
	}
	if en == es {
		t.Fatalf("expected distinct translations, both were %q", en)
	}
}

func TestTranslateUnknownLocaleFallsBack(t *testing.T) {
	got := T("fr-FR", "error.campaign.not.found")
	want := T(DefaultLanguage, "error.campaign.not.found")
	if got != want {
		t.Fatalf("got %q, want default locale text %q", got, want)
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	const key = "no.such.key.anywhere"
	if got := T(LanguageEnglish, key); got != key {
		t.Fatalf("got %q, want the raw key", got)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported(LanguageEnglish) || !IsSupported(LanguageSpanish) {
		t.Fatal("known locales reported unsupported")
	}
	if IsSupported("de-DE") {
		t.Fatal("unknown locale reported supported")
	}
}
