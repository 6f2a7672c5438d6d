package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

// Supported locale tags. DefaultLanguage is the fallback for
// unknown or missing tags.
const (
	LanguageEnglish = "en-US"
	LanguageSpanish = "es-ES"

	DefaultLanguage = LanguageEnglish
)

//go:embed locales/*.json
var localeFS embed.FS

var bundles map[string]map[string]string

func init() {
	bundles = make(map[string]map[string]string, len(Supported()))
	for _, tag := range Supported() {
		raw, err := localeFS.ReadFile("locales/" + tag + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale bundle %s: %v", tag, err))
		}
		var bundle map[string]string
		if err := json.Unmarshal(raw, &bundle); err != nil {
			panic(fmt.Sprintf("i18n: invalid locale bundle %s: %v", tag, err))
		}
		bundles[tag] = bundle
	}
}

// Supported returns the fixed set of supported locale tags
func Supported() []string {
	return []string{LanguageEnglish, LanguageSpanish}
}

// IsSupported reports whether tag is a supported locale
func IsSupported(tag string) bool {
	_, ok := bundles[tag]
	return ok
}

// Resolve maps an arbitrary tag to a supported locale, falling back to
// the default. Bare language codes ("es", "es-MX") match on the primary
// subtag so Accept-Language headers resolve sensibly.
func Resolve(tag string) string {
	if IsSupported(tag) {
		return tag
	}

	primary := strings.ToLower(tag)
	if idx := strings.IndexAny(primary, "-_;,"); idx >= 0 {
		primary = primary[:idx]
	}
	for _, supported := range Supported() {
		if strings.HasPrefix(strings.ToLower(supported), primary+"-") {
			return supported
		}
	}

	return DefaultLanguage
}

// T renders the message for key in the given locale. An unknown locale
// falls back to the default bundle; an unknown key falls back to the
// default bundle's text, or the raw key when the key exists nowhere.
func T(lang, key string, args ...any) string {
	bundle, ok := bundles[lang]
	if !ok {
		bundle = bundles[DefaultLanguage]
	}

	text, ok := bundle[key]
	if !ok {
		text, ok = bundles[DefaultLanguage][key]
		if !ok {
			return key
		}
	}

	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// HasKey reports whether key exists in the default bundle
func HasKey(key string) bool {
	_, ok := bundles[DefaultLanguage][key]
	return ok
}

// Bundle returns a copy of the key/text map for a locale
func Bundle(lang string) map[string]string {
	bundle, ok := bundles[lang]
	if !ok {
		bundle = bundles[DefaultLanguage]
	}

	out := make(map[string]string, len(bundle))
	for k, v := range bundle {
		out[k] = v
	}
	return out
}
