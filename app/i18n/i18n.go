// Package i18n renders user-facing messages from embedded toml catalogs.
package i18n

import (
	"embed"
	"fmt"

	log "github.com/go-pkgz/lgr"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message IDs shared by the client, prefs and web packages.
const (
	MsgWarnEmpty    = "warn_empty"
	MsgWarnSameLang = "warn_same_lang"
	MsgInProgress   = "in_progress"
	MsgTranslated   = "translated"
	MsgFailed       = "failed"
	MsgThemeDark    = "theme_dark"
	MsgThemeLight   = "theme_light"
)

// Localizer renders messages for one locale, falling back to the bundle default.
type Localizer struct {
	locale    string
	localizer *i18n.Localizer
}

// Bundle holds all loaded catalogs.
type Bundle struct {
	bundle *i18n.Bundle
	def    language.Tag
}

// NewBundle loads the embedded catalogs with defaultLocale (e.g. "es") as the fallback language.
func NewBundle(defaultLocale string) (*Bundle, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.es.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return &Bundle{bundle: bundle, def: tag}, nil
}

// Localizer returns a localizer for locale; empty locale means the default one.
func (b *Bundle) Localizer(locale string) *Localizer {
	langs := []string{}
	if locale != "" {
		langs = append(langs, locale)
	}
	langs = append(langs, b.def.String())
	return &Localizer{locale: langs[0], localizer: i18n.NewLocalizer(b.bundle, langs...)}
}

// Locale returns the preferred locale of this localizer.
func (l *Localizer) Locale() string {
	return l.locale
}

// T renders the message identified by key with optional template data.
// If the key is not found in any locale, the key itself is returned.
func (l *Localizer) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		log.Printf("[DEBUG] localize failed, key=%s, locale=%s: %v", key, l.locale, err)
		return key
	}
	return msg
}
