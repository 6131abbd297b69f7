// Package prefs keeps client-side UI preferences in a durable local key-value store.
package prefs

import (
	"context"
	"errors"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/traductor/traductor/app/enum"
	"github.com/traductor/traductor/app/i18n"
	"github.com/traductor/traductor/app/store"
)

//go:generate moq -out mocks/kvstore.go -pkg mocks -skip-ensure -fmt goimports . KVStore
//go:generate moq -out mocks/view.go -pkg mocks -skip-ensure -fmt goimports . View

// ThemeKey is the store key holding the persisted theme.
const ThemeKey = "prefs/theme"

// KVStore defines the storage operations the preference store needs.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// View is the UI surface showing the theme: page styling, toggle control and its label.
type View interface {
	SetDark(dark bool)
	SetToggle(checked bool)
	SetLabel(label string)
}

// Messages renders localized labels.
type Messages interface {
	T(key string, data map[string]any) string
}

// ThemeStore reads, applies and persists the theme preference.
type ThemeStore struct {
	store KVStore
	msgs  Messages
	key   string
}

// NewThemeStore makes a theme store on top of st.
func NewThemeStore(st KVStore, msgs Messages) *ThemeStore {
	return &ThemeStore{store: st, msgs: msgs, key: store.NormalizeKey(ThemeKey)}
}

// Load returns the persisted theme. Missing or unparsable values read as light.
func (s *ThemeStore) Load(ctx context.Context) (enum.Theme, error) {
	val, err := s.store.Get(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return enum.ThemeLight, nil
	}
	if err != nil {
		return enum.ThemeLight, fmt.Errorf("failed to load theme: %w", err)
	}
	theme, err := enum.ParseTheme(string(val))
	if err != nil {
		log.Printf("[WARN] ignoring stored theme %q", string(val))
		return enum.ThemeLight, nil
	}
	return theme, nil
}

// Init reads the persisted preference once and applies it to the view.
func (s *ThemeStore) Init(ctx context.Context, view View) (enum.Theme, error) {
	theme, err := s.Load(ctx)
	if err != nil {
		// keep the view usable in light mode even if the store is broken
		s.Apply(view, enum.ThemeLight)
		return enum.ThemeLight, err
	}
	s.Apply(view, theme)
	return theme, nil
}

// Toggle flips the persisted theme, applies it to the view and stores it.
func (s *ThemeStore) Toggle(ctx context.Context, view View) (enum.Theme, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.Set(ctx, view, next); err != nil {
		return current, err
	}
	return next, nil
}

// Set applies theme to the view and persists it, as on a change of the toggle control.
func (s *ThemeStore) Set(ctx context.Context, view View, theme enum.Theme) error {
	s.Apply(view, theme)
	if err := s.store.Set(ctx, s.key, []byte(theme.String())); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	log.Printf("[DEBUG] theme set to %s", theme)
	return nil
}

// Apply reflects theme on view without touching the store.
func (s *ThemeStore) Apply(view View, theme enum.Theme) {
	if view == nil {
		return
	}
	view.SetDark(theme.IsDark())
	view.SetToggle(theme.IsDark())
	view.SetLabel(s.Label(theme))
}

// Label returns the toggle label for theme.
func (s *ThemeStore) Label(theme enum.Theme) string {
	if theme.IsDark() {
		return s.msgs.T(i18n.MsgThemeDark, nil)
	}
	return s.msgs.T(i18n.MsgThemeLight, nil)
}
