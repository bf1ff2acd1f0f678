package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/chrome"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	v, ok := s.values[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *memStore) Close() error { return nil }

type hint bool

func (h hint) PrefersDark() bool { return bool(h) }

func TestInitial_Resolution(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		getErr error
		dark   bool
		want   domain.Theme
	}{
		{name: "stored light beats dark hint", stored: "light", dark: true, want: domain.ThemeLight},
		{name: "stored dark beats light hint", stored: "dark", dark: false, want: domain.ThemeDark},
		{name: "no stored value uses dark hint", dark: true, want: domain.ThemeDark},
		{name: "no stored value, no hint is light", want: domain.ThemeLight},
		{name: "invalid stored value falls through to hint", stored: "sepia", dark: true, want: domain.ThemeDark},
		{name: "store error falls through to hint", getErr: errors.New("boom"), dark: true, want: domain.ThemeDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.getErr = tt.getErr
			if tt.stored != "" {
				store.values[domain.ThemePreferenceKey] = tt.stored
			}
			c := New(chrome.New(chrome.Options{ThemeButton: true}), store, hint(tt.dark), nil)
			if got := c.Initial(context.Background()); got != tt.want {
				t.Fatalf("Initial()=%q want %q", got, tt.want)
			}
		})
	}
}

func TestApply_UpdatesDocumentAndStore(t *testing.T) {
	store := newMemStore()
	doc := chrome.New(chrome.Options{ThemeButton: true})
	c := New(doc, store, nil, nil)

	c.Apply(context.Background(), domain.ThemeLight)
	if !doc.Root.LightMode || doc.ThemeButton.Icon != IconLight || doc.Meta.Color != MetaLight {
		t.Fatalf("light not applied: %+v %+v %+v", doc.Root, doc.ThemeButton, doc.Meta)
	}
	if store.values[domain.ThemePreferenceKey] != "light" {
		t.Fatalf("expected light persisted, got %q", store.values[domain.ThemePreferenceKey])
	}

	c.Apply(context.Background(), domain.ThemeDark)
	if doc.Root.LightMode || doc.ThemeButton.Icon != IconDark || doc.Meta.Color != MetaDark {
		t.Fatalf("dark not applied: %+v %+v %+v", doc.Root, doc.ThemeButton, doc.Meta)
	}
}

func TestApply_WriteFailureStillAppliesVisuals(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("disk full")
	doc := chrome.New(chrome.Options{ThemeButton: true})

	New(doc, store, nil, nil).Apply(context.Background(), domain.ThemeLight)
	if !doc.Root.LightMode {
		t.Fatalf("expected light mode despite write failure")
	}
}

func TestToggle_ReadsRootFlag(t *testing.T) {
	store := newMemStore()
	doc := chrome.New(chrome.Options{ThemeButton: true})
	c := New(doc, store, nil, nil)
	c.Start(context.Background())
	if !doc.Root.LightMode {
		t.Fatalf("expected light start with no preference and no hint")
	}

	// The flag is the source of truth, not the store.
	doc.Root.LightMode = false
	if got := c.Toggle(context.Background()); got != domain.ThemeLight {
		t.Fatalf("toggle from dark flag should give light, got %q", got)
	}
	if got := c.Toggle(context.Background()); got != domain.ThemeDark {
		t.Fatalf("second toggle should give dark, got %q", got)
	}
	if store.values[domain.ThemePreferenceKey] != "dark" {
		t.Fatalf("expected dark persisted, got %q", store.values[domain.ThemePreferenceKey])
	}
}

func TestController_InertWithoutButton(t *testing.T) {
	store := newMemStore()
	store.values[domain.ThemePreferenceKey] = "light"
	doc := chrome.New(chrome.Options{})
	c := New(doc, store, hint(true), nil)

	c.Start(context.Background())
	c.Toggle(context.Background())
	if doc.Root.LightMode || doc.Meta.Color != "" {
		t.Fatalf("controller without button must not touch the document")
	}
	if store.sets != 0 {
		t.Fatalf("controller without button must not write preferences, got %d writes", store.sets)
	}
}
