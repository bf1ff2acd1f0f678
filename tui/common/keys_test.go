package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ToggleHints.Keys()) == 0 || km.ToggleHints.Keys()[0] != "?" {
		t.Fatalf("expected ? key binding for hints")
	}
	if len(km.ForceQuit.Keys()) == 0 || km.ForceQuit.Keys()[0] != "ctrl+c" {
		t.Fatalf("expected ctrl+c force quit binding")
	}
	if km.Like.Keys()[0] != "l" || km.Open.Keys()[0] != "enter" {
		t.Fatalf("like/open must stay on l/enter")
	}
	if len(km.Nav.Keys()) != 4 {
		t.Fatalf("expected one nav key per bottom item, got %v", km.Nav.Keys())
	}
}
