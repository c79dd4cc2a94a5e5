package components

import (
	"strings"
	"testing"
)

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	if s.CheckboxOn == "" {
		t.Error("CheckboxOn is empty")
	}
	if s.CheckboxOff == "" {
		t.Error("CheckboxOff is empty")
	}
	if s.CheckboxOn == s.CheckboxOff {
		t.Error("checkbox states must be distinguishable")
	}
}

func TestRenderBanner(t *testing.T) {
	s := DefaultStyles()
	out := RenderBanner(s)
	if out == "" {
		t.Fatal("RenderBanner returned empty string")
	}
	if !strings.Contains(out, "AnarQ&Q") {
		t.Errorf("banner should name the product, got %q", out)
	}
}

func TestNewSpinner(t *testing.T) {
	s := DefaultStyles()
	sp := NewSpinner(s)
	// Spinner should produce a non-empty frame.
	if sp.View() == "" {
		t.Error("spinner View() is empty")
	}
}
