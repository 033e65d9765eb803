package domain

import "testing"

func TestNewBingoItem(t *testing.T) {
	item := NewBingoItem(0, "2+2", "4")
	if item.ID != "item-0" {
		t.Errorf("Expected ID item-0, got %s", item.ID)
	}
	if item.Problem != "2+2" || item.Answer != "4" {
		t.Errorf("Expected fields to be carried verbatim, got %+v", item)
	}

	// Missing fields are repaired with the sentinel, never dropped.
	item = NewBingoItem(3, "", "4")
	if item.Problem != ItemSentinel {
		t.Errorf("Expected sentinel problem, got %q", item.Problem)
	}
	if item.ID != "item-3" {
		t.Errorf("Expected ID item-3, got %s", item.ID)
	}

	item = NewBingoItem(4, "2+2", "")
	if item.Answer != ItemSentinel {
		t.Errorf("Expected sentinel answer, got %q", item.Answer)
	}
}

func TestFallbackSubjectContext(t *testing.T) {
	ctx := FallbackSubjectContext()
	if ctx.Subject != "Algemeen" {
		t.Errorf("Expected fallback subject Algemeen, got %s", ctx.Subject)
	}
	if ctx.IsMath {
		t.Error("Expected fallback context to be non-math")
	}
}

func TestGenerationModeValidate(t *testing.T) {
	for _, mode := range []GenerationMode{ModeExact, ModeSimilar} {
		if err := mode.Validate(); err != nil {
			t.Errorf("Expected mode %s to be valid, got %v", mode, err)
		}
	}

	for _, mode := range []GenerationMode{"", "verbatim", "EXACT"} {
		if err := mode.Validate(); err != ErrInvalidMode {
			t.Errorf("Expected mode %q to be invalid, got %v", mode, err)
		}
	}
}
