package themes

import (
	"sync"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.ActiveName() != PresetDark {
		t.Errorf("expected dark default, got %q", r.ActiveName())
	}
	if r.Active() == nil {
		t.Fatal("expected non-nil active theme")
	}
}

func TestRegistry_SetActive(t *testing.T) {
	r := NewRegistry()

	if !r.SetActive(PresetLight) {
		t.Fatal("SetActive(light) = false")
	}
	if r.ActiveName() != PresetLight {
		t.Errorf("active = %q, want light", r.ActiveName())
	}

	if r.SetActive("nonexistent") {
		t.Error("SetActive with unknown preset should return false")
	}
	if r.ActiveName() != PresetLight {
		t.Error("failed SetActive must not change the active theme")
	}
}

func TestRegistry_ListPresets(t *testing.T) {
	presets := NewRegistry().ListPresets()
	if len(presets) != 2 {
		t.Errorf("expected 2 presets, got %d", len(presets))
	}
}

func TestGlobal(t *testing.T) {
	if Global() != Global() {
		t.Error("Global() should return the same registry")
	}
}

func TestTheme_Clone(t *testing.T) {
	orig := DarkTheme()
	clone := orig.Clone()
	if clone == orig {
		t.Error("Clone() should return a distinct pointer")
	}
	clone.Name = "modified"
	if orig.Name == "modified" {
		t.Error("mutating clone must not affect the original")
	}
}

func TestTheme_WithPalette(t *testing.T) {
	themed := DarkTheme().WithPalette(LightPalette())
	if themed.Palette.Background != LightPalette().Background {
		t.Error("WithPalette should adopt the new palette")
	}
}

func TestTheme_HuhTheme(t *testing.T) {
	if DarkTheme().HuhTheme() == nil {
		t.Error("expected non-nil huh theme")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				r.SetActive(PresetLight)
			} else {
				_ = r.Active()
			}
		}(i)
	}
	wg.Wait()
}
