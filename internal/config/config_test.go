package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/dropdown/pkg/dropdown"
)

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		want := Default()
		if cfg != want {
			t.Errorf("Load() = %+v, want %+v", cfg, want)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, ".dropdown"), 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		data := `{"placement": "top-end", "typeahead": {"timeout": "750ms", "fuzzy": true}, "max_visible": 4}`
		if err := os.WriteFile(Path(dir), []byte(data), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Placement != "top-end" {
			t.Errorf("Placement = %q, want top-end", cfg.Placement)
		}
		if cfg.Typeahead.Timeout != 750*time.Millisecond || !cfg.Typeahead.Fuzzy {
			t.Errorf("Typeahead = %+v, want 750ms fuzzy", cfg.Typeahead)
		}
		if cfg.MaxVisible != 4 {
			t.Errorf("MaxVisible = %d, want 4", cfg.MaxVisible)
		}
		if !cfg.ArrowIcon {
			t.Error("ArrowIcon should keep its default")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		os.MkdirAll(filepath.Join(dir, ".dropdown"), 0755)
		os.WriteFile(Path(dir), []byte("{not json"), 0644)

		if _, err := Load(dir); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})

	t.Run("invalid placement", func(t *testing.T) {
		dir := t.TempDir()
		os.MkdirAll(filepath.Join(dir, ".dropdown"), 0755)
		os.WriteFile(Path(dir), []byte(`{"placement": "middle"}`), 0644)

		_, err := Load(dir)
		if !errors.Is(err, dropdown.ErrInvalidPlacement) {
			t.Errorf("err = %v, want ErrInvalidPlacement", err)
		}
	})
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DROPDOWN_PLACEMENT", "left")
	t.Setenv("DROPDOWN_TYPEAHEAD_FUZZY", "true")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Placement != "left" {
		t.Errorf("Placement = %q, want left", cfg.Placement)
	}
	if !cfg.Typeahead.Fuzzy {
		t.Error("Typeahead.Fuzzy should come from the environment")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Placement = "right-start"
	cfg.Trigger = "hover"
	cfg.Inline = true
	cfg.Typeahead.Timeout = time.Second
	cfg.Log.File = "/tmp/dropdown.log"

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestSet(t *testing.T) {
	dir := t.TempDir()

	if err := Set(dir, "typeahead.timeout", "300ms"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(dir, "inline", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Typeahead.Timeout != 300*time.Millisecond || !cfg.Inline {
		t.Errorf("cfg = %+v, want 300ms inline", cfg)
	}

	tests := []struct {
		key, value string
	}{
		{"nope", "x"},
		{"inline", "maybe"},
		{"max_visible", "-2"},
		{"trigger", "press"},
	}
	for _, tt := range tests {
		if err := Set(dir, tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) should fail", tt.key, tt.value)
		}
	}
	if err := Set(dir, "nope", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("err = %v, want ErrUnknownKey", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Placement = "top"
	d := dropdown.New("x", nil, cfg.Options()...)
	if d.Placement() != dropdown.PlacementTop {
		t.Errorf("Placement = %q, want top", d.Placement())
	}
}
