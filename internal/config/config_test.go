package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/redraw-master/internal/platform"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
image: ref.jpg
opacity: 0.75
cursor_interval: 16ms
clipboard_strategy: poll
marker:
  radius: 20
  color: "#00ff0080"
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Image != "ref.jpg" {
		t.Errorf("image: got %q, want %q", cfg.Image, "ref.jpg")
	}
	if cfg.Opacity != 0.75 {
		t.Errorf("opacity: got %v, want 0.75", cfg.Opacity)
	}
	if cfg.CursorInterval != 16*time.Millisecond {
		t.Errorf("cursor_interval: got %v, want 16ms", cfg.CursorInterval)
	}
	if cfg.Strategy() != platform.StrategyPoll {
		t.Errorf("strategy: got %v, want poll", cfg.Strategy())
	}
	if cfg.Marker.Radius != 20 {
		t.Errorf("marker.radius: got %d, want 20", cfg.Marker.Radius)
	}
	if got := cfg.MarkerColor(); got != (color.NRGBA{G: 0xff, A: 0x80}) {
		t.Errorf("marker color: got %+v", got)
	}
	// Untouched fields keep their defaults.
	if cfg.ClipboardInterval != 200*time.Millisecond {
		t.Errorf("clipboard_interval: got %v, want 200ms", cfg.ClipboardInterval)
	}
	if cfg.Zoom.Step != 1.1 {
		t.Errorf("zoom.step: got %v, want 1.1", cfg.Zoom.Step)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"opacity", "opacity: 0", "opacity"},
		{"interval", "cursor_interval: -5ms", "cursor_interval"},
		{"strategy", "clipboard_strategy: sometimes", "clipboard strategy"},
		{"zoom step", "zoom: {step: 1}", "zoom.step"},
		{"zoom range", "zoom: {min: 5, max: 2}", "zoom range"},
		{"radius", "marker: {radius: 500}", "marker.radius"},
		{"color", "marker: {color: red}", "marker.color"},
		{"syntax", "opacity: [", "yaml decode"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Opacity = 2
	cfg.MinWindow = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"opacity", "min_window"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Error("missing optional config should yield defaults")
	}
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true); err == nil {
		t.Error("expected error for missing required config")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte("title: Trace\nmin_window: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Trace" || cfg.MinWindow != 300 {
		t.Errorf("got title %q min_window %d", cfg.Title, cfg.MinWindow)
	}
}

func TestLimits(t *testing.T) {
	l := Default().Limits()
	if l.MinScale != 0.1 || l.MaxScale != 10 || l.ZoomStep != 1.1 || l.MinRadius != 1 || l.MaxRadius != 100 {
		t.Errorf("Limits() = %+v", l)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"00ff00", color.NRGBA{G: 0xff, A: 0xff}},
		{"#0000ff40", color.NRGBA{B: 0xff, A: 0x40}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#fff", "#gggggg", "red"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}
