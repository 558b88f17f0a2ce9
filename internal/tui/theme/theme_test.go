package theme

import (
	"testing"

	"github.com/javiermolinar/berlinclock/internal/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load macchiato theme", themeName: "macchiato", wantName: "macchiato"},
		{name: "load frappe theme", themeName: "frappe", wantName: "frappe"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "name is case-insensitive", themeName: "Latte", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
			if theme.Fg == "" || theme.Accent == "" || theme.Border == "" || theme.Warning == "" {
				t.Errorf("Load(%q) left colors empty: %+v", tt.themeName, theme)
			}
		})
	}
}

func TestLoad_BorderDefaultsToMuted(t *testing.T) {
	theme, err := Load("latte")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if theme.Border != theme.FgMuted {
		t.Errorf("Border = %q, want fg_muted %q", theme.Border, theme.FgMuted)
	}
}

func TestAvailable_AllLoad(t *testing.T) {
	for _, name := range Available() {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		if theme.Name != name {
			t.Errorf("embedded theme %q declares name %q", name, theme.Name)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("FRAPPE") {
		t.Error("IsAvailable(FRAPPE) = false")
	}
	if IsAvailable("light") {
		t.Error("IsAvailable(light) = true")
	}
}

func TestAvailable_AcceptedByConfig(t *testing.T) {
	for _, name := range Available() {
		cfg := config.Default()
		cfg.UI.Theme = name
		if err := cfg.Validate(); err != nil {
			t.Errorf("config rejects theme %q: %v", name, err)
		}
	}
}
