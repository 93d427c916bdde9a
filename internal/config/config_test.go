package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestManager_LoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(m.Path()); err != nil {
		t.Errorf("config file not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(m.DataDir(), ".gitignore")); err != nil {
		t.Errorf(".gitignore not created: %v", err)
	}

	cfg := m.Get()
	if cfg.Theme != "campus" || cfg.IDStrategy != "counter" || cfg.Timeout() != 30*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestManager_LoadExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CAMPUS_MAP", "maps/sjsu.md")

	if err := os.MkdirAll(filepath.Join(dir, DirName), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"theme":"dark","map_path":"${CAMPUS_MAP}","catalog_path":"/abs/buildings.json","id_strategy":"uuid","search_timeout":"5s"}`
	if err := os.WriteFile(filepath.Join(dir, DirName, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := m.Get()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if want := filepath.Join(dir, "maps", "sjsu.md"); cfg.MapPath != want {
		t.Errorf("MapPath = %q, want %q", cfg.MapPath, want)
	}
	if cfg.CatalogPath != "/abs/buildings.json" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.IDStrategy != "uuid" || cfg.Timeout() != 5*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestManager_DotEnvAndOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CAMPUSPATH_THEME=fire\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Make sure the variable is unset before and restored after
	t.Setenv("CAMPUSPATH_THEME", "")
	os.Unsetenv("CAMPUSPATH_THEME")

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := m.Get().Theme; got != "fire" {
		t.Errorf("Theme = %q, want fire from .env", got)
	}
}

func TestManager_LoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, DirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DirName, "config.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewManager(dir).Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestManager_Set(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"theme", "dark", false},
		{"theme", "neon", true},
		{"id_strategy", "uuid", false},
		{"id_strategy", "random", true},
		{"search_timeout", "2m", false},
		{"search_timeout", "soon", true},
		{"debug", "true", false},
		{"nope", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := m.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set(%q, %q) err = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}

	reloaded := NewManager(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	cfg := reloaded.Get()
	if cfg.Theme != "dark" || cfg.IDStrategy != "uuid" || cfg.SearchTimeout != "2m" || !cfg.Debug {
		t.Errorf("settings not persisted: %+v", cfg)
	}
}

func TestExpandString(t *testing.T) {
	t.Setenv("CP_TEST_VAR", "value")

	tests := map[string]string{
		"$CP_TEST_VAR":     "value",
		"${CP_TEST_VAR}/x": "value/x",
		"$CP_TEST_MISSING": "$CP_TEST_MISSING",
		"plain":            "plain",
	}
	for in, want := range tests {
		if got := expandString(in); got != want {
			t.Errorf("expandString(%q) = %q, want %q", in, got, want)
		}
	}
}

func readRaw(t *testing.T, m *Manager) map[string]any {
	t.Helper()
	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestManager_EnvOverrideNotSaved(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CAMPUSPATH_THEME", "fire")

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := m.Get().Theme; got != "fire" {
		t.Errorf("Theme = %q, want fire from env", got)
	}
	if got := readRaw(t, m)["theme"]; got != "campus" {
		t.Errorf("saved theme = %v, want campus", got)
	}
}

func TestManager_SetKeepsTemplates(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CAMPUS_MAP", "maps/sjsu.md")

	if err := os.MkdirAll(filepath.Join(dir, DirName), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"map_path":"${CAMPUS_MAP}","catalog_path":"data/buildings.json"}`
	if err := os.WriteFile(filepath.Join(dir, DirName, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := m.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw := readRaw(t, m)
	if raw["map_path"] != "${CAMPUS_MAP}" {
		t.Errorf("saved map_path = %v, want the ${CAMPUS_MAP} template", raw["map_path"])
	}
	if raw["catalog_path"] != "data/buildings.json" {
		t.Errorf("saved catalog_path = %v, want the relative path", raw["catalog_path"])
	}
	if raw["theme"] != "dark" {
		t.Errorf("saved theme = %v", raw["theme"])
	}

	cfg := m.Get()
	if want := filepath.Join(dir, "maps", "sjsu.md"); cfg.MapPath != want {
		t.Errorf("MapPath = %q, want %q", cfg.MapPath, want)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q after Set", cfg.Theme)
	}
}
