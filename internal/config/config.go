package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DirName is the per-project data directory.
const DirName = ".campuspath"

// Config represents the campuspath configuration
type Config struct {
	// UI preferences
	Theme string `json:"theme"`
	Debug bool   `json:"debug"`

	// Data sources
	CatalogPath string `json:"catalog_path"`
	MapPath     string `json:"map_path"`

	// Queue and search
	IDStrategy    string `json:"id_strategy"`
	SearchTimeout string `json:"search_timeout"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:         "campus",
		Debug:         false,
		IDStrategy:    "counter",
		SearchTimeout: "30s",
	}
}

// Timeout parses SearchTimeout, falling back to the default on bad input
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.SearchTimeout)
	if err != nil || d < 0 {
		return 30 * time.Second
	}
	return d
}

var themes = map[string]bool{"campus": true, "dark": true, "fire": true}

// Manager handles configuration loading and saving
type Manager struct {
	projectPath string
	configPath  string

	// raw is what config.json holds; config is raw after expansion, env overrides and path resolution
	raw    *Config
	config *Config
}

// NewManager creates a new configuration manager
func NewManager(projectPath string) *Manager {
	return &Manager{
		projectPath: projectPath,
		configPath:  filepath.Join(projectPath, DirName, "config.json"),
		raw:         DefaultConfig(),
		config:      DefaultConfig(),
	}
}

// Load reads .env and the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	// Missing .env is fine; existing process env wins over file values
	_ = godotenv.Load(filepath.Join(m.projectPath, ".env"))

	dataDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		m.raw = DefaultConfig()
		m.resolve()
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	raw := DefaultConfig()
	if err := json.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.raw = raw
	m.resolve()
	return nil
}

// resolve rebuilds the effective config from the raw file values
func (m *Manager) resolve() {
	config := *m.raw
	m.expandEnvVars(&config)
	m.applyEnv(&config)
	m.resolvePaths(&config)
	m.config = &config
}

// Save writes the file values to disk; expanded and overridden values stay in memory
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Path returns the config file location
func (m *Manager) Path() string {
	return m.configPath
}

// DataDir returns the directory holding config and logs
func (m *Manager) DataDir() string {
	return filepath.Dir(m.configPath)
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "theme":
		if !themes[value] {
			return fmt.Errorf("unknown theme: %s", value)
		}
		m.raw.Theme = value
	case "debug":
		m.raw.Debug = value == "true"
	case "catalog_path":
		m.raw.CatalogPath = value
	case "map_path":
		m.raw.MapPath = value
	case "id_strategy":
		if value != "counter" && value != "uuid" {
			return fmt.Errorf("unknown id strategy: %s", value)
		}
		m.raw.IDStrategy = value
	case "search_timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid search_timeout: %w", err)
		}
		m.raw.SearchTimeout = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	m.resolve()
	return m.Save()
}

// ensureGitignore creates a .gitignore in the data directory
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(filepath.Dir(m.configPath), ".gitignore")

	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil // Already exists
	}

	gitignoreContent := `# campuspath data directory .gitignore
*.log
*.tmp

!config.json
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

// applyEnv lets CAMPUSPATH_* variables override file values
func (m *Manager) applyEnv(config *Config) {
	if theme := os.Getenv("CAMPUSPATH_THEME"); themes[theme] {
		config.Theme = theme
	}
	if os.Getenv("CAMPUSPATH_DEBUG") == "true" {
		config.Debug = true
	}
}

// resolvePaths makes data paths relative to the project directory
func (m *Manager) resolvePaths(config *Config) {
	if config.CatalogPath != "" && !filepath.IsAbs(config.CatalogPath) {
		config.CatalogPath = filepath.Join(m.projectPath, config.CatalogPath)
	}
	if config.MapPath != "" && !filepath.IsAbs(config.MapPath) {
		config.MapPath = filepath.Join(m.projectPath, config.MapPath)
	}
}

// expandEnvVars expands environment variables in config values
func (m *Manager) expandEnvVars(config *Config) {
	config.Theme = expandString(config.Theme)
	config.CatalogPath = expandString(config.CatalogPath)
	config.MapPath = expandString(config.MapPath)
	config.SearchTimeout = expandString(config.SearchTimeout)
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func expandString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
