package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Months, goals, and frequencies offered by the planning form.
var (
	Months = []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	Years       = []int{2025, 2026, 2027}
	Goals       = []string{"Bookings", "Messages", "Website Visits", "Leads", "Engagement Growth"}
	Markets     = []string{"Bulgaria", "Romania", "Both"}
	Frequencies = []int{3, 5, 7}
)

// Provider identifiers for the generation backend.
const (
	ProviderAgent     = "agent"
	ProviderAnthropic = "anthropic"
)

// DefaultAgentID identifies the content-calendar strategist agent.
const DefaultAgentID = "699a199d4274f089c16d42b3"

// Config holds all persisted application configuration. The plan section is
// the calendar form state, written back on every change.
type Config struct {
	Version    int            `toml:"version"`
	Plan       PlanConfig     `toml:"plan"`
	Promotions []Promotion    `toml:"promotions"`
	Agent      AgentConfig    `toml:"agent"`
	Schedule   ScheduleConfig `toml:"schedule"`
	Email      EmailConfig    `toml:"email"`
	Export     ExportConfig   `toml:"export"`
}

// PlanConfig is the calendar configuration form.
type PlanConfig struct {
	Month            string `toml:"month"`
	Year             int    `toml:"year"`
	TargetMarket     string `toml:"target_market"`
	PrimaryGoal      string `toml:"primary_goal"`
	HeroOffer        string `toml:"hero_offer"`
	PostingFrequency int    `toml:"posting_frequency"`
}

// Promotion is one special promotion fed into the prompt. It never appears
// in the generated calendar schema.
type Promotion struct {
	Name          string `toml:"name"`
	Date          string `toml:"date,omitempty"`
	ValidityStart string `toml:"validity_start,omitempty"`
	ValidityEnd   string `toml:"validity_end,omitempty"`
	Notes         string `toml:"notes,omitempty"`
}

// AgentConfig selects and configures the generation backend.
type AgentConfig struct {
	Provider string `toml:"provider"`
	Endpoint string `toml:"endpoint"`
	AgentID  string `toml:"agent_id"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
}

// ScheduleConfig drives serve mode.
type ScheduleConfig struct {
	Enabled  bool   `toml:"enabled"`
	Cron     string `toml:"cron"`
	Timezone string `toml:"timezone"`
}

// EmailConfig configures scheduled delivery.
type EmailConfig struct {
	Provider string   `toml:"provider"`
	SMTPHost string   `toml:"smtp_host"`
	SMTPPort int      `toml:"smtp_port"`
	SMTPUser string   `toml:"smtp_user"`
	SMTPPass string   `toml:"smtp_pass"`
	FromAddr string   `toml:"from_address"`
	ToAddrs  []string `toml:"to_addresses"`
}

// ExportConfig configures where rendered pages land.
type ExportConfig struct {
	OutputDir string `toml:"output_dir"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	outputDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		outputDir = filepath.Join(home, "revcal")
	}
	return &Config{
		Version: 1,
		Plan: PlanConfig{
			Month:            "March",
			Year:             2026,
			TargetMarket:     "Both",
			PrimaryGoal:      "Bookings",
			PostingFrequency: 5,
		},
		Promotions: []Promotion{},
		Agent: AgentConfig{
			Provider: ProviderAgent,
			AgentID:  DefaultAgentID,
			Model:    "claude-sonnet-4-20250514",
		},
		Schedule: ScheduleConfig{
			Enabled:  false,
			Cron:     "0 9 1 * *",
			Timezone: "Europe/Sofia",
		},
		Email: EmailConfig{
			Provider: "smtp",
			SMTPPort: 587,
		},
		Export: ExportConfig{
			OutputDir: outputDir,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "revcal"), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "revcal"), nil
}

// Load reads config from the default location. An absent or corrupt file
// degrades to default values with no error surfaced.
func Load() *Config {
	path, err := ConfigPath()
	if err != nil {
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path, degrading to defaults the
// same way Load does.
func LoadFrom(path string) *Config {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes config to the default location.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes config to an explicit path.
func (c *Config) SaveTo(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
