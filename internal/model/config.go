package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// UserConfig is a user directory entry as it appears in the YAML config.
type UserConfig struct {
	ID         string `mapstructure:"id" yaml:"id"`
	Name       string `mapstructure:"name" yaml:"name"`
	Email      string `mapstructure:"email" yaml:"email"`
	Role       string `mapstructure:"role" yaml:"role"`
	Department string `mapstructure:"department" yaml:"department"`
	Password   string `mapstructure:"password" yaml:"password"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme       string `mapstructure:"theme" yaml:"theme"`
	InitialView string `mapstructure:"initial_view" yaml:"initial_view"`
}

// ExportConfig controls where report exports are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Users   []UserConfig  `mapstructure:"users" yaml:"users"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/complymate/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "complymate", "config.yaml")
}

// defaultAppConfig seeds the two-person directory the dashboard ships with:
// one Admin approver and one User preparer, both in Finance.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Users: []UserConfig{
			{
				ID:         "u1",
				Name:       "System Admin",
				Email:      "admin@comply.com",
				Role:       string(RoleAdmin),
				Department: string(DepartmentFinance),
				Password:   "admin",
			},
			{
				ID:         "u2",
				Name:       "Finance Staff",
				Email:      "staff@comply.com",
				Role:       string(RoleUser),
				Department: string(DepartmentFinance),
			},
		},
		Display: DisplayConfig{
			Theme:       "dark",
			InitialView: "Dashboard",
		},
		Export: ExportConfig{Dir: "."},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns the default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("display.theme", "dark")
	v.SetDefault("display.initial_view", "Dashboard")
	v.SetDefault("export.dir", ".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Users) == 0 {
		cfg.Users = defaultAppConfig().Users
	}
	return cfg, nil
}

// Directory converts the configured user entries into directory records,
// skipping entries that fail validation so one bad row cannot take the
// dashboard down.
func (c *AppConfig) Directory() []User {
	out := make([]User, 0, len(c.Users))
	for _, uc := range c.Users {
		u := User{
			ID:         uc.ID,
			Name:       uc.Name,
			Email:      uc.Email,
			Role:       Role(uc.Role),
			Department: Department(uc.Department),
			Password:   uc.Password,
		}
		if err := u.Validate(); err != nil {
			continue
		}
		out = append(out, u)
	}
	if len(out) == 0 {
		for _, uc := range defaultAppConfig().Users {
			out = append(out, User{
				ID:         uc.ID,
				Name:       uc.Name,
				Email:      uc.Email,
				Role:       Role(uc.Role),
				Department: Department(uc.Department),
				Password:   uc.Password,
			})
		}
	}
	return out
}
