package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	xdgAppName = "sheetdash"
	configFile = "config.json"
)

// Department is one tab of the projects spreadsheet.
type Department struct {
	Sheet string `json:"sheet"`
	Name  string `json:"name"`
}

type Config struct {
	ProjectsSpreadsheetID string       `json:"projects_spreadsheet_id"`
	Departments           []Department `json:"departments"`
	ProjectsRange         string       `json:"projects_range"`
	TodoSpreadsheetID     string       `json:"todo_spreadsheet_id"`
	TodoSheet             string       `json:"todo_sheet"`
	TodoRange             string       `json:"todo_range"`
	APIKey                string       `json:"api_key,omitempty"`
	AllowedEmails         []string     `json:"allowed_emails,omitempty"`
	TopProjects           int          `json:"top_projects"`
	PreviewCategories     int          `json:"preview_categories"`
}

// Default returns the stock layout: three department tabs over A:M and a
// single to-do tab over A:I.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if len(c.Departments) == 0 {
		c.Departments = []Department{
			{Sheet: "Riset", Name: "Riset"},
			{Sheet: "Digitalisasi", Name: "Digitalisasi"},
			{Sheet: "System Development", Name: "System Development"},
		}
	}
	for i := range c.Departments {
		if c.Departments[i].Name == "" {
			c.Departments[i].Name = c.Departments[i].Sheet
		}
	}
	if c.ProjectsRange == "" {
		c.ProjectsRange = "A:M"
	}
	if c.TodoSheet == "" {
		c.TodoSheet = "Sheet1"
	}
	if c.TodoRange == "" {
		c.TodoRange = "A:I"
	}
	if c.TopProjects == 0 {
		c.TopProjects = 5
	}
	if c.PreviewCategories == 0 {
		c.PreviewCategories = 6
	}
}

// DepartmentNames lists the display names in sheet order.
func (c *Config) DepartmentNames() []string {
	names := make([]string, len(c.Departments))
	for i, d := range c.Departments {
		names[i] = d.Name
	}
	return names
}

func GetConfigPath() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName, configFile), nil
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields Default().
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

func SaveFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
