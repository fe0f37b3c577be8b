package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// ServerConfig controls the local web UI
type ServerConfig struct {
	Addr        string `yaml:"addr" json:"addr"`                 // Listen address, use port 0 for auto-assign
	OpenBrowser bool   `yaml:"open_browser" json:"open_browser"` // Open the system browser in -web mode
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`             // debug, info, warn, error
	Development bool   `yaml:"development" json:"development"` // Human-readable console encoder
}

// ReportConfig controls printable report generation
type ReportConfig struct {
	OutputDir string `yaml:"output_dir" json:"output_dir"` // Directory for exported reports
	PDFFont   string `yaml:"pdf_font" json:"pdf_font"`     // TTF with Japanese glyphs, required for PDF output
	Issuer    string `yaml:"issuer" json:"issuer"`         // Printed under the disclaimer
}

// Config is the program configuration.
// Only settings live here; session state is never written back.
type Config struct {
	Server   ServerConfig  `yaml:"server" json:"server"`
	Logging  LoggingConfig `yaml:"logging" json:"logging"`
	Report   ReportConfig  `yaml:"report" json:"report"`
	Defaults FormInput     `yaml:"defaults" json:"defaults"` // Initial form values
}

// ValidationError describes an invalid configuration or input field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// LoadConfig loads configuration from a YAML file.
// Fields missing from the file are filled from the embedded defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfigOrDefault loads the file, falling back to the embedded defaults
// when it does not exist.
func LoadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if os.IsNotExist(err) {
		return LoadDefaultConfig()
	}
	return config, err
}

// LoadDefaultConfig returns the configuration compiled into the binary
func LoadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills zero-valued fields from the embedded defaults
func (c *Config) applyDefaults() error {
	def, err := LoadDefaultConfig()
	if err != nil {
		return err
	}

	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = def.Report.OutputDir
	}
	if c.Report.Issuer == "" {
		c.Report.Issuer = def.Report.Issuer
	}
	if c.Defaults.Industry == "" {
		c.Defaults.Industry = def.Defaults.Industry
	}
	if c.Defaults.Days == "" {
		c.Defaults.Days = def.Defaults.Days
	}
	if c.Defaults.HoursPerDay == "" {
		c.Defaults.HoursPerDay = def.Defaults.HoursPerDay
	}
	return nil
}

// Validate checks settings that would otherwise fail later at runtime
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "logging.level",
			Message: fmt.Sprintf("must be debug, info, warn or error (got %q)", c.Logging.Level)})
	}

	if _, err := ParseIndustry(c.Defaults.Industry); err != nil {
		errs = append(errs, ValidationError{Field: "defaults.industry", Message: err.Error()})
	}

	if c.Report.PDFFont != "" {
		if _, err := os.Stat(c.Report.PDFFont); err != nil {
			errs = append(errs, ValidationError{Field: "report.pdf_font", Message: err.Error()})
		}
	}

	return errs
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Reskilling Subsidy Simulator configuration
# Generated by the simulator - feel free to edit manually
#
# server.addr:        address of the local web UI (port 0 picks a free port)
# report.output_dir:  where -html / -pdf / Export write reports
# report.pdf_font:    TrueType font with Japanese glyphs for PDF output
#                     (PDF export is unavailable while this is empty)
# defaults:           initial values of the simulator form
#
# Subsidy rates, limits and SME thresholds are fixed by the 令和7年度 guidelines
# and cannot be configured.

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}
