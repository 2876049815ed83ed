// Package config loads the server runtime configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activityserver/logging"
)

const (
	defaultListenAddr = ":8080"

	// Default monitoring settings
	defaultMetricsPrefix = "school_activities"
	defaultJobName       = "activityserver"

	// Default report settings
	defaultReportSchedule = "0 7 * * *"
)

// Config represents the complete server configuration.
type Config struct {
	Listener ListenerConfig `yaml:"listener"`
	// SeedFile is the path to the activity seed file. When empty the
	// built-in default activity set is used.
	SeedFile   string           `yaml:"seed_file"`
	Logging    logging.Config   `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Report     ReportConfig     `yaml:"report"`
}

// ListenerConfig holds HTTP server listener settings.
type ListenerConfig struct {
	// The listen address, defaults to :8080
	Addr string     `yaml:"addr"`
	TLS  *TLSConfig `yaml:"tls"`
}

// TLSConfig enables TLS on the listener. Certificates are reloaded from
// disk when the files change.
type TLSConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// MonitoringConfig holds metrics settings. When VictoriaMetricsURL is set,
// metrics are also pushed to the remote write endpoint; the /metrics scrape
// endpoint is always available.
type MonitoringConfig struct {
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	MetricsPrefix      string `yaml:"metrics_prefix"`
	JobName            string `yaml:"jobname"`
}

// ReportConfig controls the scheduled roster report.
type ReportConfig struct {
	// Enabled turns the scheduled report on.
	Enabled bool `yaml:"enabled"`
	// Schedule is a standard 5-field cron spec, defaults to 07:00 daily.
	Schedule string `yaml:"schedule"`
}

// Validate performs basic validation on the configuration.
func (c *Config) Validate() error {
	if tls := c.Listener.TLS; tls != nil {
		if tls.CertFile == "" {
			return fmt.Errorf("TLS cert_file is required")
		}
		if tls.KeyFile == "" {
			return fmt.Errorf("TLS key_file is required")
		}
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields.
func (c *Config) SetDefaults() {
	if c.Listener.Addr == "" {
		c.Listener.Addr = defaultListenAddr
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
	if c.Report.Schedule == "" {
		c.Report.Schedule = defaultReportSchedule
	}
}

// LoadConfig reads the YAML config file at the given path and returns a
// Config struct.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
