// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	Printers   []string      `yaml:"printers"`
	IntervalMs int           `yaml:"interval_ms"`
	Backend    BackendConfig `yaml:"backend"`
	Retry      RetryConfig   `yaml:"retry"`
	Logging    LoggingConfig `yaml:"logging"`

	// Optional surfaces (opt-in)
	Export  *ExportConfig  `yaml:"export"`
	Webhook *WebhookConfig `yaml:"webhook"`
}

// ---- BACKEND ----

type BackendConfig struct {
	// Type selects the print service: "auto", "cups" or "snmp".
	Type string     `yaml:"type"`
	SNMP SNMPConfig `yaml:"snmp"`
}

type SNMPConfig struct {
	Community string        `yaml:"community"`
	Port      uint16        `yaml:"port"`
	TimeoutMs int           `yaml:"timeout_ms"`
	Retries   int           `yaml:"retries"`
	Agents    []AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// ---- RETRY ----

// Retry is caller-side policy around a failed monitoring session; the
// watch loops themselves never retry.
type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	BaseDelayMs int `yaml:"base_delay_ms"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// ---- STATUS EXPORT ----

type ExportConfig struct {
	Endpoint  string       `yaml:"endpoint"`
	UnitID    uint8        `yaml:"unit_id"`
	TimeoutMs int          `yaml:"timeout_ms"`
	Slots     []SlotConfig `yaml:"slots"`
}

type SlotConfig struct {
	Printer string `yaml:"printer"`
	Slot    uint16 `yaml:"slot"`
}

// ---- WEBHOOK ----

type WebhookConfig struct {
	URL       string `yaml:"url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Load reads and parses a YAML configuration file. It does not validate;
// call Normalize, then Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}
