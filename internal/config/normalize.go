// internal/config/normalize.go
package config

// Default values applied during normalization.
const (
	DefaultIntervalMs     = 30000
	DefaultBackendType    = "auto"
	DefaultSNMPCommunity  = "public"
	DefaultSNMPPort       = 161
	DefaultSNMPTimeoutMs  = 2000
	DefaultSNMPRetries    = 1
	DefaultMaxAttempts    = 1
	DefaultBaseDelayMs    = 100
	DefaultLogLevel       = "info"
	DefaultExportTimeout  = 1000
	DefaultWebhookTimeout = 2000
)

// Normalize fills in defaults for optional fields.
// It mutates the configuration in place and is the only
// stage allowed to do so.
func Normalize(cfg *Config) {
	m := &cfg.Monitor

	if m.IntervalMs == 0 {
		m.IntervalMs = DefaultIntervalMs
	}
	if m.Backend.Type == "" {
		m.Backend.Type = DefaultBackendType
	}

	s := &m.Backend.SNMP
	if s.Community == "" {
		s.Community = DefaultSNMPCommunity
	}
	if s.Port == 0 {
		s.Port = DefaultSNMPPort
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultSNMPTimeoutMs
	}
	if s.Retries == 0 {
		s.Retries = DefaultSNMPRetries
	}

	if m.Retry.MaxAttempts == 0 {
		m.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if m.Retry.BaseDelayMs == 0 {
		m.Retry.BaseDelayMs = DefaultBaseDelayMs
	}

	if m.Logging.Level == "" {
		m.Logging.Level = DefaultLogLevel
	}

	if m.Export != nil && m.Export.TimeoutMs == 0 {
		m.Export.TimeoutMs = DefaultExportTimeout
	}
	if m.Webhook != nil && m.Webhook.TimeoutMs == 0 {
		m.Webhook.TimeoutMs = DefaultWebhookTimeout
	}
}
