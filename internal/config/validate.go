// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

var backendTypes = map[string]struct{}{
	"":     {},
	"auto": {},
	"cups": {},
	"snmp": {},
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	m := &cfg.Monitor

	if len(m.Printers) == 0 {
		return fmt.Errorf("monitor: at least one printer required")
	}

	seen := make(map[string]struct{}, len(m.Printers))
	for _, name := range m.Printers {
		if name == "" {
			return fmt.Errorf("monitor: empty printer name")
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("monitor: duplicate printer %q", name)
		}
		seen[key] = struct{}{}
	}

	if m.IntervalMs < 0 {
		return fmt.Errorf("monitor: interval_ms must not be negative")
	}
	if m.Retry.MaxAttempts < 0 || m.Retry.BaseDelayMs < 0 {
		return fmt.Errorf("monitor: retry values must not be negative")
	}

	// ------------------------------------------------------------
	// BACKEND VALIDATION
	// ------------------------------------------------------------

	if _, ok := backendTypes[m.Backend.Type]; !ok {
		return fmt.Errorf("monitor: unknown backend type %q", m.Backend.Type)
	}

	if m.Backend.Type == "snmp" && len(m.Backend.SNMP.Agents) == 0 {
		return fmt.Errorf("monitor: snmp backend requires at least one agent")
	}

	agents := make(map[string]struct{}, len(m.Backend.SNMP.Agents))
	for _, a := range m.Backend.SNMP.Agents {
		if a.Name == "" || a.Address == "" {
			return fmt.Errorf("monitor: snmp agent requires name and address")
		}
		key := strings.ToLower(a.Name)
		if _, dup := agents[key]; dup {
			return fmt.Errorf("monitor: duplicate snmp agent %q", a.Name)
		}
		agents[key] = struct{}{}
	}

	// ------------------------------------------------------------
	// STATUS EXPORT VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	if m.Export != nil {
		if m.Export.Endpoint == "" {
			return fmt.Errorf("export: endpoint required")
		}

		// key = slot; each printer owns a whole block
		slotOwner := make(map[uint16]string)

		for _, s := range m.Export.Slots {
			if s.Printer == "" {
				return fmt.Errorf("export: slot %d has no printer", s.Slot)
			}

			// exported names end up as ASCII registers
			for i := 0; i < len(s.Printer); i++ {
				if s.Printer[i] > 0x7F {
					return fmt.Errorf(
						"export: printer %q must contain ASCII characters only",
						s.Printer,
					)
				}
			}

			if _, ok := seen[strings.ToLower(s.Printer)]; !ok {
				return fmt.Errorf(
					"export: printer %q is not in the monitored set",
					s.Printer,
				)
			}

			if prev, exists := slotOwner[s.Slot]; exists {
				return fmt.Errorf(
					"export: slot collision: slot=%d used by printers %q and %q",
					s.Slot, prev, s.Printer,
				)
			}
			slotOwner[s.Slot] = s.Printer
		}
	}

	// ------------------------------------------------------------
	// WEBHOOK VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	if m.Webhook != nil && m.Webhook.URL == "" {
		return fmt.Errorf("webhook: url required")
	}

	return nil
}
