// internal/backend/snmp/snmp.go
package snmp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"

	"printmon/internal/logging"
	"printmon/internal/printer"
)

// Printer MIB / Host Resources MIB OIDs for the first printer device.
const (
	oidHrDeviceStatus              = ".1.3.6.1.2.1.25.3.2.1.5.1"
	oidHrPrinterStatus             = ".1.3.6.1.2.1.25.3.5.1.1.1"
	oidHrPrinterDetectedErrorState = ".1.3.6.1.2.1.25.3.5.1.2.1"
)

// Agent is one network printer reachable over SNMP.
type Agent struct {
	Name    string
	Address string
}

// Config is the minimal runtime config the backend needs.
type Config struct {
	Community string
	Port      uint16
	Timeout   time.Duration
	Retries   int
	Agents    []Agent
}

// Backend observes network printers through their SNMP agents. The printer
// population is the configured agent list; SNMP has no system-wide printer
// registry to enumerate. Every query opens its own connection, so
// concurrent use is safe.
type Backend struct {
	cfg Config
	log *logging.Logger
}

// New creates an SNMP backend over the configured agents.
func New(cfg Config, log *logging.Logger) (*Backend, error) {
	if len(cfg.Agents) == 0 {
		return nil, errors.New("snmp: at least one agent required")
	}
	for _, a := range cfg.Agents {
		if a.Name == "" || a.Address == "" {
			return nil, errors.New("snmp: agent name and address required")
		}
	}
	if cfg.Community == "" {
		cfg.Community = "public"
	}
	if cfg.Port == 0 {
		cfg.Port = 161
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Backend{cfg: cfg, log: log}, nil
}

func (b *Backend) ListPrinters(ctx context.Context) ([]printer.Printer, error) {
	printers := make([]printer.Printer, 0, len(b.cfg.Agents))
	for _, a := range b.cfg.Agents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		printers = append(printers, b.observe(a))
	}
	return printers, nil
}

func (b *Backend) FindPrinter(ctx context.Context, name string) (*printer.Printer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, a := range b.cfg.Agents {
		if strings.EqualFold(a.Name, name) {
			p := b.observe(a)
			return &p, nil
		}
	}
	return nil, nil
}

// observe queries one agent. An unreachable agent is an observation, not a
// backend failure: the printer is reported offline with a "No Contact"
// health value, so one dead device cannot end a whole monitoring session.
func (b *Backend) observe(a Agent) printer.Printer {
	raw, err := b.query(a)
	if err != nil {
		b.log.Debugf("snmp: %s (%s): %v", a.Name, a.Address, err)
		return printer.FromRaw(printer.Raw{
			Name:   printer.TextOf(a.Name),
			Health: printer.TextOf("No Contact"),
		})
	}
	return printer.FromRaw(raw)
}

func (b *Backend) query(a Agent) (printer.Raw, error) {
	g := &gosnmp.GoSNMP{
		Target:    a.Address,
		Port:      b.cfg.Port,
		Community: b.cfg.Community,
		Version:   gosnmp.Version2c,
		Timeout:   b.cfg.Timeout,
		Retries:   b.cfg.Retries,
	}

	if err := g.Connect(); err != nil {
		return printer.Raw{}, fmt.Errorf("connect: %w", err)
	}
	defer g.Conn.Close()

	res, err := g.Get([]string{
		oidHrPrinterStatus,
		oidHrDeviceStatus,
		oidHrPrinterDetectedErrorState,
	})
	if err != nil {
		return printer.Raw{}, fmt.Errorf("get: %w", err)
	}

	raw := printer.Raw{Name: printer.TextOf(a.Name)}
	for _, v := range res.Variables {
		switch v.Name {
		case oidHrPrinterStatus:
			if c, ok := intValue(v); ok {
				raw.StatusCode = printer.CodeOf(c)
			}
		case oidHrDeviceStatus:
			if c, ok := intValue(v); ok {
				raw.Health = printer.TextOf(healthText(c))
			}
		case oidHrPrinterDetectedErrorState:
			if bits, ok := v.Value.([]byte); ok {
				code, offline := errorFromBits(bits)
				raw.ErrorCode = code
				if offline {
					raw.WorkOffline = printer.FlagOf(true)
				}
			}
		}
	}
	return raw, nil
}

func intValue(v gosnmp.SnmpPDU) (uint32, bool) {
	switch n := v.Value.(type) {
	case int:
		if n >= 0 {
			return uint32(n), true
		}
	case uint:
		return uint32(n), true
	}
	return 0, false
}

// healthText maps hrDeviceStatus to the free-text health vocabulary the
// core understands.
func healthText(v uint32) string {
	switch v {
	case 2, 4: // running, testing
		return "OK"
	case 3: // warning
		return "Degraded"
	case 5: // down
		return "Error"
	default:
		return "Unknown"
	}
}

// hrPrinterDetectedErrorState bit positions, first octet, MSB first
// (RFC 1759).
const (
	bitLowPaper         = 0x80
	bitNoPaper          = 0x40
	bitLowToner         = 0x20
	bitNoToner          = 0x10
	bitDoorOpen         = 0x08
	bitJammed           = 0x04
	bitOffline          = 0x02
	bitServiceRequested = 0x01
)

// errorFromBits reduces the detected-error octet string to one error code
// in the core's code space, highest-severity bit first, and reports the
// offline bit separately.
func errorFromBits(bits []byte) (printer.Code, bool) {
	if len(bits) == 0 {
		return printer.CodeOf(0), false
	}
	b := bits[0]
	offline := b&bitOffline != 0

	switch {
	case b&bitJammed != 0:
		return printer.CodeOf(8), offline
	case b&bitDoorOpen != 0:
		return printer.CodeOf(7), offline
	case b&bitNoPaper != 0:
		return printer.CodeOf(4), offline
	case b&bitNoToner != 0:
		return printer.CodeOf(6), offline
	case b&bitServiceRequested != 0:
		return printer.CodeOf(9), offline
	case b&bitLowPaper != 0:
		return printer.CodeOf(3), offline
	case b&bitLowToner != 0:
		return printer.CodeOf(5), offline
	default:
		return printer.CodeOf(0), offline
	}
}
