// cmd/printmon/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"printmon/internal/backend"
	"printmon/internal/backend/cups"
	"printmon/internal/backend/snmp"
	"printmon/internal/config"
	"printmon/internal/export"
	exmodbus "printmon/internal/export/modbus"
	"printmon/internal/logging"
	"printmon/internal/monitor"
	"printmon/internal/notify"
	"printmon/internal/printer"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: printmon <list|summary|watch|monitor> <config.yaml> [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	command := os.Args[1]
	cfgPath := os.Args[2]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	config.Normalize(cfg)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	logger, err := logging.New(cfg.Monitor.Logging.Path, logging.ParseLevel(cfg.Monitor.Logging.Level))
	if err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}

	// --------------------
	// Backend selection
	// --------------------

	be, err := buildBackend(cfg, logger)
	if err != nil {
		log.Fatalf("backend setup failed: %v", err)
	}

	mon := monitor.New(be, logger)
	interval := time.Duration(cfg.Monitor.IntervalMs) * time.Millisecond

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "list":
		err = runList(ctx, mon)
	case "summary":
		err = runSummary(ctx, mon)
	case "watch":
		err = runWatch(ctx, mon, cfg, interval, os.Args[3:])
	case "monitor":
		err = runMonitor(ctx, mon, cfg, logger, interval)
	default:
		usage()
	}

	if err != nil && ctx.Err() == nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

// buildBackend selects the print service per config. Type "auto" prefers
// SNMP when agents are configured and falls back to CUPS.
func buildBackend(cfg *config.Config, logger *logging.Logger) (backend.Backend, error) {
	bc := cfg.Monitor.Backend

	snmpBackend := func() (backend.Backend, error) {
		agents := make([]snmp.Agent, 0, len(bc.SNMP.Agents))
		for _, a := range bc.SNMP.Agents {
			agents = append(agents, snmp.Agent{Name: a.Name, Address: a.Address})
		}
		return snmp.New(snmp.Config{
			Community: bc.SNMP.Community,
			Port:      bc.SNMP.Port,
			Timeout:   time.Duration(bc.SNMP.TimeoutMs) * time.Millisecond,
			Retries:   bc.SNMP.Retries,
			Agents:    agents,
		}, logger)
	}

	switch bc.Type {
	case "snmp":
		return snmpBackend()

	case "cups":
		if !cups.Available() {
			return nil, fmt.Errorf("cups backend: %w", backend.ErrUnavailable)
		}
		return cups.New(logger), nil

	default: // auto
		if len(bc.SNMP.Agents) > 0 {
			return snmpBackend()
		}
		if cups.Available() {
			return cups.New(logger), nil
		}
		return nil, fmt.Errorf("no usable backend: %w", backend.ErrUnavailable)
	}
}

// --------------------
// Commands
// --------------------

func runList(ctx context.Context, mon *monitor.Monitor) error {
	printers, err := mon.ListPrinters(ctx)
	if err != nil {
		return err
	}
	for _, p := range printers {
		fmt.Println(formatPrinter(p))
	}
	return nil
}

func runSummary(ctx context.Context, mon *monitor.Monitor) error {
	summary, err := mon.Summary(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := summary[name]
		fmt.Printf("%-24s status=%s error=%s offline=%v default=%v\n",
			name, s.Status, s.ErrorState, s.Offline, s.Default)
	}
	return nil
}

func runWatch(ctx context.Context, mon *monitor.Monitor, cfg *config.Config, interval time.Duration, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	name := fs.String("printer", cfg.Monitor.Printers[0], "printer to watch")
	property := fs.String("property", "", "watch a single property only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *property != "" {
		field, err := printer.ParseField(*property)
		if err != nil {
			return err
		}
		return mon.WatchProperty(ctx, *name, field, interval, func(c printer.Change) {
			fmt.Printf("%s: %s\n", *name, c.Description())
		})
	}

	return mon.WatchChanges(ctx, *name, interval, func(cs printer.ChangeSet) {
		if !cs.HasChanges() {
			fmt.Printf("%s: watching\n", cs.Printer)
			return
		}
		fmt.Printf("%s: %s\n", cs.Printer, cs.Summary())
	})
}

func runMonitor(ctx context.Context, mon *monitor.Monitor, cfg *config.Config, logger *logging.Logger, interval time.Duration) error {
	// ---- optional change webhook ----
	var notifier *notify.Notifier
	if wc := cfg.Monitor.Webhook; wc != nil {
		n, err := notify.New(notify.Config{
			URL:     wc.URL,
			Timeout: time.Duration(wc.TimeoutMs) * time.Millisecond,
		}, logger)
		if err != nil {
			return err
		}
		notifier = n
	}

	// ---- optional status export ----
	var exporter *export.Exporter
	if ec := cfg.Monitor.Export; ec != nil {
		cli, err := exmodbus.NewEndpointClient(exmodbus.Config{
			Endpoint: ec.Endpoint,
			Timeout:  time.Duration(ec.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return err
		}
		defer cli.Close()

		plans := make([]export.Plan, 0, len(ec.Slots))
		for _, s := range ec.Slots {
			plans = append(plans, export.Plan{Printer: s.Printer, Slot: s.Slot})
		}
		exporter, err = export.NewExporter(cli, ec.UnitID, plans, logger)
		if err != nil {
			return err
		}
	}

	session := func(ctx context.Context) error {
		if exporter != nil {
			return mon.WatchAllPrinters(ctx, cfg.Monitor.Printers, interval,
				func(cur printer.Printer, prev *printer.Printer) {
					exporter.Observe(cur, prev)
					if prev == nil {
						return
					}
					cs := printer.Compare(*prev, cur)
					if cs.HasChanges() {
						logger.Infof("%s: %s", cs.Printer, cs.Summary())
						if notifier != nil {
							notifier.Observe(cs)
						}
					}
				})
		}

		return mon.WatchAll(ctx, cfg.Monitor.Printers, interval, func(cs printer.ChangeSet) {
			if !cs.HasChanges() {
				return
			}
			logger.Infof("%s: %s", cs.Printer, cs.Summary())
			if notifier != nil {
				notifier.Observe(cs)
			}
		})
	}

	// --------------------
	// Retry loop (exponential backoff between sessions)
	// --------------------

	retry := cfg.Monitor.Retry
	delay := time.Duration(retry.BaseDelayMs) * time.Millisecond

	for attempt := 1; ; attempt++ {
		err := session(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if attempt >= retry.MaxAttempts {
			return err
		}

		logger.Errorf("monitor session failed (attempt %d/%d), retrying in %s: %v",
			attempt, retry.MaxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func formatPrinter(p printer.Printer) string {
	line := fmt.Sprintf("%-24s status=%s error=%s offline=%v",
		p.Name, p.Status, p.ErrorState, p.Offline)
	if p.Default {
		line += " default"
	}
	return line
}
