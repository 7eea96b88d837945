// internal/backend/cups/cups.go
package cups

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"printmon/internal/backend"
	"printmon/internal/logging"
	"printmon/internal/printer"
)

// Backend reads printer state from CUPS by shelling out to lpstat.
// Each call spawns its own processes, so concurrent use is safe.
type Backend struct {
	log *logging.Logger
}

// New creates a CUPS backend. It does not probe for lpstat; the first
// listing surfaces a missing tool as ErrUnavailable.
func New(log *logging.Logger) *Backend {
	return &Backend{log: log}
}

// Available reports whether the CUPS tools are on PATH.
func Available() bool {
	_, err := exec.LookPath("lpstat")
	return err == nil
}

func (b *Backend) ListPrinters(ctx context.Context) ([]printer.Printer, error) {
	b.log.Debugf("cups: querying printers via lpstat")

	out, err := exec.CommandContext(ctx, "lpstat", "-p").Output()
	if err != nil {
		return nil, fmt.Errorf("cups: lpstat -p: %v: %w", err, backend.ErrUnavailable)
	}

	var printers []printer.Printer
	for _, line := range strings.Split(string(out), "\n") {
		if p, ok := parseLine(line); ok {
			printers = append(printers, p)
		}
	}

	if def := defaultPrinter(ctx); def != "" {
		for i := range printers {
			if printers[i].Name == def {
				printers[i].Default = true
			}
		}
	}

	return printers, nil
}

func (b *Backend) FindPrinter(ctx context.Context, name string) (*printer.Printer, error) {
	return backend.FindByName(ctx, b, name)
}

// parseLine turns one "printer NAME is idle. ..." lpstat line into an
// observation. Lines that do not describe a printer are skipped.
func parseLine(line string) (printer.Printer, bool) {
	rest, ok := strings.CutPrefix(line, "printer ")
	if !ok {
		return printer.Printer{}, false
	}
	name, state, ok := strings.Cut(rest, " ")
	if !ok || name == "" {
		return printer.Printer{}, false
	}

	var (
		status   printer.Status
		errState printer.ErrorState
		offline  bool
	)
	switch {
	case strings.Contains(state, "idle"):
		status, errState = printer.StatusIdle, printer.ErrorNone
	case strings.Contains(state, "printing"):
		status, errState = printer.StatusPrinting, printer.ErrorNone
	case strings.Contains(state, "stopped"), strings.Contains(state, "disabled"):
		status, errState, offline = printer.StatusOffline, printer.ErrorOther, true
	default:
		status, errState = printer.StatusUnknown, printer.ErrorUnknown
	}

	return printer.New(name, status, errState, offline, false), true
}

// defaultPrinter returns the system default destination, or "" when CUPS
// has none configured.
func defaultPrinter(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "lpstat", "-d").Output()
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		if name, ok := strings.CutPrefix(line, "system default destination: "); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}
