// internal/monitor/monitor.go
package monitor

import (
	"context"
	"errors"
	"time"

	"printmon/internal/backend"
	"printmon/internal/logging"
	"printmon/internal/printer"
)

// Monitor exposes printer queries and watch operations over one backend.
// The one backend instance is shared by every watch loop it starts, so it
// must be safe for concurrent use (the Backend contract).
type Monitor struct {
	backend backend.Backend
	log     *logging.Logger
}

// New creates a monitor over the given backend.
func New(b backend.Backend, log *logging.Logger) *Monitor {
	return &Monitor{backend: b, log: log}
}

// ListPrinters returns the complete current printer population.
func (m *Monitor) ListPrinters(ctx context.Context) ([]printer.Printer, error) {
	return m.backend.ListPrinters(ctx)
}

// FindPrinter looks one printer up by case-insensitive name.
// A missing printer is (nil, nil).
func (m *Monitor) FindPrinter(ctx context.Context, name string) (*printer.Printer, error) {
	return m.backend.FindPrinter(ctx, name)
}

// Summary is one printer's essential state for reports and dashboards.
type Summary struct {
	Status     printer.Status
	ErrorState printer.ErrorState
	Offline    bool
	Default    bool
	HasError   bool
}

// Summary returns the state of every printer, keyed by name.
func (m *Monitor) Summary(ctx context.Context) (map[string]Summary, error) {
	printers, err := m.backend.ListPrinters(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Summary, len(printers))
	for _, p := range printers {
		out[p.Name] = Summary{
			Status:     p.Status,
			ErrorState: p.ErrorState,
			Offline:    p.Offline,
			Default:    p.Default,
			HasError:   p.HasError(),
		}
	}
	return out, nil
}

// ChangeSink receives change sets from a watch loop. A sink handed to a
// multi-printer watch is invoked concurrently from several loops and must
// serialize its own state.
type ChangeSink func(printer.ChangeSet)

// PrinterSink receives raw observations: the current printer and the
// previous one, nil on the initial observation. Same concurrency contract
// as ChangeSink.
type PrinterSink func(current printer.Printer, previous *printer.Printer)

var (
	errNoName  = errors.New("monitor: printer name required")
	errNilSink = errors.New("monitor: sink required")
)

// run drives tick at a fixed cadence until cancellation or a tick error.
// The first tick fires immediately.
func run(ctx context.Context, interval time.Duration, tick func(context.Context) error) error {
	if interval <= 0 {
		return errors.New("monitor: interval must be > 0")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := tick(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
