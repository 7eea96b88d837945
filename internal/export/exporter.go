// internal/export/exporter.go
package export

import (
	"fmt"
	"strings"
	"sync"

	"printmon/internal/logging"
	"printmon/internal/printer"
)

// Plan assigns one monitored printer to one status block.
type Plan struct {
	Printer string
	Slot    uint16
}

// Exporter replicates the health of every monitored printer into its
// status block. Observe is safe to call concurrently; write failures are
// logged and absorbed, the block is re-asserted on the next success.
type Exporter struct {
	mu      sync.Mutex
	writers map[string]*StatusWriter
	log     *logging.Logger
}

// NewExporter builds one status writer per plan over a shared client.
func NewExporter(cli Client, unitID uint8, plans []Plan, log *logging.Logger) (*Exporter, error) {
	writers := make(map[string]*StatusWriter, len(plans))
	for _, p := range plans {
		if p.Printer == "" {
			return nil, fmt.Errorf("export: plan with empty printer name")
		}
		key := strings.ToLower(p.Printer)
		if _, dup := writers[key]; dup {
			return nil, fmt.Errorf("export: duplicate plan for printer %q", p.Printer)
		}
		sw, err := NewStatusWriter(cli, unitID, p.Slot, p.Printer)
		if err != nil {
			return nil, err
		}
		writers[key] = sw
	}
	return &Exporter{writers: writers, log: log}, nil
}

// Observe is a monitor sink: every emitted observation updates the
// printer's status block. Printers without a plan are ignored.
func (e *Exporter) Observe(cur printer.Printer, prev *printer.Printer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sw := e.writers[strings.ToLower(cur.Name)]
	if sw == nil {
		return
	}
	if err := sw.WriteStatus(FromPrinter(cur)); err != nil {
		e.log.Errorf("status write failed (printer=%s): %v", cur.Name, err)
	}
}
