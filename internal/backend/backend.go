// internal/backend/backend.go
package backend

import (
	"context"
	"errors"
	"strings"

	"printmon/internal/printer"
)

// ErrUnavailable means the underlying print service could not be reached
// or initialized. It is fatal to any operation that needs the backend;
// nothing in this module retries it.
var ErrUnavailable = errors.New("backend: print service unavailable")

// Backend supplies printer observations. Implementations must be safe for
// concurrent calls from multiple goroutines; if the underlying handle is
// not, the implementation owns that serialization.
type Backend interface {
	// ListPrinters returns the complete current printer population.
	ListPrinters(ctx context.Context) ([]printer.Printer, error)

	// FindPrinter looks one printer up by case-insensitive name.
	// A missing printer is (nil, nil), never an error: printers come and
	// go during polling.
	FindPrinter(ctx context.Context, name string) (*printer.Printer, error)
}

// FindByName implements FindPrinter over a full listing, for backends
// without a cheaper per-printer lookup.
func FindByName(ctx context.Context, b Backend, name string) (*printer.Printer, error) {
	printers, err := b.ListPrinters(ctx)
	if err != nil {
		return nil, err
	}
	for i := range printers {
		if strings.EqualFold(printers[i].Name, name) {
			p := printers[i]
			return &p, nil
		}
	}
	return nil, nil
}
