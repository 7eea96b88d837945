// internal/export/snapshot.go
package export

import "printmon/internal/printer"

// Snapshot is exactly what the status writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health    uint16
	ErrorCode uint16
	Offline   bool
}

// FromPrinter reduces an observation to its exported status snapshot.
// Offline wins over error: an unreachable printer's error state is stale.
func FromPrinter(p printer.Printer) Snapshot {
	health := HealthOK
	switch {
	case p.Offline:
		health = HealthOffline
	case p.HasError() || p.Status == printer.StatusError:
		health = HealthError
	case p.Status == printer.StatusUnknown:
		health = HealthUnknown
	}
	return Snapshot{
		Health:    health,
		ErrorCode: errorCode(p.ErrorState),
		Offline:   p.Offline,
	}
}

// errorCode maps the error category back onto its wire code space.
func errorCode(e printer.ErrorState) uint16 {
	switch e {
	case printer.ErrorNone:
		return 0
	case printer.ErrorOther:
		return 1
	case printer.ErrorLowPaper:
		return 3
	case printer.ErrorNoPaper:
		return 4
	case printer.ErrorLowToner:
		return 5
	case printer.ErrorNoToner:
		return 6
	case printer.ErrorDoorOpen:
		return 7
	case printer.ErrorJammed:
		return 8
	case printer.ErrorServiceRequested:
		return 9
	case printer.ErrorOutputBinFull:
		return 10
	default:
		return 11
	}
}
