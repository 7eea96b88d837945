// internal/printer/codes.go
package printer

// Status is the derived, platform-independent printer status category.
// It is computed once at construction from the raw codes (see FromRaw)
// and never re-derived per comparison.
type Status int

const (
	StatusOther Status = iota
	StatusUnknown
	StatusIdle
	StatusPrinting
	StatusWarmup
	StatusStopped
	StatusOffline
	StatusError
	StatusNotAvailable
	StatusServerUnknown
)

// Description returns the human-readable name of the status category.
func (s Status) Description() string {
	switch s {
	case StatusOther:
		return "Other"
	case StatusIdle:
		return "Idle"
	case StatusPrinting:
		return "Printing"
	case StatusWarmup:
		return "Warmup"
	case StatusStopped:
		return "Stopped Printing"
	case StatusOffline:
		return "Offline"
	case StatusError:
		return "Error"
	case StatusNotAvailable:
		return "Not Available"
	case StatusServerUnknown:
		return "Server Unknown"
	default:
		return "Unknown"
	}
}

func (s Status) String() string { return s.Description() }

// Unreachable reports whether the category alone implies the printer
// cannot be reached.
func (s Status) Unreachable() bool {
	switch s {
	case StatusOffline, StatusNotAvailable, StatusServerUnknown, StatusError:
		return true
	}
	return false
}

// ---- RAW CODE MAPPING ----

// statusFromCode maps the primary status code space (Win32_Printer
// PrinterStatus 1-7; hrPrinterStatus shares values 1-5).
func statusFromCode(c Code) Status {
	if !c.Valid {
		return StatusUnknown
	}
	switch c.Value {
	case 1:
		return StatusOther
	case 3:
		return StatusIdle
	case 4:
		return StatusPrinting
	case 5:
		return StatusWarmup
	case 6:
		return StatusStopped
	case 7:
		return StatusOffline
	default:
		// 2 is the platform's own "unknown"; everything else is unmapped.
		return StatusUnknown
	}
}

// statusFromState maps the legacy state code space (Win32_Printer
// PrinterState). 0 is the ready/normal state, 128 a second offline marker.
func statusFromState(c Code) Status {
	if !c.Valid {
		return StatusUnknown
	}
	switch c.Value {
	case 0, 3:
		return StatusIdle
	case 1:
		return StatusOther
	case 4:
		return StatusPrinting
	case 5:
		return StatusWarmup
	case 6:
		return StatusStopped
	case 7, 128:
		return StatusOffline
	default:
		return StatusUnknown
	}
}

// deriveStatus applies the precedence policy: the legacy state code wins
// when it maps to a known category, the primary status code is the
// fallback, and StatusUnknown means neither mapped.
func deriveStatus(state, status Code) Status {
	if state.Valid {
		if s := statusFromState(state); s != StatusUnknown {
			return s
		}
	}
	return statusFromCode(status)
}

// extendedStatusOffline is the extended printer status value that marks a
// printer offline. Any snapshot carrying it is treated as unreachable.
const extendedStatusOffline = 7

// ErrorState is the derived printer error category.
type ErrorState int

const (
	ErrorNone ErrorState = iota
	ErrorOther
	ErrorLowPaper
	ErrorNoPaper
	ErrorLowToner
	ErrorNoToner
	ErrorDoorOpen
	ErrorJammed
	ErrorServiceRequested
	ErrorOutputBinFull
	ErrorUnknown
)

// Description returns the human-readable name of the error category.
func (e ErrorState) Description() string {
	switch e {
	case ErrorNone:
		return "No Error"
	case ErrorOther:
		return "Other"
	case ErrorLowPaper:
		return "Low Paper"
	case ErrorNoPaper:
		return "No Paper"
	case ErrorLowToner:
		return "Low Toner"
	case ErrorNoToner:
		return "No Toner"
	case ErrorDoorOpen:
		return "Door Open"
	case ErrorJammed:
		return "Jammed"
	case ErrorServiceRequested:
		return "Service Requested"
	case ErrorOutputBinFull:
		return "Output Bin Full"
	default:
		return "Unknown Error State"
	}
}

func (e ErrorState) String() string { return e.Description() }

// IsError reports whether the state needs attention.
func (e ErrorState) IsError() bool { return e != ErrorNone }

// errorFromCode maps the detected error state code space (0-10).
// Code 0 is treated as "no error", same as the explicit 2.
func errorFromCode(c Code) ErrorState {
	if !c.Valid {
		return ErrorUnknown
	}
	switch c.Value {
	case 0, 2:
		return ErrorNone
	case 1:
		return ErrorOther
	case 3:
		return ErrorLowPaper
	case 4:
		return ErrorNoPaper
	case 5:
		return ErrorLowToner
	case 6:
		return ErrorNoToner
	case 7:
		return ErrorDoorOpen
	case 8:
		return ErrorJammed
	case 9:
		return ErrorServiceRequested
	case 10:
		return ErrorOutputBinFull
	default:
		return ErrorUnknown
	}
}

// degradedHealth is the set of free-text health values that mark a printer
// unreachable regardless of the code-derived category.
var degradedHealth = map[string]struct{}{
	"Degraded":   {},
	"Error":      {},
	"No Contact": {},
	"Lost Comm":  {},
	"NonRecover": {},
}
