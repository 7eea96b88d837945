// internal/printer/printer.go
package printer

import "strconv"

// Code is an optional raw platform code. The zero value means "absent",
// which is distinct from any reported value.
type Code struct {
	Valid bool
	Value uint32
}

// CodeOf wraps a present raw code.
func CodeOf(v uint32) Code { return Code{Valid: true, Value: v} }

func (c Code) String() string {
	if !c.Valid {
		return "none"
	}
	return strconv.FormatUint(uint64(c.Value), 10)
}

// Text is an optional free-text platform field.
type Text struct {
	Valid bool
	Value string
}

// TextOf wraps a present text value.
func TextOf(v string) Text { return Text{Valid: true, Value: v} }

func (t Text) String() string {
	if !t.Valid {
		return "none"
	}
	return t.Value
}

// Flag is an optional boolean platform field.
type Flag struct {
	Valid bool
	Value bool
}

// FlagOf wraps a present flag value.
func FlagOf(v bool) Flag { return Flag{Valid: true, Value: v} }

// UnknownName is the placeholder identity substituted for records that
// arrive without a usable name. One bad record must not poison a listing.
const UnknownName = "Unknown Printer"

// Raw is one backend record before derivation. Every field may be absent.
type Raw struct {
	Name               Text
	StatusCode         Code // primary status code
	StateCode          Code // legacy state code
	ErrorCode          Code // detected error state code
	ExtendedStatusCode Code
	ExtendedErrorCode  Code
	Health             Text // free-text health ("OK", "Degraded", ...)
	WorkOffline        Flag
	Default            Flag
}

// Printer is one printer's full observed state at one instant.
// It is a value type compared per field; construct one and leave it alone.
type Printer struct {
	Name       string
	Status     Status
	ErrorState ErrorState
	Offline    bool
	Default    bool

	StatusCode         Code
	StateCode          Code
	ErrorCode          Code
	ExtendedStatusCode Code
	ExtendedErrorCode  Code
	Health             Text
}

// FromRaw derives an observation from a raw backend record.
//
// The status category prefers the legacy state code over the primary status
// code. The offline flag is the OR of every signal that can claim
// unreachable: the explicit work-offline flag, an unreachable category, the
// extended-status offline value, and a degraded free-text health value.
func FromRaw(r Raw) Printer {
	name := r.Name.Value
	if !r.Name.Valid || name == "" {
		name = UnknownName
	}

	status := deriveStatus(r.StateCode, r.StatusCode)

	offline := r.WorkOffline.Valid && r.WorkOffline.Value
	if status.Unreachable() {
		offline = true
	}
	if r.ExtendedStatusCode.Valid && r.ExtendedStatusCode.Value == extendedStatusOffline {
		offline = true
	}
	if r.Health.Valid {
		if _, ok := degradedHealth[r.Health.Value]; ok {
			offline = true
		}
	}

	return Printer{
		Name:               name,
		Status:             status,
		ErrorState:         errorFromCode(r.ErrorCode),
		Offline:            offline,
		Default:            r.Default.Valid && r.Default.Value,
		StatusCode:         r.StatusCode,
		StateCode:          r.StateCode,
		ErrorCode:          r.ErrorCode,
		ExtendedStatusCode: r.ExtendedStatusCode,
		ExtendedErrorCode:  r.ExtendedErrorCode,
		Health:             r.Health,
	}
}

// New builds an observation from already-derived categories. Backends that
// never see raw platform codes construct printers this way; every raw code
// field stays absent.
func New(name string, status Status, errState ErrorState, offline, def bool) Printer {
	if name == "" {
		name = UnknownName
	}
	return Printer{
		Name:       name,
		Status:     status,
		ErrorState: errState,
		Offline:    offline || status.Unreachable(),
		Default:    def,
	}
}

// Placeholder is the synthetic observation reported for a printer that
// disappeared from the backend.
func Placeholder(name string) Printer {
	return Printer{
		Name:       name,
		Status:     StatusUnknown,
		ErrorState: ErrorUnknown,
		Offline:    true,
	}
}

// HasError reports whether the printer is in any error condition.
func (p Printer) HasError() bool { return p.ErrorState.IsError() }
