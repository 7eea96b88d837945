// internal/printer/change.go
package printer

import (
	"fmt"
	"strings"
	"time"
)

// Field identifies one monitorable printer property.
// Declaration order is the order changes appear in a ChangeSet.
type Field int

const (
	FieldName Field = iota
	FieldStatus
	FieldErrorState
	FieldOffline
	FieldDefault
	FieldStatusCode
	FieldStateCode
	FieldErrorCode
	FieldExtendedStatusCode
	FieldExtendedErrorCode
	FieldHealth
)

var fieldNames = map[Field]string{
	FieldName:               "Name",
	FieldStatus:             "Status",
	FieldErrorState:         "ErrorState",
	FieldOffline:            "IsOffline",
	FieldDefault:            "IsDefault",
	FieldStatusCode:         "StatusCode",
	FieldStateCode:          "StateCode",
	FieldErrorCode:          "ErrorCode",
	FieldExtendedStatusCode: "ExtendedStatusCode",
	FieldExtendedErrorCode:  "ExtendedErrorCode",
	FieldHealth:             "Health",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "Unknown"
}

// Fields returns every monitorable field in declaration order.
func Fields() []Field {
	return []Field{
		FieldName, FieldStatus, FieldErrorState, FieldOffline, FieldDefault,
		FieldStatusCode, FieldStateCode, FieldErrorCode,
		FieldExtendedStatusCode, FieldExtendedErrorCode, FieldHealth,
	}
}

// ParseField resolves a field from its name, case-insensitively.
func ParseField(s string) (Field, error) {
	for f, n := range fieldNames {
		if strings.EqualFold(n, s) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("printer: unknown field %q", s)
}

// Change is one field-level difference between two observations.
type Change interface {
	// Field tags the changed property, for filtering.
	Field() Field
	// Description is a human string, not part of the change's identity.
	Description() string
}

type NameChange struct{ Old, New string }

func (c NameChange) Field() Field { return FieldName }
func (c NameChange) Description() string {
	return fmt.Sprintf("Name: %q -> %q", c.Old, c.New)
}

type StatusChange struct{ Old, New Status }

func (c StatusChange) Field() Field { return FieldStatus }
func (c StatusChange) Description() string {
	return fmt.Sprintf("Status: %s -> %s", c.Old, c.New)
}

type ErrorStateChange struct{ Old, New ErrorState }

func (c ErrorStateChange) Field() Field { return FieldErrorState }
func (c ErrorStateChange) Description() string {
	return fmt.Sprintf("ErrorState: %s -> %s", c.Old, c.New)
}

type OfflineChange struct{ Old, New bool }

func (c OfflineChange) Field() Field { return FieldOffline }
func (c OfflineChange) Description() string {
	return fmt.Sprintf("IsOffline: %t -> %t", c.Old, c.New)
}

type DefaultChange struct{ Old, New bool }

func (c DefaultChange) Field() Field { return FieldDefault }
func (c DefaultChange) Description() string {
	return fmt.Sprintf("IsDefault: %t -> %t", c.Old, c.New)
}

// CodeChange covers the five raw code fields; Of names which one moved.
type CodeChange struct {
	Of       Field
	Old, New Code
}

func (c CodeChange) Field() Field { return c.Of }
func (c CodeChange) Description() string {
	return fmt.Sprintf("%s: %s -> %s", c.Of, c.Old, c.New)
}

type HealthChange struct{ Old, New Text }

func (c HealthChange) Field() Field { return FieldHealth }
func (c HealthChange) Description() string {
	return fmt.Sprintf("Health: %s -> %s", c.Old, c.New)
}

// ChangeSet is the result of comparing two consecutive observations of one
// printer. Changes keep field declaration order. An empty set means either
// "nothing changed" or "initial observation"; the poll loop, not the
// ChangeSet, knows which.
type ChangeSet struct {
	Printer string
	Changes []Change
	At      time.Time
}

// NewChangeSet starts an empty change set stamped with the current time.
func NewChangeSet(name string) ChangeSet {
	return ChangeSet{Printer: name, At: time.Now()}
}

// HasChanges reports whether any property differed.
func (cs ChangeSet) HasChanges() bool { return len(cs.Changes) > 0 }

// Count returns the number of changed properties.
func (cs ChangeSet) Count() int { return len(cs.Changes) }

// Summary renders a one-line human description of the set.
func (cs ChangeSet) Summary() string {
	if !cs.HasChanges() {
		return "no changes"
	}
	parts := make([]string, 0, len(cs.Changes))
	for _, c := range cs.Changes {
		parts = append(parts, c.Description())
	}
	return strings.Join(parts, ", ")
}
