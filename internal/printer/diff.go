// internal/printer/diff.go
package printer

// Compare computes the field-level differences between two consecutive
// observations of the same printer. Callers are expected to pass matching
// identities; names may differ in letter case only, since lookups are
// case-insensitive.
//
// Every field is checked on every call, in declaration order, so the output
// order is stable regardless of which fields moved. Absent-versus-present is
// a change like any other. Category fields and their underlying raw codes
// are compared independently: a raw code move inside one category reports
// only the code change, and a category move without raw codes reports only
// the category change.
func Compare(prev, cur Printer) ChangeSet {
	cs := NewChangeSet(cur.Name)

	if prev.Name != cur.Name {
		cs.Changes = append(cs.Changes, NameChange{Old: prev.Name, New: cur.Name})
	}
	if prev.Status != cur.Status {
		cs.Changes = append(cs.Changes, StatusChange{Old: prev.Status, New: cur.Status})
	}
	if prev.ErrorState != cur.ErrorState {
		cs.Changes = append(cs.Changes, ErrorStateChange{Old: prev.ErrorState, New: cur.ErrorState})
	}
	if prev.Offline != cur.Offline {
		cs.Changes = append(cs.Changes, OfflineChange{Old: prev.Offline, New: cur.Offline})
	}
	if prev.Default != cur.Default {
		cs.Changes = append(cs.Changes, DefaultChange{Old: prev.Default, New: cur.Default})
	}
	if prev.StatusCode != cur.StatusCode {
		cs.Changes = append(cs.Changes, CodeChange{Of: FieldStatusCode, Old: prev.StatusCode, New: cur.StatusCode})
	}
	if prev.StateCode != cur.StateCode {
		cs.Changes = append(cs.Changes, CodeChange{Of: FieldStateCode, Old: prev.StateCode, New: cur.StateCode})
	}
	if prev.ErrorCode != cur.ErrorCode {
		cs.Changes = append(cs.Changes, CodeChange{Of: FieldErrorCode, Old: prev.ErrorCode, New: cur.ErrorCode})
	}
	if prev.ExtendedStatusCode != cur.ExtendedStatusCode {
		cs.Changes = append(cs.Changes, CodeChange{Of: FieldExtendedStatusCode, Old: prev.ExtendedStatusCode, New: cur.ExtendedStatusCode})
	}
	if prev.ExtendedErrorCode != cur.ExtendedErrorCode {
		cs.Changes = append(cs.Changes, CodeChange{Of: FieldExtendedErrorCode, Old: prev.ExtendedErrorCode, New: cur.ExtendedErrorCode})
	}
	if prev.Health != cur.Health {
		cs.Changes = append(cs.Changes, HealthChange{Old: prev.Health, New: cur.Health})
	}

	return cs
}
