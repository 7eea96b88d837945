// internal/printer/printer_test.go
package printer

import "testing"

// ---- status derivation ----

func TestFromRaw_StateCodeWins(t *testing.T) {
	p := FromRaw(Raw{
		Name:       TextOf("Office"),
		StateCode:  CodeOf(4), // printing
		StatusCode: CodeOf(3), // idle
	})

	if p.Status != StatusPrinting {
		t.Fatalf("status: got %v, want Printing", p.Status)
	}
}

func TestFromRaw_StatusCodeFallback(t *testing.T) {
	// 9 maps to no known category, so the primary status code decides.
	p := FromRaw(Raw{
		Name:       TextOf("Office"),
		StateCode:  CodeOf(9),
		StatusCode: CodeOf(3),
	})

	if p.Status != StatusIdle {
		t.Fatalf("status: got %v, want Idle", p.Status)
	}
}

func TestFromRaw_NoCodesIsUnknown(t *testing.T) {
	p := FromRaw(Raw{Name: TextOf("Office")})

	if p.Status != StatusUnknown {
		t.Fatalf("status: got %v, want Unknown", p.Status)
	}
	if p.ErrorState != ErrorUnknown {
		t.Fatalf("error state: got %v, want Unknown", p.ErrorState)
	}
	if p.Offline {
		t.Fatalf("offline: got true, want false")
	}
}

func TestFromRaw_StateZeroIsIdle(t *testing.T) {
	p := FromRaw(Raw{Name: TextOf("Office"), StateCode: CodeOf(0)})

	if p.Status != StatusIdle {
		t.Fatalf("status: got %v, want Idle", p.Status)
	}
}

func TestFromRaw_MissingNamePlaceholder(t *testing.T) {
	for _, r := range []Raw{{}, {Name: TextOf("")}} {
		p := FromRaw(r)
		if p.Name != UnknownName {
			t.Fatalf("name: got %q, want %q", p.Name, UnknownName)
		}
	}
}

// ---- error state derivation ----

func TestFromRaw_ErrorCodeZeroIsNoError(t *testing.T) {
	for _, code := range []uint32{0, 2} {
		p := FromRaw(Raw{Name: TextOf("Office"), ErrorCode: CodeOf(code)})
		if p.ErrorState != ErrorNone {
			t.Fatalf("code %d: got %v, want NoError", code, p.ErrorState)
		}
		if p.HasError() {
			t.Fatalf("code %d: HasError true", code)
		}
	}
}

func TestFromRaw_ErrorCodes(t *testing.T) {
	cases := []struct {
		code uint32
		want ErrorState
	}{
		{1, ErrorOther},
		{3, ErrorLowPaper},
		{4, ErrorNoPaper},
		{5, ErrorLowToner},
		{6, ErrorNoToner},
		{7, ErrorDoorOpen},
		{8, ErrorJammed},
		{9, ErrorServiceRequested},
		{10, ErrorOutputBinFull},
		{42, ErrorUnknown},
	}
	for _, tc := range cases {
		p := FromRaw(Raw{Name: TextOf("Office"), ErrorCode: CodeOf(tc.code)})
		if p.ErrorState != tc.want {
			t.Fatalf("code %d: got %v, want %v", tc.code, p.ErrorState, tc.want)
		}
		if !p.HasError() {
			t.Fatalf("code %d: HasError false", tc.code)
		}
	}
}

// ---- offline derivation ----

func TestFromRaw_OfflineSources(t *testing.T) {
	cases := []struct {
		name string
		raw  Raw
	}{
		{"work offline flag", Raw{WorkOffline: FlagOf(true)}},
		{"offline status code", Raw{StatusCode: CodeOf(7)}},
		{"offline state code", Raw{StateCode: CodeOf(128)}},
		{"extended status", Raw{ExtendedStatusCode: CodeOf(7)}},
		{"degraded health", Raw{Health: TextOf("Degraded")}},
		{"no contact health", Raw{Health: TextOf("No Contact")}},
	}
	for _, tc := range cases {
		tc.raw.Name = TextOf("Office")
		if p := FromRaw(tc.raw); !p.Offline {
			t.Fatalf("%s: offline false", tc.name)
		}
	}
}

func TestFromRaw_HealthyHealthNotOffline(t *testing.T) {
	p := FromRaw(Raw{
		Name:      TextOf("Office"),
		StateCode: CodeOf(0),
		Health:    TextOf("OK"),
	})

	if p.Offline {
		t.Fatalf("offline: got true, want false")
	}
}

// ---- constructors ----

func TestNew_UnreachableCategoryForcesOffline(t *testing.T) {
	p := New("Office", StatusOffline, ErrorNone, false, false)

	if !p.Offline {
		t.Fatalf("offline: got false, want true")
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder("Office")

	if p.Name != "Office" {
		t.Fatalf("name: got %q", p.Name)
	}
	if p.Status != StatusUnknown || p.ErrorState != ErrorUnknown || !p.Offline {
		t.Fatalf("unexpected placeholder state: %+v", p)
	}
}

func TestPrinterComparable(t *testing.T) {
	a := FromRaw(Raw{Name: TextOf("Office"), StateCode: CodeOf(0)})
	b := FromRaw(Raw{Name: TextOf("Office"), StateCode: CodeOf(0)})

	if a != b {
		t.Fatalf("identical observations not equal")
	}
}

// ---- field parsing ----

func TestParseField_CaseInsensitive(t *testing.T) {
	f, err := ParseField("isoffline")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != FieldOffline {
		t.Fatalf("field: got %v, want IsOffline", f)
	}
}

func TestParseField_Unknown(t *testing.T) {
	if _, err := ParseField("Uptime"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
