// internal/backend/cups/cups_test.go
package cups

import (
	"testing"

	"printmon/internal/printer"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		line    string
		name    string
		status  printer.Status
		err     printer.ErrorState
		offline bool
	}{
		{
			line:   "printer Office is idle.  enabled since Mon 01 Sep 2025",
			name:   "Office",
			status: printer.StatusIdle,
			err:    printer.ErrorNone,
		},
		{
			line:   "printer Lab now printing Lab-42.  enabled since Mon 01 Sep 2025",
			name:   "Lab",
			status: printer.StatusPrinting,
			err:    printer.ErrorNone,
		},
		{
			line:    "printer Annex disabled since Mon 01 Sep 2025 -",
			name:    "Annex",
			status:  printer.StatusOffline,
			err:     printer.ErrorOther,
			offline: true,
		},
	}

	for _, tc := range cases {
		p, ok := parseLine(tc.line)
		if !ok {
			t.Fatalf("line rejected: %q", tc.line)
		}
		if p.Name != tc.name {
			t.Fatalf("%q: name %q, want %q", tc.line, p.Name, tc.name)
		}
		if p.Status != tc.status {
			t.Fatalf("%q: status %v, want %v", tc.line, p.Status, tc.status)
		}
		if p.ErrorState != tc.err {
			t.Fatalf("%q: error %v, want %v", tc.line, p.ErrorState, tc.err)
		}
		if p.Offline != tc.offline {
			t.Fatalf("%q: offline %v, want %v", tc.line, p.Offline, tc.offline)
		}
	}
}

func TestParseLine_SkipsNonPrinterLines(t *testing.T) {
	for _, line := range []string{
		"",
		"system default destination: Office",
		"device for Office: ipp://10.0.0.10/ipp/print",
		"printer ",
	} {
		if _, ok := parseLine(line); ok {
			t.Fatalf("line accepted: %q", line)
		}
	}
}
