// internal/monitor/loop_test.go
package monitor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"printmon/internal/printer"
)

// fakeBackend serves a mutable printer population.
type fakeBackend struct {
	mu       sync.Mutex
	printers []printer.Printer
	err      error
	errFor   string // fail lookups of this name only
}

func (f *fakeBackend) set(printers ...printer.Printer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.printers = printers
}

func (f *fakeBackend) ListPrinters(ctx context.Context) ([]printer.Printer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]printer.Printer, len(f.printers))
	copy(out, f.printers)
	return out, nil
}

func (f *fakeBackend) FindPrinter(ctx context.Context, name string) (*printer.Printer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.errFor != "" && strings.EqualFold(f.errFor, name) {
		return nil, errors.New("fake: lookup failed")
	}
	for _, p := range f.printers {
		if strings.EqualFold(p.Name, name) {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func idle(name string) printer.Printer {
	return printer.FromRaw(printer.Raw{
		Name:      printer.TextOf(name),
		StateCode: printer.CodeOf(0),
		ErrorCode: printer.CodeOf(0),
	})
}

// ---- change loop ----

func TestChangeLoop_InitialObservation(t *testing.T) {
	fb := &fakeBackend{}
	fb.set(idle("Office"))

	var got []printer.ChangeSet
	l := &changeLoop{backend: fb, name: "Office", sink: func(cs printer.ChangeSet) {
		got = append(got, cs)
	}}

	if err := l.tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("emissions: got %d, want 1", len(got))
	}
	if got[0].HasChanges() {
		t.Fatalf("initial set not empty: %s", got[0].Summary())
	}
	if got[0].Printer != "Office" {
		t.Fatalf("printer: got %q", got[0].Printer)
	}
	if got[0].At.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

func TestChangeLoop_UnchangedNoEmission(t *testing.T) {
	fb := &fakeBackend{}
	fb.set(idle("Office"))

	emissions := 0
	l := &changeLoop{backend: fb, name: "Office", sink: func(printer.ChangeSet) {
		emissions++
	}}

	for i := 0; i < 3; i++ {
		if err := l.tick(context.Background()); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if emissions != 1 {
		t.Fatalf("emissions: got %d, want 1 (initial only)", emissions)
	}
}

func TestChangeLoop_EmitsOnChange(t *testing.T) {
	fb := &fakeBackend{}
	fb.set(idle("Office"))

	var got []printer.ChangeSet
	l := &changeLoop{backend: fb, name: "Office", sink: func(cs printer.ChangeSet) {
		got = append(got, cs)
	}}

	ctx := context.Background()
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}

	stopped := idle("Office")
	stopped.Status = printer.StatusStopped
	fb.set(stopped)

	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("emissions: got %d, want 2", len(got))
	}
	if got[1].Count() != 1 || got[1].Changes[0].Field() != printer.FieldStatus {
		t.Fatalf("second set: %s", got[1].Summary())
	}
}

func TestChangeLoop_DisappearanceAndReturn(t *testing.T) {
	fb := &fakeBackend{}
	fb.set(idle("Office"))

	var got []printer.ChangeSet
	l := &changeLoop{backend: fb, name: "Office", sink: func(cs printer.ChangeSet) {
		got = append(got, cs)
	}}

	ctx := context.Background()
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}

	// Printer vanishes: one synthetic offline transition.
	fb.set()
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("emissions: got %d, want 2", len(got))
	}
	oc, ok := got[1].Changes[0].(printer.OfflineChange)
	if !ok || got[1].Count() != 1 {
		t.Fatalf("disappearance set: %s", got[1].Summary())
	}
	if oc.Old || !oc.New {
		t.Fatalf("transition: got %v -> %v", oc.Old, oc.New)
	}

	// Still missing: silence.
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("emissions after second miss: got %d, want 2", len(got))
	}

	// Reappearance is a fresh initial observation.
	fb.set(idle("Office"))
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("emissions: got %d, want 3", len(got))
	}
	if got[2].HasChanges() {
		t.Fatalf("reappearance set not empty: %s", got[2].Summary())
	}
}

func TestChangeLoop_NeverFoundNoEmission(t *testing.T) {
	fb := &fakeBackend{}

	l := &changeLoop{backend: fb, name: "Office", sink: func(cs printer.ChangeSet) {
		t.Fatalf("unexpected emission: %s", cs.Summary())
	}}

	for i := 0; i < 3; i++ {
		if err := l.tick(context.Background()); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func TestChangeLoop_BackendErrorTerminates(t *testing.T) {
	fb := &fakeBackend{err: errors.New("service down")}

	l := &changeLoop{backend: fb, name: "Office", sink: func(printer.ChangeSet) {
		t.Fatalf("unexpected emission")
	}}

	err := l.tick(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Office") {
		t.Fatalf("error does not name the printer: %v", err)
	}
}

// ---- raw loop ----

func TestPrinterLoop_InitialAndChange(t *testing.T) {
	fb := &fakeBackend{}
	fb.set(idle("Office"))

	type emission struct {
		cur  printer.Printer
		prev *printer.Printer
	}
	var got []emission
	l := &printerLoop{backend: fb, name: "Office", sink: func(cur printer.Printer, prev *printer.Printer) {
		got = append(got, emission{cur, prev})
	}}

	ctx := context.Background()
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 1 || got[0].prev != nil {
		t.Fatalf("initial emission: %+v", got)
	}

	// Unchanged tick stays silent.
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("emissions: got %d, want 1", len(got))
	}

	offline := idle("Office")
	offline.Offline = true
	fb.set(offline)

	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("emissions: got %d, want 2", len(got))
	}
	if got[1].prev == nil || got[1].prev.Offline || !got[1].cur.Offline {
		t.Fatalf("change emission: %+v", got[1])
	}
}

func TestPrinterLoop_DisappearanceReportsPlaceholder(t *testing.T) {
	fb := &fakeBackend{}
	fb.set(idle("Office"))

	var last printer.Printer
	var lastPrev *printer.Printer
	l := &printerLoop{backend: fb, name: "Office", sink: func(cur printer.Printer, prev *printer.Printer) {
		last, lastPrev = cur, prev
	}}

	ctx := context.Background()
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}

	fb.set()
	if err := l.tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if last != printer.Placeholder("Office") {
		t.Fatalf("placeholder: got %+v", last)
	}
	if lastPrev == nil || lastPrev.Status != printer.StatusIdle {
		t.Fatalf("previous: got %+v", lastPrev)
	}
}

// ---- argument checks ----

func TestWatch_ArgumentChecks(t *testing.T) {
	m := New(&fakeBackend{}, nil)
	ctx := context.Background()
	sink := func(printer.ChangeSet) {}

	if err := m.WatchChanges(ctx, "", time.Second, sink); !errors.Is(err, errNoName) {
		t.Fatalf("empty name: got %v", err)
	}
	if err := m.WatchChanges(ctx, "Office", time.Second, nil); !errors.Is(err, errNilSink) {
		t.Fatalf("nil sink: got %v", err)
	}
	if err := m.WatchChanges(ctx, "Office", 0, sink); err == nil {
		t.Fatalf("zero interval accepted")
	}
}
