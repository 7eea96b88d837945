// internal/monitor/filter_test.go
package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"printmon/internal/printer"
)

// flipBackend toggles the default flag every lookup while moving the
// printer offline once, so change sets carry both matching and
// non-matching changes.
type flipBackend struct {
	mu    sync.Mutex
	calls int
}

func (f *flipBackend) state() printer.Printer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p := idle("Office")
	p.Default = f.calls%2 == 0
	p.Offline = f.calls > 1
	return p
}

func (f *flipBackend) ListPrinters(ctx context.Context) ([]printer.Printer, error) {
	return []printer.Printer{f.state()}, nil
}

func (f *flipBackend) FindPrinter(ctx context.Context, name string) (*printer.Printer, error) {
	p := f.state()
	return &p, nil
}

func TestWatchProperty_ForwardsMatchingChangesOnly(t *testing.T) {
	m := New(&flipBackend{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []printer.Change

	err := m.WatchProperty(ctx, "Office", printer.FieldOffline, time.Millisecond, func(c printer.Change) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
		cancel()
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}

	// The default flag flipped every tick; only the offline move arrives.
	if len(got) != 1 {
		t.Fatalf("changes: got %d, want 1", len(got))
	}
	if got[0].Field() != printer.FieldOffline {
		t.Fatalf("field: got %v", got[0].Field())
	}
	oc, ok := got[0].(printer.OfflineChange)
	if !ok || oc.Old || !oc.New {
		t.Fatalf("change: %#v", got[0])
	}
}

func TestWatchProperty_NilSink(t *testing.T) {
	m := New(&fakeBackend{}, nil)

	err := m.WatchProperty(context.Background(), "Office", printer.FieldStatus, time.Second, nil)
	if !errors.Is(err, errNilSink) {
		t.Fatalf("got %v", err)
	}
}
