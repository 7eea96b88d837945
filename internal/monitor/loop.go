// internal/monitor/loop.go
package monitor

import (
	"context"
	"fmt"
	"time"

	"printmon/internal/backend"
	"printmon/internal/logging"
	"printmon/internal/printer"
)

// changeLoop drives change monitoring of one printer. It owns its previous
// observation exclusively; no other goroutine touches it.
type changeLoop struct {
	backend backend.Backend
	log     *logging.Logger
	name    string
	sink    ChangeSink
	prev    *printer.Printer
}

// tick performs one poll cycle of the per-printer state machine:
//
//	found, no previous  -> emit empty set (initial observation), retain
//	found, changed      -> emit diff, retain
//	found, unchanged    -> no emission
//	missing, previous   -> emit synthetic offline transition, forget
//	missing, nothing    -> no emission
//
// A backend failure ends the loop; retrying is the caller's business.
func (l *changeLoop) tick(ctx context.Context) error {
	cur, err := l.backend.FindPrinter(ctx, l.name)
	if err != nil {
		l.log.Errorf("failed to check printer %q: %v", l.name, err)
		return fmt.Errorf("monitor: check %q: %w", l.name, err)
	}

	switch {
	case cur == nil && l.prev == nil:
		l.log.Debugf("printer %q not found", l.name)

	case cur == nil:
		l.log.Infof("printer %q disappeared", l.name)
		cs := printer.NewChangeSet(l.name)
		cs.Changes = append(cs.Changes, printer.OfflineChange{Old: l.prev.Offline, New: true})
		l.prev = nil
		l.sink(cs)

	case l.prev == nil:
		l.log.Infof("printer %q initial state captured", l.name)
		l.prev = cur
		l.sink(printer.NewChangeSet(cur.Name))

	default:
		cs := printer.Compare(*l.prev, *cur)
		l.prev = cur
		if cs.HasChanges() {
			l.log.Infof("printer %q: %d properties changed", l.name, cs.Count())
			l.sink(cs)
		} else {
			l.log.Debugf("printer %q unchanged", l.name)
		}
	}
	return nil
}

// WatchChanges polls one printer at the given interval and delivers a
// ChangeSet for the initial observation and for every tick on which at
// least one property changed. It runs until ctx is canceled (returns
// ctx.Err()) or the backend fails (returns that error). The sink is called
// synchronously from the loop; once cancellation is observed no further
// sets are delivered.
func (m *Monitor) WatchChanges(ctx context.Context, name string, interval time.Duration, sink ChangeSink) error {
	if name == "" {
		return errNoName
	}
	if sink == nil {
		return errNilSink
	}
	l := &changeLoop{backend: m.backend, log: m.log, name: name, sink: sink}
	return run(ctx, interval, l.tick)
}

// printerLoop drives raw current/previous monitoring of one printer.
type printerLoop struct {
	backend backend.Backend
	log     *logging.Logger
	name    string
	sink    PrinterSink
	prev    *printer.Printer
}

func (l *printerLoop) tick(ctx context.Context) error {
	cur, err := l.backend.FindPrinter(ctx, l.name)
	if err != nil {
		l.log.Errorf("failed to check printer %q: %v", l.name, err)
		return fmt.Errorf("monitor: check %q: %w", l.name, err)
	}

	switch {
	case cur == nil && l.prev == nil:
		l.log.Debugf("printer %q not found", l.name)

	case cur == nil:
		// Disappeared: report a placeholder in unknown/offline state.
		l.log.Infof("printer %q disappeared", l.name)
		prev := l.prev
		l.prev = nil
		l.sink(printer.Placeholder(l.name), prev)

	case l.prev == nil:
		l.log.Infof("printer %q initial state captured", l.name)
		l.prev = cur
		l.sink(*cur, nil)

	default:
		prev := l.prev
		l.prev = cur
		if *cur != *prev {
			l.sink(*cur, prev)
		} else {
			l.log.Debugf("printer %q unchanged", l.name)
		}
	}
	return nil
}

// WatchPrinter is the raw flavor of WatchChanges: the sink receives
// (current, previous) observations instead of computed diffs, previous
// being nil on the initial observation. Emission rules and termination
// behavior match WatchChanges.
func (m *Monitor) WatchPrinter(ctx context.Context, name string, interval time.Duration, sink PrinterSink) error {
	if name == "" {
		return errNoName
	}
	if sink == nil {
		return errNilSink
	}
	l := &printerLoop{backend: m.backend, log: m.log, name: name, sink: sink}
	return run(ctx, interval, l.tick)
}
