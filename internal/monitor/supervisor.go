// internal/monitor/supervisor.go
package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// watchGroup fans N per-printer loops out and the first failure back in.
// Each loop runs in its own goroutine; one slow or dead printer never
// blocks the others. When any loop returns, the rest are canceled and
// awaited, and that first error is the group's result. Group cancellation
// surfaces as ctx.Err().
func (m *Monitor) watchGroup(ctx context.Context, names []string, start func(ctx context.Context, name string) error) error {
	if len(names) == 0 {
		return errors.New("monitor: no printers to watch")
	}

	session := uuid.NewString()
	m.log.Infof("session %s: watching %d printers", session, len(names))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, len(names))
	for _, name := range names {
		go func(name string) {
			errc <- start(ctx, name)
		}(name)
	}

	err := <-errc
	cancel()
	for i := 1; i < len(names); i++ {
		<-errc
	}

	m.log.Infof("session %s: monitoring ended: %v", session, err)
	return err
}

// WatchAll monitors every named printer concurrently with independent
// polling, delivering every ChangeSet to the one sink. Sets from one
// printer arrive in emission order; across printers there is no ordering,
// and the sink is invoked concurrently. The first loop failure ends the
// whole group with that error; surviving loops are canceled, not drained.
func (m *Monitor) WatchAll(ctx context.Context, names []string, interval time.Duration, sink ChangeSink) error {
	if sink == nil {
		return errNilSink
	}
	return m.watchGroup(ctx, names, func(ctx context.Context, name string) error {
		return m.WatchChanges(ctx, name, interval, sink)
	})
}

// WatchAllPrinters is WatchAll in raw current/previous mode.
func (m *Monitor) WatchAllPrinters(ctx context.Context, names []string, interval time.Duration, sink PrinterSink) error {
	if sink == nil {
		return errNilSink
	}
	return m.watchGroup(ctx, names, func(ctx context.Context, name string) error {
		return m.WatchPrinter(ctx, name, interval, sink)
	})
}
