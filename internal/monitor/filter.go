// internal/monitor/filter.go
package monitor

import (
	"context"
	"time"

	"printmon/internal/printer"
)

// WatchProperty narrows WatchChanges to a single property: the sink
// receives each matching Change on its own. Ticks whose change set holds
// no matching change produce nothing, and neither does the initial
// observation, so the sink only ever sees the property actually moving.
//
// This is a pure projection over WatchChanges, not a second state machine.
func (m *Monitor) WatchProperty(ctx context.Context, name string, field printer.Field, interval time.Duration, sink func(printer.Change)) error {
	if sink == nil {
		return errNilSink
	}
	return m.WatchChanges(ctx, name, interval, func(cs printer.ChangeSet) {
		for _, c := range cs.Changes {
			if c.Field() == field {
				sink(c)
			}
		}
	})
}
