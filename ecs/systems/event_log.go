package systems

import (
	"log"

	"github.com/milk9111/dropbar/ecs"
)

// EventLogSystem prints bar events. It should run last so it sees every
// event pushed during the frame.
type EventLogSystem struct {
	logf func(format string, args ...any)
}

// NewEventLogSystem creates an EventLogSystem writing to the standard logger.
func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{logf: log.Printf}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.logf == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch data := evt.Data.(type) {
		case ecs.TapEvent:
			s.logf("dropbar: bar=%s tap (%s) node=%d dir=%+d", data.Bar, data.Source, data.Node, data.Dir)
		case ecs.SettledEvent:
			s.logf("dropbar: bar=%s node=%d settled at %.0f, next=%d", data.Bar, data.Node, data.Scale, data.Next)
		case ecs.BounceEvent:
			s.logf("dropbar: bar=%s bounce at node=%d, dir now %+d", data.Bar, data.Node, data.Dir)
		default:
			s.logf("dropbar: unhandled event %q", evt.Type)
		}
	}
}
