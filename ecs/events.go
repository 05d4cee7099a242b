package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventType identifies bar events.
type EventType string

const (
	EventTap     EventType = "tap"
	EventSettled EventType = "settled"
	EventBounce  EventType = "bounce"
)

// TapEvent is emitted when a tap starts the current node moving.
type TapEvent struct {
	Bar    Entity
	Node   int
	Dir    int
	Source string
}

// SettledEvent is emitted when a node finishes its run.
type SettledEvent struct {
	Bar   Entity
	Node  int
	Scale float64
	Next  int
}

// BounceEvent is emitted when traversal hits an end of the chain and the
// direction reverses.
type BounceEvent struct {
	Bar  Entity
	Node int
	Dir  int
}

// EventQueue is a simple FIFO queue. Events live for one World.Update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
