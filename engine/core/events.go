package core

// Event represents a match event
type Event struct {
	Type   EventType
	Tick   uint64
	Team   string
	Number int
	Detail string
}

type EventType uint16

const (
	EvtKickoff EventType = iota
	EvtGoal
	EvtRestart
	EvtRestartTaken
	EvtPossession
	EvtPass
	EvtShot
	EvtTackle
	EvtPunch
	EvtFullTime
)

var eventNames = [...]string{"kickoff", "goal", "restart", "restart-taken", "possession", "pass", "shot", "tackle", "punch", "full-time"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	any       []EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAny registers a handler for every event type
func (eb *EventBus) OnAny(h EventHandler) {
	eb.any = append(eb.any, h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the events queued since the last Dispatch
func (eb *EventBus) Pending() []Event {
	return eb.queue
}

// Dispatch processes all queued events. Handlers run between steps and may
// read the match freely.
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
		for _, h := range eb.any {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
