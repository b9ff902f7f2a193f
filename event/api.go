package event

// Listener consumes events dispatched after each simulation step
type Listener interface {
	HandleEvent(GameEvent)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(GameEvent)

func (f ListenerFunc) HandleEvent(ev GameEvent) { f(ev) }

// Emit pushes an event stamped with tick
func Emit(b *Buffer, t EventType, payload any, tick int64) {
	b.Push(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Dispatch drains b into every listener in subscription order and returns the drained events
func Dispatch(b *Buffer, listeners []Listener) []GameEvent {
	events := b.Drain()
	for _, ev := range events {
		for _, l := range listeners {
			l.HandleEvent(ev)
		}
	}
	return events
}
