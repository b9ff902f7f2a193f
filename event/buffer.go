package event

import "github.com/william-cutler/platformer/parameter"

// Buffer collects the events of one simulation step in emission order.
// It belongs to a single game loop and is not safe for concurrent use.
// It grows as needed, so no event is ever dropped.
type Buffer struct {
	events []GameEvent
}

func NewBuffer() *Buffer {
	return &Buffer{events: make([]GameEvent, 0, parameter.EventBufferCapacity)}
}

func (b *Buffer) Push(ev GameEvent) {
	b.events = append(b.events, ev)
}

// Len returns the number of pending events
func (b *Buffer) Len() int { return len(b.events) }

// Drain hands over the pending events and starts a fresh batch;
// the returned slice is never reused by the buffer
func (b *Buffer) Drain() []GameEvent {
	if len(b.events) == 0 {
		return nil
	}
	out := b.events
	b.events = make([]GameEvent, 0, cap(out))
	return out
}
