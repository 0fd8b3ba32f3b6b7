package event

// Handler processes specific event types within a context T
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Listener is a plain callback subscribed to one event type
type Listener func(event GameEvent)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Subscription is the handle returned by Router.Subscribe
type Subscription struct {
	remove func()
}

// Remove deregisters the listener; safe to call more than once
func (s *Subscription) Remove() {
	if s == nil || s.remove == nil {
		return
	}
	s.remove()
	s.remove = nil
}

// Router dispatches events to registered handlers and listeners
//
// Architecture:
//   - Single-threaded dispatch on the host goroutine
//   - Handlers run before listeners, each in registration order
//   - Queued events are consumed by DispatchAll; Dispatch delivers one event immediately
//   - Context T is passed to handlers
type Router[T any] struct {
	handlers  map[EventType][]Handler[T]
	listeners map[EventType][]listenerEntry
	nextID    uint64
	queue     *EventQueue
	closed    bool
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers:  make(map[EventType][]Handler[T]),
		listeners: make(map[EventType][]listenerEntry),
		queue:     queue,
	}
}

// Queue returns the backing queue
func (r *Router[T]) Queue() *EventQueue {
	return r.queue
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	if r.closed {
		return
	}
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Subscribe adds a listener for one event type
// The returned Subscription removes exactly this listener
func (r *Router[T]) Subscribe(t EventType, fn Listener) *Subscription {
	if r.closed || fn == nil {
		return &Subscription{}
	}
	r.nextID++
	id := r.nextID
	r.listeners[t] = append(r.listeners[t], listenerEntry{id: id, fn: fn})

	return &Subscription{remove: func() { r.unsubscribe(t, id) }}
}

func (r *Router[T]) unsubscribe(t EventType, id uint64) {
	entries := r.listeners[t]
	for i, e := range entries {
		if e.id == id {
			// Copy so an in-flight dispatch keeps iterating its snapshot
			next := make([]listenerEntry, 0, len(entries)-1)
			next = append(next, entries[:i]...)
			next = append(next, entries[i+1:]...)
			if len(next) == 0 {
				delete(r.listeners, t)
			} else {
				r.listeners[t] = next
			}
			return
		}
	}
}

// Dispatch delivers a single event synchronously, bypassing the queue
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) {
	if r.closed {
		return
	}
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
	for _, l := range r.listeners[ev.Type] {
		l.fn(ev)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Events pushed by handlers during dispatch are delivered in the same call
func (r *Router[T]) DispatchAll(ctx T) int {
	n := 0
	for !r.closed {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			r.Dispatch(ctx, ev)
			n++
		}
	}
	return n
}

// HasHandlers returns true if any handler or listener is registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0 || len(r.listeners[t]) > 0
}

// HandlerCount returns the number of handlers and listeners registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t]) + len(r.listeners[t])
}

// Close drops every handler and listener and drains the queue
// Outstanding Subscription handles become no-ops
func (r *Router[T]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.handlers = make(map[EventType][]Handler[T])
	r.listeners = make(map[EventType][]listenerEntry)
	r.queue.Consume()
}
