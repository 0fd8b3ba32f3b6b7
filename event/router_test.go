package event

import (
	"sync"
	"testing"
)

type recordingHandler struct {
	types []EventType
	got   []EventType
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.got = append(h.got, ev.Type)
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)
	h := &recordingHandler{types: []EventType{EventEnter, EventTeleport}}
	r.Register(h)

	var order []string
	r.Subscribe(EventEnter, func(GameEvent) { order = append(order, "listener") })

	q.Push(GameEvent{Type: EventEnter})
	q.Push(GameEvent{Type: EventCloseModal})
	q.Push(GameEvent{Type: EventTeleport, Payload: &TeleportPayload{Slot: 1}})

	ctx := 0
	if n := r.DispatchAll(&ctx); n != 3 {
		t.Errorf("DispatchAll() = %d, want 3", n)
	}
	if ctx != 2 {
		t.Errorf("handler called %d times, want 2", ctx)
	}
	if len(h.got) != 2 || h.got[0] != EventEnter || h.got[1] != EventTeleport {
		t.Errorf("handler saw %v", h.got)
	}
	if len(order) != 1 {
		t.Errorf("listener called %d times, want 1", len(order))
	}
}

func TestRouterCascadingPush(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	var got []EventType
	r.Subscribe(EventTeleport, func(GameEvent) {
		q.Push(GameEvent{Type: EventCameraTeleport})
	})
	r.Subscribe(EventCameraTeleport, func(ev GameEvent) { got = append(got, ev.Type) })

	q.Push(GameEvent{Type: EventTeleport})
	ctx := 0
	r.DispatchAll(&ctx)

	if len(got) != 1 {
		t.Errorf("cascaded event delivered %d times, want 1", len(got))
	}
}

func TestSubscriptionRemove(t *testing.T) {
	r := NewRouter[*int](NewEventQueue())
	calls := 0
	sub := r.Subscribe(EventPhaseChanged, func(GameEvent) { calls++ })
	other := r.Subscribe(EventPhaseChanged, func(GameEvent) { calls += 10 })

	ctx := 0
	r.Dispatch(&ctx, GameEvent{Type: EventPhaseChanged})
	sub.Remove()
	sub.Remove()
	r.Dispatch(&ctx, GameEvent{Type: EventPhaseChanged})

	if calls != 21 {
		t.Errorf("calls = %d, want 21", calls)
	}

	other.Remove()
	if r.HasHandlers(EventPhaseChanged) {
		t.Error("listeners remain after removing all subscriptions")
	}
}

func TestSubscriptionRemoveDuringDispatch(t *testing.T) {
	r := NewRouter[*int](NewEventQueue())
	var sub *Subscription
	calls := 0
	sub = r.Subscribe(EventCaptureChanged, func(GameEvent) {
		calls++
		sub.Remove()
	})
	r.Subscribe(EventCaptureChanged, func(GameEvent) { calls++ })

	ctx := 0
	r.Dispatch(&ctx, GameEvent{Type: EventCaptureChanged})
	r.Dispatch(&ctx, GameEvent{Type: EventCaptureChanged})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRouterClose(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)
	calls := 0
	sub := r.Subscribe(EventEnter, func(GameEvent) { calls++ })

	q.Push(GameEvent{Type: EventEnter})
	r.Close()
	r.Close()
	sub.Remove()

	ctx := 0
	r.DispatchAll(&ctx)
	r.Dispatch(&ctx, GameEvent{Type: EventEnter})
	if calls != 0 {
		t.Errorf("listener called after Close")
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained on Close")
	}
}

func TestEventQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(GameEvent{Type: EventRemoteTouch})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 200 {
		t.Errorf("consumed %d events, want 200", got)
	}
	if q.Consume() != nil {
		t.Error("second Consume should be empty")
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 300; i++ {
		q.Push(GameEvent{Type: EventRemoteKey, Frame: int64(i)})
	}
	events := q.Consume()
	if len(events) != 256 {
		t.Fatalf("len = %d, want 256", len(events))
	}
	if events[len(events)-1].Frame != 299 {
		t.Errorf("last frame = %d, want 299", events[len(events)-1].Frame)
	}
}

func TestEventNames(t *testing.T) {
	if EventOpenArtwork.String() != "EventOpenArtwork" {
		t.Errorf("name = %q", EventOpenArtwork.String())
	}
	if et, ok := GetEventType("EventCameraTeleport"); !ok || et != EventCameraTeleport {
		t.Error("GetEventType lookup failed")
	}
}

func TestEventQueueLenCapped(t *testing.T) {
	q := NewEventQueue()
	if q.Len() != 0 {
		t.Fatalf("empty Len = %d", q.Len())
	}
	for i := 0; i < 300; i++ {
		q.Push(GameEvent{Type: EventRemoteTouch})
	}
	if q.Len() != 256 {
		t.Errorf("Len = %d, want 256", q.Len())
	}
	q.Consume()
	if q.Len() != 0 {
		t.Errorf("Len after drain = %d", q.Len())
	}
}
