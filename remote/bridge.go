// Package remote lets a phone act as a joystick over a websocket.
// Messages are pushed onto the museum event queue and applied on the host goroutine.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/event"
	"github.com/lixenwraith/museum/service"
	"github.com/lixenwraith/museum/status"
)

const (
	sendBuffer   = 8
	writeTimeout = 2 * time.Second
	readLimit    = 4096
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan serverEnvelope
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

// Bridge serves /ws and forwards controller input to an event queue
type Bridge struct {
	addr  string
	queue *event.EventQueue
	reg   *status.Registry

	mu      sync.Mutex
	clients map[string]*client
	last    *State
	dests   []string

	server   *http.Server
	listener net.Listener
	subs     []*event.Subscription

	statMessages *atomic.Int64
	stopped      atomic.Bool
}

// NewBridge creates a bridge listening on addr; an empty addr disables Start
func NewBridge(addr string, queue *event.EventQueue, reg *status.Registry) *Bridge {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Bridge{
		addr:         addr,
		queue:        queue,
		reg:          reg,
		clients:      make(map[string]*client),
		statMessages: reg.Ints.Get(status.KeyRemoteMessages),
	}
}

// Name implements service.Service
func (b *Bridge) Name() string { return "remote" }

// Dependencies implements service.Service
func (b *Bridge) Dependencies() []string { return nil }

// Init implements service.Service
// Recognized args: *engine.Museum (queue and state source), *status.Registry
func (b *Bridge) Init(args ...any) error {
	if reg, ok := service.Arg[*status.Registry](args); ok && reg != nil {
		b.reg = reg
		b.statMessages = reg.Ints.Get(status.KeyRemoteMessages)
	}
	if m, ok := service.Arg[*engine.Museum](args); ok && m != nil {
		b.Attach(m)
	}
	if b.queue == nil && b.addr != "" {
		return errors.New("remote bridge has no event queue")
	}
	return nil
}

// Attach takes the queue from m and mirrors its state to every controller
func (b *Bridge) Attach(m *engine.Museum) {
	b.queue = m.Queue()

	b.mu.Lock()
	b.dests = b.dests[:0]
	for _, d := range m.Scene().Destinations {
		b.dests = append(b.dests, d.Key)
	}
	b.mu.Unlock()

	push := func(event.GameEvent) { b.Publish(stateOf(m)) }
	b.subs = append(b.subs,
		m.Subscribe(event.EventPhaseChanged, push),
		m.Subscribe(event.EventProximityChanged, push),
		m.Subscribe(event.EventCaptureChanged, push),
	)
	b.Publish(stateOf(m))
}

func stateOf(m *engine.Museum) State {
	p := m.Presentation()
	s := State{Phase: p.Phase.String(), Captured: p.Captured, Near: p.Highlight}
	if p.Prompt != nil {
		s.Prompt = p.Prompt.Title + " · " + p.Prompt.Action
	}
	return s
}

// Handler returns the websocket endpoint mux
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", b.serveWS)
	return mux
}

// Start implements service.Service
func (b *Bridge) Start() error {
	if b.addr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return err
	}
	b.listener = ln
	b.server = &http.Server{Handler: b.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := b.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("remote: serve failed: %v", err)
		}
	}()
	log.Printf("remote: listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address once started
func (b *Bridge) Addr() string {
	if b.listener == nil {
		return ""
	}
	return b.listener.Addr().String()
}

// Stop implements service.Service
func (b *Bridge) Stop() error {
	if !b.stopped.CompareAndSwap(false, true) {
		return nil
	}
	for _, sub := range b.subs {
		sub.Remove()
	}
	b.subs = nil

	var err error
	if b.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err = b.server.Shutdown(ctx)
		cancel()
	}

	b.mu.Lock()
	clients := b.clients
	b.clients = make(map[string]*client)
	b.mu.Unlock()
	for _, c := range clients {
		c.close()
	}
	return err
}

// Publish sends state to every controller; slow controllers miss updates
func (b *Bridge) Publish(s State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = &s
	for _, c := range b.clients {
		select {
		case c.send <- serverEnvelope{Type: MsgState, Payload: s}:
		default:
		}
	}
}

// Clients returns the connected session count
func (b *Bridge) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

func (b *Bridge) serveWS(w http.ResponseWriter, r *http.Request) {
	if b.stopped.Load() {
		http.Error(w, "bridge stopped", http.StatusServiceUnavailable)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("remote: ws upgrade failed: %v", err)
		return
	}
	conn.SetReadLimit(readLimit)

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan serverEnvelope, sendBuffer),
	}

	b.mu.Lock()
	b.clients[c.id] = c
	c.send <- serverEnvelope{Type: MsgWelcome, Payload: Welcome{SessionID: c.id, Destinations: append([]string(nil), b.dests...)}}
	if b.last != nil {
		c.send <- serverEnvelope{Type: MsgState, Payload: *b.last}
	}
	b.mu.Unlock()

	b.push(event.GameEvent{Type: event.EventRemoteConnect, Payload: &event.RemotePeerPayload{SessionID: c.id}})

	go b.writeLoop(c)
	b.readLoop(c)

	b.mu.Lock()
	delete(b.clients, c.id)
	b.mu.Unlock()
	c.close()
	b.push(event.GameEvent{Type: event.EventRemoteDisconnect, Payload: &event.RemotePeerPayload{SessionID: c.id}})
}

func (b *Bridge) writeLoop(c *client) {
	for env := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(env); err != nil {
			log.Printf("remote: write to %s failed: %v", c.id, err)
			_ = c.conn.Close()
			return
		}
	}
}

func (b *Bridge) readLoop(c *client) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var env clientEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}
		if ev, ok := decode(c.id, env); ok {
			b.statMessages.Add(1)
			b.push(ev)
		}
	}
}

func (b *Bridge) push(ev event.GameEvent) {
	if b.queue != nil {
		b.queue.Push(ev)
	}
}

// decode maps a client message to a queue event; unknown or malformed messages are dropped
func decode(session string, env clientEnvelope) (event.GameEvent, bool) {
	switch env.Type {
	case MsgTouch:
		var m TouchMessage
		if json.Unmarshal(env.Payload, &m) != nil {
			return event.GameEvent{}, false
		}
		switch m.Phase {
		case event.TouchStart, event.TouchMove, event.TouchEnd, event.TouchCancel:
		default:
			return event.GameEvent{}, false
		}
		return event.GameEvent{
			Type: event.EventRemoteTouch,
			Payload: &event.RemoteTouchPayload{
				SessionID: session,
				Phase:     m.Phase,
				TouchID:   m.ID,
				X:         m.X,
				Y:         m.Y,
				Active:    m.Active,
			},
		}, true

	case MsgKey:
		var m KeyMessage
		if json.Unmarshal(env.Payload, &m) != nil || m.Key == "" {
			return event.GameEvent{}, false
		}
		return event.GameEvent{
			Type:    event.EventRemoteKey,
			Payload: &event.RemoteKeyPayload{SessionID: session, Key: m.Key, Down: m.Down},
		}, true
	}
	return event.GameEvent{}, false
}
