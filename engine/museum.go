package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/museum/engine/fsm"
	"github.com/lixenwraith/museum/event"
	"github.com/lixenwraith/museum/input"
	"github.com/lixenwraith/museum/physics"
	"github.com/lixenwraith/museum/proximity"
	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/status"
	"github.com/lixenwraith/museum/view"
	"github.com/lixenwraith/museum/vmath"
)

// Options configures a Museum
type Options struct {
	// Platform provides pointer capture; nil disables capture entirely
	Platform view.Platform

	// Registry receives metrics; a private one is created when nil
	Registry *status.Registry

	// KeyTable overrides the default bindings
	KeyTable *input.KeyTable

	// PhaseGraph is an optional path to a YAML phase graph replacing the embedded one
	PhaseGraph string

	// LookSensitivity overrides radians per pointer unit when positive
	LookSensitivity float64
}

// Museum orchestrates input, motion, proximity, capture and the phase machine
// Not safe for concurrent use: hosts call HandleInput and Tick from one goroutine
// Other goroutines feed it only through Queue()
type Museum struct {
	scene      *scene.Config
	state      *input.State
	agg        *input.Aggregator
	integrator physics.Integrator
	detector   *proximity.Detector
	view       *view.Controller
	machine    *fsm.Machine[*Museum]

	queue  *event.EventQueue
	router *event.Router[*status.Registry]
	reg    *status.Registry

	phase       Phase
	openArtwork *scene.Artwork
	prox        proximity.Result
	frame       int64

	// Session owning the joystick when driven remotely, empty when local
	remoteTouchOwner string
	// Keys each remote session holds down, released when it disconnects
	remoteKeys map[string]map[input.Key]struct{}

	subs        []*event.Subscription
	dispatching bool
	closed      bool

	// Cached metric pointers
	statTicks     *atomic.Int64
	statPhaseChg  *atomic.Int64
	statProxChg   *atomic.Int64
	statPeers     *atomic.Int64
	statCaptured  *atomic.Bool
	statNearAvtr  *atomic.Bool
	statPhase     *status.AtomicString
	statNearArt   *status.AtomicString
	statPosX      *status.AtomicFloat
	statPosZ      *status.AtomicFloat
	statYaw       *status.AtomicFloat
	statFrameTime *status.AtomicFloat
}

// New builds a museum in the Entry phase at the scene spawn pose
func New(cfg *scene.Config, opts Options) (*Museum, error) {
	if cfg == nil {
		cfg = scene.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	queue := event.NewEventQueue()
	m := &Museum{
		scene: cfg,
		state: input.NewState(),
		integrator: physics.Integrator{
			Speed:     cfg.MoveSpeed,
			EyeHeight: cfg.EyeHeight,
			Bounds:    cfg.Bounds,
		},
		detector: proximity.NewDetector(cfg.ArtworkRefs(), &cfg.Avatar),
		queue:    queue,
		router:   event.NewRouter[*status.Registry](queue),
		reg:      reg,
		phase:    PhaseEntry,
	}

	m.agg = input.NewAggregator(m.state)
	if opts.KeyTable != nil {
		m.agg.SetKeyTable(opts.KeyTable)
	}

	spawn := cfg.Spawn
	spawn.Y = cfg.EyeHeight
	m.view = view.NewController(opts.Platform, view.CameraPose{Position: spawn, Yaw: cfg.SpawnYaw})
	if opts.LookSensitivity > 0 {
		m.view.SetSensitivity(opts.LookSensitivity)
	}
	m.view.OnChange(m.onCaptureChange)

	m.cacheMetrics()

	machine, err := newPhaseMachine(opts.PhaseGraph)
	if err != nil {
		return nil, fmt.Errorf("phase graph: %w", err)
	}
	for _, name := range []string{nodeEntry, nodeExploring, nodeModal, nodeAvatarDialog} {
		if _, ok := machine.GetStateID(name); !ok {
			return nil, fmt.Errorf("phase graph: missing state %q", name)
		}
	}
	m.machine = machine
	m.machine.OnTransition(m.onTransition)
	if err := m.machine.Init(m); err != nil {
		return nil, fmt.Errorf("phase graph: %w", err)
	}
	if p, ok := phaseForNode(m.machine.ActiveStateName()); ok {
		m.phase = p
	}
	m.statPhase.Store(m.phase.String())

	m.router.Register(m.view)
	m.router.Register(m)

	// Seed proximity so the first tick only reports real transitions
	m.prox, _ = m.detector.Update(spawn)

	return m, nil
}

func (m *Museum) cacheMetrics() {
	m.statTicks = m.reg.Ints.Get(status.KeyTicks)
	m.statPhaseChg = m.reg.Ints.Get(status.KeyPhaseChanges)
	m.statProxChg = m.reg.Ints.Get(status.KeyProximityChanges)
	m.statPeers = m.reg.Ints.Get(status.KeyRemotePeers)
	m.statCaptured = m.reg.Bools.Get(status.KeyCaptured)
	m.statNearAvtr = m.reg.Bools.Get(status.KeyNearAvatar)
	m.statPhase = m.reg.Strings.Get(status.KeyPhase)
	m.statNearArt = m.reg.Strings.Get(status.KeyNearArtwork)
	m.statPosX = m.reg.Floats.Get(status.KeyPosX)
	m.statPosZ = m.reg.Floats.Get(status.KeyPosZ)
	m.statYaw = m.reg.Floats.Get(status.KeyYaw)
	m.statFrameTime = m.reg.Floats.Get(status.KeyFrameMs)
}

// === Accessors ===

// Phase returns the active phase
func (m *Museum) Phase() Phase { return m.phase }

// Pose returns the camera pose
func (m *Museum) Pose() view.CameraPose { return m.view.Pose() }

// Captured reports the pointer capture state
func (m *Museum) Captured() bool { return m.view.Captured() }

// Proximity returns the latest proximity result
func (m *Museum) Proximity() proximity.Result { return m.prox }

// OpenedArtwork returns the artwork shown in the modal, nil outside Modal
func (m *Museum) OpenedArtwork() *scene.Artwork { return m.openArtwork }

// Scene returns the scene configuration
func (m *Museum) Scene() *scene.Config { return m.scene }

// Input returns the input state
func (m *Museum) Input() *input.State { return m.state }

// Queue returns the event queue for cross-goroutine producers
func (m *Museum) Queue() *event.EventQueue { return m.queue }

// Registry returns the metrics registry
func (m *Museum) Registry() *status.Registry { return m.reg }

// Frame returns the number of ticks run
func (m *Museum) Frame() int64 { return m.frame }

// KeyTable returns the active key bindings
func (m *Museum) KeyTable() *input.KeyTable { return m.agg.KeyTable() }

// Closed reports whether Close was called
func (m *Museum) Closed() bool { return m.closed }

func (m *Museum) gate() input.Gate {
	return input.Gate{
		SceneVisible:  m.phase.SceneVisible(),
		OverlayOpen:   m.phase.OverlayOpen(),
		CaptureActive: m.view.Captured(),
	}
}

// === Inputs ===

// HandleInput feeds one host event through the aggregator and applies the resulting intent
func (m *Museum) HandleInput(ev input.Event) {
	if m.closed {
		return
	}
	m.applyInput(ev)
	if !m.state.Joystick.Active() {
		m.remoteTouchOwner = ""
	}
	m.flush()
}

func (m *Museum) applyInput(ev input.Event) {
	intent := m.agg.Process(ev, m.gate())
	if intent == nil {
		return
	}

	switch intent.Type {
	case input.IntentEnter:
		m.Enter()
	case input.IntentInteract:
		m.Interact()
	case input.IntentTeleport:
		m.Teleport(intent.Slot)
	case input.IntentReleaseCapture:
		m.ReleaseCapture()
	case input.IntentDismiss:
		m.CloseOverlay()
	case input.IntentCaptureLost:
		m.view.Lost()
	case input.IntentAcquireCapture:
		m.AcquireCapture()
	case input.IntentOpenTarget:
		if intent.Target == m.scene.Avatar.ID {
			m.OpenAvatar()
		} else {
			m.OpenArtwork(intent.Target)
		}
	case input.IntentLook:
		m.view.Look(intent.DX, intent.DY)
	}
}

// Direction returns the current camera-local movement intent
func (m *Museum) Direction() vmath.Vec3F {
	return m.agg.Direction()
}

// === Tick ===

// Tick runs one simulation step: queued events, motion while captured, proximity, phase timers
func (m *Museum) Tick(dt time.Duration) {
	if m.closed {
		return
	}
	m.frame++
	m.statTicks.Add(1)
	m.statFrameTime.Set(float64(dt) / float64(time.Millisecond))

	m.flush()

	pose := m.view.Pose()
	if m.view.Captured() {
		pos := m.integrator.Step(pose.Position, pose.Yaw, m.agg.Direction(), dt.Seconds())
		m.view.SetPosition(pos)
		pose.Position = pos
	}

	res, change := m.detector.Update(pose.Position)
	m.prox = res
	if change.Any() {
		m.statProxChg.Add(1)
		m.statNearArt.Store(res.ArtworkID())
		m.statNearAvtr.Store(res.NearAvatar)
		m.publish(event.GameEvent{
			Type:    event.EventProximityChanged,
			Payload: &event.ProximityChangedPayload{ArtworkID: res.ArtworkID(), NearAvatar: res.NearAvatar},
		})
	}

	m.machine.Update(m, dt)
	m.flush()

	m.statPosX.Set(pose.Position.X)
	m.statPosZ.Set(pose.Position.Z)
	m.statYaw.Set(pose.Yaw)
}

// === Operations ===

// Enter leaves the entry screen; ignored in any other phase
func (m *Museum) Enter() {
	m.fire(event.GameEvent{Type: event.EventEnter})
}

// OpenArtwork opens the modal for id; unknown ids and non-Exploring phases are ignored
func (m *Museum) OpenArtwork(id string) {
	m.fire(event.GameEvent{Type: event.EventOpenArtwork, Payload: &event.ArtworkPayload{ArtworkID: id}})
}

// OpenAvatar opens the bio dialog; ignored outside Exploring
func (m *Museum) OpenAvatar() {
	m.fire(event.GameEvent{Type: event.EventOpenAvatar})
}

// CloseOverlay closes whichever overlay is open; no-op when none is
func (m *Museum) CloseOverlay() {
	switch m.phase {
	case PhaseModal:
		m.fire(event.GameEvent{Type: event.EventCloseModal})
	case PhaseAvatarDialog:
		m.fire(event.GameEvent{Type: event.EventCloseAvatar})
	}
}

// Interact opens the actionable target; the avatar wins over an artwork in range
func (m *Museum) Interact() {
	if m.phase != PhaseExploring {
		return
	}
	switch m.prox.Actionable() {
	case scene.KindAvatar:
		m.OpenAvatar()
	case scene.KindArtwork:
		m.OpenArtwork(m.prox.Artwork.ID)
	}
}

// Teleport jumps to the destination at slot from any phase
// Unknown slots are ignored; capture is always released
func (m *Museum) Teleport(slot int) {
	if m.closed {
		return
	}
	dest, ok := m.scene.Destination(slot)
	if !ok {
		return
	}
	if !m.fire(event.GameEvent{Type: event.EventTeleport, Payload: &event.TeleportPayload{Slot: slot}}) {
		return
	}
	pos := dest.Position
	pos.Y = m.scene.EyeHeight
	m.queue.Push(event.GameEvent{
		Type:    event.EventCameraTeleport,
		Payload: &event.CameraTeleportPayload{X: pos.X, Y: pos.Y, Z: pos.Z, Yaw: dest.Yaw},
		Frame:   m.frame,
	})
	m.flush()
}

// AcquireCapture requests pointer capture; only while exploring
func (m *Museum) AcquireCapture() {
	if m.closed || m.phase != PhaseExploring {
		return
	}
	m.view.Acquire()
}

// ReleaseCapture gives the pointer back; idempotent
func (m *Museum) ReleaseCapture() {
	m.view.Release()
}

// CaptureLost records a platform-initiated capture release
func (m *Museum) CaptureLost() {
	m.view.Lost()
}

// Subscribe registers a listener for notifications
// Subscriptions are removed individually or all at once by Close
func (m *Museum) Subscribe(t event.EventType, fn event.Listener) *event.Subscription {
	sub := m.router.Subscribe(t, fn)
	m.subs = append(m.subs, sub)
	return sub
}

// Close deregisters every listener, releases capture and resets input; idempotent
func (m *Museum) Close() {
	if m.closed {
		return
	}
	m.view.OnChange(nil)
	m.view.Release()
	for _, sub := range m.subs {
		sub.Remove()
	}
	m.subs = nil
	m.router.Close()
	m.state.Reset()
	m.closed = true
}

// === Internals ===

// fire routes a phase event through the machine
func (m *Museum) fire(ev event.GameEvent) bool {
	if m.closed {
		return false
	}
	ev.Frame = m.frame
	return m.machine.HandleEvent(m, ev)
}

// publish delivers a notification synchronously to listeners
func (m *Museum) publish(ev event.GameEvent) {
	if m.closed {
		return
	}
	ev.Frame = m.frame
	m.router.Dispatch(m.reg, ev)
}

// flush dispatches queued commands; nested calls defer to the outer loop
func (m *Museum) flush() {
	if m.dispatching || m.closed {
		return
	}
	m.dispatching = true
	m.router.DispatchAll(m.reg)
	m.dispatching = false
}

func (m *Museum) onTransition(_ *Museum, from, to fsm.StateID) {
	next, ok := phaseForNode(m.machine.StateName(to))
	if !ok {
		return
	}
	prev := m.phase
	m.phase = next
	if prev == next {
		return
	}
	m.statPhaseChg.Add(1)
	m.statPhase.Store(next.String())
	log.Printf("phase %s -> %s", prev, next)
	m.publish(event.GameEvent{
		Type:    event.EventPhaseChanged,
		Payload: &event.PhaseChangedPayload{From: prev.String(), To: next.String()},
	})
}

func (m *Museum) onCaptureChange(s view.CaptureState) {
	captured := s == view.Captured
	m.state.SetCaptureActive(captured)
	m.statCaptured.Store(captured)
	m.publish(event.GameEvent{
		Type:    event.EventCaptureChanged,
		Payload: &event.CaptureChangedPayload{Captured: captured},
	})
}
