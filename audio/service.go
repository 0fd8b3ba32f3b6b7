package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/event"
	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/service"
	"github.com/lixenwraith/museum/status"
)

// AudioService plays interface cues for museum notifications
// Handles graceful degradation when no audio device is available
type AudioService struct {
	config *Config
	sink   Sink

	cues chan Cue
	done chan struct{}
	wg   sync.WaitGroup

	subs []*event.Subscription

	disabled atomic.Bool
	running  atomic.Bool
	played   atomic.Uint64
	dropped  atomic.Uint64

	stopOnce sync.Once
}

// NewService creates an audio service writing to sink; nil uses the system speaker
func NewService(sink Sink) *AudioService {
	if sink == nil {
		sink = NewSpeakerSink()
	}
	return &AudioService{
		config: DefaultConfig(),
		sink:   sink,
		cues:   make(chan Cue, parameter.AudioCueQueue),
		done:   make(chan struct{}),
	}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Recognized args: *Config, *engine.Museum, *status.Registry
// A missing output device disables the service without failing startup
func (s *AudioService) Init(args ...any) error {
	if cfg, ok := service.Arg[*Config](args); ok && cfg != nil {
		s.config = cfg
	}
	reg, _ := service.Arg[*status.Registry](args)

	if !s.config.Enabled {
		s.disable(reg)
		return nil
	}

	if err := s.sink.Open(beep.SampleRate(s.config.SampleRate)); err != nil {
		log.Printf("audio init failed: %v; continuing without audio", err)
		s.disable(reg)
		return nil
	}
	if reg != nil {
		reg.Bools.Get(status.KeyAudioEnabled).Store(true)
	}

	if m, ok := service.Arg[*engine.Museum](args); ok && m != nil {
		s.Attach(m)
	}
	return nil
}

func (s *AudioService) disable(reg *status.Registry) {
	s.disabled.Store(true)
	if reg != nil {
		reg.Bools.Get(status.KeyAudioEnabled).Store(false)
	}
}

// Attach subscribes to museum notifications
func (s *AudioService) Attach(m *engine.Museum) {
	s.subs = append(s.subs,
		m.Subscribe(event.EventProximityChanged, s.onProximity),
		m.Subscribe(event.EventPhaseChanged, s.onPhase),
		m.Subscribe(event.EventCameraTeleport, func(event.GameEvent) { s.Play(CueTeleport) }),
	)
}

// Start implements service.Service
func (s *AudioService) Start() error {
	if s.disabled.Load() || !s.running.CompareAndSwap(false, true) {
		return nil
	}
	s.wg.Add(1)
	go s.loop()
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.stopOnce.Do(func() {
		for _, sub := range s.subs {
			sub.Remove()
		}
		s.subs = nil
		close(s.done)
		s.wg.Wait()
		s.running.Store(false)
		if !s.disabled.Load() {
			s.sink.Close()
		}
	})
	return nil
}

func (s *AudioService) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case cue := <-s.cues:
			if st := Build(cue, s.config); st != nil {
				s.sink.Play(st)
				s.played.Add(1)
			}
		}
	}
}

// Play queues cue without blocking; returns false when dropped or disabled
func (s *AudioService) Play(cue Cue) bool {
	if s.disabled.Load() || !s.running.Load() {
		return false
	}
	select {
	case s.cues <- cue:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Stats returns played and dropped cue counts
func (s *AudioService) Stats() (played, dropped uint64) {
	return s.played.Load(), s.dropped.Load()
}

// onProximity chimes only when something comes into range
func (s *AudioService) onProximity(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ProximityChangedPayload)
	if !ok {
		return
	}
	if p.ArtworkID != "" || p.NearAvatar {
		s.Play(CueNear)
	}
}

func (s *AudioService) onPhase(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.PhaseChangedPayload)
	if !ok {
		return
	}
	switch {
	case isOverlay(p.To):
		s.Play(CueOpen)
	case isOverlay(p.From):
		s.Play(CueClose)
	}
}

func isOverlay(phase string) bool {
	return phase == engine.PhaseModal.String() || phase == engine.PhaseAvatarDialog.String()
}
