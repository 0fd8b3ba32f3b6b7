package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/museum/parameter"
)

// Sink plays finished streamers
type Sink interface {
	Open(rate beep.SampleRate) error
	Play(s beep.Streamer)
	Close()
}

// speakerSink routes cues into a single mixer on the system speaker
type speakerSink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	opened bool
}

// NewSpeakerSink returns a sink backed by the default output device
func NewSpeakerSink() Sink {
	return &speakerSink{mixer: &beep.Mixer{}}
}

func (s *speakerSink) Open(rate beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.opened = true
	return nil
}

func (s *speakerSink) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *speakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.opened = false
}
