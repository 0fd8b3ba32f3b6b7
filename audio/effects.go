package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/museum/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero gain is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// chime is a bell tone with an octave overtone
func chime(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(659.25, parameter.ChimeDuration, WaveSine, rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	over := NewEnvelope(NewOscillator(1318.51, parameter.ChimeDuration, WaveSine, rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease/2, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

func click(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1200, parameter.ClickDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.ClickDuration, parameter.ClickAttack, parameter.ClickRelease, rate)
}

// closeTone plays two descending notes
func closeTone(rate beep.SampleRate) beep.Streamer {
	d := parameter.CloseNoteDuration
	n1 := NewEnvelope(NewOscillator(587.33, d, WaveSine, rate), d, parameter.CloseAttack, parameter.CloseRelease, rate)
	n2 := NewEnvelope(NewOscillator(440, d, WaveSine, rate), d, parameter.CloseAttack, parameter.CloseRelease, rate)
	return beep.Seq(n1, n2)
}

func whoosh(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.WhooshDuration, WaveNoise, rate)
	return NewEnvelope(noise, parameter.WhooshDuration, parameter.WhooshAttack, parameter.WhooshRelease, rate)
}

// Build returns a fresh streamer for cue, nil for unknown cues
func Build(cue Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueNear:
		s = chime(rate)
	case CueOpen:
		s = click(rate)
	case CueClose:
		s = closeTone(rate)
	case CueTeleport:
		s = whoosh(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume(cue))
}

// Duration returns the nominal length of cue
func Duration(cue Cue) time.Duration {
	switch cue {
	case CueNear:
		return parameter.ChimeDuration
	case CueOpen:
		return parameter.ClickDuration
	case CueClose:
		return 2 * parameter.CloseNoteDuration
	case CueTeleport:
		return parameter.WhooshDuration
	}
	return 0
}
