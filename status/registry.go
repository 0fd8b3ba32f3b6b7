package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine, view and remote bridge
const (
	KeyTicks            = "engine.ticks"
	KeyPhase            = "engine.phase"
	KeyPhaseChanges     = "engine.phase_changes"
	KeyProximityChanges = "proximity.changes"
	KeyNearArtwork      = "proximity.artwork"
	KeyNearAvatar       = "proximity.avatar"
	KeyCaptured         = "view.captured"
	KeyTeleports        = "view.teleports"
	KeyPosX             = "camera.x"
	KeyPosZ             = "camera.z"
	KeyYaw              = "camera.yaw"
	KeyFrameMs          = "engine.frame_ms"
	KeyRemotePeers      = "remote.peers"
	KeyRemoteMessages   = "remote.messages"
	KeyAudioEnabled     = "audio.enabled"
)

// Registry is the central metrics facade
// Components cache pointers during init; tick loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value" in sorted order per type
// Used by the terminal host debug line and the remote state message
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return lines
}
