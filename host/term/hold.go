package term

import (
	"sort"
	"time"

	"github.com/lixenwraith/museum/input"
	"github.com/lixenwraith/museum/parameter"
)

// KeyHolds synthesizes key releases for terminals, which only report presses and autorepeats
// A key counts as held until no repeat arrives within its timeout
type KeyHolds struct {
	initial  time.Duration
	repeat   time.Duration
	deadline map[input.Key]time.Time
}

// NewKeyHolds creates a tracker with the default timeouts
func NewKeyHolds() *KeyHolds {
	return &KeyHolds{
		initial:  parameter.KeyHoldInitialTimeout,
		repeat:   parameter.KeyHoldTimeout,
		deadline: make(map[input.Key]time.Time),
	}
}

// Press records a press at now and reports whether it is an autorepeat of a held key
func (h *KeyHolds) Press(k input.Key, now time.Time) (repeat bool) {
	if _, held := h.deadline[k]; held {
		h.deadline[k] = now.Add(h.repeat)
		return true
	}
	h.deadline[k] = now.Add(h.initial)
	return false
}

// Expire removes and returns keys whose deadline passed, in key order
func (h *KeyHolds) Expire(now time.Time) []input.Key {
	var out []input.Key
	for k, d := range h.deadline {
		if !now.Before(d) {
			out = append(out, k)
			delete(h.deadline, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Held reports whether k is currently considered down
func (h *KeyHolds) Held(k input.Key) bool {
	_, ok := h.deadline[k]
	return ok
}

// ReleaseAll forgets every hold and returns the keys that were held
func (h *KeyHolds) ReleaseAll() []input.Key {
	out := make([]input.Key, 0, len(h.deadline))
	for k := range h.deadline {
		out = append(out, k)
	}
	clear(h.deadline)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
