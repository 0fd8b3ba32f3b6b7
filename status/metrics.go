package status

import (
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// MaxStringLen caps string metrics so debug lines stay one row wide
const MaxStringLen = 32

// AtomicFloat is a float64 metric stored as its bit pattern; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }
func (f *AtomicFloat) Get() float64    { return math.Float64frombits(f.bits.Load()) }

// AtomicString is a short label metric; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// MetricMap hands out one stable pointer per key
// Writers cache the pointer at construction and never touch the map again
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the pointer for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr := m.items[key]
	m.mu.RUnlock()
	if ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr = m.items[key]; ptr == nil {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Range visits metrics in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
