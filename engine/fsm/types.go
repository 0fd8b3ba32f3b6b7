package fsm

import (
	"time"

	"github.com/lixenwraith/museum/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards
// A single active leaf is tracked; sibling leaves are mutually exclusive by construction
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]

	// Configuration
	InitialStateID StateID

	// Runtime State
	activeStateID StateID       // The current leaf node
	timeInState   time.Duration // Time elapsed in current state
	activePath    []StateID     // Stack of active states (Root -> Child -> Leaf)

	// Observer invoked after every completed transition
	onTransition func(ctx T, from, to StateID)

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventNone = Tick (auto-transition)
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
// ev is the triggering event; a zero GameEvent on tick evaluation
type GuardFunc[T any] func(ctx T, ev event.GameEvent) bool

// ActionFunc executes a side effect with the triggering event
type ActionFunc[T any] func(ctx T, ev event.GameEvent, args any)
