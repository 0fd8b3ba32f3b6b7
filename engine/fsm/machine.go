package fsm

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/museum/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// OnTransition installs an observer called after each completed transition
func (m *Machine[T]) OnTransition(fn func(ctx T, from, to StateID)) {
	m.onTransition = fn
}

// Init enters the initial state, running OnEnter from Root down to the leaf
func (m *Machine[T]) Init(ctx T) error {
	if m.InitialStateID == StateNone {
		return errors.New("FSM has no initial state")
	}
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		if n, exists := m.nodes[id]; exists {
			runActions(ctx, n.OnEnter, event.GameEvent{})
		}
	}
	return nil
}

// Update advances the FSM by delta time, running OnUpdate and automatic transitions (Event == EventNone)
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	runActions(ctx, leaf.OnUpdate, event.GameEvent{})

	m.fire(ctx, event.GameEvent{Type: event.EventNone})
}

// HandleEvent routes an external event through the active path
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, ev event.GameEvent) bool {
	if m.activeStateID == StateNone || ev.Type == event.EventNone {
		return false
	}
	return m.fire(ctx, ev)
}

// fire bubbles ev from the active leaf to Root and takes the first passing transition
func (m *Machine[T]) fire(ctx T, ev event.GameEvent) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev.Type {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx, ev) {
				m.transition(ctx, trans.TargetID, ev)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs a state change through the lowest common ancestor
// Transition to the active leaf is a no-op
func (m *Machine[T]) transition(ctx T, targetID StateID, ev event.GameEvent) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	fromID := m.activeStateID
	currentPath := m.activePath
	targetPath := targetNode.Path

	// Find LCA
	lcaIndex := -1
	minLen := len(currentPath)
	if len(targetPath) < minLen {
		minLen = len(targetPath)
	}
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		if node, exists := m.nodes[currentPath[i]]; exists {
			runActions(ctx, node.OnExit, ev)
		}
	}

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		if node, exists := m.nodes[targetPath[i]]; exists {
			runActions(ctx, node.OnEnter, ev)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	if m.onTransition != nil {
		m.onTransition(ctx, fromID, targetID)
	}
}

func runActions[T any](ctx T, actions []Action[T], ev event.GameEvent) {
	for _, action := range actions {
		action.Func(ctx, ev, action.Args)
	}
}

// Reset exits the active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		if node, ok := m.nodes[m.activePath[i]]; ok {
			runActions(ctx, node.OnExit, event.GameEvent{})
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// ActiveStateID returns the current leaf
func (m *Machine[T]) ActiveStateID() StateID {
	return m.activeStateID
}

// ActiveStateName returns the current leaf name
func (m *Machine[T]) ActiveStateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// InState reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) InState(id StateID) bool {
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}

// TimeInState returns time spent in the current leaf
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// StateName returns the name of a node
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	for id, node := range m.nodes {
		if node.Name == name {
			return id, true
		}
	}
	return StateNone, false
}
