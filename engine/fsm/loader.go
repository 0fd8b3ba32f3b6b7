package fsm

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/museum/event"
)

const rootName = "Root"

// LoadConfig parses a YAML graph and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.InitialStateID = StateNone

	m.AddState(StateRoot, rootName, StateNone)
	nameToID := map[string]StateID{rootName: StateRoot}
	if _, ok := config.States[rootName]; !ok {
		config.States[rootName] = &StateConfig{}
	}

	// Sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != rootName {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nextID := StateRoot + 1
	for _, name := range stateNames {
		nameToID[name] = nextID
		nextID++
	}

	for name, cfg := range config.States {
		if cfg == nil {
			cfg = &StateConfig{}
		}
		id := nameToID[name]

		var node *Node[T]
		if id == StateRoot {
			node = m.nodes[StateRoot]
		} else {
			pName := cfg.Parent
			if pName == "" {
				pName = rootName
			}
			parentID, ok := nameToID[pName]
			if !ok {
				return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
			}
			node = m.AddState(id, name, parentID)
		}

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' OnUpdate: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initialID, ok := nameToID[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID
	return nil
}

// LoadConfigAuto loads the graph from customPath when set, otherwise from the embedded fallback
func LoadConfigAuto[T any](m *Machine[T], customPath string, embedded []byte) error {
	if customPath == "" {
		return m.LoadConfig(embedded)
	}
	data, err := os.ReadFile(customPath)
	if err != nil {
		return fmt.Errorf("failed to read FSM config: %w", err)
	}
	return m.LoadConfig(data)
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any
		if cfg.Action == "EmitEvent" {
			if cfg.Event == "" {
				return nil, fmt.Errorf("EmitEvent action requires 'event' field")
			}
			et, ok := event.GetEventType(cfg.Event)
			if !ok {
				return nil, fmt.Errorf("unknown event type '%s'", cfg.Event)
			}
			args = &EmitEventArgs{Type: et}
		}

		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok || targetID == StateRoot {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		eventType := event.EventNone
		if cfg.Trigger != "Tick" {
			et, ok := event.GetEventType(cfg.Trigger)
			if !ok || et == event.EventNone {
				return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
			}
			eventType = et
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			g, ok := m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = g
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    eventType,
			Guard:    guard,
		})
	}
	return nil
}
