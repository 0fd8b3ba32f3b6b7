package input

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyTable maps keys to action bindings
type KeyTable struct {
	Keys map[Key]KeyEntry
}

// DefaultKeyTable returns the default bindings
// Movement accepts both QWERTY (WASD) and AZERTY (ZQSD) layouts plus arrows
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[Key]KeyEntry{
			KeyW:          {Action: ActionForward},
			KeyZ:          {Action: ActionForward},
			KeyArrowUp:    {Action: ActionForward},
			KeyS:          {Action: ActionBackward},
			KeyArrowDown:  {Action: ActionBackward},
			KeyA:          {Action: ActionLeft},
			KeyQ:          {Action: ActionLeft},
			KeyArrowLeft:  {Action: ActionLeft},
			KeyD:          {Action: ActionRight},
			KeyArrowRight: {Action: ActionRight},

			KeyE:      {Action: ActionInteract},
			KeySpace:  {Action: ActionInteract},
			KeyTab:    {Action: ActionReleaseCapture},
			KeyM:      {Action: ActionReleaseCapture},
			KeyEscape: {Action: ActionDismiss},
			KeyEnter:  {Action: ActionEnter},

			KeyDigit1: {Action: ActionTeleport, Slot: 0},
			KeyDigit2: {Action: ActionTeleport, Slot: 1},
			KeyDigit3: {Action: ActionTeleport, Slot: 2},
			KeyDigit4: {Action: ActionTeleport, Slot: 3},
		},
	}
}

// Lookup returns the binding for k, or a zero entry
func (kt *KeyTable) Lookup(k Key) KeyEntry {
	return kt.Keys[k]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{Keys: make(map[Key]KeyEntry, len(kt.Keys))}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Format is a flat mapping of key name to action name:
//
//	KeyF: interact
//	Digit5: teleport_5
//	KeyM: none
//
// Returns error on unknown key names, unknown actions or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{Keys: make(map[Key]KeyEntry, len(raw))}
	for keyStr, actionName := range raw {
		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown key name: %q", keyStr)
		}
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("keymap: key %q: %w", keyStr, err)
		}
		kt.Keys[k] = entry
	}
	return kt, nil
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, v := range override.Keys {
		if v.Action == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	return result
}
