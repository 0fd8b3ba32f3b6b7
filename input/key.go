package input

import "strings"

// Key is a platform-neutral physical key, named after its US-layout position
// Hosts translate their native key codes into Key values
type Key uint8

const (
	KeyNone Key = iota

	KeyA
	KeyD
	KeyE
	KeyM
	KeyQ
	KeyS
	KeyW
	KeyZ

	KeySpace
	KeyTab
	KeyEnter
	KeyEscape

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:       "None",
	KeyA:          "KeyA",
	KeyD:          "KeyD",
	KeyE:          "KeyE",
	KeyM:          "KeyM",
	KeyQ:          "KeyQ",
	KeyS:          "KeyS",
	KeyW:          "KeyW",
	KeyZ:          "KeyZ",
	KeySpace:      "Space",
	KeyTab:        "Tab",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyDigit0:     "Digit0",
	KeyDigit1:     "Digit1",
	KeyDigit2:     "Digit2",
	KeyDigit3:     "Digit3",
	KeyDigit4:     "Digit4",
	KeyDigit5:     "Digit5",
	KeyDigit6:     "Digit6",
	KeyDigit7:     "Digit7",
	KeyDigit8:     "Digit8",
	KeyDigit9:     "Digit9",
}

var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, keyCount)
	for k := Key(1); k < keyCount; k++ {
		keysByName[strings.ToLower(keyNames[k])] = k
	}
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// KeyByName resolves a key name case-insensitively ("KeyW", "arrowup", "Digit1")
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyForRune maps a printable character to its key, ignoring case
// Used by hosts that receive characters rather than scancodes
func KeyForRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyA
	case 'd', 'D':
		return KeyD
	case 'e', 'E':
		return KeyE
	case 'm', 'M':
		return KeyM
	case 'q', 'Q':
		return KeyQ
	case 's', 'S':
		return KeyS
	case 'w', 'W':
		return KeyW
	case 'z', 'Z':
		return KeyZ
	case ' ':
		return KeySpace
	}
	if r >= '0' && r <= '9' {
		return KeyDigit0 + Key(r-'0')
	}
	return KeyNone
}
