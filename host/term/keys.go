package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/museum/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyArrowUp,
	tcell.KeyDown:   input.KeyArrowDown,
	tcell.KeyLeft:   input.KeyArrowLeft,
	tcell.KeyRight:  input.KeyArrowRight,
	tcell.KeyEnter:  input.KeyEnter,
	tcell.KeyTab:    input.KeyTab,
	tcell.KeyEscape: input.KeyEscape,
}

var runeKeys = map[rune]input.Key{
	'a': input.KeyA,
	'd': input.KeyD,
	'e': input.KeyE,
	'm': input.KeyM,
	'q': input.KeyQ,
	's': input.KeyS,
	'w': input.KeyW,
	'z': input.KeyZ,
	' ': input.KeySpace,
	'0': input.KeyDigit0,
	'1': input.KeyDigit1,
	'2': input.KeyDigit2,
	'3': input.KeyDigit3,
	'4': input.KeyDigit4,
	'5': input.KeyDigit5,
	'6': input.KeyDigit6,
	'7': input.KeyDigit7,
	'8': input.KeyDigit8,
	'9': input.KeyDigit9,
}

// translateKey maps a tcell key event to a physical key; letters are case-insensitive
func translateKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := runeKeys[r]
		return k, ok
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}

// isQuit reports the host exit chords; plain q is a movement key on AZERTY layouts
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ
}

// isHoldKey reports keys whose release must be synthesized
// One-shot keys get an immediate release instead
func isHoldKey(table *input.KeyTable, k input.Key) bool {
	return table.Lookup(k).Action.Held()
}
