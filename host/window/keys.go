package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/museum/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyE:          input.KeyE,
	ebiten.KeyM:          input.KeyM,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyZ:          input.KeyZ,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyDigit0:     input.KeyDigit0,
	ebiten.KeyDigit1:     input.KeyDigit1,
	ebiten.KeyDigit2:     input.KeyDigit2,
	ebiten.KeyDigit3:     input.KeyDigit3,
	ebiten.KeyDigit4:     input.KeyDigit4,
	ebiten.KeyDigit5:     input.KeyDigit5,
	ebiten.KeyDigit6:     input.KeyDigit6,
	ebiten.KeyDigit7:     input.KeyDigit7,
	ebiten.KeyDigit8:     input.KeyDigit8,
	ebiten.KeyDigit9:     input.KeyDigit9,
}

// translateKeys maps native keys, dropping the ones the museum has no use for
func translateKeys(dst []input.Key, keys []ebiten.Key) []input.Key {
	for _, k := range keys {
		if ik, ok := keyMap[k]; ok {
			dst = append(dst, ik)
		}
	}
	return dst
}
