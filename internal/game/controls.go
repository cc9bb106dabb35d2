package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tankterrain/internal/game/entity"
)

// keyState reports whether a key is held.
type keyState interface {
	IsKeyDown(sdl.Scancode) bool
}

func anyDown(keys keyState, codes ...sdl.Scancode) bool {
	for _, c := range codes {
		if keys.IsKeyDown(c) {
			return true
		}
	}
	return false
}

// readControls maps held keys to tank controls.
func readControls(keys keyState) entity.Controls {
	return entity.Controls{
		Forward:     anyDown(keys, sdl.SCANCODE_W, sdl.SCANCODE_UP),
		Backward:    anyDown(keys, sdl.SCANCODE_S, sdl.SCANCODE_DOWN),
		TurnLeft:    anyDown(keys, sdl.SCANCODE_A, sdl.SCANCODE_LEFT),
		TurnRight:   anyDown(keys, sdl.SCANCODE_D, sdl.SCANCODE_RIGHT),
		TurretLeft:  anyDown(keys, sdl.SCANCODE_Q),
		TurretRight: anyDown(keys, sdl.SCANCODE_E),
		CannonUp:    anyDown(keys, sdl.SCANCODE_R),
		CannonDown:  anyDown(keys, sdl.SCANCODE_F),
	}
}
