package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/game"
)

var namedKeys = map[string]ebiten.Key{
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"escape": ebiten.KeyEscape,
}

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [...]ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// ebitenKey resolves a binding name: a single lowercase letter or digit, or
// one of the named keys.
func ebitenKey(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return letterKeys[c-'a'], true
		case c >= '0' && c <= '9':
			return digitKeys[c-'0'], true
		}
	}
	return 0, false
}

type binding struct {
	key ebiten.Key
	cmd game.Command
}

// resolveBindings turns the config keymap into ebiten keys.
func resolveBindings(keymap map[string]game.Command) ([]binding, error) {
	bindings := make([]binding, 0, len(keymap))
	for name, cmd := range keymap {
		key, ok := ebitenKey(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", game.ErrInvalidConfig, name)
		}
		bindings = append(bindings, binding{key: key, cmd: cmd})
	}
	return bindings, nil
}
