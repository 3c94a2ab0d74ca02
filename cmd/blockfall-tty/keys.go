package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:    "up",
	tcell.KeyDown:  "down",
	tcell.KeyLeft:  "left",
	tcell.KeyRight: "right",
	tcell.KeyEnter: "enter",
}

// keyName maps a terminal key to the name used in config bindings.
func keyName(key tcell.Key, r rune) string {
	if key == tcell.KeyRune {
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	}
	return specialKeys[key]
}

// isQuit reports whether the key ends the program.
func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}
