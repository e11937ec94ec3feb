package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovalev/bitgate/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	case "a", "left":
		frame.Set(core.ActionLeft)
	case "d", "right":
		frame.Set(core.ActionRight)
	case " ", "w", "up":
		frame.Set(core.ActionJump)
	case "e", "enter":
		frame.Set(core.ActionUse)
	case "p", "esc":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	}

	// Number keys flip mask bits directly, a debugging aid that the HUD
	// makes visible.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		frame.SetToggleBit(int(key[0] - '1'))
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "t":
		return MenuActionStats
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
