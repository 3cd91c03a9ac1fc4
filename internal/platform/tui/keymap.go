package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-evolution/internal/core"
)

// KeyMapper translates Bubble Tea key messages into game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey converts a tea.KeyMsg to a game action.
// Returns core.ActionNone if the key is not mapped.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "up", "w":
		return core.ActionUp
	case "down", "s":
		return core.ActionDown
	case "left", "a":
		return core.ActionLeft
	case "right", "d":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	case "p":
		return core.ActionPause
	case "q", "ctrl+c":
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}

// MenuAction represents actions available in the menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction converts a key message to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	default:
		return MenuActionNone
	}
}
