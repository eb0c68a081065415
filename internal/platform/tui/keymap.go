package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// heldAction reports whether an action is level-sensed (read from the
// held-key set each frame) as opposed to edge-triggered.
func heldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// HeldTracker synthesizes key releases. Terminals deliver key presses
// and auto-repeat but no release events, so each level-sensed action is
// held for a short window that every repeat refreshes; when the window
// expires the action is released from the key state.
type HeldTracker struct {
	ttl map[core.Action]int
}

// NewHeldTracker creates an empty tracker.
func NewHeldTracker() *HeldTracker {
	return &HeldTracker{ttl: make(map[core.Action]int)}
}

// holdWindow returns the hold duration in ticks. It must outlast the
// terminal's initial auto-repeat delay (commonly ~300-500ms) or held keys
// would flicker between the first press and the first repeat.
func holdWindow(tickRate int) int {
	w := tickRate / 2
	if w < 1 {
		w = 1
	}
	return w
}

// Press registers a press (or auto-repeat) of an action, refreshing its
// hold window.
func (t *HeldTracker) Press(a core.Action, tickRate int) {
	if heldAction(a) {
		t.ttl[a] = holdWindow(tickRate)
	}
}

// Tick ages all held actions by one tick and releases expired ones from
// the key state.
func (t *HeldTracker) Tick(keys *core.KeyState) {
	for a, remaining := range t.ttl {
		remaining--
		if remaining <= 0 {
			delete(t.ttl, a)
			keys.Release(a)
			continue
		}
		t.ttl[a] = remaining
	}
}
