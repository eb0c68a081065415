package core

import "sync"

// Action is a semantic game action, abstracted from physical key presses.
// Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // Space - fire a projectile
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState is the set of actions currently considered held, updated by
// asynchronous press/release events and read once per simulation tick.
// A mutex guards the set so input events and the tick loop may run on
// separate goroutines; when both run on one goroutine (the usual Bubble
// Tea arrangement) the lock is uncontended.
type KeyState struct {
	mu      sync.Mutex
	held    map[Action]bool
	pressed map[Action]bool // edges since last snapshot
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press marks an action as held. Repeated presses of an already-held
// action are idempotent for the held set, but still count as an edge.
func (k *KeyState) Press(a Action) {
	if a == ActionNone {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[a] = true
	k.pressed[a] = true
}

// Release removes an action from the held set.
// Releasing an action that is not held is a no-op.
func (k *KeyState) Release(a Action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, a)
}

// Held reports whether an action is currently held.
func (k *KeyState) Held(a Action) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[a]
}

// Snapshot captures the current input state for one simulation tick and
// clears the accumulated press edges. The returned value is immutable
// from the game's point of view.
func (k *KeyState) Snapshot() InputSnapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	snap := InputSnapshot{
		held:    make(map[Action]bool, len(k.held)),
		pressed: k.pressed,
	}
	for a := range k.held {
		snap.held[a] = true
	}
	k.pressed = make(map[Action]bool)
	return snap
}

// InputSnapshot is the per-tick view of input: which actions are held
// this frame, and which were newly pressed since the previous frame.
type InputSnapshot struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputSnapshot builds a snapshot directly from action lists.
// Convenient for tests driving a game without a KeyState.
func NewInputSnapshot(held []Action, pressed []Action) InputSnapshot {
	snap := InputSnapshot{
		held:    make(map[Action]bool, len(held)),
		pressed: make(map[Action]bool, len(pressed)),
	}
	for _, a := range held {
		snap.held[a] = true
	}
	for _, a := range pressed {
		snap.pressed[a] = true
	}
	return snap
}

// Held reports whether the action is held this frame.
func (s InputSnapshot) Held(a Action) bool {
	return s.held[a]
}

// Pressed reports whether the action was newly pressed this frame.
func (s InputSnapshot) Pressed(a Action) bool {
	return s.pressed[a]
}
