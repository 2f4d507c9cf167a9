package tetris

import "fmt"

// Action is one of the externally triggered session operations.
type Action uint8

const (
	ActionTick Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotateLeft
	ActionRotateRight
)

var actionNames = [...]string{
	ActionTick:        "tick",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionRotateLeft:  "rotate-left",
	ActionRotateRight: "rotate-right",
}

// Actions returns every action.
func Actions() []Action {
	return []Action{ActionTick, ActionMoveLeft, ActionMoveRight, ActionRotateLeft, ActionRotateRight}
}

func (a Action) String() string {
	if int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction maps an action name such as "rotate-left" to its Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown action %q", name)
}
