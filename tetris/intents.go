package tetris

//go:generate go tool stringer -type=Action -trimprefix=Action

// Action is one logical input a front-end can produce.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateLeft
	ActionRotateRight
	ActionHold
	ActionPause
	ActionReset
	ActionExit
)

// Actions lists every action in declaration order.
var Actions = [...]Action{
	ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionHardDrop,
	ActionRotateLeft, ActionRotateRight, ActionHold,
	ActionPause, ActionReset, ActionExit,
}

// Intents is the input for one tick: whether each action is currently held.
// Edge detection and auto-repeat happen inside the session.
type Intents struct {
	MoveLeft    bool
	MoveRight   bool
	SoftDrop    bool
	HardDrop    bool
	RotateLeft  bool
	RotateRight bool
	Hold        bool
	Pause       bool
	Reset       bool
	Exit        bool
}

// Set marks an action as held or released.
func (in *Intents) Set(a Action, held bool) {
	*in.field(a) = held
}

// Has reports whether an action is held.
func (in Intents) Has(a Action) bool {
	return *in.field(a)
}

func (in *Intents) field(a Action) *bool {
	switch a {
	case ActionMoveLeft:
		return &in.MoveLeft
	case ActionMoveRight:
		return &in.MoveRight
	case ActionSoftDrop:
		return &in.SoftDrop
	case ActionHardDrop:
		return &in.HardDrop
	case ActionRotateLeft:
		return &in.RotateLeft
	case ActionRotateRight:
		return &in.RotateRight
	case ActionHold:
		return &in.Hold
	case ActionPause:
		return &in.Pause
	case ActionReset:
		return &in.Reset
	case ActionExit:
		return &in.Exit
	}
	panic("tetris: unknown action " + a.String())
}
