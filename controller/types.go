package controller

// Role classifies a managed node. It is fixed by the Layout slot the host
// puts the node in.
type Role uint8

const (
	RoleDismiss         Role = iota // hides the animation-control panel
	RoleActionSelector              // chooses the effect Play will run
	RolePlaybackControl             // Play, Pause/Resume, Reset
)

func (r Role) String() string {
	switch r {
	case RoleDismiss:
		return "dismiss"
	case RoleActionSelector:
		return "action-selector"
	case RolePlaybackControl:
		return "playback-control"
	default:
		return "unknown"
	}
}

// Action identifies the effect chosen by an action-selector button.
type Action uint8

const (
	ActionNone Action = iota // nothing selected yet
	ActionScale
	ActionRandomSprite
	ActionJump
	ActionSpin
	ActionFade
	ActionRunAll
)

// Actions lists every selectable action in RunAll order, followed by RunAll.
var Actions = []Action{ActionScale, ActionRandomSprite, ActionJump, ActionSpin, ActionFade, ActionRunAll}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionScale:
		return "scale"
	case ActionRandomSprite:
		return "random-sprite"
	case ActionJump:
		return "jump"
	case ActionSpin:
		return "spin"
	case ActionFade:
		return "fade"
	case ActionRunAll:
		return "run-all"
	default:
		return "unknown"
	}
}

// Control identifies a playback-control button.
type Control uint8

const (
	ControlPlay Control = iota
	ControlPauseResume
	ControlReset
)

func (c Control) String() string {
	switch c {
	case ControlPlay:
		return "play"
	case ControlPauseResume:
		return "pause-resume"
	case ControlReset:
		return "reset"
	default:
		return "unknown"
	}
}

// State is the coordinator's observable dispatch state.
type State uint8

const (
	StateIdle State = iota
	StateActionSelected
	StateRunning
	StatePaused
	StateReset
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActionSelected:
		return "action-selected"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateReset:
		return "reset"
	default:
		return "unknown"
	}
}
