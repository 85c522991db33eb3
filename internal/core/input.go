package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone             Action = iota
	ActionUp                      // move the cursor up
	ActionDown                    // move the cursor down
	ActionLeft                    // move the cursor left
	ActionRight                   // move the cursor right
	ActionReveal                  // primary action on the cursor cell
	ActionFlag                    // secondary action on the cursor cell
	ActionChord                   // reveal around a satisfied number
	ActionConfirm                 // confirm a menu selection
	ActionBack                    // leave the current view
	ActionRestart                 // start a new round
	ActionQuit                    // exit the program
	ActionPause                   // pause or resume the round
	ActionToggleAutoFlag          // flip the auto-flag assist
	ActionToggleAutoReveal        // flip the auto-reveal assist
)

var actionNames = map[Action]string{
	ActionNone:             "None",
	ActionUp:               "Up",
	ActionDown:             "Down",
	ActionLeft:             "Left",
	ActionRight:            "Right",
	ActionReveal:           "Reveal",
	ActionFlag:             "Flag",
	ActionChord:            "Chord",
	ActionConfirm:          "Confirm",
	ActionBack:             "Back",
	ActionRestart:          "Restart",
	ActionQuit:             "Quit",
	ActionPause:            "Pause",
	ActionToggleAutoFlag:   "ToggleAutoFlag",
	ActionToggleAutoReveal: "ToggleAutoReveal",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Click is a mouse press in screen coordinates.
type Click struct {
	X, Y      int
	Secondary bool // right button
}

// InputFrame collects the input gathered between two simulation steps.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks are applied in arrival order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a mouse press.
func (f *InputFrame) AddClick(c Click) {
	f.Clicks = append(f.Clicks, c)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets the frame for the next step.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}
