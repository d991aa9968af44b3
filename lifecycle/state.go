package lifecycle

import "github.com/cockroachdb/errors"

// State is a phase of an Application's single run.
type State int

const (
	Unstarted State = iota
	WindowReady
	InstanceReady
	Running
	ShutDown
	Failed
)

var stateNames = map[State]string{
	Unstarted:     "Unstarted",
	WindowReady:   "WindowReady",
	InstanceReady: "InstanceReady",
	Running:       "Running",
	ShutDown:      "ShutDown",
	Failed:        "Failed",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "Unknown"
	}
	return name
}

var transitions = map[State][]State{
	Unstarted:     {WindowReady, Failed},
	WindowReady:   {InstanceReady, Failed},
	InstanceReady: {Running, Failed},
	Running:       {ShutDown, Failed},
}

// CanTransition reports whether an Application may move from one state to another.
// ShutDown and Failed are terminal.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (app *Application) transition(to State) error {
	if !CanTransition(app.state, to) {
		return errors.Mark(errors.Newf("cannot move from %s to %s", app.state, to), ErrInvalidTransition)
	}

	app.state = to
	return nil
}
