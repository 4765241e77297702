package lifecycle

// State tracks the backend process through one application run.
type State string

const (
	StateNotStarted      State = "not_started"
	StatePortAllocated   State = "port_allocated"
	StateCommandResolved State = "command_resolved"
	StateSpawned         State = "spawned"
	StateProbingReady    State = "probing_ready"
	StateReady           State = "ready"
	StateRunning         State = "running"
	StateShuttingDown    State = "shutting_down"
	StateTerminated      State = "terminated"
)

// transitions lists the legal forward moves. Every state except
// Terminated may additionally move straight to Terminated: a failure
// before Ready is terminal for the whole application.
var transitions = map[State]map[State]struct{}{
	StateNotStarted:      {StatePortAllocated: {}},
	StatePortAllocated:   {StateCommandResolved: {}},
	StateCommandResolved: {StateSpawned: {}},
	StateSpawned:         {StateProbingReady: {}},
	StateProbingReady:    {StateReady: {}},
	StateReady:           {StateRunning: {}},
	StateRunning:         {StateShuttingDown: {}},
	StateShuttingDown:    {},
	StateTerminated:      nil,
}

// CanTransition reports whether moving from s to next is legal.
// Terminated is absorbing.
func (s State) CanTransition(next State) bool {
	if s == StateTerminated {
		return false
	}
	if next == StateTerminated {
		return true
	}
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}
