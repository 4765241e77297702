package lifecycle_test

import (
	"testing"

	"easyshell/internal/lifecycle"
)

func TestStateHappyPathTransitions(t *testing.T) {
	order := []lifecycle.State{
		lifecycle.StateNotStarted,
		lifecycle.StatePortAllocated,
		lifecycle.StateCommandResolved,
		lifecycle.StateSpawned,
		lifecycle.StateProbingReady,
		lifecycle.StateReady,
		lifecycle.StateRunning,
		lifecycle.StateShuttingDown,
		lifecycle.StateTerminated,
	}
	for i := 0; i < len(order)-1; i++ {
		if !order[i].CanTransition(order[i+1]) {
			t.Errorf("expected %s -> %s to be legal", order[i], order[i+1])
		}
	}
}

func TestStateRejectsSkips(t *testing.T) {
	cases := []struct {
		from, to lifecycle.State
	}{
		{lifecycle.StateNotStarted, lifecycle.StateSpawned},
		{lifecycle.StatePortAllocated, lifecycle.StateReady},
		{lifecycle.StateSpawned, lifecycle.StateRunning},
		{lifecycle.StateRunning, lifecycle.StateReady},
		{lifecycle.StateReady, lifecycle.StateSpawned},
	}
	for _, tc := range cases {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestStateAnyStateMayTerminate(t *testing.T) {
	states := []lifecycle.State{
		lifecycle.StateNotStarted,
		lifecycle.StatePortAllocated,
		lifecycle.StateCommandResolved,
		lifecycle.StateSpawned,
		lifecycle.StateProbingReady,
		lifecycle.StateReady,
		lifecycle.StateRunning,
		lifecycle.StateShuttingDown,
	}
	for _, s := range states {
		if !s.CanTransition(lifecycle.StateTerminated) {
			t.Errorf("expected %s -> terminated to be legal", s)
		}
	}
}

func TestStateTerminatedIsAbsorbing(t *testing.T) {
	targets := []lifecycle.State{
		lifecycle.StateNotStarted,
		lifecycle.StatePortAllocated,
		lifecycle.StateRunning,
		lifecycle.StateTerminated,
	}
	for _, next := range targets {
		if lifecycle.StateTerminated.CanTransition(next) {
			t.Errorf("expected terminated -> %s to be rejected", next)
		}
	}
}
