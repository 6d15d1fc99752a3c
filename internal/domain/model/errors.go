package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared across the service. Handlers translate these into
// HTTP status codes; nothing below the handler layer knows about HTTP.
var (
	// ErrStoreUnavailable means the store file itself is missing. List
	// queries suppress this into an empty result; single-entity lookups
	// surface it as not-found.
	ErrStoreUnavailable = errors.New("store file does not exist")

	// ErrNotFound means the store exists but the requested entity does not.
	ErrNotFound = errors.New("entity not found")

	// ErrExecutableNotFound means the simulation binary is absent. No
	// process is spawned in this case.
	ErrExecutableNotFound = errors.New("simulation executable not found")

	// ErrRunInProgress means another simulation process currently holds
	// the single run slot.
	ErrRunInProgress = errors.New("a simulation run is already in progress")

	// ErrSimulationTimedOut means the simulation process exceeded the
	// configured deadline and was killed.
	ErrSimulationTimedOut = errors.New("simulation run timed out")
)

// SimulationError reports a simulation process that started but exited
// non-zero. It carries the captured stderr for diagnostics.
type SimulationError struct {
	ExitCode int
	Stderr   string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation failed with exit code %d: %s", e.ExitCode, e.Stderr)
}

// QueryError wraps an unexpected failure while querying the store
// (malformed rows, driver errors). Distinct from the store being absent.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
