package app

//go:generate stringer -type=State

// State is the lifecycle state of the frame loop.
type State int

const (
	Running State = iota
	Terminating
	Terminated
)
