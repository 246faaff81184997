package app

import "errors"

var ErrAlreadyRun = errors.New("app: Run called more than once")

// InitializationError reports that the windowing subsystem failed to start.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return "failed to initialize windowing subsystem: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

// WindowCreationError reports that the window or its GL context could not be created.
type WindowCreationError struct {
	Err error
}

func (e *WindowCreationError) Error() string {
	return "failed to open window: " + e.Err.Error()
}

func (e *WindowCreationError) Unwrap() error { return e.Err }

// LoaderError reports that OpenGL entry points could not be resolved.
type LoaderError struct {
	Err error
}

func (e *LoaderError) Error() string {
	return "failed to load OpenGL functions: " + e.Err.Error()
}

func (e *LoaderError) Unwrap() error { return e.Err }

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return -1
}
