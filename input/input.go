package input

// Key is a backend-neutral keyboard key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Source is anything that can report the current keyboard and window-close state.
type Source interface {
	// PollEvents processes pending window system events.
	PollEvents()
	// KeyPressed reports whether key is down, or was pressed since the last poll
	// when sticky keys are enabled.
	KeyPressed(key Key) bool
	// CloseRequested reports whether the window system asked the window to close.
	CloseRequested() bool
}

// Poller derives the single "keep running" signal from a Source.
type Poller struct {
	ExitKey Key
}

func NewPoller() *Poller {
	return &Poller{ExitKey: KeyEscape}
}

// PollExit pumps events once and returns true if the exit key was pressed or
// the window system signalled a close request.
func (p *Poller) PollExit(src Source) bool {
	src.PollEvents()
	return src.KeyPressed(p.ExitKey) || src.CloseRequested()
}
