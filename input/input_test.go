package input

import "testing"

type fakeSource struct {
	polls   int
	pressed map[Key]bool
	closing bool
}

func (f *fakeSource) PollEvents() { f.polls++ }
func (f *fakeSource) KeyPressed(key Key) bool { return f.pressed[key] }
func (f *fakeSource) CloseRequested() bool { return f.closing }

func TestPollExit(t *testing.T) {
	tests := []struct {
		name    string
		pressed map[Key]bool
		closing bool
		want    bool
	}{
		{"idle", nil, false, false},
		{"escape", map[Key]bool{KeyEscape: true}, false, true},
		{"close request", nil, true, true},
		{"both", map[Key]bool{KeyEscape: true}, true, true},
		{"other key", map[Key]bool{KeyUnknown: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{pressed: tt.pressed, closing: tt.closing}
			got := NewPoller().PollExit(src)
			if got != tt.want {
				t.Errorf("PollExit() = %v, want %v", got, tt.want)
			}
			if src.polls != 1 {
				t.Errorf("expected exactly one event poll, got %d", src.polls)
			}
		})
	}
}

func TestPollExitCustomKey(t *testing.T) {
	p := &Poller{ExitKey: KeyUnknown}
	src := &fakeSource{pressed: map[Key]bool{KeyEscape: true}}
	if p.PollExit(src) {
		t.Fatal("escape should not trigger exit when another exit key is configured")
	}
}
