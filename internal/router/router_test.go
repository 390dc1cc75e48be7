package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptiq/adaptiq/internal/screen"
)

// stubScreen is a minimal Screen for router tests.
type stubScreen struct {
	name string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{name: "first"})
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	r.Push(&stubScreen{name: "second"})
	if r.Depth() != 2 || r.Active().Title() != "second" {
		t.Fatalf("after push: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "first" {
		t.Fatalf("after pop: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("pop emptied the stack: depth=%d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{name: "first"})
	r.Replace(&stubScreen{name: "swapped"})
	if r.Depth() != 1 || r.Active().Title() != "swapped" {
		t.Fatalf("after replace: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{name: "first"})

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "pushed"}})
	if r.Active().Title() != "pushed" {
		t.Fatalf("PushScreenMsg not handled: active=%q", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "replaced"}})
	if r.Active().Title() != "replaced" {
		t.Fatalf("ReplaceScreenMsg not handled: active=%q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" {
		t.Fatalf("PopScreenMsg not handled: active=%q", r.Active().Title())
	}
}
