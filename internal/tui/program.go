package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// programRef lets code running outside the event loop, such as the chat
// renderer, deliver messages to a program created after the model.
type programRef struct {
	mu sync.RWMutex
	p  *tea.Program
}

func (r *programRef) set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

// Send delivers msg to the program. It is a no-op before set and after the
// program has exited.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.p
	r.mu.RUnlock()

	if p != nil {
		p.Send(msg)
	}
}
