package view

import "sync"

// Cell owns the current View and serializes access to it
type Cell struct {
	mu      sync.Mutex
	current View
}

// NewCell wraps an initial view
func NewCell(v View) *Cell {
	return &Cell{current: v}
}

// Acquire blocks until exclusive access is granted
// The caller must Release the guard; only one guard is live at a time
func (c *Cell) Acquire() *Guard {
	c.mu.Lock()
	return &Guard{cell: c}
}

// Guard is exclusive access to a Cell's view
type Guard struct {
	cell     *Cell
	released bool
}

// View returns the current view
func (g *Guard) View() View {
	if g.released {
		panic("view: guard used after release")
	}
	return g.cell.current
}

// Swap replaces the current view in place and returns the previous one
func (g *Guard) Swap(v View) View {
	if g.released {
		panic("view: guard used after release")
	}
	prev := g.cell.current
	g.cell.current = v
	return prev
}

// Release gives up access. Safe to call multiple times
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.mu.Unlock()
}
