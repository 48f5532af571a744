package tui

import "github.com/lixenwraith/pulseshitter/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// FromFrame returns a region covering the whole frame
func FromFrame(f *terminal.Frame) Region {
	return NewRegion(f.Cells, f.Width, 0, 0, f.Width, f.Height)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// HMargin returns a region shrunk by n columns on the left and right
func (r Region) HMargin(n int) Region {
	return r.Sub(n, 0, r.W-2*n, r.H)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Get returns the cell at region-relative coordinates, zero cell when outside
func (r Region) Get(x, y int) terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return terminal.Cell{}
	}
	idx := (r.Y+y)*r.TotalW + r.X + x
	if uint(idx) < uint(len(r.Cells)) {
		return r.Cells[idx]
	}
	return terminal.Cell{}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGBDefault, bg, terminal.AttrNone)
		}
	}
}

// Clear fills region with spaces and default colors
func (r Region) Clear() {
	r.Fill(terminal.RGBDefault)
}

// Contains reports whether absolute screen coordinates fall inside the region
func (r Region) Contains(absX, absY int) bool {
	return absX >= r.X && absX < r.X+r.W && absY >= r.Y && absY < r.Y+r.H
}

// Empty reports whether the region has no drawable area
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
