package tui

// ConstraintKind selects how a Constraint sizes its segment
type ConstraintKind uint8

const (
	ConstraintLength     ConstraintKind = iota // Fixed number of cells
	ConstraintPercentage                       // Share of the total extent
)

// Constraint sizes one segment of a split
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Length is a fixed-size segment
func Length(n int) Constraint {
	return Constraint{Kind: ConstraintLength, Value: n}
}

// Percentage is a segment sized as p percent of the total
func Percentage(p int) Constraint {
	return Constraint{Kind: ConstraintPercentage, Value: p}
}

// size resolves the constraint against total, clamped to what is left
func (c Constraint) size(total, remaining int) int {
	var n int
	switch c.Kind {
	case ConstraintLength:
		n = c.Value
	case ConstraintPercentage:
		n = total * c.Value / 100
	}
	if n > remaining {
		n = remaining
	}
	if n < 0 {
		n = 0
	}
	return n
}

// SplitV stacks segments top to bottom in constraint order
// Earlier segments win when constraints over-allocate; a short region truncates later segments to zero
func SplitV(r Region, cs ...Constraint) []Region {
	regions := make([]Region, len(cs))
	y := 0
	for i, c := range cs {
		h := c.size(r.H, r.H-y)
		regions[i] = r.Sub(0, y, r.W, h)
		y += h
	}
	return regions
}

// SplitH places segments left to right in constraint order
func SplitH(r Region, cs ...Constraint) []Region {
	regions := make([]Region, len(cs))
	x := 0
	for i, c := range cs {
		w := c.size(r.W, r.W-x)
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w
	}
	return regions
}

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}
