package scan

import "fmt"

// Region is a rectangle in pixel coordinates.
type Region struct {
	X, Y          int
	Width, Height int
}

// Full returns the region covering a width×height buffer.
func Full(width, height int) Region {
	return Region{Width: width, Height: height}
}

// clip intersects r with a width×height buffer.
func (r Region) clip(width, height int) Region {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, width), min(r.Y+r.Height, height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Region{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// CardinalPoints holds the extreme coordinates of the matching pixels of a
// scan and the sample offset of the pixel that first reached each extreme.
//
// An unreached extreme keeps its sentinel: Top and Left start one past the
// region, Bottom and Right start at zero.
type CardinalPoints struct {
	Top, TopIndex       int
	Bottom, BottomIndex int
	Left, LeftIndex     int
	Right, RightIndex   int
}

// newPoints returns points initialized to the sentinels of r.
func newPoints(r Region) CardinalPoints {
	return CardinalPoints{
		Top:  r.Y + r.Height,
		Left: r.X + r.Width,
	}
}

// observe records a match at (x, y) found at sample offset i. Comparisons
// are strict, so the first pixel to reach an extreme keeps its index.
func (c *CardinalPoints) observe(x, y, i int) {
	if y < c.Top {
		c.Top, c.TopIndex = y, i
	}
	if x < c.Left {
		c.Left, c.LeftIndex = x, i
	}
	if x > c.Right {
		c.Right, c.RightIndex = x, i
	}
	if y > c.Bottom {
		c.Bottom, c.BottomIndex = y, i
	}
}

// Width returns Right-Left+1, or ErrNoMatchFound if nothing matched.
func (c CardinalPoints) Width() (int, error) {
	if c.Right < c.Left {
		return 0, ErrNoMatchFound
	}
	return c.Right - c.Left + 1, nil
}

// Height returns Bottom-Top+1, or ErrNoMatchFound if nothing matched.
func (c CardinalPoints) Height() (int, error) {
	if c.Bottom < c.Top {
		return 0, ErrNoMatchFound
	}
	return c.Bottom - c.Top + 1, nil
}

// Found reports whether at least one pixel matched.
func (c CardinalPoints) Found() bool {
	return c.Right >= c.Left && c.Bottom >= c.Top
}

// Expand widens c to also cover o.
func (c *CardinalPoints) Expand(o CardinalPoints) {
	c.observeX(o.Left, o.LeftIndex)
	c.observeX(o.Right, o.RightIndex)
	c.observeY(o.Top, o.TopIndex)
	c.observeY(o.Bottom, o.BottomIndex)
}

func (c *CardinalPoints) observeX(x, i int) {
	if x < c.Left {
		c.Left, c.LeftIndex = x, i
	}
	if x > c.Right {
		c.Right, c.RightIndex = x, i
	}
}

func (c *CardinalPoints) observeY(y, i int) {
	if y < c.Top {
		c.Top, c.TopIndex = y, i
	}
	if y > c.Bottom {
		c.Bottom, c.BottomIndex = y, i
	}
}

func (c CardinalPoints) String() string {
	return fmt.Sprintf("CardinalPoints{top %d@%d, bottom %d@%d, left %d@%d, right %d@%d}",
		c.Top, c.TopIndex, c.Bottom, c.BottomIndex, c.Left, c.LeftIndex, c.Right, c.RightIndex)
}
