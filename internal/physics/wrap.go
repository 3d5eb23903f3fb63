package physics

// Bounds is the playfield size. The playfield spans [0, Width] x [0, Height].
type Bounds struct {
	Width  float64
	Height float64
}

// WrapRadius wraps a position across the edges once the entity is fully off
// screen. An entity leaving past -radius reappears at size+radius and vice
// versa, so the result always lies in [-radius, size+radius].
func (b Bounds) WrapRadius(x, y *float64, radius float64) {
	*x = wrapRadius(*x, b.Width, radius)
	*y = wrapRadius(*y, b.Height, radius)
}

// WrapEdge wraps a position edge to edge without regard to size.
// The result always lies in [0, size].
func (b Bounds) WrapEdge(x, y *float64) {
	*x = wrapEdge(*x, b.Width)
	*y = wrapEdge(*y, b.Height)
}

// Clamp pulls a position inside [0, Width] x [0, Height].
func (b Bounds) Clamp(x, y *float64) {
	*x = clamp(*x, 0, b.Width)
	*y = clamp(*y, 0, b.Height)
}

// Center returns the middle of the playfield.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}

// Area returns Width * Height.
func (b Bounds) Area() float64 {
	return b.Width * b.Height
}

func wrapRadius(v, size, radius float64) float64 {
	if v < -radius {
		return size + radius
	}
	if v > size+radius {
		return -radius
	}
	return v
}

func wrapEdge(v, size float64) float64 {
	if v < 0 {
		return size
	}
	if v > size {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
