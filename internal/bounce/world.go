// Package bounce is the tick logic of a bouncing marble toy: balls travel in
// one of eight directions and reflect off the walls of a rectangular world.
//
// Worlds are values. Tick and the input handlers return a new World and never
// modify the receiver's balls.
package bounce

// Ball is a marble's centre and heading
type Ball struct {
	X   int       `json:"x"`
	Y   int       `json:"y"`
	Dir Direction `json:"dir"`
}

// World is a Width x Height box of balls with a shared radius and speed
type World struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Radius int    `json:"radius"`
	Speed  int    `json:"speed"`
	Balls  []Ball `json:"balls"`
}

// NewWorld returns the default 300x500 world with four balls
func NewWorld() World {
	return World{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Radius: DefaultRadius,
		Speed:  DefaultSpeed,
		Balls:  append([]Ball(nil), defaultBalls...),
	}
}

// Tick advances every ball by Speed along its heading. A ball that would
// cross a wall is clamped to it and has that axis of its heading flipped.
func (w World) Tick() World {
	next := w.withBalls()
	for i, b := range next.Balls {
		next.Balls[i] = w.step(b)
	}
	return next
}

func (w World) step(b Ball) Ball {
	dx, dy := b.Dir.Delta()
	x := b.X + dx*w.Speed
	y := b.Y + dy*w.Speed

	minX, maxX := w.Radius, w.Width-w.Radius
	minY, maxY := w.Radius, w.Height-w.Radius

	if x <= minX || x >= maxX {
		x = clamp(x, minX, maxX)
		if dx != 0 {
			b.Dir = b.Dir.flipHorizontal()
		}
	}
	if y <= minY || y >= maxY {
		y = clamp(y, minY, maxY)
		if dy != 0 {
			b.Dir = b.Dir.flipVertical()
		}
	}

	b.X, b.Y = x, y
	return b
}

// HandleKey applies a key press. Space reverses every ball and the arrow keys
// steer the first ball. Other keys are ignored.
func (w World) HandleKey(key string) World {
	next := w.withBalls()

	switch key {
	case KeySpace:
		for i := range next.Balls {
			next.Balls[i].Dir = next.Balls[i].Dir.Reverse()
		}
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		if len(next.Balls) > 0 {
			next.Balls[0].Dir = arrowDirection(key)
		}
	}

	return next
}

// HandleMouse adds a ball heading south-east at the clicked point, kept inside
// the walls. Clicks are ignored once MaxBalls balls exist.
func (w World) HandleMouse(x, y int) World {
	next := w.withBalls()
	if len(next.Balls) >= MaxBalls {
		return next
	}

	next.Balls = append(next.Balls, Ball{
		X:   clamp(x, w.Radius, w.Width-w.Radius),
		Y:   clamp(y, w.Radius, w.Height-w.Radius),
		Dir: SouthEast,
	})
	return next
}

// InBounds reports whether every ball lies fully inside the world
func (w World) InBounds() bool {
	for _, b := range w.Balls {
		if b.X < w.Radius || b.X > w.Width-w.Radius || b.Y < w.Radius || b.Y > w.Height-w.Radius {
			return false
		}
	}
	return true
}

// withBalls copies w with its own ball slice
func (w World) withBalls() World {
	w.Balls = append(make([]Ball, 0, len(w.Balls)), w.Balls...)
	return w
}

func arrowDirection(key string) Direction {
	switch key {
	case KeyUp:
		return North
	case KeyDown:
		return South
	case KeyLeft:
		return West
	default:
		return East
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
