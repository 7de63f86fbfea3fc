package bounce

// Default world size and ball settings
const (
	DefaultWidth  = 300
	DefaultHeight = 500
	DefaultRadius = 10
	DefaultSpeed  = 1

	// MaxBalls caps how many balls mouse clicks can add
	MaxBalls = 4
)

// Keys understood by HandleKey
const (
	KeySpace = "space"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
)

// Starting positions of the four default balls
var defaultBalls = []Ball{
	{X: 75, Y: 125, Dir: South},
	{X: 225, Y: 125, Dir: SouthWest},
	{X: 75, Y: 375, Dir: NorthEast},
	{X: 225, Y: 375, Dir: North},
}
