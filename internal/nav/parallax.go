package nav

import (
	"math"
	"time"
)

// Offset is the background displacement derived from the cursor.
type Offset struct {
	X     float64
	Y     float64
	Scale float64
}

const (
	swayAmplitude = 4.0
	swayPeriod    = 6 * time.Second
)

// Parallax derives the background offset for cursor at elapsed time. It is a
// pure function; nothing it returns feeds back into State.
func Parallax(c Cursor, elapsed time.Duration) Offset {
	phase := 2 * math.Pi * float64(elapsed%swayPeriod) / float64(swayPeriod)
	return Offset{
		X:     (float64(c.Column)-1.5)*20 + swayAmplitude*math.Sin(phase),
		Y:     (float64(c.Row) - 1) * -10,
		Scale: 1.02 + float64(c.Column)*0.01,
	}
}
