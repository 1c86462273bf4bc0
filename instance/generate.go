package instance

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed is used when WithSeed is not given, so generated instances
// are reproducible by default.
const defaultSeed int64 = 1

type genConfig struct {
	name  string
	scale float64
	rng   *rand.Rand
}

// GenOption configures a generator.
type GenOption func(*genConfig)

// WithName sets the instance name.
func WithName(name string) GenOption {
	return func(c *genConfig) { c.name = name }
}

// WithScale sets the grid spacing, circle radius or square side. Values
// that are not positive are ignored.
func WithScale(s float64) GenOption {
	return func(c *genConfig) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithSeed seeds the random generators.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newGenConfig(name string, opts []GenOption) genConfig {
	c := genConfig{name: name, scale: 1, rng: rand.New(rand.NewSource(defaultSeed))}
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

// Grid places rows×cols points on an orthogonal grid in row-major order.
func Grid(rows, cols int, opts ...GenOption) (*Instance, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrNoPoints)
	}
	c := newGenConfig(fmt.Sprintf("grid-%dx%d", rows, cols), opts)

	pts := make([][]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			pts = append(pts, []float64{float64(col) * c.scale, float64(r) * c.scale})
		}
	}
	return &Instance{Name: c.name, Points: pts}, nil
}

// Circle places n points evenly on a circle, counter-clockwise from the
// positive x axis.
func Circle(n int, opts ...GenOption) (*Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("circle of %d: %w", n, ErrNoPoints)
	}
	c := newGenConfig(fmt.Sprintf("circle-%d", n), opts)

	pts := make([][]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = []float64{c.scale * math.Cos(a), c.scale * math.Sin(a)}
	}
	return &Instance{Name: c.name, Points: pts}, nil
}

// Uniform draws n points uniformly from the square [0, scale)².
func Uniform(n int, opts ...GenOption) (*Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("uniform %d: %w", n, ErrNoPoints)
	}
	c := newGenConfig(fmt.Sprintf("uniform-%d", n), opts)

	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{c.rng.Float64() * c.scale, c.rng.Float64() * c.scale}
	}
	return &Instance{Name: c.name, Points: pts}, nil
}
