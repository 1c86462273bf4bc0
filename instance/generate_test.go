package instance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/btsp/instance"
)

func TestGrid(t *testing.T) {
	in, err := instance.Grid(2, 3, instance.WithScale(2))
	require.NoError(t, err)

	assert.Equal(t, "grid-2x3", in.Name)
	assert.Equal(t, [][]float64{{0, 0}, {2, 0}, {4, 0}, {0, 2}, {2, 2}, {4, 2}}, in.Points)
	assert.NoError(t, in.Validate())

	_, err = instance.Grid(0, 3)
	assert.ErrorIs(t, err, instance.ErrNoPoints)
}

func TestCircle(t *testing.T) {
	in, err := instance.Circle(4, instance.WithName("ring"), instance.WithScale(-1))
	require.NoError(t, err)

	assert.Equal(t, "ring", in.Name)
	require.Len(t, in.Points, 4)
	for _, p := range in.Points {
		assert.InDelta(t, 1.0, math.Hypot(p[0], p[1]), 1e-12)
	}
	assert.InDelta(t, 1.0, in.Points[1][1], 1e-12)
}

func TestUniform(t *testing.T) {
	a, err := instance.Uniform(20, instance.WithSeed(5), instance.WithScale(10))
	require.NoError(t, err)
	b, err := instance.Uniform(20, instance.WithSeed(5), instance.WithScale(10))
	require.NoError(t, err)
	c, err := instance.Uniform(20, instance.WithSeed(6), instance.WithScale(10))
	require.NoError(t, err)

	assert.Equal(t, a.Points, b.Points)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	for _, p := range a.Points {
		assert.True(t, p[0] >= 0 && p[0] < 10 && p[1] >= 0 && p[1] < 10)
	}
}

func TestGenerated_YAMLRoundTrip(t *testing.T) {
	in, err := instance.Grid(2, 2)
	require.NoError(t, err)
	in.Path = &instance.Endpoints{S: 0, T: 3}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	back, err := instance.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, in.Fingerprint(), back.Fingerprint())
	assert.Equal(t, in.Name, back.Name)
}
