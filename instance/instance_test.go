package instance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/btsp/instance"
)

const square = `
name: square
points:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
path: {s: 0, t: 2}
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_YAML(t *testing.T) {
	in, err := instance.Load(write(t, "square.yaml", square))
	require.NoError(t, err)

	assert.Equal(t, "square", in.Name)
	assert.Equal(t, []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, in.OrbPoints())
	require.NotNil(t, in.Path)
	assert.Equal(t, instance.Endpoints{S: 0, T: 2}, *in.Path)
	assert.Equal(t, 4, in.Euclidean().NumberOfNodes())
}

func TestLoad_JSON(t *testing.T) {
	in, err := instance.Load(write(t, "line.json", `{"name": "line", "points": [[0, 0], [2.5, 0], [5, 0]]}`))
	require.NoError(t, err)

	assert.Equal(t, "line", in.Name)
	assert.Nil(t, in.Path)
	assert.InDelta(t, 2.5, in.Euclidean().Weight(0, 1), 1e-12)
}

func TestLoad_Errors(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cases := []struct {
		name string
		body string
		want error
	}{
		{"empty", "name: x\n", instance.ErrNoPoints},
		{"short point", "points: [[0, 0], [1]]\n", instance.ErrBadPoint},
		{"infinite", "points: [[0, 0], [.inf, 1]]\n", instance.ErrBadPoint},
		{"same endpoints", "points: [[0, 0], [1, 1]]\npath: {s: 1, t: 1}\n", instance.ErrBadEndpoints},
		{"endpoint range", "points: [[0, 0], [1, 1]]\npath: {s: 0, t: 2}\n", instance.ErrBadEndpoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Load(write(t, "bad.yaml", tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err = instance.Parse([]byte("points: {x: 1}"))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := instance.Parse([]byte(square))
	require.NoError(t, err)
	b, err := instance.Parse([]byte(square))
	require.NoError(t, err)

	b.Name = "renamed"
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NoError(t, a.Fingerprint().Validate())

	b.Path = &instance.Endpoints{S: 1, T: 3}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b.Path = nil
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
