package instance

import (
	_ "crypto/sha256" // registers the digest algorithm
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/btsp/graph"
)

var (
	// ErrNoPoints is returned for an instance without points.
	ErrNoPoints = errors.New("instance: no points")

	// ErrBadPoint is returned for a point that does not have exactly two
	// finite coordinates.
	ErrBadPoint = errors.New("instance: bad point")

	// ErrBadEndpoints is returned when path endpoints are out of range or
	// equal.
	ErrBadEndpoints = errors.New("instance: bad path endpoints")
)

// Endpoints are the fixed ends of a Hamiltonian path.
type Endpoints struct {
	S int `yaml:"s" json:"s"`
	T int `yaml:"t" json:"t"`
}

// Instance is a named point set. Path is nil for the cycle variant.
type Instance struct {
	Name   string      `yaml:"name" json:"name"`
	Points [][]float64 `yaml:"points" json:"points"`
	Path   *Endpoints  `yaml:"path,omitempty" json:"path,omitempty"`
}

// Load reads and validates the instance file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	in, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// Parse decodes and validates an instance document.
func Parse(data []byte) (*Instance, error) {
	var in Instance
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Validate checks the points and, when present, the endpoints.
func (in *Instance) Validate() error {
	if len(in.Points) == 0 {
		return ErrNoPoints
	}
	for i, p := range in.Points {
		if len(p) != 2 {
			return fmt.Errorf("%w: point %d has %d coordinates", ErrBadPoint, i, len(p))
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: point %d is %v", ErrBadPoint, i, p)
			}
		}
	}
	if in.Path != nil {
		n := len(in.Points)
		s, t := in.Path.S, in.Path.T
		if s < 0 || s >= n || t < 0 || t >= n || s == t {
			return fmt.Errorf("%w: %d, %d with %d points", ErrBadEndpoints, s, t, n)
		}
	}
	return nil
}

// OrbPoints returns the points in node order.
func (in *Instance) OrbPoints() []orb.Point {
	out := make([]orb.Point, len(in.Points))
	for i, p := range in.Points {
		out[i] = orb.Point{p[0], p[1]}
	}
	return out
}

// Euclidean returns the complete Euclidean graph over the points.
func (in *Instance) Euclidean() *graph.Euclidean {
	return graph.NewEuclidean(in.OrbPoints())
}

// Fingerprint is the sha256 digest of the canonical text of the points
// and endpoints. The name does not take part.
func (in *Instance) Fingerprint() digest.Digest {
	var b strings.Builder
	for _, p := range in.Points {
		b.WriteString(strconv.FormatFloat(p[0], 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p[1], 'g', -1, 64))
		b.WriteByte('\n')
	}
	if in.Path != nil {
		fmt.Fprintf(&b, "path %d %d\n", in.Path.S, in.Path.T)
	}
	return digest.FromString(b.String())
}
