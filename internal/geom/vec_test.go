package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	assert.Equal(t, Pt(5, 8), Add(a, b))
	assert.Equal(t, Pt(3, 4), Sub(b, a))
	assert.Equal(t, Pt(2, 4), Scale(a, 2))
	assert.Equal(t, 16.0, Dot(a, b))
	assert.InDelta(t, 5.0, Dist(a, b), 1e-12)
	assert.InDelta(t, 25.0, DistSq(a, b), 1e-12)
	assert.Equal(t, 7.0, Manhattan(a, b))
	assert.Equal(t, Pt(2.5, 4), Lerp(a, b, 0.5))
}

func TestPolar(t *testing.T) {
	p := Polar(Pt(0, 0), 2, 0)
	assert.InDelta(t, 0, p[0], 1e-12)
	assert.InDelta(t, 2, p[1], 1e-12)

	p = Polar(Pt(1, 1), 1, 90)
	assert.InDelta(t, 2, p[0], 1e-12)
	assert.InDelta(t, 1, p[1], 1e-12)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.Inf(-1)))
}
