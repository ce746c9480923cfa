package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/larspath/scalar"
	"github.com/stretchr/testify/assert"
)

// TestEps_MatchesStdlib verifies both epsilons against the definitional
// property: 1+eps > 1 while 1+eps/2 == 1 at the respective precision.
func TestEps_MatchesStdlib(t *testing.T) {
	e64 := scalar.Eps[float64]()
	assert.Equal(t, math.Nextafter(1, 2)-1, e64, "float64 epsilon must be 2^-52")

	e32 := scalar.Eps[float32]()
	assert.Equal(t, math.Nextafter32(1, 2)-1, e32, "float32 epsilon must be 2^-23")
}

// TestEps_NamedTypes verifies that defined types in the constraint set
// resolve to the epsilon of their underlying precision, not a default.
func TestEps_NamedTypes(t *testing.T) {
	type meters float32
	type seconds float64

	assert.Equal(t, meters(math.Nextafter32(1, 2)-1), scalar.Eps[meters]())
	assert.Equal(t, seconds(math.Nextafter(1, 2)-1), scalar.Eps[seconds]())
}

// TestAbs covers sign handling including negative zero.
func TestAbs(t *testing.T) {
	assert.Equal(t, 3.5, scalar.Abs(-3.5))
	assert.Equal(t, 3.5, scalar.Abs(3.5))
	assert.Equal(t, float32(2), scalar.Abs(float32(-2)))
	assert.Equal(t, 0.0, scalar.Abs(0.0))
}

// TestIsFinite rejects NaN and both infinities and accepts ordinary values.
func TestIsFinite(t *testing.T) {
	assert.True(t, scalar.IsFinite(0.0))
	assert.True(t, scalar.IsFinite(-1e300))
	assert.False(t, scalar.IsFinite(math.Inf(1)))
	assert.False(t, scalar.IsFinite(math.Inf(-1)))
	assert.False(t, scalar.IsFinite(math.NaN()))
	assert.False(t, scalar.IsFinite(float32(math.Inf(1))))
}

// TestSqrtHypot spot-checks the generic wrappers at both precisions.
func TestSqrtHypot(t *testing.T) {
	assert.Equal(t, 3.0, scalar.Sqrt(9.0))
	assert.Equal(t, float32(3), scalar.Sqrt(float32(9)))
	assert.Equal(t, 5.0, scalar.Hypot(3.0, 4.0))
	assert.Equal(t, float32(5), scalar.Hypot(float32(3), float32(4)))
}
