package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/staggertx/anim"
	"github.com/matt-g-everett/staggertx/util"
)

// TestGenerateLut checks the table is symmetric, starts and ends at zero
// and rises through the first half.
func TestGenerateLut(t *testing.T) {
	curve, err := anim.CurveByName("ease")
	require.NoError(t, err)

	lut := util.GenerateLut(curve, 60)
	require.Len(t, lut, 60)

	assert.Equal(t, 0.0, lut[0])
	assert.Equal(t, 0.0, lut[59])

	for i := 0; i < 30; i++ {
		assert.Equal(t, lut[i], lut[59-i], "table must be symmetric")
	}

	for i := 1; i < 30; i++ {
		assert.GreaterOrEqual(t, lut[i], lut[i-1], "first half must be non-decreasing")
	}

	for _, v := range lut {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
