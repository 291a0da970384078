package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, int16(3), Abs(int16(3)))
	assert.Equal(t, uint(2), AbsDiff(uint(3), uint(5)))
	assert.Equal(t, 2, AbsDiff(-1, 1))
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, int64(1), Sign(int64(9)))
}
