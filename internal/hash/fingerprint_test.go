package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloats(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Floats(1, 2.5, -3), Floats(1, 2.5, -3))
	})

	t.Run("order sensitive", func(t *testing.T) {
		require.NotEqual(t, Floats(1, 2), Floats(2, 1))
	})

	t.Run("value sensitive", func(t *testing.T) {
		require.NotEqual(t, Floats(1, 2), Floats(1, math.Nextafter(2, 3)))
	})

	t.Run("negative zero folds", func(t *testing.T) {
		require.Equal(t, Floats(0), Floats(math.Copysign(0, -1)))
	})

	t.Run("empty input matches empty digest", func(t *testing.T) {
		require.Equal(t, uint64(0xef46db3751d8e999), Floats())
	})
}
