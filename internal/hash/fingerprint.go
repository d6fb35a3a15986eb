// Package hash provides xxHash64 fingerprints used to compare drawn geometry.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Floats computes the xxHash64 of the IEEE-754 bit patterns of vals, in order.
// Negative zero is folded into positive zero so that geometrically equal
// values hash equally.
func Floats(vals ...float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range vals {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
