package fx

import (
	"math/rand"
	"time"
)

// newRand creates a filter-local random source. A nonzero seed gives a
// deterministic stream; zero seeds from the clock. Filters never use the
// global math/rand source, so concurrent calls stay independent.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
