package catalog_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/catalog"
)

func TestNormalize(t *testing.T) {
	t.Run("WorkedExamples", func(t *testing.T) {
		assert.InDelta(t, 29.99, catalog.Normalize(0), 1e-9)
		assert.InDelta(t, 89.99, catalog.Normalize(20), 1e-9)
		assert.InDelta(t, 324.99, catalog.Normalize(150), 1e-9)
	})

	t.Run("TierBoundaries", func(t *testing.T) {
		// 30 falls into the middle tier, 100 into the top tier.
		assert.InDelta(t, 109.99, catalog.Normalize(30), 1e-9)
		assert.InDelta(t, 249.99, catalog.Normalize(100), 1e-9)
	})

	t.Run("EndsInNinetyNine", func(t *testing.T) {
		for _, raw := range []float64{0, 0.01, 9.99, 29.99, 30, 55.5, 99.99, 100, 149.95, 1000} {
			got := catalog.Normalize(raw)
			cents := math.Round((got - math.Floor(got)) * 100)
			assert.Equal(t, float64(99), cents, "normalize(%v) = %v", raw, got)
		}
	})

	t.Run("MonotonicWithinTiers", func(t *testing.T) {
		tiers := [][2]float64{{0, 30}, {30, 100}, {100, 500}}
		for _, tier := range tiers {
			t.Run(fmt.Sprintf("%v-%v", tier[0], tier[1]), func(t *testing.T) {
				prev := catalog.Normalize(tier[0])
				for p := tier[0] + 0.5; p < tier[1]; p += 0.5 {
					got := catalog.Normalize(p)
					assert.GreaterOrEqual(t, got, prev, "normalize not monotonic at %v", p)
					prev = got
				}
			})
		}
	})
}
