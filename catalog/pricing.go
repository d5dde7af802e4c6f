package catalog

import "math"

// Normalize maps a raw upstream price onto the storefront display price.
// The upstream catalog's prices are demo data; the tiered markup pushes
// them into realistic ranges and forces a ".99" ending.
func Normalize(raw float64) float64 {
	var adjusted float64
	switch {
	case raw < 30:
		adjusted = raw*3 + 29
	case raw < 100:
		adjusted = raw*2 + 49
	default:
		adjusted = raw*1.5 + 99
	}
	return math.Floor(adjusted) + 0.99
}
