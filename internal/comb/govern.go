package comb

import "math"

// Governing finds the combination with the largest factored effect
// magnitude for the given unfactored effect values. ok is false when the
// list is empty.
func Governing(combinations []Combination, effects map[string]float64) (governing Combination, effect float64, ok bool) {
	for i, c := range combinations {
		e := c.FactoredEffect(effects)
		if i == 0 || math.Abs(e) > math.Abs(effect) {
			governing = c
			effect = e
			ok = true
		}
	}
	return governing, effect, ok
}
