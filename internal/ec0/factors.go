package ec0

import "github.com/alexiusacademia/golcg/internal/action"

// DefaultFactors returns the named factor sets of the Spanish annex for
// bridges (IAP-11 table 6.1-a and EN 1990 annex A2). Project files may add
// sets or override these values.
func DefaultFactors() *action.FactorLibrary {
	return &action.FactorLibrary{
		Combination: map[string]action.CombinationFactors{
			// ψ values are irrelevant for permanent actions; registered
			// with a unit set so every action carries one.
			"permanent": {Psi0: 1, Psi1: 1, Psi2: 1},

			// IAP-11 table 6.1-a.
			"road_traffic":    {Psi0: 0.75, Psi1: 0.75, Psi2: 0},
			"railway_traffic": {Psi0: 0.8, Psi1: 0.8, Psi2: 0},
			"wind":            {Psi0: 0.6, Psi1: 0.2, Psi2: 0},
			"thermal":         {Psi0: 0.6, Psi1: 0.6, Psi2: 0.5},
			"snow":            {Psi0: 0.8, Psi1: 0, Psi2: 0},

			// Events are never scaled by ψ.
			"accidental": {},
			"seismic":    {},
		},
		PartialSafety: map[string]action.PartialSafetyFactors{
			// EN 1990 table A2.4(B) for permanent actions: both directions
			// checked in ultimate combinations.
			"permanent": {
				SLS: action.GammaPair{Favorable: 1, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 1, Unfavorable: 1.35},
			},
			// Non-constant permanent actions (shrinkage, settlements).
			"nc_permanent": {
				SLS: action.GammaPair{Favorable: 1, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 1, Unfavorable: 1.5},
			},
			// Favorable variable actions are simply left out (γ = 0).
			"variable": {
				SLS: action.GammaPair{Favorable: 0, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 0, Unfavorable: 1.5},
			},
			// IAP-11 table 6.2-b, railway traffic loads.
			"railway_traffic": {
				SLS: action.GammaPair{Favorable: 0, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 0, Unfavorable: 1.45},
			},
			"accidental": {
				SLS: action.GammaPair{Favorable: 1, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 1, Unfavorable: 1},
			},
			// The ultimate unfavorable value carries the importance factor
			// when it differs from 1.
			"seismic": {
				SLS: action.GammaPair{Favorable: 1, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 1, Unfavorable: 1},
			},
		},
	}
}
