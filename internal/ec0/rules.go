package ec0

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/golcg/internal/action"
)

// ErrUnsupportedSituation is returned when a factor is requested for a
// family/situation pair the rule set does not define. The rule set never
// defaults to 1.0: a silent default here would hide a configuration bug in
// a safety calculation.
var ErrUnsupportedSituation = errors.New("unsupported design situation")

// Rule describes how one design situation combines the action families.
type Rule struct {
	// Gamma selects which γ pair factors the actions.
	Gamma GammaBasis

	// Leading is the representative value of the leading variable action.
	// RepNone means the situation has no leading slot (quasi-permanent and
	// seismic combinations scale every variable action by ψ2).
	Leading Representative

	// Accompanying is the representative value of the non-leading variable
	// actions.
	Accompanying Representative

	// AccompanyAll includes every variable action at once instead of
	// enumerating subsets. The quasi-permanent combination is a single
	// expression per permanent-sign variant.
	AccompanyAll bool

	// Leaderless additionally emits the combinations without any leading
	// variable action (permanent actions alone, or permanent plus the
	// accidental or seismic event).
	Leaderless bool

	// Event is the action family of which exactly one member enters each
	// combination (accidental or seismic). HasEvent gates it.
	HasEvent bool
	Event    action.Family
}

// RuleSet maps design situations to their combination rules for one code
// and annex.
type RuleSet struct {
	Name  string
	rules map[Situation]Rule
}

// NewRuleSet builds a rule set from explicit rows. Swapping the table swaps
// the annex; nothing else in the generator changes.
func NewRuleSet(name string, rules map[Situation]Rule) *RuleSet {
	return &RuleSet{Name: name, rules: rules}
}

// Rule returns the rule row for a situation.
func (rs *RuleSet) Rule(s Situation) (Rule, error) {
	r, ok := rs.rules[s]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s (rule set %q)", ErrUnsupportedSituation, s, rs.Name)
	}
	return r, nil
}

// Situations returns the situations the rule set defines, in canonical order.
func (rs *RuleSet) Situations() []Situation {
	var out []Situation
	for _, s := range Situations {
		if _, ok := rs.rules[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ApplicableFactor returns the multiplier for an action entering a
// combination of the given situation in the given role. It fails for
// family/situation/role triplets the rule set does not define.
func (rs *RuleSet) ApplicableFactor(a *action.Action, s Situation, role Role) (float64, error) {
	rule, err := rs.Rule(s)
	if err != nil {
		return 0, err
	}
	pair := rule.Gamma.pair(a.PartialSafetyFactors)

	switch a.Family {
	case action.Permanent, action.NonConstantPermanent:
		switch role {
		case Favorable:
			return pair.Favorable, nil
		case Unfavorable:
			return pair.Unfavorable, nil
		}
		return 0, fmt.Errorf("%w: %s role for %s action %q in %s", ErrUnsupportedSituation, role, a.Family, a.Name, s)

	case action.Variable:
		switch role {
		case Leading:
			if rule.Leading == RepNone {
				return 0, fmt.Errorf("%w: no leading slot in %s (action %q)", ErrUnsupportedSituation, s, a.Name)
			}
			return pair.Unfavorable * rule.Leading.value(a.CombinationFactors), nil
		case Accompanying:
			return pair.Unfavorable * rule.Accompanying.value(a.CombinationFactors), nil
		}
		return 0, fmt.Errorf("%w: %s role for variable action %q in %s", ErrUnsupportedSituation, role, a.Name, s)

	case action.Accidental, action.Seismic:
		if !rule.HasEvent || rule.Event != a.Family {
			return 0, fmt.Errorf("%w: %s action %q has no rule in %s", ErrUnsupportedSituation, a.Family, a.Name, s)
		}
		// The event enters at its own γ, which carries the importance
		// factor for seismic actions.
		return a.PartialSafetyFactors.ULS.Unfavorable, nil
	}
	return 0, fmt.Errorf("%w: family %s in %s", ErrUnsupportedSituation, a.Family, s)
}

// EC0ES returns the combination rules of EN 1990 with the Spanish annex,
// covering the six design situations of a bridge project.
func EC0ES() *RuleSet {
	return NewRuleSet("ec0_es", map[Situation]Rule{
		// EN 1990 6.5.3(a): characteristic combination, leading action at
		// its full value, accompanying actions at ψ0.
		SLSCharacteristic: {Gamma: BasisSLS, Leading: RepFull, Accompanying: RepPsi0},

		// EN 1990 6.5.3(b): frequent combination, ψ1 leading, ψ2 accompanying.
		SLSFrequent: {Gamma: BasisSLS, Leading: RepPsi1, Accompanying: RepPsi2},

		// EN 1990 6.5.3(c): quasi-permanent combination, every variable
		// action at ψ2, single expression.
		SLSQuasiPermanent: {Gamma: BasisSLS, Leading: RepNone, Accompanying: RepPsi2, AccompanyAll: true},

		// EN 1990 6.4.3.2, table A2.4(B): fundamental combination for
		// persistent and transient situations.
		ULSTransient: {Gamma: BasisULS, Leading: RepFull, Accompanying: RepPsi0, Leaderless: true},

		// EN 1990 6.4.3.3: accidental combination, one design event, main
		// variable action at ψ1, others at ψ2, γ = 1.
		ULSAccidental: {Gamma: BasisSLS, Leading: RepPsi1, Accompanying: RepPsi2, Leaderless: true, HasEvent: true, Event: action.Accidental},

		// EN 1990 6.4.3.4: seismic combination, variable actions at ψ2.
		ULSSeismic: {Gamma: BasisSLS, Leading: RepNone, Accompanying: RepPsi2, HasEvent: true, Event: action.Seismic},
	})
}
