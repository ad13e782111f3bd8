package comb

import (
	"log/slog"

	"github.com/alexiusacademia/golcg/internal/action"
	"github.com/alexiusacademia/golcg/internal/ec0"
)

// Results holds the named combinations of every generated situation.
type Results map[ec0.Situation][]Combination

// Enumerator produces the admissible combinations of a frozen registry
// under a rule set. Instances are independent; generating for several
// projects in parallel needs no coordination.
type Enumerator struct {
	registry *action.Registry
	rules    *ec0.RuleSet
	log      *slog.Logger
}

// NewEnumerator creates an enumerator. A nil logger falls back to
// slog.Default.
func NewEnumerator(reg *action.Registry, rules *ec0.RuleSet, log *slog.Logger) *Enumerator {
	if log == nil {
		log = slog.Default()
	}
	return &Enumerator{registry: reg, rules: rules, log: log}
}

// Generate enumerates every situation the rule set defines and assigns the
// combination names. Re-running on the same registry produces identical
// output, including order: permanent sign variants, leading-action choice
// and accompanying subsets are all walked in registration order.
func (e *Enumerator) Generate() (Results, error) {
	for _, w := range e.registry.Validate() {
		e.log.Warn("inconsistent action model", "detail", w)
	}

	used := make(map[string]bool)
	results := make(Results)
	for _, situation := range e.rules.Situations() {
		combinations, err := e.generateSituation(situation, used)
		if err != nil {
			return nil, err
		}
		results[situation] = AssignNames(combinations, situation.Prefix())
	}

	// An action that survives in no combination at all is almost always a
	// configuration error (wrong family, over-eager incompatibilities).
	for _, a := range e.registry.All() {
		if !used[a.Name] {
			e.log.Warn("action appears in no combination",
				"action", a.Name, "family", a.Family.String())
		}
	}
	return results, nil
}

// generateSituation walks the cross product for one situation: permanent
// sign variants × variable part × event, leaderless variants first.
func (e *Enumerator) generateSituation(situation ec0.Situation, used map[string]bool) ([]Combination, error) {
	rule, err := e.rules.Rule(situation)
	if err != nil {
		return nil, err
	}

	permVariants, err := e.permanentVariants(situation)
	if err != nil {
		return nil, err
	}
	variableParts, err := e.variableParts(situation, rule)
	if err != nil {
		return nil, err
	}
	events, err := e.eventTerms(situation, rule)
	if err != nil {
		return nil, err
	}

	var out []Combination
	seen := make(map[string]bool)
	emit := func(permanent, variable []Term, event *Term) {
		terms := make([]Term, 0, len(permanent)+len(variable)+1)
		for _, t := range permanent {
			if t.Factor != 0 {
				terms = append(terms, t)
			}
		}
		for _, t := range variable {
			if t.Factor != 0 {
				terms = append(terms, t)
			}
		}
		if event != nil && event.Factor != 0 {
			terms = append(terms, *event)
		}
		if len(terms) == 0 || !admissible(terms) {
			return
		}
		c := Combination{Situation: situation, Terms: terms}
		key := c.key()
		if seen[key] {
			return
		}
		seen[key] = true
		for _, t := range terms {
			used[t.Action.Name] = true
		}
		out = append(out, c)
	}

	for _, event := range events {
		if rule.Leaderless {
			for _, pv := range permVariants {
				emit(pv, nil, event)
			}
		}
		for _, pv := range permVariants {
			for _, vp := range variableParts {
				emit(pv, vp, event)
			}
		}
	}
	return out, nil
}

// permanentVariants builds the sign assignments of the permanent and
// non-constant permanent actions. An action whose γ pair differs between
// directions contributes two sub-cases, favorable first; this is the 2^N
// driver of the ultimate combination count.
func (e *Enumerator) permanentVariants(situation ec0.Situation) ([][]Term, error) {
	permanents := append([]*action.Action{}, e.registry.ByFamily(action.Permanent)...)
	permanents = append(permanents, e.registry.ByFamily(action.NonConstantPermanent)...)

	variants := [][]Term{{}}
	for _, a := range permanents {
		fav, err := e.rules.ApplicableFactor(a, situation, ec0.Favorable)
		if err != nil {
			return nil, err
		}
		unfav, err := e.rules.ApplicableFactor(a, situation, ec0.Unfavorable)
		if err != nil {
			return nil, err
		}
		choices := []float64{unfav}
		if fav != unfav {
			choices = []float64{fav, unfav}
		}
		next := make([][]Term, 0, len(variants)*len(choices))
		for _, v := range variants {
			for _, factor := range choices {
				extended := make([]Term, len(v), len(v)+1)
				copy(extended, v)
				extended = append(extended, Term{Action: a, Factor: factor})
				next = append(next, extended)
			}
		}
		variants = next
	}
	return variants, nil
}

// variableParts builds the ordered variable-action parts of a situation:
// one leading action at a time with every subset of the others
// accompanying, or ψ-scaled subsets when the situation has no leading slot.
// Terms inside a part keep registration order regardless of which action
// leads, matching the expression order of the reference engine.
func (e *Enumerator) variableParts(situation ec0.Situation, rule ec0.Rule) ([][]Term, error) {
	variables := e.registry.ByFamily(action.Variable)

	build := func(leader *action.Action, accompanying map[*action.Action]bool) ([]Term, error) {
		var part []Term
		for _, v := range variables {
			var role ec0.Role
			switch {
			case v == leader:
				role = ec0.Leading
			case accompanying[v]:
				role = ec0.Accompanying
			default:
				continue
			}
			factor, err := e.rules.ApplicableFactor(v, situation, role)
			if err != nil {
				return nil, err
			}
			part = append(part, Term{Action: v, Factor: factor})
		}
		return part, nil
	}

	if rule.Leading == ec0.RepNone {
		if rule.AccompanyAll {
			all := make(map[*action.Action]bool, len(variables))
			for _, v := range variables {
				all[v] = true
			}
			part, err := build(nil, all)
			if err != nil {
				return nil, err
			}
			return [][]Term{part}, nil
		}
		return e.subsetParts(variables, nil, build)
	}

	var parts [][]Term
	for _, leader := range variables {
		if leader.NotDeterminant {
			continue
		}
		rest := make([]*action.Action, 0, len(variables)-1)
		for _, v := range variables {
			if v != leader {
				rest = append(rest, v)
			}
		}
		subsetted, err := e.subsetParts(rest, leader, build)
		if err != nil {
			return nil, err
		}
		parts = append(parts, subsetted...)
	}
	return parts, nil
}

// subsetParts enumerates every subset of candidates (empty set first, then
// binary counting over registration order) combined with an optional leader.
func (e *Enumerator) subsetParts(candidates []*action.Action, leader *action.Action,
	build func(*action.Action, map[*action.Action]bool) ([]Term, error)) ([][]Term, error) {

	n := len(candidates)
	parts := make([][]Term, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		accompanying := make(map[*action.Action]bool, n)
		for i, v := range candidates {
			if mask&(1<<i) != 0 {
				accompanying[v] = true
			}
		}
		part, err := build(leader, accompanying)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// eventTerms returns the accidental or seismic action terms of a situation,
// one per combination: design events are checked one at a time, never two
// simultaneously. Situations without an event family return a single nil
// entry so the caller loops once.
func (e *Enumerator) eventTerms(situation ec0.Situation, rule ec0.Rule) ([]*Term, error) {
	if !rule.HasEvent {
		return []*Term{nil}, nil
	}
	var events []*Term
	for _, a := range e.registry.ByFamily(rule.Event) {
		factor, err := e.rules.ApplicableFactor(a, situation, ec0.Leading)
		if err != nil {
			return nil, err
		}
		events = append(events, &Term{Action: a, Factor: factor})
	}
	return events, nil
}

// admissible checks the relationship constraints over the nonzero terms of
// a candidate combination: every dependency target present, no pair matched
// by an incompatibility pattern.
func admissible(terms []Term) bool {
	present := make(map[string]bool, len(terms))
	for _, t := range terms {
		present[t.Action.Name] = true
	}
	for _, t := range terms {
		if dep := t.Action.DependsOn(); dep != "" && !present[dep] {
			return false
		}
		for _, other := range terms {
			if other.Action != t.Action && t.Action.IncompatibleWith(other.Action.Name) {
				return false
			}
		}
	}
	return true
}
