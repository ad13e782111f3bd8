// Package action holds the declared design actions and their factor data.
package action

import (
	"fmt"
	"regexp"
)

// Family classifies an action for combination purposes.
type Family int

const (
	Permanent Family = iota
	NonConstantPermanent
	Variable
	Accidental
	Seismic
)

// Families in the order they appear inside a combination expression.
var Families = []Family{Permanent, NonConstantPermanent, Variable, Accidental, Seismic}

func (f Family) String() string {
	switch f {
	case Permanent:
		return "permanent"
	case NonConstantPermanent:
		return "nc_permanent"
	case Variable:
		return "variable"
	case Accidental:
		return "accidental"
	case Seismic:
		return "seismic"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily converts a family keyword as used in project files.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "permanent":
		return Permanent, nil
	case "nc_permanent", "non_constant_permanent":
		return NonConstantPermanent, nil
	case "variable":
		return Variable, nil
	case "accidental":
		return Accidental, nil
	case "seismic":
		return Seismic, nil
	}
	return 0, fmt.Errorf("unknown action family %q", s)
}

// CombinationFactors are the ψ values that scale a variable action when it
// accompanies another action (EN 1990 table A2.1 and national annexes).
type CombinationFactors struct {
	Psi0 float64 // characteristic / fundamental combinations
	Psi1 float64 // frequent value
	Psi2 float64 // quasi-permanent value
}

// GammaPair holds the partial safety factor for both effect directions.
type GammaPair struct {
	Favorable   float64
	Unfavorable float64
}

// Ambiguous reports whether both directions must be checked, doubling the
// combination count for the action.
func (g GammaPair) Ambiguous() bool {
	return g.Favorable != g.Unfavorable
}

// PartialSafetyFactors holds the γ pairs for serviceability and ultimate
// limit states.
type PartialSafetyFactors struct {
	SLS GammaPair
	ULS GammaPair
}

// Action is a load or effect source registered for combination. Immutable
// once registered; the enumerator only reads it.
type Action struct {
	Name        string
	Description string
	Family      Family

	CombinationFactors   CombinationFactors
	PartialSafetyFactors PartialSafetyFactors

	// NotDeterminant actions never take the leading role in a combination.
	NotDeterminant bool

	dependsOn    string
	patterns     []string
	incompatible []*regexp.Regexp
}

// DependsOn returns the name of the action that must be present whenever
// this one is, or "" if unconstrained.
func (a *Action) DependsOn() string {
	return a.dependsOn
}

// IncompatiblePatterns returns the raw patterns as declared.
func (a *Action) IncompatiblePatterns() []string {
	return a.patterns
}

// IncompatibleWith reports whether name matches one of the action's
// incompatibility patterns. An action never conflicts with itself: the
// original annex files declare patterns like "Q1.*" on Q1 itself so that
// sibling load cases exclude each other.
func (a *Action) IncompatibleWith(name string) bool {
	if name == a.Name {
		return false
	}
	for _, re := range a.incompatible {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
