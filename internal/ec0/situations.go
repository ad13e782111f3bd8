// Package ec0 encodes the combination rules of Eurocode 0 (EN 1990) with the
// Spanish annex values used for bridge projects (IAP-11 / EC0-ES).
package ec0

import (
	"fmt"

	"github.com/alexiusacademia/golcg/internal/action"
)

// Situation is a design situation for which combinations are generated.
type Situation int

const (
	SLSCharacteristic Situation = iota
	SLSFrequent
	SLSQuasiPermanent
	ULSTransient
	ULSAccidental
	ULSSeismic
)

// Situations lists the six design situations in generation order.
var Situations = []Situation{
	SLSCharacteristic,
	SLSFrequent,
	SLSQuasiPermanent,
	ULSTransient,
	ULSAccidental,
	ULSSeismic,
}

func (s Situation) String() string {
	switch s {
	case SLSCharacteristic:
		return "SLSCharacteristic"
	case SLSFrequent:
		return "SLSFrequent"
	case SLSQuasiPermanent:
		return "SLSQuasiPermanent"
	case ULSTransient:
		return "ULSTransient"
	case ULSAccidental:
		return "ULSAccidental"
	case ULSSeismic:
		return "ULSSeismic"
	}
	return fmt.Sprintf("situation(%d)", int(s))
}

// Prefix returns the name prefix used when numbering the combinations of
// the situation.
func (s Situation) Prefix() string {
	switch s {
	case SLSCharacteristic:
		return "SLSR"
	case SLSFrequent:
		return "SLSF"
	case SLSQuasiPermanent:
		return "SLSQP"
	case ULSTransient:
		return "ULS"
	case ULSAccidental:
		return "ULSA"
	case ULSSeismic:
		return "ULSS"
	}
	return ""
}

// ParseSituation converts a situation keyword as used in project files and
// JSON output.
func ParseSituation(s string) (Situation, error) {
	for _, sit := range Situations {
		if sit.String() == s {
			return sit, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedSituation, s)
}

// Role describes how an action enters one combination.
type Role int

const (
	// Leading marks the variable action taken at its representative value
	// for the situation (full value in fundamental combinations).
	Leading Role = iota
	// Accompanying marks the remaining variable actions, reduced by ψ.
	Accompanying
	// Favorable and Unfavorable select the γ direction of permanent actions.
	Favorable
	Unfavorable
)

func (r Role) String() string {
	switch r {
	case Leading:
		return "leading"
	case Accompanying:
		return "accompanying"
	case Favorable:
		return "favorable"
	case Unfavorable:
		return "unfavorable"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Representative selects which ψ value scales a variable action.
type Representative int

const (
	// RepNone marks a slot that does not exist in the situation, e.g. the
	// leading slot of the quasi-permanent combination.
	RepNone Representative = iota
	RepFull                // characteristic value, factor 1
	RepPsi0
	RepPsi1
	RepPsi2
)

// value applies the representative factor to a set of combination factors.
func (rep Representative) value(cf action.CombinationFactors) float64 {
	switch rep {
	case RepFull:
		return 1.0
	case RepPsi0:
		return cf.Psi0
	case RepPsi1:
		return cf.Psi1
	case RepPsi2:
		return cf.Psi2
	}
	return 0
}

// GammaBasis selects which γ pair of the partial safety factors applies.
type GammaBasis int

const (
	// BasisSLS applies the serviceability pair. It also covers accidental
	// and seismic design situations, where EN 1990 A1.3.2 sets γ to 1.
	BasisSLS GammaBasis = iota
	// BasisULS applies the ultimate pair of the persistent and transient
	// design situations (EN 1990 table A2.4(B)).
	BasisULS
)

func (b GammaBasis) pair(psf action.PartialSafetyFactors) action.GammaPair {
	if b == BasisULS {
		return psf.ULS
	}
	return psf.SLS
}
