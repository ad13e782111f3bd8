// Package comb enumerates, names and evaluates load combinations.
package comb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/golcg/internal/action"
	"github.com/alexiusacademia/golcg/internal/ec0"
)

// Term is one scaled action inside a combination expression.
type Term struct {
	Action *action.Action
	Factor float64
}

// Combination is one admissible simultaneous-action scenario. Terms are
// ordered by family and registration order, so the rendered expression is
// stable across runs. Immutable once generated.
type Combination struct {
	Situation ec0.Situation
	Name      string
	Terms     []Term
}

// Expr renders the combination the way the XC load loader expects it,
// e.g. "1.35*G + 1.50*Q".
func (c Combination) Expr() string {
	var sb strings.Builder
	for i, t := range c.Terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%.2f*%s", t.Factor, t.Action.Name)
	}
	return sb.String()
}

// Dict returns the combination as an action-name to factor mapping.
func (c Combination) Dict() map[string]float64 {
	d := make(map[string]float64, len(c.Terms))
	for _, t := range c.Terms {
		d[t.Action.Name] = t.Factor
	}
	return d
}

// Contains reports whether the combination includes the named action.
func (c Combination) Contains(name string) bool {
	for _, t := range c.Terms {
		if t.Action.Name == name {
			return true
		}
	}
	return false
}

// FactoredEffect combines unfactored effect values (moments, reactions,
// stresses) per action into the factored effect of this combination.
// Actions absent from the map contribute nothing.
func (c Combination) FactoredEffect(effects map[string]float64) float64 {
	var total float64
	for _, t := range c.Terms {
		total += t.Factor * effects[t.Action.Name]
	}
	return total
}

// key is the dedup identity: full-precision factors, term order is already
// canonical. Rendering at display precision could merge distinct factors.
func (c Combination) key() string {
	var sb strings.Builder
	for i, t := range c.Terms {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(t.Action.Name)
		sb.WriteByte('*')
		sb.WriteString(strconv.FormatFloat(t.Factor, 'g', -1, 64))
	}
	return sb.String()
}
