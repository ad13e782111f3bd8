package diagram

import (
	"fmt"
	"math"
	"strings"
)

// EffectBar holds one combination's factored effect for charting.
type EffectBar struct {
	Name      string
	Expr      string
	Effect    float64
	Governing bool
}

// DrawASCIIEffectChart creates an ASCII bar chart of the factored effect of
// each combination, marking the governing one.
func DrawASCIIEffectChart(bars []EffectBar, unit string) string {
	var sb strings.Builder

	if len(bars) == 0 {
		sb.WriteString("\n  (no combinations)\n")
		return sb.String()
	}

	// Scale bars to the largest magnitude
	barChars := 40
	var maxAbs float64
	nameWidth := 0
	for _, b := range bars {
		if a := math.Abs(b.Effect); a > maxAbs {
			maxAbs = a
		}
		if len(b.Name) > nameWidth {
			nameWidth = len(b.Name)
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  FACTORED EFFECT PER COMBINATION\n")
	sb.WriteString("  ───────────────────────────────\n")

	for _, b := range bars {
		n := 0
		if maxAbs > 0 {
			n = int(math.Abs(b.Effect) / maxAbs * float64(barChars))
		}
		if n == 0 && b.Effect != 0 {
			n = 1
		}
		marker := ""
		if b.Governing {
			marker = " ◀ governing"
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%-*s│ %10.2f %s%s\n",
			nameWidth, b.Name,
			barChars, strings.Repeat("█", n),
			b.Effect, unit, marker))
	}

	sb.WriteString("\n")
	for _, b := range bars {
		sb.WriteString(fmt.Sprintf("  %-*s = %s\n", nameWidth, b.Name, b.Expr))
	}
	return sb.String()
}
