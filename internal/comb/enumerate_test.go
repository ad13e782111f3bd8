package comb

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/golcg/internal/action"
	"github.com/alexiusacademia/golcg/internal/ec0"
)

// ulsOnly is a minimal rule set: fundamental combinations only.
func ulsOnly(leaderless bool) *ec0.RuleSet {
	return ec0.NewRuleSet("uls_only", map[ec0.Situation]ec0.Rule{
		ec0.ULSTransient: {Gamma: ec0.BasisULS, Leading: ec0.RepFull, Accompanying: ec0.RepPsi0, Leaderless: leaderless},
	})
}

func register(t *testing.T, r *action.Registry, def action.Definition) {
	t.Helper()
	if _, err := r.Register(def); err != nil {
		t.Fatalf("Register(%q) failed: %v", def.Name, err)
	}
}

func exprs(combs []Combination) []string {
	out := make([]string, len(combs))
	for i, c := range combs {
		out[i] = c.Expr()
	}
	return out
}

// bridgeRegistry reproduces the canonical railway-bridge scenario: self
// weight, traffic, thermal action and an earthquake with importance factor
// 1.3.
func bridgeRegistry(t *testing.T) *action.Registry {
	t.Helper()
	library := ec0.DefaultFactors()
	library.PartialSafety["seismic_importance"] = action.PartialSafetyFactors{
		SLS: action.GammaPair{Favorable: 1, Unfavorable: 1},
		ULS: action.GammaPair{Favorable: 1, Unfavorable: 1.3},
	}

	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G", Description: "Self weight",
		CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Variable, Name: "Q", Description: "Traffic",
		CombinationFactors: "railway_traffic", PartialSafety: "railway_traffic"})
	register(t, r, action.Definition{Family: action.Variable, Name: "T", Description: "Thermal action",
		CombinationFactors: "thermal", PartialSafety: "variable"})
	register(t, r, action.Definition{Family: action.Seismic, Name: "A2", Description: "Earthquake",
		CombinationFactors: "seismic", PartialSafety: "seismic_importance"})
	return r
}

func TestGenerateBridgeScenario(t *testing.T) {
	results, err := NewEnumerator(bridgeRegistry(t), ec0.EC0ES(), nil).Generate()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"1.00*G + 1.00*Q",
		"1.00*G + 1.00*Q + 0.60*T",
		"1.00*G + 1.00*T",
		"1.00*G + 0.80*Q + 1.00*T",
	}, exprs(results[ec0.SLSCharacteristic]))

	// Traffic has ψ2 = 0, so its quasi-permanent terms vanish and the
	// thermal-leading frequent combination with accompanying traffic
	// collapses into the one without it.
	assert.Equal(t, []string{
		"1.00*G + 0.80*Q",
		"1.00*G + 0.80*Q + 0.50*T",
		"1.00*G + 0.60*T",
	}, exprs(results[ec0.SLSFrequent]))

	assert.Equal(t, []string{
		"1.00*G + 0.50*T",
	}, exprs(results[ec0.SLSQuasiPermanent]))

	assert.Equal(t, []string{
		"1.00*G",
		"1.35*G",
		"1.00*G + 1.45*Q",
		"1.00*G + 1.45*Q + 0.90*T",
		"1.00*G + 1.50*T",
		"1.00*G + 1.16*Q + 1.50*T",
		"1.35*G + 1.45*Q",
		"1.35*G + 1.45*Q + 0.90*T",
		"1.35*G + 1.50*T",
		"1.35*G + 1.16*Q + 1.50*T",
	}, exprs(results[ec0.ULSTransient]))

	assert.Equal(t, []string{
		"1.00*G + 1.30*A2",
		"1.00*G + 0.50*T + 1.30*A2",
	}, exprs(results[ec0.ULSSeismic]))

	// No accidental actions are registered.
	assert.Empty(t, results[ec0.ULSAccidental])

	// Ten ultimate combinations pad to two digits.
	uls := results[ec0.ULSTransient]
	assert.Equal(t, "ULS00", uls[0].Name)
	assert.Equal(t, "ULS09", uls[9].Name)
	assert.Equal(t, "SLSQP0", results[ec0.SLSQuasiPermanent][0].Name)
}

// TestGenerateAccidentalSituation covers the accidental design rule row:
// γ = 1, leading variable at ψ1, accompanying at ψ2, and an event product
// over the registered accidental actions. With two design events (impact
// and fire) each combination carries exactly one of them.
func TestGenerateAccidentalSituation(t *testing.T) {
	library := ec0.DefaultFactors()
	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G", Description: "Self weight",
		CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Variable, Name: "Q", Description: "Traffic",
		CombinationFactors: "railway_traffic", PartialSafety: "railway_traffic"})
	register(t, r, action.Definition{Family: action.Variable, Name: "T", Description: "Thermal action",
		CombinationFactors: "thermal", PartialSafety: "variable"})
	register(t, r, action.Definition{Family: action.Accidental, Name: "A1", Description: "Impact",
		CombinationFactors: "accidental", PartialSafety: "accidental"})
	register(t, r, action.Definition{Family: action.Accidental, Name: "A2", Description: "Fire",
		CombinationFactors: "accidental", PartialSafety: "accidental"})

	results, err := NewEnumerator(r, ec0.EC0ES(), nil).Generate()
	require.NoError(t, err)

	// Per event: the leaderless case, traffic leading at ψ1 = 0.80 with and
	// without accompanying thermal at ψ2 = 0.50, thermal leading at ψ1 = 0.60
	// (accompanying traffic has ψ2 = 0 and collapses into it).
	assert.Equal(t, []string{
		"1.00*G + 1.00*A1",
		"1.00*G + 0.80*Q + 1.00*A1",
		"1.00*G + 0.80*Q + 0.50*T + 1.00*A1",
		"1.00*G + 0.60*T + 1.00*A1",
		"1.00*G + 1.00*A2",
		"1.00*G + 0.80*Q + 1.00*A2",
		"1.00*G + 0.80*Q + 0.50*T + 1.00*A2",
		"1.00*G + 0.60*T + 1.00*A2",
	}, exprs(results[ec0.ULSAccidental]))

	// Design events are checked one at a time, never two in the same
	// combination.
	for _, c := range results[ec0.ULSAccidental] {
		events := 0
		for _, term := range c.Terms {
			if term.Action.Family == action.Accidental {
				events++
			}
		}
		if events != 1 {
			t.Errorf("%s %s carries %d accidental events, want exactly 1", c.Name, c.Expr(), events)
		}
	}

	uls := results[ec0.ULSAccidental]
	assert.Equal(t, "ULSA0", uls[0].Name)
	assert.Equal(t, "ULSA7", uls[7].Name)
}

func TestGenerateSinglePermanentAndVariable(t *testing.T) {
	library := &action.FactorLibrary{
		Combination: map[string]action.CombinationFactors{
			"permanent": {Psi0: 1, Psi1: 1, Psi2: 1},
			"q":         {Psi0: 0.6},
		},
		PartialSafety: map[string]action.PartialSafetyFactors{
			"permanent": {
				SLS: action.GammaPair{Favorable: 1, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 1, Unfavorable: 1.35},
			},
			"variable": {
				SLS: action.GammaPair{Favorable: 0, Unfavorable: 1},
				ULS: action.GammaPair{Favorable: 0, Unfavorable: 1.5},
			},
		},
	}
	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G", CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Variable, Name: "Q", CombinationFactors: "q", PartialSafety: "variable"})

	results, err := NewEnumerator(r, ulsOnly(false), nil).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	got := exprs(results[ec0.ULSTransient])
	want := []string{"1.00*G + 1.50*Q", "1.35*G + 1.50*Q"}
	if len(got) != len(want) {
		t.Fatalf("got %d combinations %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("combination %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestCombinationCount checks the combinatorial driver: N ambiguous-sign
// permanent actions and M mutually exclusive variable actions yield
// 2^N × (M+1) fundamental combinations.
func TestCombinationCount(t *testing.T) {
	library := ec0.DefaultFactors()
	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G1", CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Permanent, Name: "G2", CombinationFactors: "permanent", PartialSafety: "permanent"})
	for _, name := range []string{"Q1", "Q2", "Q3"} {
		register(t, r, action.Definition{Family: action.Variable, Name: name,
			CombinationFactors: "wind", PartialSafety: "variable",
			IncompatibleWith: []string{"Q.*"}})
	}

	results, err := NewEnumerator(r, ulsOnly(true), nil).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got, want := len(results[ec0.ULSTransient]), 4*(3+1); got != want {
		t.Errorf("combination count = %d, want %d", got, want)
	}
}

func TestIncompatibilityInvariant(t *testing.T) {
	r := bridgeRegistry(t)
	if err := r.AddIncompatibility("Q", []string{"T"}); err != nil {
		t.Fatalf("AddIncompatibility failed: %v", err)
	}

	results, err := NewEnumerator(r, ec0.EC0ES(), nil).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for situation, combs := range results {
		for _, c := range combs {
			for _, a := range c.Terms {
				for _, b := range c.Terms {
					if a.Action != b.Action && a.Action.IncompatibleWith(b.Action.Name) {
						t.Errorf("%s %s contains incompatible pair %s/%s",
							situation, c.Expr(), a.Action.Name, b.Action.Name)
					}
				}
			}
		}
	}
}

func TestDependencyInvariant(t *testing.T) {
	library := ec0.DefaultFactors()
	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G", CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Variable, Name: "Q", Description: "Traffic",
		CombinationFactors: "railway_traffic", PartialSafety: "railway_traffic"})
	// Braking can only act while traffic is on the bridge.
	register(t, r, action.Definition{Family: action.Variable, Name: "B", Description: "Braking",
		CombinationFactors: "railway_traffic", PartialSafety: "railway_traffic", DependsOn: "Q"})

	results, err := NewEnumerator(r, ec0.EC0ES(), nil).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	seenB := false
	for situation, combs := range results {
		for _, c := range combs {
			if !c.Contains("B") {
				continue
			}
			seenB = true
			if !c.Contains("Q") {
				t.Errorf("%s %s contains B without its dependency Q", situation, c.Expr())
			}
		}
	}
	if !seenB {
		t.Error("no generated combination contains B at all")
	}
}

func TestNotDeterminantNeverLeads(t *testing.T) {
	library := ec0.DefaultFactors()
	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G", CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Variable, Name: "Q", CombinationFactors: "railway_traffic", PartialSafety: "railway_traffic"})
	register(t, r, action.Definition{Family: action.Variable, Name: "T", CombinationFactors: "thermal", PartialSafety: "variable", NotDeterminant: true})

	results, err := NewEnumerator(r, ulsOnly(false), nil).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// T may only appear accompanying (γ·ψ0 = 1.5·0.6 = 0.90), never at its
	// full leading value 1.50.
	for _, c := range results[ec0.ULSTransient] {
		for _, term := range c.Terms {
			if term.Action.Name == "T" && term.Factor > 0.90+1e-9 {
				t.Errorf("%s takes T at leading factor %.2f", c.Expr(), term.Factor)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	r := bridgeRegistry(t)
	rules := ec0.EC0ES()

	first, err := NewEnumerator(r, rules, nil).Generate()
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	second, err := NewEnumerator(r, rules, nil).Generate()
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	for _, situation := range ec0.Situations {
		a, b := first[situation], second[situation]
		if len(a) != len(b) {
			t.Fatalf("%s: %d vs %d combinations", situation, len(a), len(b))
		}
		for i := range a {
			if a[i].Name != b[i].Name || a[i].Expr() != b[i].Expr() {
				t.Errorf("%s[%d]: %s=%s vs %s=%s", situation, i,
					a[i].Name, a[i].Expr(), b[i].Name, b[i].Expr())
			}
		}
	}
}

func TestUnreferencedActionDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// A seismic action under a rule set without a seismic situation ends
	// up in zero combinations.
	library := ec0.DefaultFactors()
	r := action.NewRegistry(library)
	register(t, r, action.Definition{Family: action.Permanent, Name: "G", CombinationFactors: "permanent", PartialSafety: "permanent"})
	register(t, r, action.Definition{Family: action.Seismic, Name: "A1", CombinationFactors: "seismic", PartialSafety: "seismic"})

	results, err := NewEnumerator(r, ulsOnly(true), logger).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(results[ec0.ULSTransient]) == 0 {
		t.Fatal("expected permanent-only combinations")
	}
	if !bytes.Contains(buf.Bytes(), []byte("appears in no combination")) {
		t.Errorf("missing unreferenced-action warning, log: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("A1")) {
		t.Errorf("warning does not name the action, log: %s", buf.String())
	}
}

func TestGenerateEmptyRegistry(t *testing.T) {
	r := action.NewRegistry(ec0.DefaultFactors())
	results, err := NewEnumerator(r, ec0.EC0ES(), nil).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, situation := range ec0.Situations {
		if len(results[situation]) != 0 {
			t.Errorf("%s: expected no combinations, got %v", situation, exprs(results[situation]))
		}
	}
}
