package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/golcg/internal/action"
)

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid project",
			yaml: `
name: footbridge
actions:
  - name: G
    family: permanent
    description: Self weight
  - name: Q
    family: variable
    description: Pedestrian traffic
    combination_factors: road_traffic
  - name: W
    family: variable
    description: Wind
    combination_factors: wind
    incompatible_with: ["Q"]
effects:
  G: 120.0
  Q: 80.0
`,
			wantErr: false,
		},
		{
			name:    "no actions",
			yaml:    "name: empty\n",
			wantErr: true,
			errMsg:  "no actions",
		},
		{
			name: "unknown family",
			yaml: `
actions:
  - name: G
    family: gravity
`,
			wantErr: true,
			errMsg:  "unknown action family",
		},
		{
			name: "missing name",
			yaml: `
actions:
  - family: permanent
`,
			wantErr: true,
			errMsg:  "missing name",
		},
		{
			name: "duplicate action",
			yaml: `
actions:
  - name: G
    family: permanent
  - name: G
    family: permanent
`,
			wantErr: true,
			errMsg:  "duplicate action name",
		},
		{
			name: "variable action without combination factors",
			yaml: `
actions:
  - name: Q
    family: variable
`,
			wantErr: true,
			errMsg:  "must declare combination_factors",
		},
		{
			name: "unknown factor set",
			yaml: `
actions:
  - name: Q
    family: variable
    combination_factors: bogus
`,
			wantErr: true,
			errMsg:  "unknown factor set",
		},
		{
			name: "unknown design code",
			yaml: `
code: asce7
actions:
  - name: G
    family: permanent
`,
			wantErr: true,
			errMsg:  "unknown design code",
		},
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: true,
			errMsg:  "parse yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, err := LoadFromBytes([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "footbridge", proj.Name)
			assert.Equal(t, 3, proj.Registry.Len())
			assert.Equal(t, 80.0, proj.Effects["Q"])
		})
	}
}

func TestLoadFromBytesFamilyDefaults(t *testing.T) {
	proj, err := LoadFromBytes([]byte(`
actions:
  - name: G
    family: permanent
  - name: GNC
    family: nc_permanent
  - name: A
    family: accidental
`))
	require.NoError(t, err)

	g := proj.Registry.Get("G")
	require.NotNil(t, g)
	assert.Equal(t, 1.35, g.PartialSafetyFactors.ULS.Unfavorable)

	gnc := proj.Registry.Get("GNC")
	require.NotNil(t, gnc)
	assert.Equal(t, 1.5, gnc.PartialSafetyFactors.ULS.Unfavorable)

	a := proj.Registry.Get("A")
	require.NotNil(t, a)
	assert.Equal(t, action.Accidental, a.Family)
	assert.Equal(t, 1.0, a.PartialSafetyFactors.ULS.Unfavorable)
}

func TestLoadFromBytesFactorOverrides(t *testing.T) {
	proj, err := LoadFromBytes([]byte(`
actions:
  - name: Q
    family: variable
    combination_factors: crane
    partial_safety_factors: crane
factors:
  combination:
    crane: {psi0: 0.9, psi1: 0.7, psi2: 0.4}
  partial_safety:
    crane:
      sls_favorable: 0
      sls_unfavorable: 1
      uls_favorable: 0
      uls_unfavorable: 1.6
`))
	require.NoError(t, err)

	q := proj.Registry.Get("Q")
	require.NotNil(t, q)
	assert.Equal(t, action.CombinationFactors{Psi0: 0.9, Psi1: 0.7, Psi2: 0.4}, q.CombinationFactors)
	assert.Equal(t, 1.6, q.PartialSafetyFactors.ULS.Unfavorable)
}

func TestLoadFromBytesRelationships(t *testing.T) {
	proj, err := LoadFromBytes([]byte(`
actions:
  - name: Q
    family: variable
    combination_factors: railway_traffic
    partial_safety_factors: railway_traffic
  - name: B
    family: variable
    combination_factors: railway_traffic
    partial_safety_factors: railway_traffic
    depends_on: Q
  - name: T1
    family: variable
    combination_factors: thermal
    incompatible_with: ["T.*"]
    not_determinant: true
`))
	require.NoError(t, err)

	b := proj.Registry.Get("B")
	require.NotNil(t, b)
	assert.Equal(t, "Q", b.DependsOn())

	t1 := proj.Registry.Get("T1")
	require.NotNil(t, t1)
	assert.True(t, t1.NotDeterminant)
	assert.True(t, t1.IncompatibleWith("T2"))
	assert.False(t, t1.IncompatibleWith("Q"))
}
