// Package project loads action declarations and factor tables from YAML
// project files and builds the registry and rule set to generate from.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/golcg/internal/action"
	"github.com/alexiusacademia/golcg/internal/ec0"
)

// File is the YAML schema of a project file.
type File struct {
	Name string `yaml:"name"`

	// Code selects the rule set. Defaults to "ec0_es".
	Code string `yaml:"code"`

	Actions []ActionSpec     `yaml:"actions"`
	Factors *FactorOverrides `yaml:"factors"`

	// Effects holds optional unfactored effect values per action, consumed
	// by the governing-combination evaluation.
	Effects map[string]float64 `yaml:"effects"`
}

// ActionSpec declares one action. Factor set names default per family so
// the common cases need no boilerplate, except the combination factors of
// variable actions: ψ values depend on the load type and must be named.
type ActionSpec struct {
	Name             string   `yaml:"name"`
	Family           string   `yaml:"family"`
	Description      string   `yaml:"description"`
	Combination      string   `yaml:"combination_factors"`
	PartialSafety    string   `yaml:"partial_safety_factors"`
	DependsOn        string   `yaml:"depends_on"`
	IncompatibleWith []string `yaml:"incompatible_with"`
	NotDeterminant   bool     `yaml:"not_determinant"`
}

// FactorOverrides adds to or replaces entries of the default factor library.
type FactorOverrides struct {
	Combination   map[string]CombinationSpec   `yaml:"combination"`
	PartialSafety map[string]PartialSafetySpec `yaml:"partial_safety"`
}

type CombinationSpec struct {
	Psi0 float64 `yaml:"psi0"`
	Psi1 float64 `yaml:"psi1"`
	Psi2 float64 `yaml:"psi2"`
}

type PartialSafetySpec struct {
	SLSFavorable   float64 `yaml:"sls_favorable"`
	SLSUnfavorable float64 `yaml:"sls_unfavorable"`
	ULSFavorable   float64 `yaml:"uls_favorable"`
	ULSUnfavorable float64 `yaml:"uls_unfavorable"`
}

// Project is the loaded, validated model ready for generation.
type Project struct {
	Name     string
	Registry *action.Registry
	Rules    *ec0.RuleSet
	Effects  map[string]float64
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	p, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("project file %s: %w", path, err)
	}
	return p, nil
}

// LoadFromBytes parses a project file and registers its actions. Every
// declaration error (duplicate name, unknown factor set, bad pattern,
// unknown dependency) surfaces here, before any enumeration runs.
func LoadFromBytes(data []byte) (*Project, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(file.Actions) == 0 {
		return nil, fmt.Errorf("project declares no actions")
	}

	rules, err := ruleSet(file.Code)
	if err != nil {
		return nil, err
	}

	library := ec0.DefaultFactors()
	if file.Factors != nil {
		for name, cf := range file.Factors.Combination {
			library.Combination[name] = action.CombinationFactors{Psi0: cf.Psi0, Psi1: cf.Psi1, Psi2: cf.Psi2}
		}
		for name, psf := range file.Factors.PartialSafety {
			library.PartialSafety[name] = action.PartialSafetyFactors{
				SLS: action.GammaPair{Favorable: psf.SLSFavorable, Unfavorable: psf.SLSUnfavorable},
				ULS: action.GammaPair{Favorable: psf.ULSFavorable, Unfavorable: psf.ULSUnfavorable},
			}
		}
	}

	registry := action.NewRegistry(library)
	for i, spec := range file.Actions {
		if spec.Name == "" {
			return nil, fmt.Errorf("action %d: missing name", i)
		}
		family, err := action.ParseFamily(spec.Family)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", spec.Name, err)
		}
		if family == action.Variable && spec.Combination == "" {
			return nil, fmt.Errorf("action %q: variable actions must declare combination_factors (no family default exists for ψ values)", spec.Name)
		}
		def := action.Definition{
			Family:             family,
			Name:               spec.Name,
			Description:        spec.Description,
			CombinationFactors: spec.Combination,
			PartialSafety:      spec.PartialSafety,
			DependsOn:          spec.DependsOn,
			IncompatibleWith:   spec.IncompatibleWith,
			NotDeterminant:     spec.NotDeterminant,
		}
		applyFamilyDefaults(&def)
		if _, err := registry.Register(def); err != nil {
			return nil, err
		}
	}

	return &Project{
		Name:     file.Name,
		Registry: registry,
		Rules:    rules,
		Effects:  file.Effects,
	}, nil
}

func ruleSet(code string) (*ec0.RuleSet, error) {
	switch code {
	case "", "ec0_es":
		return ec0.EC0ES(), nil
	}
	return nil, fmt.Errorf("unknown design code %q (supported: ec0_es)", code)
}

// applyFamilyDefaults fills the factor set names most actions of a family
// use, keeping project files short.
func applyFamilyDefaults(def *action.Definition) {
	if def.CombinationFactors == "" {
		switch def.Family {
		case action.Permanent, action.NonConstantPermanent:
			def.CombinationFactors = "permanent"
		case action.Accidental:
			def.CombinationFactors = "accidental"
		case action.Seismic:
			def.CombinationFactors = "seismic"
		}
	}
	if def.PartialSafety == "" {
		switch def.Family {
		case action.Permanent:
			def.PartialSafety = "permanent"
		case action.NonConstantPermanent:
			def.PartialSafety = "nc_permanent"
		case action.Variable:
			def.PartialSafety = "variable"
		case action.Accidental:
			def.PartialSafety = "accidental"
		case action.Seismic:
			def.PartialSafety = "seismic"
		}
	}
}
