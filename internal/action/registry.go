package action

import (
	"fmt"
	"regexp"
)

// FactorLibrary maps set names to factor values. Registrations reference
// sets by name, the way the original annex files name their ψ and γ tables
// ("road_traffic", "thermal", ...).
type FactorLibrary struct {
	Combination   map[string]CombinationFactors
	PartialSafety map[string]PartialSafetyFactors
}

// Definition is the input to Registry.Register.
type Definition struct {
	Family      Family
	Name        string
	Description string

	// Names of the factor sets in the registry's library.
	CombinationFactors string
	PartialSafety      string

	// DependsOn names an already registered action that must accompany
	// this one (e.g. braking depends on traffic).
	DependsOn string

	// IncompatibleWith holds regular expressions matched against the names
	// of actions that may not share a combination with this one.
	IncompatibleWith []string

	NotDeterminant bool
}

// Registry stores the declared actions grouped by family, preserving
// registration order within each family. Combination numbering downstream
// depends on that order, so it is never re-sorted.
type Registry struct {
	library  *FactorLibrary
	byName   map[string]*Action
	byFamily map[Family][]*Action
	order    []*Action
}

// NewRegistry creates an empty registry drawing factor sets from lib.
func NewRegistry(lib *FactorLibrary) *Registry {
	return &Registry{
		library:  lib,
		byName:   make(map[string]*Action),
		byFamily: make(map[Family][]*Action),
	}
}

// Register creates an action and stores it in its family. It fails if the
// name is taken, a referenced factor set is missing, an incompatibility
// pattern does not compile, or DependsOn names an unregistered action.
func (r *Registry) Register(def Definition) (*Action, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("action name must not be empty")
	}
	if _, ok := r.byName[def.Name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAction, def.Name)
	}

	cf, ok := r.library.Combination[def.CombinationFactors]
	if !ok {
		return nil, fmt.Errorf("%w: combination factors %q (action %q)", ErrUnknownFactors, def.CombinationFactors, def.Name)
	}
	psf, ok := r.library.PartialSafety[def.PartialSafety]
	if !ok {
		return nil, fmt.Errorf("%w: partial safety factors %q (action %q)", ErrUnknownFactors, def.PartialSafety, def.Name)
	}

	a := &Action{
		Name:                 def.Name,
		Description:          def.Description,
		Family:               def.Family,
		CombinationFactors:   cf,
		PartialSafetyFactors: psf,
		NotDeterminant:       def.NotDeterminant,
	}
	for _, pat := range def.IncompatibleWith {
		re, err := regexp.Compile("^(?:" + pat + ")$")
		if err != nil {
			return nil, fmt.Errorf("incompatibility pattern %q of action %q: %w", pat, def.Name, err)
		}
		a.patterns = append(a.patterns, pat)
		a.incompatible = append(a.incompatible, re)
	}

	r.byName[def.Name] = a
	r.byFamily[def.Family] = append(r.byFamily[def.Family], a)
	r.order = append(r.order, a)

	if def.DependsOn != "" {
		if err := r.AddDependency(def.Name, def.DependsOn); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// AddDependency records that actionName requires dependsOn to be present in
// every combination that contains it. Both names must already be registered;
// configuration errors surface here rather than at enumeration time.
func (r *Registry) AddDependency(actionName, dependsOn string) error {
	a, ok := r.byName[actionName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, actionName)
	}
	if _, ok := r.byName[dependsOn]; !ok {
		return fmt.Errorf("%w: %q (dependency of %q)", ErrUnknownAction, dependsOn, actionName)
	}
	a.dependsOn = dependsOn
	return nil
}

// AddIncompatibility appends patterns to an already registered action.
func (r *Registry) AddIncompatibility(actionName string, patterns []string) error {
	a, ok := r.byName[actionName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, actionName)
	}
	for _, pat := range patterns {
		re, err := regexp.Compile("^(?:" + pat + ")$")
		if err != nil {
			return fmt.Errorf("incompatibility pattern %q of action %q: %w", pat, actionName, err)
		}
		a.patterns = append(a.patterns, pat)
		a.incompatible = append(a.incompatible, re)
	}
	return nil
}

// Get returns the action registered under name, or nil.
func (r *Registry) Get(name string) *Action {
	return r.byName[name]
}

// ByFamily returns the actions of a family in registration order. The
// returned slice must not be modified.
func (r *Registry) ByFamily(f Family) []*Action {
	return r.byFamily[f]
}

// All returns every registered action in registration order.
func (r *Registry) All() []*Action {
	return r.order
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.order)
}

// Validate reports modeling contradictions that would silently empty the
// generated combinations: an action whose dependency is also declared
// incompatible with it can never appear. Returned strings are warnings; the
// model is still usable.
func (r *Registry) Validate() []string {
	var warnings []string
	for _, a := range r.order {
		dep := a.dependsOn
		if dep == "" {
			continue
		}
		target := r.byName[dep]
		if a.IncompatibleWith(dep) || target.IncompatibleWith(a.Name) {
			warnings = append(warnings,
				fmt.Sprintf("action %q depends on %q but the two are declared incompatible; no combination can contain %q", a.Name, dep, a.Name))
		}
	}
	return warnings
}
