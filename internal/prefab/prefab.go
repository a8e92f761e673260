// Package prefab implements the declarative prefab surface named in spec
// §6: a yaml-tagged schema plus a Builder that resolves it, through the
// engine's string-keyed kind registries, into a concrete Game. Grounded on
// open_mafia_engine's core/prefab.py (schema) and core/builder.py
// (resolution), following anasdox-workline's "yaml-tagged struct +
// post-unmarshal Validate()" idiom.
package prefab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nightfall/internal/engine"
)

// FactionSpec declares one faction and the win condition it resolves with.
type FactionSpec struct {
	Name          string         `yaml:"name"`
	WinCondition  string         `yaml:"win_condition"`
	WinConditionParams map[string]any `yaml:"win_condition_params,omitempty"`
}

// TriggerSpec declares one game-level trigger with no single owning actor
// (e.g. "protection_guard").
type TriggerSpec struct {
	Kind   string         `yaml:"kind"`
	Params map[string]any `yaml:"params,omitempty"`
}

// RoleSpec declares one role: the abilities and triggers an actor assigned
// this role receives.
type RoleSpec struct {
	Name       string          `yaml:"name"`
	Faction    string          `yaml:"faction"`
	Abilities  []AbilitySpec   `yaml:"abilities,omitempty"`
	Triggers   []TriggerSpec   `yaml:"triggers,omitempty"`
}

// AbilitySpec declares one ability a role grants, under the kind registry's
// name.
type AbilitySpec struct {
	Kind   string         `yaml:"kind"`
	Name   string         `yaml:"name,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Prefab is a complete declarative game template: the factions in play, the
// roles available, the game-level triggers to install, and the named
// variants that each assign a subset of roles to seats.
type Prefab struct {
	Name     string          `yaml:"name"`
	Factions []FactionSpec   `yaml:"factions"`
	Roles    []RoleSpec      `yaml:"roles"`
	Triggers []TriggerSpec   `yaml:"triggers,omitempty"`
	// Variants maps a player count to the ordered list of role names
	// assigned to that many seats.
	Variants map[int][]string `yaml:"variants"`
}

// FromYAML parses data into a Prefab. It does not Validate the result --
// callers resolving against a live KindRegistries should call Validate
// themselves before handing the Prefab to a Builder.
func FromYAML(data []byte) (*Prefab, error) {
	var p Prefab
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing prefab yaml: %w", err)
	}
	return &p, nil
}

// LoadYAML reads path and parses it as a Prefab, following the same
// read-then-parse shape as FromYAML.
func LoadYAML(path string) (*Prefab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prefab %s: %w", path, err)
	}
	return FromYAML(data)
}

// ToYAML marshals p back to YAML, mainly for round-tripping a
// programmatically built Prefab to disk for a driver's scenario library.
func (p *Prefab) ToYAML() ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks every kind name the Prefab references resolves against
// kinds, and that every variant only names roles declared in Roles.
// Returns UnknownKind on the first unresolvable name.
func (p *Prefab) Validate(kinds *engine.KindRegistries) error {
	roleNames := make(map[string]bool, len(p.Roles))
	factionNames := make(map[string]bool, len(p.Factions))
	for _, f := range p.Factions {
		factionNames[f.Name] = true
		if !kinds.KnownWinCondition(f.WinCondition) {
			return &engine.UnknownKind{Registry: "win-condition", Name: f.WinCondition}
		}
	}
	for _, r := range p.Roles {
		roleNames[r.Name] = true
		if !factionNames[r.Faction] {
			return fmt.Errorf("role %q names unknown faction %q", r.Name, r.Faction)
		}
		for _, ab := range r.Abilities {
			if !kinds.KnownAbility(ab.Kind) {
				return &engine.UnknownKind{Registry: "ability", Name: ab.Kind}
			}
		}
		for _, tr := range r.Triggers {
			if !kinds.KnownTrigger(tr.Kind) {
				return &engine.UnknownKind{Registry: "trigger", Name: tr.Kind}
			}
		}
	}
	for _, tr := range p.Triggers {
		if !kinds.KnownTrigger(tr.Kind) {
			return &engine.UnknownKind{Registry: "trigger", Name: tr.Kind}
		}
	}
	for n, roles := range p.Variants {
		for _, name := range roles {
			if !roleNames[name] {
				return fmt.Errorf("variant for %d players names unknown role %q", n, name)
			}
		}
	}
	return nil
}
