package prefab

import (
	"fmt"

	"nightfall/internal/engine"
	"nightfall/internal/engine/builtin"
)

// Builder resolves a validated Prefab plus a chosen variant and a list of
// player names into actors, factions, abilities, and triggers on a fresh
// Game. It never resolves the prefab surface's search paths, file
// discovery, or loader UI -- those are out of scope per SPEC_FULL §10.4.
type Builder struct {
	Kinds *engine.KindRegistries
}

// NewBuilder constructs a Builder against kinds.
func NewBuilder(kinds *engine.KindRegistries) *Builder {
	return &Builder{Kinds: kinds}
}

// Build picks the variant named by len(players) and assigns its roles[i] to
// players[i] (the variant must list exactly len(players) roles), creating
// the prefab's factions and wiring every declared ability/trigger, on a
// fresh engine.Game constructed with diag.
func (b *Builder) Build(diag engine.Diagnostics, p *Prefab, players []string) (*engine.Game, error) {
	if err := p.Validate(b.Kinds); err != nil {
		return nil, err
	}
	roleNames, ok := p.Variants[len(players)]
	if !ok {
		return nil, fmt.Errorf("prefab %q has no variant for %d players", p.Name, len(players))
	}
	if len(roleNames) != len(players) {
		return nil, fmt.Errorf("prefab %q variant for %d players assigns %d roles", p.Name, len(players), len(roleNames))
	}

	g := engine.NewGame(diag, b.Kinds)

	factions := make(map[string]*engine.Faction, len(p.Factions))
	for _, fs := range p.Factions {
		f, err := g.AddFaction(fs.Name)
		if err != nil {
			return nil, err
		}
		factions[fs.Name] = f
	}

	rolesByName := make(map[string]RoleSpec, len(p.Roles))
	for _, r := range p.Roles {
		rolesByName[r.Name] = r
	}

	tallyKeys := make(map[string]bool)
	for i, playerName := range players {
		roleName := roleNames[i]
		role, ok := rolesByName[roleName]
		if !ok {
			return nil, fmt.Errorf("variant names undeclared role %q", roleName)
		}
		actor, err := g.AddActor(playerName)
		if err != nil {
			return nil, err
		}
		faction, ok := factions[role.Faction]
		if !ok {
			return nil, fmt.Errorf("role %q names undeclared faction %q", role.Name, role.Faction)
		}
		faction.AddMember(actor.ID())

		for _, as := range role.Abilities {
			factory, err := b.Kinds.Ability(as.Kind)
			if err != nil {
				return nil, err
			}
			name := as.Name
			if name == "" {
				name = as.Kind
			}
			ab, err := factory(g, g.NewObjectID(), actor.ID(), name, as.Params)
			if err != nil {
				return nil, err
			}
			actor.AddAbility(ab)
			if as.Kind == "lynch_vote" {
				if key, _ := as.Params["tally_key"].(string); key != "" {
					tallyKeys[key] = true
				} else {
					tallyKeys["main_tally"] = true
				}
			}
		}
		for _, ts := range role.Triggers {
			factory, err := b.Kinds.Trigger(ts.Kind)
			if err != nil {
				return nil, err
			}
			t, err := factory(g, g.NewObjectID(), ts.Kind, actor.ID(), ts.Params)
			if err != nil {
				return nil, err
			}
			actor.AddTrigger(t)
		}
	}

	for _, fs := range p.Factions {
		factory, err := b.Kinds.WinCondition(fs.WinCondition)
		if err != nil {
			return nil, err
		}
		f := factions[fs.Name]
		checker, err := factory(g, f.ID(), fs.WinConditionParams)
		if err != nil {
			return nil, err
		}
		f.AddOutcomeChecker(checker)
	}

	for _, ts := range p.Triggers {
		factory, err := b.Kinds.Trigger(ts.Kind)
		if err != nil {
			return nil, err
		}
		t, err := factory(g, g.NewObjectID(), ts.Kind, 0, ts.Params)
		if err != nil {
			return nil, err
		}
		g.RegisterTrigger(t)
	}

	// Every lynch_vote tally key referenced by a role gets a backing Tally
	// and a LynchResolver that converts its leader into a KillAction at the
	// close of each day, mirroring open_mafia_engine's
	// built_in/voting.py + built_in/lynch.py pairing. GameEnder is always
	// installed so an OutcomeAction can actually end the game (core/ender.py).
	for key := range tallyKeys {
		if err := g.RegisterAux(builtin.NewTally(g.NewObjectID(), key)); err != nil {
			return nil, err
		}
		if err := g.RegisterAux(builtin.NewLynchResolver(g.NewObjectID(), "lynch_resolver:"+key, key)); err != nil {
			return nil, err
		}
	}
	if err := g.RegisterAux(builtin.NewGameEnder(g.NewObjectID(), "game_ender")); err != nil {
		return nil, err
	}

	return g, nil
}
