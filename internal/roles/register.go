package roles

import (
	"nightfall/internal/engine"
	"nightfall/internal/engine/builtin"
)

// Register wires every ability and trigger in this package into kinds under
// the names given in SPEC_FULL.md §10.4.
func Register(kinds *engine.KindRegistries) {
	kinds.RegisterAbility("lynch_vote", buildLynchVote)
	kinds.RegisterAbility("kill", buildKill)
	kinds.RegisterAbility("mafia_kill", buildMafiaKill)
	kinds.RegisterAbility("protect", buildProtect)
	kinds.RegisterTrigger("protection_guard", buildProtectionGuard)
}

func buildLynchVote(g *engine.Game, id, actorID int, name string, params map[string]any) (engine.Ability, error) {
	tallyKey, _ := params["tally_key"].(string)
	if tallyKey == "" {
		tallyKey = "main_tally"
	}
	a := NewLynchVoteAbility(id, actorID, tallyKey)
	a.AddConstraint(builtin.SourceAlive{})
	return a, nil
}

func buildKill(g *engine.Game, id, actorID int, name string, params map[string]any) (engine.Ability, error) {
	a := NewKillAbility(id, actorID)
	a.AddConstraint(builtin.SourceAlive{})
	a.AddConstraint(builtin.TargetAlive{})
	a.AddConstraint(builtin.NoSelfFactionTarget{})
	return a, nil
}

func buildMafiaKill(g *engine.Game, id, actorID int, name string, params map[string]any) (engine.Ability, error) {
	counterKey, _ := params["counter_key"].(string)
	if counterKey == "" {
		counterKey = "mafia_kill_budget"
	}
	sharedKey, _ := params["shared_key"].(string)
	if sharedKey == "" {
		sharedKey = "mafia_kill"
	}
	n := 1
	if v, ok := params["n"].(int); ok {
		n = v
	}
	a := NewMafiaKillAbility(id, actorID)
	a.AddConstraint(builtin.SourceAlive{})
	a.AddConstraint(builtin.TargetAlive{})
	a.AddConstraint(builtin.NoSelfFactionTarget{})
	a.AddConstraint(builtin.LimitPerPhaseKey{CounterKey: counterKey, Key: sharedKey, N: n})
	return a, nil
}

func buildProtect(g *engine.Game, id, actorID int, name string, params map[string]any) (engine.Ability, error) {
	a := NewProtectAbility(id, actorID)
	a.AddConstraint(builtin.SourceAlive{})
	a.AddConstraint(builtin.TargetAlive{})
	return a, nil
}

// buildProtectionGuard ignores ownerID: a ProtectionGuard watches every
// KillAction in the game regardless of which actor's prefab entry declared
// it, so the builder typically attaches it once at the faction or game
// level rather than per actor.
func buildProtectionGuard(g *engine.Game, id int, name string, ownerID int, params map[string]any) (engine.Trigger, error) {
	return NewProtectionGuard(id), nil
}
