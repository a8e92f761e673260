// Package roles supplies the abilities and triggers needed to demonstrate
// the kernel's contract end to end (spec §1 Non-goals explicitly excludes a
// full role catalog): lynch voting, killing, protection, and the standing
// guard that lets protection cancel a kill. Grounded on open_mafia_engine's
// built_in/voting.py, built_in/killing.py, and built_in/protection.py.
package roles

import (
	"nightfall/internal/engine"
	"nightfall/internal/engine/builtin"
)

// LynchVoteAbility produces a VoteAction against the TallyKey it was built
// with, targeting whatever actor id the activation args name (0 to unvote).
type LynchVoteAbility struct {
	engine.AbilityBase
	TallyKey string
}

// NewLynchVoteAbility constructs a LynchVoteAbility owned by actorID.
func NewLynchVoteAbility(id, actorID int, tallyKey string) *LynchVoteAbility {
	a := &LynchVoteAbility{TallyKey: tallyKey}
	a.AbilityBase = engine.InitAbility(a, id, "lynch_vote", actorID)
	return a
}

func (a *LynchVoteAbility) MakeActions(g *engine.Game, args engine.ActivationArgs) []engine.Action {
	target, _ := args["target"].(int) // 0 (zero value) means unvote
	return []engine.Action{builtin.NewVoteAction(a.ID(), a.TallyKey, a.ActorID(), target)}
}

// KillAbility produces a KillAction targeting the "target" activation arg.
type KillAbility struct {
	engine.AbilityBase
}

// NewKillAbility constructs a KillAbility owned by actorID.
func NewKillAbility(id, actorID int) *KillAbility {
	a := &KillAbility{}
	a.AbilityBase = engine.InitAbility(a, id, "kill", actorID)
	return a
}

func (a *KillAbility) MakeActions(g *engine.Game, args engine.ActivationArgs) []engine.Action {
	target, ok := args["target"].(int)
	if !ok {
		return nil
	}
	return []engine.Action{builtin.NewKillAction(a.ID(), target)}
}

// MafiaKillAbility is a KillAbility variant built with a LimitPerPhaseKey
// constraint already attached (by its registry factory) so that, e.g.,
// several mafiosi sharing a kill budget only get one kill through per night
// (scenario S3). Distinct type rather than a flag on KillAbility so the
// kind registry can distinguish the two by name alone.
type MafiaKillAbility struct {
	engine.AbilityBase
}

// NewMafiaKillAbility constructs a MafiaKillAbility owned by actorID.
func NewMafiaKillAbility(id, actorID int) *MafiaKillAbility {
	a := &MafiaKillAbility{}
	a.AbilityBase = engine.InitAbility(a, id, "mafia_kill", actorID)
	return a
}

func (a *MafiaKillAbility) MakeActions(g *engine.Game, args engine.ActivationArgs) []engine.Action {
	target, ok := args["target"].(int)
	if !ok {
		return nil
	}
	return []engine.Action{builtin.NewKillAction(a.ID(), target)}
}

// ProtectAbility produces a ProtectAction targeting the "target" activation
// arg.
type ProtectAbility struct {
	engine.AbilityBase
}

// NewProtectAbility constructs a ProtectAbility owned by actorID.
func NewProtectAbility(id, actorID int) *ProtectAbility {
	a := &ProtectAbility{}
	a.AbilityBase = engine.InitAbility(a, id, "protect", actorID)
	return a
}

func (a *ProtectAbility) MakeActions(g *engine.Game, args engine.ActivationArgs) []engine.Action {
	target, ok := args["target"].(int)
	if !ok {
		return nil
	}
	return []engine.Action{builtin.NewProtectAction(a.ID(), target)}
}

// ProtectionGuard is the standing trigger that makes ProtectAction mean
// something: it reacts to EPreAction(KillAction) and, if the target is
// currently protected, produces a CancelAction for it. This is the
// mechanism scenario S2 exercises. It consumes the protected flag on use
// (a single guard blocks a single kill), matching built_in/protection.py's
// one-shot "used" semantics.
type ProtectionGuard struct {
	engine.TriggerBase
}

// NewProtectionGuard constructs a ProtectionGuard. It has no single owning
// actor -- it watches every KillAction regardless of target -- so it is
// typically attached once, at the faction or game level, rather than per
// actor.
func NewProtectionGuard(id int) *ProtectionGuard {
	return &ProtectionGuard{TriggerBase: engine.InitTrigger(id, "protection_guard", engine.KindPreAction)}
}

func (t *ProtectionGuard) Handle(g *engine.Game, e engine.Event) []engine.Action {
	pre, ok := e.(*engine.EPreAction)
	if !ok {
		return nil
	}
	kill, ok := pre.Action.(*builtin.KillAction)
	if !ok {
		return nil
	}
	actor, ok := g.Actor(kill.Target)
	if !ok || !actor.Status().Bool("protected") {
		return nil
	}
	actor.Status().Set("protected", false)
	return []engine.Action{builtin.NewCancelAction(t.ID(), pre.Action)}
}
