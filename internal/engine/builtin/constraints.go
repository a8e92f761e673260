package builtin

import (
	"fmt"

	"nightfall/internal/engine"
)

// SourceAlive vetoes activation when the owning actor's status["dead"] is
// true.
type SourceAlive struct{}

func (SourceAlive) Name() string { return "source_alive" }

func (SourceAlive) Check(g *engine.Game, e engine.Event, args engine.ActivationArgs) *engine.VetoReason {
	act, ok := e.(*engine.EActivate)
	if !ok {
		return nil
	}
	actor, ok := g.Actor(act.ActorID)
	if !ok || actor.Dead() {
		return &engine.VetoReason{Constraint: "SourceAlive", Detail: "source is dead"}
	}
	return nil
}

// TargetAlive vetoes activation when the "target" arg (an actor id) is
// dead.
type TargetAlive struct{}

func (TargetAlive) Name() string { return "target_alive" }

func (TargetAlive) Check(g *engine.Game, e engine.Event, args engine.ActivationArgs) *engine.VetoReason {
	id, ok := targetActorID(args)
	if !ok {
		return nil
	}
	actor, ok := g.Actor(id)
	if !ok || actor.Dead() {
		return &engine.VetoReason{Constraint: "TargetAlive", Detail: "target is dead"}
	}
	return nil
}

// PhaseIs vetoes activation unless the current phase's name is one of
// Names.
type PhaseIs struct {
	Names []string
}

func (PhaseIs) Name() string { return "phase_is" }

func (c PhaseIs) Check(g *engine.Game, e engine.Event, args engine.ActivationArgs) *engine.VetoReason {
	cur := g.CurrentPhase().Name
	for _, n := range c.Names {
		if n == cur {
			return nil
		}
	}
	return &engine.VetoReason{Constraint: "PhaseIs", Detail: fmt.Sprintf("current phase %q not in %v", cur, c.Names)}
}

// LimitPerPhaseActor vetoes once the owning ability has already fired N
// times this phase for its source actor. Counts are tracked by a
// PhaseCounter aux object, keyed on "actor:<actorID>:ability:<abilityID>", and
// reset on every EPhaseChange.
type LimitPerPhaseActor struct {
	CounterKey string // the PhaseCounter aux's Key()
	N          int
}

func (LimitPerPhaseActor) Name() string { return "limit_per_phase_actor" }

func (c LimitPerPhaseActor) Check(g *engine.Game, e engine.Event, args engine.ActivationArgs) *engine.VetoReason {
	act, ok := e.(*engine.EActivate)
	if !ok {
		return nil
	}
	pc := phaseCounter(g, c.CounterKey)
	key := fmt.Sprintf("actor:%d:ability:%d", act.ActorID, act.AbilityID)
	if pc.count(key) >= c.N {
		return &engine.VetoReason{Constraint: "LimitPerPhaseActor", Detail: "limit reached"}
	}
	pc.increment(key)
	return nil
}

// LimitPerPhaseKey vetoes once N total firings have occurred this phase
// across every subscriber sharing Key -- e.g. two mafiosi sharing
// "mafia_kill" so only one of them gets a kill in per night (scenario S3).
type LimitPerPhaseKey struct {
	CounterKey string // the PhaseCounter aux's Key()
	Key        string
	N          int
}

func (LimitPerPhaseKey) Name() string { return "limit_per_phase_key" }

func (c LimitPerPhaseKey) Check(g *engine.Game, e engine.Event, args engine.ActivationArgs) *engine.VetoReason {
	pc := phaseCounter(g, c.CounterKey)
	if pc.count(c.Key) >= c.N {
		return &engine.VetoReason{Constraint: "LimitPerPhaseKey", Detail: "LimitReached"}
	}
	pc.increment(c.Key)
	return nil
}

// NoSelfFactionTarget vetoes activation when the "target" arg (an actor id)
// shares a faction with the activating actor.
type NoSelfFactionTarget struct{}

func (NoSelfFactionTarget) Name() string { return "no_self_faction_target" }

func (NoSelfFactionTarget) Check(g *engine.Game, e engine.Event, args engine.ActivationArgs) *engine.VetoReason {
	act, ok := e.(*engine.EActivate)
	if !ok {
		return nil
	}
	source, ok := g.Actor(act.ActorID)
	if !ok {
		return nil
	}
	targetID, ok := targetActorID(args)
	if !ok {
		return nil
	}
	target, ok := g.Actor(targetID)
	if !ok {
		return nil
	}
	if source.SharesFactionWith(target) {
		return &engine.VetoReason{Constraint: "NoSelfFactionTarget", Detail: "target shares a faction with source"}
	}
	return nil
}

func targetActorID(args engine.ActivationArgs) (int, bool) {
	v, ok := args["target"]
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
