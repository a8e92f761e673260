// Package builtin supplies the concrete actions, constraints, and
// auxiliary objects the kernel ships with to make its own contract
// testable (spec §4.3/§4.7/§4.8), grounded on open_mafia_engine's
// core/event_system.py (CancelAction/ConditionalCancelAction),
// built_in/killing.py (KillAction), built_in/voting.py (Tally), and
// core/ender.py/core/outcome.py (EndTheGameAction/OutcomeAction).
package builtin

import "nightfall/internal/engine"

// KillAction sets the target actor's "dead" status to true. Nothing else
// about death is intrinsic to the kernel -- outcome checkers read
// status["dead"] themselves (spec §4.6). Priority 1, carried over from
// open_mafia_engine's built_in/killing.py.
type KillAction struct {
	engine.ActionBase
	Target int
}

// NewKillAction constructs a KillAction.
func NewKillAction(source, target int) *KillAction {
	return &KillAction{ActionBase: engine.NewActionBase(source, 1), Target: target}
}

func (a *KillAction) Run(g *engine.Game) error {
	actor, ok := g.Actor(a.Target)
	if !ok {
		return nil
	}
	actor.Status().Set("dead", true)
	return nil
}

// VoteAction records voter's vote for target on a Tally, identified by aux
// key. A VoteAction with Target == 0 (no valid actor id) represents an
// unvote; Tally.Handle treats it that way.
type VoteAction struct {
	engine.ActionBase
	TallyKey string
	Voter    int
	Target   int // 0 means unvote
}

// NewVoteAction constructs a VoteAction at priority 0.
func NewVoteAction(source int, tallyKey string, voter, target int) *VoteAction {
	return &VoteAction{ActionBase: engine.NewActionBase(source, 0), TallyKey: tallyKey, Voter: voter, Target: target}
}

// Run is a no-op: the Tally aux object reacts to this action's EPostAction,
// exactly as spec §4.8 describes ("Handles EPostAction(VoteAction) to
// update"). The action's only job is to exist and carry its payload.
func (a *VoteAction) Run(g *engine.Game) error { return nil }

// ProtectAction sets a "protected" status flag on the target, which the
// standing ProtectionGuard trigger (internal/roles) reads when deciding
// whether to cancel a KillAction. Priority 80, carried over from
// open_mafia_engine's built_in/protect.py KillProtectAction -- high enough
// that it resolves, in its own batch, before KillAction's batch even
// dispatches pre-responses, so the guard sees "protected" already set.
type ProtectAction struct {
	engine.ActionBase
	Target int
}

// NewProtectAction constructs a ProtectAction.
func NewProtectAction(source, target int) *ProtectAction {
	return &ProtectAction{ActionBase: engine.NewActionBase(source, 80), Target: target}
}

func (a *ProtectAction) Run(g *engine.Game) error {
	actor, ok := g.Actor(a.Target)
	if !ok {
		return nil
	}
	actor.Status().Set("protected", true)
	return nil
}

// CancelAction cancels Target unconditionally. Priority 50 by default,
// matching open_mafia_engine's core/event_system.py -- high enough to
// resolve, within the same pre-action batch, before the action it targets
// would otherwise run.
type CancelAction struct {
	engine.ActionBase
	Target engine.Action
}

// NewCancelAction constructs a CancelAction.
func NewCancelAction(source int, target engine.Action) *CancelAction {
	return &CancelAction{ActionBase: engine.NewActionBase(source, 50), Target: target}
}

func (a *CancelAction) Run(g *engine.Game) error {
	a.Target.Cancel()
	return nil
}

// ConditionalCancelAction re-checks Condition at resolution time before
// cancelling -- useful when multiple pre-responses race to both protect
// and un-protect the same action. Supplemented from open_mafia_engine's
// core/event_system.py ConditionalCancelAction (spec.md's distillation
// dropped it; SPEC_FULL.md §11 restores it). Default priority -100,
// carried over verbatim, so it resolves after plain CancelActions within
// the same pre-response queue (in a later, lower-priority batch).
type ConditionalCancelAction struct {
	engine.ActionBase
	Target    engine.Action
	Condition func(engine.Action) bool
}

// NewConditionalCancelAction constructs a ConditionalCancelAction.
func NewConditionalCancelAction(source int, target engine.Action, condition func(engine.Action) bool) *ConditionalCancelAction {
	return &ConditionalCancelAction{ActionBase: engine.NewActionBase(source, -100), Target: target, Condition: condition}
}

func (a *ConditionalCancelAction) Run(g *engine.Game) error {
	if a.Condition(a.Target) {
		a.Target.Cancel()
	}
	return nil
}

// OutcomeAction sets Outcome on every living member of Faction that has no
// outcome yet, then emits EOutcomeAchieved. Members of other factions, and
// dead members, are not given any outcome. Priority 100 by default, carried
// over from core/outcome.py; since higher priorities resolve first, it runs
// ahead of any lower-priority action pending in the same queue.
type OutcomeAction struct {
	engine.ActionBase
	FactionID int
	Outcome   engine.Outcome
}

// NewOutcomeAction constructs an OutcomeAction.
func NewOutcomeAction(source, factionID int, outcome engine.Outcome) *OutcomeAction {
	return &OutcomeAction{ActionBase: engine.NewActionBase(source, 100), FactionID: factionID, Outcome: outcome}
}

func (a *OutcomeAction) Run(g *engine.Game) error {
	f, ok := g.Faction(a.FactionID)
	if !ok {
		return nil
	}
	for _, id := range f.Members() {
		actor, ok := g.Actor(id)
		if !ok || actor.Dead() {
			continue
		}
		if _, already := actor.Status().Get("outcome"); already {
			continue
		}
		actor.Status().Set("outcome", a.Outcome)
	}
	g.ProcessEvent(&engine.EOutcomeAchieved{FactionID: a.FactionID, Outcome: a.Outcome})
	return nil
}

// EndTheGameAction sets the phase to shutdown and emits EGameEnded.
// Priority 999 by default, carried over verbatim from core/ender.py as the
// highest priority in the system, so it preempts whatever else is still
// queued at the moment the GameEnder decides to fire.
type EndTheGameAction struct {
	engine.ActionBase
}

// NewEndTheGameAction constructs an EndTheGameAction.
func NewEndTheGameAction(source int) *EndTheGameAction {
	return &EndTheGameAction{ActionBase: engine.NewActionBase(source, 999)}
}

func (a *EndTheGameAction) Run(g *engine.Game) error {
	if _, err := g.SetPhase(engine.PhaseShutdown); err != nil {
		return err
	}
	g.ProcessEvent(&engine.EGameEnded{})
	return nil
}
