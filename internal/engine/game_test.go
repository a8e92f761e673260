package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGame_IDIsUniquePerInstance(t *testing.T) {
	a := NewGame(nil, nil)
	b := NewGame(nil, nil)
	require.NotEmpty(t, a.ID())
	require.NotEmpty(t, b.ID())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestGame_AddActorFactionOnlyDuringStartup(t *testing.T) {
	g := NewGame(nil, nil)
	_, err := g.AddActor("alice")
	require.NoError(t, err)

	_, err = g.AdvancePhase() // startup -> day 1
	require.NoError(t, err)

	_, err = g.AddActor("bob")
	require.Error(t, err)
	var bad *InvalidPhaseTransition
	require.ErrorAs(t, err, &bad)

	_, err = g.AddFaction("town")
	require.Error(t, err)
	require.ErrorAs(t, err, &bad)
}

func TestGame_AddActorDuplicateName(t *testing.T) {
	g := NewGame(nil, nil)
	_, err := g.AddActor("alice")
	require.NoError(t, err)
	_, err = g.AddActor("alice")
	require.Error(t, err)
	var dup *DuplicateName
	require.ErrorAs(t, err, &dup)
}

type vetoingConstraint struct{ reason string }

func (c vetoingConstraint) Name() string { return "vetoing" }
func (c vetoingConstraint) Check(g *Game, e Event, args ActivationArgs) *VetoReason {
	return &VetoReason{Constraint: c.Name(), Detail: c.reason}
}

type noopAbility struct {
	AbilityBase
}

func newNoopAbility(id, actorID int) *noopAbility {
	a := &noopAbility{}
	a.AbilityBase = InitAbility(a, id, "noop", actorID)
	return a
}

func (a *noopAbility) MakeActions(g *Game, args ActivationArgs) []Action { return nil }

func TestGame_ActivateVetoedReturnsInvalidActivation(t *testing.T) {
	g := NewGame(nil, nil)
	actor, err := g.AddActor("alice")
	require.NoError(t, err)

	ab := newNoopAbility(100, actor.ID())
	ab.AddConstraint(vetoingConstraint{reason: "nope"})
	actor.AddAbility(ab)

	_, err = g.Activate(actor.ID(), "noop", nil)
	require.Error(t, err)
	var invalid *InvalidActivation
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "nope", invalid.Reason.Detail)
}

type killingAbility struct {
	AbilityBase
}

func newKillingAbility(id, actorID int) *killingAbility {
	a := &killingAbility{}
	a.AbilityBase = InitAbility(a, id, "kill", actorID)
	return a
}

func (a *killingAbility) MakeActions(g *Game, args ActivationArgs) []Action {
	var log []string
	return []Action{newRecordAction("kill", &log, a.ActorID(), 0)}
}

func TestGame_ActivateProducesActionsAndDrainsUnderInstantPolicy(t *testing.T) {
	g := NewGame(nil, nil)
	actor, err := g.AddActor("alice")
	require.NoError(t, err)
	ab := newKillingAbility(100, actor.ID())
	actor.AddAbility(ab)

	_, err = g.AdvancePhase() // startup -> day 1 (Instant)
	require.NoError(t, err)

	actions, err := g.Activate(actor.ID(), "kill", ActivationArgs{"target": actor.ID()})
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.Equal(t, 0, g.mainQueue.Len()) // drained immediately under Instant policy
}

func TestGame_EndOfPhaseDefersResolutionUntilAdvance(t *testing.T) {
	g := NewGame(nil, nil)
	actor, err := g.AddActor("alice")
	require.NoError(t, err)
	ab := newKillingAbility(100, actor.ID())
	actor.AddAbility(ab)

	_, err = g.AdvancePhase() // startup -> day 1
	require.NoError(t, err)
	_, err = g.AdvancePhase() // day 1 -> night 1 (EndOfPhase)
	require.NoError(t, err)

	_, err = g.Activate(actor.ID(), "kill", ActivationArgs{"target": actor.ID()})
	require.NoError(t, err)
	require.Equal(t, 1, g.mainQueue.Len()) // held, not yet drained

	_, err = g.AdvancePhase() // night 1 -> day 2 drains it
	require.NoError(t, err)
	require.Equal(t, 0, g.mainQueue.Len())
}

func TestGame_HistorySinceFiltersBySeq(t *testing.T) {
	g := NewGame(nil, nil)
	var log []string
	a := newRecordAction("a", &log, 1, 0)
	b := newRecordAction("b", &log, 1, 0)
	g.mainQueue.Enqueue(a)
	require.NoError(t, g.mainQueue.DrainAll())
	mark := g.seqCounter
	g.mainQueue.Enqueue(b)
	require.NoError(t, g.mainQueue.DrainAll())

	since := g.HistorySince(mark + 1)
	require.Len(t, since, 1)
	require.Equal(t, b, since[0].Action)
}
