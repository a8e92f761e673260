package prefab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nightfall/internal/engine"
	"nightfall/internal/engine/builtin"
	"nightfall/internal/prefab"
	"nightfall/internal/roles"
	"nightfall/internal/wincon"
)

// townVsMafiaPrefab builds the shared 2-faction shape scenarios S1-S4 use:
// town wins by eliminating mafia, mafia wins by reaching a majority of the
// living. Variants are added per test since player counts differ.
func townVsMafiaPrefab(variants map[int][]string) *prefab.Prefab {
	return &prefab.Prefab{
		Name: "town-vs-mafia",
		Factions: []prefab.FactionSpec{
			{Name: "town", WinCondition: "alignments_eliminated", WinConditionParams: map[string]any{"targets": []string{"mafia"}}},
			{Name: "mafia", WinCondition: "alignments_majority", WinConditionParams: map[string]any{"targets": []string{"mafia"}}},
		},
		Roles: []prefab.RoleSpec{
			{
				Name:    "citizen",
				Faction: "town",
				Abilities: []prefab.AbilitySpec{
					{Kind: "lynch_vote", Params: map[string]any{"tally_key": "day_tally"}},
				},
			},
			{
				Name:    "doctor",
				Faction: "town",
				Abilities: []prefab.AbilitySpec{
					{Kind: "lynch_vote", Params: map[string]any{"tally_key": "day_tally"}},
					{Kind: "protect"},
				},
			},
			{
				Name:    "mafioso",
				Faction: "mafia",
				Abilities: []prefab.AbilitySpec{
					{Kind: "lynch_vote", Params: map[string]any{"tally_key": "day_tally"}},
					{Kind: "mafia_kill"},
				},
			},
		},
		Triggers: []prefab.TriggerSpec{
			{Kind: "protection_guard"},
		},
		Variants: variants,
	}
}

func newKinds() *engine.KindRegistries {
	kinds := engine.NewKindRegistries()
	roles.Register(kinds)
	wincon.Register(kinds)
	return kinds
}

// TestScenarioS1_LynchFinishesTownWin: players Alice, Bob, Charlie, Dave,
// Eddie; roles Citizen x4, Mafioso x1 (Eddie). Advance to day 1, every
// citizen votes Eddie, advance phase. Eddie dies, every citizen gets a
// victory outcome, and the game shuts down. No outcome is recorded for the
// dead mafioso: OutcomeAction only labels living members of its own faction.
func TestScenarioS1_LynchFinishesTownWin(t *testing.T) {
	kinds := newKinds()
	p := townVsMafiaPrefab(map[int][]string{
		5: {"citizen", "citizen", "citizen", "citizen", "mafioso"},
	})
	b := prefab.NewBuilder(kinds)
	g, err := b.Build(engine.NoopDiagnostics(), p, []string{"Alice", "Bob", "Charlie", "Dave", "Eddie"})
	require.NoError(t, err)

	alice, _ := g.ActorByName("Alice")
	bob, _ := g.ActorByName("Bob")
	charlie, _ := g.ActorByName("Charlie")
	dave, _ := g.ActorByName("Dave")
	eddie, _ := g.ActorByName("Eddie")

	_, err = g.AdvancePhase() // startup -> day 1
	require.NoError(t, err)

	for _, voter := range []*engine.Actor{alice, bob, charlie, dave} {
		_, err = g.Activate(voter.ID(), "lynch_vote", engine.ActivationArgs{"target": eddie.ID()})
		require.NoError(t, err)
	}

	_, err = g.AdvancePhase() // day 1 -> night 1; lynch resolves, town wins, game ends
	require.NoError(t, err)

	require.True(t, eddie.Dead())
	require.Equal(t, engine.PhaseShutdown, g.CurrentPhase().Name)

	for _, townie := range []*engine.Actor{alice, bob, charlie, dave} {
		outcome, ok := townie.Status().Get("outcome")
		require.True(t, ok)
		require.Equal(t, engine.Victory, outcome)
	}
}

// TestScenarioS2_MafiaKillCancelledByProtection: Eddie (mafia) activates
// MafiaKill targeting Alice during night 1; the doctor (Carol) protects
// Alice first. The standing ProtectionGuard cancels the kill. Alice
// survives; the KillAction is recorded in history as not-ran.
func TestScenarioS2_MafiaKillCancelledByProtection(t *testing.T) {
	kinds := newKinds()
	p := townVsMafiaPrefab(map[int][]string{
		4: {"citizen", "citizen", "doctor", "mafioso"},
	})
	b := prefab.NewBuilder(kinds)
	g, err := b.Build(engine.NoopDiagnostics(), p, []string{"Alice", "Bob", "Carol", "Eddie"})
	require.NoError(t, err)

	alice, _ := g.ActorByName("Alice")
	carol, _ := g.ActorByName("Carol")
	eddie, _ := g.ActorByName("Eddie")

	_, err = g.AdvancePhase() // startup -> day 1
	require.NoError(t, err)
	_, err = g.AdvancePhase() // day 1 -> night 1
	require.NoError(t, err)

	_, err = g.Activate(carol.ID(), "protect", engine.ActivationArgs{"target": alice.ID()})
	require.NoError(t, err)
	_, err = g.Activate(eddie.ID(), "mafia_kill", engine.ActivationArgs{"target": alice.ID()})
	require.NoError(t, err)

	_, err = g.AdvancePhase() // night 1 -> day 2, drains the accumulated night queue
	require.NoError(t, err)

	require.False(t, alice.Dead())

	var sawNotRanKill bool
	for _, h := range g.History() {
		if h.Ran {
			continue
		}
		if kill, ok := h.Action.(*builtin.KillAction); ok && kill.Target == alice.ID() {
			sawNotRanKill = true
		}
	}
	require.True(t, sawNotRanKill, "expected a not-ran KillAction targeting Alice in history")
}

// TestScenarioS3_MafiaKillUsageLimit: two mafiosi share a
// LimitPerPhaseKey("mafia_kill", 1). Only the first MafiaKill activation in
// a night produces a KillAction; the second is vetoed.
func TestScenarioS3_MafiaKillUsageLimit(t *testing.T) {
	kinds := newKinds()
	p := townVsMafiaPrefab(map[int][]string{
		4: {"citizen", "citizen", "mafioso", "mafioso"},
	})
	b := prefab.NewBuilder(kinds)
	g, err := b.Build(engine.NoopDiagnostics(), p, []string{"Alice", "Bob", "Dave", "Eddie"})
	require.NoError(t, err)

	alice, _ := g.ActorByName("Alice")
	bob, _ := g.ActorByName("Bob")
	dave, _ := g.ActorByName("Dave")
	eddie, _ := g.ActorByName("Eddie")

	_, err = g.AdvancePhase() // startup -> day 1
	require.NoError(t, err)
	_, err = g.AdvancePhase() // day 1 -> night 1
	require.NoError(t, err)

	actions, err := g.Activate(dave.ID(), "mafia_kill", engine.ActivationArgs{"target": alice.ID()})
	require.NoError(t, err)
	require.Len(t, actions, 1)

	_, err = g.Activate(eddie.ID(), "mafia_kill", engine.ActivationArgs{"target": bob.ID()})
	require.Error(t, err)
	var invalid *engine.InvalidActivation
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "LimitPerPhaseKey", invalid.Reason.Constraint)
}

// TestScenarioS4_PhaseCounterResetsBetweenNights: after S3's limit is hit,
// advancing through day 2 back to night 2 resets the shared counter, so
// whichever mafioso acts first on night 2 (Eddie, vetoed on night 1) may
// kill, and the other (Dave) is vetoed.
func TestScenarioS4_PhaseCounterResetsBetweenNights(t *testing.T) {
	kinds := newKinds()
	p := townVsMafiaPrefab(map[int][]string{
		5: {"citizen", "citizen", "citizen", "mafioso", "mafioso"},
	})
	b := prefab.NewBuilder(kinds)
	g, err := b.Build(engine.NoopDiagnostics(), p, []string{"Alice", "Bob", "Charlie", "Dave", "Eddie"})
	require.NoError(t, err)

	alice, _ := g.ActorByName("Alice")
	bob, _ := g.ActorByName("Bob")
	dave, _ := g.ActorByName("Dave")
	eddie, _ := g.ActorByName("Eddie")

	_, err = g.AdvancePhase() // startup -> day 1
	require.NoError(t, err)
	_, err = g.AdvancePhase() // day 1 -> night 1
	require.NoError(t, err)

	_, err = g.Activate(dave.ID(), "mafia_kill", engine.ActivationArgs{"target": alice.ID()})
	require.NoError(t, err)
	_, err = g.Activate(eddie.ID(), "mafia_kill", engine.ActivationArgs{"target": bob.ID()})
	require.Error(t, err)

	_, err = g.AdvancePhase() // night 1 -> day 2
	require.NoError(t, err)
	_, err = g.AdvancePhase() // day 2 -> night 2
	require.NoError(t, err)

	actions, err := g.Activate(eddie.ID(), "mafia_kill", engine.ActivationArgs{"target": bob.ID()})
	require.NoError(t, err)
	require.Len(t, actions, 1, "the shared counter reset on the new night, so Eddie may kill now")

	_, err = g.Activate(dave.ID(), "mafia_kill", engine.ActivationArgs{"target": bob.ID()})
	require.Error(t, err, "Eddie already used the shared budget for this night")
}
