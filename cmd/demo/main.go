// Command demo wires the engine, prefab, roles, and wincon packages
// together and runs a small scripted scenario end to end: two townsfolk, a
// doctor and one mafioso, with a night kill blocked by the doctor's
// protection, printing the resulting history. Grounded on the "one small
// command wires the managers and runs a scenario" shape of
// thraizz-mage/cmd/server/main.go and louisbranch-fracturing.space/cmd/scenario.
package main

import (
	"fmt"
	"os"

	"nightfall/internal/config"
	"nightfall/internal/diagnostics"
	"nightfall/internal/engine"
	"nightfall/internal/prefab"
	"nightfall/internal/roles"
	"nightfall/internal/wincon"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	diag, err := diagnostics.New(cfg)
	if err != nil {
		return err
	}

	kinds := engine.NewKindRegistries()
	roles.Register(kinds)
	wincon.Register(kinds)

	p := &prefab.Prefab{
		Name: "three-v-one",
		Factions: []prefab.FactionSpec{
			{Name: "town", WinCondition: "alignments_eliminated", WinConditionParams: map[string]any{"targets": []string{"mafia"}}},
			{Name: "mafia", WinCondition: "alignments_majority", WinConditionParams: map[string]any{"targets": []string{"mafia"}}},
		},
		Roles: []prefab.RoleSpec{
			{
				Name:    "townsfolk",
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
		Variants: map[int][]string{
			4: {"townsfolk", "townsfolk", "doctor", "mafioso"},
		},
	}
	b := prefab.NewBuilder(kinds)
	g, err := b.Build(diag, p, []string{"Alice", "Bob", "Carol", "Dave"})
	if err != nil {
		return err
	}
	g.SetMaxQueueDepth(cfg.MaxQueueDepth)
	g.SetMaxHistory(cfg.HistoryRetention)

	alice, _ := g.ActorByName("Alice")
	carol, _ := g.ActorByName("Carol") // doctor
	dave, _ := g.ActorByName("Dave")   // mafioso

	if _, err := g.AdvancePhase(); err != nil { // startup -> day 1
		return err
	}
	if _, err := g.AdvancePhase(); err != nil { // day 1 -> night 1
		return err
	}

	if _, err := g.Activate(carol.ID(), "protect", engine.ActivationArgs{"target": alice.ID()}); err != nil {
		return err
	}
	if _, err := g.Activate(dave.ID(), "mafia_kill", engine.ActivationArgs{"target": alice.ID()}); err != nil {
		return err
	}

	if _, err := g.AdvancePhase(); err != nil { // night 1 -> day 2
		return err
	}

	fmt.Println("game", g.ID())
	fmt.Println("Alice dead?", alice.Dead()) // expect false: the protection guard cancelled the kill

	for _, h := range g.History() {
		status := "ran"
		if !h.Ran {
			status = "skipped"
		}
		if h.Failed != nil {
			status = "failed: " + h.Failed.Message
		}
		fmt.Printf("seq=%d %T %s\n", h.Seq, h.Action, status)
	}
	return nil
}
