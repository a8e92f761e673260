// Package wincon supplies the concrete OutcomeCheckers the engine's
// win-condition registry ships with, grounded on open_mafia_engine's
// core/wincon.py: AlignmentEliminated, AlignmentMajority, and Survival.
package wincon

import (
	"nightfall/internal/engine"
	"nightfall/internal/engine/builtin"
)

// AlignmentEliminated fires Victory for FactionID once every faction named
// in Targets has zero living members. A single-target use ("mafia wins when
// town is eliminated") is the common case; Targets can name more than one
// opposing faction for three-or-more-faction setups.
type AlignmentEliminated struct {
	engine.TriggerBase
	factionID int
	Targets   []int
	achieved  bool
}

// NewAlignmentEliminated constructs an AlignmentEliminated checker for
// factionID, watching the listed opposing faction ids.
func NewAlignmentEliminated(id, factionID int, targets []int) *AlignmentEliminated {
	return &AlignmentEliminated{
		TriggerBase: engine.InitTrigger(id, "alignment_eliminated", allRelevantKinds()...),
		factionID:   factionID,
		Targets:     targets,
	}
}

func (c *AlignmentEliminated) FactionID() int { return c.factionID }
func (c *AlignmentEliminated) Achieved() bool { return c.achieved }

func (c *AlignmentEliminated) Handle(g *engine.Game, e engine.Event) []engine.Action {
	if c.achieved || len(c.Targets) == 0 {
		return nil
	}
	for _, fid := range c.Targets {
		f, ok := g.Faction(fid)
		if !ok || len(f.LivingMembers()) > 0 {
			return nil
		}
	}
	c.achieved = true
	return []engine.Action{builtin.NewOutcomeAction(c.ID(), c.factionID, engine.Victory)}
}

// AlignmentMajority fires Victory for FactionID once the factions named in
// Targets together hold a strict majority of all living actors.
type AlignmentMajority struct {
	engine.TriggerBase
	factionID int
	Targets   []int
	achieved  bool
}

// NewAlignmentMajority constructs an AlignmentMajority checker for
// factionID.
func NewAlignmentMajority(id, factionID int, targets []int) *AlignmentMajority {
	return &AlignmentMajority{
		TriggerBase: engine.InitTrigger(id, "alignment_majority", allRelevantKinds()...),
		factionID:   factionID,
		Targets:     targets,
	}
}

func (c *AlignmentMajority) FactionID() int { return c.factionID }
func (c *AlignmentMajority) Achieved() bool { return c.achieved }

func (c *AlignmentMajority) Handle(g *engine.Game, e engine.Event) []engine.Action {
	if c.achieved {
		return nil
	}
	totalLiving := 0
	for _, a := range g.Actors() {
		if !a.Dead() {
			totalLiving++
		}
	}
	if totalLiving == 0 {
		return nil
	}
	ours := 0
	seen := make(map[int]bool)
	for _, fid := range c.Targets {
		f, ok := g.Faction(fid)
		if !ok {
			continue
		}
		for _, id := range f.LivingMembers() {
			if !seen[id] {
				seen[id] = true
				ours++
			}
		}
	}
	if ours*2 <= totalLiving {
		return nil
	}
	c.achieved = true
	return []engine.Action{builtin.NewOutcomeAction(c.ID(), c.factionID, engine.Victory)}
}

// Survival fires once the game has ended (EGameEnded): Victory if the
// faction still has at least one living member, Defeat otherwise. It is the
// fallback checker most factions without a more specific win condition use.
type Survival struct {
	engine.TriggerBase
	factionID int
	achieved  bool
}

// NewSurvival constructs a Survival checker for factionID.
func NewSurvival(id, factionID int) *Survival {
	return &Survival{
		TriggerBase: engine.InitTrigger(id, "survival", engine.KindGameEnded),
		factionID:   factionID,
	}
}

func (c *Survival) FactionID() int { return c.factionID }
func (c *Survival) Achieved() bool { return c.achieved }

func (c *Survival) Handle(g *engine.Game, e engine.Event) []engine.Action {
	if c.achieved {
		return nil
	}
	if _, ok := e.(*engine.EGameEnded); !ok {
		return nil
	}
	f, ok := g.Faction(c.factionID)
	if !ok {
		return nil
	}
	c.achieved = true
	outcome := engine.Defeat
	if len(f.LivingMembers()) > 0 {
		outcome = engine.Victory
	}
	return []engine.Action{builtin.NewOutcomeAction(c.ID(), c.factionID, outcome)}
}

// allRelevantKinds lists the event kinds AlignmentEliminated and
// AlignmentMajority re-evaluate on: anything that can change who's alive or
// who belongs where. Status changes cover kills/revives; phase changes cover
// any other state mutation a driver bundles into a phase boundary.
func allRelevantKinds() []engine.EventKind {
	return []engine.EventKind{engine.KindStatusChange, engine.KindPhaseChange}
}
