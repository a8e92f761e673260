package engine

// Faction is a named team of actors. Membership is a direct mutation, not
// action-mediated (spec §3 Faction): a driver adds/removes members outright
// during startup, rather than going through the event/action kernel.
type Faction struct {
	object
	game     *Game
	members  []int
	checkers []OutcomeChecker
}

func newFaction(g *Game, id int, name string) *Faction {
	return &Faction{object: object{id: id, name: name}, game: g}
}

func (f *Faction) ID() int { return f.object.id }

// Members returns the member actor ids, in the order they were added.
func (f *Faction) Members() []int { return append([]int(nil), f.members...) }

// AddMember adds actorID to the faction, and records the faction on the
// Actor. A no-op if already a member.
func (f *Faction) AddMember(actorID int) {
	for _, m := range f.members {
		if m == actorID {
			return
		}
	}
	f.members = append(f.members, actorID)
	if a, ok := f.game.Actor(actorID); ok {
		a.factions = append(a.factions, f.object.id)
	}
}

// RemoveMember removes actorID from the faction, if present.
func (f *Faction) RemoveMember(actorID int) {
	for i, m := range f.members {
		if m == actorID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			break
		}
	}
	if a, ok := f.game.Actor(actorID); ok {
		for i, fid := range a.factions {
			if fid == f.object.id {
				a.factions = append(a.factions[:i], a.factions[i+1:]...)
				break
			}
		}
	}
}

// LivingMembers returns the subset of Members() whose status["dead"] is not
// true.
func (f *Faction) LivingMembers() []int {
	var out []int
	for _, id := range f.members {
		if a, ok := f.game.Actor(id); ok && !a.Dead() {
			out = append(out, id)
		}
	}
	return out
}

// AddOutcomeChecker attaches checker and subscribes it to the events it
// needs.
func (f *Faction) AddOutcomeChecker(checker OutcomeChecker) {
	f.checkers = append(f.checkers, checker)
	f.game.registerOutcomeChecker(checker)
}

// OutcomeCheckers returns this faction's attached checkers.
func (f *Faction) OutcomeCheckers() []OutcomeChecker {
	return append([]OutcomeChecker(nil), f.checkers...)
}
