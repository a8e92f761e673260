package engine

// Actor is a player: an id, a display name, the factions it belongs to,
// the abilities and triggers it owns, and its Status bag. Actors are
// created before the game leaves startup; abilities and triggers may be
// attached later, mid-game (e.g. a role-swap effect).
type Actor struct {
	object
	game      *Game
	factions  []int
	abilities []Ability
	triggers  []Trigger
	status    *Status
}

func newActor(g *Game, id int, name string) *Actor {
	a := &Actor{object: object{id: id, name: name}, game: g}
	a.status = newStatus(g, id)
	return a
}

// ID satisfies Subscriber; Actors themselves don't subscribe to events
// (their Abilities and Triggers do), but the id is used as the "owner" for
// status changes and as a lookup key.
func (a *Actor) ID() int { return a.object.id }

// Status returns this actor's mutable attribute bag.
func (a *Actor) Status() *Status { return a.status }

// Dead is shorthand for Status().Bool("dead"), the canonical key killing
// writes (spec §4.6).
func (a *Actor) Dead() bool { return a.status.Bool("dead") }

// Factions returns the ids of every faction this actor is a member of.
func (a *Actor) Factions() []int { return append([]int(nil), a.factions...) }

// InFaction reports whether the actor belongs to factionID.
func (a *Actor) InFaction(factionID int) bool {
	for _, f := range a.factions {
		if f == factionID {
			return true
		}
	}
	return false
}

// SharesFactionWith reports whether a and other have any faction in common.
func (a *Actor) SharesFactionWith(other *Actor) bool {
	for _, f := range a.factions {
		if other.InFaction(f) {
			return true
		}
	}
	return false
}

// Abilities returns the actor's abilities, in attachment order.
func (a *Actor) Abilities() []Ability { return append([]Ability(nil), a.abilities...) }

// Triggers returns the actor's triggers, in attachment order.
func (a *Actor) Triggers() []Trigger { return append([]Trigger(nil), a.triggers...) }

// AbilityByName finds an attached ability by its name, if any.
func (a *Actor) AbilityByName(name string) (Ability, bool) {
	for _, ab := range a.abilities {
		if ab.Name() == name {
			return ab, true
		}
	}
	return nil, false
}

// AddAbility attaches ab to the actor and registers it with the Game's
// subscriber registry so it starts reacting to EActivate.
func (a *Actor) AddAbility(ab Ability) {
	a.abilities = append(a.abilities, ab)
	a.game.registerAbility(ab)
}

// AddTrigger attaches t to the actor and subscribes it to whatever event
// kinds it declares interest in.
func (a *Actor) AddTrigger(t Trigger) {
	a.triggers = append(a.triggers, t)
	a.game.registerTrigger(t)
}
