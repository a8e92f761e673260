package engine

// Ability is a subscriber that reacts to EActivate{self, args} and, if
// every attached Constraint passes, produces zero or more actions. Concrete
// abilities (LynchVoteAbility, KillAbility, ...) live in internal/roles;
// this package only defines the contract and the shared bookkeeping.
type Ability interface {
	Subscriber
	Name() string
	ActorID() int
	Constraints() []Constraint
	AddConstraint(Constraint)
	// LastVeto returns the VetoReason from the most recent activation
	// attempt that a constraint blocked, or nil if the most recent attempt
	// succeeded (or none has happened yet). Game.Activate reads this to
	// turn a "no actions produced" handler return into a proper
	// InvalidActivation for the driver.
	LastVeto() *VetoReason
	// MakeActions computes the actions this ability produces once its
	// constraints have already passed. Never called directly by drivers;
	// go through Game.Activate.
	MakeActions(g *Game, args ActivationArgs) []Action
	// Handle is the Handler registered against KindActivate. AbilityBase
	// provides it; concrete types get it for free via embedding.
	Handle(g *Game, e Event) []Action
}

// AbilityBase is embedded by concrete Ability implementations. It supplies
// identity, constraint attachment, and the generic EActivate handler that
// checks constraints once per activation attempt (spec §4.7: "if any
// attached constraint reports violated ... returns the empty action
// list") before delegating to the concrete MakeActions.
type AbilityBase struct {
	object
	actorID     int
	constraints []Constraint
	lastVeto    *VetoReason
	self        Ability // set by the embedding type via Init, for MakeActions dispatch
}

// InitAbility must be called by a concrete ability's constructor, passing
// itself as self so AbilityBase.Handle can call back into MakeActions.
func InitAbility(self Ability, id int, name string, actorID int) AbilityBase {
	return AbilityBase{object: object{id: id, name: name}, actorID: actorID, self: self}
}

func (a *AbilityBase) ID() int               { return a.object.id }
func (a *AbilityBase) Name() string          { return a.object.name }
func (a *AbilityBase) ActorID() int          { return a.actorID }
func (a *AbilityBase) Constraints() []Constraint { return append([]Constraint(nil), a.constraints...) }
func (a *AbilityBase) AddConstraint(c Constraint) { a.constraints = append(a.constraints, c) }
func (a *AbilityBase) LastVeto() *VetoReason { return a.lastVeto }

// Handle is the Handler registered for this ability against KindActivate.
// It is exported so Game.registerAbility can wire it without a type
// assertion back to AbilityBase.
func (a *AbilityBase) Handle(g *Game, e Event) []Action {
	act, ok := e.(*EActivate)
	if !ok || act.AbilityID != a.object.id {
		return nil
	}
	for _, c := range a.constraints {
		if v := CheckSafely(c, g, act, act.Args); v != nil {
			a.lastVeto = v
			g.diag.Warn("ability activation vetoed", "ability", a.object.name, "actor", a.actorID, "reason", v.String())
			return nil
		}
	}
	a.lastVeto = nil
	return a.self.MakeActions(g, act.Args)
}
