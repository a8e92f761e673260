package engine

// Trigger is the passive analogue of Ability: a subscriber keyed to
// arbitrary event kinds (rather than only EActivate) whose handler, once
// its constraints pass, produces actions. Protection guards and outcome
// checkers are Triggers; lynch resolution and phase counters are AuxObjects.
type Trigger interface {
	Subscriber
	Name() string
	Kinds() []EventKind
	Constraints() []Constraint
	AddConstraint(Constraint)
	Handle(g *Game, e Event) []Action
}

// TriggerBase supplies identity and constraint storage for concrete
// Triggers. Unlike Ability, a Trigger's own Handle is responsible for
// checking its constraints -- it has no single "this is the event I exist
// for" gate the way AbilityBase.Handle has AbilityID, since a trigger's
// event relevance test is itself domain-specific (e.g. "is this EPreAction
// wrapping a KillAction targeting *my* actor?").
type TriggerBase struct {
	object
	kinds       []EventKind
	constraints []Constraint
}

// InitTrigger constructs the shared fields.
func InitTrigger(id int, name string, kinds ...EventKind) TriggerBase {
	return TriggerBase{object: object{id: id, name: name}, kinds: kinds}
}

func (t *TriggerBase) ID() int                    { return t.object.id }
func (t *TriggerBase) Name() string                { return t.object.name }
func (t *TriggerBase) Kinds() []EventKind          { return append([]EventKind(nil), t.kinds...) }
func (t *TriggerBase) Constraints() []Constraint   { return append([]Constraint(nil), t.constraints...) }
func (t *TriggerBase) AddConstraint(c Constraint)  { t.constraints = append(t.constraints, c) }

// CheckConstraints runs every attached constraint against (e, args) and
// returns the first violation, or nil if all pass. Concrete triggers call
// this from their own Handle before producing actions.
func (t *TriggerBase) CheckConstraints(g *Game, e Event, args ActivationArgs) *VetoReason {
	for _, c := range t.constraints {
		if v := CheckSafely(c, g, e, args); v != nil {
			return v
		}
	}
	return nil
}
