package engine

import "fmt"

// DuplicateName is returned when a driver tries to register an Actor or
// Faction under a name already taken within the Game.
type DuplicateName struct {
	Kind string
	Name string
}

func (e *DuplicateName) Error() string {
	return fmt.Sprintf("duplicate %s name: %q", e.Kind, e.Name)
}

// UnknownKind is returned when a prefab (or any other string-keyed lookup)
// names a win-condition, ability, trigger, or constraint kind that was never
// registered.
type UnknownKind struct {
	Registry string
	Name     string
}

func (e *UnknownKind) Error() string {
	return fmt.Sprintf("unknown %s kind: %q", e.Registry, e.Name)
}

// InvalidPhaseTransition is returned by the phase system when a transition
// is requested that the current PhaseSystem does not permit (e.g. advancing
// past shutdown, or set_to on a name it doesn't recognize).
type InvalidPhaseTransition struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidPhaseTransition) Error() string {
	return fmt.Sprintf("invalid phase transition %s -> %s: %s", e.From, e.To, e.Reason)
}

// DuplicateKey is returned when two AuxObjects are registered under the same
// key in Game.Aux.
type DuplicateKey struct {
	Key string
}

func (e *DuplicateKey) Error() string {
	return fmt.Sprintf("duplicate aux key: %q", e.Key)
}

// VetoReason explains why an ability or trigger produced no actions. It is
// never an error on its own terms -- "user-visible failure of an ability is
// always silent to other subscribers except via the absence of the
// would-be action" -- but the driver surface wraps it as InvalidActivation.
type VetoReason struct {
	Constraint string
	Detail     string
}

func (v VetoReason) String() string {
	if v.Detail == "" {
		return v.Constraint
	}
	return fmt.Sprintf("%s: %s", v.Constraint, v.Detail)
}

// InvalidActivation is returned to the driver by Game.Activate when the
// ability's attached constraints vetoed the activation.
type InvalidActivation struct {
	ActorID int
	Ability string
	Reason  VetoReason
}

func (e *InvalidActivation) Error() string {
	return fmt.Sprintf("activation of %q by actor %d vetoed: %s", e.Ability, e.ActorID, e.Reason)
}

// EngineBug wraps a kernel invariant violation. These are fatal: a
// programming error in a subscriber or driver, never a rule outcome.
// Handler and action failures during a drain are NOT EngineBugs -- those are
// captured into history as failed{kind, message} per spec §4.11. EngineBug
// is reserved for things like exceeding the nested-queue recursion depth or
// calling Game methods that assume startup/shutdown invariants that don't
// hold.
type EngineBug struct {
	Msg string
	Err error
}

func (e *EngineBug) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine bug: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("engine bug: %s", e.Msg)
}

func (e *EngineBug) Unwrap() error { return e.Err }
