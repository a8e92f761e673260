package engine

// Constraint is a gate evaluated synchronously when an Ability or Trigger
// is about to produce actions for a given (event, args). It is explicitly
// NOT a Subscriber in its own right -- spec §9 "Constraint as subscriber
// vs. gate" rules that out, to avoid double-counting events and
// complicating dispatch ordering. A panicking Check is treated as a
// violation (spec §4.11).
type Constraint interface {
	Name() string
	Check(g *Game, e Event, args ActivationArgs) *VetoReason
}

// CheckSafely runs c.Check and converts a panic into a violation, per the
// "Constraint check exceptions -> treated as a violation" rule in spec
// §4.11. Built-in constraints are simple enough to never need this, but
// the generic AbilityBase/TriggerBase constraint loops route through it so
// a misbehaving custom constraint from a prefab can't crash the kernel.
func CheckSafely(c Constraint, g *Game, e Event, args ActivationArgs) (v *VetoReason) {
	defer func() {
		if r := recover(); r != nil {
			v = &VetoReason{Constraint: c.Name(), Detail: "constraint check panicked"}
		}
	}()
	return c.Check(g, e, args)
}
