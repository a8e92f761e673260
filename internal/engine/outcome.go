package engine

// Outcome is a terminal per-actor label.
type Outcome string

const (
	Victory Outcome = "victory"
	Defeat  Outcome = "defeat"
)

// OutcomeChecker is a Trigger bound to exactly one faction whose job is to
// evaluate a pure, current-state predicate and, the first time it becomes
// true, emit an OutcomeAction (spec §4.9). It is a Trigger rather than a
// distinct kernel concept -- the distinction is purely organizational:
// concrete implementations live in internal/wincon.
type OutcomeChecker interface {
	Trigger
	FactionID() int
	// Achieved reports whether this checker has already fired once. Per
	// testable property "end idempotence" and the general "don't re-emit
	// an outcome" rule, a checker must not produce a second
	// OutcomeAction for the same faction.
	Achieved() bool
}
