package engine

// EventKind tags the closed, extensible hierarchy of events the kernel
// knows how to dispatch. It stands in for the source's runtime class
// hierarchy (spec §9 "Dynamic dispatch over event kinds"): subscription
// names a kind, and the registry also supports dispatching to handlers
// registered against a kind's ancestors (Event.Categories), so a future
// specialization of, say, EPreAction still reaches handlers that only care
// about "any pre-action event".
type EventKind string

const (
	KindPreAction       EventKind = "PreAction"
	KindPostAction      EventKind = "PostAction"
	KindPhaseChange     EventKind = "PhaseChange"
	KindStatusChange    EventKind = "StatusChange"
	KindActivate        EventKind = "Activate"
	KindOutcomeAchieved EventKind = "OutcomeAchieved"
	KindGameEnded       EventKind = "GameEnded"
)

// Event is an immutable value describing something that happened, or is
// about to happen. Every event is assigned a monotonically increasing
// sequence number by the Game at emission time.
type Event interface {
	Seq() int
	Kind() EventKind
	// Categories lists ancestor kinds this event also matches, in addition
	// to Kind(). Most concrete kinds have none; the mechanism exists so a
	// subscriber can register against a broad category once instead of
	// every concrete kind under it.
	Categories() []EventKind
	setSeq(int)
}

// eventBase is embedded by every concrete Event and supplies the sequence
// number plumbing so individual event types don't have to.
type eventBase struct {
	seq int
}

func (e *eventBase) Seq() int      { return e.seq }
func (e *eventBase) setSeq(s int)  { e.seq = s }

// EPreAction is emitted just before an action in a drained batch either
// runs or is found cancelled. Handlers may respond with actions that, once
// drained, can flip the action's Cancelled flag before the parent queue
// checks it.
type EPreAction struct {
	eventBase
	Action Action
}

func (*EPreAction) Kind() EventKind           { return KindPreAction }
func (*EPreAction) Categories() []EventKind   { return nil }

// EPostAction is emitted after an action has run (never for a cancelled
// action).
type EPostAction struct {
	eventBase
	Action Action
}

func (*EPostAction) Kind() EventKind         { return KindPostAction }
func (*EPostAction) Categories() []EventKind { return nil }

// EPhaseChange is emitted when the PhaseSystem moves from one named phase
// to another, before the outgoing phase's accumulated queue (if any) has
// been drained.
type EPhaseChange struct {
	eventBase
	From Phase
	To   Phase
}

func (*EPhaseChange) Kind() EventKind         { return KindPhaseChange }
func (*EPhaseChange) Categories() []EventKind { return nil }

// EStatusChange is emitted synchronously after a Status write. Handlers see
// the new value; anything they enqueue to revert it will produce another
// EStatusChange once that reverting action runs.
type EStatusChange struct {
	eventBase
	ActorID int
	Key     string
	Old     any
	New     any
}

func (*EStatusChange) Kind() EventKind         { return KindStatusChange }
func (*EStatusChange) Categories() []EventKind { return nil }

// ActivationArgs is the argument bag passed to Game.Activate and on to the
// activated Ability. Keys are ability-specific (e.g. "target" for a single
// Actor id).
type ActivationArgs map[string]any

// EActivate is emitted when a driver calls Game.Activate. Only the named
// Ability reacts by producing actions; other subscribers (Triggers bound to
// KindActivate) may observe it too.
type EActivate struct {
	eventBase
	AbilityID int
	ActorID   int
	Args      ActivationArgs
}

func (*EActivate) Kind() EventKind         { return KindActivate }
func (*EActivate) Categories() []EventKind { return nil }

// EOutcomeAchieved is emitted when an OutcomeChecker's predicate fires for
// the first time for its faction.
type EOutcomeAchieved struct {
	eventBase
	FactionID int
	Outcome   Outcome
}

func (*EOutcomeAchieved) Kind() EventKind         { return KindOutcomeAchieved }
func (*EOutcomeAchieved) Categories() []EventKind { return nil }

// EGameEnded is emitted once, by EndTheGameAction, when the GameEnder
// decides every faction has a resolved outcome.
type EGameEnded struct {
	eventBase
}

func (*EGameEnded) Kind() EventKind         { return KindGameEnded }
func (*EGameEnded) Categories() []EventKind { return nil }
