package engine

// Action is a deferred mutation produced by a subscriber's handler. Actions
// never fire events themselves -- the ActionQueue is solely responsible for
// the EPreAction/EPostAction envelope around Run.
type Action interface {
	// Source is the id of the GameObject that produced this action.
	Source() int
	Priority() int
	// EnqueueSeq is the tie-break for actions sharing a priority: smaller
	// runs first. Assigned by ActionQueue.Enqueue; zero before that.
	EnqueueSeq() uint64
	Cancelled() bool
	// Cancel sets the cancelled flag. It is the only externally mutable
	// field on an Action (spec §3 Action).
	Cancel()
	// Run performs the mutation. Only called when Cancelled() is false.
	Run(g *Game) error

	setEnqueueSeq(uint64)
}

// ActionBase supplies the common bookkeeping fields every concrete Action
// embeds. Concrete types still write their own Run method -- Go has no
// method override, so composition only buys the state, not the behavior.
type ActionBase struct {
	source     int
	priority   int
	enqueueSeq uint64
	cancelled  bool
}

// NewActionBase constructs the shared fields for a concrete Action.
// Default priority is 0, per spec §4.1.
func NewActionBase(source int, priority int) ActionBase {
	return ActionBase{source: source, priority: priority}
}

func (a *ActionBase) Source() int          { return a.source }
func (a *ActionBase) Priority() int        { return a.priority }
func (a *ActionBase) EnqueueSeq() uint64   { return a.enqueueSeq }
func (a *ActionBase) Cancelled() bool      { return a.cancelled }
func (a *ActionBase) Cancel()              { a.cancelled = true }
func (a *ActionBase) setEnqueueSeq(s uint64) { a.enqueueSeq = s }

// FailureInfo records why an action's Run returned an error. Per spec
// §4.11, the action is marked failed in history and no EPostAction is
// emitted; drain continues.
type FailureInfo struct {
	Kind    string
	Message string
}

// HistoryEntry is one drained action's disposition, in execution order.
// Cancelled actions are recorded too (Ran=false, Failed=nil) so scenario S2
// ("one KillAction in history marked not-ran") is directly observable.
type HistoryEntry struct {
	Action Action
	Ran    bool
	Failed *FailureInfo
	// Seq is stamped from the Game's single monotonic sequence counter at
	// the moment the entry is recorded -- the same counter that stamps
	// Event.Seq(), so "query history since seq" (spec §6) can interleave
	// cleanly with "events since seq" on one timeline.
	Seq int
}
