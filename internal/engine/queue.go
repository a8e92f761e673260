package engine

// defaultMaxQueueDepth bounds nested sub-queue recursion (pre-dispatch
// spawning a sub-queue, whose pre-dispatch spawns another, ...) when the
// driver hasn't overridden it via Game.SetMaxQueueDepth. Carried over from
// open_mafia_engine's ActionQueue.MAX_DEPTH=20; exceeding it is an
// EngineBug, not a rule outcome, because nothing in a well-formed ruleset
// should recurse this deep.
const defaultMaxQueueDepth = 20

// ActionQueue is a priority-ordered multiset of pending actions plus a
// flat, append-only history of everything it has drained, in execution
// order (including history contributed by sub-queues spawned during
// pre/post dispatch -- spec §3 ActionQueue invariant 3).
type ActionQueue struct {
	game    *Game
	depth   int
	pending []Action
	nextSeq uint64
	history []HistoryEntry
}

func newActionQueue(g *Game, depth int) *ActionQueue {
	return &ActionQueue{game: g, depth: depth}
}

// Len reports the number of actions still pending.
func (q *ActionQueue) Len() int { return len(q.pending) }

// History returns the queue's history in execution order.
func (q *ActionQueue) History() []HistoryEntry { return append([]HistoryEntry(nil), q.history...) }

// record appends entry to history, stamping it with the Game's next
// sequence number.
func (q *ActionQueue) record(entry HistoryEntry) {
	entry.Seq = q.game.nextSeq()
	q.history = append(q.history, entry)
}

// Enqueue appends action with the next enqueue sequence number. The
// underlying slice is never re-sorted; ordering is recovered at drain time
// by scanning for the highest-priority batch (spec §4.3).
func (q *ActionQueue) Enqueue(a Action) {
	q.nextSeq++
	a.setEnqueueSeq(q.nextSeq)
	q.pending = append(q.pending, a)
}

// popBatch removes and returns every pending action tied for the highest
// priority, in enqueue order.
func (q *ActionQueue) popBatch() []Action {
	if len(q.pending) == 0 {
		return nil
	}
	top := q.pending[0].Priority()
	for _, a := range q.pending {
		if a.Priority() > top {
			top = a.Priority()
		}
	}
	var batch, rest []Action
	for _, a := range q.pending {
		if a.Priority() == top {
			batch = append(batch, a)
		} else {
			rest = append(rest, a)
		}
	}
	q.pending = rest
	return batch
}

// DrainAll repeatedly pops and processes the highest-priority batch until
// the queue is empty. This is the kernel of the engine (spec §4.3).
func (q *ActionQueue) DrainAll() error {
	if q.depth > q.game.maxQueueDepth() {
		return &EngineBug{Msg: "action queue recursion depth exceeded"}
	}
	for {
		batch := q.popBatch()
		if batch == nil {
			return nil
		}
		if err := q.processBatch(batch); err != nil {
			return err
		}
	}
}

// processBatch runs one priority tier to completion: pre-dispatch for the
// whole batch (sub-queue drained eagerly so pre-responses land before any
// action in the batch runs), then run/post-dispatch for the whole batch.
// Grounded on open_mafia_engine's ActionQueue.process_next_batch: actions
// run after ALL pre-responses across the batch have resolved, and
// post-responses across the batch are collected before their sub-queue
// drains -- not one action fully pre/run/post before the next starts.
func (q *ActionQueue) processBatch(batch []Action) error {
	var preResponses []Action
	for _, a := range batch {
		ev := &EPreAction{Action: a}
		q.game.stampEvent(ev)
		preResponses = append(preResponses, q.game.registry.Dispatch(q.game, ev)...)
	}
	preQueue := newActionQueue(q.game, q.depth+1)
	for _, r := range preResponses {
		preQueue.Enqueue(r)
	}
	if err := preQueue.DrainAll(); err != nil {
		return err
	}
	q.history = append(q.history, preQueue.history...)

	var postResponses []Action
	for _, a := range batch {
		if a.Cancelled() {
			q.record(HistoryEntry{Action: a, Ran: false})
			continue
		}
		if err := a.Run(q.game); err != nil {
			q.game.diag.Error("action run failed", "source", a.Source())
			q.record(HistoryEntry{
				Action: a,
				Ran:    false,
				Failed: &FailureInfo{Kind: "run", Message: err.Error()},
			})
			continue
		}
		q.record(HistoryEntry{Action: a, Ran: true})

		ev := &EPostAction{Action: a}
		q.game.stampEvent(ev)
		postResponses = append(postResponses, q.game.registry.Dispatch(q.game, ev)...)
	}
	postQueue := newActionQueue(q.game, q.depth+1)
	for _, r := range postResponses {
		postQueue.Enqueue(r)
	}
	if err := postQueue.DrainAll(); err != nil {
		return err
	}
	q.history = append(q.history, postQueue.history...)
	return nil
}
