package engine

import "fmt"

// Subscriber is anything that can own event handlers: Actor-attached
// Ability/Trigger instances, AuxObjects, OutcomeCheckers. Handlers are pure
// with respect to game state -- they read but never mutate; all mutation
// happens when the actions they return run.
type Subscriber interface {
	ID() int
}

// Handler reacts to an event by producing zero or more actions. A nil or
// empty slice is the veto/no-op signal (spec §3 "Handler value contract").
type Handler func(g *Game, e Event) []Action

type registration struct {
	handle int
	owner  int
	fn     Handler
}

// SubscriberRegistry maps event kinds to the handlers registered against
// them. Dispatch order is deterministic: registration order within a kind,
// and exact-kind handlers fire before any handlers registered against one
// of the event's ancestor categories (spec §4.2).
type SubscriberRegistry struct {
	byKind   map[EventKind][]registration
	nextHand int
	diag     Diagnostics
}

// NewSubscriberRegistry constructs an empty registry. diag receives an Error
// for every handler panic recovered during Dispatch.
func NewSubscriberRegistry(diag Diagnostics) *SubscriberRegistry {
	if diag == nil {
		diag = NoopDiagnostics()
	}
	return &SubscriberRegistry{byKind: make(map[EventKind][]registration), diag: diag}
}

// Register adds handler, owned by owner, against kind. Returns a handle
// that is currently only useful for diagnostics; subscribers unregister en
// masse via Unregister(owner).
func (r *SubscriberRegistry) Register(kind EventKind, owner Subscriber, fn Handler) int {
	r.nextHand++
	h := r.nextHand
	r.byKind[kind] = append(r.byKind[kind], registration{handle: h, owner: owner.ID(), fn: fn})
	return h
}

// Unregister removes every handler owned by owner, across all kinds.
func (r *SubscriberRegistry) Unregister(owner Subscriber) {
	id := owner.ID()
	for kind, regs := range r.byKind {
		kept := regs[:0]
		for _, reg := range regs {
			if reg.owner != id {
				kept = append(kept, reg)
			}
		}
		r.byKind[kind] = kept
	}
}

// Dispatch broadcasts event to every handler registered for its Kind(),
// then every handler registered for one of its Categories(), each group in
// registration order, skipping a handler already invoked. Handlers are
// snapshotted at dispatch entry: additions/removals made by a handler
// running during this Dispatch do not affect the current event (spec
// §4.2). A handler panic is caught, logged, and treated as "no actions".
func (r *SubscriberRegistry) Dispatch(g *Game, e Event) []Action {
	seen := make(map[int]bool)
	var actions []Action

	run := func(regs []registration) {
		for _, reg := range regs {
			if seen[reg.handle] {
				continue
			}
			seen[reg.handle] = true
			actions = append(actions, r.invoke(g, e, reg)...)
		}
	}

	run(append([]registration(nil), r.byKind[e.Kind()]...))
	for _, cat := range e.Categories() {
		run(append([]registration(nil), r.byKind[cat]...))
	}
	return actions
}

func (r *SubscriberRegistry) invoke(g *Game, e Event, reg registration) (out []Action) {
	defer func() {
		if rec := recover(); rec != nil {
			r.diag.Error("handler panicked, treating as no actions", "owner", reg.owner, "kind", e.Kind(), "panic", fmt.Sprint(rec))
			out = nil
		}
	}()
	return reg.fn(g, e)
}
