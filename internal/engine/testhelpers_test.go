package engine

// recordAction is a minimal Action for kernel tests: it appends its label to
// a shared log when it runs, and can be told what it produces in response to
// EPreAction/EPostAction via onPre/onPost.
type recordAction struct {
	ActionBase
	label  string
	log    *[]string
	onPre  func() []Action
	onPost func() []Action
	failAt bool
}

func newRecordAction(label string, log *[]string, source, priority int) *recordAction {
	return &recordAction{ActionBase: NewActionBase(source, priority), label: label, log: log}
}

func (a *recordAction) Run(g *Game) error {
	if a.failAt {
		return &EngineBug{Msg: "forced failure: " + a.label}
	}
	*a.log = append(*a.log, "run:"+a.label)
	return nil
}

// subscribeRecorder registers a handler under kind that appends tag to log
// whenever it fires, optionally returning produced. owner must be unique per
// registration.
type stubSubscriber struct{ id int }

func (s stubSubscriber) ID() int { return s.id }

// cancelingAction cancels target when it runs -- a minimal local stand-in
// for builtin.CancelAction, which internal/engine cannot import (it would
// be a cycle: builtin already imports engine).
type cancelingAction struct {
	ActionBase
	target Action
	log    *[]string
}

func newCancelingAction(source, priority int, target Action, log *[]string) *cancelingAction {
	return &cancelingAction{ActionBase: NewActionBase(source, priority), target: target, log: log}
}

func (a *cancelingAction) Run(g *Game) error {
	a.target.Cancel()
	if a.log != nil {
		*a.log = append(*a.log, "run:canceller")
	}
	return nil
}

func subscribeRecorder(g *Game, kind EventKind, ownerID int, log *[]string, tag string, produce func(Event) []Action) {
	g.registry.Register(kind, stubSubscriber{id: ownerID}, func(g *Game, e Event) []Action {
		*log = append(*log, tag)
		if produce == nil {
			return nil
		}
		return produce(e)
	})
}
