package builtin

import "nightfall/internal/engine"

// PhaseCounter is the "dedicated aux object" spec §4.7 names for resetting
// LimitPerPhase* counters on every EPhaseChange. Keys are free strings
// chosen by the constraints that share a counter (e.g. two mafiosi sharing
// "mafia_kill" via LimitPerPhaseKey). Incrementing happens inside the
// constraint's Check -- a deliberate, documented exception to "constraints
// don't mutate state": the count IS the state the constraint exists to
// gate, so it is owned by the same aux object the constraint consults.
type PhaseCounter struct {
	engine.AuxBase
	counts map[string]int
}

// NewPhaseCounter constructs a PhaseCounter registered under key.
func NewPhaseCounter(id int, key string) *PhaseCounter {
	return &PhaseCounter{AuxBase: engine.InitAux(id, key, engine.KindPhaseChange), counts: make(map[string]int)}
}

func (p *PhaseCounter) Handle(g *engine.Game, e engine.Event) []engine.Action {
	if _, ok := e.(*engine.EPhaseChange); ok {
		p.counts = make(map[string]int)
	}
	return nil
}

func (p *PhaseCounter) count(key string) int  { return p.counts[key] }
func (p *PhaseCounter) increment(key string)  { p.counts[key]++ }

// phaseCounter resolves the PhaseCounter registered under key, creating
// and registering one lazily the first time a LimitPerPhase* constraint
// asks for it.
func phaseCounter(g *engine.Game, key string) *PhaseCounter {
	if obj, ok := g.Aux().Get(key); ok {
		if pc, ok := obj.(*PhaseCounter); ok {
			return pc
		}
	}
	pc := NewPhaseCounter(g.NewObjectID(), key)
	_ = g.RegisterAux(pc) // key is private to this package's constraints; collision would be a programming error
	return pc
}

// Tally maintains a voter -> target map for lynch-style voting (spec
// §4.8). It reacts to EPostAction(VoteAction) rather than EPreAction, so a
// vote that gets cancelled pre-resolution never counts.
type Tally struct {
	engine.AuxBase
	votes map[int]int // voter actor id -> target actor id (0 = unvoted)
	order []int       // voter ids, first-vote order, for deterministic iteration
}

// NewTally constructs a Tally registered under key.
func NewTally(id int, key string) *Tally {
	return &Tally{AuxBase: engine.InitAux(id, key, engine.KindPostAction), votes: make(map[int]int)}
}

func (t *Tally) Handle(g *engine.Game, e engine.Event) []engine.Action {
	post, ok := e.(*engine.EPostAction)
	if !ok {
		return nil
	}
	v, ok := post.Action.(*VoteAction)
	if !ok || v.TallyKey != t.Key() {
		return nil
	}
	if _, seen := t.votes[v.Voter]; !seen {
		t.order = append(t.order, v.Voter)
	}
	t.votes[v.Voter] = v.Target
	return nil
}

// Leader returns the plurality vote target, breaking ties by lowest actor
// id among the tied leaders (spec §4.3/§9 Open Question 3). A three-way tie
// at zero votes each yields no leader, since nobody has any votes.
func (t *Tally) Leader() (int, bool) {
	counts := make(map[int]int)
	for _, voterID := range t.order {
		target := t.votes[voterID]
		if target == 0 {
			continue
		}
		counts[target]++
	}
	if len(counts) == 0 {
		return 0, false
	}
	best := 0
	bestCount := 0
	for target, cnt := range counts {
		if cnt > bestCount || (cnt == bestCount && target < best) {
			best = target
			bestCount = cnt
		}
	}
	if bestCount == 0 {
		return 0, false
	}
	return best, true
}

// Clear discards all recorded votes, typically called by a LynchResolver
// once it has read the leader for a resolving day phase.
func (t *Tally) Clear() {
	t.votes = make(map[int]int)
	t.order = nil
}

// LynchResolver watches EPhaseChange and, when a "day N" phase is about to
// give way to the following night, reads the named Tally's leader and
// enqueues a KillAction targeting them. Grounded on open_mafia_engine's
// built_in/lynch.py SimpleLynchTally, which does the same thing keyed off
// EPrePhaseChange/EPostPhaseChange; here it collapses to a single
// EPhaseChange carrying both From and To.
type LynchResolver struct {
	engine.AuxBase
	TallyKey string
}

// NewLynchResolver constructs a LynchResolver registered under key, reading
// votes from the Tally registered under tallyKey.
func NewLynchResolver(id int, key, tallyKey string) *LynchResolver {
	return &LynchResolver{AuxBase: engine.InitAux(id, key, engine.KindPhaseChange), TallyKey: tallyKey}
}

func (r *LynchResolver) Handle(g *engine.Game, e engine.Event) []engine.Action {
	pc, ok := e.(*engine.EPhaseChange)
	if !ok || !isDayPhase(pc.From.Name) {
		return nil
	}
	obj, ok := g.Aux().Get(r.TallyKey)
	if !ok {
		return nil
	}
	tally, ok := obj.(*Tally)
	if !ok {
		return nil
	}
	leader, ok := tally.Leader()
	tally.Clear()
	if !ok {
		return nil
	}
	return []engine.Action{NewKillAction(r.ID(), leader)}
}

func isDayPhase(name string) bool {
	return len(name) >= 3 && name[:3] == "day"
}

// GameEnder watches EOutcomeAchieved; once every faction has an outcome
// set on every living member (or has no living members left), it enqueues
// an EndTheGameAction. Grounded on open_mafia_engine's core/ender.py.
type GameEnder struct {
	engine.AuxBase
}

// NewGameEnder constructs a GameEnder registered under key.
func NewGameEnder(id int, key string) *GameEnder {
	return &GameEnder{AuxBase: engine.InitAux(id, key, engine.KindOutcomeAchieved)}
}

func (e *GameEnder) Handle(g *engine.Game, ev engine.Event) []engine.Action {
	if _, ok := ev.(*engine.EOutcomeAchieved); !ok {
		return nil
	}
	for _, f := range g.Factions() {
		living := f.LivingMembers()
		for _, id := range living {
			actor, ok := g.Actor(id)
			if !ok {
				continue
			}
			if _, hasOutcome := actor.Status().Get("outcome"); !hasOutcome {
				return nil // at least one living member is still undecided
			}
		}
	}
	return []engine.Action{NewEndTheGameAction(e.ID())}
}
