package engine

import "github.com/google/uuid"

// Game is the singleton root of one game: it owns the object registry, the
// subscriber registry, the single active action queue, the phase system,
// the aux registry, and the current cast of actors/factions. Exactly one
// action queue is ever "active" at a moment -- the top of the implicit call
// stack of nested DrainAll calls -- which is why the kernel never needs a
// lock (spec §5).
type Game struct {
	id       string
	objects  *ObjectRegistry
	registry *SubscriberRegistry
	kinds    *KindRegistries
	aux      *AuxRegistry
	phases   PhaseSystem
	diag     Diagnostics

	mainQueue  *ActionQueue
	seqCounter int
	maxDepth   int
	maxHistory int

	actorIDs   []int
	factionIDs []int
}

// NewGame constructs a fresh Game in the startup phase. diag and kinds may
// be nil; a nil diag discards diagnostics, a nil kinds registry starts
// empty (fine for tests that never touch the prefab surface).
func NewGame(diag Diagnostics, kinds *KindRegistries) *Game {
	if diag == nil {
		diag = NoopDiagnostics()
	}
	if kinds == nil {
		kinds = NewKindRegistries()
	}
	g := &Game{
		id:       uuid.NewString(),
		objects:  newObjectRegistry(),
		kinds:    kinds,
		aux:      newAuxRegistry(),
		phases:   NewCyclicPhaseSystem(),
		diag:     diag,
	}
	g.registry = NewSubscriberRegistry(diag)
	g.mainQueue = newActionQueue(g, 0)
	return g
}

// ID returns the game's unique correlation id, minted once at construction.
// Drivers managing several concurrent games use it to tag log lines and
// route external events (e.g. a chat command) to the right Game.
func (g *Game) ID() string { return g.id }

// Diagnostics exposes the Game's diagnostics sink, for built-ins that need
// to log (e.g. a veto, a limit reached) without depending on zap directly.
func (g *Game) Diagnostics() Diagnostics { return g.diag }

// Kinds exposes the string-keyed ability/trigger/constraint/win-condition
// registries (spec §6 Prefab surface).
func (g *Game) Kinds() *KindRegistries { return g.kinds }

// Aux exposes the aux-object registry.
func (g *Game) Aux() *AuxRegistry { return g.aux }

func (g *Game) nextSeq() int {
	g.seqCounter++
	return g.seqCounter
}

func (g *Game) stampEvent(e Event) { e.setSeq(g.nextSeq()) }

// CurrentPhase returns the phase system's current phase.
func (g *Game) CurrentPhase() Phase { return g.phases.Current() }

// InStartup reports whether the game is still in the reserved startup
// phase -- direct mutations like AddActor/AddFaction are only legal then.
func (g *Game) InStartup() bool { return g.phases.Current().Name == PhaseStartup }

// AddActor creates and registers a new Actor. Legal only during startup.
func (g *Game) AddActor(name string) (*Actor, error) {
	if !g.InStartup() {
		return nil, &InvalidPhaseTransition{From: g.CurrentPhase().Name, To: g.CurrentPhase().Name, Reason: "actors can only be added during startup"}
	}
	if name != "" {
		if _, exists := g.objects.ByName(name); exists {
			return nil, &DuplicateName{Kind: "actor", Name: name}
		}
	}
	id := g.objects.reserve()
	a := newActor(g, id, name)
	g.objects.put(id, name, a)
	g.actorIDs = append(g.actorIDs, id)
	return a, nil
}

// AddFaction creates and registers a new Faction. Legal only during
// startup.
func (g *Game) AddFaction(name string) (*Faction, error) {
	if !g.InStartup() {
		return nil, &InvalidPhaseTransition{From: g.CurrentPhase().Name, To: g.CurrentPhase().Name, Reason: "factions can only be added during startup"}
	}
	if name != "" {
		if _, exists := g.objects.ByName(name); exists {
			return nil, &DuplicateName{Kind: "faction", Name: name}
		}
	}
	id := g.objects.reserve()
	f := newFaction(g, id, name)
	g.objects.put(id, name, f)
	g.factionIDs = append(g.factionIDs, id)
	return f, nil
}

// Actor resolves an actor by id.
func (g *Game) Actor(id int) (*Actor, bool) {
	v, ok := g.objects.ByID(id)
	if !ok {
		return nil, false
	}
	a, ok := v.(*Actor)
	return a, ok
}

// Faction resolves a faction by id.
func (g *Game) Faction(id int) (*Faction, bool) {
	v, ok := g.objects.ByID(id)
	if !ok {
		return nil, false
	}
	f, ok := v.(*Faction)
	return f, ok
}

// ActorByName resolves an actor by its display name.
func (g *Game) ActorByName(name string) (*Actor, bool) {
	id, ok := g.objects.ByName(name)
	if !ok {
		return nil, false
	}
	return g.Actor(id)
}

// FactionByName resolves a faction by its display name.
func (g *Game) FactionByName(name string) (*Faction, bool) {
	id, ok := g.objects.ByName(name)
	if !ok {
		return nil, false
	}
	return g.Faction(id)
}

// Actors returns every actor, in creation order.
func (g *Game) Actors() []*Actor {
	out := make([]*Actor, 0, len(g.actorIDs))
	for _, id := range g.actorIDs {
		if a, ok := g.Actor(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// Factions returns every faction, in creation order.
func (g *Game) Factions() []*Faction {
	out := make([]*Faction, 0, len(g.factionIDs))
	for _, id := range g.factionIDs {
		if f, ok := g.Faction(id); ok {
			out = append(out, f)
		}
	}
	return out
}

func (g *Game) registerAbility(ab Ability) {
	g.registry.Register(KindActivate, ab, ab.Handle)
}

func (g *Game) registerTrigger(t Trigger) {
	for _, kind := range t.Kinds() {
		g.registry.Register(kind, t, t.Handle)
	}
}

func (g *Game) registerOutcomeChecker(oc OutcomeChecker) {
	g.registerTrigger(oc)
}

// SetMaxQueueDepth overrides the nested sub-queue recursion cap (default
// defaultMaxQueueDepth), matching internal/config.RuntimeConfig's
// MaxQueueDepth.
func (g *Game) SetMaxQueueDepth(n int) { g.maxDepth = n }

func (g *Game) maxQueueDepth() int {
	if g.maxDepth <= 0 {
		return defaultMaxQueueDepth
	}
	return g.maxDepth
}

// SetMaxHistory caps how many HistoryEntry records the main queue retains;
// 0 (the default) means unbounded. Trimming happens after each top-level
// drain completes, never mid-drain, so a capped history never loses an
// entry a driver hasn't had the chance to observe via History/HistorySince
// yet -- matching internal/config.RuntimeConfig's HistoryRetention.
func (g *Game) SetMaxHistory(n int) { g.maxHistory = n }

func (g *Game) trimHistory() {
	if g.maxHistory <= 0 {
		return
	}
	h := g.mainQueue.history
	if len(h) > g.maxHistory {
		g.mainQueue.history = append([]HistoryEntry(nil), h[len(h)-g.maxHistory:]...)
	}
}

// RegisterTrigger subscribes t to every event kind it declares interest in.
// Unlike Actor.AddTrigger/Faction.AddOutcomeChecker, this is for triggers
// with no single owning actor or faction -- standing game-level mechanisms
// like a ProtectionGuard.
func (g *Game) RegisterTrigger(t Trigger) { g.registerTrigger(t) }

// NewObjectID mints a fresh id from the same counter the object registry
// uses for actors and factions, without registering anything under it.
// Built-in aux objects that are created lazily (e.g. a PhaseCounter keyed
// by whatever string a constraint first asks for) use this so their ids
// stay in the same space as everything else, even though AuxRegistry looks
// them up by string key, not by id.
func (g *Game) NewObjectID() int { return g.objects.reserve() }

// RegisterAux registers obj under its key, wiring its handlers for the
// event kinds it declares interest in. Returns DuplicateKey if the key is
// already taken (testable property #8).
func (g *Game) RegisterAux(obj AuxObject) error {
	if err := g.aux.Register(obj); err != nil {
		return err
	}
	for _, kind := range obj.Kinds() {
		g.registry.Register(kind, obj, obj.Handle)
	}
	return nil
}

// emit stamps e, dispatches it, and routes the produced actions through the
// active policy: enqueue into the main queue, then -- for an Instant
// phase -- drain immediately. For EndOfPhase, responses simply accumulate
// until the phase-change action processes them (spec §4.4).
func (g *Game) emit(e Event) []Action {
	g.stampEvent(e)
	actions := g.registry.Dispatch(g, e)
	for _, a := range actions {
		g.mainQueue.Enqueue(a)
	}
	if g.phases.Current().Policy == Instant {
		if err := g.mainQueue.DrainAll(); err != nil {
			g.diag.Error("drain failed", "err", err.Error())
		}
		g.trimHistory()
	}
	return actions
}

// ProcessEvent is the public driver surface for emitting an arbitrary
// event into the game (spec §4.4 game.process_event). Most callers should
// prefer Activate or a Status write, which call this internally; it is
// exposed directly for drivers/tests that want to inject, say, a bespoke
// EPhaseChange-adjacent event.
func (g *Game) ProcessEvent(e Event) []Action {
	return g.emit(e)
}

// Activate is the shortcut described in spec §4.4: it emits
// EActivate{ability, args} and translates constraint vetoes into
// InvalidActivation for the driver.
func (g *Game) Activate(actorID int, abilityName string, args ActivationArgs) ([]Action, error) {
	actor, ok := g.Actor(actorID)
	if !ok {
		return nil, &EngineBug{Msg: "Activate: unknown actor id"}
	}
	ability, ok := actor.AbilityByName(abilityName)
	if !ok {
		return nil, &UnknownKind{Registry: "ability", Name: abilityName}
	}
	ev := &EActivate{AbilityID: ability.ID(), ActorID: actorID, Args: args}
	actions := g.emit(ev)
	if len(actions) == 0 {
		if v := ability.LastVeto(); v != nil {
			return nil, &InvalidActivation{ActorID: actorID, Ability: abilityName, Reason: *v}
		}
	}
	return actions, nil
}

// AdvancePhase moves the phase system forward, emitting EPhaseChange, and
// -- if the outgoing phase was EndOfPhase -- drains whatever accumulated in
// the main queue before the incoming phase starts receiving actions (spec
// §4.4/§4.5). If the outgoing phase was Instant, the main queue is already
// empty by invariant.
func (g *Game) AdvancePhase() (Phase, error) {
	return g.transitionPhase(g.phases.Advance)
}

// SetPhase jumps directly to name (admin/debug, or the EndTheGameAction's
// transition into shutdown).
func (g *Game) SetPhase(name string) (Phase, error) {
	return g.transitionPhase(func() (Phase, error) { return g.phases.SetTo(name) })
}

func (g *Game) transitionPhase(move func() (Phase, error)) (Phase, error) {
	from := g.phases.Current()
	to, err := move()
	if err != nil {
		return from, err
	}
	// Emitting EPhaseChange may itself produce actions (e.g. a LynchResolver
	// converting a day's tally leader into a KillAction). Those always get
	// drained here, unconditionally: if the outgoing phase was EndOfPhase,
	// spec §4.4 requires draining its accumulated backlog before the
	// incoming phase starts; if the outgoing phase was Instant, that
	// backlog is empty by invariant, so draining is simply how the
	// phase-change event's own responses (if any) get resolved before
	// AdvancePhase returns, rather than sitting in the incoming phase's
	// queue until its own drain point.
	g.emit(&EPhaseChange{From: from, To: to})
	if err := g.mainQueue.DrainAll(); err != nil {
		return to, err
	}
	g.trimHistory()
	g.diag.Info("phase advanced", "game", g.id, "from", from.Name, "to", to.Name)
	return to, nil
}

// History returns the main queue's full history, in execution order,
// including everything contributed by nested sub-queues.
func (g *Game) History() []HistoryEntry { return g.mainQueue.History() }

// HistorySince returns every history entry recorded with seq >= since,
// realizing "query(..., history since seq)" from spec §6.
func (g *Game) HistorySince(since int) []HistoryEntry {
	all := g.mainQueue.History()
	out := all[:0:0]
	for _, h := range all {
		if h.Seq >= since {
			out = append(out, h)
		}
	}
	return out
}
