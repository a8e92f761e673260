package engine

// The prefab surface (spec §6) resolves four kinds of names through
// string-keyed registries the engine owns. internal/roles and
// internal/wincon populate these with their concrete implementations when a
// driver calls their Register functions; internal/prefab.Builder resolves prefab-declared names
// through them. An unresolvable name is UnknownKind, never a panic.

// AbilityFactory builds a concrete Ability for actorID, given the
// prefab-supplied params (role-specific: e.g. mafia_kill's shared_key).
type AbilityFactory func(g *Game, id int, actorID int, name string, params map[string]any) (Ability, error)

// TriggerFactory builds a concrete Trigger owned by ownerID (an Actor or
// Faction id, depending on the trigger).
type TriggerFactory func(g *Game, id int, name string, ownerID int, params map[string]any) (Trigger, error)

// ConstraintFactory builds a concrete Constraint from prefab params.
type ConstraintFactory func(g *Game, params map[string]any) (Constraint, error)

// WinConditionFactory builds a concrete OutcomeChecker bound to factionID.
type WinConditionFactory func(g *Game, factionID int, params map[string]any) (OutcomeChecker, error)

// KindRegistries holds the four string-keyed factory tables. One instance
// can be shared by several Games -- the registries are the engine's static
// vocabulary, not per-game state -- and NewGame builds a fresh, empty set
// when given nil.
type KindRegistries struct {
	abilities   map[string]AbilityFactory
	triggers    map[string]TriggerFactory
	constraints map[string]ConstraintFactory
	winconds    map[string]WinConditionFactory
}

// NewKindRegistries constructs empty registries.
func NewKindRegistries() *KindRegistries {
	return &KindRegistries{
		abilities:   make(map[string]AbilityFactory),
		triggers:    make(map[string]TriggerFactory),
		constraints: make(map[string]ConstraintFactory),
		winconds:    make(map[string]WinConditionFactory),
	}
}

func (r *KindRegistries) RegisterAbility(kind string, f AbilityFactory) { r.abilities[kind] = f }
func (r *KindRegistries) RegisterTrigger(kind string, f TriggerFactory) { r.triggers[kind] = f }
func (r *KindRegistries) RegisterConstraint(kind string, f ConstraintFactory) {
	r.constraints[kind] = f
}
func (r *KindRegistries) RegisterWinCondition(kind string, f WinConditionFactory) {
	r.winconds[kind] = f
}

func (r *KindRegistries) Ability(kind string) (AbilityFactory, error) {
	f, ok := r.abilities[kind]
	if !ok {
		return nil, &UnknownKind{Registry: "ability", Name: kind}
	}
	return f, nil
}

func (r *KindRegistries) Trigger(kind string) (TriggerFactory, error) {
	f, ok := r.triggers[kind]
	if !ok {
		return nil, &UnknownKind{Registry: "trigger", Name: kind}
	}
	return f, nil
}

func (r *KindRegistries) Constraint(kind string) (ConstraintFactory, error) {
	f, ok := r.constraints[kind]
	if !ok {
		return nil, &UnknownKind{Registry: "constraint", Name: kind}
	}
	return f, nil
}

func (r *KindRegistries) WinCondition(kind string) (WinConditionFactory, error) {
	f, ok := r.winconds[kind]
	if !ok {
		return nil, &UnknownKind{Registry: "win-condition", Name: kind}
	}
	return f, nil
}

// KnownAbility, KnownTrigger, KnownConstraint, KnownWinCondition report
// whether a kind is registered, for Prefab.Validate to check without
// constructing anything.
func (r *KindRegistries) KnownAbility(kind string) bool    { _, ok := r.abilities[kind]; return ok }
func (r *KindRegistries) KnownTrigger(kind string) bool    { _, ok := r.triggers[kind]; return ok }
func (r *KindRegistries) KnownConstraint(kind string) bool { _, ok := r.constraints[kind]; return ok }
func (r *KindRegistries) KnownWinCondition(kind string) bool {
	_, ok := r.winconds[kind]
	return ok
}
