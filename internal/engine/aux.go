package engine

// AuxObject is a Subscriber with a unique string key, registered in
// Game.Aux, with a lifetime independent of actors and factions: tallies,
// enders, and per-phase temporaries are all AuxObjects.
type AuxObject interface {
	Subscriber
	Key() string
	Kinds() []EventKind
	Handle(g *Game, e Event) []Action
}

// AuxBase supplies identity for concrete AuxObjects.
type AuxBase struct {
	id   int
	key  string
	kinds []EventKind
}

// InitAux constructs the shared fields.
func InitAux(id int, key string, kinds ...EventKind) AuxBase {
	return AuxBase{id: id, key: key, kinds: kinds}
}

func (a *AuxBase) ID() int             { return a.id }
func (a *AuxBase) Key() string         { return a.key }
func (a *AuxBase) Kinds() []EventKind  { return append([]EventKind(nil), a.kinds...) }

// AuxRegistry is Game.Aux: a string-keyed registry of AuxObjects.
// Duplicate registration under an already-used key fails with
// DuplicateKey (spec §4.8, testable property #8).
type AuxRegistry struct {
	byKey map[string]AuxObject
	order []string
}

func newAuxRegistry() *AuxRegistry {
	return &AuxRegistry{byKey: make(map[string]AuxObject)}
}

// Register adds obj under obj.Key(). Returns DuplicateKey if the key is
// already taken.
func (r *AuxRegistry) Register(obj AuxObject) error {
	if _, exists := r.byKey[obj.Key()]; exists {
		return &DuplicateKey{Key: obj.Key()}
	}
	r.byKey[obj.Key()] = obj
	r.order = append(r.order, obj.Key())
	return nil
}

// Get resolves an AuxObject by its key.
func (r *AuxRegistry) Get(key string) (AuxObject, bool) {
	obj, ok := r.byKey[key]
	return obj, ok
}

// All returns every registered AuxObject, in registration order.
func (r *AuxRegistry) All() []AuxObject {
	out := make([]AuxObject, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}
