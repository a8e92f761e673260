package engine

// Status is a per-actor, string-keyed attribute bag. A read of an unset key
// yields (nil, false) with no event; any write emits EStatusChange
// synchronously, after the value has already changed -- handlers observe
// the new value (spec §4.6's reentrancy guarantee).
type Status struct {
	actorID int
	game    *Game
	values  map[string]any
}

func newStatus(g *Game, actorID int) *Status {
	return &Status{actorID: actorID, game: g, values: make(map[string]any)}
}

// Get returns the value stored under key, or (nil, false) if unset.
func (s *Status) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Bool is a convenience for the common boolean canonical keys ("dead",
// "protected", ...); an unset key reads as false.
func (s *Status) Bool(key string) bool {
	v, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Set writes key=value and emits EStatusChange. The produced actions (if
// any subscriber reacts) are routed through the Game exactly like any other
// ProcessEvent call, honoring the current phase's resolution policy.
func (s *Status) Set(key string, value any) {
	old, _ := s.values[key]
	s.values[key] = value
	ev := &EStatusChange{ActorID: s.actorID, Key: key, Old: old, New: value}
	s.game.emit(ev)
}

// Unset removes key entirely, emitting EStatusChange with New=nil if it was
// previously set. A no-op (and no event) if the key was already absent.
func (s *Status) Unset(key string) {
	old, ok := s.values[key]
	if !ok {
		return
	}
	delete(s.values, key)
	ev := &EStatusChange{ActorID: s.actorID, Key: key, Old: old, New: nil}
	s.game.emit(ev)
}

// Keys returns every currently-set key, in no particular order.
func (s *Status) Keys() []string {
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}
