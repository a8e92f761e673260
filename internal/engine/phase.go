package engine

import "fmt"

// ResolutionPolicy governs when a phase's accumulated main-queue actions
// are drained: immediately (Instant) or held until the phase changes
// (EndOfPhase).
type ResolutionPolicy int

const (
	Instant ResolutionPolicy = iota
	EndOfPhase
)

func (p ResolutionPolicy) String() string {
	if p == Instant {
		return "instant"
	}
	return "end_of_phase"
}

// Phase is a named interval with a resolution policy. "startup" and
// "shutdown" are reserved names: both are always Instant, and shutdown is
// the only legal terminal phase.
type Phase struct {
	Name   string
	Policy ResolutionPolicy
}

const (
	PhaseStartup  = "startup"
	PhaseShutdown = "shutdown"
)

// PhaseSystem owns the ordered/parameterized progression of phases for a
// Game. Current, Advance, and SetTo are the only operations the kernel
// needs; everything else (naming scheme, cycle count) is up to the
// implementation.
type PhaseSystem interface {
	Current() Phase
	// Advance moves to the next phase in the system's progression.
	Advance() (Phase, error)
	// SetTo jumps directly to the named phase (admin/debug, and the
	// EndTheGameAction's transition into shutdown). Only "shutdown" is
	// guaranteed legal; everything else is implementation-defined
	// (CyclicPhaseSystem rejects every other name).
	SetTo(name string) (Phase, error)
}

// CyclicPhaseSystem is the default PhaseSystem: startup -> day 1 -> night 1
// -> day 2 -> night 2 -> ... until an explicit shutdown. Grounded on
// open_mafia_engine's core/phase_cycle.py, whose possible_phases indexes
// day/night pairs by a signed cycle index with -1/-2 sentinels for
// startup/shutdown; reproduced here as an explicit index plus two booleans
// rather than sentinel integers, which reads more naturally in Go.
type CyclicPhaseSystem struct {
	dayPolicy   ResolutionPolicy
	nightPolicy ResolutionPolicy

	started  bool
	ended    bool
	cycle    int  // 1-based; incremented when moving from night back to day
	isNight  bool
}

// NewCyclicPhaseSystem constructs the default day/night cycle. Day is
// Instant (votes resolve as cast); night is EndOfPhase (night actions
// accumulate and resolve together when day breaks) -- per spec §4.5's
// worked example.
func NewCyclicPhaseSystem() *CyclicPhaseSystem {
	return &CyclicPhaseSystem{dayPolicy: Instant, nightPolicy: EndOfPhase}
}

func (c *CyclicPhaseSystem) Current() Phase {
	switch {
	case c.ended:
		return Phase{Name: PhaseShutdown, Policy: Instant}
	case !c.started:
		return Phase{Name: PhaseStartup, Policy: Instant}
	case c.isNight:
		return Phase{Name: fmt.Sprintf("night %d", c.cycle), Policy: c.nightPolicy}
	default:
		return Phase{Name: fmt.Sprintf("day %d", c.cycle), Policy: c.dayPolicy}
	}
}

func (c *CyclicPhaseSystem) Advance() (Phase, error) {
	from := c.Current()
	if c.ended {
		return from, &InvalidPhaseTransition{From: from.Name, To: "?", Reason: "game has already shut down"}
	}
	switch {
	case !c.started:
		c.started = true
		c.cycle = 1
		c.isNight = false
	case !c.isNight:
		c.isNight = true
	default:
		c.isNight = false
		c.cycle++
	}
	return c.Current(), nil
}

func (c *CyclicPhaseSystem) SetTo(name string) (Phase, error) {
	from := c.Current()
	if name != PhaseShutdown {
		return from, &InvalidPhaseTransition{From: from.Name, To: name, Reason: "only shutdown may be set directly"}
	}
	c.ended = true
	return c.Current(), nil
}
