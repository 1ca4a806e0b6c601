package game

import "fmt"

// State is the slice of session state a variant may touch.
type State struct {
	Player  *Player
	Pursuer *Pursuer
	Field   Playfield
}

// Verdict is what a variant asks of the session after a contact.
type Verdict int

const (
	VerdictNone Verdict = iota
	// VerdictRecovery stops play and opens the recovery branch instead of a loss.
	VerdictRecovery
)

// Policy is a variant's difficulty rules. Implementations own their own
// difficulty state and must reset all of it in Setup.
type Policy interface {
	Variant() Variant
	Title() string
	Label() string
	Subtitle() string

	// Setup runs once per (re)start after the entities are respawned.
	Setup(st *State)
	// OnFrame runs every playing frame before the pursuer moves.
	OnFrame(st *State, dt float64)
	// OnCollision runs on every contact during play.
	OnCollision(st *State) Verdict
	// Lost is checked after contact handling on every playing frame.
	Lost(st *State) bool
	// Score derives the displayed score from the difficulty state.
	Score(st *State) float64
}

// Recoverer is implemented by variants that offer the last-chance recovery action.
type Recoverer interface {
	// Recover applies the recovery and reports whether it took effect.
	Recover(st *State) bool
}

// Warner is implemented by variants that flag a near miss.
type Warner interface {
	Warning(st *State) bool
}

// NewPolicy returns a fresh policy for the variant.
func NewPolicy(v Variant) (Policy, error) {
	switch v {
	case VariantArticle78:
		return &Article78{}, nil
	case VariantFAR:
		return &FAR{}, nil
	case VariantMemberDeference:
		return &MemberDeference{}, nil
	default:
		return nil, fmt.Errorf("unknown variant %d", int(v))
	}
}
