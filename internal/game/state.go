package game

import (
	"encoding/json"
	"fmt"
)

// Phase is the session phase.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseEndingWon
	PhaseEndingLost
	PhaseSpecialRecovery
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseEndingWon:
		return "ending_won"
	case PhaseEndingLost:
		return "ending_lost"
	case PhaseSpecialRecovery:
		return "special_recovery"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Phase as a string.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// IsEnding reports whether the phase is one of the two ending banners.
func (p Phase) IsEnding() bool {
	return p == PhaseEndingWon || p == PhaseEndingLost
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// MarshalJSON serializes Outcome as a string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Variant selects one of the three rule sets.
type Variant int

const (
	VariantArticle78 Variant = iota + 1
	VariantFAR
	VariantMemberDeference
)

// Variants lists every playable variant in menu order.
var Variants = []Variant{VariantArticle78, VariantFAR, VariantMemberDeference}

func (v Variant) String() string {
	switch v {
	case VariantArticle78:
		return "article78"
	case VariantFAR:
		return "far"
	case VariantMemberDeference:
		return "member_deference"
	default:
		return "unknown"
	}
}

// ParseVariant maps a symbolic identifier to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// MarshalJSON serializes Variant as a string.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON deserializes Variant from a string.
func (v *Variant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
