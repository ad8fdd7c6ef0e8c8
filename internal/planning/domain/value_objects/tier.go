// Package value_objects contains immutable planning domain values.
package value_objects

import (
	"errors"
	"strings"
)

// Tier represents the recommended priority bucket of a work item.
type Tier int

const (
	TierUrgent Tier = iota
	TierHigh
	TierMedium
	TierLow
)

var (
	ErrInvalidTier = errors.New("invalid tier value")
)

var tierNames = map[Tier]string{
	TierUrgent: "urgent",
	TierHigh:   "high",
	TierMedium: "medium",
	TierLow:    "low",
}

var tierValues = map[string]Tier{
	"urgent": TierUrgent,
	"high":   TierHigh,
	"medium": TierMedium,
	"low":    TierLow,
}

// Tiers returns all tiers in fixed sequencing order, most urgent first.
func Tiers() []Tier {
	return []Tier{TierUrgent, TierHigh, TierMedium, TierLow}
}

// ParseTier creates a Tier from a string.
func ParseTier(s string) (Tier, error) {
	t, ok := tierValues[strings.ToLower(s)]
	if !ok {
		return TierLow, ErrInvalidTier
	}
	return t, nil
}

// TierForScore maps a composite score to its recommended tier.
func TierForScore(score float64) Tier {
	switch {
	case score > 10:
		return TierUrgent
	case score > 6:
		return TierHigh
	case score > 2:
		return TierMedium
	default:
		return TierLow
	}
}

// String returns the string representation of the tier.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the tier as its name.
func (t Tier) MarshalText() ([]byte, error) {
	name, ok := tierNames[t]
	if !ok {
		return nil, ErrInvalidTier
	}
	return []byte(name), nil
}

// UnmarshalText decodes a tier from its name.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsValid returns true if the tier is a valid value.
func (t Tier) IsValid() bool {
	_, ok := tierNames[t]
	return ok
}

// Rank returns the sequencing rank (lower = scheduled earlier).
func (t Tier) Rank() int {
	return int(t)
}
