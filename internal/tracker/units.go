package tracker

import (
	"strconv"
	"strings"

	"github.com/zaqqye/smart_timetable/internal/models"
)

// ParseMode decides what happens to a unit list containing bad tokens.
type ParseMode int

const (
	// AllOrNothing discards the whole input when any token is not an integer.
	AllOrNothing ParseMode = iota
	// PerToken skips bad tokens and keeps the rest.
	PerToken
)

// ParseModeFromString maps config values; unknown values select AllOrNothing.
func ParseModeFromString(s string) ParseMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per_token", "per-token", "pertoken":
		return PerToken
	default:
		return AllOrNothing
	}
}

func (m ParseMode) String() string {
	if m == PerToken {
		return "per_token"
	}
	return "all_or_nothing"
}

const markAllToken = "all"

// Marking is the result of applying a unit-completion input.
type Marking struct {
	Units    []int    // resulting completed set, sorted
	All      bool     // input was "all"
	Invalid  bool     // AllOrNothing rejected the input as a whole
	Rejected []string // tokens that were not integers
}

// MarkUnits applies free-text input ("all" or comma-separated unit numbers)
// to the current completed set. "all" replaces the set with 1..totalUnits;
// otherwise valid in-range units are unioned in and out-of-range ones
// ignored.
func MarkUnits(current []int, input string, totalUnits int, mode ParseMode) Marking {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == markAllToken {
		all := make([]int, 0, max(totalUnits, 0))
		for u := 1; u <= totalUnits; u++ {
			all = append(all, u)
		}
		return Marking{Units: all, All: true}
	}

	var parsed []int
	var rejected []string
	for _, tok := range strings.Split(input, ",") {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			rejected = append(rejected, tok)
			continue
		}
		parsed = append(parsed, n)
	}

	m := Marking{Rejected: rejected}
	if len(rejected) > 0 && mode == AllOrNothing {
		m.Invalid = true
		m.Units = models.NormalizeUnits(current)
		return m
	}

	merged := append([]int(nil), current...)
	for _, u := range parsed {
		if u >= 1 && u <= totalUnits {
			merged = append(merged, u)
		}
	}
	m.Units = models.NormalizeUnits(merged)
	return m
}
