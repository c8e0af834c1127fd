package models

import "sort"

// ProgressRecord tracks completed units of one exam. LastUpdated is nil
// until the first update.
type ProgressRecord struct {
	CompletedUnits []int `json:"completedUnits"`
	LastUpdated    *Date `json:"lastUpdated"`
}

// ProgressDocument maps exam id to progress. Entries for exams that no
// longer exist are kept as-is.
type ProgressDocument map[string]ProgressRecord

// NormalizeUnits returns units sorted ascending without duplicates. The
// result is never nil so it always encodes as a JSON array.
func NormalizeUnits(units []int) []int {
	out := make([]int, 0, len(units))
	seen := make(map[int]struct{}, len(units))
	for _, u := range units {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}
