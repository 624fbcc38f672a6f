package crib

import "sort"

// FragmentStat aggregates the matches that produced the same fragment.
type FragmentStat struct {
	Fragment  string
	Count     int
	Positions []int // in match order
}

// Analyze groups matches by fragment. The result is sorted by Count
// descending; equal counts keep the order in which fragments were first seen.
func Analyze(matches []Match) []FragmentStat {
	var stats []FragmentStat
	seen := make(map[string]int)
	for _, m := range matches {
		i, ok := seen[m.Fragment]
		if !ok {
			i = len(stats)
			seen[m.Fragment] = i
			stats = append(stats, FragmentStat{Fragment: m.Fragment})
		}
		stats[i].Count++
		stats[i].Positions = append(stats[i].Positions, m.Position)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}
