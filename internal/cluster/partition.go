package cluster

import (
	"sort"

	"github.com/joshuak94/iGenVar/internal/junction"
)

// positionTolerance is the window, in base pairs, within which two
// mates count as the same locus during partitioning.
const positionTolerance = 50

// Partition splits junctions into groups sharing approximately the
// same mate 1 and mate 2 loci. The first pass walks the input in its
// given order and starts a new group whenever mate 1 moves away from
// the group's last appended element, so callers must supply junctions
// already ordered by mate 1. Each mate-1 group is then sorted by
// mate 2 and re-split the same way. The tolerance is a chain
// tolerance: every member agrees with its neighbor within 50 bp, not
// necessarily with every other member.
func Partition(junctions []junction.Junction) [][]junction.Junction {
	var current []junction.Junction
	var partitions [][]junction.Junction

	flush := func() {
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].Mate2.Compare(current[j].Mate2) < 0
		})
		partitions = append(partitions, splitByMate2(current)...)
		current = nil
	}

	for _, j := range junctions {
		if len(current) > 0 && !sameLocus(j.Mate1, current[len(current)-1].Mate1) {
			flush()
		}
		current = append(current, j)
	}
	if len(current) > 0 {
		flush()
	}
	return partitions
}

// splitByMate2 re-splits one mate-1 group on mate 2 and sorts each
// resulting sub-group into the full junction order.
func splitByMate2(group []junction.Junction) [][]junction.Junction {
	var current []junction.Junction
	var split [][]junction.Junction

	flush := func() {
		sort.Slice(current, func(i, j int) bool {
			return junction.Less(current[i], current[j])
		})
		split = append(split, current)
		current = nil
	}

	for _, j := range group {
		if len(current) > 0 && !sameLocus(j.Mate2, current[len(current)-1].Mate2) {
			flush()
		}
		current = append(current, j)
	}
	if len(current) > 0 {
		flush()
	}
	return split
}

func sameLocus(a, b junction.Mate) bool {
	return a.SeqName == b.SeqName &&
		a.Orientation == b.Orientation &&
		abs(a.Position-b.Position) <= positionTolerance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
