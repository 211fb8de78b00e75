package cluster

import (
	"math"

	"github.com/joshuak94/iGenVar/internal/junction"
)

// Unrelated is the distance between two junctions that cannot describe
// the same breakpoint. It is strictly larger than any real distance.
const Unrelated = math.MaxInt32

// Distance scores how incompatible two junctions are. When both mates
// agree on sequence name and orientation it is the sum of the
// positional offsets at each mate plus the difference in inserted
// sequence length; anything else is Unrelated.
//
// Reference:                      ................
// Junction 1 with mates A and B:     A------->B    (2bp inserted)
// Junction 2 with mates C and D:    C------>D      (5bp inserted)
// Distance = 1 (distance A-C) + 2 (distance B-D) + 3 (insertion size difference)
func Distance(a, b junction.Junction) int {
	if a.Mate1.SeqName != b.Mate1.SeqName ||
		a.Mate1.Orientation != b.Mate1.Orientation ||
		a.Mate2.SeqName != b.Mate2.SeqName ||
		a.Mate2.Orientation != b.Mate2.Orientation {
		return Unrelated
	}
	return abs(a.Mate1.Position-b.Mate1.Position) +
		abs(a.Mate2.Position-b.Mate2.Position) +
		abs(len(a.Inserted)-len(b.Inserted))
}
