// Package junction holds the junction data model shared by the
// partitioning and clustering stages. A junction is one candidate
// breakpoint inferred from a split or chimeric read alignment.
package junction

import (
	"bytes"
	"fmt"
)

// Orientation is the strand a mate maps to.
type Orientation int8

const (
	// Forward is the plus strand.
	Forward Orientation = iota

	// Reverse is the minus strand.
	Reverse
)

func (o Orientation) String() string {
	if o == Reverse {
		return "-"
	}
	return "+"
}

// Mate is one endpoint of a junction.
type Mate struct {
	// the reference/chromosome name the mate maps to
	SeqName string

	// the strand the mate maps to
	Orientation Orientation

	// the genomic coordinate of the breakend
	Position int
}

// Compare orders mates by sequence name, then orientation, then position.
func (m Mate) Compare(other Mate) int {
	if m.SeqName != other.SeqName {
		if m.SeqName < other.SeqName {
			return -1
		}
		return 1
	}
	if m.Orientation != other.Orientation {
		if m.Orientation < other.Orientation {
			return -1
		}
		return 1
	}
	switch {
	case m.Position < other.Position:
		return -1
	case m.Position > other.Position:
		return 1
	}
	return 0
}

func (m Mate) String() string {
	return fmt.Sprintf("%s:%d:%s", m.SeqName, m.Position, m.Orientation)
}

// Junction is one candidate breakpoint: two mate endpoints plus the
// sequence inserted between them (possibly empty).
type Junction struct {
	Mate1 Mate
	Mate2 Mate

	// bases inserted between the two mates
	Inserted []byte
}

// Compare orders junctions by mate 1, then mate 2, then the inserted
// sequence. The order is total, which keeps clustering output
// deterministic.
func Compare(a, b Junction) int {
	if c := a.Mate1.Compare(b.Mate1); c != 0 {
		return c
	}
	if c := a.Mate2.Compare(b.Mate2); c != 0 {
		return c
	}
	return bytes.Compare(a.Inserted, b.Inserted)
}

// Less reports whether a sorts before b in the junction order.
func Less(a, b Junction) bool {
	return Compare(a, b) < 0
}
