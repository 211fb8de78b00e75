package cluster

import (
	"testing"

	"github.com/joshuak94/iGenVar/internal/junction"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b junction.Junction
		want int
	}{
		{
			"identical junctions",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, "AC"),
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, "AC"),
			0,
		},
		{
			"same signature, different inserted bases of equal length",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, "AC"),
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, "GT"),
			0,
		},
		{
			"offsets at both mates plus insertion size difference",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, "AC"),
			jct("chr1", junction.Forward, 101, "chr2", junction.Forward, 202, "ACGTA"),
			1 + 2 + 3,
		},
		{
			"mate 1 sequence name differs",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, ""),
			jct("chr3", junction.Forward, 100, "chr2", junction.Forward, 200, ""),
			Unrelated,
		},
		{
			"mate 1 orientation differs",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, ""),
			jct("chr1", junction.Reverse, 100, "chr2", junction.Forward, 200, ""),
			Unrelated,
		},
		{
			"mate 2 sequence name differs",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, ""),
			jct("chr1", junction.Forward, 100, "chr4", junction.Forward, 200, ""),
			Unrelated,
		},
		{
			"mate 2 orientation differs",
			jct("chr1", junction.Forward, 100, "chr2", junction.Forward, 200, ""),
			jct("chr1", junction.Forward, 100, "chr2", junction.Reverse, 200, ""),
			Unrelated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(a, b) = %d, want %d", got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(b, a) = %d, want %d (not symmetric)", got, tt.want)
			}
		})
	}
}
