package cluster

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/joshuak94/iGenVar/internal/junction"
)

func TestSubsample(t *testing.T) {
	partition := make([]junction.Junction, 20)
	for i := range partition {
		partition[i] = jct("chr1", junction.Forward, i, "chr2", junction.Forward, 1000+i, "")
	}
	members := map[string]bool{}
	for _, j := range partition {
		members[key(j)] = true
	}

	sample := subsample(partition, 5, rand.New(rand.NewSource(42)))

	if len(sample) != 5 {
		t.Fatalf("sample has %d junctions, want 5", len(sample))
	}
	seen := map[string]bool{}
	for _, j := range sample {
		if !members[key(j)] {
			t.Errorf("sampled junction %v is not in the partition", j)
		}
		if seen[key(j)] {
			t.Errorf("junction %v sampled twice", j)
		}
		seen[key(j)] = true
	}
}

func TestSubsample_DeterministicWithSeed(t *testing.T) {
	partition := make([]junction.Junction, 50)
	for i := range partition {
		partition[i] = jct("chr1", junction.Forward, i, "chr2", junction.Forward, i, "")
	}

	first := subsample(partition, 10, rand.New(rand.NewSource(7)))
	second := subsample(partition, 10, rand.New(rand.NewSource(7)))

	for i := range first {
		if key(first[i]) != key(second[i]) {
			t.Fatalf("same seed drew different samples at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSubsample_PanicsOnOversizedRequest(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("subsampling more junctions than the partition holds did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "subsample") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()

	partition := []junction.Junction{
		jct("chr1", junction.Forward, 0, "chr2", junction.Forward, 0, ""),
	}
	subsample(partition, 2, rand.New(rand.NewSource(1)))
}
