package cluster

import (
	"fmt"
	"math/rand"

	"github.com/joshuak94/iGenVar/internal/junction"
)

// subsample draws exactly size junctions from the partition, uniformly
// and without replacement. The order of the drawn junctions is not
// meaningful. Requesting more junctions than the partition holds is a
// programming error and panics.
func subsample(partition []junction.Junction, size int, rng *rand.Rand) []junction.Junction {
	if len(partition) < size {
		panic(fmt.Sprintf("cluster: subsample of %d junctions requested from a partition of %d",
			size, len(partition)))
	}
	sample := make([]junction.Junction, 0, size)
	for _, i := range rng.Perm(len(partition))[:size] {
		sample = append(sample, partition[i])
	}
	return sample
}
