// Package cluster implements the junction clustering engine: a greedy
// positional partitioning of junctions followed by average-linkage
// hierarchical clustering of each partition, cut at a caller-supplied
// distance threshold.
package cluster

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"github.com/joshuak94/iGenVar/internal/junction"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPartitionSize is the largest partition that is still
// feasible to cluster in reasonable time. Larger partitions are
// subsampled down to this size, trading completeness for runtime.
const DefaultMaxPartitionSize = 200

// Cluster is a group of junctions believed to represent the same
// structural variant, sorted by the junction order.
type Cluster struct {
	Junctions []junction.Junction
}

// Options tune a Hierarchical run. The zero value is usable apart from
// Cutoff, which callers always choose.
type Options struct {
	// Cutoff is the dendrogram cut height. Junctions end up in the
	// same cluster only when every merge joining them lies below it.
	Cutoff float64

	// MaxPartitionSize caps the number of junctions clustered per
	// partition; larger partitions are subsampled. Zero or negative
	// means DefaultMaxPartitionSize.
	MaxPartitionSize int

	// Workers is the number of partitions clustered concurrently.
	// Zero or negative means one worker per CPU.
	Workers int

	// Rand is the source for the subsampling draw. Nil means a
	// clock-seeded source; tests inject a fixed seed instead.
	Rand *rand.Rand

	// Logger receives the subsampling diagnostics. Nil silences them.
	Logger *zerolog.Logger

	// OnPartition, if set, is called after each partition finishes
	// clustering, with the number done so far and the total. It may
	// be called from multiple goroutines at once.
	OnPartition func(done, total int)
}

// Hierarchical partitions junctions by coarse mate-1/mate-2 locus and
// clusters each partition with average linkage, cutting the resulting
// dendrogram at opts.Cutoff. Junctions must arrive ordered by mate 1
// (see Partition). The returned clusters are sorted by their lead
// junction, and each cluster's members are sorted, so output is
// deterministic for a fixed input order and cutoff.
//
// Partitions are independent, so they are clustered concurrently; the
// final sort restores a completion-order-independent result.
func Hierarchical(ctx context.Context, junctions []junction.Junction, opts Options) ([]Cluster, error) {
	maxSize := opts.MaxPartitionSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPartitionSize
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	partitions := Partition(junctions)

	// subsample oversized partitions up front: the draw consumes the
	// shared random source, so it stays out of the worker goroutines
	for i, partition := range partitions {
		if len(partition) <= maxSize {
			continue
		}
		if opts.Logger != nil {
			opts.Logger.Warn().
				Int("size", len(partition)).
				Int("limit", maxSize).
				Str("mate1", partition[0].Mate1.String()).
				Str("mate2", partition[0].Mate2.String()).
				Msg("partition exceeds the maximum size and has to be subsampled")
		}
		partitions[i] = subsample(partition, maxSize, rng)
	}

	results := make([][]Cluster, len(partitions))
	var finished atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range partitions {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = clusterPartition(partitions[i], opts.Cutoff)
			if opts.OnPartition != nil {
				opts.OnPartition(int(finished.Add(1)), len(partitions))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var clusters []Cluster
	for _, partitionClusters := range results {
		clusters = append(clusters, partitionClusters...)
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return junction.Less(clusters[i].Junctions[0], clusters[j].Junctions[0])
	})
	return clusters, nil
}

// clusterPartition clusters one partition. Partitions below two
// members are trivially a single cluster; everything else goes through
// the distance matrix, the average linkage and the dendrogram cut.
func clusterPartition(partition []junction.Junction, cutoff float64) []Cluster {
	n := len(partition)
	if n == 0 {
		return nil
	}
	if n < 2 {
		return []Cluster{{Junctions: partition}}
	}

	dend := linkAverage(n, distanceMatrix(partition))
	labels := cutDendrogram(n, dend, cutoff)

	members := make([][]junction.Junction, maxLabel(labels)+1)
	for i, label := range labels {
		members[label] = append(members[label], partition[i])
	}

	clusters := make([]Cluster, 0, len(members))
	for _, group := range members {
		sort.Slice(group, func(i, j int) bool {
			return junction.Less(group[i], group[j])
		})
		clusters = append(clusters, Cluster{Junctions: group})
	}
	return clusters
}

func maxLabel(labels []int) int {
	max := 0
	for _, label := range labels {
		if label > max {
			max = label
		}
	}
	return max
}
