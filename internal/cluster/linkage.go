package cluster

import "github.com/joshuak94/iGenVar/internal/junction"

// dendrogram records an agglomerative clustering. merge holds two node
// ids per step (leaves are 0..n-1, the cluster created at step k is
// n+k) and height the linkage distance of each step.
type dendrogram struct {
	merge  []int
	height []float64
}

// condensedIndex maps the pair (i, j), i < j, into the flat
// upper-triangle distance matrix for n observations.
func condensedIndex(n, i, j int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// distanceMatrix builds the condensed pairwise distance matrix of a
// partition, enumerating pairs with i < j.
func distanceMatrix(partition []junction.Junction) []float64 {
	n := len(partition)
	mat := make([]float64, n*(n-1)/2)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mat[k] = float64(Distance(partition[i], partition[j]))
			k++
		}
	}
	return mat
}

// linkAverage runs average-linkage agglomerative clustering of n
// observations over their condensed distance matrix. At each of the
// n-1 steps the two closest clusters merge; the distance from the
// merged cluster to every other one is the size-weighted mean of its
// parts. Ties on the closest pair go to the first pair in scan order,
// which keeps the dendrogram deterministic for a fixed input order.
func linkAverage(n int, condensed []float64) dendrogram {
	type node struct {
		id   int // dendrogram node id: <n is a leaf, >=n a merged cluster
		size int // number of leaves below this node
	}

	// working matrix between the currently active clusters
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := condensed[condensedIndex(n, i, j)]
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	active := make([]node, n)
	for i := range active {
		active[i] = node{id: i, size: 1}
	}

	dend := dendrogram{
		merge:  make([]int, 0, 2*(n-1)),
		height: make([]float64, 0, n-1),
	}

	for step := 0; step < n-1; step++ {
		m := len(active)
		bi, bj := 0, 1
		best := dist[0][1]
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				if dist[i][j] < best {
					best, bi, bj = dist[i][j], i, j
				}
			}
		}

		a, b := active[bi], active[bj]
		dend.merge = append(dend.merge, a.id, b.id)
		dend.height = append(dend.height, best)

		total := float64(a.size + b.size)
		for k := 0; k < m; k++ {
			if k == bi || k == bj {
				continue
			}
			d := (float64(a.size)*dist[bi][k] + float64(b.size)*dist[bj][k]) / total
			dist[bi][k] = d
			dist[k][bi] = d
		}
		active[bi] = node{id: n + step, size: a.size + b.size}

		// drop slot bj by moving the last active cluster into it
		last := m - 1
		if bj != last {
			active[bj] = active[last]
			for k := 0; k < m; k++ {
				dist[bj][k] = dist[last][k]
				dist[k][bj] = dist[k][last]
			}
			dist[bj][bj] = 0
		}
		active = active[:last]
	}
	return dend
}

// cutDendrogram assigns a flat cluster label to each of the n leaves.
// Two leaves share a label only when they are connected by a chain of
// merges whose heights all lie strictly below cutoff. Labels are
// numbered by first appearance over the leaves.
func cutDendrogram(n int, dend dendrogram, cutoff float64) []int {
	// union-find over the 2n-1 dendrogram nodes
	parent := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	for step := 0; step < len(dend.height); step++ {
		if dend.height[step] >= cutoff {
			continue
		}
		next := n + step
		parent[find(dend.merge[2*step])] = next
		parent[find(dend.merge[2*step+1])] = next
	}

	labels := make([]int, n)
	labelOf := make(map[int]int, n)
	for i := 0; i < n; i++ {
		root := find(i)
		lab, ok := labelOf[root]
		if !ok {
			lab = len(labelOf)
			labelOf[root] = lab
		}
		labels[i] = lab
	}
	return labels
}
