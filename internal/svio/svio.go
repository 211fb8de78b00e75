// Package svio reads and writes the plain-data tables at the edges of
// the clustering engine: the junction table handed over by the
// alignment layer and the cluster table consumed by variant reporting.
package svio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuak94/iGenVar/internal/cluster"
	"github.com/joshuak94/iGenVar/internal/junction"
)

// ReadJunctions parses a tab-separated junction table with one row per
// junction:
//
//	mate1_seq  mate1_orient  mate1_pos  mate2_seq  mate2_orient  mate2_pos  inserted
//
// Orientations are + or -, the inserted column holds the inserted
// bases or "." for none. Blank lines and lines starting with # are
// skipped.
func ReadJunctions(path string) ([]junction.Junction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open junction table: %w", err)
	}
	defer f.Close()

	junctions, err := ParseJunctions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return junctions, nil
}

// ParseJunctions reads a junction table from r. See ReadJunctions for
// the format.
func ParseJunctions(r io.Reader) ([]junction.Junction, error) {
	var junctions []junction.Junction

	scanner := bufio.NewScanner(r)
	// inserted sequences can be long
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		fields := strings.Fields(row)
		if len(fields) != 7 {
			return nil, fmt.Errorf("line %d: want 7 columns, got %d", line, len(fields))
		}
		mate1, err := parseMate(fields[0], fields[1], fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: mate 1: %w", line, err)
		}
		mate2, err := parseMate(fields[3], fields[4], fields[5])
		if err != nil {
			return nil, fmt.Errorf("line %d: mate 2: %w", line, err)
		}

		var inserted []byte
		if fields[6] != "." {
			inserted = []byte(fields[6])
		}
		junctions = append(junctions, junction.Junction{
			Mate1:    mate1,
			Mate2:    mate2,
			Inserted: inserted,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read junction table: %w", err)
	}
	return junctions, nil
}

func parseMate(name, orient, pos string) (junction.Mate, error) {
	var o junction.Orientation
	switch orient {
	case "+":
		o = junction.Forward
	case "-":
		o = junction.Reverse
	default:
		return junction.Mate{}, fmt.Errorf("bad orientation %q", orient)
	}

	p, err := strconv.Atoi(pos)
	if err != nil {
		return junction.Mate{}, fmt.Errorf("bad position %q", pos)
	}
	return junction.Mate{SeqName: name, Orientation: o, Position: p}, nil
}

// WriteClusters writes the cluster table: one row per junction, led by
// the index of the cluster it belongs to, clusters in their sorted
// output order.
func WriteClusters(w io.Writer, clusters []cluster.Cluster) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "#cluster\tmate1_seq\tmate1_orient\tmate1_pos\tmate2_seq\tmate2_orient\tmate2_pos\tinserted")

	for ci, c := range clusters {
		for _, j := range c.Junctions {
			inserted := "."
			if len(j.Inserted) > 0 {
				inserted = string(j.Inserted)
			}
			_, err := fmt.Fprintf(bw, "%d\t%s\t%s\t%d\t%s\t%s\t%d\t%s\n",
				ci,
				j.Mate1.SeqName, j.Mate1.Orientation, j.Mate1.Position,
				j.Mate2.SeqName, j.Mate2.Orientation, j.Mate2.Position,
				inserted)
			if err != nil {
				return fmt.Errorf("write cluster table: %w", err)
			}
		}
	}
	return bw.Flush()
}

// WriteClustersFile writes the cluster table to path.
func WriteClustersFile(path string, clusters []cluster.Cluster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cluster table: %w", err)
	}
	if err := WriteClusters(f, clusters); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
