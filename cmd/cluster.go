package cmd

import (
	"math/rand"
	"os"
	"sort"

	"github.com/joshuak94/iGenVar/config"
	"github.com/joshuak94/iGenVar/internal/cluster"
	"github.com/joshuak94/iGenVar/internal/junction"
	"github.com/joshuak94/iGenVar/internal/svio"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// clusterCmd represents the cluster command
var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Group junctions into clusters of mutually supporting breakpoints",
	Long: `Group junctions into clusters of mutually supporting breakpoints.

"igenvar cluster" reads a tab-separated junction table, buckets the
junctions by coarse mate-1/mate-2 locus and orientation, clusters every
bucket with average-linkage hierarchical clustering, and cuts each
dendrogram at the --cutoff height. Junctions whose pairwise merges all
lie below the cutoff come out as one cluster, one candidate structural
variant each.

Partitions holding more junctions than --max-partition-size are
subsampled down to that size before clustering; pass --seed to make the
draw reproducible.`,
	Run: runCluster,
}

func init() {
	RootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().StringP("in", "i", "", "path to the tab-separated junction table")
	clusterCmd.Flags().StringP("out", "o", "", "path to write the cluster table to (default stdout)")
	clusterCmd.Flags().Float64P("cutoff", "c", 10, "dendrogram cut height")
	clusterCmd.Flags().Int("max-partition-size", cluster.DefaultMaxPartitionSize,
		"largest partition clustered whole; larger ones are subsampled")
	clusterCmd.Flags().Int64("seed", 0, "seed for the subsampling draw (0 seeds from the clock)")
	clusterCmd.Flags().IntP("threads", "t", 0, "partitions clustered concurrently (0 uses all CPUs)")

	clusterCmd.MarkFlagRequired("in")

	viper.BindPFlag("clustering.cutoff", clusterCmd.Flags().Lookup("cutoff"))
	viper.BindPFlag("clustering.max-partition-size", clusterCmd.Flags().Lookup("max-partition-size"))
	viper.BindPFlag("clustering.seed", clusterCmd.Flags().Lookup("seed"))
	viper.BindPFlag("clustering.threads", clusterCmd.Flags().Lookup("threads"))
}

func runCluster(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")

	conf, err := config.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("reading settings")
	}

	junctions, err := svio.ReadJunctions(in)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading junctions")
	}

	// the partitioner expects its input ordered by mate 1
	sort.SliceStable(junctions, func(i, j int) bool {
		return junction.Less(junctions[i], junctions[j])
	})

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("clustering partitions"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	opts := cluster.Options{
		Cutoff:           conf.Clustering.Cutoff,
		MaxPartitionSize: conf.Clustering.MaxPartitionSize,
		Workers:          conf.Clustering.Threads,
		Logger:           &logger,
		OnPartition: func(done, total int) {
			bar.ChangeMax(total)
			_ = bar.Set(done)
		},
	}
	if conf.Clustering.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(conf.Clustering.Seed))
	}

	clusters, err := cluster.Hierarchical(cmd.Context(), junctions, opts)
	_ = bar.Finish()
	if err != nil {
		logger.Fatal().Err(err).Msg("clustering junctions")
	}

	if out == "" {
		err = svio.WriteClusters(os.Stdout, clusters)
	} else {
		err = svio.WriteClustersFile(out, clusters)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("writing clusters")
	}

	logger.Info().
		Int("junctions", len(junctions)).
		Int("clusters", len(clusters)).
		Msg("clustering done")
}
