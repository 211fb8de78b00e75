// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ClusteringConfig are the settings of the clustering engine.
type ClusteringConfig struct {
	// the dendrogram cut height; junctions joined only by merges at or
	// above it end up in separate clusters
	Cutoff float64 `mapstructure:"cutoff"`

	// the largest partition clustered whole; larger partitions are
	// subsampled down to this size
	MaxPartitionSize int `mapstructure:"max-partition-size"`

	// seed for the subsampling draw; 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`

	// the number of partitions clustered concurrently; 0 uses all CPUs
	Threads int `mapstructure:"threads"`
}

// Config is the root-level settings struct and is a mix of settings
// available in igenvar.yaml and those from the command line.
type Config struct {
	// clustering engine settings
	Clustering ClusteringConfig `mapstructure:"clustering"`
}

// New returns a Config populated by Viper settings (either from the
// local igenvar.yaml and/or command line arguments).
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}
