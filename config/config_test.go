package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("clustering.cutoff", 12.5)
	viper.Set("clustering.max-partition-size", 100)
	viper.Set("clustering.seed", int64(42))
	viper.Set("clustering.threads", 4)

	c, err := New()
	if err != nil {
		t.Fatalf("New() errored: %v", err)
	}

	if c.Clustering.Cutoff != 12.5 {
		t.Errorf("cutoff = %v, want 12.5", c.Clustering.Cutoff)
	}
	if c.Clustering.MaxPartitionSize != 100 {
		t.Errorf("max partition size = %d, want 100", c.Clustering.MaxPartitionSize)
	}
	if c.Clustering.Seed != 42 {
		t.Errorf("seed = %d, want 42", c.Clustering.Seed)
	}
	if c.Clustering.Threads != 4 {
		t.Errorf("threads = %d, want 4", c.Clustering.Threads)
	}
}

func TestNew_ZeroValueWithoutSettings(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c, err := New()
	if err != nil {
		t.Fatalf("New() errored: %v", err)
	}
	if c.Clustering.Cutoff != 0 || c.Clustering.MaxPartitionSize != 0 {
		t.Errorf("unset settings should decode to zero values, got %+v", c.Clustering)
	}
}
