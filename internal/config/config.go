package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config は lrudedup の設定です。
type Config struct {
	Capacity    int
	FoldCase    bool
	TrimSpace   bool
	OnlyRepeats bool
	Metrics     bool
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func parseBoolEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load は環境変数をデフォルト値としてフラグを解析します。
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var c Config

	fs.IntVar(&c.Capacity, "capacity", parseIntEnv("LRUDEDUP_CAPACITY", 1024), "Number of distinct lines to remember")
	fs.BoolVar(&c.FoldCase, "fold-case", parseBoolEnv("LRUDEDUP_FOLD_CASE", false), "Compare lines case-insensitively")
	fs.BoolVar(&c.TrimSpace, "trim", parseBoolEnv("LRUDEDUP_TRIM", false), "Ignore leading and trailing whitespace")
	fs.BoolVar(&c.OnlyRepeats, "repeats", parseBoolEnv("LRUDEDUP_REPEATS", false), "Print only lines that were seen recently")
	fs.BoolVar(&c.Metrics, "metrics", parseBoolEnv("LRUDEDUP_METRICS", false), "Dump metrics to stderr on exit")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate は設定値を検証します。
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return errors.Errorf("capacity must be >= 0, got %d", c.Capacity)
	}
	return nil
}
