package complexpack

import (
	"fmt"

	"github.com/wxcodec/g2complex/group"
	"github.com/wxcodec/g2complex/internal/options"
)

// Config carries the packing-time knobs complex_pack's tmpl array doesn't
// already express: the minimum group length the partitioner enforces, and
// the default spatial-differencing order DRT 5.3 falls back to when the
// caller leaves it unset (§4.4 step 3: "default to 2 if unset").
type Config struct {
	MinPack             int
	DefaultSpatialOrder int
}

// Option configures a Config, following the teacher's generic
// functional-options pattern (internal/options).
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		MinPack:             group.DefaultMinPack,
		DefaultSpatialOrder: 2,
	}
}

// WithMinPack overrides the minimum group length the partitioner enforces.
// n must be positive.
func WithMinPack(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("complexpack: minimum group length must be positive, got %d", n)
		}
		c.MinPack = n

		return nil
	})
}

// WithDefaultSpatialOrder overrides the spatial-differencing order used
// when a DRT 5.3 template leaves SpatialOrder unset. order must be 1 or 2.
func WithDefaultSpatialOrder(order int) Option {
	return options.New(func(c *Config) error {
		if order != 1 && order != 2 {
			return fmt.Errorf("complexpack: spatial order must be 1 or 2, got %d", order)
		}
		c.DefaultSpatialOrder = order

		return nil
	})
}
