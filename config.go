package ostree

import (
	"cmp"
	"fmt"
)

// maxCapacity is the largest number of arena slots addressable by a nodeID,
// minus the reserved slot 0.
const maxCapacity = 1<<32 - 2

// Config configures an order-statistics tree.
type Config[K any] struct {
	// Compare defines the total order on keys. It returns a negative number
	// for a < b, zero for a == b and a positive number for a > b.
	Compare func(a, b K) int
	// Capacity is a hint for the number of keys to pre-allocate storage for.
	Capacity int
}

// OrderedConfig returns a configuration using cmp.Compare for keys with a
// natural order.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	if uint64(cfg.Capacity) > maxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds %d", ErrInvalidConfig, cfg.Capacity, uint64(maxCapacity))
	}
	return nil
}
