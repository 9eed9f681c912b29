package ostree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ostree: invalid configuration")
	// ErrNotFound signals that a key required to be present is absent.
	ErrNotFound = errors.New("ostree: key not found")
	// ErrEmptyTree signals a query which needs at least one key.
	ErrEmptyTree = errors.New("ostree: empty tree")
	// ErrOutOfRange signals a rank outside of [1, Size()].
	ErrOutOfRange = errors.New("ostree: rank out of range")
	// ErrNoPredecessor signals that a key is the minimum of the tree.
	ErrNoPredecessor = errors.New("ostree: no predecessor")
	// ErrNoSuccessor signals that a key is the maximum of the tree.
	ErrNoSuccessor = errors.New("ostree: no successor")
	// ErrUnsorted signals that bulk input is not in non-decreasing order.
	ErrUnsorted = errors.New("ostree: input not sorted")
	// ErrCorrupt is reported by the invariant checkers.
	ErrCorrupt = errors.New("ostree: tree invariant violated")
)
