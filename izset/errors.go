package izset

import (
	"errors"

	"github.com/katalvlaran/lvldbsp/zset"
)

// ErrNilJoinKeyFunc indicates an IndexedZSet was constructed without a
// join-key function.
var ErrNilJoinKeyFunc = errors.New("izset: join key function is nil")

// NullKey re-exports zset.NullKey, the reserved join-key sentinel
// representing SQL NULL, so callers that only import izset still see
// the same sentinel zset.Join enforces. A JoinKeyFunc must never
// return NullKey for a value that should participate in joins; a
// value mapped to NullKey matches nothing, including other
// NullKey-mapped values.
const NullKey = zset.NullKey
