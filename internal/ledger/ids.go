package ledger

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out subject ids that are unique for the ledger's lifetime.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues random v4 UUIDs; it is the ledger default.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// Sequence is a monotonic counter: prefix-1, prefix-2, ...
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NextID() string {
	return s.prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}
