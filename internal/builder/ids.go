package builder

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDAllocator hands out identifiers for sections, items and form fields.
type IDAllocator interface {
	NewID() string
}

// UUIDAllocator allocates random v4 UUIDs.
type UUIDAllocator struct{}

func (UUIDAllocator) NewID() string {
	return uuid.NewString()
}

// SequenceAllocator allocates "<prefix>-1", "<prefix>-2", ... and is meant
// for deterministic tests and fixtures.
type SequenceAllocator struct {
	Prefix string
	next   atomic.Int64
}

func (s *SequenceAllocator) NewID() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.next.Add(1))
}

func allocatorOrDefault(ids IDAllocator) IDAllocator {
	if ids == nil {
		return UUIDAllocator{}
	}
	return ids
}

// token shortens an allocated id for use inside generated field names.
func token(ids IDAllocator) string {
	id := strings.ReplaceAll(allocatorOrDefault(ids).NewID(), "-", "")
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
