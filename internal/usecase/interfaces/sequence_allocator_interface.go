package interfaces

import "context"

// Sequence names for the id counters.
const (
	SequenceEstimates = "estimates"
	SequenceTasks     = "tasks"
)

// ISequenceAllocator hands out monotonically increasing integer ids.
//
// DynamoDB has no auto-increment, so the implementation keeps one atomic
// counter item per sequence; ids start at 1 and are never reused.
type ISequenceAllocator interface {
	Next(ctx context.Context, sequence string) (int64, error)
}
