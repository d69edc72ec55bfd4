package ir

import "fmt"

// Allocator approves node allocations for a Doc. Every node, whether built
// by the parser or by constructors, asks the allocator first; a non-nil
// error aborts the operation and propagates to the caller.
type Allocator interface {
	Alloc(n int) error
}

type stdAllocator struct{}

func (stdAllocator) Alloc(int) error { return nil }

// NewBudget returns an allocator that refuses after n nodes. Useful for
// exercising exhaustion paths.
func NewBudget(n int) Allocator {
	return &budget{left: n}
}

type budget struct {
	left int
}

func (b *budget) Alloc(n int) error {
	if b.left < n {
		return fmt.Errorf("%w: node budget spent", ErrExhausted)
	}
	b.left -= n
	return nil
}
