package mocks

import (
	"sync"

	"github.com/mcoot/stackline/internal/dependencies/random"
)

// queue hands out scripted values in order, then the zero value
type queue[T any] struct {
	items []T
	next  int
}

func (q *queue[T]) push(values ...T) {
	q.items = append(q.items, values...)
}

func (q *queue[T]) pop() T {
	var zero T
	if q.next >= len(q.items) {
		return zero
	}
	v := q.items[q.next]
	q.next++
	return v
}

// MockRandom replays scripted results and records the ranges it was asked for
type MockRandom struct {
	mu        sync.Mutex
	ints      queue[int]
	strings   queue[string]
	intnCalls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued int, or 0 once the queue is drained
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnCalls = append(r.intnCalls, n)
	return r.ints.pop()
}

// String returns the next queued string, or "" once the queue is drained
func (r *MockRandom) String(_ int, _ string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.strings.pop()
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints.push(values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strings.push(values...)
}

// IntnCalls returns the n passed to each Intn call so far
func (r *MockRandom) IntnCalls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.intnCalls...)
}

// Reset clears all queued results and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = queue[int]{}
	r.strings = queue[string]{}
	r.intnCalls = nil
}
