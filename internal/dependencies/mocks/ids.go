package mocks

import (
	"fmt"

	"github.com/mcoot/pickleplanner/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// Queue is returned in order before falling back to Prefix-N ids
	Queue  []string
	Prefix string
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs producing "<prefix>-1", "<prefix>-2", ...
func NewMockIDs(prefix string) *MockIDs {
	return &MockIDs{Prefix: prefix}
}

// NewID returns the next queued id, or the next sequential id
func (g *MockIDs) NewID() string {
	if len(g.Queue) > 0 {
		id := g.Queue[0]
		g.Queue = g.Queue[1:]
		return id
	}
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}

// QueueIDs adds ids to return before sequential ones
func (g *MockIDs) QueueIDs(values ...string) {
	g.Queue = append(g.Queue, values...)
}
