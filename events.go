package bough

import (
	"context"
	"time"
)

// NodeEvent describes a single node visit during traversal.
type NodeEvent struct {
	Timestamp   time.Time     `json:"timestamp"`
	Description string        `json:"description"`
	Depth       int           `json:"depth"`
	Terminal    bool          `json:"terminal,omitempty"`
	Elapsed     time.Duration `json:"elapsed,omitempty"` // set on the terminal leave event
}

// LifecycleHooks defines callbacks for traversal observability.
// Hooks run synchronously on the traversing goroutine; keep them cheap.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnNodeLeave func(context.Context, *NodeEvent)
}

func (t *Tree[T]) emitEnter(ctx context.Context, n *Node[T], depth int) {
	if t.hooks.OnNodeEnter == nil {
		return
	}
	t.hooks.OnNodeEnter(ctx, &NodeEvent{
		Timestamp:   time.Now(),
		Description: n.description,
		Depth:       depth,
	})
}

func (t *Tree[T]) emitLeave(ctx context.Context, n *Node[T], depth int, terminal bool, elapsed time.Duration) {
	if t.hooks.OnNodeLeave == nil {
		return
	}
	t.hooks.OnNodeLeave(ctx, &NodeEvent{
		Timestamp:   time.Now(),
		Description: n.description,
		Depth:       depth,
		Terminal:    terminal,
		Elapsed:     elapsed,
	})
}
