package bough

import (
	"context"
	"fmt"
	"time"
)

// Traverse walks the tree for the given input and returns the trace of the
// walk. Starting at the root, it repeatedly evaluates the current node's
// decision function to pick the next child, until it reaches a node without
// children or the decision yields an out-of-range index (the deliberate
// stop signal). The terminal node's value is returned in Result.Value.
//
// The input is treated as an opaque reference throughout; nil is a legal
// input. ErrNoRoot is returned when the tree has no root.
//
// Effects accumulate lazily: a node's description joins the trace only at
// the moment a decision is about to be evaluated at that node. A pure leaf
// therefore never folds its own label into its own effects, while a
// branching node that stops early (invalid index) does.
//
// Unless the tree was built WithoutStamping, Traverse also records the
// input and the effects-so-far on every visited node, overwriting whatever
// a previous traversal left there. Last writer wins; concurrent traversals
// of a stamping tree require external synchronization.
func (t *Tree[T]) Traverse(ctx context.Context, input any) (*Result[T], error) {
	if t.root == nil {
		return nil, ErrNoRoot
	}

	start := time.Now()
	effects := make([]string, 0, 4)

	current := t.root
	t.stamp(current, input, effects)
	path := []*Node[T]{current}

	depth := 0
	t.emitEnter(ctx, current, depth)

	for len(current.children) > 0 {
		if current.description != "" {
			effects = append(effects, current.description)
			t.stampEffects(current, effects)
		}

		index := current.decision(input)
		if index < 0 || index >= len(current.children) {
			// Stop signal, not an error.
			t.logger.Debug("decision out of range, stopping",
				"index", index,
				"children", len(current.children),
				"depth", depth,
			)
			break
		}

		next := current.children[index]
		if next == nil {
			return nil, fmt.Errorf("child slot %d at depth %d: %w", index, depth, ErrNilChild)
		}

		t.emitLeave(ctx, current, depth, false, 0)

		current = next
		depth++
		t.stamp(current, input, effects)
		path = append(path, current)
		t.emitEnter(ctx, current, depth)
	}

	t.emitLeave(ctx, current, depth, true, time.Since(start))
	t.logger.Debug("traversal finished", "depth", depth, "effects", len(effects))

	return &Result[T]{
		Value:   current.value,
		Path:    path,
		Effects: effects,
	}, nil
}

// stamp records the traversal input and a snapshot of the effects
// accumulated so far on a node being visited.
func (t *Tree[T]) stamp(n *Node[T], input any, effects []string) {
	if !t.stamping {
		return
	}
	n.originalInput = input
	n.effects = snapshot(effects)
}

// stampEffects refreshes a node's effects snapshot after its own
// description joined the running trace.
func (t *Tree[T]) stampEffects(n *Node[T], effects []string) {
	if !t.stamping {
		return
	}
	n.effects = snapshot(effects)
}

func snapshot(effects []string) []string {
	out := make([]string, len(effects))
	copy(out, effects)
	return out
}
