/*
Package bough is a small generic decision-tree engine: it walks a tree of
branching nodes for an arbitrary input, at each node evaluating a decision
function that maps the input to a child index, until a node with no further
step is reached, and returns that node's stored value together with an
explanation trace of the path taken.

# Concept

A tree is built from two kinds of nodes. Leaf nodes (NewLeaf) carry a
terminal value and always stop the walk. Decision nodes (NewDecision) carry
an opaque-input function that picks the next child by index; returning a
negative or out-of-range index stops the walk at that node. Nodes with a
description contribute it to the "effects" trace, the ordered list of labels
collected along the path, which doubles as a human-readable explanation of
why a given input ended up where it did.

The tree is generic over its value type only. Inputs are deliberately
untyped: different callers feed heterogeneous records through the same
engine, and each decision function knows how to inspect the shapes it cares
about.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/bough"
	)

	func main() {
		low := bough.NewLeaf("small", "")
		high := bough.NewLeaf("large", "")

		root := bough.NewDecision[string](func(input any) int {
			if n, ok := input.(int); ok && n > 5 {
				return 1
			}
			return 0
		}, "size check")

		tree := bough.New(root)
		tree.AddChild(root, low)
		tree.AddChild(root, high)

		res, err := tree.Traverse(context.Background(), 7)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Value)   // large
		fmt.Println(res.Effects) // [size check]
	}

# Concurrency

Traverse stamps diagnostic fields (OriginalInput, Effects) onto visited
nodes by default, so traversals of a shared tree must be serialized. Build
the tree with WithoutStamping to make concurrent traversals safe; the
per-call Result carries the full trace either way.
*/
package bough
