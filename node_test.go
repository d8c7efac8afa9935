package bough_test

import (
	"testing"

	"github.com/aretw0/bough"
)

func TestNewLeaf(t *testing.T) {
	leaf := bough.NewLeaf("beach", "sunny pick")

	if leaf.Value() != "beach" {
		t.Errorf("Expected value 'beach', got %q", leaf.Value())
	}
	if leaf.Description() != "sunny pick" {
		t.Errorf("Expected description 'sunny pick', got %q", leaf.Description())
	}
	if len(leaf.Children()) != 0 {
		t.Errorf("Expected no children, got %d", len(leaf.Children()))
	}
	if leaf.OriginalInput() != nil {
		t.Errorf("Expected unset original input, got %v", leaf.OriginalInput())
	}
	if len(leaf.Effects()) != 0 {
		t.Errorf("Expected empty effects, got %v", leaf.Effects())
	}

	// The leaf decision must refuse to descend for any input shape.
	for _, input := range []any{nil, 0, 42, "text", []int{1, 2}, map[string]any{"k": "v"}} {
		if idx := leaf.Decision()(input); idx >= 0 {
			t.Errorf("Leaf decision returned valid index %d for input %v", idx, input)
		}
	}
}

func TestNewDecision(t *testing.T) {
	node := bough.NewDecision[int](func(any) int { return 0 }, "pick first")

	if node.Value() != 0 {
		t.Errorf("Expected zero value on decision node, got %d", node.Value())
	}
	if node.Description() != "pick first" {
		t.Errorf("Unexpected description %q", node.Description())
	}
	if len(node.Children()) != 0 {
		t.Errorf("Expected no children before wiring, got %d", len(node.Children()))
	}
}

func TestAddChild(t *testing.T) {
	t.Run("Ordering", func(t *testing.T) {
		root := bough.NewDecision[string](func(any) int { return 0 }, "")
		tree := bough.New(root)

		first := bough.NewLeaf("first", "")
		second := bough.NewLeaf("second", "")
		tree.AddChild(root, first)
		tree.AddChild(root, second)

		children := root.Children()
		if len(children) != 2 {
			t.Fatalf("Expected 2 children, got %d", len(children))
		}
		if children[0] != first || children[1] != second {
			t.Error("Children not stored in wiring order")
		}
	})

	t.Run("Nil Parent Is NoOp", func(t *testing.T) {
		root := bough.NewDecision[string](func(any) int { return 0 }, "")
		tree := bough.New(root)

		tree.AddChild(nil, bough.NewLeaf("orphan", ""))

		if len(root.Children()) != 0 {
			t.Errorf("Nil-parent AddChild mutated the tree: %d children", len(root.Children()))
		}
	})

	t.Run("Nil Child Is Stored", func(t *testing.T) {
		root := bough.NewDecision[string](func(any) int { return 0 }, "")
		tree := bough.New(root)

		tree.AddChild(root, nil)

		if len(root.Children()) != 1 {
			t.Fatalf("Expected the nil child to occupy a slot, got %d children", len(root.Children()))
		}
		if root.Children()[0] != nil {
			t.Error("Expected slot 0 to hold nil")
		}
	})
}
