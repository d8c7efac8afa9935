package bough_test

import (
	"context"
	"fmt"

	"github.com/aretw0/bough"
)

// Demonstrates building a small tree and reading the explanation trace.
func Example() {
	cheap := bough.NewLeaf("street food", "")
	fancy := bough.NewLeaf("tasting menu", "")

	root := bough.NewDecision[string](func(input any) int {
		budget, ok := input.(float64)
		if !ok {
			return -1
		}
		if budget >= 100 {
			return 1
		}
		return 0
	}, "checked the budget")

	tree := bough.New(root)
	tree.AddChild(root, cheap)
	tree.AddChild(root, fancy)

	res, err := tree.Traverse(context.Background(), 25.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Value)
	fmt.Println(res.Effects)
	// Output:
	// street food
	// [checked the budget]
}
