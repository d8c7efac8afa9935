// Package recommend is a sample consumer of the bough engine: a small
// vacation recommender keyed on a traveler preference record. It lives
// outside the engine on purpose — the core knows nothing about preferences,
// seasons or budgets, it only runs the decision functions defined here.
package recommend

import (
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/bough"
)

// Preferences is the input record the vacation tree decides on.
type Preferences struct {
	Season  string  `json:"season" yaml:"season" mapstructure:"season"`
	Budget  float64 `json:"budget" yaml:"budget" mapstructure:"budget"`
	Party   int     `json:"party" yaml:"party" mapstructure:"party"`
	Outdoor bool    `json:"outdoor" yaml:"outdoor" mapstructure:"outdoor"`
}

// decode normalizes the opaque traversal input into a Preferences record.
// Accepts the typed record (by value or pointer) and map[string]any, which
// is how JSON bodies arrive through the HTTP adapter. WeakDecode tolerates
// JSON's numeric widening (float64 for ints).
func decode(input any) (Preferences, bool) {
	switch v := input.(type) {
	case Preferences:
		return v, true
	case *Preferences:
		if v == nil {
			return Preferences{}, false
		}
		return *v, true
	case map[string]any:
		var p Preferences
		if err := mapstructure.WeakDecode(v, &p); err != nil {
			return Preferences{}, false
		}
		return p, true
	default:
		return Preferences{}, false
	}
}

const (
	warmBranch = iota
	coldBranch
)

// Build constructs the vacation tree. The returned tree accepts the input
// shapes documented on decode; anything else stops at the root and yields
// an empty recommendation.
func Build(opts ...bough.Option) *bough.Tree[string] {
	root := bough.NewDecision[string](func(input any) int {
		p, ok := decode(input)
		if !ok {
			return -1
		}
		switch p.Season {
		case "spring", "summer":
			return warmBranch
		case "autumn", "fall", "winter":
			return coldBranch
		default:
			return -1
		}
	}, "checked the season")

	tree := bough.New(root, opts...)

	// Warm seasons: budget first, then indoor/outdoor taste.
	warm := bough.NewDecision[string](func(input any) int {
		p, _ := decode(input)
		switch {
		case p.Budget < 500:
			return 0
		case p.Budget < 2000:
			return 1
		default:
			return 2
		}
	}, "checked the budget")

	warmMid := bough.NewDecision[string](func(input any) int {
		p, _ := decode(input)
		if p.Outdoor {
			return 0
		}
		return 1
	}, "weighed outdoor preference")

	tree.AddChild(root, warm)
	tree.AddChild(warm, bough.NewLeaf("camping by the lake", "budget pick"))
	tree.AddChild(warm, warmMid)
	tree.AddChild(warm, bough.NewLeaf("island hopping in Greece", "premium pick"))
	tree.AddChild(warmMid, bough.NewLeaf("beach resort on the coast", "outdoor pick"))
	tree.AddChild(warmMid, bough.NewLeaf("city break with museums", "indoor pick"))

	// Cold seasons: group size matters before budget.
	cold := bough.NewDecision[string](func(input any) int {
		p, _ := decode(input)
		if p.Party > 4 {
			return 0
		}
		return 1
	}, "counted the party")

	coldSmall := bough.NewDecision[string](func(input any) int {
		p, _ := decode(input)
		if p.Budget < 800 {
			return 0
		}
		if p.Outdoor {
			return 1
		}
		return 2
	}, "checked the budget")

	tree.AddChild(root, cold)
	tree.AddChild(cold, bough.NewLeaf("big cabin weekend", "group pick"))
	tree.AddChild(cold, coldSmall)
	tree.AddChild(coldSmall, bough.NewLeaf("hostel city hop", "budget pick"))
	tree.AddChild(coldSmall, bough.NewLeaf("ski week in the Alps", "outdoor pick"))
	tree.AddChild(coldSmall, bough.NewLeaf("spa retreat in the mountains", "indoor pick"))

	return tree
}
