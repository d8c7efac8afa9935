package bough

// Decision maps an opaque traversal input to the index of the child to
// descend into next. Returning a negative or out-of-range index is the
// documented "stop here" signal, not an error.
//
// Decision functions are expected to be pure and terminating. They receive
// the original input untouched; inspecting its shape (type switch, decode)
// is entirely up to the function body. This keeps the tree polymorphic over
// its value type only, so heterogeneous callers can share one engine.
type Decision func(input any) int

// Node is a single vertex of a decision tree. It holds an optional terminal
// value, an ordered list of children (the index space for its Decision), a
// human-readable description, and the diagnostic fields stamped by the last
// traversal that passed through it.
//
// Nodes are owned exclusively by the tree that contains them; sharing a node
// between parents or trees is not supported.
type Node[T any] struct {
	value       T
	description string
	decision    Decision
	children    []*Node[T]

	// Stamped in place by Traverse unless stamping is disabled.
	originalInput any
	effects       []string
}

// NewLeaf creates a node intended as a traversal endpoint. Its decision
// function yields -1 for every input, so the walk stops here even if
// children are wired in later.
func NewLeaf[T any](value T, description string) *Node[T] {
	return &Node[T]{
		value:       value,
		description: description,
		decision:    func(any) int { return -1 },
	}
}

// NewDecision creates a branching node. It carries no terminal value; its
// children are wired afterwards via Tree.AddChild, in the order the decision
// function's indices refer to.
func NewDecision[T any](decision Decision, description string) *Node[T] {
	return &Node[T]{
		description: description,
		decision:    decision,
	}
}

// Value returns the node's terminal value (the zero value if none was set).
func (n *Node[T]) Value() T { return n.value }

// Description returns the node's label. An empty description contributes
// nothing to the effects trace.
func (n *Node[T]) Description() string { return n.description }

// Decision returns the node's decision function.
func (n *Node[T]) Decision() Decision { return n.decision }

// Children returns the node's children in wiring order. The returned slice
// is the node's own; callers must not modify it.
func (n *Node[T]) Children() []*Node[T] { return n.children }

// OriginalInput returns the input of the most recent traversal that passed
// through this node, or nil if the node has never been visited (or the tree
// runs with stamping disabled).
func (n *Node[T]) OriginalInput() any { return n.originalInput }

// Effects returns the descriptions accumulated above (and, for branching
// nodes, including) this node during the most recent traversal that visited
// it. See Tree.Traverse for the exact accumulation point.
func (n *Node[T]) Effects() []string { return n.effects }
