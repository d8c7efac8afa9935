package bough

// Result is the traversal-scoped trace returned by Traverse. Unlike the
// fields stamped onto nodes, a Result belongs to a single call and is safe
// to hold on to regardless of later traversals of the same tree.
type Result[T any] struct {
	// Value is the terminal node's stored value. It is the zero value when
	// the terminal node was constructed without one; that is a legitimate
	// outcome, not an error.
	Value T

	// Path holds every visited node, root first, terminal last.
	Path []*Node[T]

	// Effects is the ordered description trace accumulated along the path.
	// A node's description enters the trace only when a decision was about
	// to be evaluated at it, so a terminal leaf's own label never appears.
	Effects []string
}

// Terminal returns the node the traversal stopped at.
func (r *Result[T]) Terminal() *Node[T] {
	if len(r.Path) == 0 {
		return nil
	}
	return r.Path[len(r.Path)-1]
}

// Labels returns the non-empty descriptions of the visited nodes in path
// order. Unlike Effects, this includes the terminal node's label, which
// makes it the natural choice for display and persistence.
func (r *Result[T]) Labels() []string {
	labels := make([]string, 0, len(r.Path))
	for _, n := range r.Path {
		if n.description != "" {
			labels = append(labels, n.description)
		}
	}
	return labels
}
