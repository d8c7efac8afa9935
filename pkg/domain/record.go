package domain

import "time"

// TraceRecord is the serializable snapshot of a single traversal, suitable
// for persistence and transport. It captures what the caller asked, where
// the walk ended, and the explanation trace — never the tree itself.
type TraceRecord struct {
	// ID identifies the traversal (assigned by the caller or the store).
	ID string `json:"id"`

	// Input is the raw input object that produced the path.
	Input any `json:"input,omitempty"`

	// Value is the terminal node's stored value.
	Value any `json:"value,omitempty"`

	// Effects is the ordered description trace accumulated along the path.
	Effects []string `json:"effects,omitempty"`

	// Path holds the labels of the visited nodes, root first.
	Path []string `json:"path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
