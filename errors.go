package bough

import "errors"

// ErrNoRoot is returned by Traverse when the tree has no root configured.
// This is a programming error on the caller's side, not a runtime condition.
var ErrNoRoot = errors.New("no root configured")

// ErrNilChild is returned when a decision selects a child slot that holds a
// nil node. AddChild accepts nil children by design (see its doc); the
// failure surfaces here, at the first traversal that picks the empty slot.
var ErrNilChild = errors.New("nil child selected")
