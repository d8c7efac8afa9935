package bough

import (
	"io"
	"log/slog"
)

// Tree owns a root node and the traversal engine that walks it.
// Build one with New, wire nodes with AddChild, then call Traverse.
type Tree[T any] struct {
	root     *Node[T]
	logger   *slog.Logger
	hooks    LifecycleHooks
	stamping bool
}

// Option defines a functional option for configuring a Tree.
// Options are value-type agnostic so they can be passed to New without
// explicit instantiation.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	hooks    LifecycleHooks
	stamping bool
}

// WithLogger sets a custom structured logger for the tree.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithoutStamping disables the in-place OriginalInput/Effects stamping on
// nodes. Traverse then leaves nodes untouched and reports exclusively
// through its Result, which makes concurrent traversals of a shared tree
// safe without external synchronization.
func WithoutStamping() Option {
	return func(c *config) {
		c.stamping = false
	}
}

// New creates a tree rooted at root. A nil root is allowed (the tree is
// then unusable until one is set); Traverse reports it as ErrNoRoot.
func New[T any](root *Node[T], opts ...Option) *Tree[T] {
	cfg := config{stamping: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Tree[T]{
		root:     root,
		logger:   cfg.logger,
		hooks:    cfg.hooks,
		stamping: cfg.stamping,
	}
}

// Root returns the tree's root node, or nil if none is configured.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// SetRoot installs the root node. Intended for setup only; replacing the
// root of a tree that is being traversed is not supported.
func (t *Tree[T]) SetRoot(root *Node[T]) {
	t.root = root
}

// AddChild appends child to parent's children sequence. The new child
// occupies the next index of the parent's decision space.
//
// Historical contract, kept on purpose: a nil parent makes the call a
// silent no-op, while a nil child IS appended and occupies an index. The
// failure for a nil slot is deferred to the first traversal whose decision
// selects it, which then returns ErrNilChild instead of panicking. Callers
// that want eager rejection should validate before wiring.
func (t *Tree[T]) AddChild(parent, child *Node[T]) {
	if parent == nil {
		t.logger.Debug("add child skipped, nil parent")
		return
	}
	if child == nil {
		t.logger.Debug("nil child wired", "slot", len(parent.children))
	}
	parent.children = append(parent.children, child)
}
