// Package domain holds the shared types of the persistence and transport
// surfaces around the bough engine. The engine itself (nodes, trees,
// traversal) lives in the root package; this package only describes what a
// finished traversal looks like once detached from live node pointers.
package domain
