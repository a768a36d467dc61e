package triekv

// ValueHandle pairs a value retrieved from a Store with the snapshot
// it came from.  The handle keeps that snapshot's node graph
// reachable, so the pointer returned by Deref stays valid for as long
// as the caller holds the handle, regardless of how many newer
// versions have been committed since.
type ValueHandle[T any] struct {
	tree  Tree
	value *T
}

// Deref returns the referenced value.
func (h ValueHandle[T]) Deref() *T {
	return h.value
}

// Snapshot returns the Tree version the value was read from.
func (h ValueHandle[T]) Snapshot() Tree {
	return h.tree
}
