package triekv

import "sort"

// node is one trie node.  A node is never modified once it is
// reachable from a published Tree; mutation always goes through clone.
// The value slot holds a pointer to the caller's value type so that
// nodes carrying values of different types can coexist in one tree,
// with the concrete type checked again at lookup time.
type node struct {
	children map[byte]*node
	hasValue bool
	value    interface{}
}

// clone returns a copy with a fresh children map.  Child nodes
// themselves are shared, not copied; the value slot is carried over
// as-is so the copy keeps the original's dynamic value type.
func (n *node) clone() *node {
	copied := &node{
		hasValue: n.hasValue,
		value:    n.value,
	}
	if len(n.children) > 0 {
		copied.children = make(map[byte]*node, len(n.children))
		for b, child := range n.children {
			copied.children[b] = child
		}
	}
	return copied
}

// setChild links a child under the given branch byte.  Only legal on
// nodes that have not been published yet.
func (n *node) setChild(b byte, child *node) {
	if n.children == nil {
		n.children = make(map[byte]*node, 1)
	}
	n.children[b] = child
}

// isEmpty reports whether the node carries neither children nor a
// value, i.e. whether it can be pruned.
func (n *node) isEmpty() bool {
	return len(n.children) == 0 && !n.hasValue
}

// sortedBranches returns the node's branch bytes in ascending order,
// for deterministic iteration.
func (n *node) sortedBranches() []byte {
	if len(n.children) == 0 {
		return nil
	}
	branches := make([]byte, 0, len(n.children))
	for b := range n.children {
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i] < branches[j] })
	return branches
}
