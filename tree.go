package triekv

import "reflect"

// Tree is a persistent map from string keys to values.  The zero
// value is the empty tree.  Trees are immutable: Insert and Delete
// return a new Tree and leave the receiver untouched, sharing every
// subtree the mutation didn't walk through.  Two Trees are the same
// version exactly when Same reports true.
type Tree struct {
	root *node
	size int
}

// pathEntry records one cloned parent on the way down a key, so the
// reverse walk can relink it to the next-more-specific node.
type pathEntry struct {
	parent *node
	branch byte
}

// Same reports whether two Trees are the same version, i.e. share
// the same root node.  It is identity, not deep equality: two Trees
// built independently with the same contents are not Same.
func (t Tree) Same(o Tree) bool {
	return t.root == o.root
}

// Size returns the number of keys in the tree.
func (t Tree) Size() int {
	return t.size
}

// Lookup returns a pointer to the value stored under key, walking one
// branch per key byte.  It returns ok=false if any byte has no
// branch, if the terminal node holds no value, or if the stored value
// is not a T.  The returned pointer stays valid as long as the caller
// keeps a reference to the Tree (or a Store snapshot containing it).
func Lookup[T any](t Tree, key string) (*T, bool) {
	cur := t.root
	if cur == nil {
		return nil, false
	}
	for i := 0; i < len(key); i++ {
		cur = cur.children[key[i]]
		if cur == nil {
			return nil, false
		}
	}
	if !cur.hasValue {
		return nil, false
	}
	value, ok := cur.value.(*T)
	if !ok {
		return nil, false
	}
	return value, true
}

// Insert returns a new Tree with value stored under key, overwriting
// any prior value there.  Only the nodes along the key's path are
// cloned; every sibling subtree is shared with the receiver.
func Insert[T any](t Tree, key string, value T) Tree {
	var cur *node
	if t.root != nil {
		cur = t.root.clone()
	} else {
		cur = &node{}
	}
	path := make([]pathEntry, 0, len(key))
	for i := 0; i < len(key); i++ {
		b := key[i]
		path = append(path, pathEntry{cur, b})
		if child := cur.children[b]; child != nil {
			cur = child.clone()
		} else {
			cur = &node{}
		}
	}
	grew := 0
	if !cur.hasValue {
		grew = 1
	}
	cur.hasValue = true
	cur.value = &value
	for i := len(path) - 1; i >= 0; i-- {
		entry := path[i]
		entry.parent.setChild(entry.branch, cur)
		cur = entry.parent
	}
	return Tree{root: cur, size: t.size + grew}
}

// Delete returns a new Tree without key.  If key is absent (or its
// terminal node holds no value) the receiver is returned unchanged,
// with the same root node, so callers can detect the no-op with Same.
// Cloned nodes left with no children and no value are pruned on the
// way back up; deleting the last key yields the canonical empty Tree.
func (t Tree) Delete(key string) Tree {
	if t.root == nil {
		return t
	}
	cur := t.root.clone()
	root := cur
	path := make([]pathEntry, 0, len(key))
	for i := 0; i < len(key); i++ {
		b := key[i]
		child := cur.children[b]
		if child == nil {
			return t
		}
		next := child.clone()
		cur.setChild(b, next)
		path = append(path, pathEntry{cur, b})
		cur = next
	}
	if !cur.hasValue {
		return t
	}
	cur.hasValue = false
	cur.value = nil
	for i := len(path) - 1; i >= 0; i-- {
		entry := path[i]
		if entry.parent.children[entry.branch].isEmpty() {
			delete(entry.parent.children, entry.branch)
		}
	}
	if root.isEmpty() {
		return Tree{}
	}
	return Tree{root: root, size: t.size - 1}
}

// Iter walks the tree's entries in key order, invoking f with each
// key and its (dereferenced) value.  Iteration stops at the first
// error, which is returned.
func (t Tree) Iter(f func(key string, value interface{}) error) error {
	if t.root == nil {
		return nil
	}
	return t.root.iter(make([]byte, 0, 16), f)
}

func (n *node) iter(prefix []byte, f func(string, interface{}) error) error {
	if n.hasValue {
		if err := f(string(prefix), indirect(n.value)); err != nil {
			return err
		}
	}
	for _, b := range n.sortedBranches() {
		if err := n.children[b].iter(append(prefix, b), f); err != nil {
			return err
		}
	}
	return nil
}

// indirect unwraps the pointer a value slot holds, yielding the value
// the caller originally inserted.
func indirect(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}
