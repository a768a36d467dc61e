package triekv

import (
	"fmt"
	"reflect"
)

// DiffFunc is invoked by Diff for every entry that differs between
// two versions.  added and removed are both true for entries whose
// values changed.  Returning keepGoing=false stops the iteration.
type DiffFunc func(added, removed bool, key string, addedValue, removedValue interface{}) (bool, error)

// Diff invokes f for every entry that is different from the given
// older tree.  Subtrees shared between the two versions are
// pointer-identical and are skipped wholesale, so the cost is
// proportional to the difference, not the tree size.
func (t Tree) Diff(old Tree, f DiffFunc) error {
	_, err := diffNodes(t.root, old.root, make([]byte, 0, 16), f)
	return err
}

func diffNodes(new, old *node, prefix []byte, f DiffFunc) (bool, error) {
	if new == old {
		return true, nil
	}
	newHas := new != nil && new.hasValue
	oldHas := old != nil && old.hasValue
	var keepGoing bool
	var err error
	switch {
	case newHas && !oldHas:
		keepGoing, err = f(true, false, string(prefix), indirect(new.value), nil)
	case !newHas && oldHas:
		keepGoing, err = f(false, true, string(prefix), nil, indirect(old.value))
	case newHas && oldHas && !reflect.DeepEqual(new.value, old.value):
		keepGoing, err = f(true, true, string(prefix), indirect(new.value), indirect(old.value))
	default:
		keepGoing = true
	}
	if err != nil {
		return false, fmt.Errorf("callback: %w", err)
	}
	if !keepGoing {
		return false, nil
	}
	for _, b := range unionBranches(new, old) {
		var newChild, oldChild *node
		if new != nil {
			newChild = new.children[b]
		}
		if old != nil {
			oldChild = old.children[b]
		}
		keepGoing, err = diffNodes(newChild, oldChild, append(prefix, b), f)
		if err != nil || !keepGoing {
			return keepGoing, err
		}
	}
	return true, nil
}

func unionBranches(new, old *node) []byte {
	seen := [256]bool{}
	n := 0
	if new != nil {
		for b := range new.children {
			seen[b] = true
			n++
		}
	}
	if old != nil {
		for b := range old.children {
			if !seen[b] {
				seen[b] = true
				n++
			}
		}
	}
	if n == 0 {
		return nil
	}
	branches := make([]byte, 0, n)
	for i := 0; i < 256; i++ {
		if seen[i] {
			branches = append(branches, byte(i))
		}
	}
	return branches
}
