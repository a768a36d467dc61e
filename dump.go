package triekv

import (
	"fmt"
	"strings"
)

// debugString renders the tree's node structure for troubleshooting
// test failures.
func (t Tree) debugString() string {
	if t.root == nil {
		return "NIL\n"
	}
	var b strings.Builder
	b.WriteString("{\n")
	t.root.string(&b, "   ")
	b.WriteString("}\n")
	return b.String()
}

func (n *node) string(b *strings.Builder, indent string) {
	if n.hasValue {
		fmt.Fprintf(b, "%s= %v\n", indent, indirect(n.value))
	}
	for _, br := range n.sortedBranches() {
		fmt.Fprintf(b, "%s%q {\n", indent, br)
		n.children[br].string(b, indent+"   ")
		fmt.Fprintf(b, "%s}\n", indent)
	}
}
