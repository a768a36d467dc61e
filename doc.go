/*
Package triekv provides a persistent (immutable, versioned) trie-based
key-value store.  Every mutation yields a new Tree that shares all
unmodified subtrees with its predecessor, so keeping many historical
versions around is cheap.  A Store collects those Trees into an
append-only sequence of numbered snapshots that any number of readers
can query concurrently while a single writer advances to the next
version.

Trees

A Tree maps string keys to values of any type.  Lookup, Insert and
Delete are pure: they never modify the receiver, and Insert/Delete
return a new Tree built by cloning only the nodes along the key's
path ("path copy").  Two Trees are the same version exactly when their
roots are the same node.

Values are stored type-erased, so one Tree can hold values of
different types under different keys.  Lookup is parameterized by the
expected type; asking for the wrong type behaves the same as a missing
key.

Concurrency

Everything reachable from a published Tree is immutable, so readers
traverse without any locking.  The Store serializes writers with a
mutex and guards only the snapshot sequence's length with an RWMutex;
a reader holds it just long enough to turn a version number into a
Tree reference.  A ValueHandle returned by a store lookup keeps its
snapshot's node graph reachable for as long as the caller holds it.

Inspiration

The design follows the persistent data structures of Clojure and
Haskell, and the copy-on-write tries used by database buffer managers
to publish index snapshots without blocking readers.
*/
package triekv
