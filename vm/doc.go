/*
Package vm executes compiled selector.Program bytecode against a
domtree.Tree.

Execution runs right to left: the program's first instructions test the
candidate node itself, and combinator opcodes walk the current node up
or across the tree before the next compound's tests run. COMB_CHILD and
COMB_ADJACENT move to a single candidate and fail outright if it doesn't
exist; COMB_SIBLING tries every preceding element sibling in turn and
succeeds on the first one that matches; COMB_DESCENDANT walks up to 32 ancestors,
trying the remainder of the program against each in turn and succeeding
on the first one that matches. This backtrack limit is a deliberate
trade-off: trees deeper than 32 ancestors can under-match a descendant
combinator with no preceding Bloom pre-check, a known and documented
limitation rather than an oversight.

The VM never panics. Any malformed opcode, out-of-range operand, or
program that runs off the end of its byte slice without reaching
MATCH_SUCCESS is treated as an ordinary non-match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package vm
