/*
Package bloom implements the compact ancestor Bloom filter used by
package domtree to summarize a node's strict ancestors and by package vm
to reject whole subtrees before walking them.

Filter is a single 64-bit word offering three-bit inserts and exact-bit
membership tests with false positives but never false negatives. Filter256
is an optional four-lane variant for very deep trees; it folds down to a
Filter via ToCompact.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package bloom
