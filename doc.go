// Package kindex implements the Indexigo/K-index algorithm: conjunctive
// normal form matching of documents (disjunctions of conjunctions of
// positive/negative equality predicates) against a query assignment.
//
// A corpus is built once with NewIndexer and retrieved from any number
// of times afterward with Indexer.Retrieve; there is no update or
// delete after build. The hard part lives in entry.go (the packed
// posting key), posting_list.go/posting_list_group.go (the merge
// cursors) and indexer.go (the k-of-k zig-zag join).
package kindex
