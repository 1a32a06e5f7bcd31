package parser

import (
	"strconv"

	"github.com/kindexio/kindex/util"
)

// ParseValues turns a Token's raw strings into a kindex-compatible
// value list: IntValues if every element parses as a base-10 int64,
// StrValues otherwise. Mirrors the teacher's CommonStrParser fallback
// from numeric to string allocation, minus the id-allocator indirection
// kindex has no use for. Duplicate int values within one clause (e.g.
// "age=3,3,4") are deduplicated, matching a membership predicate's set
// semantics — repeating a value can't change what it matches.
func ParseValues(raw []string) (ints []int64, strs []string, isInt bool) {
	ints = make([]int64, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, raw, false
		}
		ints = append(ints, n)
	}
	return util.DistinctInt64(ints), nil, true
}
