package kindex

// Assignment is the query side: a set of attribute-to-values bindings.
// Size is an upper bound on the number of distinct keys Trigger will
// present; Trigger invokes cb once per bound attribute with a single,
// uniformly-typed Values (the callback/visitor shape the original
// algorithm uses, re-architected per Design Notes §9 as a plain Go
// callback rather than a C++ iterator pair).
type Assignment interface {
	Size() int
	Trigger(cb func(field BEField, values Values))
}

// MapAssignment is the default Assignment: a plain map from field to
// its bound Values, mirroring the teacher's Assignments map[BEField]Values.
type MapAssignment map[BEField]Values

// Size counts fields with at least one bound value.
func (a MapAssignment) Size() int {
	n := 0
	for _, v := range a {
		if v != nil && v.Len() > 0 {
			n++
		}
	}
	return n
}

// Trigger invokes cb once per non-empty binding.
func (a MapAssignment) Trigger(cb func(field BEField, values Values)) {
	for field, v := range a {
		if v == nil || v.Len() == 0 {
			continue
		}
		cb(field, v)
	}
}
