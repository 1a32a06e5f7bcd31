package kindex

import "github.com/kindexio/kindex/util"

// Values is an Expression's or Assignment's value list: either
// uniformly int64 or uniformly string. It is modeled as a sum type with
// two arms rather than []interface{} so that a mixed-type list cannot
// be constructed in the first place — Design Notes §9 ("Variant
// predicate values").
type Values interface {
	// Len reports how many values are carried.
	Len() int

	isValues()
}

// IntValues is the integer arm of Values.
type IntValues []int64

func (v IntValues) Len() int { return len(v) }
func (IntValues) isValues()  {}

// StrValues is the string arm of Values.
type StrValues []string

func (v StrValues) Len() int { return len(v) }
func (StrValues) isValues()  {}

// Ints constructs an IntValues from int64 arguments; IntsFrom accepts
// slices of other integer types.
func Ints(vs ...int64) IntValues {
	return IntValues(vs)
}

// Strs constructs a StrValues.
func Strs(vs ...string) StrValues {
	return StrValues(vs)
}

// IntsFrom constructs an IntValues from a slice of any integer type,
// widening or narrowing every element to int64 — a convenience for
// callers whose own ids are typed as something other than int64
// (e.g. int, int32).
func IntsFrom[T util.Integer](vs []T) IntValues {
	return IntValues(util.CastIntegers[T, int64](vs))
}
