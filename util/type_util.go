package util

// Integer is the set of types CastIntegers/CastInteger accept. The ~
// forms admit defined types with an integer underlying type (DocID,
// BEField-adjacent ids, …), not just the predeclared types themselves.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint | ~uint64
}

// CastIntegers widens or narrows every element of from to T.
func CastIntegers[F Integer, T Integer](from []F) []T {
	res := make([]T, len(from))
	for i, e := range from {
		res[i] = T(e)
	}
	return res
}

// CastInteger widens or narrows a single value to T.
func CastInteger[F Integer, T Integer](from F) T {
	return T(from)
}

// DistinctInt64 drops duplicate values, preserving no particular order.
func DistinctInt64(vs []int64) (res []int64) {
	seen := make(map[int64]struct{}, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
