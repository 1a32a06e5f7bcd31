// Package util carries the small, dependency-free helpers the kindex
// packages share — panic guards, generic integer casts, and JSON debug
// dumps — adapted from the teacher's own util package.
package util

import "fmt"

// PanicIf panics with a formatted error when cond is true. Callers are
// responsible for only using this for programmer errors (e.g. a
// duplicate field in one conjunction), never for data-dependent
// failures — those must return an error instead.
func PanicIf(cond bool, format string, v ...interface{}) {
	if !cond {
		return
	}
	panic(fmt.Errorf(format, v...))
}

// PanicIfErr panics, wrapping err, when err is not nil.
func PanicIfErr(err error, format string, v ...interface{}) {
	if err == nil {
		return
	}
	panic(fmt.Errorf(format+": %w", append(v, err)...))
}
