package kindex

import "fmt"

// ErrTypeDomain reports an Expression or Assignment value of a type
// other than int64 or string (§7). Values' two concrete arms make this
// largely unreachable through the public API, but Assignment
// implementations the caller supplies are not statically checked, so
// the error still has call sites — see InvertedIndex.AddEntry and
// InvertedIndex.Trigger.
type ErrTypeDomain struct {
	Field BEField
	Got   interface{}
}

func (e *ErrTypeDomain) Error() string {
	return fmt.Sprintf("kindex: field %q: unsupported value type %T", e.Field, e.Got)
}

// Is reports a match against any *ErrTypeDomain, regardless of Field/Got,
// so callers can write errors.Is(err, &ErrTypeDomain{}) instead of a type
// assertion.
func (e *ErrTypeDomain) Is(target error) bool {
	_, ok := target.(*ErrTypeDomain)
	return ok
}

// ErrIndexOverflow reports a docId or conjIndex that does not fit the
// packed Entry layout's field widths (§3, §7).
type ErrIndexOverflow struct {
	DocID     DocID
	ConjIndex int
}

func (e *ErrIndexOverflow) Error() string {
	return fmt.Sprintf("kindex: entry overflow: docId=%d conjIndex=%d exceeds packed field widths (max docId=%d, max conjIndex=%d)",
		e.DocID, e.ConjIndex, MaxDocID, MaxConjIndex)
}

// Is reports a match against any *ErrIndexOverflow, regardless of the
// offending DocID/ConjIndex, so callers can write
// errors.Is(err, &ErrIndexOverflow{}) instead of a type assertion.
func (e *ErrIndexOverflow) Is(target error) bool {
	_, ok := target.(*ErrIndexOverflow)
	return ok
}
