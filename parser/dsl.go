package parser

import "github.com/kindexio/kindex"

// ParseConjunction builds one *kindex.Conjunction from a DSL string
// such as "tag=1,2,3;city!=bj,sh". An optional entry point — the
// In/NotIn chaining on kindex.Conjunction remains the primary API.
func ParseConjunction(dsl string) (*kindex.Conjunction, error) {
	tokens, err := Tokenize(dsl)
	if err != nil {
		return nil, err
	}
	conj := kindex.NewConjunction()
	for _, tok := range tokens {
		ints, strs, isInt := ParseValues(tok.Raw)
		var values kindex.Values
		if isInt {
			values = kindex.Ints(ints...)
		} else {
			values = kindex.Strs(strs...)
		}
		if tok.Positive {
			conj.In(kindex.BEField(tok.Field), values)
		} else {
			conj.NotIn(kindex.BEField(tok.Field), values)
		}
	}
	return conj, nil
}
