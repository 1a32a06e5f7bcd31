package kindex

// Expression is one equality predicate: Key bound to one of Values,
// either asserted (Positive) or negated.
type Expression struct {
	Key      BEField
	Values   Values
	Positive bool
}

// Conjunction is an ordered AND of Expressions.
type Conjunction struct {
	Expressions []Expression
}

// PositiveArity is the count of positive Expressions in the
// Conjunction — the scalar that selects its size-bucket (§3).
func (c *Conjunction) PositiveArity() int {
	n := 0
	for _, e := range c.Expressions {
		if e.Positive {
			n++
		}
	}
	return n
}

// Document is an ordered OR of Conjunctions: the document matches an
// Assignment iff at least one Conjunction is satisfied by it.
type Document struct {
	ID           DocID
	Conjunctions []*Conjunction
}
