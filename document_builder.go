package kindex

import (
	"fmt"

	"github.com/kindexio/kindex/util"
)

// NewDocument creates an empty Document ready for AddConjunction.
func NewDocument(id DocID) *Document {
	return &Document{ID: id}
}

// AddConjunction appends one or more Conjunctions — disjuncts — to the
// Document.
func (d *Document) AddConjunction(cons ...*Conjunction) *Document {
	d.Conjunctions = append(d.Conjunctions, cons...)
	return d
}

// NewConjunction creates an empty Conjunction ready for In/NotIn.
func NewConjunction() *Conjunction {
	return &Conjunction{}
}

// In appends a positive Expression: the conjunction requires field to
// be bound by the assignment to one of values.
func (c *Conjunction) In(field BEField, values Values) *Conjunction {
	return c.addExpression(field, true, values)
}

// NotIn appends a negative Expression: the conjunction is excluded if
// the assignment binds field to any of values.
func (c *Conjunction) NotIn(field BEField, values Values) *Conjunction {
	return c.addExpression(field, false, values)
}

func (c *Conjunction) addExpression(field BEField, positive bool, values Values) *Conjunction {
	for _, e := range c.Expressions {
		util.PanicIf(e.Key == field, "kindex: field %q already present in this conjunction", field)
	}
	c.Expressions = append(c.Expressions, Expression{
		Key:      field,
		Values:   values,
		Positive: positive,
	})
	return c
}

// DocumentBuilder accumulates Documents before a single NewIndexer
// call — a convenience over constructing the []*Document slice by
// hand, not an incremental-update path: nothing it produces can be fed
// back into an already-built Indexer.
type DocumentBuilder struct {
	docs []*Document
}

// NewDocumentBuilder returns an empty DocumentBuilder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// Add appends doc, panicking on a nil Document (a programmer error, not
// a data condition — matches the teacher's IndexerBuilder.AddDocument).
func (b *DocumentBuilder) Add(doc *Document) *DocumentBuilder {
	if doc == nil {
		panic(fmt.Errorf("kindex: nil document not allowed"))
	}
	b.docs = append(b.docs, doc)
	return b
}

// Len reports how many documents have been accumulated so far.
func (b *DocumentBuilder) Len() int {
	return len(b.docs)
}

// Documents returns the accumulated documents. The builder retains no
// reference to the returned slice's backing array after this call.
func (b *DocumentBuilder) Documents() []*Document {
	docs := b.docs
	b.docs = nil
	return docs
}
