package kindex

import (
	"errors"
	"sync"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func retrieveIDs(t *testing.T, ix *Indexer, a Assignment) DocIDList {
	ids, err := ix.RetrieveIDs(a)
	convey.So(err, convey.ShouldBeNil)
	return ids
}

func TestIndexerScenarioSinglePositiveMatch(t *testing.T) {
	convey.Convey("scenario 1: single positive match", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(NewConjunction().In("a", Ints(3))),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(3)}), convey.ShouldResemble, DocIDList{0})
	})
}

func TestIndexerScenarioPositiveMiss(t *testing.T) {
	convey.Convey("scenario 2: positive miss on value mismatch", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(NewConjunction().In("a", Ints(3))),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(4)}), convey.ShouldBeEmpty)
	})
}

func TestIndexerScenarioTwoOfTwoConjunction(t *testing.T) {
	convey.Convey("scenario 3: two-of-two conjunction", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(
				NewConjunction().In("a", Ints(3)).In("b", Strs("y")),
			),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(3), "b": Strs("y")}), convey.ShouldResemble, DocIDList{0})
		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(3), "b": Strs("z")}), convey.ShouldBeEmpty)
	})
}

func TestIndexerScenarioNegativeExclusion(t *testing.T) {
	convey.Convey("scenario 4: negative exclusion", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(
				NewConjunction().In("a", Ints(3)).NotIn("b", Strs("y")),
			),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(3), "b": Strs("y")}), convey.ShouldBeEmpty)
		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(3), "b": Strs("x")}), convey.ShouldResemble, DocIDList{0})
	})
}

func TestIndexerScenarioZeroArityConjunction(t *testing.T) {
	convey.Convey("scenario 5: zero-arity conjunction", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(
				NewConjunction().NotIn("a", Ints(3)),
			),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(4)}), convey.ShouldResemble, DocIDList{0})
		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(3)}), convey.ShouldBeEmpty)
	})
}

func TestIndexerScenarioDisjunctionAcrossConjunctions(t *testing.T) {
	convey.Convey("scenario 6: disjunction across conjunctions", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(
				NewConjunction().In("a", Ints(1)),
				NewConjunction().In("b", Strs("y")),
			),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(1), "b": Strs("z")}), convey.ShouldResemble, DocIDList{0})
		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(2), "b": Strs("y")}), convey.ShouldResemble, DocIDList{0})
		convey.So(retrieveIDs(t, ix, MapAssignment{"a": Ints(2), "b": Strs("z")}), convey.ShouldBeEmpty)
	})
}

func TestIndexerZeroArityWithNoOtherBucket(t *testing.T) {
	convey.Convey("a document with only a vacuous zero-arity conjunction always matches", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(NewConjunction()),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(retrieveIDs(t, ix, MapAssignment{}), convey.ShouldResemble, DocIDList{0})
		convey.So(retrieveIDs(t, ix, MapAssignment{"anything": Ints(1)}), convey.ShouldResemble, DocIDList{0})
	})
}

func TestIndexerCompletenessAcrossDocuments(t *testing.T) {
	convey.Convey("every satisfying document is emitted, with duplicate-free set semantics", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(NewConjunction().In("a", Ints(1))),
			NewDocument(1).AddConjunction(NewConjunction().In("a", Ints(1)).In("b", Strs("y"))),
			NewDocument(2).AddConjunction(NewConjunction().In("a", Ints(2))),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		ids := retrieveIDs(t, ix, MapAssignment{"a": Ints(1), "b": Strs("y")})
		convey.So(ids, convey.ShouldResemble, DocIDList{0, 1})
	})
}

func TestIndexerOverflow(t *testing.T) {
	convey.Convey("a docID beyond MaxDocID is rejected", t, func() {
		docs := []*Document{
			NewDocument(MaxDocID + 1).AddConjunction(NewConjunction().In("a", Ints(1))),
		}
		_, err := NewIndexer(docs)
		convey.So(errors.Is(err, &ErrIndexOverflow{}), convey.ShouldBeTrue)
	})

	convey.Convey("a conjIndex beyond MaxConjIndex is rejected", t, func() {
		cons := make([]*Conjunction, MaxConjIndex+2)
		for i := range cons {
			cons[i] = NewConjunction().In("a", Ints(1))
		}
		docs := []*Document{
			NewDocument(0).AddConjunction(cons...),
		}
		_, err := NewIndexer(docs)
		convey.So(errors.Is(err, &ErrIndexOverflow{}), convey.ShouldBeTrue)
	})
}

func TestIndexerTypeDomainError(t *testing.T) {
	convey.Convey("an Assignment implementation presenting an unsupported Values type errors out", t, func() {
		docs := []*Document{
			NewDocument(0).AddConjunction(NewConjunction().In("a", Ints(1))),
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		bad := badAssignment{}
		_, err = ix.RetrieveIDs(bad)
		convey.So(errors.Is(err, &ErrTypeDomain{}), convey.ShouldBeTrue)
	})
}

type badAssignment struct{}

func (badAssignment) Size() int { return 1 }
func (badAssignment) Trigger(cb func(field BEField, values Values)) {
	cb("a", nil)
}

func TestIndexerConcurrentRetrieve(t *testing.T) {
	convey.Convey("concurrent Retrieve calls against one Indexer match sequential results", t, func() {
		docs := make([]*Document, 0, 64)
		for i := 0; i < 64; i++ {
			docs = append(docs, NewDocument(DocID(i)).AddConjunction(
				NewConjunction().In("a", Ints(int64(i%8))).In("b", Strs("y")),
			))
		}
		ix, err := NewIndexer(docs)
		convey.So(err, convey.ShouldBeNil)

		assignment := MapAssignment{"a": Ints(3), "b": Strs("y")}
		want := retrieveIDs(t, ix, assignment)

		var wg sync.WaitGroup
		results := make([]DocIDList, 16)
		for g := 0; g < 16; g++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				ids, err := ix.RetrieveIDs(assignment)
				if err == nil {
					results[idx] = ids
				}
			}(g)
		}
		wg.Wait()

		for _, got := range results {
			convey.So(got, convey.ShouldResemble, want)
		}
	})
}
