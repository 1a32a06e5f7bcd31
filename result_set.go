package kindex

import (
	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/kindexio/kindex/util"
)

// ResultCollector is the sink Indexer.Retrieve populates (§4.7,
// generalized by SPEC_FULL §4.10 so callers can plug in their own
// sink — mirrors the teacher's ResultCollector/DocIDCollector split).
type ResultCollector interface {
	Add(docID DocID)
	Contains(docID DocID) bool
	Each(func(DocID))
	Len() int
}

// RoaringResultSet is the default ResultCollector: a roaring64 bitmap
// of matched document ids, exactly as the teacher's DocIDCollector
// wraps the same bitmap type. Pre-existing contents are preserved
// across a Retrieve call, per §6.
type RoaringResultSet struct {
	bits *roaring64.Bitmap
}

// NewResultSet returns an empty RoaringResultSet.
func NewResultSet() *RoaringResultSet {
	return &RoaringResultSet{bits: roaring64.New()}
}

func (r *RoaringResultSet) Add(docID DocID) {
	r.bits.Add(util.CastInteger[DocID, uint64](docID))
}

func (r *RoaringResultSet) Contains(docID DocID) bool {
	return r.bits.Contains(util.CastInteger[DocID, uint64](docID))
}

func (r *RoaringResultSet) Len() int {
	return int(r.bits.GetCardinality())
}

// Each calls fn once per matched document id. Iteration order is
// unspecified beyond being the bitmap's ascending order.
func (r *RoaringResultSet) Each(fn func(DocID)) {
	it := r.bits.Iterator()
	for it.HasNext() {
		fn(util.CastInteger[uint64, DocID](it.Next()))
	}
}

// Reset clears the result set for reuse, matching the teacher's
// DocIDCollector.Reset (used by its sync.Pool of collectors).
func (r *RoaringResultSet) Reset() {
	r.bits.Clear()
}

// ToSlice materializes the matched ids into a DocIDList.
func (r *RoaringResultSet) ToSlice() DocIDList {
	ids := make(DocIDList, 0, r.Len())
	r.Each(func(id DocID) { ids = append(ids, id) })
	return ids
}
