package kindex

import (
	"sort"

	"github.com/kindexio/kindex/util"
)

// IndexerOption configures an Indexer at build time. The only surface
// is per-field EntriesHolder selection — there is no other build-time
// configuration in the core (SPEC_FULL §6).
type IndexerOption func(*indexerConfig)

type indexerConfig struct {
	holderFactories map[BEField]HolderFactory
}

// WithFieldHolder selects the EntriesHolder strategy used for field's
// string value domain, in every size-bucket. Unconfigured fields use
// DefaultEntriesHolder.
func WithFieldHolder(field BEField, factory HolderFactory) IndexerOption {
	return func(cfg *indexerConfig) {
		cfg.holderFactories[field] = factory
	}
}

// Indexer holds the size-bucketed InvertedIndexes and the
// ZeroConjunctionList (§2 component 6). Build is one-shot; Retrieve is
// read-only and may be called repeatedly, including concurrently by
// multiple goroutines each with its own ResultCollector (§5).
type Indexer struct {
	buckets []*InvertedIndex
	zero    Entries

	holderFactories map[BEField]HolderFactory
}

// NewIndexer consumes documents and returns a sealed Indexer (§6,
// Indexer::create). It is the only way to produce an Indexer — there
// is no separate mutable builder stage in the public API.
func NewIndexer(documents []*Document, opts ...IndexerOption) (*Indexer, error) {
	cfg := &indexerConfig{holderFactories: make(map[BEField]HolderFactory)}
	for _, opt := range opts {
		opt(cfg)
	}
	ix := &Indexer{holderFactories: cfg.holderFactories}
	if err := ix.build(documents); err != nil {
		return nil, err
	}
	return ix, nil
}

func (ix *Indexer) bucket(size int) *InvertedIndex {
	for size >= len(ix.buckets) {
		ix.buckets = append(ix.buckets, newInvertedIndex(ix.holderFactories))
	}
	return ix.buckets[size]
}

// build implements §4.5: bucket every conjunction by positive-arity,
// insert one Entry per value per expression, and collect the
// zero-arity conjunctions' vacuous Entry into the ZeroConjunctionList.
func (ix *Indexer) build(documents []*Document) error {
	for _, doc := range documents {
		if doc == nil {
			continue
		}
		if doc.ID > MaxDocID {
			err := &ErrIndexOverflow{DocID: doc.ID}
			Logger.Errorf("document %d overflow: %s", doc.ID, err)
			return err
		}
		for j, conj := range doc.Conjunctions {
			if j > MaxConjIndex {
				err := &ErrIndexOverflow{DocID: doc.ID, ConjIndex: j}
				Logger.Errorf("document %d conjunction %d overflow: %s", doc.ID, j, err)
				return err
			}
			size := conj.PositiveArity()
			bucket := ix.bucket(size)
			conjIndex := util.CastInteger[int, uint16](j)
			docID := util.CastInteger[DocID, uint64](doc.ID)
			for _, expr := range conj.Expressions {
				entry := NewEntry(docID, conjIndex, expr.Positive)
				if err := bucket.AddEntry(entry, expr.Key, expr.Values); err != nil {
					Logger.Errorf("field %s value %+v add entry failed: %s", expr.Key, expr.Values, err)
					return err
				}
			}
			if size == 0 {
				ix.zero = append(ix.zero, NewEntry(docID, conjIndex, true))
			}
		}
	}

	for i, bucket := range ix.buckets {
		bucket.Build()
		Logger.Debugf("bucket k:%d built\n%s", i, bucket.Dump())
	}
	sort.Sort(ix.zero)
	return nil
}

func (ix *Indexer) maxBucket() int {
	return len(ix.buckets) - 1
}

// collectGroups implements §4.6 step 1-2: gather one PostingListGroup
// per attribute the assignment binds for bucket i, plus (for i == 0)
// the ZeroConjunctionList group.
func (ix *Indexer) collectGroups(i int, a Assignment) (PostingListGroups, error) {
	var groups PostingListGroups
	var triggerErr error

	bucket := ix.buckets[i]
	a.Trigger(func(field BEField, values Values) {
		if triggerErr != nil {
			return
		}
		group := NewPostingListGroup()
		if err := bucket.Trigger(group, field, values); err != nil {
			Logger.Errorf("field %s trigger failed: %s", field, err)
			triggerErr = err
			return
		}
		if group.Empty() {
			Logger.Debugf("field:%s bucket k:%d: nothing matched", field, i)
			return
		}
		Logger.Debugf("field:%s bucket k:%d: matched %d posting lists", field, i, len(group.lists))
		groups = append(groups, group)
	})
	if triggerErr != nil {
		return nil, triggerErr
	}

	if i == 0 && len(ix.zero) > 0 {
		zg := NewPostingListGroup()
		zg.Add(NewPostingList(ix.zero))
		groups = append(groups, zg)
	}
	return groups, nil
}

// retrieveBucket runs the k-of-k merge (§4.6 step 4) over groups until
// the k-th group is exhausted, emitting matched document ids into into.
func retrieveBucket(groups PostingListGroups, k int, into ResultCollector) {
	for {
		groups.sort()

		if groups[k-1].Empty() {
			return
		}

		first := groups[0].Current()
		kth := groups[k-1].Current()

		var next EntryID
		if first.ID() == kth.ID() {
			if first.IsNegative() {
				// Resolve the negative-predicate skip loop (Design
				// Notes §9, Open Question) by scanning the whole tail
				// rather than breaking on the first mismatch: the
				// tail is sorted by current Entry, not by id, so a
				// later group sharing this id is not guaranteed to be
				// contiguous with the ones right after index k.
				rejectID := first.ID()
				for l := k; l < len(groups); l++ {
					if groups[l].Current().ID() == rejectID {
						groups[l].SkipTo(rejectID + 1)
					}
				}
			} else {
				docID := first.DocumentID()
				Logger.Infof("step k:%d add doc:%d conj:%d", k, docID, first.ConjIndex())
				into.Add(docID)
			}
			next = kth.ID() + 1
		} else {
			next = kth.ID()
		}

		for l := 0; l < k; l++ {
			groups[l].SkipTo(next)
		}
	}
}

// Retrieve populates into with every document id matched by a (§4.6,
// §6 Indexer::retrieve). Pre-existing contents of into are preserved.
func (ix *Indexer) Retrieve(a Assignment, into ResultCollector) error {
	top := ix.maxBucket()
	if s := a.Size(); s < top {
		top = s
	}

	for i := top; i >= 0; i-- {
		groups, err := ix.collectGroups(i, a)
		if err != nil {
			return err
		}

		k := i
		if k == 0 {
			k = 1
		}
		if len(groups) < k {
			continue
		}

		retrieveBucket(groups, k, into)
	}
	return nil
}

// RetrieveIDs is a convenience wrapper that allocates a RoaringResultSet,
// runs Retrieve, and returns the matched ids as a plain slice.
func (ix *Indexer) RetrieveIDs(a Assignment) (DocIDList, error) {
	result := NewResultSet()
	if err := ix.Retrieve(a, result); err != nil {
		return nil, err
	}
	return result.ToSlice(), nil
}
