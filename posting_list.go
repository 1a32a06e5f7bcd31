package kindex

// linearSkipThreshold below this many remaining entries a linear scan
// beats a binary search probe (matches the teacher's EntriesCursor.Skip
// tuning), PostingList.SkipTo degrades to it automatically.
const linearSkipThreshold = 8

// PostingList is a cursor over an immutable, ascending run of Entry.
// Skip operations are monotonic: the cursor never rewinds.
type PostingList struct {
	cursor  int
	entries Entries
}

// NewPostingList wraps an already-sorted Entries run. The caller must
// not mutate entries afterward; PostingList never copies it.
func NewPostingList(entries Entries) PostingList {
	return PostingList{entries: entries}
}

// Empty reports whether the cursor is at or past the end of the run.
func (pl PostingList) Empty() bool {
	return pl.cursor >= len(pl.entries)
}

// Current returns the Entry at the cursor, or MaxEntry if Empty.
func (pl PostingList) Current() Entry {
	if pl.Empty() {
		return MaxEntry
	}
	return pl.entries[pl.cursor]
}

// SkipTo advances the cursor forward while Current().ID() < target.
// Implemented as a binary search that falls back to a linear scan once
// the remaining span is small — a linear-scan implementation alone
// would also satisfy the spec; this is the corpus's own optimization.
func (pl *PostingList) SkipTo(target EntryID) {
	if pl.Current().ID() >= target {
		return
	}
	size := len(pl.entries)
	lo, hi := pl.cursor, size
	for lo < hi {
		if hi-lo < linearSkipThreshold {
			for lo < size && pl.entries[lo].ID() < target {
				lo++
			}
			break
		}
		mid := (lo + hi) >> 1
		if pl.entries[mid].ID() < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	pl.cursor = lo
}
