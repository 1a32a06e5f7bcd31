package kindex

// PostingListGroup is the union of several PostingLists that all belong
// to one (bucket, key) but differ in the assignment value that selected
// them. Current() always equals the minimum Current() among its
// non-empty member lists, or MaxEntry if every member is empty.
type PostingListGroup struct {
	current Entry
	lists   []PostingList
}

// NewPostingListGroup builds an empty group ready for Add.
func NewPostingListGroup() *PostingListGroup {
	return &PostingListGroup{current: MaxEntry}
}

// Add registers a PostingList and folds its Current() into the group's
// minimum. An empty list is silently dropped — callers are expected to
// only add non-empty lists, but Add tolerates the degenerate case
// rather than requiring every caller to pre-filter.
func (g *PostingListGroup) Add(pl PostingList) {
	if pl.Empty() {
		return
	}
	g.lists = append(g.lists, pl)
	if cur := pl.Current(); cur.Less(g.current) {
		g.current = cur
	}
}

// Empty reports whether every member list is exhausted.
func (g *PostingListGroup) Empty() bool {
	return g.current == MaxEntry
}

// Current returns the group's minimum current Entry.
func (g *PostingListGroup) Current() Entry {
	return g.current
}

// SkipTo advances every member list past target, then recomputes the
// group's minimum over the still-non-empty members.
func (g *PostingListGroup) SkipTo(target EntryID) {
	if g.Empty() {
		return
	}
	min := MaxEntry
	for i := range g.lists {
		pl := &g.lists[i]
		if pl.Empty() {
			continue
		}
		pl.SkipTo(target)
		if pl.Empty() {
			continue
		}
		if cur := pl.Current(); cur.Less(min) {
			min = cur
		}
	}
	g.current = min
}

// PostingListGroups is the sortable slice the merge kernel re-sorts on
// every inner-loop iteration. Groups compare by their current Entry.
type PostingListGroups []*PostingListGroup

func (s PostingListGroups) Len() int      { return len(s) }
func (s PostingListGroups) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s PostingListGroups) Less(i, j int) bool {
	return s[i].Current().Less(s[j].Current())
}

// sort does an insertion sort: groups are few (bounded by the number of
// values the assignment binds for one key) and already near-sorted from
// the previous iteration, so this beats sort.Sort's reflection overhead
// for the sizes this kernel sees — same tuning as the teacher's
// FieldScanners.Sort.
func (s PostingListGroups) sort() {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].Current().Less(s[j-1].Current()); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
