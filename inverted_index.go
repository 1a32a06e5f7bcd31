package kindex

import (
	"fmt"
	"sort"
	"strings"
)

// InvertedIndex is one size-bucket's per-field posting store (§4.4): an
// int64-keyed map for the integer value domain, plus a pluggable
// EntriesHolder per field for the string value domain. The domain used
// for a given (bucket, key) is whichever Values arm the caller's
// Expression/Assignment presents — dispatched dynamically per call,
// the Go analogue of the source's compile-time template switch
// (Design Notes §9).
type InvertedIndex struct {
	holderFactories map[BEField]HolderFactory

	intPostings map[BEField]map[int64]Entries
	strHolders  map[BEField]EntriesHolder
}

func newInvertedIndex(holderFactories map[BEField]HolderFactory) *InvertedIndex {
	return &InvertedIndex{
		holderFactories: holderFactories,
		intPostings:     make(map[BEField]map[int64]Entries),
		strHolders:      make(map[BEField]EntriesHolder),
	}
}

// AddEntry appends entry to every (key, v) posting for v in values.
func (idx *InvertedIndex) AddEntry(entry Entry, key BEField, values Values) error {
	switch v := values.(type) {
	case IntValues:
		m, ok := idx.intPostings[key]
		if !ok {
			m = make(map[int64]Entries)
			idx.intPostings[key] = m
		}
		for _, val := range v {
			m[val] = append(m[val], entry)
		}
	case StrValues:
		holder := idx.holderFor(key)
		for _, val := range v {
			holder.AddEntry(val, entry)
		}
	default:
		return &ErrTypeDomain{Field: key, Got: values}
	}
	return nil
}

// Dump summarizes every field's posting store, int and string alike,
// for Logger's build-time trace — mirrors the teacher's
// fieldEntriesContainer.DumpString walking its default holder plus
// every per-field holder.
func (idx *InvertedIndex) Dump() string {
	sb := &strings.Builder{}
	for field, m := range idx.intPostings {
		sb.WriteString(fmt.Sprintf("field:%s int values:%d\n", field, len(m)))
	}
	for field, h := range idx.strHolders {
		sb.WriteString(fmt.Sprintf("field:%s %s\n", field, h.Dump()))
	}
	return sb.String()
}

func (idx *InvertedIndex) holderFor(key BEField) EntriesHolder {
	if h, ok := idx.strHolders[key]; ok {
		return h
	}
	factory := idx.holderFactories[key]
	if factory == nil {
		factory = func() EntriesHolder { return NewDefaultEntriesHolder() }
	}
	h := factory()
	idx.strHolders[key] = h
	return h
}

// Build sorts every int posting and compiles every string holder —
// the build-time work §4.4's "build()" and §4.5's final sort pass
// describe.
func (idx *InvertedIndex) Build() {
	for _, m := range idx.intPostings {
		for _, entries := range m {
			sort.Sort(entries)
		}
	}
	for _, h := range idx.strHolders {
		h.Compile()
	}
}

// Trigger looks up every v in values for key and adds any non-empty
// posting to group, wrapped as a PostingList.
func (idx *InvertedIndex) Trigger(group *PostingListGroup, key BEField, values Values) error {
	switch v := values.(type) {
	case IntValues:
		m, ok := idx.intPostings[key]
		if !ok {
			return nil
		}
		for _, val := range v {
			if entries, ok := m[val]; ok && len(entries) > 0 {
				group.Add(NewPostingList(entries))
			}
		}
	case StrValues:
		h, ok := idx.strHolders[key]
		if !ok {
			return nil
		}
		h.LookupAny(group, []string(v))
	default:
		return &ErrTypeDomain{Field: key, Got: values}
	}
	return nil
}
