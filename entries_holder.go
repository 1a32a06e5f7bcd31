package kindex

import (
	"sort"

	"github.com/kindexio/kindex/util"
)

// EntriesHolder is the storage/lookup strategy behind one (bucket,
// BEField) string-valued posting map (SPEC_FULL §4.8). DefaultEntriesHolder
// is the spec's baseline hash-map behavior; holder/ahoholder.ACEntriesHolder
// is a drop-in, Aho-Corasick-backed alternative for fields with a large
// shared value vocabulary. Both must produce identical posting content
// for the same input — a holder only changes lookup strategy, never
// match semantics.
type EntriesHolder interface {
	// AddEntry appends entry to the posting for value. Order of
	// appends is not sorted; Compile sorts.
	AddEntry(value string, entry Entry)

	// Compile finalizes the holder for querying — sorting postings,
	// building any auxiliary index a holder needs.
	Compile()

	// LookupAny adds a PostingList to group for every value in values
	// that has a non-empty posting.
	LookupAny(group *PostingListGroup, values []string)

	// Dump returns a debug summary of the holder's contents, for
	// Logger's build/merge tracing — never for data a caller should
	// parse back.
	Dump() string
}

// HolderFactory builds a fresh, empty EntriesHolder.
type HolderFactory func() EntriesHolder

// DefaultEntriesHolder is the plain map[string]Entries holder: the
// spec's baseline behavior for the string value domain.
type DefaultEntriesHolder struct {
	postings map[string]Entries
}

// NewDefaultEntriesHolder returns an empty DefaultEntriesHolder.
func NewDefaultEntriesHolder() *DefaultEntriesHolder {
	return &DefaultEntriesHolder{postings: make(map[string]Entries)}
}

func (h *DefaultEntriesHolder) AddEntry(value string, entry Entry) {
	h.postings[value] = append(h.postings[value], entry)
}

func (h *DefaultEntriesHolder) Compile() {
	for _, entries := range h.postings {
		sort.Sort(entries)
	}
}

func (h *DefaultEntriesHolder) LookupAny(group *PostingListGroup, values []string) {
	for _, v := range values {
		if entries, ok := h.postings[v]; ok && len(entries) > 0 {
			group.Add(NewPostingList(entries))
		}
	}
}

// Dump reports the holder's value count and posting-length spread, the
// same shape as the teacher's DumpInfo.
func (h *DefaultEntriesHolder) Dump() string {
	maxLen, total := 0, 0
	for _, entries := range h.postings {
		if len(entries) > maxLen {
			maxLen = len(entries)
		}
		total += len(entries)
	}
	avgLen := 0
	if len(h.postings) > 0 {
		avgLen = total / len(h.postings)
	}
	return util.JSONPretty(map[string]interface{}{
		"name":          "DefaultEntriesHolder",
		"values":        len(h.postings),
		"maxEntriesLen": maxLen,
		"avgEntriesLen": avgLen,
	})
}
