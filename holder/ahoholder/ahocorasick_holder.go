// Package ahoholder provides an Aho-Corasick-backed kindex.EntriesHolder:
// a drop-in, faster lookup strategy for a string-valued field whose
// assignment side presents many candidate values per query (SPEC_FULL §4.8).
package ahoholder

import (
	"sort"
	"strings"

	aho "github.com/anknown/ahocorasick"

	"github.com/kindexio/kindex"
	"github.com/kindexio/kindex/util"
)

// Option configures an ACEntriesHolder.
type Option struct {
	// QuerySep joins multiple candidate values into one scan buffer
	// before running the automaton; defaults to a single space.
	QuerySep string
}

// ACEntriesHolder compiles the distinct string values of one
// (bucket, field) into a multi-pattern Aho-Corasick automaton, so a
// LookupAny over many candidate values costs one automaton scan
// instead of one map probe per candidate.
type ACEntriesHolder struct {
	opt Option

	postings map[string]kindex.Entries
	machine  *aho.Machine
}

// New returns a HolderFactory suitable for kindex.WithFieldHolder.
func New(opt Option) kindex.HolderFactory {
	if opt.QuerySep == "" {
		opt.QuerySep = " "
	}
	return func() kindex.EntriesHolder {
		return &ACEntriesHolder{
			opt:      opt,
			postings: make(map[string]kindex.Entries),
			machine:  new(aho.Machine),
		}
	}
}

func (h *ACEntriesHolder) AddEntry(value string, entry kindex.Entry) {
	h.postings[value] = append(h.postings[value], entry)
}

// Compile sorts every posting and builds the automaton over the
// distinct value vocabulary collected during AddEntry.
func (h *ACEntriesHolder) Compile() {
	keys := make([][]rune, 0, len(h.postings))
	for value, entries := range h.postings {
		sort.Sort(entries)
		keys = append(keys, []rune(value))
	}
	if len(keys) == 0 {
		return
	}
	util.PanicIfErr(h.machine.Build(keys), "ahoholder: failed to build automaton")
}

// Dump reports the holder's value count, never the raw postings — the
// teacher's ACEntriesHolder.DumpEntries drops the same detail "for
// memory reason" once the automaton is built.
func (h *ACEntriesHolder) Dump() string {
	return util.JSONPretty(map[string]interface{}{
		"name":   "ACEntriesHolder",
		"values": len(h.postings),
		"sep":    h.opt.QuerySep,
	})
}

// LookupAny joins values with the configured separator and runs one
// multi-pattern search over the buffer, adding a PostingList for every
// matched term that has a non-empty posting.
func (h *ACEntriesHolder) LookupAny(group *kindex.PostingListGroup, values []string) {
	if len(h.postings) == 0 || len(values) == 0 {
		return
	}
	buf := []rune(strings.Join(values, h.opt.QuerySep))
	if len(buf) == 0 {
		return
	}
	wanted := make(map[string]bool, len(values))
	for _, v := range values {
		wanted[v] = true
	}
	terms := h.machine.MultiPatternSearch(buf, false)
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		key := string(term.Word)
		// The scan also reports vocabulary terms found inside a longer
		// candidate; only exact candidate values count as matches.
		if seen[key] || !wanted[key] {
			continue
		}
		seen[key] = true
		if entries, ok := h.postings[key]; ok && len(entries) > 0 {
			group.Add(kindex.NewPostingList(entries))
		}
	}
}
