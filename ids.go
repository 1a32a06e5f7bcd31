package kindex

// DocID identifies a Document within a corpus.
type DocID uint64

// DocIDList is a plain slice of matched document ids, the shape
// Indexer.RetrieveIDs returns.
type DocIDList []DocID

// BEField is the attribute key type: K in spec terms, instantiated
// concretely rather than left as a type parameter, matching the
// teacher's own BEField string.
type BEField string
