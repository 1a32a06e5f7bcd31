// Command kindex_usage is a minimal demonstration of building an
// Indexer and retrieving against it — adapted from the teacher's
// example/be_indexer_usage, out of scope for the core module itself.
package main

import (
	"fmt"

	"github.com/kindexio/kindex"
	"github.com/kindexio/kindex/holder/ahoholder"
)

func buildTestDocs() []*kindex.Document {
	return []*kindex.Document{
		kindex.NewDocument(0).AddConjunction(
			kindex.NewConjunction().In("age", kindex.Ints(5)),
		),
		kindex.NewDocument(1).AddConjunction(
			kindex.NewConjunction().In("ip", kindex.Strs("localhost")),
		),
		kindex.NewDocument(2).AddConjunction(
			kindex.NewConjunction().
				In("age", kindex.Ints(1)).
				In("city", kindex.Strs("sh")).
				NotIn("tag", kindex.Strs("blocked")),
		),
	}
}

func main() {
	docs := buildTestDocs()

	ix, err := kindex.NewIndexer(docs, kindex.WithFieldHolder("city", ahoholder.New(ahoholder.Option{})))
	if err != nil {
		panic(err)
	}

	ids, err := ix.RetrieveIDs(kindex.MapAssignment{"age": kindex.Ints(5)})
	fmt.Println(err, ids)

	ids, err = ix.RetrieveIDs(kindex.MapAssignment{"ip": kindex.Strs("localhost")})
	fmt.Println(err, ids)

	ids, err = ix.RetrieveIDs(kindex.MapAssignment{
		"age":  kindex.Ints(1),
		"city": kindex.Strs("sh"),
		"tag":  kindex.Strs("tag1"),
	})
	fmt.Println(err, ids)
}
