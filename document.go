package searchengine

import (
	"fmt"
	"math"
)

// Document is a single ranked search result.
type Document struct {
	ID        int32
	Relevance float64
	Rating    int32
}

// String renders a Document the way the original search server's output
// operator does: "{ document_id = <i>, relevance = <f>, rating = <r> }".
func (d Document) String() string {
	return fmt.Sprintf("{ document_id = %d, relevance = %v, rating = %d }", d.ID, d.Relevance, d.Rating)
}

// Equal reports whether two documents are the same result, within eps on
// relevance. This is the corrected definition: the original source's
// operator== compared rating against itself twice and never compared
// relevance by id; here id and rating are both compared, and relevance is
// compared within tolerance.
func (d Document) Equal(other Document) bool {
	return d.ID == other.ID && d.Rating == other.Rating && math.Abs(d.Relevance-other.Relevance) < EPS
}

// Less orders documents ascending by relevance, then by rating on a near-tie.
func (d Document) Less(other Document) bool {
	if math.Abs(d.Relevance-other.Relevance) < EPS {
		return d.Rating < other.Rating
	}
	return d.Relevance < other.Relevance
}

// Greater orders documents descending by relevance, then by rating on a
// near-tie. This is the ordering find_top_documents ranks by.
func (d Document) Greater(other Document) bool {
	if math.Abs(d.Relevance-other.Relevance) < EPS {
		return d.Rating > other.Rating
	}
	return d.Relevance > other.Relevance
}
