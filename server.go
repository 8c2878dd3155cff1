package searchengine

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring"
)

// Predicate filters a candidate document during a FindTopDocuments call. It
// receives the raw document id, status and average rating; returning false
// excludes the document from scoring regardless of relevance.
type Predicate func(id int32, status Status, rating int32) bool

// documentData is the metadata stored for one document: its average rating,
// lifecycle status, and the original text it was ingested with. The text is
// stored as-is and never mutated after AddDocument commits it;
// GetWordFrequencies and Remove read the term list from docToTerm, not from
// the text.
type documentData struct {
	rating int32
	status Status
	text   string
}

// emptyFrequencies is the process-wide shared value returned by
// GetWordFrequencies for an absent document id.
var emptyFrequencies = map[string]float64{}

// Server is the inverted-index document store. It owns all document text
// and both index maps; term views handed back to callers (e.g. through
// GetWordFrequencies) are borrowed from that storage.
//
// Server has no internal locking: add/remove must not be interleaved with
// each other or with any query, so a Server is safe for concurrent
// FindTopDocuments/MatchDocument calls only while no mutation is in flight.
// Callers enforce that discipline; the type does not.
type Server struct {
	stopWords map[string]struct{}
	termToDoc map[string]map[int32]float64
	docToTerm map[int32]map[string]float64
	documents map[int32]documentData
	ids       *roaring.Bitmap
}

// New constructs a Server with the given stop words. Empty strings are
// silently dropped; a stop word containing a control byte is an error.
func New(stopWords []string) (*Server, error) {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		if w == "" {
			continue
		}
		if !isValidWord(w) {
			return nil, markInvalidStopWord(w)
		}
		set[w] = struct{}{}
	}
	return &Server{
		stopWords: set,
		termToDoc: make(map[string]map[int32]float64),
		docToTerm: make(map[int32]map[string]float64),
		documents: make(map[int32]documentData),
		ids:       roaring.New(),
	}, nil
}

// NewFromString constructs a Server whose stop words are the space-split
// tokens of stopWords.
func NewFromString(stopWords string) (*Server, error) {
	return New(splitIntoWords(stopWords))
}

func (s *Server) isStopWord(word string) bool {
	_, ok := s.stopWords[word]
	return ok
}

// DocumentCount returns the number of documents currently indexed.
func (s *Server) DocumentCount() int {
	return len(s.documents)
}

// Ids returns all present document ids in ascending order.
func (s *Server) Ids() []int32 {
	arr := s.ids.ToArray()
	out := make([]int32, len(arr))
	for i, v := range arr {
		out[i] = int32(v)
	}
	return out
}

// GetWordFrequencies returns the forward-index entry for id, or a shared
// empty map if id is absent.
func (s *Server) GetWordFrequencies(id int32) map[string]float64 {
	if freqs, ok := s.docToTerm[id]; ok {
		return freqs
	}
	return emptyFrequencies
}

func computeAverageRating(ratings []int32) int32 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return int32(sum / int64(len(ratings)))
}

// AddDocument indexes one document. The full document is validated -
// tokenized and checked for control bytes - before any index structure is
// mutated, so a failing call leaves the store untouched.
func (s *Server) AddDocument(id int32, text string, status Status, ratings []int32) error {
	if id < 0 {
		return markInvalidDocumentID(id)
	}
	if _, exists := s.documents[id]; exists {
		return markInvalidDocumentID(id)
	}

	words := splitIntoWords(text)
	nonStop := make([]string, 0, len(words))
	for _, w := range words {
		if !isValidWord(w) {
			return markInvalidWord(w)
		}
		if s.isStopWord(w) {
			continue
		}
		nonStop = append(nonStop, w)
	}

	rating := computeAverageRating(ratings)
	s.documents[id] = documentData{rating: rating, status: status, text: text}
	s.ids.Add(uint32(id))

	n := len(nonStop)
	docTerms := make(map[string]float64, n)
	s.docToTerm[id] = docTerms
	if n == 0 {
		return nil
	}

	inv := 1.0 / float64(n)
	for _, w := range nonStop {
		docTerms[w] += inv
		if s.termToDoc[w] == nil {
			s.termToDoc[w] = make(map[int32]float64)
		}
		s.termToDoc[w][id] += inv
	}
	return nil
}

// Remove drops a document from both indices, the metadata map and the id
// set. Removing an absent id is a no-op. When parallel is true, the
// per-term posting erasures run concurrently; each touches a distinct outer
// key of termToDoc, so the outer map itself is treated as read-only during
// that phase and only the (already-present) inner maps are mutated.
func (s *Server) Remove(id int32, parallel bool) {
	docTerms, ok := s.docToTerm[id]
	if !ok {
		return
	}

	terms := make([]string, 0, len(docTerms))
	for t := range docTerms {
		terms = append(terms, t)
	}

	if parallel {
		var wg sync.WaitGroup
		for _, t := range terms {
			wg.Add(1)
			go func(t string) {
				defer wg.Done()
				delete(s.termToDoc[t], id)
			}(t)
		}
		wg.Wait()
	} else {
		for _, t := range terms {
			delete(s.termToDoc[t], id)
		}
	}

	delete(s.docToTerm, id)
	delete(s.documents, id)
	s.ids.Remove(uint32(id))
}

// FindTopDocuments parses raw, scores every document whose plus-terms
// match, excludes documents hit by any minus-term, and returns at most
// MaxResultDocumentCount documents sorted by descending relevance (ties
// broken by descending rating within EPS).
func (s *Server) FindTopDocuments(raw string, predicate Predicate, parallel bool) ([]Document, error) {
	query, err := parseQuery(raw, s.isStopWord)
	if err != nil {
		return nil, err
	}

	var matched []Document
	if parallel {
		matched = s.findAllDocumentsParallel(query, predicate)
	} else {
		matched = s.findAllDocumentsSequential(query, predicate)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Greater(matched[j])
	})
	if len(matched) > MaxResultDocumentCount {
		matched = matched[:MaxResultDocumentCount]
	}
	return matched, nil
}

// FindTopDocumentsByStatus is FindTopDocuments with a predicate that
// accepts only documents matching status.
func (s *Server) FindTopDocumentsByStatus(raw string, status Status, parallel bool) ([]Document, error) {
	return s.FindTopDocuments(raw, func(_ int32, docStatus Status, _ int32) bool {
		return docStatus == status
	}, parallel)
}

// FindTopDocumentsActual is FindTopDocumentsByStatus(raw, StatusActual, parallel),
// the default overload's default status.
func (s *Server) FindTopDocumentsActual(raw string, parallel bool) ([]Document, error) {
	return s.FindTopDocumentsByStatus(raw, StatusActual, parallel)
}

func (s *Server) idf(postingCount int) float64 {
	return math.Log(float64(s.DocumentCount()) / float64(postingCount))
}

func (s *Server) findAllDocumentsSequential(query queryVector, predicate Predicate) []Document {
	docToRelevance := make(map[int32]float64)

	for _, word := range query.plusWords {
		postings := s.termToDoc[word]
		if len(postings) == 0 {
			continue
		}
		idf := s.idf(len(postings))
		for docID, tf := range postings {
			dd := s.documents[docID]
			if predicate(docID, dd.status, dd.rating) {
				docToRelevance[docID] += tf * idf
			}
		}
	}

	for _, word := range query.minusWords {
		postings := s.termToDoc[word]
		for docID := range postings {
			delete(docToRelevance, docID)
		}
	}

	return s.materialize(docToRelevance)
}

func (s *Server) findAllDocumentsParallel(query queryVector, predicate Predicate) []Document {
	plusWords := sortedUnique(query.plusWords)
	acc := newShardedAccumulator()

	var wg sync.WaitGroup
	for _, word := range plusWords {
		wg.Add(1)
		go func(word string) {
			defer wg.Done()
			postings := s.termToDoc[word]
			if len(postings) == 0 {
				return
			}
			idf := s.idf(len(postings))
			for docID, tf := range postings {
				dd := s.documents[docID]
				if predicate(docID, dd.status, dd.rating) {
					acc.add(docID, tf*idf)
				}
			}
		}(word)
	}
	wg.Wait()

	docToRelevance := acc.buildOrdinaryMap()

	// Minus-erasure deletes from a plain, unsynchronized map, so these
	// structural edits run serially rather than fanned out.
	minusWords := sortedUnique(query.minusWords)
	for _, word := range minusWords {
		postings := s.termToDoc[word]
		for docID := range postings {
			delete(docToRelevance, docID)
		}
	}

	return s.materialize(docToRelevance)
}

func (s *Server) materialize(docToRelevance map[int32]float64) []Document {
	matched := make([]Document, 0, len(docToRelevance))
	for docID, relevance := range docToRelevance {
		matched = append(matched, Document{
			ID:        docID,
			Relevance: relevance,
			Rating:    s.documents[docID].rating,
		})
	}
	return matched
}

// MatchDocument reports which of raw's plus-terms appear in document id's
// text, or an empty (non-nil) slice if any minus-term does. Fails if id is
// negative or absent.
func (s *Server) MatchDocument(raw string, id int32, parallel bool) ([]string, Status, error) {
	if id < 0 {
		return nil, 0, markInvalidDocumentID(id)
	}
	dd, ok := s.documents[id]
	if !ok {
		return nil, 0, markInvalidDocumentID(id)
	}

	query, err := parseQuery(raw, s.isStopWord)
	if err != nil {
		return nil, dd.status, err
	}

	docTerms := s.docToTerm[id]
	if parallel {
		return s.matchDocumentParallel(query, docTerms, dd.status)
	}
	return s.matchDocumentSequential(query, docTerms, dd.status)
}

func (s *Server) matchDocumentSequential(query queryVector, docTerms map[string]float64, status Status) ([]string, Status, error) {
	for _, word := range query.minusWords {
		if _, hit := docTerms[word]; hit {
			return []string{}, status, nil
		}
	}

	matched := make([]string, 0, len(query.plusWords))
	for _, word := range query.plusWords {
		if _, hit := docTerms[word]; hit {
			matched = append(matched, word)
		}
	}
	return dedupAdjacent(sortedCopy(matched)), status, nil
}

func (s *Server) matchDocumentParallel(query queryVector, docTerms map[string]float64, status Status) ([]string, Status, error) {
	var minusHit atomic.Bool
	var wg sync.WaitGroup
	for _, word := range query.minusWords {
		wg.Add(1)
		go func(word string) {
			defer wg.Done()
			if _, hit := docTerms[word]; hit {
				minusHit.Store(true)
			}
		}(word)
	}
	wg.Wait()
	if minusHit.Load() {
		return []string{}, status, nil
	}

	var mu sync.Mutex
	matched := make([]string, 0, len(query.plusWords))
	var wg2 sync.WaitGroup
	for _, word := range query.plusWords {
		wg2.Add(1)
		go func(word string) {
			defer wg2.Done()
			if _, hit := docTerms[word]; hit {
				mu.Lock()
				matched = append(matched, word)
				mu.Unlock()
			}
		}(word)
	}
	wg2.Wait()

	return dedupAdjacent(sortedCopy(matched)), status, nil
}

func sortedCopy(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	sort.Strings(out)
	return out
}

func sortedUnique(words []string) []string {
	if len(words) == 0 {
		return words
	}
	out := sortedCopy(words)
	return dedupAdjacent(out)
}

func dedupAdjacent(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
