package searchengine

import "sync"

// ProcessQueries evaluates each query independently via the parallel
// scorer and returns results in input order: result[i] corresponds to
// queries[i]. A single query's parse failure fails the whole call; no
// partial result slice is returned on error.
func ProcessQueries(server *Server, queries []string) ([][]Document, error) {
	results := make([][]Document, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			docs, err := server.FindTopDocumentsActual(q, true)
			results[i] = docs
			errs[i] = err
		}(i, q)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ProcessQueriesJoined concatenates ProcessQueries' per-query results in
// input order into a single flat slice.
func ProcessQueriesJoined(server *Server, queries []string) ([]Document, error) {
	perQuery, err := ProcessQueries(server, queries)
	if err != nil {
		return nil, err
	}

	joined := make([]Document, 0, len(perQuery)*MaxResultDocumentCount)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}
