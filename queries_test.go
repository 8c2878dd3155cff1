package searchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQueryServer(t *testing.T) *Server {
	t.Helper()
	s := mustNewServer(t, "")
	require.NoError(t, s.AddDocument(1, "cat dog", StatusActual, []int32{1}))
	require.NoError(t, s.AddDocument(2, "cat fish", StatusActual, []int32{2}))
	require.NoError(t, s.AddDocument(3, "dog fish bird", StatusActual, []int32{3}))
	return s
}

func TestProcessQueriesPreservesOrder(t *testing.T) {
	s := seedQueryServer(t)
	queries := []string{"cat", "dog", "bird"}

	results, err := ProcessQueries(s, queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, q := range queries {
		want, err := s.FindTopDocumentsActual(q, false)
		require.NoError(t, err)
		require.Len(t, results[i], len(want))
		for j := range want {
			assert.True(t, want[j].Equal(results[i][j]), "query %q position %d", q, j)
		}
	}
}

func TestProcessQueriesJoinedConcatenatesInOrder(t *testing.T) {
	s := seedQueryServer(t)
	queries := []string{"cat", "dog"}

	perQuery, err := ProcessQueries(s, queries)
	require.NoError(t, err)

	joined, err := ProcessQueriesJoined(s, queries)
	require.NoError(t, err)

	var want []Document
	for _, docs := range perQuery {
		want = append(want, docs...)
	}
	assert.Equal(t, want, joined)
}

func TestProcessQueriesPropagatesSingleFailure(t *testing.T) {
	s := seedQueryServer(t)
	_, err := ProcessQueries(s, []string{"cat", "--bad", "dog"})
	assert.Error(t, err)
}
