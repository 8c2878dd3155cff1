package searchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentEqual(t *testing.T) {
	a := Document{ID: 1, Relevance: 0.5, Rating: 3}
	b := Document{ID: 1, Relevance: 0.5 + EPS/2, Rating: 3}
	c := Document{ID: 1, Relevance: 0.5 + EPS*10, Rating: 3}
	d := Document{ID: 2, Relevance: 0.5, Rating: 3}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestDocumentGreaterTieBreaksOnRating(t *testing.T) {
	higherRelevance := Document{ID: 1, Relevance: 1.0, Rating: 1}
	lowerRelevance := Document{ID: 2, Relevance: 0.1, Rating: 9}
	assert.True(t, higherRelevance.Greater(lowerRelevance))

	tiedA := Document{ID: 1, Relevance: 0.5, Rating: 9}
	tiedB := Document{ID: 2, Relevance: 0.5 + EPS/2, Rating: 1}
	assert.True(t, tiedA.Greater(tiedB))
}

func TestDocumentString(t *testing.T) {
	d := Document{ID: 1, Relevance: 0.866433, Rating: 5}
	assert.Equal(t, "{ document_id = 1, relevance = 0.866433, rating = 5 }", d.String())
}
