package searchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatorSplitsIntoPages(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	p, err := NewPaginator(items, 3)
	require.NoError(t, err)

	require.Equal(t, 3, p.Len())
	pages := p.Pages()
	assert.Equal(t, []int{1, 2, 3}, pages[0].Items())
	assert.Equal(t, []int{4, 5, 6}, pages[1].Items())
	assert.Equal(t, []int{7}, pages[2].Items())
}

func TestPaginatorRejectsZeroPageSize(t *testing.T) {
	_, err := NewPaginator([]int{1, 2}, 0)
	assert.Error(t, err)
}

func TestPaginatorEmptyInput(t *testing.T) {
	p, err := NewPaginator([]int{}, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}
