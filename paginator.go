package searchengine

import "errors"

// Page is one contiguous window of a Paginator's underlying slice.
type Page[T any] struct {
	items []T
}

// Items returns this page's elements.
func (p Page[T]) Items() []T {
	return p.items
}

// Len returns the number of elements on this page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// Paginator splits a slice into fixed-size, non-overlapping pages. It is a
// small windowing helper used by cmd/searchcli to page through search
// results, independent of the core index.
type Paginator[T any] struct {
	pages []Page[T]
}

// NewPaginator builds a Paginator over items with the given page size. A
// zero page size is an error; an empty items slice yields zero pages.
func NewPaginator[T any](items []T, pageSize int) (*Paginator[T], error) {
	if pageSize <= 0 {
		return nil, errors.New("paginator: page size must be positive")
	}

	p := &Paginator[T]{}
	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		p.pages = append(p.pages, Page[T]{items: items[start:end]})
	}
	return p, nil
}

// Pages returns all pages in order.
func (p *Paginator[T]) Pages() []Page[T] {
	return p.pages
}

// Len returns the number of pages.
func (p *Paginator[T]) Len() int {
	return len(p.pages)
}
