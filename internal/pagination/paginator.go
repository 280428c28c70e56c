// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPageSize is used when a Paginator is constructed with a
// non-positive size.
const DefaultPageSize = 10

var (
	ErrCountingItems = errors.New("error counting items")
	ErrFetchingItems = errors.New("error fetching items")
)

// Page is one window of a scope.
type Page[T any] struct {
	// Items is never nil, so it serializes as [] when empty.
	Items []T
	// Previous is nil on the first page.
	Previous *string
	// Next is nil on the last page and past the end.
	Next *string
	// Total counts every match of the filter, not only this page.
	Total int
	// Number is the effective 1-indexed page number.
	Number int
}

// Paginator cuts scopes into pages of a fixed size.
type Paginator[T any] struct {
	size int
}

// New returns a Paginator with the given page size.
func New[T any](size int) *Paginator[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator[T]{size: size}
}

// Size reports the page size.
func (p *Paginator[T]) Size() int {
	return p.size
}

// Paginate counts the matches of req's filter in scope and fetches the
// requested window. A page past the end is not an error: it comes back
// empty with a previous link and no next link.
func (p *Paginator[T]) Paginate(ctx context.Context, scope Scope[T], req Request) (Page[T], error) {
	number := max(req.Page, 1)
	filter := NormalizeFilter(req.Query)

	total, err := scope.Count(ctx, filter)
	if err != nil {
		return Page[T]{}, fmt.Errorf("%w: %w", ErrCountingItems, err)
	}

	pages := (total + p.size - 1) / p.size

	items := []T{}
	if number <= pages {
		fetched, err := scope.Fetch(ctx, filter, (number-1)*p.size, p.size)
		if err != nil {
			return Page[T]{}, fmt.Errorf("%w: %w", ErrFetchingItems, err)
		}
		if fetched != nil {
			items = fetched
		}
	}

	page := Page[T]{
		Items:  items,
		Total:  total,
		Number: number,
	}
	if number > 1 {
		page.Previous = req.link(number - 1)
	}
	if number < pages {
		page.Next = req.link(number + 1)
	}

	return page, nil
}
