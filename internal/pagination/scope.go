// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"context"
	"strings"
)

// Scope is a filtered, totally ordered collection owned by a single caller.
// filter is already normalized (see [NormalizeFilter]); an empty filter
// matches every row.
type Scope[T any] interface {
	Count(ctx context.Context, filter string) (int, error)
	Fetch(ctx context.Context, filter string, offset, limit int) ([]T, error)
}

// ScopeFuncs adapts a pair of functions to [Scope].
type ScopeFuncs[T any] struct {
	CountFunc func(ctx context.Context, filter string) (int, error)
	FetchFunc func(ctx context.Context, filter string, offset, limit int) ([]T, error)
}

func (s ScopeFuncs[T]) Count(ctx context.Context, filter string) (int, error) {
	return s.CountFunc(ctx, filter)
}

func (s ScopeFuncs[T]) Fetch(ctx context.Context, filter string, offset, limit int) ([]T, error) {
	return s.FetchFunc(ctx, filter, offset, limit)
}

// NormalizeFilter trims surrounding whitespace and lower-cases q.
func NormalizeFilter(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
