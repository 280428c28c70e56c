// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceScope filters names by substring, the way the SQL repositories do.
func sliceScope(names ...string) ScopeFuncs[string] {
	match := func(filter string) []string {
		var out []string
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), filter) {
				out = append(out, name)
			}
		}
		return out
	}

	return ScopeFuncs[string]{
		CountFunc: func(_ context.Context, filter string) (int, error) {
			return len(match(filter)), nil
		},
		FetchFunc: func(_ context.Context, filter string, offset, limit int) ([]string, error) {
			matched := match(filter)
			if offset >= len(matched) {
				return nil, nil
			}
			return matched[offset:min(offset+limit, len(matched))], nil
		},
	}
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestPaginate_TravelScenario(t *testing.T) {
	scope := sliceScope("Travel", "Tral", "Trvel", "Tavel", "Travl", "Trave")
	base := mustURL(t, "http://localhost:8080/v1/storelists?q=T")
	p := New[string](5)

	first, err := p.Paginate(context.Background(), scope, Request{Page: 1, Query: "T", BaseURL: base})
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel", "Tral", "Trvel", "Tavel", "Travl"}, first.Items)
	assert.Equal(t, 6, first.Total)
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Equal(t, "http://localhost:8080/v1/storelists?page=2&q=T", *first.Next)

	second, err := p.Paginate(context.Background(), scope, Request{Page: 2, Query: "T", BaseURL: base})
	require.NoError(t, err)
	assert.Equal(t, []string{"Trave"}, second.Items)
	assert.Equal(t, 6, second.Total)
	require.NotNil(t, second.Previous)
	assert.Equal(t, "http://localhost:8080/v1/storelists?page=1&q=T", *second.Previous)
	assert.Nil(t, second.Next)
}

func TestPaginate_EmptyScope(t *testing.T) {
	page, err := New[string](10).Paginate(context.Background(), sliceScope(), Request{Page: 1})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
	assert.Nil(t, page.Previous)
	assert.Nil(t, page.Next)
}

func TestPaginate_PastTheEnd(t *testing.T) {
	base := mustURL(t, "http://localhost/v1/storelists")
	page, err := New[string](2).Paginate(context.Background(), sliceScope("a", "b", "c"), Request{Page: 7, BaseURL: base})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 7, page.Number)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://localhost/v1/storelists?page=6", *page.Previous)
	assert.Nil(t, page.Next)
}

func TestPaginate_PageBelowOneIsFirstPage(t *testing.T) {
	for _, number := range []int{0, -3} {
		page, err := New[string](2).Paginate(context.Background(), sliceScope("a", "b", "c"), Request{Page: number})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, []string{"a", "b"}, page.Items)
		assert.Nil(t, page.Previous)
		assert.NotNil(t, page.Next)
	}
}

func TestPaginate_ExactMultipleHasNoNext(t *testing.T) {
	page, err := New[string](2).Paginate(context.Background(), sliceScope("a", "b", "c", "d"), Request{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, page.Items)
	assert.Nil(t, page.Next)
}

func TestPaginate_FilterIsNormalized(t *testing.T) {
	var seen []string
	scope := ScopeFuncs[string]{
		CountFunc: func(_ context.Context, filter string) (int, error) {
			seen = append(seen, filter)
			return 1, nil
		},
		FetchFunc: func(_ context.Context, filter string, offset, limit int) ([]string, error) {
			seen = append(seen, filter)
			assert.Zero(t, offset)
			assert.Equal(t, 10, limit)
			return []string{"groceries"}, nil
		},
	}

	_, err := New[string](0).Paginate(context.Background(), scope, Request{Query: "  GroCer  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"grocer", "grocer"}, seen)
}

func TestPaginate_Idempotent(t *testing.T) {
	scope := sliceScope("a", "b", "c")
	p := New[string](2)
	req := Request{Page: 1, Query: "a"}

	first, err := p.Paginate(context.Background(), scope, req)
	require.NoError(t, err)
	second, err := p.Paginate(context.Background(), scope, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPaginate_Errors(t *testing.T) {
	boom := errors.New("boom")

	countFails := ScopeFuncs[string]{
		CountFunc: func(context.Context, string) (int, error) { return 0, boom },
	}
	_, err := New[string](5).Paginate(context.Background(), countFails, Request{})
	assert.ErrorIs(t, err, ErrCountingItems)
	assert.ErrorIs(t, err, boom)

	fetchFails := ScopeFuncs[string]{
		CountFunc: func(context.Context, string) (int, error) { return 3, nil },
		FetchFunc: func(context.Context, string, int, int) ([]string, error) { return nil, boom },
	}
	_, err = New[string](5).Paginate(context.Background(), fetchFails, Request{})
	assert.ErrorIs(t, err, ErrFetchingItems)
}

func TestParsePage(t *testing.T) {
	tests := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-1":  1,
		"1":   1,
		"4":   4,
		"2.5": 1,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParsePage(raw), "raw=%q", raw)
	}
}

func TestRequestFromURL(t *testing.T) {
	u := mustURL(t, "https://api.example.com/v1/storelists/3/items?q=Milk&page=2")
	req := RequestFromURL(u)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, "Milk", req.Query)

	link := req.link(3)
	assert.Equal(t, "https://api.example.com/v1/storelists/3/items?page=3&q=Milk", *link)
}
