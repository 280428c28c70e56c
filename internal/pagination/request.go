// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"net/url"
	"strconv"
)

// Query parameters understood by [RequestFromURL].
const (
	QueryParam = "q"
	PageParam  = "page"
)

// Request describes which page of a scope the caller wants.
type Request struct {
	// Page is 1-indexed. Values below 1 are treated as 1.
	Page int
	// Query is the raw search string as the caller sent it. It is
	// normalized before it reaches the scope and echoed verbatim in links.
	Query string
	// BaseURL is the absolute URL of the listing endpoint. Links are built
	// by replacing its query string.
	BaseURL *url.URL
}

// RequestFromURL reads the page and search query from u.
func RequestFromURL(u *url.URL) Request {
	values := u.Query()
	return Request{
		Page:    ParsePage(values.Get(PageParam)),
		Query:   values.Get(QueryParam),
		BaseURL: u,
	}
}

// ParsePage converts a raw page parameter. Anything that is not a positive
// integer yields the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// link returns the URL of page number, keeping q when the request had one.
func (r Request) link(number int) *string {
	var u url.URL
	if r.BaseURL != nil {
		u = *r.BaseURL
	}

	values := url.Values{}
	if r.Query != "" {
		values.Set(QueryParam, r.Query)
	}
	values.Set(PageParam, strconv.Itoa(number))

	u.RawQuery = values.Encode()
	u.Fragment = ""

	link := u.String()
	return &link
}
