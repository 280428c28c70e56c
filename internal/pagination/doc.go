// Package pagination windows an ownership-scoped collection into numbered
// pages and builds the previous/next links that accompany each page.
//
// A [Scope] is responsible for restricting rows to the caller and for the
// total ordering of the result; the [Paginator] only normalizes the search
// filter, counts matches, and fetches the requested window.
package pagination
