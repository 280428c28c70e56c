// Package http implements the REST transport of the store-keeper server.
//
// It wires the /v1 routes, decodes JSON payloads, authenticates requests
// with bearer tokens and resolves the store and item a URL points at before
// any handler runs. Errors coming back from the services are turned into
// {"status":"failed","message":...} envelopes by a single mapping table.
package http
