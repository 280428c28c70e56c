// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter records the status code and body size of a response for
// the access log written by withLogging.
//
// Handlers that never call WriteHeader explicitly are recorded as 200,
// the status net/http sends on the first Write.
type responseWriter struct {
	http.ResponseWriter

	// status is the first status code sent to the client.
	status int

	// wroteHeader is set once the status line has been forwarded.
	wroteHeader bool

	// size counts body bytes accepted by the underlying writer.
	size int
}

// WriteHeader records statusCode and forwards it to the wrapped writer.
// Only the first call has any effect; later calls are dropped so net/http
// does not log "superfluous WriteHeader".
//
// Parameters:
//
//	statusCode - HTTP status code to send
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends b to the wrapped writer and adds the accepted byte count to
// size. A Write before any WriteHeader records the implicit 200.
//
// Parameters:
//
//	b - body chunk to write
//
// Returns:
//
//	int   - number of bytes the wrapped writer accepted
//	error - error reported by the wrapped writer
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer, e.g.
// to flush or to set per-request deadlines.
//
// Returns:
//
//	http.ResponseWriter - the writer this one wraps
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
