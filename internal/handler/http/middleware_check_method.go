// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound answers unknown routes with the JSON envelope. It is also
// registered as the MethodNotAllowed handler, so an unsupported method on a
// known route is reported as 404 rather than 405.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrResourceNotFound)
}
