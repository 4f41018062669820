// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. A request for an existing path with an unsupported method gets
// the same 404 as an unknown path, so callers cannot probe which routes
// exist. The body follows the requested format.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, msgNotFound)
}
