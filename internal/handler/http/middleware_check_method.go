// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is installed as the chi router's MethodNotAllowed
// handler.
//
// Chi calls it only when a path matches a route but the method does not. It
// answers 404 Not Found instead of 405, so callers using the wrong method
// learn nothing about which paths exist. It must not re-enter the router:
// the same lookup would land here again.
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
