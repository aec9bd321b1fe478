// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package http

import (
	"net/http"

	"github.com/Raphalinho91/user-accounts/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed when a path matches a registered route
// but the method is not handled. This handler answers 404 Not Found instead,
// hiding the existence of the route from callers that use an unsupported
// method. Chi only calls it for unregistered methods and copies it into
// every sub-router, so it must never dispatch the request again.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "")
}
