// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
reconstruction of absolute URLs behind reverse proxies.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/pkg/commalist"
	"github.com/taibuivan/catalog/pkg/pointer"
)

/*
ID retrieves a named numeric URL parameter from the request.

Returns:
  - int64: The parsed identifier
  - bool: false if the parameter is missing or not a positive integer
*/
func ID(request *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

/*
Query retrieves a query-string parameter, trimmed of surrounding whitespace.
*/
func Query(request *http.Request, key string) string {
	return strings.TrimSpace(request.URL.Query().Get(key))
}

/*
OptionalBool reads a tri-state flag from the query string.

Only the literals "true" and "false" are recognised. Any other value, or
an absent parameter, yields nil so the caller applies no filter.
*/
func OptionalBool(request *http.Request, key string) *bool {
	switch request.URL.Query().Get(key) {
	case "true":
		return pointer.To(true)
	case "false":
		return pointer.To(false)
	default:
		return nil
	}
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
AbsoluteURL joins path onto the public origin of the request.

If baseURL is non-empty it is used verbatim as the origin. Otherwise the
origin is rebuilt from X-Forwarded-Proto / TLS and X-Forwarded-Host / Host.
*/
func AbsoluteURL(request *http.Request, baseURL, path string) string {
	if baseURL != "" {
		return baseURL + path
	}

	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	if forwarded := request.Header.Get(constants.HeaderXForwardedProto); forwarded != "" {
		scheme = commalist.First(forwarded)
	}

	host := request.Host
	if forwarded := request.Header.Get(constants.HeaderXForwardedHost); forwarded != "" {
		host = commalist.First(forwarded)
	}

	return scheme + "://" + host + path
}
