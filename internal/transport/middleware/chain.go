// Package middleware provides the HTTP middleware stack for the word API
// server: request IDs, request logging, panic recovery, CORS, and per-IP
// rate limiting on the admin routes.
package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware into one. Application order follows the
// argument order: Chain(mw1, mw2)(h) yields mw1(mw2(h)), mw1 outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
