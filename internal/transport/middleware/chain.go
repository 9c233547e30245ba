package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first argument is outermost:
// Chain(a, b)(h) serves as a(b(h)). Nil entries are skipped, which lets a
// constructor return nil when its feature is switched off in config.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := range mws {
			mw := mws[len(mws)-1-i]
			if mw == nil {
				continue
			}
			wrapped = mw(wrapped)
		}
		return wrapped
	}
}
