package middleware

import "net/http"

// Chain folds a middleware list into one. The list reads outside-in:
//
//	Chain(Recovery(log), Logging(log))(h)
//
// behaves as Recovery(Logging(h)), so the first entry sees the request first
// and the response last.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
