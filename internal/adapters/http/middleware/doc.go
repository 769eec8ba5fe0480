// Package middleware provides the inbound HTTP request pipeline.
//
// The server applies middleware in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// Recovery sits outermost so panics anywhere below it are caught. The id
// middlewares run before OpenTelemetry and Logging so both can pick the ids
// out of the request context. Each entry is a plain
// func(http.Handler) http.Handler and composes with Chain.
package middleware
