// Package httputil provides shared HTTP response/request utilities for handlers.
//
// Handlers use these helpers instead of writing raw http.ResponseWriter
// calls so that every endpoint produces the same JSON envelopes: errors
// as {"error": "..."} and nothing but the agreed message strings ever
// crossing the HTTP boundary.
package httputil
