// Package processor runs the pixel transforms on a background goroutine so
// an interactive caller never blocks on the O(W·H) loops.
//
// Each request returns a receive-only channel that yields exactly one Result
// and is then closed. Requests are served one at a time in submission order.
// Cancelling a request's context discards its result: the caller receives the
// context error instead of an image, and no partial output is ever observable.
package processor
