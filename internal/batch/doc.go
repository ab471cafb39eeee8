// Package batch renders one shape list into several languages at once.
//
// The report core is pure and single threaded. This package only fans
// independent renders out over goroutines using errgroup, bounded by a
// concurrency limit, and collects the results in the caller's language
// order.
package batch
