// Package async provides a minimal generic Future for the one suspension
// point this module has: image probing. A probe is started with Go, awaited
// with Await or AwaitWithTimeout, and synchronous fast paths (data-URL
// decodes) are wrapped with Resolved so callers handle both shapes
// uniformly.
//
// There is deliberately no cancellation token on the Future itself: a
// superseded probe is abandoned by the caller comparing generation counters
// at resolution time, not by interrupting the computation.
package async
