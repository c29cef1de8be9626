// Package engine wraps the inverted-repeat core with tracing, metrics and
// logging. It never imports cli, writers or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types.
package engine
