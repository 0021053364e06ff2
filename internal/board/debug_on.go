//go:build boarddebug

package board

// Debug enables precondition assertions. Build with -tags boarddebug to turn them on.
const Debug = true
