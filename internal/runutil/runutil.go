// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns n, or one worker per CPU when n <= 0.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ValidateChunking decides whether chunking is on and returns
// (chunkSize, overlap, warnings).
// Rules:
//   - chunkSize <= 0 disables chunking and ignores overlap
//   - overlap 0 is allowed, but repeats straddling a window border are
//     then only seen in pieces
//   - a repeat longer than overlap can still be cut; the warning says so
func ValidateChunking(chunkSize, overlap int) (int, int, []string) {
	if chunkSize <= 0 {
		return 0, 0, nil
	}
	if overlap < 0 {
		overlap = 0
	}
	var warns []string
	if overlap == 0 {
		warns = append(warns, "--chunk-size without --overlap splits repeats that cross window borders")
	} else if overlap < chunkSize/10 {
		warns = append(warns, "--overlap is small; repeats longer than the overlap may be reported in pieces")
	}
	return chunkSize, overlap, warns
}
