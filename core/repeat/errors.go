package repeat

import "errors"

// ErrInvariantViolation marks structurally malformed input: bad segment
// arms, unordered segments or mismatched candidate and score lists.
// It signals a caller bug, never a transient condition.
var ErrInvariantViolation = errors.New("structural invariant violation")
