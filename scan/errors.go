package scan

import "errors"

// ErrNoMatchFound is returned by CardinalPoints.Width and Height when no
// pixel in the scanned region satisfied the predicate.
var ErrNoMatchFound = errors.New("scan: no matching pixel found")
