package engine

import "errors"

// ErrCancelled is returned by callers driving a Solve from a CancelFlag once
// they observe it stopped before reaching a terminal verdict; Solve itself
// returns a Verdict, not an error, so this is for the CLI layer to report
// why a solve was cut short.
var ErrCancelled = errors.New("engine: solve cancelled")
