package handleseq

import "fmt"

// OpError reports a failed allocation inside a sequence operation. Op is the
// operation name ("Clone", "ReplaceCopy", ...), Index the position of the
// source element whose Clone or Copy failed, and Err the cause it returned.
type OpError struct {
	Op    string
	Index int
	Err   error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("handleseq: %s: element %d: %v", e.Op, e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}
