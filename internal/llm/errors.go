package llm

import "fmt"

// UpstreamError indicates the external generation service failed: network,
// quota, or an unusable response. Nothing in this system retries it; the
// failure propagates to the caller.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation service failed during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("generation service failed during %s", e.Op)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
