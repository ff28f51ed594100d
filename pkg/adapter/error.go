package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// AdapterError wraps provider errors with status metadata. Timeouts are
// reported as deadline-exceeded wrapped errors and count as call failures.
type AdapterError struct {
	Adapter string
	Status  int
	Err     error
}

func (e *AdapterError) Error() string {
	if e == nil {
		return "adapter error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Adapter, e.Err)
	}
	return fmt.Sprintf("%s error (status=%d)", e.Adapter, e.Status)
}

func (e *AdapterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsCallFailure reports whether the error represents a failed provider call
// (network, rate limit, timeout, malformed response) as opposed to caller
// misuse. Timeout is treated the same as any other API failure.
func IsCallFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var adapterErr *AdapterError
	return errors.As(err, &adapterErr)
}
