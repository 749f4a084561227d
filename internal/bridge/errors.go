package bridge

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures to obtain a payload from the remote source.
var ErrTransport = errors.New("bridge: transport failure")

// TransportError describes a failed fetch. Status is zero when no response
// was received.
type TransportError struct {
	Endpoint string
	Status   int
	Err      error
}

func (err *TransportError) Error() string {
	if err.Status != 0 {
		return fmt.Sprintf("fetch %s: http %d: %v", err.Endpoint, err.Status, err.Err)
	}
	return fmt.Sprintf("fetch %s: %v", err.Endpoint, err.Err)
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

// Is matches ErrTransport.
func (err *TransportError) Is(target error) bool {
	return target == ErrTransport
}
