package light

import (
	"errors"
	"fmt"
)

// Error kinds shared by the parsers and both backends. Parse errors are
// returned before any I/O is attempted; transport failures are wrapped
// into one of these and never surfaced raw. Match with errors.Is.
var (
	ErrInvalidColor       = errors.New("color value not recognized")
	ErrInvalidPattern     = errors.New("pattern value not recognized")
	ErrInvalidLED         = errors.New("LED number invalid or not supported by the device")
	ErrInvalidDeviceID    = errors.New("device ID incorrectly formatted")
	ErrDeviceNotFound     = errors.New("no device found")
	ErrInvalidRequest     = errors.New("device rejected the request")
	ErrUnsupportedCommand = errors.New("command not supported by this device connection")
)

// UnexpectedStatusError reports a non-2xx response from the webhook API.
// The response body is logged at the transport boundary, not carried here.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}
