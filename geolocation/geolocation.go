// Package geolocation wraps the device location API behind a single-shot
// capture call. The device itself is an external collaborator injected as a
// Provider; this package only adds the timeout and error taxonomy the
// action form relies on.
package geolocation

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnsupported means there is no location capability at all.
	ErrUnsupported = errors.New("geolocation: not supported on this device")
	// ErrPermissionDenied means the user refused the location prompt.
	// Recoverable: the user may grant permission and recapture.
	ErrPermissionDenied = errors.New("geolocation: permission denied")
	// ErrPositionUnavailable means the device could not produce a fix.
	ErrPositionUnavailable = errors.New("geolocation: position unavailable")
)

// Position is a single coordinate reading.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters
}

// Provider is the device location API.
type Provider interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// DefaultTimeout bounds a single capture when the caller's context carries
// no deadline of its own.
const DefaultTimeout = 15 * time.Second

type Capturer struct {
	provider Provider
	timeout  time.Duration
}

func NewCapturer(provider Provider) *Capturer {
	return &Capturer{provider: provider, timeout: DefaultTimeout}
}

// Capture performs one hardware read and returns the reported position.
// A nil provider reports ErrUnsupported. A timed-out read is surfaced as
// ErrPositionUnavailable so the form can offer a retry.
func (c *Capturer) Capture(ctx context.Context) (Position, error) {
	if c == nil || c.provider == nil {
		return Position{}, ErrUnsupported
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	pos, err := c.provider.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Position{}, ErrPositionUnavailable
		}
		return Position{}, err
	}
	return pos, nil
}
