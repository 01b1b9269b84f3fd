//go:build !linux

package input

import "context"

// Listen is unavailable off linux; it returns ErrUnsupported.
func Listen(ctx context.Context, config BackButtonConfig, onBack func()) error {
	return ErrUnsupported
}
