//go:build !linux

package ui

import "context"

// Watch is a no-op on non-Linux platforms.
func (r *Remote) Watch(ctx context.Context) error {
	return nil
}
