package proddesc

import "context"

// Pacer inserts a fixed pause between successive network operations.
type Pacer interface {
	// Wait pauses after an operation, before the next one starts.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
