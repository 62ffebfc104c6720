// Package input provides the parts of a seat that data transfer
// depends on: surfaces that can be focused, a pointer whose events can
// be intercepted by a grab, and a keyboard focus.
package input

import "deedles.dev/wldnd/notify"

// Client identifies the connection that owns a resource. Values must
// be comparable. Two resources belong to the same client if and only
// if their Client values are equal.
type Client any

// Surface is a client-owned surface that can be given pointer or
// keyboard focus.
type Surface interface {
	// Client returns the client that owns the surface.
	Client() Client

	// OnDestroy registers f to be called when the surface is
	// destroyed. It returns nil if the surface is already gone.
	OnDestroy(f func()) *notify.Listener
}
