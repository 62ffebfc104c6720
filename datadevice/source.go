package datadevice

import (
	"errors"
	"os"

	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/notify"
	"golang.org/x/exp/slices"
)

// DefaultMaxMimeTypes is the number of MIME types that a Source can
// hold if no other limit is configured.
const DefaultMaxMimeTypes = 256

// ErrNoMemory is returned when a request would grow an object past its
// capacity. It should be reported to the requesting client as a
// no_memory protocol error.
var ErrNoMemory = errors.New("out of memory")

// SourceHandler implements the operations that the data transfer
// machinery can request of a source's owner.
type SourceHandler interface {
	// Accept tells the owner that a target accepts mimeType, or that
	// it accepts nothing if mimeType is empty.
	Accept(serial uint32, mimeType string)

	// Send asks the owner to write its data as mimeType to fd. The
	// handler takes ownership of fd and must eventually close it.
	Send(mimeType string, fd *os.File)

	// Cancel tells the owner that the source is no longer in use.
	Cancel()
}

// Source is a client's advertisement of transferable content. It is
// identified by the list of MIME types it has been offered as, in the
// order that they were offered.
type Source struct {
	client    input.Client
	handler   SourceHandler
	mimeTypes []string
	max       int

	destroy notify.Destroy
}

// NewSource creates a source owned by client whose operations are
// implemented by handler.
func NewSource(client input.Client, handler SourceHandler) *Source {
	return &Source{
		client:  client,
		handler: handler,
		max:     DefaultMaxMimeTypes,
	}
}

// SetMaxMimeTypes sets the maximum number of MIME types that the
// source will accept. A value of zero or less removes the limit.
func (source *Source) SetMaxMimeTypes(max int) {
	source.max = max
}

// Client returns the client that owns the source.
func (source *Source) Client() input.Client {
	return source.client
}

// Offer appends mimeType to the source's list of types. Duplicates
// are kept. It returns ErrNoMemory if the list is full.
func (source *Source) Offer(mimeType string) error {
	if source.destroy.Fired() {
		return nil
	}
	if (source.max > 0) && (len(source.mimeTypes) >= source.max) {
		return ErrNoMemory
	}

	source.mimeTypes = append(source.mimeTypes, mimeType)
	return nil
}

// MimeTypes returns a copy of the source's current list of types.
func (source *Source) MimeTypes() []string {
	return slices.Clone(source.mimeTypes)
}

// OnDestroy registers f to be called when the source is destroyed.
// Every holder of a reference to a Source must register one and drop
// its reference when it is called. It returns nil if the source has
// already been destroyed.
func (source *Source) OnDestroy(f func()) *notify.Listener {
	return source.destroy.Add(f)
}

// Destroyed reports whether Destroy has been called.
func (source *Source) Destroyed() bool {
	return source.destroy.Fired()
}

// Destroy destroys the source. All destruction listeners run before
// the source releases its state.
func (source *Source) Destroy() {
	if source.destroy.Fired() {
		return
	}

	source.destroy.Emit()
	source.mimeTypes = nil
}

func (source *Source) mimeTypesOrNil() []string {
	if source == nil {
		return nil
	}
	return source.mimeTypes
}
