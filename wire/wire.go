// Package wire defines types helpful for dealing with the Wayland
// wire protocol. It is primarly intended for usage by generated code.
package wire

import "fmt"

// MaxFDs is the maximum number of file descriptors that may accompany
// a single message.
const MaxFDs = 28

// Object represents a Wayland protocol object.
type Object interface {
	// Dispatch performs the operation requested by the message in the
	// buffer.
	Dispatch(msg *MessageBuffer) error

	// ID returns the object's ID. An ID of zero indicates that the
	// object has not yet been assigned one.
	ID() uint32
	SetID(id uint32)

	// Delete is called when the object is removed from the tracking
	// system.
	Delete()

	// MethodName returns the name of the incoming message with the
	// given opcode. It is used for debugging.
	MethodName(op uint16) string
}

// NewID is an untyped new_id argument, which carries the interface
// and version along with the ID itself.
type NewID struct {
	Interface string
	Version   uint32
	ID        uint32
}

func (id NewID) String() string {
	return fmt.Sprintf("%v@%v(%v)", id.Interface, id.Version, id.ID)
}

func padding(length uint32) uint32 {
	return (4 - (length % 4)) % 4
}
