package wire

import (
	"fmt"
)

// UnknownOpError is returned by Object.Dispatch if it is given a
// message with an invalid opcode.
type UnknownOpError struct {
	Interface string
	Type      string
	Op        uint16
}

func (err UnknownOpError) Error() string {
	return fmt.Sprintf("unknown %v opcode for %v: %v", err.Type, err.Interface, err.Op)
}

// UnknownSenderIDError is returned by an attempt to dispatch an
// incoming message that indicates a method call on an object that the
// receiving end doesn't know about.
type UnknownSenderIDError struct {
	Msg *MessageBuffer
}

func (err UnknownSenderIDError) Error() string {
	return fmt.Sprintf("unknown sender object ID: %v", err.Msg.Sender())
}

// ArgumentTypeError is returned by Object.Dispatch when an object
// argument refers to an object of the wrong interface.
type ArgumentTypeError struct {
	Method string
	Arg    string
	ID     uint32
}

func (err ArgumentTypeError) Error() string {
	return fmt.Sprintf("%v: argument %v: object %v has the wrong interface", err.Method, err.Arg, err.ID)
}
