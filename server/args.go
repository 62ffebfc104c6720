package wl

import (
	"errors"
	"fmt"

	"deedles.dev/wldnd/wire"
)

// ErrNullNewID is returned when a client sends zero as the ID of a
// new object.
var ErrNullNewID = errors.New("new_id argument is null")

// newObjectArg reads a new_id argument from msg and assigns it to obj.
func newObjectArg(client *Client, msg *wire.MessageBuffer, obj wire.Object) error {
	id := msg.ReadUint()
	if err := msg.Err(); err != nil {
		return err
	}
	if err := checkNewID(client, id); err != nil {
		return err
	}

	obj.SetID(id)
	return nil
}

func checkNewID(client *Client, id uint32) error {
	if id == 0 {
		return ErrNullNewID
	}
	if id >= serverIDStart {
		return fmt.Errorf("new_id %v is in the server range", id)
	}
	if client.Get(id) != nil {
		return fmt.Errorf("new_id %v is already in use", id)
	}
	return nil
}

// objectArg reads an object argument from msg and resolves it to an
// object of type T. If nullable is true, a null ID yields the zero
// value of T.
func objectArg[T wire.Object](client *Client, msg *wire.MessageBuffer, method, arg string, nullable bool) (T, error) {
	var zero T

	id := msg.ReadUint()
	if err := msg.Err(); err != nil {
		return zero, err
	}
	if id == 0 {
		if nullable {
			return zero, nil
		}
		return zero, fmt.Errorf("%v: argument %v is null", method, arg)
	}

	v := client.Get(id)
	if v == nil {
		return zero, fmt.Errorf("%v: argument %v: unknown object %v", method, arg, id)
	}
	obj, ok := v.(T)
	if !ok {
		return zero, wire.ArgumentTypeError{Method: method, Arg: arg, ID: id}
	}
	return obj, nil
}
