package wl

import (
	"deedles.dev/wldnd/datadevice"
	"deedles.dev/wldnd/wire"
)

// AddSeat creates a seat and advertises it to clients as a wl_seat
// global. The seat claims pointer and keyboard capabilities, but the
// wl_pointer and wl_keyboard objects that clients get from it never
// send any events. Input is fed to the returned seat directly.
func (server *Server) AddSeat(name string) *datadevice.Seat {
	seat := datadevice.NewSeat(name, server, server.logger)

	server.AddGlobal(SeatInterface, SeatVersion, func(client *Client, version, id uint32) {
		obj := NewSeat(client)
		obj.SetID(id)
		obj.SetVersion(version)
		obj.Listener = &seatResource{obj: obj, seat: seat}
		client.Add(obj)

		obj.Capabilities(uint32(SeatCapabilityPointer | SeatCapabilityKeyboard))
		if version >= 2 {
			obj.Name(name)
		}
	})

	return seat
}

type seatResource struct {
	obj  *Seat
	seat *datadevice.Seat
}

// seatOf returns the seat that obj was bound from.
func seatOf(obj *Seat) *datadevice.Seat {
	res, ok := obj.Listener.(*seatResource)
	if !ok {
		return nil
	}
	return res.seat
}

func (res *seatResource) GetPointer(id *Pointer) {
	id.Listener = &inputListener{obj: id}
}

func (res *seatResource) GetKeyboard(id *Keyboard) {
	id.Listener = &inputListener{obj: id}
}

func (res *seatResource) GetTouch(id *Touch) {
	id.Listener = &inputListener{obj: id}
}

func (res *seatResource) Release() {
	res.obj.client.Delete(res.obj.id)
}

// inputListener handles the requests of wl_pointer, wl_keyboard, and
// wl_touch objects, all of which are inert.
type inputListener struct {
	obj interface {
		wire.Object
		Client() *Client
	}
}

func (il *inputListener) SetCursor(serial uint32, surface *Surface, hotspotX, hotspotY int32) {}

func (il *inputListener) Release() {
	il.obj.Client().Delete(il.obj.ID())
}
