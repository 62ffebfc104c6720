package datadevice

import (
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/notify"
	"deedles.dev/wldnd/wire"
)

// DeviceSink receives the events that are sent to a client's Device.
type DeviceSink interface {
	// DataOffer introduces a new offer to the client. It returns the
	// sink for that offer's own events.
	DataOffer(offer *Offer) OfferSink

	// Enter is sent when a drag enters one of the client's surfaces.
	// offer is nil if the drag carries no data.
	Enter(serial uint32, surface input.Surface, x, y wire.Fixed, offer *Offer)

	// Leave is sent when a drag leaves the surface that it last
	// entered.
	Leave()

	// Motion is sent when a drag moves within the entered surface.
	Motion(time uint32, x, y wire.Fixed)

	// Drop is sent when the drag is dropped onto the entered surface.
	Drop()

	// Selection is sent when the selection changes while the client
	// has keyboard focus, or when it gains keyboard focus. offer is nil
	// if the selection has been cleared.
	Selection(offer *Offer)
}

// Device is a client's endpoint for drag and selection events on a
// seat.
type Device struct {
	seat    *Seat
	client  input.Client
	sink    DeviceSink
	destroy notify.Destroy
}

// Seat returns the seat that the device belongs to.
func (device *Device) Seat() *Seat {
	return device.seat
}

// Client returns the client that owns the device.
func (device *Device) Client() input.Client {
	return device.client
}

// Sink returns the device's event sink.
func (device *Device) Sink() DeviceSink {
	return device.sink
}

// OnDestroy registers f to be called when the device is destroyed.
func (device *Device) OnDestroy(f func()) *notify.Listener {
	return device.destroy.Add(f)
}

// Destroy unbinds the device from its seat.
func (device *Device) Destroy() {
	if device.destroy.Fired() {
		return
	}

	device.destroy.Emit()
	device.seat.removeDevice(device)
}

// StartDrag begins a drag-and-drop gesture on the device's seat on
// behalf of the device's client. source may be nil, in which case the
// drag carries no data and can only enter the client's own surfaces.
// icon, if not nil, is a surface to be drawn under the pointer for the
// duration of the drag.
func (device *Device) StartDrag(source *Source, origin, icon input.Surface, serial uint32) {
	if device.destroy.Fired() {
		return
	}
	device.seat.startDrag(device.client, source, origin, icon, serial)
}

// SetSelection claims the seat's selection for source. A nil source
// clears the selection.
func (device *Device) SetSelection(source *Source, serial uint32) {
	if device.destroy.Fired() {
		return
	}
	device.seat.SetSelection(source, serial)
}
