package datadevice

import (
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/pointer"
	"deedles.dev/wldnd/wire"
)

func (seat *Seat) startDrag(client input.Client, source *Source, origin, icon input.Surface, serial uint32) {
	if seat.pointer == nil {
		return
	}
	if (source != nil) && source.Destroyed() {
		return
	}

	if seat.drag.active {
		seat.endDrag()
	}

	seat.drag.active = true
	seat.drag.client = client

	if source != nil {
		seat.drag.source = source
		seat.drag.sourceListener = source.OnDestroy(func() {
			seat.drag.sourceListener = nil
			seat.endDrag()
		})
	}

	if icon != nil {
		seat.drag.icon = icon
		seat.drag.iconListener = icon.OnDestroy(func() {
			seat.drag.icon, seat.drag.iconListener = nil, nil
		})
		seat.dragIconSignal.Emit(icon)
	}

	seat.logger.Debug().
		Str("op", "startDrag").
		Uint32("serial", serial).
		Bool("has_source", source != nil).
		Bool("has_icon", icon != nil).
		Bool("has_origin", origin != nil).
		Msg("drag started")

	seat.pointer.SetFocus(nil, 0, 0)
	seat.pointer.StartGrab((*dragGrab)(seat))
}

func (seat *Seat) endDrag() {
	if !seat.drag.active {
		return
	}

	seat.drag.sourceListener.Remove()
	seat.drag.source, seat.drag.sourceListener = nil, nil
	seat.drag.client = nil

	(*dragGrab)(seat).Focus(nil, 0, 0)

	if seat.drag.icon != nil {
		seat.drag.iconListener.Remove()
		seat.drag.icon, seat.drag.iconListener = nil, nil
		seat.dragIconSignal.Emit(nil)
	}

	seat.drag.active = false
	seat.pointer.EndGrab()

	seat.logger.Debug().
		Str("op", "endDrag").
		Msg("drag ended")
}

// dragGrab is the pointer grab that is installed for the duration of
// a drag.
type dragGrab Seat

func (g *dragGrab) Focus(surface input.Surface, x, y wire.Fixed) {
	seat := (*Seat)(g)

	if seat.drag.focusDevice != nil {
		seat.drag.focusDevice.sink.Leave()
		seat.drag.focusListener.Remove()
	}
	seat.drag.focus, seat.drag.focusDevice, seat.drag.focusListener = nil, nil, nil

	if surface == nil {
		return
	}

	// Drags without data can't leave the client that started them.
	if (seat.drag.source == nil) && (surface.Client() != seat.drag.client) {
		return
	}

	device := seat.FindDevice(surface.Client())
	if device == nil {
		return
	}

	serial := seat.serials.NextSerial()

	var offer *Offer
	if seat.drag.source != nil {
		offer = newOffer(seat.drag.source, device)
	}

	device.sink.Enter(serial, surface, x, y, offer)

	seat.drag.focus = surface
	seat.drag.focusDevice = device
	seat.drag.focusListener = device.OnDestroy(func() {
		seat.drag.focus, seat.drag.focusDevice, seat.drag.focusListener = nil, nil, nil
	})

	seat.logger.Trace().
		Str("op", "dragFocus").
		Uint32("serial", serial).
		Bool("has_offer", offer != nil).
		Msg("drag entered surface")
}

func (g *dragGrab) Motion(time uint32, x, y wire.Fixed) {
	seat := (*Seat)(g)
	if seat.drag.focusDevice == nil {
		return
	}

	seat.drag.focusDevice.sink.Motion(time, x, y)
}

func (g *dragGrab) Button(time uint32, button pointer.Button, state pointer.ButtonState) {
	seat := (*Seat)(g)

	if (seat.drag.focusDevice != nil) &&
		(seat.pointer.GrabButton() == button) &&
		(state == pointer.Released) {
		seat.drag.focusDevice.sink.Drop()
	}

	if (seat.pointer.ButtonCount() == 0) && (state == pointer.Released) {
		seat.endDrag()
	}
}
