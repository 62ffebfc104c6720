package datadevice

import "math"

// serialIsStale reports whether a claim made with serial should lose
// to one already made with current. Serials wrap, so serial is only
// newer if it is less than half of the serial space ahead of current.
func serialIsStale(current, serial uint32) bool {
	return current-serial < math.MaxUint32/2
}

// SetSelection makes source the seat's selection. A nil source clears
// the selection.
//
// If the seat already has a selection that was claimed with a serial
// newer than or equal to serial, the claim is ignored.
func (seat *Seat) SetSelection(source *Source, serial uint32) {
	log := seat.logger.With().Str("op", "SetSelection").Uint32("serial", serial).Logger()

	if (source != nil) && source.Destroyed() {
		return
	}

	if (seat.selection.source != nil) && serialIsStale(seat.selection.serial, serial) {
		log.Debug().
			Uint32("current_serial", seat.selection.serial).
			Msg("stale selection claim ignored")
		return
	}

	if prev := seat.selection.source; prev != nil {
		seat.selection.listener.Remove()
		seat.selection.source, seat.selection.listener = nil, nil
		prev.handler.Cancel()
	}

	seat.selection.source = source
	seat.selection.serial = serial
	if source != nil {
		seat.selection.listener = source.OnDestroy(seat.selectionSourceDestroyed)
	}

	if device := seat.keyboardDevice(); device != nil {
		if source != nil {
			device.sink.Selection(newOffer(source, device))
		} else {
			device.sink.Selection(nil)
		}
	}

	seat.selectionSignal.Emit(seat)

	log.Debug().
		Bool("cleared", source == nil).
		Strs("mime_types", source.mimeTypesOrNil()).
		Msg("selection set")
}

func (seat *Seat) selectionSourceDestroyed() {
	seat.selection.source, seat.selection.listener = nil, nil

	if device := seat.keyboardDevice(); device != nil {
		device.sink.Selection(nil)
	}

	seat.selectionSignal.Emit(seat)

	seat.logger.Debug().
		Str("op", "selectionSourceDestroyed").
		Msg("selection source destroyed")
}

// KeyboardFocusChanged sends the current selection, if there is one,
// to the client that now has keyboard focus. It is called
// automatically when the seat's keyboard focus changes.
func (seat *Seat) KeyboardFocusChanged() {
	device := seat.keyboardDevice()
	if device == nil {
		return
	}

	source := seat.selection.source
	if source == nil {
		return
	}

	device.sink.Selection(newOffer(source, device))
}
