// Package datadevice implements drag-and-drop and selection (clipboard)
// transfers between clients.
//
// Every object here is owned by some client and can disappear at any
// moment, so no object holds a reference to another without also
// registering a destruction listener that drops that reference. None of
// the types in this package are safe for concurrent use. They are
// meant to be driven from a single event dispatch loop.
package datadevice

import (
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/notify"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Serials allocates event serial numbers.
type Serials interface {
	NextSerial() uint32
}

type dragState struct {
	active bool
	client input.Client

	source         *Source
	sourceListener *notify.Listener

	icon         input.Surface
	iconListener *notify.Listener

	focus         input.Surface
	focusDevice   *Device
	focusListener *notify.Listener
}

type selectionState struct {
	source   *Source
	serial   uint32
	listener *notify.Listener
}

// Seat holds the drag and selection state of a single seat along with
// every Device that has been created for it.
type Seat struct {
	name     string
	pointer  *input.Pointer
	keyboard *input.Keyboard
	serials  Serials
	logger   zerolog.Logger

	devices []*Device

	drag      dragState
	selection selectionState

	selectionSignal notify.Signal[*Seat]
	dragIconSignal  notify.Signal[input.Surface]
}

// NewSeat returns a seat with its own pointer and keyboard. Serials
// for drag events are allocated from serials.
func NewSeat(name string, serials Serials, logger zerolog.Logger) *Seat {
	seat := Seat{
		name:     name,
		pointer:  input.NewPointer(),
		keyboard: input.NewKeyboard(),
		serials:  serials,
		logger:   logger.With().Str("component", "datadevice").Str("seat", name).Logger(),
	}
	seat.keyboard.OnFocus(func(input.Surface) { seat.KeyboardFocusChanged() })

	return &seat
}

// Name returns the seat's name.
func (seat *Seat) Name() string {
	return seat.name
}

// Pointer returns the seat's pointer.
func (seat *Seat) Pointer() *input.Pointer {
	return seat.pointer
}

// Keyboard returns the seat's keyboard.
func (seat *Seat) Keyboard() *input.Keyboard {
	return seat.keyboard
}

// NewDevice creates a device for client on the seat. No attempt is
// made to prevent a client from having more than one device on the
// same seat.
func (seat *Seat) NewDevice(client input.Client, sink DeviceSink) *Device {
	device := Device{
		seat:   seat,
		client: client,
		sink:   sink,
	}
	seat.devices = append(seat.devices, &device)

	seat.logger.Debug().
		Str("op", "NewDevice").
		Int("devices", len(seat.devices)).
		Msg("data device bound")

	return &device
}

// FindDevice returns a device belonging to client, or nil if the
// client has none. If the client has more than one, the most recently
// created is returned.
func (seat *Seat) FindDevice(client input.Client) *Device {
	for i := len(seat.devices) - 1; i >= 0; i-- {
		if seat.devices[i].client == client {
			return seat.devices[i]
		}
	}
	return nil
}

func (seat *Seat) removeDevice(device *Device) {
	i := slices.Index(seat.devices, device)
	if i < 0 {
		return
	}
	seat.devices = slices.Delete(seat.devices, i, i+1)

	seat.logger.Debug().
		Str("op", "removeDevice").
		Int("devices", len(seat.devices)).
		Msg("data device unbound")
}

// OnSelection registers f to be called whenever the seat's selection
// changes.
func (seat *Seat) OnSelection(f func(*Seat)) *notify.Listener {
	return seat.selectionSignal.Add(f)
}

// OnDragIcon registers f to be called whenever a drag icon is
// attached to the pointer or removed from it. f is called with nil
// when the icon is removed.
func (seat *Seat) OnDragIcon(f func(input.Surface)) *notify.Listener {
	return seat.dragIconSignal.Add(f)
}

// Selection returns the source of the current selection, or nil if
// there is none.
func (seat *Seat) Selection() *Source {
	return seat.selection.source
}

// SelectionSerial returns the serial of the last accepted selection
// claim.
func (seat *Seat) SelectionSerial() uint32 {
	return seat.selection.serial
}

// Dragging reports whether a drag is in progress.
func (seat *Seat) Dragging() bool {
	return seat.drag.active
}

// DragSource returns the source of the drag in progress, if any.
func (seat *Seat) DragSource() *Source {
	return seat.drag.source
}

// DragClient returns the client that started the drag in progress.
func (seat *Seat) DragClient() input.Client {
	return seat.drag.client
}

// DragIcon returns the icon of the drag in progress, if any.
func (seat *Seat) DragIcon() input.Surface {
	return seat.drag.icon
}

// DragFocus returns the surface that the drag in progress has
// entered and the device that was told about it. Both are nil if the
// drag is not over a surface that can accept it.
func (seat *Seat) DragFocus() (input.Surface, *Device) {
	return seat.drag.focus, seat.drag.focusDevice
}

func (seat *Seat) keyboardDevice() *Device {
	if seat.keyboard == nil {
		return nil
	}

	client := seat.keyboard.FocusClient()
	if client == nil {
		return nil
	}
	return seat.FindDevice(client)
}
