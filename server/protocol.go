// Generated from the core Wayland protocol, restricted to the
// interfaces that a data-transfer broker needs. Keep in sync with
// ../protocol/data-device.xml.

package wl

import (
	"fmt"
	"os"

	"deedles.dev/wldnd/wire"
)

const (
	DisplayInterface = "wl_display"
	DisplayVersion   = 1
)

// DisplayListener is a type that can respond to incoming messages for
// a Display object.
type DisplayListener interface {
	// The sync request asks the server to emit the 'done' event on the
	// returned wl_callback object. Since requests are handled in-order
	// and events are delivered in-order, this can be used as a barrier
	// to ensure all previous requests and the resulting events have
	// been handled.
	Sync(callback *Callback)

	// This request creates a registry object that allows the client to
	// list and bind the global objects available from the compositor.
	GetRegistry(registry *Registry)
}

// The core global object. This is a special singleton object. It is
// used for internal Wayland protocol features.
type Display struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DisplayListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewDisplay returns a newly instantiated Display. It is primarily
// intended for use by generated code.
func NewDisplay(client *Client) *Display {
	return &Display{client: client}
}

func (obj *Display) Client() *Client {
	return obj.client
}

func (obj *Display) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		callback := NewCallback(obj.client)
		if err := newObjectArg(obj.client, msg, callback); err != nil {
			return err
		}
		obj.client.Add(callback)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Sync(
			callback,
		)
		return nil

	case 1:
		registry := NewRegistry(obj.client)
		if err := newObjectArg(obj.client, msg, registry); err != nil {
			return err
		}
		obj.client.Add(registry)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.GetRegistry(
			registry,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_display",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Display) ID() uint32 {
	return obj.id
}

func (obj *Display) SetID(id uint32) {
	obj.id = id
}

func (obj *Display) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Display) String() string {
	return fmt.Sprintf("%v(%v)", "wl_display", obj.id)
}

func (obj *Display) MethodName(op uint16) string {
	switch op {
	case 0:
		return "sync"

	case 1:
		return "get_registry"
	}

	return "unknown method"
}

func (obj *Display) Interface() string {
	return DisplayInterface
}

func (obj *Display) Version() uint32 {
	return DisplayVersion
}

// The error event is sent out when a fatal (non-recoverable) error
// has occurred. The object_id argument is the object where the error
// occurred, most often in response to a request to that object. The
// code identifies the error and is defined by the object interface.
// As such, each interface defines its own set of error codes. The
// message is a brief description of the error, for (debugging)
// convenience.
func (obj *Display) Error(objectID wire.Object, code uint32, message string) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteObject(objectID)
	builder.WriteUint(code)
	builder.WriteString(message)

	builder.Method = "error"
	builder.Args = []any{objectID, code, message}
	obj.client.Enqueue(builder)
}

// This event is used internally by the object ID management logic.
// When a client deletes an object that it had created, the server
// will send this event to acknowledge that it has seen the delete
// request. When the client receives this event, it will know that it
// can safely reuse the object ID.
func (obj *Display) DeleteId(id uint32) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteUint(id)

	builder.Method = "delete_id"
	builder.Args = []any{id}
	obj.client.Enqueue(builder)
}

type DisplayError int64

const (
	// server couldn't find object
	DisplayErrorInvalidObject DisplayError = 0

	// method doesn't exist on the specified interface or malformed
	// request
	DisplayErrorInvalidMethod DisplayError = 1

	// server is out of memory
	DisplayErrorNoMemory DisplayError = 2

	// implementation error in compositor
	DisplayErrorImplementation DisplayError = 3
)

func (enum DisplayError) String() string {
	switch enum {
	case 0:
		return "DisplayErrorInvalidObject"

	case 1:
		return "DisplayErrorInvalidMethod"

	case 2:
		return "DisplayErrorNoMemory"

	case 3:
		return "DisplayErrorImplementation"
	}

	return "<invalid DisplayError>"
}

const (
	RegistryInterface = "wl_registry"
	RegistryVersion   = 1
)

// RegistryListener is a type that can respond to incoming messages
// for a Registry object.
type RegistryListener interface {
	// Binds a new, client-created object to the server using the
	// specified name as the identifier.
	Bind(name uint32, id wire.NewID)
}

// The singleton global registry object. The server has a number of
// global objects that are available to all clients. These objects
// typically represent an actual object in the server (for example, an
// input device) or they are singleton objects that provide extension
// functionality.
type Registry struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener RegistryListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewRegistry returns a newly instantiated Registry. It is primarily
// intended for use by generated code.
func NewRegistry(client *Client) *Registry {
	return &Registry{client: client}
}

func (obj *Registry) Client() *Client {
	return obj.client
}

func (obj *Registry) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		name := msg.ReadUint()
		id := msg.ReadNewID()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Bind(
			name,
			id,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_registry",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Registry) ID() uint32 {
	return obj.id
}

func (obj *Registry) SetID(id uint32) {
	obj.id = id
}

func (obj *Registry) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Registry) String() string {
	return fmt.Sprintf("%v(%v)", "wl_registry", obj.id)
}

func (obj *Registry) MethodName(op uint16) string {
	switch op {
	case 0:
		return "bind"
	}

	return "unknown method"
}

func (obj *Registry) Interface() string {
	return RegistryInterface
}

func (obj *Registry) Version() uint32 {
	return RegistryVersion
}

// Notify the client of global objects.
//
// The event notifies the client that a global object with the given
// name is now available, and it implements the given version of the
// given interface.
func (obj *Registry) Global(name uint32, _interface string, version uint32) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteUint(name)
	builder.WriteString(_interface)
	builder.WriteUint(version)

	builder.Method = "global"
	builder.Args = []any{name, _interface, version}
	obj.client.Enqueue(builder)
}

// Notify the client of removed global objects.
func (obj *Registry) GlobalRemove(name uint32) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteUint(name)

	builder.Method = "global_remove"
	builder.Args = []any{name}
	obj.client.Enqueue(builder)
}

const (
	CallbackInterface = "wl_callback"
	CallbackVersion   = 1
)

// Clients can handle the 'done' event to get notified when the
// related request is done.
type Callback struct {
	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewCallback returns a newly instantiated Callback. It is primarily
// intended for use by generated code.
func NewCallback(client *Client) *Callback {
	return &Callback{client: client}
}

func (obj *Callback) Client() *Client {
	return obj.client
}

func (obj *Callback) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{
		Interface: "wl_callback",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Callback) ID() uint32 {
	return obj.id
}

func (obj *Callback) SetID(id uint32) {
	obj.id = id
}

func (obj *Callback) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Callback) String() string {
	return fmt.Sprintf("%v(%v)", "wl_callback", obj.id)
}

func (obj *Callback) MethodName(op uint16) string {
	return "unknown method"
}

func (obj *Callback) Interface() string {
	return CallbackInterface
}

func (obj *Callback) Version() uint32 {
	return CallbackVersion
}

// Notify the client when the related request is done.
func (obj *Callback) Done(callbackData uint32) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteUint(callbackData)

	builder.Method = "done"
	builder.Args = []any{callbackData}
	obj.client.Enqueue(builder)
}

const (
	CompositorInterface = "wl_compositor"
	CompositorVersion   = 4
)

// CompositorListener is a type that can respond to incoming messages
// for a Compositor object.
type CompositorListener interface {
	// Ask the compositor to create a new surface.
	CreateSurface(id *Surface)

	// Ask the compositor to create a new region.
	CreateRegion(id *Region)
}

// A compositor. This object is a singleton global. The compositor is
// in charge of combining the contents of multiple surfaces into one
// displayable output.
type Compositor struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener CompositorListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewCompositor returns a newly instantiated Compositor. It is
// primarily intended for use by generated code.
func NewCompositor(client *Client) *Compositor {
	return &Compositor{client: client}
}

func (obj *Compositor) Client() *Client {
	return obj.client
}

func (obj *Compositor) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		id := NewSurface(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.CreateSurface(
			id,
		)
		return nil

	case 1:
		id := NewRegion(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.CreateRegion(
			id,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_compositor",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Compositor) ID() uint32 {
	return obj.id
}

func (obj *Compositor) SetID(id uint32) {
	obj.id = id
}

func (obj *Compositor) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Compositor) String() string {
	return fmt.Sprintf("%v(%v)", "wl_compositor", obj.id)
}

func (obj *Compositor) MethodName(op uint16) string {
	switch op {
	case 0:
		return "create_surface"

	case 1:
		return "create_region"
	}

	return "unknown method"
}

func (obj *Compositor) Interface() string {
	return CompositorInterface
}

func (obj *Compositor) Version() uint32 {
	return CompositorVersion
}

const (
	SurfaceInterface = "wl_surface"
	SurfaceVersion   = 4
)

// SurfaceListener is a type that can respond to incoming messages for
// a Surface object.
type SurfaceListener interface {
	// Deletes the surface and invalidates its object ID.
	Destroy()

	// Set a buffer as the content of this surface.
	Attach(buffer uint32, x int32, y int32)

	// This request is used to describe the regions where the pending
	// buffer is different from the current surface contents.
	Damage(x int32, y int32, width int32, height int32)

	// Request a notification when it is a good time to start drawing a
	// new frame.
	Frame(callback *Callback)

	// This request sets the region of the surface that contains opaque
	// content.
	SetOpaqueRegion(region *Region)

	// This request sets the region of the surface that can receive
	// pointer and touch events.
	SetInputRegion(region *Region)

	// Surface state (input, opaque, and damage regions, attached
	// buffers, etc.) is double-buffered. Commit atomically applies the
	// pending state.
	Commit()

	// This request sets an optional transformation on how the
	// compositor interprets the contents of the buffer attached to the
	// surface.
	SetBufferTransform(transform int32)

	// This request sets an optional scaling factor on how the
	// compositor interprets the contents of the buffer attached to the
	// window.
	SetBufferScale(scale int32)

	// This request is used to describe the regions where the pending
	// buffer is different from the current surface contents, in buffer
	// coordinates.
	DamageBuffer(x int32, y int32, width int32, height int32)
}

// A surface is a rectangular area that may be displayed on zero or
// more outputs, and shown any number of times at the compositor's
// discretion.
type Surface struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener SurfaceListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewSurface returns a newly instantiated Surface. It is primarily
// intended for use by generated code.
func NewSurface(client *Client) *Surface {
	return &Surface{client: client}
}

func (obj *Surface) Client() *Client {
	return obj.client
}

func (obj *Surface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Destroy()
		return nil

	case 1:
		buffer := msg.ReadUint()
		x := msg.ReadInt()
		y := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Attach(
			buffer,
			x,
			y,
		)
		return nil

	case 2:
		x := msg.ReadInt()
		y := msg.ReadInt()
		width := msg.ReadInt()
		height := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Damage(
			x,
			y,
			width,
			height,
		)
		return nil

	case 3:
		callback := NewCallback(obj.client)
		if err := newObjectArg(obj.client, msg, callback); err != nil {
			return err
		}
		obj.client.Add(callback)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Frame(
			callback,
		)
		return nil

	case 4:
		region, err := objectArg[*Region](obj.client, msg, "set_opaque_region", "region", true)
		if err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.SetOpaqueRegion(
			region,
		)
		return nil

	case 5:
		region, err := objectArg[*Region](obj.client, msg, "set_input_region", "region", true)
		if err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.SetInputRegion(
			region,
		)
		return nil

	case 6:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Commit()
		return nil

	case 7:
		transform := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.SetBufferTransform(
			transform,
		)
		return nil

	case 8:
		scale := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.SetBufferScale(
			scale,
		)
		return nil

	case 9:
		x := msg.ReadInt()
		y := msg.ReadInt()
		width := msg.ReadInt()
		height := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.DamageBuffer(
			x,
			y,
			width,
			height,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_surface",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Surface) ID() uint32 {
	return obj.id
}

func (obj *Surface) SetID(id uint32) {
	obj.id = id
}

func (obj *Surface) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Surface) String() string {
	return fmt.Sprintf("%v(%v)", "wl_surface", obj.id)
}

func (obj *Surface) MethodName(op uint16) string {
	switch op {
	case 0:
		return "destroy"

	case 1:
		return "attach"

	case 2:
		return "damage"

	case 3:
		return "frame"

	case 4:
		return "set_opaque_region"

	case 5:
		return "set_input_region"

	case 6:
		return "commit"

	case 7:
		return "set_buffer_transform"

	case 8:
		return "set_buffer_scale"

	case 9:
		return "damage_buffer"
	}

	return "unknown method"
}

func (obj *Surface) Interface() string {
	return SurfaceInterface
}

func (obj *Surface) Version() uint32 {
	return SurfaceVersion
}

const (
	RegionInterface = "wl_region"
	RegionVersion   = 1
)

// RegionListener is a type that can respond to incoming messages for
// a Region object.
type RegionListener interface {
	// Destroy the region. This will invalidate the object ID.
	Destroy()

	// Add the specified rectangle to the region.
	Add(x int32, y int32, width int32, height int32)

	// Subtract the specified rectangle from the region.
	Subtract(x int32, y int32, width int32, height int32)
}

// A region object describes an area.
type Region struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener RegionListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewRegion returns a newly instantiated Region. It is primarily
// intended for use by generated code.
func NewRegion(client *Client) *Region {
	return &Region{client: client}
}

func (obj *Region) Client() *Client {
	return obj.client
}

func (obj *Region) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Destroy()
		return nil

	case 1, 2:
		x := msg.ReadInt()
		y := msg.ReadInt()
		width := msg.ReadInt()
		height := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		if msg.Op() == 1 {
			obj.Listener.Add(x, y, width, height)
			return nil
		}
		obj.Listener.Subtract(x, y, width, height)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_region",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Region) ID() uint32 {
	return obj.id
}

func (obj *Region) SetID(id uint32) {
	obj.id = id
}

func (obj *Region) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Region) String() string {
	return fmt.Sprintf("%v(%v)", "wl_region", obj.id)
}

func (obj *Region) MethodName(op uint16) string {
	switch op {
	case 0:
		return "destroy"

	case 1:
		return "add"

	case 2:
		return "subtract"
	}

	return "unknown method"
}

func (obj *Region) Interface() string {
	return RegionInterface
}

func (obj *Region) Version() uint32 {
	return RegionVersion
}

const (
	SeatInterface = "wl_seat"
	SeatVersion   = 5
)

// SeatListener is a type that can respond to incoming messages for a
// Seat object.
type SeatListener interface {
	// The ID provided will be initialized to the wl_pointer interface
	// for this seat.
	GetPointer(id *Pointer)

	// The ID provided will be initialized to the wl_keyboard interface
	// for this seat.
	GetKeyboard(id *Keyboard)

	// The ID provided will be initialized to the wl_touch interface
	// for this seat.
	GetTouch(id *Touch)

	// Using this request a client can tell the server that it is not
	// going to use the seat object anymore.
	Release()
}

// A seat is a group of keyboards, pointer and touch devices. This
// object is published as a global during start up, or when such a
// device is hot plugged.
type Seat struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener SeatListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client  *Client
	id      uint32
	version uint32
}

// NewSeat returns a newly instantiated Seat. It is primarily intended
// for use by generated code.
func NewSeat(client *Client) *Seat {
	return &Seat{client: client, version: SeatVersion}
}

func (obj *Seat) Client() *Client {
	return obj.client
}

func (obj *Seat) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		id := NewPointer(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.GetPointer(
			id,
		)
		return nil

	case 1:
		id := NewKeyboard(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.GetKeyboard(
			id,
		)
		return nil

	case 2:
		id := NewTouch(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.GetTouch(
			id,
		)
		return nil

	case 3:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Release()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_seat",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Seat) ID() uint32 {
	return obj.id
}

func (obj *Seat) SetID(id uint32) {
	obj.id = id
}

func (obj *Seat) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Seat) String() string {
	return fmt.Sprintf("%v(%v)", "wl_seat", obj.id)
}

func (obj *Seat) MethodName(op uint16) string {
	switch op {
	case 0:
		return "get_pointer"

	case 1:
		return "get_keyboard"

	case 2:
		return "get_touch"

	case 3:
		return "release"
	}

	return "unknown method"
}

func (obj *Seat) Interface() string {
	return SeatInterface
}

// Version returns the version that the client bound the seat with.
func (obj *Seat) Version() uint32 {
	return obj.version
}

func (obj *Seat) SetVersion(version uint32) {
	obj.version = version
}

// This is emitted whenever a seat gains or loses the pointer,
// keyboard or touch capabilities.
func (obj *Seat) Capabilities(capabilities uint32) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteUint(capabilities)

	builder.Method = "capabilities"
	builder.Args = []any{capabilities}
	obj.client.Enqueue(builder)
}

// In a multi-seat configuration the seat name can be used by clients
// to help identify which physical devices the seat represents.
func (obj *Seat) Name(name string) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteString(name)

	builder.Method = "name"
	builder.Args = []any{name}
	obj.client.Enqueue(builder)
}

type SeatCapability int64

const (
	// the seat has pointer devices
	SeatCapabilityPointer SeatCapability = 1

	// the seat has one or more keyboards
	SeatCapabilityKeyboard SeatCapability = 2

	// the seat has touch devices
	SeatCapabilityTouch SeatCapability = 4
)

func (enum SeatCapability) String() string {
	switch enum {
	case 1:
		return "SeatCapabilityPointer"

	case 2:
		return "SeatCapabilityKeyboard"

	case 4:
		return "SeatCapabilityTouch"
	}

	return "<invalid SeatCapability>"
}

const (
	PointerInterface = "wl_pointer"
	PointerVersion   = 5
)

// PointerListener is a type that can respond to incoming messages for
// a Pointer object.
type PointerListener interface {
	// Set the pointer surface, i.e., the surface that contains the
	// pointer image (cursor).
	SetCursor(serial uint32, surface *Surface, hotspotX int32, hotspotY int32)

	// Using this request a client can tell the server that it is not
	// going to use the pointer object anymore.
	Release()
}

// The wl_pointer interface represents one or more input devices, such
// as mice, which control the pointer location and pointer_focus of a
// seat.
type Pointer struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener PointerListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewPointer returns a newly instantiated Pointer. It is primarily
// intended for use by generated code.
func NewPointer(client *Client) *Pointer {
	return &Pointer{client: client}
}

func (obj *Pointer) Client() *Client {
	return obj.client
}

func (obj *Pointer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		surface, err := objectArg[*Surface](obj.client, msg, "set_cursor", "surface", true)
		if err != nil {
			return err
		}
		hotspotX := msg.ReadInt()
		hotspotY := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.SetCursor(
			serial,
			surface,
			hotspotX,
			hotspotY,
		)
		return nil

	case 1:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Release()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_pointer",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Pointer) ID() uint32 {
	return obj.id
}

func (obj *Pointer) SetID(id uint32) {
	obj.id = id
}

func (obj *Pointer) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Pointer) String() string {
	return fmt.Sprintf("%v(%v)", "wl_pointer", obj.id)
}

func (obj *Pointer) MethodName(op uint16) string {
	switch op {
	case 0:
		return "set_cursor"

	case 1:
		return "release"
	}

	return "unknown method"
}

func (obj *Pointer) Interface() string {
	return PointerInterface
}

func (obj *Pointer) Version() uint32 {
	return PointerVersion
}

const (
	KeyboardInterface = "wl_keyboard"
	KeyboardVersion   = 5
)

// KeyboardListener is a type that can respond to incoming messages
// for a Keyboard object.
type KeyboardListener interface {
	Release()
}

// The wl_keyboard interface represents one or more keyboards
// associated with a seat.
type Keyboard struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener KeyboardListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewKeyboard returns a newly instantiated Keyboard. It is primarily
// intended for use by generated code.
func NewKeyboard(client *Client) *Keyboard {
	return &Keyboard{client: client}
}

func (obj *Keyboard) Client() *Client {
	return obj.client
}

func (obj *Keyboard) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Release()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_keyboard",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Keyboard) ID() uint32 {
	return obj.id
}

func (obj *Keyboard) SetID(id uint32) {
	obj.id = id
}

func (obj *Keyboard) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Keyboard) String() string {
	return fmt.Sprintf("%v(%v)", "wl_keyboard", obj.id)
}

func (obj *Keyboard) MethodName(op uint16) string {
	switch op {
	case 0:
		return "release"
	}

	return "unknown method"
}

func (obj *Keyboard) Interface() string {
	return KeyboardInterface
}

func (obj *Keyboard) Version() uint32 {
	return KeyboardVersion
}

const (
	TouchInterface = "wl_touch"
	TouchVersion   = 5
)

// TouchListener is a type that can respond to incoming messages for a
// Touch object.
type TouchListener interface {
	Release()
}

// The wl_touch interface represents a touchscreen associated with a
// seat.
type Touch struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener TouchListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewTouch returns a newly instantiated Touch. It is primarily
// intended for use by generated code.
func NewTouch(client *Client) *Touch {
	return &Touch{client: client}
}

func (obj *Touch) Client() *Client {
	return obj.client
}

func (obj *Touch) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Release()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_touch",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *Touch) ID() uint32 {
	return obj.id
}

func (obj *Touch) SetID(id uint32) {
	obj.id = id
}

func (obj *Touch) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Touch) String() string {
	return fmt.Sprintf("%v(%v)", "wl_touch", obj.id)
}

func (obj *Touch) MethodName(op uint16) string {
	switch op {
	case 0:
		return "release"
	}

	return "unknown method"
}

func (obj *Touch) Interface() string {
	return TouchInterface
}

func (obj *Touch) Version() uint32 {
	return TouchVersion
}

const (
	DataOfferInterface = "wl_data_offer"
	DataOfferVersion   = 1
)

// DataOfferListener is a type that can respond to incoming messages
// for a DataOffer object.
type DataOfferListener interface {
	// Indicate that the client can accept the given mime type, or NULL
	// for not accepted.
	Accept(serial uint32, mimeType string)

	// To transfer the offered data, the client issues this request and
	// indicates the mime type it wants to receive. The transfer
	// happens through the passed file descriptor (typically created
	// with the pipe system call). The source client writes the data in
	// the mime type representation requested and then closes the file
	// descriptor.
	//
	// The receiving client reads from the read end of the pipe until
	// EOF and then closes its end, at which point the transfer is
	// complete.
	Receive(mimeType string, fd *os.File)

	// Destroy the data offer.
	Destroy()
}

// A wl_data_offer represents a piece of data offered for transfer by
// another client (the source client). It is used by the copy-and-paste
// and drag-and-drop mechanisms. The offer describes the different mime
// types that the data can be converted to and provides the mechanism
// for transferring the data directly from the source client.
type DataOffer struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataOfferListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewDataOffer returns a newly instantiated DataOffer. It is primarily
// intended for use by generated code.
func NewDataOffer(client *Client) *DataOffer {
	return &DataOffer{client: client}
}

func (obj *DataOffer) Client() *Client {
	return obj.client
}

func (obj *DataOffer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		serial := msg.ReadUint()
		mimeType := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Accept(
			serial,
			mimeType,
		)
		return nil

	case 1:
		mimeType := msg.ReadString()
		fd := msg.ReadFile()
		if err := msg.Err(); err != nil {
			if fd != nil {
				fd.Close()
			}
			return err
		}

		if obj.Listener == nil {
			fd.Close()
			return nil
		}
		obj.Listener.Receive(
			mimeType,
			fd,
		)
		return nil

	case 2:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Destroy()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_data_offer",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *DataOffer) ID() uint32 {
	return obj.id
}

func (obj *DataOffer) SetID(id uint32) {
	obj.id = id
}

func (obj *DataOffer) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataOffer) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_offer", obj.id)
}

func (obj *DataOffer) MethodName(op uint16) string {
	switch op {
	case 0:
		return "accept"

	case 1:
		return "receive"

	case 2:
		return "destroy"
	}

	return "unknown method"
}

func (obj *DataOffer) Interface() string {
	return DataOfferInterface
}

func (obj *DataOffer) Version() uint32 {
	return DataOfferVersion
}

// Sent immediately after creating the wl_data_offer object. One event
// per offered mime type.
func (obj *DataOffer) Offer(mimeType string) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteString(mimeType)

	builder.Method = "offer"
	builder.Args = []any{mimeType}
	obj.client.Enqueue(builder)
}

const (
	DataSourceInterface = "wl_data_source"
	DataSourceVersion   = 1
)

// DataSourceListener is a type that can respond to incoming messages
// for a DataSource object.
type DataSourceListener interface {
	// This request adds a mime type to the set of mime types
	// advertised to targets. Can be called several times to offer
	// multiple types.
	Offer(mimeType string)

	// Destroy the data source.
	Destroy()
}

// The wl_data_source object is the source side of a wl_data_offer. It
// is created by the source client in a data transfer and provides a
// way to describe the offered data and a way to respond to requests to
// transfer the data.
type DataSource struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataSourceListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewDataSource returns a newly instantiated DataSource. It is
// primarily intended for use by generated code.
func NewDataSource(client *Client) *DataSource {
	return &DataSource{client: client}
}

func (obj *DataSource) Client() *Client {
	return obj.client
}

func (obj *DataSource) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		mimeType := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Offer(
			mimeType,
		)
		return nil

	case 1:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Destroy()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_data_source",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *DataSource) ID() uint32 {
	return obj.id
}

func (obj *DataSource) SetID(id uint32) {
	obj.id = id
}

func (obj *DataSource) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataSource) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_source", obj.id)
}

func (obj *DataSource) MethodName(op uint16) string {
	switch op {
	case 0:
		return "offer"

	case 1:
		return "destroy"
	}

	return "unknown method"
}

func (obj *DataSource) Interface() string {
	return DataSourceInterface
}

func (obj *DataSource) Version() uint32 {
	return DataSourceVersion
}

// Sent when a target accepts pointer_focus or motion events. If a
// target does not accept any of the offered types, type is NULL.
func (obj *DataSource) Target(mimeType string) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteNullString(mimeType)

	builder.Method = "target"
	builder.Args = []any{mimeType}
	obj.client.Enqueue(builder)
}

// Request for data from the client. Send the data as the specified
// mime type over the passed file descriptor, then close it.
func (obj *DataSource) Send(mimeType string, fd *os.File) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteString(mimeType)
	builder.WriteFile(fd)

	builder.Method = "send"
	builder.Args = []any{mimeType, fd}
	obj.client.Enqueue(builder)
}

// This data source is no longer valid. The data source has been
// replaced by another data source.
//
// The client should clean up and destroy this data source.
func (obj *DataSource) Cancelled() {
	builder := wire.NewMessage(obj, 2)

	builder.Method = "cancelled"
	builder.Args = []any{}
	obj.client.Enqueue(builder)
}

const (
	DataDeviceInterface = "wl_data_device"
	DataDeviceVersion   = 2
)

// DataDeviceListener is a type that can respond to incoming messages
// for a DataDevice object.
type DataDeviceListener interface {
	// This request asks the compositor to start a drag-and-drop
	// operation on behalf of the client.
	//
	// The source argument is the data source that provides the data
	// for the eventual data transfer. If source is NULL, enter, leave
	// and motion events are sent only to the client that initiated the
	// drag and the client is expected to handle the data passing
	// internally.
	//
	// The origin surface is the surface where the drag originates and
	// the client must have an active implicit grab that matches the
	// serial.
	//
	// The icon surface is an optional (can be NULL) surface that
	// provides an icon to be moved around with the cursor.
	StartDrag(source *DataSource, origin *Surface, icon *Surface, serial uint32)

	// This request asks the compositor to set the selection to the
	// data from the source on behalf of the client.
	//
	// To unset the selection, set the source to NULL.
	SetSelection(source *DataSource, serial uint32)

	// This request destroys the data device.
	Release()
}

// There is one wl_data_device per seat which can be obtained from the
// global wl_data_device_manager singleton.
//
// A wl_data_device provides access to inter-client data transfer
// mechanisms such as copy-and-paste and drag-and-drop.
type DataDevice struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataDeviceListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewDataDevice returns a newly instantiated DataDevice. It is
// primarily intended for use by generated code.
func NewDataDevice(client *Client) *DataDevice {
	return &DataDevice{client: client}
}

func (obj *DataDevice) Client() *Client {
	return obj.client
}

func (obj *DataDevice) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		source, err := objectArg[*DataSource](obj.client, msg, "start_drag", "source", true)
		if err != nil {
			return err
		}
		origin, err := objectArg[*Surface](obj.client, msg, "start_drag", "origin", false)
		if err != nil {
			return err
		}
		icon, err := objectArg[*Surface](obj.client, msg, "start_drag", "icon", true)
		if err != nil {
			return err
		}
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.StartDrag(
			source,
			origin,
			icon,
			serial,
		)
		return nil

	case 1:
		source, err := objectArg[*DataSource](obj.client, msg, "set_selection", "source", true)
		if err != nil {
			return err
		}
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.SetSelection(
			source,
			serial,
		)
		return nil

	case 2:
		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Release()
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_data_device",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *DataDevice) ID() uint32 {
	return obj.id
}

func (obj *DataDevice) SetID(id uint32) {
	obj.id = id
}

func (obj *DataDevice) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataDevice) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_device", obj.id)
}

func (obj *DataDevice) MethodName(op uint16) string {
	switch op {
	case 0:
		return "start_drag"

	case 1:
		return "set_selection"

	case 2:
		return "release"
	}

	return "unknown method"
}

func (obj *DataDevice) Interface() string {
	return DataDeviceInterface
}

func (obj *DataDevice) Version() uint32 {
	return DataDeviceVersion
}

// The data_offer event introduces a new wl_data_offer object, which
// will subsequently be used in either the data_device.enter event (for
// drag-and-drop) or the data_device.selection event (for selections).
// Immediately following the data_device_data_offer event, the new
// data_offer object will send out data_offer.offer events to describe
// the mime types it offers.
func (obj *DataDevice) DataOffer(id *DataOffer) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteObject(id)

	builder.Method = "data_offer"
	builder.Args = []any{id}
	obj.client.Enqueue(builder)
}

// This event is sent when an active drag-and-drop pointer enters a
// surface owned by the client. The position of the pointer at enter
// time is provided by the x and y arguments, in surface-local
// coordinates.
func (obj *DataDevice) Enter(serial uint32, surface *Surface, x wire.Fixed, y wire.Fixed, id *DataOffer) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteUint(serial)
	builder.WriteObject(surface)
	builder.WriteFixed(x)
	builder.WriteFixed(y)
	builder.WriteObject(id)

	builder.Method = "enter"
	builder.Args = []any{serial, surface, x, y, id}
	obj.client.Enqueue(builder)
}

// This event is sent when the drag-and-drop pointer leaves the surface
// and the session ends. The client must destroy the wl_data_offer
// introduced at enter time at this point.
func (obj *DataDevice) Leave() {
	builder := wire.NewMessage(obj, 2)

	builder.Method = "leave"
	builder.Args = []any{}
	obj.client.Enqueue(builder)
}

// This event is sent when the drag-and-drop pointer moves within the
// currently focused surface. The new position of the pointer is
// provided by the x and y arguments, in surface-local coordinates.
func (obj *DataDevice) Motion(time uint32, x wire.Fixed, y wire.Fixed) {
	builder := wire.NewMessage(obj, 3)

	builder.WriteUint(time)
	builder.WriteFixed(x)
	builder.WriteFixed(y)

	builder.Method = "motion"
	builder.Args = []any{time, x, y}
	obj.client.Enqueue(builder)
}

// The event is sent when a drag-and-drop operation is ended because
// the implicit grab is removed.
func (obj *DataDevice) Drop() {
	builder := wire.NewMessage(obj, 4)

	builder.Method = "drop"
	builder.Args = []any{}
	obj.client.Enqueue(builder)
}

// The selection event is sent out to notify the client of a new
// wl_data_offer for the selection for this device. The
// data_device.data_offer and the data_offer.offer events are sent out
// immediately before this event to introduce the data offer object.
// The selection event is sent to a client immediately before
// receiving keyboard focus and when a new selection is set while the
// client has keyboard focus. The data_offer is valid until a new
// data_offer or NULL is received or until the client loses keyboard
// focus.
func (obj *DataDevice) Selection(id *DataOffer) {
	builder := wire.NewMessage(obj, 5)

	builder.WriteObject(id)

	builder.Method = "selection"
	builder.Args = []any{id}
	obj.client.Enqueue(builder)
}

type DataDeviceError int64

const (
	// given wl_surface has another role
	DataDeviceErrorRole DataDeviceError = 0
)

func (enum DataDeviceError) String() string {
	switch enum {
	case 0:
		return "DataDeviceErrorRole"
	}

	return "<invalid DataDeviceError>"
}

const (
	DataDeviceManagerInterface = "wl_data_device_manager"
	DataDeviceManagerVersion   = 2
)

// DataDeviceManagerListener is a type that can respond to incoming
// messages for a DataDeviceManager object.
type DataDeviceManagerListener interface {
	// Create a new data source.
	CreateDataSource(id *DataSource)

	// Create a new data device for a given seat.
	GetDataDevice(id *DataDevice, seat *Seat)
}

// The wl_data_device_manager is a singleton global object that provides
// access to inter-client data transfer mechanisms such as
// copy-and-paste and drag-and-drop. These mechanisms are tied to a
// wl_seat and this interface lets a client get a wl_data_device
// corresponding to a wl_seat.
type DataDeviceManager struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataDeviceManagerListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	client *Client
	id     uint32
}

// NewDataDeviceManager returns a newly instantiated DataDeviceManager.
// It is primarily intended for use by generated code.
func NewDataDeviceManager(client *Client) *DataDeviceManager {
	return &DataDeviceManager{client: client}
}

func (obj *DataDeviceManager) Client() *Client {
	return obj.client
}

func (obj *DataDeviceManager) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		id := NewDataSource(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.CreateDataSource(
			id,
		)
		return nil

	case 1:
		id := NewDataDevice(obj.client)
		if err := newObjectArg(obj.client, msg, id); err != nil {
			return err
		}
		seat, err := objectArg[*Seat](obj.client, msg, "get_data_device", "seat", false)
		if err != nil {
			return err
		}
		obj.client.Add(id)

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.GetDataDevice(
			id,
			seat,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_data_device_manager",
		Type:      "request",
		Op:        msg.Op(),
	}
}

func (obj *DataDeviceManager) ID() uint32 {
	return obj.id
}

func (obj *DataDeviceManager) SetID(id uint32) {
	obj.id = id
}

func (obj *DataDeviceManager) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataDeviceManager) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_device_manager", obj.id)
}

func (obj *DataDeviceManager) MethodName(op uint16) string {
	switch op {
	case 0:
		return "create_data_source"

	case 1:
		return "get_data_device"
	}

	return "unknown method"
}

func (obj *DataDeviceManager) Interface() string {
	return DataDeviceManagerInterface
}

func (obj *DataDeviceManager) Version() uint32 {
	return DataDeviceManagerVersion
}
