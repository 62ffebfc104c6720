package wl_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"deedles.dev/wldnd/datadevice"
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/pointer"
	"deedles.dev/wldnd/protocol"
	wl "deedles.dev/wldnd/server"
	"deedles.dev/wldnd/wire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeout = 5 * time.Second

// harness is a server with a seat, a compositor, and a data device
// manager, along with a number of connected test clients.
type harness struct {
	t       *testing.T
	srv     *wl.Server
	seat    *datadevice.Seat
	clients []*wl.Client

	// surfaces is only touched on the server's goroutine.
	surfaces []input.Surface
}

func newHarness(t *testing.T, n int) (*harness, []*testClient) {
	h := harness{t: t}
	h.srv = wl.NewServer(nil, zerolog.Nop())
	h.srv.AddCompositor(func(s input.Surface) { h.surfaces = append(h.surfaces, s) })
	h.seat = h.srv.AddSeat("seat0")
	h.srv.AddDataDeviceManager(4)

	tcs := make([]*testClient, 0, n)
	for i := 0; i < n; i++ {
		c, s, err := wire.Pipe()
		require.NoError(t, err)
		h.clients = append(h.clients, h.srv.AddConn(s))
		tcs = append(tcs, newTestClient(t, c))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.srv.Run(ctx, time.Millisecond)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		h.srv.Close()
	})

	return &h, tcs
}

// do runs f on the server's goroutine and waits for it to finish.
func (h *harness) do(f func()) {
	h.t.Helper()

	done := make(chan struct{})
	h.srv.Do(func() {
		defer close(done)
		f()
	})

	select {
	case <-done:
	case <-time.After(timeout):
		h.t.Fatal("timed out waiting for server")
	}
}

// surface returns the first surface that the ith client created. It
// must be called on the server's goroutine.
func (h *harness) surface(i int) input.Surface {
	for _, s := range h.surfaces {
		if s.Client() == input.Client(h.clients[i]) {
			return s
		}
	}
	return nil
}

type rawObject uint32

func (obj rawObject) Dispatch(*wire.MessageBuffer) error { return nil }

func (obj rawObject) ID() uint32 { return uint32(obj) }

func (obj rawObject) SetID(uint32) {}

func (obj rawObject) Delete() {}

func (obj rawObject) MethodName(uint16) string { return "" }

// testClient speaks the wire protocol directly.
type testClient struct {
	t      *testing.T
	conn   *wire.Conn
	events chan *wire.MessageBuffer
	nextID uint32

	globals    map[string]uint32
	registry   uint32
	compositor uint32
	seat       uint32
	manager    uint32
	surface    uint32
	device     uint32
}

func newTestClient(t *testing.T, conn *wire.Conn) *testClient {
	c := testClient{
		t:      t,
		conn:   conn,
		events: make(chan *wire.MessageBuffer, 1024),
		nextID: 2,
	}
	t.Cleanup(func() { conn.Close() })

	go func() {
		defer close(c.events)
		for {
			msg, err := wire.ReadMessage(conn)
			if err != nil {
				return
			}
			c.events <- msg
		}
	}()

	return &c
}

func (c *testClient) newID() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *testClient) send(sender uint32, op uint16, args ...any) {
	c.t.Helper()

	builder := wire.NewMessage(rawObject(sender), op)
	for _, arg := range args {
		switch arg := arg.(type) {
		case uint32:
			builder.WriteUint(arg)
		case int32:
			builder.WriteInt(arg)
		case string:
			builder.WriteString(arg)
		case wire.NewID:
			builder.WriteNewID(arg)
		case *os.File:
			builder.WriteFile(arg)
		default:
			c.t.Fatalf("unsupported argument type %T", arg)
		}
	}
	require.NoError(c.t, builder.Build(c.conn))
}

func (c *testClient) next() (*wire.MessageBuffer, bool) {
	c.t.Helper()

	select {
	case msg, ok := <-c.events:
		return msg, ok
	case <-time.After(timeout):
		c.t.Fatal("timed out waiting for event")
		return nil, false
	}
}

// roundtrip sends a wl_display.sync and returns every event that
// arrives before the callback fires.
func (c *testClient) roundtrip() []*wire.MessageBuffer {
	c.t.Helper()

	callback := c.newID()
	c.send(1, 0, callback)

	var msgs []*wire.MessageBuffer
	for {
		msg, ok := c.next()
		require.True(c.t, ok, "connection closed during roundtrip")
		if (msg.Sender() == callback) && (msg.Op() == 0) {
			return msgs
		}
		msgs = append(msgs, msg)
	}
}

// expectError waits for a wl_display.error event and then for the
// connection to close.
func (c *testClient) expectError() (object, code uint32, message string) {
	c.t.Helper()

	for {
		msg, ok := c.next()
		require.True(c.t, ok, "connection closed without an error")
		if (msg.Sender() != 1) || (msg.Op() != 0) {
			continue
		}

		object, code, message = msg.ReadUint(), msg.ReadUint(), msg.ReadString()
		require.NoError(c.t, msg.Err())
		break
	}

	for {
		_, ok := c.next()
		if !ok {
			return object, code, message
		}
	}
}

func (c *testClient) bind(iface string, version uint32) uint32 {
	c.t.Helper()

	name, ok := c.globals[iface]
	require.True(c.t, ok, "no global for %v", iface)

	id := c.newID()
	c.send(c.registry, 0, name, wire.NewID{Interface: iface, Version: version, ID: id})
	return id
}

// getRegistry creates a registry and records the names of the
// globals that it announces. The announcements are consumed.
func (c *testClient) getRegistry() {
	c.t.Helper()

	c.registry = c.newID()
	c.send(1, 1, c.registry)
	msgs := c.roundtrip()

	c.globals = make(map[string]uint32)
	for _, msg := range from(msgs, c.registry) {
		if msg.Op() != 0 {
			continue
		}
		name, iface := msg.ReadUint(), msg.ReadString()
		c.globals[iface] = name
	}
}

// setup binds everything that is needed to take part in data
// transfers and creates a surface.
func (c *testClient) setup() {
	c.t.Helper()

	c.getRegistry()
	c.compositor = c.bind(wl.CompositorInterface, 4)
	c.seat = c.bind(wl.SeatInterface, 5)
	c.manager = c.bind(wl.DataDeviceManagerInterface, 2)

	c.surface = c.newID()
	c.send(c.compositor, 0, c.surface)
	c.device = c.newID()
	c.send(c.manager, 1, c.device, c.seat)
	c.roundtrip()
}

// from filters msgs down to those sent by the given objects.
func from(msgs []*wire.MessageBuffer, senders ...uint32) []*wire.MessageBuffer {
	var r []*wire.MessageBuffer
	for _, msg := range msgs {
		for _, s := range senders {
			if msg.Sender() == s {
				r = append(r, msg)
				break
			}
		}
	}
	return r
}

func TestGlobals(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]

	c.registry = c.newID()
	c.send(1, 1, c.registry)
	msgs := from(c.roundtrip(), c.registry)
	require.Len(t, msgs, 3)

	type global struct {
		name    uint32
		iface   string
		version uint32
	}
	var globals []global
	for _, msg := range msgs {
		require.Equal(t, uint16(0), msg.Op())
		globals = append(globals, global{msg.ReadUint(), msg.ReadString(), msg.ReadUint()})
		require.NoError(t, msg.Err())
	}
	assert.Equal(t, []global{
		{1, "wl_compositor", 4},
		{2, "wl_seat", 5},
		{3, "wl_data_device_manager", 2},
	}, globals)

	c.globals = make(map[string]uint32)
	for _, g := range globals {
		c.globals[g.iface] = g.name
	}

	seat := c.bind(wl.SeatInterface, 5)
	msgs = from(c.roundtrip(), seat)
	require.Len(t, msgs, 2)
	assert.Equal(t, uint16(0), msgs[0].Op())
	assert.Equal(t, uint32(wl.SeatCapabilityPointer|wl.SeatCapabilityKeyboard), msgs[0].ReadUint())
	assert.Equal(t, uint16(1), msgs[1].Op())
	assert.Equal(t, "seat0", msgs[1].ReadString())
}

func TestSeatVersion1HasNoName(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]

	c.getRegistry()
	seat := c.bind(wl.SeatInterface, 1)
	msgs := from(c.roundtrip(), seat)
	require.Len(t, msgs, 1)
	assert.Equal(t, uint16(0), msgs[0].Op())
}

func TestSyncDeletesCallback(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]

	first := c.nextID
	c.roundtrip()

	msgs := from(c.roundtrip(), 1)
	require.NotEmpty(t, msgs)
	assert.Equal(t, uint16(1), msgs[0].Op())
	assert.Equal(t, first, msgs[0].ReadUint())
}

func TestSurfaceFrame(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]
	c.setup()

	callback := c.newID()
	c.send(c.surface, 3, callback)
	c.send(c.surface, 6)

	msgs := c.roundtrip()
	done := from(msgs, callback)
	require.Len(t, done, 1)
	assert.Equal(t, uint16(0), done[0].Op())

	deleted := from(msgs, 1)
	require.NotEmpty(t, deleted)
	assert.Equal(t, callback, deleted[len(deleted)-1].ReadUint())
}

func TestUnknownObject(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]

	c.send(99, 0)
	object, code, _ := c.expectError()
	assert.Equal(t, uint32(1), object)
	assert.Equal(t, uint32(wl.DisplayErrorInvalidObject), code)
}

func TestInvalidMethod(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]

	c.send(1, 7)
	object, code, _ := c.expectError()
	assert.Equal(t, uint32(1), object)
	assert.Equal(t, uint32(wl.DisplayErrorInvalidMethod), code)
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name    string
		global  string
		iface   string
		version uint32
	}{
		{"WrongInterface", wl.SeatInterface, wl.CompositorInterface, 1},
		{"VersionTooHigh", wl.SeatInterface, wl.SeatInterface, 6},
		{"VersionZero", wl.SeatInterface, wl.SeatInterface, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, tcs := newHarness(t, 1)
			c := tcs[0]
			c.getRegistry()

			c.send(c.registry, 0, c.globals[test.global], wire.NewID{Interface: test.iface, Version: test.version, ID: c.newID()})
			object, code, _ := c.expectError()
			assert.Equal(t, c.registry, object)
			assert.Equal(t, uint32(wl.DisplayErrorInvalidObject), code)
		})
	}
}

func TestNewIDInUse(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]
	c.setup()

	c.send(c.compositor, 0, c.surface)
	object, code, _ := c.expectError()
	assert.Equal(t, c.compositor, object)
	assert.Equal(t, uint32(wl.DisplayErrorInvalidMethod), code)
}

func TestTooManyMimeTypes(t *testing.T) {
	_, tcs := newHarness(t, 1)
	c := tcs[0]
	c.setup()

	source := c.newID()
	c.send(c.manager, 0, source)
	for _, mt := range []string{"a/a", "b/b", "c/c", "d/d", "e/e"} {
		c.send(source, 0, mt)
	}

	object, code, _ := c.expectError()
	assert.Equal(t, uint32(1), object)
	assert.Equal(t, uint32(wl.DisplayErrorNoMemory), code)
}

func TestClipboard(t *testing.T) {
	h, tcs := newHarness(t, 2)
	a, b := tcs[0], tcs[1]
	a.setup()
	b.setup()

	source := a.newID()
	a.send(a.manager, 0, source)
	a.send(source, 0, "text/plain")
	a.send(source, 0, "text/html")
	a.send(a.device, 1, source, uint32(1))
	a.roundtrip()

	h.do(func() { h.seat.Keyboard().SetFocus(h.surface(1)) })

	msgs := from(b.roundtrip(), b.device)
	require.Len(t, msgs, 2)
	require.Equal(t, uint16(0), msgs[0].Op())
	offer := msgs[0].ReadUint()
	assert.GreaterOrEqual(t, offer, uint32(0xff000000))
	require.Equal(t, uint16(5), msgs[1].Op())
	assert.Equal(t, offer, msgs[1].ReadUint())

	b.send(offer, 0, uint32(3), "text/html")
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	b.send(offer, 1, "text/plain", w)
	require.NoError(t, w.Close())
	b.roundtrip()

	msgs = from(a.roundtrip(), source)
	require.Len(t, msgs, 2)
	require.Equal(t, uint16(0), msgs[0].Op())
	assert.Equal(t, "text/html", msgs[0].ReadString())
	require.Equal(t, uint16(1), msgs[1].Op())
	assert.Equal(t, "text/plain", msgs[1].ReadString())
	fd := msgs[1].ReadFile()
	require.NoError(t, msgs[1].Err())

	_, err = fd.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, fd.Close())

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// Destroying the source clears the selection.
	a.send(source, 1)
	a.roundtrip()
	msgs = from(b.roundtrip(), b.device)
	require.Len(t, msgs, 1)
	assert.Equal(t, uint16(5), msgs[0].Op())
	assert.Equal(t, uint32(0), msgs[0].ReadUint())

	h.do(func() { assert.Nil(t, h.seat.Selection()) })
}

func TestClipboardOfferListing(t *testing.T) {
	h, tcs := newHarness(t, 2)
	a, b := tcs[0], tcs[1]
	a.setup()
	b.setup()

	source := a.newID()
	a.send(a.manager, 0, source)
	a.send(source, 0, "text/plain")
	a.send(source, 0, "text/plain")
	a.send(a.device, 1, source, uint32(1))
	a.roundtrip()

	h.do(func() { h.seat.Keyboard().SetFocus(h.surface(1)) })

	msgs := b.roundtrip()
	device := from(msgs, b.device)
	require.NotEmpty(t, device)
	offer := device[0].ReadUint()

	var mimeTypes []string
	for _, msg := range from(msgs, offer) {
		require.Equal(t, uint16(0), msg.Op())
		mimeTypes = append(mimeTypes, msg.ReadString())
	}
	assert.Equal(t, []string{"text/plain", "text/plain"}, mimeTypes)
}

func TestStaleSelectionOverWire(t *testing.T) {
	h, tcs := newHarness(t, 1)
	a := tcs[0]
	a.setup()

	first := a.newID()
	a.send(a.manager, 0, first)
	a.send(a.device, 1, first, uint32(100))
	second := a.newID()
	a.send(a.manager, 0, second)
	a.send(a.device, 1, second, uint32(50))

	msgs := a.roundtrip()
	assert.Empty(t, from(msgs, first))
	assert.Empty(t, from(msgs, second))

	h.do(func() { assert.Equal(t, uint32(100), h.seat.SelectionSerial()) })
}

func TestDragAndDrop(t *testing.T) {
	h, tcs := newHarness(t, 2)
	a, b := tcs[0], tcs[1]
	a.setup()
	b.setup()

	h.do(func() {
		h.seat.Pointer().NotifyFocus(h.surface(0), 0, 0)
		h.seat.Pointer().NotifyButton(0, pointer.ButtonLeft, pointer.Pressed)
	})

	source := a.newID()
	a.send(a.manager, 0, source)
	a.send(source, 0, "text/uri-list")
	a.send(a.device, 0, source, a.surface, uint32(0), uint32(1))
	a.roundtrip()
	h.do(func() { assert.True(t, h.seat.Dragging()) })

	h.do(func() {
		h.seat.Pointer().NotifyFocus(h.surface(1), wire.FixedInt(10), wire.FixedInt(20))
		h.seat.Pointer().NotifyMotion(100, wire.FixedInt(11), wire.FixedInt(21))
		h.seat.Pointer().NotifyButton(200, pointer.ButtonLeft, pointer.Released)
	})

	msgs := b.roundtrip()
	device := from(msgs, b.device)
	var ops []uint16
	for _, msg := range device {
		ops = append(ops, msg.Op())
	}
	// data_offer, enter, motion, drop, leave
	require.Equal(t, []uint16{0, 1, 3, 4, 2}, ops)

	offer := device[0].ReadUint()
	offers := from(msgs, offer)
	require.Len(t, offers, 1)
	assert.Equal(t, "text/uri-list", offers[0].ReadString())

	enter := device[1]
	enter.ReadUint()
	assert.Equal(t, b.surface, enter.ReadUint())
	assert.Equal(t, 10, enter.ReadFixed().Int())
	assert.Equal(t, 20, enter.ReadFixed().Int())
	assert.Equal(t, offer, enter.ReadUint())
	require.NoError(t, enter.Err())

	h.do(func() { assert.False(t, h.seat.Dragging()) })
}

func TestClientDisconnect(t *testing.T) {
	h, tcs := newHarness(t, 2)
	a := tcs[0]
	a.setup()

	source := a.newID()
	a.send(a.manager, 0, source)
	a.send(a.device, 1, source, uint32(1))
	a.roundtrip()
	require.NoError(t, a.conn.Close())

	assert.Eventually(t, func() bool {
		var n int
		var sel *datadevice.Source
		h.do(func() { n, sel = h.srv.NumClients(), h.seat.Selection() })
		return (n == 1) && (sel == nil)
	}, timeout, 10*time.Millisecond)
}

func TestMethodNames(t *testing.T) {
	proto, err := protocol.Core()
	require.NoError(t, err)

	type object interface {
		Interface() string
		MethodName(op uint16) string
	}
	objects := []object{
		wl.NewDisplay(nil),
		wl.NewRegistry(nil),
		wl.NewCallback(nil),
		wl.NewCompositor(nil),
		wl.NewSurface(nil),
		wl.NewRegion(nil),
		wl.NewSeat(nil),
		wl.NewPointer(nil),
		wl.NewKeyboard(nil),
		wl.NewTouch(nil),
		wl.NewDataOffer(nil),
		wl.NewDataSource(nil),
		wl.NewDataDevice(nil),
		wl.NewDataDeviceManager(nil),
	}

	for _, obj := range objects {
		t.Run(obj.Interface(), func(t *testing.T) {
			iface, ok := proto.Interface(obj.Interface())
			require.True(t, ok)
			for i, req := range iface.Requests {
				assert.Equal(t, req.Name, obj.MethodName(uint16(i)))
			}
			assert.Equal(t, "unknown method", obj.MethodName(uint16(len(iface.Requests))))
		})
	}
}
