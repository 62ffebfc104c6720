package datadevice_test

import (
	"testing"

	"deedles.dev/wldnd/pointer"
	"deedles.dev/wldnd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fx(v int) wire.Fixed { return wire.FixedInt(v) }

// press puts the pointer over s and holds the left button down, which
// is the state that a client has to be in to start a drag.
func (w *world) press(s *surface) {
	w.seat.Pointer().NotifyFocus(s, fx(5), fx(5))
	w.seat.Pointer().NotifyButton(0, pointer.ButtonLeft, pointer.Pressed)
}

func TestDragAndDrop(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	w.device("b")
	a1, b1 := w.surface("a", "a1"), w.surface("b", "b1")
	icon := w.surface("a", "icon")

	w.press(a1)
	source, h := w.source("a", "text/plain", "text/html")
	a.StartDrag(source, a1, icon, 1)
	require.True(t, w.seat.Dragging())
	assert.False(t, w.seat.Pointer().IsDefaultGrab())
	assert.Nil(t, w.seat.Pointer().Focus())
	assert.Equal(t, icon, w.seat.DragIcon())

	// The drag starts over the origin surface, so its owner is entered
	// right away.
	w.log.expect(t,
		"drag icon: icon",
		"a: data_offer #1",
		"a: offer #1 text/plain",
		"a: offer #1 text/html",
		"a: enter 1 a1 5,5 #1",
	)

	w.seat.Pointer().NotifyFocus(b1, fx(10), fx(20))
	w.seat.Pointer().NotifyMotion(100, fx(11), fx(21))
	focus, device := w.seat.DragFocus()
	assert.Equal(t, b1, focus)
	assert.Same(t, w.seat.FindDevice("b"), device)

	w.seat.Pointer().NotifyButton(200, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t,
		"a: leave",
		"b: data_offer #2",
		"b: offer #2 text/plain",
		"b: offer #2 text/html",
		"b: enter 2 b1 10,20 #2",
		"b: motion 100 11,21",
		"b: drop",
		"b: leave",
		"drag icon: none",
	)

	assert.False(t, w.seat.Dragging())
	assert.True(t, w.seat.Pointer().IsDefaultGrab())
	assert.Equal(t, b1, w.seat.Pointer().Focus())
	assert.Nil(t, w.seat.DragSource())
	assert.Nil(t, w.seat.DragIcon())
	assert.False(t, source.Destroyed())
	assert.Empty(t, h.fds)
}

func TestDragDropOtherButton(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	w.device("b")
	a1, b1 := w.surface("a", "a1"), w.surface("b", "b1")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	a.StartDrag(source, a1, nil, 1)
	w.seat.Pointer().NotifyFocus(b1, 0, 0)
	w.log.take()

	// Only the button that started the drag drops. The drag ends when
	// the last button is released.
	w.seat.Pointer().NotifyButton(1, pointer.ButtonRight, pointer.Pressed)
	w.seat.Pointer().NotifyButton(2, pointer.ButtonRight, pointer.Released)
	w.log.expect(t)
	require.True(t, w.seat.Dragging())

	w.seat.Pointer().NotifyButton(3, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t, "b: drop", "b: leave")
	assert.False(t, w.seat.Dragging())
}

func TestDragWithoutSource(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	w.device("b")
	a1, a2 := w.surface("a", "a1"), w.surface("a", "a2")
	b1 := w.surface("b", "b1")

	w.press(a1)
	a.StartDrag(nil, a1, nil, 1)
	w.log.expect(t, "a: enter 1 a1 5,5 none")

	// Other clients never see a drag that carries no data.
	w.seat.Pointer().NotifyFocus(b1, fx(1), fx(1))
	w.log.expect(t, "a: leave")
	focus, _ := w.seat.DragFocus()
	assert.Nil(t, focus)

	w.seat.Pointer().NotifyFocus(a2, fx(3), fx(4))
	w.seat.Pointer().NotifyButton(10, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t,
		"a: enter 2 a2 3,4 none",
		"a: drop",
		"a: leave",
	)
	assert.False(t, w.seat.Dragging())
}

func TestDragWithinOriginSurface(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	a1 := w.surface("a", "a1")

	w.press(a1)
	a.StartDrag(nil, a1, nil, 1)
	focus, device := w.seat.DragFocus()
	assert.Equal(t, a1, focus)
	assert.Same(t, a, device)

	w.seat.Pointer().NotifyMotion(5, fx(6), fx(6))
	w.seat.Pointer().NotifyButton(6, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t,
		"a: enter 1 a1 5,5 none",
		"a: motion 5 6,6",
		"a: drop",
		"a: leave",
	)
	assert.False(t, w.seat.Dragging())
	assert.Equal(t, a1, w.seat.Pointer().Focus())
}

func TestDragFocusMoves(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	w.device("b")
	w.device("c")
	a1 := w.surface("a", "a1")
	b1, c1 := w.surface("b", "b1"), w.surface("c", "c1")
	d1 := w.surface("d", "d1")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	a.StartDrag(source, a1, nil, 1)

	w.seat.Pointer().NotifyFocus(b1, 0, 0)
	w.seat.Pointer().NotifyFocus(c1, 0, 0)
	w.seat.Pointer().NotifyFocus(d1, 0, 0)
	w.seat.Pointer().NotifyMotion(5, fx(1), fx(1))
	w.seat.Pointer().NotifyFocus(nil, 0, 0)
	w.log.expect(t,
		"a: data_offer #1",
		"a: offer #1 text/plain",
		"a: enter 1 a1 5,5 #1",
		"a: leave",
		"b: data_offer #2",
		"b: offer #2 text/plain",
		"b: enter 2 b1 0,0 #2",
		"b: leave",
		"c: data_offer #3",
		"c: offer #3 text/plain",
		"c: enter 3 c1 0,0 #3",
		"c: leave",
	)
}

func TestDragSourceDestroyed(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	_, sink := w.device("b")
	a1, b1 := w.surface("a", "a1"), w.surface("b", "b1")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	a.StartDrag(source, a1, nil, 1)
	w.seat.Pointer().NotifyFocus(b1, 0, 0)
	w.log.take()

	source.Destroy()
	w.log.expect(t, "b: leave")
	assert.False(t, w.seat.Dragging())
	assert.True(t, w.seat.Pointer().IsDefaultGrab())
	assert.Nil(t, sink.lastOffer().Source())

	// The button is still held, so nothing is focused until it is
	// released.
	assert.Nil(t, w.seat.Pointer().Focus())
	w.seat.Pointer().NotifyButton(1, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t)
	assert.Equal(t, b1, w.seat.Pointer().Focus())
}

func TestDragFocusDeviceDestroyed(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	b, _ := w.device("b")
	a1, b1 := w.surface("a", "a1"), w.surface("b", "b1")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	a.StartDrag(source, a1, nil, 1)
	w.seat.Pointer().NotifyFocus(b1, 0, 0)
	w.log.take()

	b.Destroy()
	focus, device := w.seat.DragFocus()
	assert.Nil(t, focus)
	assert.Nil(t, device)

	w.seat.Pointer().NotifyMotion(1, 0, 0)
	w.seat.Pointer().NotifyButton(2, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t)
	assert.False(t, w.seat.Dragging())
}

func TestDragSurfaceDestroyed(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	w.device("b")
	a1, b1 := w.surface("a", "a1"), w.surface("b", "b1")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	a.StartDrag(source, a1, nil, 1)
	w.seat.Pointer().NotifyFocus(b1, 0, 0)
	w.log.take()

	b1.destroy.Emit()
	w.log.expect(t, "b: leave")
	assert.True(t, w.seat.Dragging())
}

func TestDragRestart(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	w.device("b")
	a1, b1 := w.surface("a", "a1"), w.surface("b", "b1")
	icon := w.surface("a", "icon")

	w.press(a1)
	first, _ := w.source("a", "text/plain")
	a.StartDrag(first, a1, icon, 1)
	w.seat.Pointer().NotifyFocus(b1, 0, 0)
	w.log.take()

	second, _ := w.source("a", "text/html")
	a.StartDrag(second, a1, nil, 3)
	w.log.expect(t,
		"b: leave",
		"drag icon: none",
		"b: data_offer #3",
		"b: offer #3 text/html",
		"b: enter 3 b1 0,0 #3",
	)
	assert.True(t, w.seat.Dragging())
	assert.Equal(t, second, w.seat.DragSource())

	// The first source no longer affects the drag.
	first.Destroy()
	assert.True(t, w.seat.Dragging())
	w.log.expect(t)
}

func TestDragIconDestroyed(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	a1 := w.surface("a", "a1")
	icon := w.surface("a", "icon")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	a.StartDrag(source, a1, icon, 1)
	w.log.take()

	icon.destroy.Emit()
	assert.Nil(t, w.seat.DragIcon())
	w.log.expect(t)

	w.seat.Pointer().NotifyButton(1, pointer.ButtonLeft, pointer.Released)
	w.log.expect(t, "a: drop", "a: leave")
	assert.False(t, w.seat.Dragging())
}

func TestDragDestroyedSourceIgnored(t *testing.T) {
	w := newWorld()
	a, _ := w.device("a")
	a1 := w.surface("a", "a1")

	w.press(a1)
	source, _ := w.source("a", "text/plain")
	source.Destroy()
	a.StartDrag(source, a1, nil, 1)
	assert.False(t, w.seat.Dragging())
	assert.True(t, w.seat.Pointer().IsDefaultGrab())
}
