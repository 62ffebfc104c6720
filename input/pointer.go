package input

import (
	"deedles.dev/wldnd/notify"
	"deedles.dev/wldnd/pointer"
	"deedles.dev/wldnd/wire"
)

// Grab receives pointer events. Exactly one grab is installed on a
// Pointer at any time. When nothing else has been installed the
// pointer's default grab, which simply moves the pointer focus around,
// is used.
type Grab interface {
	// Focus is called when the surface under the pointer changes.
	// surface is nil if the pointer is no longer over a surface.
	Focus(surface Surface, x, y wire.Fixed)

	// Motion is called when the pointer moves.
	Motion(time uint32, x, y wire.Fixed)

	// Button is called when a button changes state. The pointer's
	// button count has already been updated when this is called.
	Button(time uint32, button pointer.Button, state pointer.ButtonState)
}

// Pointer tracks the state of a seat's pointer and routes its events
// to the installed grab.
type Pointer struct {
	grab Grab

	focus         Surface
	focusListener *notify.Listener

	current         Surface
	currentListener *notify.Listener
	x, y            wire.Fixed

	buttonCount int
	grabButton  pointer.Button
	grabTime    uint32
}

// NewPointer returns a pointer with the default grab installed.
func NewPointer() *Pointer {
	p := Pointer{}
	p.grab = (*defaultGrab)(&p)
	return &p
}

// StartGrab installs g. If the pointer is over a surface, g is
// immediately told about it, regardless of where the focus is.
func (p *Pointer) StartGrab(g Grab) {
	p.grab = g
	if p.current != nil {
		g.Focus(p.current, p.x, p.y)
	}
}

// EndGrab reinstalls the default grab and gives it the surface that
// is currently under the pointer.
func (p *Pointer) EndGrab() {
	p.grab = (*defaultGrab)(p)
	p.grab.Focus(p.current, p.x, p.y)
}

// Grab returns the currently installed grab.
func (p *Pointer) Grab() Grab {
	return p.grab
}

// IsDefaultGrab reports whether the default grab is installed.
func (p *Pointer) IsDefaultGrab() bool {
	_, ok := p.grab.(*defaultGrab)
	return ok
}

// SetFocus sets the pointer focus. It is cleared automatically if the
// surface is destroyed.
func (p *Pointer) SetFocus(surface Surface, x, y wire.Fixed) {
	p.focusListener.Remove()
	p.focus, p.focusListener = surface, nil
	if surface != nil {
		p.focusListener = surface.OnDestroy(func() {
			p.focus, p.focusListener = nil, nil
		})
	}
}

// Focus returns the focused surface.
func (p *Pointer) Focus() Surface {
	return p.focus
}

// Current returns the surface that is under the pointer, regardless
// of where the focus is.
func (p *Pointer) Current() Surface {
	return p.current
}

// ButtonCount returns the number of buttons currently held.
func (p *Pointer) ButtonCount() int {
	return p.buttonCount
}

// GrabButton returns the button that was pressed when the button
// count last went from zero to one.
func (p *Pointer) GrabButton() pointer.Button {
	return p.grabButton
}

// GrabTime returns the time of the press that set GrabButton.
func (p *Pointer) GrabTime() uint32 {
	return p.grabTime
}

// NotifyFocus is called by the input backend when the surface under
// the pointer changes.
func (p *Pointer) NotifyFocus(surface Surface, x, y wire.Fixed) {
	p.currentListener.Remove()
	p.current, p.currentListener = surface, nil
	p.x, p.y = x, y
	if surface != nil {
		p.currentListener = surface.OnDestroy(func() {
			p.current, p.currentListener = nil, nil
			p.grab.Focus(nil, 0, 0)
		})
	}

	p.grab.Focus(surface, x, y)
}

// NotifyMotion is called by the input backend when the pointer moves
// within the current surface.
func (p *Pointer) NotifyMotion(time uint32, x, y wire.Fixed) {
	p.x, p.y = x, y
	p.grab.Motion(time, x, y)
}

// NotifyButton is called by the input backend when a button changes
// state.
func (p *Pointer) NotifyButton(time uint32, button pointer.Button, state pointer.ButtonState) {
	switch state {
	case pointer.Pressed:
		if p.buttonCount == 0 {
			p.grabButton = button
			p.grabTime = time
		}
		p.buttonCount++
	case pointer.Released:
		if p.buttonCount > 0 {
			p.buttonCount--
		}
	}

	p.grab.Button(time, button, state)
}

type defaultGrab Pointer

func (g *defaultGrab) Focus(surface Surface, x, y wire.Fixed) {
	p := (*Pointer)(g)
	if p.buttonCount > 0 {
		return
	}
	p.SetFocus(surface, x, y)
}

func (g *defaultGrab) Motion(time uint32, x, y wire.Fixed) {}

func (g *defaultGrab) Button(time uint32, button pointer.Button, state pointer.ButtonState) {
	p := (*Pointer)(g)
	if (p.buttonCount == 0) && (state == pointer.Released) {
		p.SetFocus(p.current, p.x, p.y)
	}
}
