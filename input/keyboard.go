package input

import "deedles.dev/wldnd/notify"

// Keyboard tracks a seat's keyboard focus.
type Keyboard struct {
	focus         Surface
	focusListener *notify.Listener
	focusSignal   notify.Signal[Surface]
}

// NewKeyboard returns a keyboard with nothing focused.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// SetFocus moves the keyboard focus to surface, which may be nil. If
// the focus actually changes, the focus listeners are notified. The
// focus is cleared automatically when the focused surface is
// destroyed.
func (k *Keyboard) SetFocus(surface Surface) {
	if surface == k.focus {
		return
	}

	k.focusListener.Remove()
	k.focus, k.focusListener = surface, nil
	if surface != nil {
		k.focusListener = surface.OnDestroy(func() {
			k.focusListener = nil
			k.SetFocus(nil)
		})
	}

	k.focusSignal.Emit(surface)
}

// Focus returns the focused surface.
func (k *Keyboard) Focus() Surface {
	return k.focus
}

// FocusClient returns the client that owns the focused surface, or
// nil if nothing is focused.
func (k *Keyboard) FocusClient() Client {
	if k.focus == nil {
		return nil
	}
	return k.focus.Client()
}

// OnFocus registers f to be called whenever the focus changes.
func (k *Keyboard) OnFocus(f func(Surface)) *notify.Listener {
	return k.focusSignal.Add(f)
}
