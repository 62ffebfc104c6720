package wl

import (
	"time"

	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/notify"
)

// AddCompositor advertises a wl_compositor global. Surfaces created
// through it have no content and are never shown. They exist so that
// clients have something to be focused and something to start drags
// from. If onSurface is not nil, it is called with every new surface.
func (server *Server) AddCompositor(onSurface func(input.Surface)) uint32 {
	return server.AddGlobal(CompositorInterface, CompositorVersion, func(client *Client, version, id uint32) {
		obj := NewCompositor(client)
		obj.SetID(id)
		obj.Listener = &compositorListener{onSurface: onSurface}
		client.Add(obj)
	})
}

type compositorListener struct {
	onSurface func(input.Surface)
}

func (cl *compositorListener) CreateSurface(s *Surface) {
	res := surfaceResource{surface: s}
	s.Listener = &res
	s.OnDelete = res.destroyed

	if cl.onSurface != nil {
		cl.onSurface(&res)
	}
}

func (cl *compositorListener) CreateRegion(r *Region) {
	r.Listener = (*regionListener)(r)
}

// surfaceResource is the server's state for a wl_surface. It is the
// input.Surface that the seat's pointer and keyboard deal in.
type surfaceResource struct {
	surface *Surface
	frames  []*Callback
	destroy notify.Destroy
}

// surfaceOf returns the input.Surface for s. It returns nil if s is
// nil.
func surfaceOf(s *Surface) input.Surface {
	if s == nil {
		return nil
	}
	res, ok := s.Listener.(*surfaceResource)
	if !ok {
		return nil
	}
	return res
}

// protocolSurface returns the wl_surface behind an input.Surface that
// was created by this package.
func protocolSurface(s input.Surface) *Surface {
	res, ok := s.(*surfaceResource)
	if !ok {
		return nil
	}
	return res.surface
}

func (res *surfaceResource) Client() input.Client {
	return res.surface.Client()
}

func (res *surfaceResource) OnDestroy(f func()) *notify.Listener {
	return res.destroy.Add(f)
}

func (res *surfaceResource) destroyed() {
	res.frames = nil
	res.destroy.Emit()
}

func (res *surfaceResource) Destroy() {
	res.surface.Client().Delete(res.surface.ID())
}

func (res *surfaceResource) Attach(buffer uint32, x, y int32) {}

func (res *surfaceResource) Damage(x, y, width, height int32) {}

func (res *surfaceResource) SetOpaqueRegion(region *Region) {}

func (res *surfaceResource) SetInputRegion(region *Region) {}

func (res *surfaceResource) SetBufferTransform(transform int32) {}

func (res *surfaceResource) SetBufferScale(scale int32) {}

func (res *surfaceResource) DamageBuffer(x, y, width, height int32) {}

func (res *surfaceResource) Frame(callback *Callback) {
	res.frames = append(res.frames, callback)
}

// Commit completes pending frame callbacks immediately, as nothing is
// ever drawn.
func (res *surfaceResource) Commit() {
	frames := res.frames
	res.frames = nil

	now := uint32(time.Now().UnixMilli())
	client := res.surface.Client()
	for _, cb := range frames {
		cb.Done(now)
		client.Delete(cb.ID())
	}
}

type regionListener Region

func (r *regionListener) Destroy() {
	r.client.Delete(r.id)
}

func (r *regionListener) Add(x, y, width, height int32) {}

func (r *regionListener) Subtract(x, y, width, height int32) {}
