package wl

import (
	"fmt"

	"deedles.dev/wldnd/wire"
)

type global struct {
	name    uint32
	iface   string
	version uint32
	bind    func(client *Client, version, id uint32)
}

// AddGlobal advertises a global to every client. When a client binds
// it, bind is called with the version and the object ID that the
// client asked for. bind is responsible for creating the object and
// adding it to the client. It returns the global's name.
func (server *Server) AddGlobal(iface string, version uint32, bind func(client *Client, version, id uint32)) uint32 {
	g := global{
		name:    server.nextName,
		iface:   iface,
		version: version,
		bind:    bind,
	}
	server.nextName++
	server.globals = append(server.globals, &g)

	for client := range server.clients {
		for registry := range client.registries {
			registry.Global(g.name, g.iface, g.version)
		}
	}

	server.logger.Debug().
		Uint32("name", g.name).
		Str("interface", iface).
		Uint32("version", version).
		Msg("added global")
	return g.name
}

// RemoveGlobal stops advertising the named global. Objects that were
// already bound to it are unaffected.
func (server *Server) RemoveGlobal(name uint32) {
	i := server.findGlobal(name)
	if i < 0 {
		return
	}
	server.globals = append(server.globals[:i], server.globals[i+1:]...)

	for client := range server.clients {
		for registry := range client.registries {
			registry.GlobalRemove(name)
		}
	}
}

func (server *Server) findGlobal(name uint32) int {
	for i, g := range server.globals {
		if g.name == name {
			return i
		}
	}
	return -1
}

type displayListener Client

func (client *displayListener) Sync(callback *Callback) {
	c := (*Client)(client)
	callback.Done(c.server.NextSerial())
	c.Delete(callback.ID())
}

func (client *displayListener) GetRegistry(registry *Registry) {
	c := (*Client)(client)
	registry.Listener = &registryListener{client: c, registry: registry}
	registry.OnDelete = func() { c.registries.Delete(registry) }
	c.registries.Add(registry)

	for _, g := range c.server.globals {
		registry.Global(g.name, g.iface, g.version)
	}
}

type registryListener struct {
	client   *Client
	registry *Registry
}

func (rl *registryListener) Bind(name uint32, id wire.NewID) {
	server := rl.client.server
	i := server.findGlobal(name)
	if i < 0 {
		rl.client.PostError(rl.registry, DisplayErrorInvalidObject, fmt.Sprintf("invalid global %v (%v)", id.Interface, name))
		return
	}

	g := server.globals[i]
	if g.iface != id.Interface {
		rl.client.PostError(rl.registry, DisplayErrorInvalidObject, fmt.Sprintf("invalid interface for global %v: have %v, wanted %v", name, id.Interface, g.iface))
		return
	}
	if (id.Version == 0) || (id.Version > g.version) {
		rl.client.PostError(rl.registry, DisplayErrorInvalidObject, fmt.Sprintf("invalid version for global %v (%v): have %v, wanted %v", g.iface, name, id.Version, g.version))
		return
	}
	if err := checkNewID(rl.client, id.ID); err != nil {
		rl.client.PostError(rl.registry, DisplayErrorInvalidObject, err.Error())
		return
	}

	g.bind(rl.client, id.Version, id.ID)
}
