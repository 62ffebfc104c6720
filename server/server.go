// Package wl implements the server side of the parts of the Wayland
// protocol needed to broker clipboard and drag-and-drop transfers
// between clients.
//
// A Server is not safe for concurrent use. Incoming connections and
// requests are queued by background goroutines and only acted upon
// when Flush is called, so all protocol state is touched by whichever
// single goroutine calls Flush.
package wl

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"deedles.dev/wldnd/internal/cq"
	"deedles.dev/wldnd/internal/set"
	"deedles.dev/wldnd/wire"
	"github.com/rs/zerolog"
)

// ServerListener is notified when clients connect and disconnect.
type ServerListener interface {
	Client(*Client)
	ClientRemove(*Client)
}

type Server struct {
	// Listener, if not nil, is notified of connecting and
	// disconnecting clients.
	Listener ServerListener

	done    chan struct{}
	close   sync.Once
	lis     *net.UnixListener
	clients set.Set[*Client]
	queue   *cq.Queue[func() error]
	logger  zerolog.Logger

	globals  []*global
	nextName uint32
	nextConn uint64
	serial   atomic.Uint32
}

// ListenAndServe opens a new socket with wire.Listen and returns a
// server accepting connections on it.
func ListenAndServe(logger zerolog.Logger) (*Server, error) {
	lis, err := wire.Listen()
	if err != nil {
		return nil, err
	}
	return NewServer(lis, logger), nil
}

// NewServer returns a server that accepts connections from lis. If
// lis is nil, connections have to be added manually with AddConn.
func NewServer(lis *net.UnixListener, logger zerolog.Logger) *Server {
	server := Server{
		done:     make(chan struct{}),
		lis:      lis,
		clients:  make(set.Set[*Client]),
		queue:    cq.New[func() error](),
		logger:   logger.With().Str("component", "server").Logger(),
		nextName: 1,
	}
	if lis != nil {
		go server.listen()
	}

	return &server
}

func (server *Server) listen() {
	for {
		c, err := server.lis.AcceptUnix()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}

			select {
			case <-server.done:
				return
			case server.queue.Add() <- func() error { return err }:
				continue
			}
		}

		select {
		case <-server.done:
			c.Close()
			return
		case server.queue.Add() <- func() error { server.AddConn(wire.NewConn(c)); return nil }:
		}
	}
}

// Addr returns the address that the server is listening on, or nil if
// it has no listener.
func (server *Server) Addr() net.Addr {
	if server.lis == nil {
		return nil
	}
	return server.lis.Addr()
}

// AddConn starts serving a new client on conn. It must be called from
// the goroutine that calls Flush.
func (server *Server) AddConn(conn *wire.Conn) *Client {
	server.nextConn++
	client := newClient(server, conn, server.nextConn)
	server.clients.Add(client)
	client.logger.Info().Msg("client connected")

	if server.Listener != nil {
		server.Listener.Client(client)
	}
	return client
}

func (server *Server) removeClient(client *Client) {
	if !server.clients.Has(client) {
		return
	}
	server.clients.Delete(client)
	client.logger.Info().Msg("client disconnected")

	if server.Listener != nil {
		server.Listener.ClientRemove(client)
	}
}

// NumClients returns the number of currently connected clients.
func (server *Server) NumClients() int {
	return len(server.clients)
}

// NextSerial returns a new event serial. Serials start at 1 and wrap
// around.
func (server *Server) NextSerial() uint32 {
	return server.serial.Add(1)
}

// Do queues f to be run during the next call to Flush.
func (server *Server) Do(f func()) {
	select {
	case <-server.done:
	case server.queue.Add() <- func() error { f(); return nil }:
	}
}

// Flush handles newly accepted connections and then flushes the queue
// of every client. It returns all errors encountered.
func (server *Server) Flush() error {
	var errs []error
	select {
	case queue := <-server.queue.Get():
		errs = cq.Flush(queue)
	default:
	}

	for client := range server.clients {
		err := client.Flush()
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Run calls Flush every interval until ctx is canceled or the server
// is closed. Flush errors are logged.
func (server *Server) Run(ctx context.Context, interval time.Duration) error {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-server.done:
			return nil
		case <-tick.C:
			err := server.Flush()
			if err != nil {
				server.logger.Warn().Err(err).Str("op", "flush").Msg("flush failed")
			}
		}
	}
}

// Close stops accepting new connections and disconnects every client.
// Like Flush, it must not be called concurrently with other methods.
func (server *Server) Close() error {
	var err error
	server.close.Do(func() {
		close(server.done)
		if server.lis != nil {
			err = server.lis.Close()
		}
		for client := range server.clients {
			client.Close()
		}
		server.queue.Stop()
	})
	return err
}
