package wl

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"deedles.dev/wldnd/internal/cq"
	"deedles.dev/wldnd/internal/debug"
	"deedles.dev/wldnd/internal/objstore"
	"deedles.dev/wldnd/internal/set"
	"deedles.dev/wldnd/notify"
	"deedles.dev/wldnd/wire"
	"github.com/rs/zerolog"
)

// serverIDStart is the first ID of the range of object IDs allocated
// by the server.
const serverIDStart = 0xff000000

// Client is a single connection to the server.
type Client struct {
	server *Server
	num    uint64
	done   chan struct{}
	close  sync.Once
	conn   *wire.Conn
	store  *objstore.Store
	queue  *cq.Queue[func() error]
	logger zerolog.Logger

	// dead is set once a fatal protocol error has been posted. No
	// further requests are dispatched after that.
	dead       bool
	registries set.Set[*Registry]
	destroy    notify.Destroy
}

func newClient(server *Server, conn *wire.Conn, num uint64) *Client {
	client := Client{
		server: server,
		num:    num,
		done:   make(chan struct{}),
		conn:   conn,
		store:  objstore.New(serverIDStart),
		queue:  cq.New[func() error](),
		logger: server.logger.With().Uint64("client", num).Logger(),

		registries: make(set.Set[*Registry]),
	}

	display := NewDisplay(&client)
	display.SetID(1)
	display.Listener = (*displayListener)(&client)
	client.store.Add(display)

	go client.listen()

	return &client
}

func (client *Client) listen() {
	for {
		msg, err := wire.ReadMessage(client.conn)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
				select {
				case <-client.done:
				case client.queue.Add() <- func() error { return client.Close() }:
				}
				return
			}

			select {
			case <-client.done:
				return
			case client.queue.Add() <- func() error { client.Close(); return err }:
				return
			}
		}

		select {
		case <-client.done:
			return
		case client.queue.Add() <- func() error { return client.dispatch(msg) }:
		}
	}
}

func (client *Client) dispatch(msg *wire.MessageBuffer) error {
	if client.dead {
		return nil
	}

	obj := client.store.Get(msg.Sender())
	if obj == nil {
		err := wire.UnknownSenderIDError{Msg: msg}
		client.PostError(client.Display(), DisplayErrorInvalidObject, fmt.Sprintf("invalid object %v", msg.Sender()))
		return err
	}

	err := obj.Dispatch(msg)
	if debug.Enabled() {
		debug.Printf("[%v] %v", client.num, msg.Debug(obj))
	}
	if err != nil {
		client.PostError(obj, DisplayErrorInvalidMethod, err.Error())
		return fmt.Errorf("dispatch %v: %w", obj, err)
	}
	return nil
}

func (client *Client) String() string {
	return fmt.Sprintf("client(%v)", client.num)
}

// Server returns the server that the client is connected to.
func (client *Client) Server() *Server {
	return client.server
}

// Logger returns a logger that annotates entries with the client.
func (client *Client) Logger() *zerolog.Logger {
	return &client.logger
}

// Add starts tracking obj. If obj does not yet have an ID, one is
// allocated from the server's range.
func (client *Client) Add(obj wire.Object) {
	client.store.Add(obj)
}

func (client *Client) Get(id uint32) wire.Object {
	return client.store.Get(id)
}

// Delete stops tracking the object with the given ID. If the ID was
// allocated by the client, the client is told that it can reuse it.
func (client *Client) Delete(id uint32) {
	obj := client.store.Delete(id)
	if obj == nil || id >= serverIDStart || client.isClosed() {
		return
	}
	client.Display().DeleteId(id)
}

// Enqueue queues msg to be sent during the next Flush. Messages for a
// closed client are discarded.
func (client *Client) Enqueue(msg *wire.MessageBuilder) {
	ev := func() error {
		if client.isClosed() {
			msg.Discard()
			return nil
		}

		debug.Printf("[%v]  -> %v", client.num, msg)
		err := msg.Build(client.conn)
		if err != nil {
			client.Close()
			return fmt.Errorf("send %v: %w", msg.Method, err)
		}
		return nil
	}

	select {
	case <-client.done:
		msg.Discard()
	case client.queue.Add() <- ev:
	}
}

func (client *Client) Display() *Display {
	return client.Get(1).(*Display)
}

// PostError sends a fatal protocol error to the client and then
// disconnects it.
func (client *Client) PostError(obj wire.Object, code DisplayError, msg string) {
	if client.dead {
		return
	}
	client.dead = true

	client.logger.Warn().
		Str("op", "post_error").
		Str("object", fmt.Sprint(obj)).
		Stringer("code", code).
		Msg(msg)

	client.Display().Error(obj, uint32(code), msg)
	select {
	case <-client.done:
	case client.queue.Add() <- func() error { return client.Close() }:
	}
}

// PostNoMemory tells the client that the server could not allocate
// memory for one of its requests and disconnects it.
func (client *Client) PostNoMemory() {
	client.PostError(client.Display(), DisplayErrorNoMemory, "no memory")
}

// OnDestroy registers f to be called after the client has been
// disconnected and all of its objects destroyed.
func (client *Client) OnDestroy(f func()) *notify.Listener {
	return client.destroy.Add(f)
}

func (client *Client) isClosed() bool {
	select {
	case <-client.done:
		return true
	default:
		return false
	}
}

// Close disconnects the client, destroying all of its objects.
func (client *Client) Close() error {
	var err error
	client.close.Do(func() {
		close(client.done)
		err = client.conn.Close()
		client.store.Clear()
		client.queue.Stop()
		client.server.removeClient(client)
		client.destroy.Emit()
	})
	return err
}

// Flush flushes the event queue, sending all enqueued messages and
// processing all messages that have been received since the last time
// the queue was flushed. It returns all errors encountered.
func (client *Client) Flush() error {
	select {
	case queue := <-client.queue.Get():
		return errors.Join(cq.Flush(queue)...)
	default:
		return nil
	}
}
