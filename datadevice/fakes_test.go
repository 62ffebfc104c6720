package datadevice_test

import (
	"fmt"
	"os"
	"testing"

	"deedles.dev/wldnd/datadevice"
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/notify"
	"deedles.dev/wldnd/wire"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// eventLog records every event sent to any fake, in order.
type eventLog struct {
	events []string
	offers int
}

func (log *eventLog) add(format string, args ...any) {
	log.events = append(log.events, fmt.Sprintf(format, args...))
}

// take returns the recorded events and clears the log.
func (log *eventLog) take() []string {
	events := log.events
	log.events = nil
	return events
}

func (log *eventLog) expect(t *testing.T, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, log.take()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

type serials struct {
	n uint32
}

func (s *serials) NextSerial() uint32 {
	s.n++
	return s.n
}

type surface struct {
	name    string
	client  string
	destroy notify.Destroy
}

func (s *surface) Client() input.Client { return s.client }

func (s *surface) OnDestroy(f func()) *notify.Listener { return s.destroy.Add(f) }

func (s *surface) String() string { return s.name }

func surfaceName(s input.Surface) string {
	if s == nil {
		return "none"
	}
	return s.(*surface).name
}

// handler is a SourceHandler that records what it is asked to do.
type handler struct {
	log    *eventLog
	client string
	fds    []*os.File
}

func (h *handler) Accept(serial uint32, mimeType string) {
	h.log.add("%v: accept %v %q", h.client, serial, mimeType)
}

func (h *handler) Send(mimeType string, fd *os.File) {
	h.log.add("%v: send %v", h.client, mimeType)
	h.fds = append(h.fds, fd)
}

func (h *handler) Cancel() {
	h.log.add("%v: cancelled", h.client)
}

type offerSink struct {
	log    *eventLog
	client string
	id     int
	offer  *datadevice.Offer
}

func (s *offerSink) Offer(mimeType string) {
	s.log.add("%v: offer #%v %v", s.client, s.id, mimeType)
}

func offerName(offer *datadevice.Offer) string {
	if offer == nil {
		return "none"
	}
	return fmt.Sprintf("#%v", offer.Sink().(*offerSink).id)
}

// deviceSink is a DeviceSink that records events and keeps every offer
// that it is given.
type deviceSink struct {
	log    *eventLog
	client string
	offers []*datadevice.Offer
}

func (d *deviceSink) DataOffer(offer *datadevice.Offer) datadevice.OfferSink {
	d.log.offers++
	d.offers = append(d.offers, offer)
	d.log.add("%v: data_offer #%v", d.client, d.log.offers)
	return &offerSink{log: d.log, client: d.client, id: d.log.offers, offer: offer}
}

func (d *deviceSink) Enter(serial uint32, s input.Surface, x, y wire.Fixed, offer *datadevice.Offer) {
	d.log.add("%v: enter %v %v %v,%v %v", d.client, serial, surfaceName(s), x.Int(), y.Int(), offerName(offer))
}

func (d *deviceSink) Leave() {
	d.log.add("%v: leave", d.client)
}

func (d *deviceSink) Motion(time uint32, x, y wire.Fixed) {
	d.log.add("%v: motion %v %v,%v", d.client, time, x.Int(), y.Int())
}

func (d *deviceSink) Drop() {
	d.log.add("%v: drop", d.client)
}

func (d *deviceSink) Selection(offer *datadevice.Offer) {
	d.log.add("%v: selection %v", d.client, offerName(offer))
}

func (d *deviceSink) lastOffer() *datadevice.Offer {
	if len(d.offers) == 0 {
		return nil
	}
	return d.offers[len(d.offers)-1]
}

// world is a seat with a few clients attached to it.
type world struct {
	log     *eventLog
	serials *serials
	seat    *datadevice.Seat
}

func newWorld() *world {
	w := world{
		log:     &eventLog{},
		serials: &serials{},
	}
	w.seat = datadevice.NewSeat("seat0", w.serials, zerolog.Nop())
	w.seat.OnSelection(func(seat *datadevice.Seat) {
		w.log.add("selection changed: %v", seat.Selection() != nil)
	})
	w.seat.OnDragIcon(func(s input.Surface) {
		w.log.add("drag icon: %v", surfaceName(s))
	})
	return &w
}

func (w *world) device(client string) (*datadevice.Device, *deviceSink) {
	sink := deviceSink{log: w.log, client: client}
	return w.seat.NewDevice(client, &sink), &sink
}

func (w *world) source(client string, mimeTypes ...string) (*datadevice.Source, *handler) {
	h := handler{log: w.log, client: client}
	source := datadevice.NewSource(client, &h)
	for _, mt := range mimeTypes {
		if err := source.Offer(mt); err != nil {
			panic(err)
		}
	}
	return source, &h
}

func (w *world) surface(client, name string) *surface {
	return &surface{name: name, client: client}
}
