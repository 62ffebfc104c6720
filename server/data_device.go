package wl

import (
	"errors"
	"os"

	"deedles.dev/wldnd/datadevice"
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/wire"
)

// AddDataDeviceManager advertises a wl_data_device_manager global.
// Data sources created through it hold at most maxMimeTypes MIME
// types. A client that offers more than that is disconnected with a
// no_memory error. A value of zero or less removes the limit.
func (server *Server) AddDataDeviceManager(maxMimeTypes int) uint32 {
	return server.AddGlobal(DataDeviceManagerInterface, DataDeviceManagerVersion, func(client *Client, version, id uint32) {
		obj := NewDataDeviceManager(client)
		obj.SetID(id)
		obj.Listener = &managerListener{client: client, maxMimeTypes: maxMimeTypes}
		client.Add(obj)
	})
}

type managerListener struct {
	client       *Client
	maxMimeTypes int
}

func (ml *managerListener) CreateDataSource(id *DataSource) {
	source := datadevice.NewSource(ml.client, (*sourceHandler)(id))
	source.SetMaxMimeTypes(ml.maxMimeTypes)

	id.Listener = &sourceListener{obj: id, source: source}
	id.OnDelete = source.Destroy
}

func (ml *managerListener) GetDataDevice(id *DataDevice, seat *Seat) {
	s := seatOf(seat)
	if s == nil {
		ml.client.PostError(seat, DisplayErrorInvalidObject, "seat has no data device support")
		return
	}

	device := s.NewDevice(ml.client, (*deviceSink)(id))
	id.Listener = &deviceListener{obj: id, device: device}
	id.OnDelete = device.Destroy

	if s.Keyboard().FocusClient() == input.Client(ml.client) {
		s.KeyboardFocusChanged()
	}
}

// sourceHandler forwards requests from the data transfer machinery to
// the client that owns a wl_data_source.
type sourceHandler DataSource

func (h *sourceHandler) Accept(serial uint32, mimeType string) {
	(*DataSource)(h).Target(mimeType)
}

func (h *sourceHandler) Send(mimeType string, fd *os.File) {
	defer fd.Close()
	(*DataSource)(h).Send(mimeType, fd)
}

func (h *sourceHandler) Cancel() {
	(*DataSource)(h).Cancelled()
}

type sourceListener struct {
	obj    *DataSource
	source *datadevice.Source
}

// sourceOf returns the source behind obj. It returns nil if obj is
// nil.
func sourceOf(obj *DataSource) *datadevice.Source {
	if obj == nil {
		return nil
	}
	sl, ok := obj.Listener.(*sourceListener)
	if !ok {
		return nil
	}
	return sl.source
}

func (sl *sourceListener) Offer(mimeType string) {
	err := sl.source.Offer(mimeType)
	if err != nil {
		if errors.Is(err, datadevice.ErrNoMemory) {
			sl.obj.client.PostNoMemory()
			return
		}
		sl.obj.client.PostError(sl.obj, DisplayErrorImplementation, err.Error())
	}
}

func (sl *sourceListener) Destroy() {
	sl.obj.client.Delete(sl.obj.id)
}

// deviceSink delivers data device events to a wl_data_device.
type deviceSink DataDevice

func (ds *deviceSink) DataOffer(offer *datadevice.Offer) datadevice.OfferSink {
	client := ds.client

	obj := NewDataOffer(client)
	client.Add(obj)
	obj.Listener = &offerListener{obj: obj, offer: offer}
	obj.OnDelete = offer.Destroy

	(*DataDevice)(ds).DataOffer(obj)
	return obj
}

func (ds *deviceSink) Enter(serial uint32, surface input.Surface, x, y wire.Fixed, offer *datadevice.Offer) {
	(*DataDevice)(ds).Enter(serial, protocolSurface(surface), x, y, protocolOffer(offer))
}

func (ds *deviceSink) Leave() {
	(*DataDevice)(ds).Leave()
}

func (ds *deviceSink) Motion(time uint32, x, y wire.Fixed) {
	(*DataDevice)(ds).Motion(time, x, y)
}

func (ds *deviceSink) Drop() {
	(*DataDevice)(ds).Drop()
}

func (ds *deviceSink) Selection(offer *datadevice.Offer) {
	(*DataDevice)(ds).Selection(protocolOffer(offer))
}

// protocolOffer returns the wl_data_offer that was created for offer.
func protocolOffer(offer *datadevice.Offer) *DataOffer {
	if offer == nil {
		return nil
	}
	obj, _ := offer.Sink().(*DataOffer)
	return obj
}

type deviceListener struct {
	obj    *DataDevice
	device *datadevice.Device
}

func (dl *deviceListener) StartDrag(source *DataSource, origin, icon *Surface, serial uint32) {
	dl.device.StartDrag(sourceOf(source), surfaceOf(origin), surfaceOf(icon), serial)
}

func (dl *deviceListener) SetSelection(source *DataSource, serial uint32) {
	dl.device.SetSelection(sourceOf(source), serial)
}

func (dl *deviceListener) Release() {
	dl.obj.client.Delete(dl.obj.id)
}

type offerListener struct {
	obj   *DataOffer
	offer *datadevice.Offer
}

func (ol *offerListener) Accept(serial uint32, mimeType string) {
	ol.offer.Accept(serial, mimeType)
}

func (ol *offerListener) Receive(mimeType string, fd *os.File) {
	ol.offer.Receive(mimeType, fd)
}

func (ol *offerListener) Destroy() {
	ol.obj.client.Delete(ol.obj.id)
}
